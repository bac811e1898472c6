package models

import (
	"time"

	"github.com/google/uuid"
)

// TravelStory is a single journal entry. OwnerID scopes every read and
// write to the account that created the story.
type TravelStory struct {
	ID               uuid.UUID `json:"id"`
	OwnerID          uuid.UUID `json:"-"`
	Title            string    `json:"title"`
	Story            string    `json:"story"`
	VisitedLocations []string  `json:"visitedLocations"`
	ImageURL         string    `json:"imageUrl"`
	VisitedDate      time.Time `json:"visitedDate"`
	IsFavourite      bool      `json:"isFavourite"`
	CreatedAt        time.Time `json:"createdAt"`
}

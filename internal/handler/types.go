package handler

// registerRequest is the payload for POST /auth/register.
type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginRequest is the payload for POST /auth/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// storyRequest is the payload for creating and editing a story.
// VisitedLocations is a pointer so a missing field can be told apart from an
// explicitly empty list: the field itself is required, an empty list is fine.
type storyRequest struct {
	Title            string    `json:"title"`
	Story            string    `json:"story"`
	VisitedLocations *[]string `json:"visitedLocations"`
	ImageURL         string    `json:"imageUrl"`
	VisitedDate      int64     `json:"visitedDate"`
}

// favouriteRequest is the payload for the favourite toggle. The caller
// supplies the new value; the server does not negate the current one.
type favouriteRequest struct {
	IsFavourite *bool `json:"isFavourite"`
}

// Package imagestore provides storage for uploaded story images. Stories
// persist only the returned URL reference; the bytes live outside the
// database.
package imagestore

import (
	"context"
	"io"
)

// Store saves uploaded images and removes them by reference.
type Store interface {
	// Save stores the image bytes and returns a publicly servable URL.
	// originalFilename is only consulted for its extension.
	Save(ctx context.Context, originalFilename string, r io.Reader) (string, error)
	// Remove deletes the image a story referenced. Removing an empty
	// reference or the placeholder is a no-op.
	Remove(ctx context.Context, ref string) error
	// PlaceholderURL is the well-known "no custom image" reference.
	PlaceholderURL() string
}

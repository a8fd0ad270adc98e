package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoPosts means the store holds no posts at all.
	ErrNoPosts = errors.New("no posts found")

	// ErrNotFound means no post matches the requested slug.
	ErrNotFound = errors.New("post not found")

	// ErrSlugExists means a post with the same slug is already stored.
	ErrSlugExists = errors.New("slug already exists")
)

// ValidationError reports which required draft fields were missing or
// empty on a create request.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

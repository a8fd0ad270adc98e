package domain

import (
	"context"
	"time"
)

// FilePost is a post as stored by the file backend: one Markdown file
// with a front matter block holding title, date, and description.
type FilePost struct {
	Slug        string
	Title       string
	Date        time.Time
	Description string
	Body        string
}

func (p *FilePost) PostSlug() string { return p.Slug }
func (p *FilePost) PostBody() string { return p.Body }

// TablePost is a post as stored by the table backend. ID is the
// surrogate key assigned by the database; the slug remains the only
// external lookup key.
type TablePost struct {
	ID     int64
	Title  string
	Date   time.Time
	Tags   []string
	Author string
	Slug   string
	Body   string
}

func (p *TablePost) PostSlug() string { return p.Slug }
func (p *TablePost) PostBody() string { return p.Body }

// Record is the read-side shape common to both backends. The two
// concrete types are deliberately kept separate; their metadata fields
// are not interchangeable.
type Record interface {
	PostSlug() string
	PostBody() string
}

// Draft field names, as they appear in the JSON request body.
const (
	FieldTitle       = "title"
	FieldDate        = "date"
	FieldDescription = "description"
	FieldTags        = "tags"
	FieldAuthor      = "author"
	FieldBody        = "body"
)

// Draft carries the caller-supplied fields of a create request before
// validation. Which fields are required depends on the active backend.
type Draft struct {
	Title       string
	Date        string
	Description string
	Tags        []string
	Author      string
	Body        string
}

// FieldEmpty reports whether the named draft field is missing or empty.
// Unknown field names count as empty.
func (d Draft) FieldEmpty(name string) bool {
	switch name {
	case FieldTitle:
		return d.Title == ""
	case FieldDate:
		return d.Date == ""
	case FieldDescription:
		return d.Description == ""
	case FieldTags:
		return len(d.Tags) == 0
	case FieldAuthor:
		return d.Author == ""
	case FieldBody:
		return d.Body == ""
	}
	return true
}

// NewPost is a validated draft with its slug assigned and its date
// parsed and normalized to UTC. Backends store it as-is.
type NewPost struct {
	Slug        string
	Title       string
	Date        time.Time
	Description string
	Tags        []string
	Author      string
	Body        string
}

type PostStore interface {
	// List returns the stored posts, newest first where the backend
	// defines an order. Returns ErrNoPosts when the store is empty.
	List(ctx context.Context) ([]Record, error)

	// GetBySlug returns the post with the given slug, or ErrNotFound.
	GetBySlug(ctx context.Context, slug string) (Record, error)

	// Create persists a new post. Returns ErrSlugExists when a post
	// with the same slug already exists.
	Create(ctx context.Context, post NewPost) error

	// RequiredFields lists the draft fields this backend needs on
	// create, so the service can validate without knowing the backend.
	RequiredFields() []string
}

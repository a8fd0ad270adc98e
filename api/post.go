package api

// FilePost is the response shape for posts served by the file backend.
type FilePost struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Body        string `json:"body"`
}

// TablePost is the response shape for posts served by the table
// backend. Dates are ISO-8601 strings and tags proper arrays, never the
// raw serialized column values.
type TablePost struct {
	ID     int64    `json:"id"`
	Title  string   `json:"title"`
	Date   string   `json:"date"`
	Tags   []string `json:"tags"`
	Author string   `json:"author"`
	Slug   string   `json:"slug"`
	Body   string   `json:"body"`
}

// CreatePostRequest is the POST /api/posts body. Description is used by
// the file backend; tags and author by the table backend.
type CreatePostRequest struct {
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Author      string   `json:"author"`
	Body        string   `json:"body"`
}

// RenderedPost is the response for the HTML view of a post.
type RenderedPost struct {
	Slug string `json:"slug"`
	HTML string `json:"html"`
}

type Message struct {
	Message string `json:"message"`
}

// Error is the uniform failure body: a short machine-oriented tag plus
// a human-readable message.
type Error struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

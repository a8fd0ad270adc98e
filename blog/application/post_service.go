package application

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/arieldiaz/bitacora/blog/domain"
	"github.com/arieldiaz/bitacora/internal/markdown"
)

// dateLayouts are the accepted create-time date formats, tried in order.
// Whatever matches is normalized to UTC RFC 3339 before storage.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// PostService is the single entry point the HTTP layer talks to. It
// owns validation and slug assignment; everything else is delegated to
// the active store.
type PostService struct {
	store    domain.PostStore
	renderer markdown.Renderer
}

func NewPostService(store domain.PostStore, renderer markdown.Renderer) *PostService {
	return &PostService{
		store:    store,
		renderer: renderer,
	}
}

// CreatePost validates the draft, derives its slug from the title, and
// hands the result to the store. Nothing is written when validation
// fails.
func (s *PostService) CreatePost(ctx context.Context, draft domain.Draft) error {
	var missing []string
	for _, field := range s.store.RequiredFields() {
		if draft.FieldEmpty(field) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return &domain.ValidationError{Missing: missing}
	}

	date, err := parseDate(draft.Date)
	if err != nil {
		return &domain.ValidationError{Missing: []string{domain.FieldDate}}
	}

	slug := domain.EncodeSlug(draft.Title)
	if slug == "" {
		// A title of pure punctuation encodes to nothing and can never
		// be looked up again.
		return &domain.ValidationError{Missing: []string{domain.FieldTitle}}
	}

	post := domain.NewPost{
		Slug:        slug,
		Title:       draft.Title,
		Date:        date,
		Description: draft.Description,
		Tags:        draft.Tags,
		Author:      draft.Author,
		Body:        draft.Body,
	}

	if err := s.store.Create(ctx, post); err != nil {
		return err
	}

	log.Info().Str("slug", slug).Msg("Post created")
	return nil
}

// ListPosts returns the stored posts as the active store orders them.
func (s *PostService) ListPosts(ctx context.Context) ([]domain.Record, error) {
	return s.store.List(ctx)
}

// GetPost returns the post with the given slug.
func (s *PostService) GetPost(ctx context.Context, slug string) (domain.Record, error) {
	return s.store.GetBySlug(ctx, slug)
}

// RenderPost returns the post body converted to HTML.
func (s *PostService) RenderPost(ctx context.Context, slug string) (string, error) {
	post, err := s.store.GetBySlug(ctx, slug)
	if err != nil {
		return "", err
	}

	html, err := s.renderer.Render(post.PostBody())
	if err != nil {
		return "", fmt.Errorf("failed to render post %q: %w", slug, err)
	}
	return html, nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format %q", value)
}

package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/arieldiaz/bitacora/blog/domain"
)

var _ domain.PostStore = (*SQLiteStore)(nil)

// latestPostsLimit caps the list endpoint in table mode.
const latestPostsLimit = 5

// SQLiteStore implements domain.PostStore on a single posts table.
// Tags are stored as a JSON array string and dates as RFC 3339 strings;
// both are decoded back on every read.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLiteStore from a standard sql.DB
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{
		db: db,
	}
}

func (s *SQLiteStore) RequiredFields() []string {
	return []string{domain.FieldTitle, domain.FieldDate, domain.FieldTags, domain.FieldAuthor, domain.FieldBody}
}

const insertPostQuery = `
	INSERT INTO posts (title, date, tags, author, slug, body)
	VALUES (?, ?, ?, ?, ?, ?)
`

// Create inserts a new row. Slug uniqueness is enforced by the UNIQUE
// constraint rather than a pre-check, so concurrent creates of the same
// slug cannot both succeed.
func (s *SQLiteStore) Create(ctx context.Context, post domain.NewPost) error {
	tagsJSON, err := json.Marshal(post.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	_, err = s.db.ExecContext(ctx, insertPostQuery,
		post.Title,
		post.Date.UTC().Format(time.RFC3339),
		string(tagsJSON),
		post.Author,
		post.Slug,
		post.Body,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("slug %q: %w", post.Slug, domain.ErrSlugExists)
		}
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

const listPostsQuery = `
	SELECT id, title, date, tags, author, slug, body
	FROM posts
	ORDER BY date DESC
	LIMIT ?
`

// List returns the latest posts, newest first, capped at latestPostsLimit.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.db.QueryContext(ctx, listPostsQuery, latestPostsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.Record, 0, latestPostsLimit)
	for rows.Next() {
		var row postRow
		if err := rows.Scan(&row.ID, &row.Title, &row.Date, &row.Tags, &row.Author, &row.Slug, &row.Body); err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}

		post, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	if len(posts) == 0 {
		return nil, domain.ErrNoPosts
	}

	return posts, nil
}

const getPostBySlugQuery = `
	SELECT id, title, date, tags, author, slug, body
	FROM posts
	WHERE slug = ?
`

// GetBySlug retrieves a single post by its unique slug
func (s *SQLiteStore) GetBySlug(ctx context.Context, slug string) (domain.Record, error) {
	var row postRow
	err := s.db.QueryRowContext(ctx, getPostBySlugQuery, slug).Scan(
		&row.ID,
		&row.Title,
		&row.Date,
		&row.Tags,
		&row.Author,
		&row.Slug,
		&row.Body,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("slug %q: %w", slug, domain.ErrNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return row.toDomain()
}

// isUniqueViolation matches the driver's UNIQUE constraint error. The
// modernc driver exposes it only through the message text.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// postRow is a private struct used to scan database rows before the
// stored tags and date strings are decoded into domain values
type postRow struct {
	ID     int64
	Title  string
	Date   string
	Tags   string
	Author string
	Slug   string
	Body   string
}

func (pr *postRow) toDomain() (*domain.TablePost, error) {
	date, err := time.Parse(time.RFC3339, pr.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored date %q: %w", pr.Date, err)
	}

	var tags []string
	if err := json.Unmarshal([]byte(pr.Tags), &tags); err != nil {
		return nil, fmt.Errorf("failed to decode stored tags %q: %w", pr.Tags, err)
	}

	return &domain.TablePost{
		ID:     pr.ID,
		Title:  pr.Title,
		Date:   date,
		Tags:   tags,
		Author: pr.Author,
		Slug:   pr.Slug,
		Body:   pr.Body,
	}, nil
}

package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/arieldiaz/bitacora/blog/domain"
	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE posts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			date TEXT NOT NULL,
			tags TEXT NOT NULL,
			author TEXT NOT NULL,
			slug TEXT NOT NULL UNIQUE,
			body TEXT NOT NULL
		)
	`)
	if err != nil {
		t.Fatalf("failed to create posts table: %v", err)
	}

	return db
}

func testPost(slug string, date time.Time) domain.NewPost {
	return domain.NewPost{
		Slug:   slug,
		Title:  "Title for " + slug,
		Date:   date,
		Tags:   []string{"go", "testing"},
		Author: "ariel",
		Body:   "body of " + slug,
	}
}

func TestSQLiteStore_CreateAndGetBySlug(t *testing.T) {
	store := NewSQLiteStore(setupTestDB(t))
	ctx := context.Background()

	date := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	if err := store.Create(ctx, testPost("first-post", date)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.GetBySlug(ctx, "first-post")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}

	post, ok := got.(*domain.TablePost)
	if !ok {
		t.Fatalf("GetBySlug returned %T, want *domain.TablePost", got)
	}

	if post.ID == 0 {
		t.Error("ID was not assigned by the database")
	}
	if post.Title != "Title for first-post" {
		t.Errorf("Title = %q", post.Title)
	}
	if !post.Date.Equal(date) {
		t.Errorf("Date = %v, want %v", post.Date, date)
	}
	if len(post.Tags) != 2 || post.Tags[0] != "go" || post.Tags[1] != "testing" {
		t.Errorf("Tags = %v, want [go testing]", post.Tags)
	}
	if post.Author != "ariel" {
		t.Errorf("Author = %q", post.Author)
	}
	if post.Body != "body of first-post" {
		t.Errorf("Body = %q", post.Body)
	}
}

func TestSQLiteStore_GetBySlug_NotFound(t *testing.T) {
	store := NewSQLiteStore(setupTestDB(t))

	_, err := store.GetBySlug(context.Background(), "nope")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetBySlug error = %v, want ErrNotFound", err)
	}
}

func TestSQLiteStore_Create_DuplicateSlug(t *testing.T) {
	store := NewSQLiteStore(setupTestDB(t))
	ctx := context.Background()

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if err := store.Create(ctx, testPost("dup", date)); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	err := store.Create(ctx, testPost("dup", date.Add(time.Hour)))
	if !errors.Is(err, domain.ErrSlugExists) {
		t.Errorf("second Create error = %v, want ErrSlugExists", err)
	}
}

func TestSQLiteStore_List_Empty(t *testing.T) {
	store := NewSQLiteStore(setupTestDB(t))

	_, err := store.List(context.Background())
	if !errors.Is(err, domain.ErrNoPosts) {
		t.Errorf("List error = %v, want ErrNoPosts", err)
	}
}

func TestSQLiteStore_List_LatestFive(t *testing.T) {
	store := NewSQLiteStore(setupTestDB(t))
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		post := testPost(fmt.Sprintf("post-%d", i), base.AddDate(0, 0, i))
		if err := store.Create(ctx, post); err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
	}

	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(records) != 5 {
		t.Fatalf("List returned %d records, want 5", len(records))
	}

	// Newest first: post-6 down to post-2
	for i, record := range records {
		post, ok := record.(*domain.TablePost)
		if !ok {
			t.Fatalf("record %d is %T, want *domain.TablePost", i, record)
		}

		wantSlug := fmt.Sprintf("post-%d", 6-i)
		if post.Slug != wantSlug {
			t.Errorf("record %d slug = %q, want %q", i, post.Slug, wantSlug)
		}
		if len(post.Tags) == 0 {
			t.Errorf("record %d tags not decoded", i)
		}
	}
}

func TestSQLiteStore_RequiredFields(t *testing.T) {
	store := NewSQLiteStore(setupTestDB(t))

	want := []string{"title", "date", "tags", "author", "body"}
	got := store.RequiredFields()
	if len(got) != len(want) {
		t.Fatalf("RequiredFields = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RequiredFields[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

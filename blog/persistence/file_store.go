package persistence

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/arieldiaz/bitacora/blog/domain"
)

var _ domain.PostStore = (*FileStore)(nil)

const postFileExt = ".md"

// FileStore implements domain.PostStore as one Markdown file per post
// under a content directory, named <slug>.md. Each file starts with a
// front matter block carrying title, date, and description.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{
		dir: dir,
	}
}

func (s *FileStore) RequiredFields() []string {
	return []string{domain.FieldTitle, domain.FieldDate, domain.FieldDescription, domain.FieldBody}
}

// ensureDir creates the content directory if absent. Safe to call on
// every operation; MkdirAll does not error when the directory exists.
func (s *FileStore) ensureDir() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create content directory: %w", err)
	}
	return nil
}

// Create writes <slug>.md. An already existing file means the slug is
// taken; O_EXCL makes the existence check and the write one atomic step.
func (s *FileStore) Create(ctx context.Context, post domain.NewPost) error {
	if err := s.ensureDir(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path(post.Slug), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("slug %q: %w", post.Slug, domain.ErrSlugExists)
		}
		return fmt.Errorf("failed to create post file: %w", err)
	}

	if _, err := f.WriteString(serializePost(post)); err != nil {
		f.Close()
		return fmt.Errorf("failed to write post file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close post file: %w", err)
	}

	return nil
}

// List reads every post file in the content directory. The slug of each
// entry is the filename without its extension.
func (s *FileStore) List(ctx context.Context) ([]domain.Record, error) {
	if err := s.ensureDir(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read content directory: %w", err)
	}

	posts := make([]domain.Record, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), postFileExt) {
			continue
		}

		slug := strings.TrimSuffix(entry.Name(), postFileExt)
		post, err := s.readPost(slug)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if len(posts) == 0 {
		return nil, domain.ErrNoPosts
	}

	return posts, nil
}

func (s *FileStore) GetBySlug(ctx context.Context, slug string) (domain.Record, error) {
	post, err := s.readPost(slug)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("slug %q: %w", slug, domain.ErrNotFound)
		}
		return nil, err
	}
	return post, nil
}

func (s *FileStore) path(slug string) string {
	return filepath.Join(s.dir, slug+postFileExt)
}

// frontMatter mirrors the block written by serializePost.
type frontMatter struct {
	Title       string `yaml:"title"`
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
}

// serializePost renders the stored file format: a front matter block
// followed by the raw body. The layout is a compatibility contract.
func serializePost(post domain.NewPost) string {
	return fmt.Sprintf("---\ntitle: %q\ndate: %q\ndescription: %q\n---\n%s",
		post.Title,
		post.Date.UTC().Format(time.RFC3339),
		post.Description,
		post.Body,
	)
}

// readPost parses a stored file back into a structured record.
func (s *FileStore) readPost(slug string) (*domain.FilePost, error) {
	f, err := os.Open(s.path(slug))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to open post file: %w", err)
	}
	defer f.Close()

	var meta frontMatter
	body, err := frontmatter.Parse(f, &meta)
	if err != nil {
		return nil, fmt.Errorf("failed to parse front matter of %q: %w", slug, err)
	}

	date, err := time.Parse(time.RFC3339, meta.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored date of %q: %w", slug, err)
	}

	return &domain.FilePost{
		Slug:        slug,
		Title:       meta.Title,
		Date:        date,
		Description: meta.Description,
		Body:        string(body),
	}, nil
}

package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UkralStul/blog-mvc/internal/domain"
	"github.com/UkralStul/blog-mvc/internal/storage"
	"github.com/UkralStul/blog-mvc/internal/storage/storagetest"
)

func newTestStore(t *testing.T, path string) *Store {
	t.Helper()
	s, err := New(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_Contract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Storage {
		return newTestStore(t, filepath.Join(t.TempDir(), "blog.db"))
	})
}

func TestStore_CreatesDirectoryAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "blog.db")
	ctx := context.Background()

	s, err := New(path)
	require.NoError(t, err)
	created, err := s.CreatePost(ctx, domain.NewPost(domain.PostInput{Title: "Durable", Content: "Survives a reopen"}))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened := newTestStore(t, path)
	got, err := reopened.GetPostByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Durable", got.Title)
	assert.True(t, got.CreatedAt.Equal(created.CreatedAt))

	seeded, err := storage.SeedWelcomePost(ctx, reopened)
	require.NoError(t, err)
	assert.False(t, seeded)
}

func TestStore_ColumnDefaults(t *testing.T) {
	s := newTestStore(t, filepath.Join(t.TempDir(), "blog.db"))
	ctx := context.Background()

	// строка, вставленная в обход CreatePost, получает значения по умолчанию из схемы
	res, err := s.db.ExecContext(ctx, `INSERT INTO posts (title, content) VALUES (?, ?)`, "Raw", "Inserted directly")
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)

	got, err := s.GetPostByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAuthor, got.Author)
	assert.False(t, got.CreatedAt.IsZero())
	assert.True(t, got.CreatedAt.Equal(got.UpdatedAt))
}

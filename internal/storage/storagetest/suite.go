// Package storagetest содержит общий набор проверок для всех реализаций storage.Storage.
package storagetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UkralStul/blog-mvc/internal/domain"
	"github.com/UkralStul/blog-mvc/internal/storage"
)

// Factory возвращает пустое хранилище. Закрывать его должен сам тест через t.Cleanup.
type Factory func(t *testing.T) storage.Storage

// Run прогоняет контрактные тесты против хранилища из factory.
func Run(t *testing.T, factory Factory) {
	t.Run("CreateAndGet", func(t *testing.T) { testCreateAndGet(t, factory(t)) })
	t.Run("UpdateKeepsIdentity", func(t *testing.T) { testUpdate(t, factory(t)) })
	t.Run("UpdateMissing", func(t *testing.T) { testUpdateMissing(t, factory(t)) })
	t.Run("Delete", func(t *testing.T) { testDelete(t, factory(t)) })
	t.Run("ListOrder", func(t *testing.T) { testListOrder(t, factory(t)) })
	t.Run("SeedWelcomePost", func(t *testing.T) { testSeed(t, factory(t)) })
}

func testCreateAndGet(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	created, err := s.CreatePost(ctx, domain.NewPost(domain.PostInput{
		Title:   "First post",
		Content: "Some meaningful content",
	}))
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	got, err := s.GetPostByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "First post", got.Title)
	assert.Equal(t, "Some meaningful content", got.Content)
	assert.Equal(t, domain.DefaultAuthor, got.Author)
	assert.True(t, got.CreatedAt.Equal(got.UpdatedAt))
	assert.True(t, got.CreatedAt.Equal(created.CreatedAt))

	other, err := s.CreatePost(ctx, domain.NewPost(domain.PostInput{
		Title:   "Second post",
		Content: "Different content entirely",
		Author:  "Jane",
	}))
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, other.ID)
	assert.Equal(t, "Jane", other.Author)

	_, err = s.GetPostByID(ctx, other.ID+1000)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func testUpdate(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	created, err := s.CreatePost(ctx, domain.NewPost(domain.PostInput{
		Title:   "Original",
		Content: "Original content",
		Author:  "Writer",
	}))
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)

	updated, err := s.UpdatePost(ctx, created.ID, "Changed", "Changed content body")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Changed", updated.Title)
	assert.Equal(t, "Changed content body", updated.Content)
	assert.Equal(t, "Writer", updated.Author)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	got, err := s.GetPostByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Changed", got.Title)
	assert.True(t, got.UpdatedAt.Equal(updated.UpdatedAt))
	assert.False(t, got.CreatedAt.After(got.UpdatedAt))
}

func testUpdateMissing(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	_, err := s.UpdatePost(ctx, 424242, "Title", "Content here")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	n, err := s.CountPosts(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func testDelete(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	created, err := s.CreatePost(ctx, domain.NewPost(domain.PostInput{
		Title:   "Doomed",
		Content: "This will be deleted",
	}))
	require.NoError(t, err)

	require.NoError(t, s.DeletePost(ctx, created.ID))

	_, err = s.GetPostByID(ctx, created.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.ErrorIs(t, s.DeletePost(ctx, created.ID), storage.ErrNotFound)
}

func testListOrder(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	var ids []int64
	for _, title := range []string{"P1", "P2", "P3"} {
		p, err := s.CreatePost(ctx, domain.NewPost(domain.PostInput{
			Title:   title,
			Content: "Content of " + title,
		}))
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}

	posts, err := s.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, []string{"P3", "P2", "P1"}, []string{posts[0].Title, posts[1].Title, posts[2].Title})
	assert.Equal(t, ids[2], posts[0].ID)

	n, err := s.CountPosts(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func testSeed(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	seeded, err := storage.SeedWelcomePost(ctx, s)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = storage.SeedWelcomePost(ctx, s)
	require.NoError(t, err)
	assert.False(t, seeded)

	posts, err := s.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Welcome to My Blog", posts[0].Title)
	assert.Equal(t, "Blog Owner", posts[0].Author)
}

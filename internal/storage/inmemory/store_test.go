package inmemory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UkralStul/blog-mvc/internal/domain"
	"github.com/UkralStul/blog-mvc/internal/storage"
	"github.com/UkralStul/blog-mvc/internal/storage/storagetest"
)

func TestStore_Contract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Storage { return New() })
}

// newTestStore создает хранилище и один пост для тестов
func newTestStore(t *testing.T) (*Store, *domain.Post) {
	store := New()
	post, err := store.CreatePost(context.Background(), domain.NewPost(domain.PostInput{
		Title:   "Test Post",
		Content: "Content of the test post",
	}))
	require.NoError(t, err)
	return store, post
}

func TestStore_ReturnsCopies(t *testing.T) {
	store, post := newTestStore(t)
	ctx := context.Background()

	post.Title = "mutated outside"

	got, err := store.GetPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test Post", got.Title)

	got.Title = "mutated again"
	list, err := store.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Test Post", list[0].Title)
}

func TestStore_IDsAreNotReused(t *testing.T) {
	store, post := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.DeletePost(ctx, post.ID))

	next, err := store.CreatePost(ctx, domain.NewPost(domain.PostInput{Title: "Next", Content: "Next content here"}))
	require.NoError(t, err)
	assert.Greater(t, next.ID, post.ID)
}

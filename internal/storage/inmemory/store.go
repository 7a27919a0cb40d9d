package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/UkralStul/blog-mvc/internal/domain"
	"github.com/UkralStul/blog-mvc/internal/storage"
)

// Store реализует интерфейс Storage в памяти.
type Store struct {
	mu     sync.RWMutex
	posts  map[int64]*domain.Post
	lastID int64
}

// New создает новый экземпляр in-memory хранилища.
func New() *Store {
	return &Store{
		posts: make(map[int64]*domain.Post),
	}
}

func (s *Store) CreatePost(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	stored := *post
	stored.ID = s.lastID
	if stored.Author == "" {
		stored.Author = domain.DefaultAuthor
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = domain.Now()
	}
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = stored.CreatedAt
	}
	s.posts[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (s *Store) GetPostByID(ctx context.Context, id int64) (*domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := *post
	return &out, nil
}

func (s *Store) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allPosts := make([]*domain.Post, 0, len(s.posts))
	for _, p := range s.posts {
		cp := *p
		allPosts = append(allPosts, &cp)
	}

	// Новые первыми; при равном времени решает id
	sort.Slice(allPosts, func(i, j int) bool {
		if !allPosts[i].CreatedAt.Equal(allPosts[j].CreatedAt) {
			return allPosts[i].CreatedAt.After(allPosts[j].CreatedAt)
		}
		return allPosts[i].ID > allPosts[j].ID
	})
	return allPosts, nil
}

func (s *Store) UpdatePost(ctx context.Context, id int64, title, content string) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	post.Title = title
	post.Content = content
	post.UpdatedAt = domain.Now()

	out := *post
	return &out, nil
}

func (s *Store) DeletePost(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.posts, id)
	return nil
}

func (s *Store) CountPosts(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.posts)), nil
}

func (s *Store) Close() error { return nil }

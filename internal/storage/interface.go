package storage

import (
	"context"
	"errors"

	"github.com/UkralStul/blog-mvc/internal/domain"
)

// ErrNotFound возвращается всеми хранилищами, когда поста с таким id нет.
var ErrNotFound = errors.New("post not found")

// Storage определяет контракт для хранилищ.
type Storage interface {
	// ListPosts возвращает все посты, новые первыми.
	ListPosts(ctx context.Context) ([]*domain.Post, error)
	GetPostByID(ctx context.Context, id int64) (*domain.Post, error)
	// CreatePost присваивает id; пустой автор и нулевые метки времени заполняются хранилищем.
	CreatePost(ctx context.Context, post *domain.Post) (*domain.Post, error)
	// UpdatePost заменяет заголовок и содержимое и обновляет updated_at.
	// id, автор и created_at не меняются. Если поста нет - ErrNotFound, без изменений.
	UpdatePost(ctx context.Context, id int64, title, content string) (*domain.Post, error)
	DeletePost(ctx context.Context, id int64) error
	CountPosts(ctx context.Context) (int64, error)
	Close() error
}

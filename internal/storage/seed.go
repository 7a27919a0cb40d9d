package storage

import (
	"context"
	"fmt"

	"github.com/UkralStul/blog-mvc/internal/domain"
)

// SeedWelcomePost добавляет приветственный пост, если хранилище пустое.
// Возвращает true, если пост был создан.
func SeedWelcomePost(ctx context.Context, s Storage) (bool, error) {
	n, err := s.CountPosts(ctx)
	if err != nil {
		return false, fmt.Errorf("count posts: %w", err)
	}
	if n > 0 {
		return false, nil
	}
	if _, err := s.CreatePost(ctx, domain.Welcome()); err != nil {
		return false, fmt.Errorf("create welcome post: %w", err)
	}
	return true, nil
}

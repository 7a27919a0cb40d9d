package domain

import "time"

// DefaultAuthor подставляется, когда автор поста не указан.
const DefaultAuthor = "Anonymous"

// Post представляет пост в блоге.
type Post struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"type:text;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Author    string    `json:"author" gorm:"type:text;not null;default:'Anonymous'"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null;index:idx_posts_created_at,sort:desc"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null"`
}

// PostInput - тело запроса на создание или обновление поста.
type PostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author,omitempty"`
}

// Now возвращает текущее время в том виде, в котором оно хранится: UTC с точностью до миллисекунд.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// NewPost собирает пост для вставки: автор по умолчанию и одинаковые метки времени.
func NewPost(in PostInput) *Post {
	author := in.Author
	if author == "" {
		author = DefaultAuthor
	}
	now := Now()
	return &Post{
		Title:     in.Title,
		Content:   in.Content,
		Author:    author,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Welcome - пост, которым заполняется пустое хранилище при первом запуске.
func Welcome() *Post {
	return NewPost(PostInput{
		Title:   "Welcome to My Blog",
		Content: "This is my first blog post! I'm excited to share my thoughts and experiences with you.",
		Author:  "Blog Owner",
	})
}

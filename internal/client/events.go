package client

import "github.com/UkralStul/blog-mvc/internal/domain"

// Подписчик Manager реализует любое подмножество этих интерфейсов.

type PostsLoadedHandler interface {
	OnPostsLoaded(posts []domain.Post)
}

type PostCreatedHandler interface {
	OnPostCreated(post domain.Post)
}

type PostUpdatedHandler interface {
	OnPostUpdated(post domain.Post)
}

type PostDeletedHandler interface {
	OnPostDeleted(id int64)
}

type ErrorHandler interface {
	OnError(message string)
}

type LoadingStartedHandler interface {
	OnLoadingStarted()
}

type LoadingEndedHandler interface {
	OnLoadingEnded()
}

// LoadingChangedHandler получает каждое переключение флага загрузки.
type LoadingChangedHandler interface {
	OnLoadingChanged(loading bool)
}

// Callbacks - подписчик из набора функций; nil-поля пропускаются.
// Регистрировать нужно указатель.
type Callbacks struct {
	PostsLoaded    func(posts []domain.Post)
	PostCreated    func(post domain.Post)
	PostUpdated    func(post domain.Post)
	PostDeleted    func(id int64)
	Error          func(message string)
	LoadingStarted func()
	LoadingEnded   func()
	LoadingChanged func(loading bool)
}

func (c *Callbacks) OnPostsLoaded(posts []domain.Post) {
	if c.PostsLoaded != nil {
		c.PostsLoaded(posts)
	}
}

func (c *Callbacks) OnPostCreated(post domain.Post) {
	if c.PostCreated != nil {
		c.PostCreated(post)
	}
}

func (c *Callbacks) OnPostUpdated(post domain.Post) {
	if c.PostUpdated != nil {
		c.PostUpdated(post)
	}
}

func (c *Callbacks) OnPostDeleted(id int64) {
	if c.PostDeleted != nil {
		c.PostDeleted(id)
	}
}

func (c *Callbacks) OnError(message string) {
	if c.Error != nil {
		c.Error(message)
	}
}

func (c *Callbacks) OnLoadingStarted() {
	if c.LoadingStarted != nil {
		c.LoadingStarted()
	}
}

func (c *Callbacks) OnLoadingEnded() {
	if c.LoadingEnded != nil {
		c.LoadingEnded()
	}
}

func (c *Callbacks) OnLoadingChanged(loading bool) {
	if c.LoadingChanged != nil {
		c.LoadingChanged(loading)
	}
}

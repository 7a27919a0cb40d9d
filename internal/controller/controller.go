// Package controller связывает клиентскую модель (client.Manager) и
// представление (view.View): переводит уведомления одного в вызовы другого
// и отвечает за порядок запуска приложения.
package controller

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/UkralStul/blog-mvc/internal/domain"
)

const (
	msgInitFailed   = "Failed to initialize application. Please refresh the page."
	msgLoadFailed   = "Failed to load blog posts. Please try again."
	msgCreated      = "Post created successfully!"
	msgCreateFailed = "Failed to create post. Please try again."
	msgUpdated      = "Post updated successfully!"
	msgUpdateFailed = "Failed to update post. Please try again."
	msgDeleted      = "Post deleted successfully!"
	msgDeleteFailed = "Failed to delete post. Please try again."
	msgPostNotFound = "Post not found."
)

// Model - то, что контроллеру нужно от client.Manager.
type Model interface {
	Subscribe(sub any)
	Posts() []domain.Post
	IsLoading() bool
	PostByID(id int64) (domain.Post, bool)
	LoadPosts(ctx context.Context) ([]domain.Post, error)
	CreatePost(ctx context.Context, in domain.PostInput) (domain.Post, error)
	UpdatePost(ctx context.Context, id int64, in domain.PostInput) (domain.Post, error)
	DeletePost(ctx context.Context, id int64) error
}

// Presenter - то, что контроллеру нужно от view.View.
type Presenter interface {
	Subscribe(sub any)
	Initialize()
	RenderPosts(posts []domain.Post)
	ClearForm()
	ShowEditModal(post domain.Post)
	HideEditModal()
	CurrentEditID() (int64, bool)
	ShowLoading()
	HideLoading()
	ShowError(message string)
	ShowSuccess(message string)
}

// State - снимок состояния приложения для отладки.
type State struct {
	Initialized   bool
	PostsCount    int
	CurrentEditID int64
	IsLoading     bool
}

type Controller struct {
	model  Model
	view   Presenter
	logger *log.Logger

	mu          sync.Mutex
	initialized bool
	// ctx из Initialize; с ним уходят запросы, порожденные действиями пользователя
	ctx context.Context
}

func New(model Model, view Presenter, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{model: model, view: view, logger: logger, ctx: context.Background()}
}

// Initialize подписывается на модель и представление, рисует страницу и
// загружает посты. Повторный вызов только пишет предупреждение в лог.
// Ошибка загрузки показывается пользователю, но инициализацию не отменяет.
func (c *Controller) Initialize(ctx context.Context) error {
	c.mu.Lock()
	if c.initialized {
		c.mu.Unlock()
		c.logger.Println("warning: controller already initialized")
		return nil
	}
	if err := ctx.Err(); err != nil {
		c.mu.Unlock()
		c.view.ShowError(msgInitFailed)
		return fmt.Errorf("initialize controller: %w", err)
	}
	c.initialized = true
	c.ctx = ctx
	c.mu.Unlock()

	c.model.Subscribe(c)
	c.view.Subscribe(c)
	c.view.Initialize()
	c.loadPosts(ctx)

	c.logger.Println("blog controller initialized")
	return nil
}

// State возвращает снимок: инициализирован ли контроллер, сколько постов в кэше,
// какой пост редактируется и идет ли запрос.
func (c *Controller) State() State {
	c.mu.Lock()
	initialized := c.initialized
	c.mu.Unlock()

	editID, _ := c.view.CurrentEditID()
	return State{
		Initialized:   initialized,
		PostsCount:    len(c.model.Posts()),
		CurrentEditID: editID,
		IsLoading:     c.model.IsLoading(),
	}
}

// Reset очищает форму создания и перезагружает список.
func (c *Controller) Reset(ctx context.Context) {
	c.view.ClearForm()
	c.loadPosts(ctx)
}

func (c *Controller) loadPosts(ctx context.Context) {
	if _, err := c.model.LoadPosts(ctx); err != nil {
		c.logger.Printf("failed to load posts: %v", err)
		c.view.ShowError(msgLoadFailed)
	}
}

func (c *Controller) requestContext() context.Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ctx
}

// Уведомления представления

func (c *Controller) OnViewInitialized() {
	c.logger.Println("view initialized")
}

func (c *Controller) OnPostCreateRequested(in domain.PostInput) {
	if _, err := c.model.CreatePost(c.requestContext(), in); err != nil {
		c.logger.Printf("failed to create post: %v", err)
		c.view.ShowError(msgCreateFailed)
		return
	}
	c.view.ShowSuccess(msgCreated)
}

func (c *Controller) OnPostUpdateRequested(id int64, in domain.PostInput) {
	if _, err := c.model.UpdatePost(c.requestContext(), id, in); err != nil {
		c.logger.Printf("failed to update post %d: %v", id, err)
		c.view.ShowError(msgUpdateFailed)
	}
}

// OnPostDeleteRequested приходит уже после подтверждения пользователем.
func (c *Controller) OnPostDeleteRequested(id int64) {
	if err := c.model.DeletePost(c.requestContext(), id); err != nil {
		c.logger.Printf("failed to delete post %d: %v", id, err)
		c.view.ShowError(msgDeleteFailed)
		return
	}
	c.view.ShowSuccess(msgDeleted)
}

func (c *Controller) OnPostEditRequested(id int64) {
	post, ok := c.model.PostByID(id)
	if !ok {
		c.view.ShowError(msgPostNotFound)
		return
	}
	c.view.ShowEditModal(post)
}

// Уведомления модели

func (c *Controller) OnPostsLoaded(posts []domain.Post) {
	c.logger.Printf("posts loaded: %d", len(posts))
	c.view.RenderPosts(posts)
}

func (c *Controller) OnPostCreated(post domain.Post) {
	c.logger.Printf("post created: %d", post.ID)
	c.view.ClearForm()
	c.loadPosts(c.requestContext())
}

func (c *Controller) OnPostUpdated(post domain.Post) {
	c.logger.Printf("post updated: %d", post.ID)
	c.view.HideEditModal()
	c.view.RenderPosts(c.model.Posts())
	c.view.ShowSuccess(msgUpdated)
}

func (c *Controller) OnPostDeleted(id int64) {
	c.logger.Printf("post deleted: %d", id)
	c.view.RenderPosts(c.model.Posts())
}

func (c *Controller) OnLoadingStarted() { c.view.ShowLoading() }

func (c *Controller) OnLoadingEnded() { c.view.HideLoading() }

// OnError только логирует: пользователю сообщение показывает обработчик
// конкретного действия.
func (c *Controller) OnError(message string) {
	c.logger.Printf("error occurred: %s", message)
}

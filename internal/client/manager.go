// Package client - клиентская модель блога: кэш постов, запросы к REST API
// и уведомления подписчиков о каждом шаге.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/UkralStul/blog-mvc/internal/domain"
	"github.com/UkralStul/blog-mvc/internal/observer"
)

// Option настраивает Manager.
type Option func(*Manager)

// WithHTTPClient подменяет HTTP-клиент (таймауты, транспорт в тестах).
func WithHTTPClient(c *http.Client) Option {
	return func(m *Manager) { m.http = c }
}

// WithLogger задает логгер; по умолчанию log.Default().
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// Manager владеет кэшем постов и флагом загрузки.
//
// Кэш не авторитетен: при загрузке он заменяется целиком, при создании и
// обновлении правится точечно. Одинаковые запросы не объединяются, в кэш
// попадает ответ, пришедший последним.
type Manager struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
	subs    observer.List

	mu      sync.RWMutex
	posts   []domain.Post
	loading bool
}

// NewManager создает менеджер для API по адресу baseURL (например http://localhost:3001/api/posts).
func NewManager(baseURL string, opts ...Option) *Manager {
	m := &Manager{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Subscribe регистрирует подписчика; см. интерфейсы *Handler в events.go.
func (m *Manager) Subscribe(sub any) { m.subs.Add(sub) }

// Unsubscribe удаляет подписчика.
func (m *Manager) Unsubscribe(sub any) { m.subs.Remove(sub) }

// Posts возвращает копию кэша.
func (m *Manager) Posts() []domain.Post {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Post, len(m.posts))
	copy(out, m.posts)
	return out
}

// IsLoading сообщает, выполняется ли сейчас запрос.
func (m *Manager) IsLoading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// PostByID ищет пост в кэше без обращения к сети.
func (m *Manager) PostByID(id int64) (domain.Post, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.posts {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Post{}, false
}

// LoadPosts загружает весь список и заменяет кэш.
func (m *Manager) LoadPosts(ctx context.Context) ([]domain.Post, error) {
	m.setLoading(true)
	observer.Notify(&m.subs, func(h LoadingStartedHandler) { h.OnLoadingStarted() })
	defer func() {
		m.setLoading(false)
		observer.Notify(&m.subs, func(h LoadingEndedHandler) { h.OnLoadingEnded() })
	}()

	var posts []domain.Post
	if err := m.do(ctx, http.MethodGet, "", nil, &posts); err != nil {
		return nil, m.fail("loading posts", err)
	}
	if posts == nil {
		posts = []domain.Post{}
	}

	m.mu.Lock()
	m.posts = posts
	m.mu.Unlock()

	loaded := m.Posts()
	observer.Notify(&m.subs, func(h PostsLoadedHandler) { h.OnPostsLoaded(loaded) })
	return loaded, nil
}

// CreatePost проверяет данные локально и создает пост. Невалидные данные в сеть не уходят.
func (m *Manager) CreatePost(ctx context.Context, in domain.PostInput) (domain.Post, error) {
	if err := domain.Validate(in); err != nil {
		return domain.Post{}, m.fail("creating post", err)
	}

	m.setLoading(true)
	defer m.setLoading(false)

	var created domain.Post
	if err := m.do(ctx, http.MethodPost, "", in, &created); err != nil {
		return domain.Post{}, m.fail("creating post", err)
	}

	m.mu.Lock()
	m.posts = append([]domain.Post{created}, m.posts...)
	m.mu.Unlock()

	observer.Notify(&m.subs, func(h PostCreatedHandler) { h.OnPostCreated(created) })
	return created, nil
}

// UpdatePost проверяет данные и заменяет пост с тем же id в кэше.
func (m *Manager) UpdatePost(ctx context.Context, id int64, in domain.PostInput) (domain.Post, error) {
	if err := domain.Validate(in); err != nil {
		return domain.Post{}, m.fail("updating post", err)
	}

	m.setLoading(true)
	defer m.setLoading(false)

	body := domain.PostInput{Title: in.Title, Content: in.Content}
	var updated domain.Post
	if err := m.do(ctx, http.MethodPut, postPath(id), body, &updated); err != nil {
		return domain.Post{}, m.fail("updating post", err)
	}

	m.mu.Lock()
	for i := range m.posts {
		if m.posts[i].ID == id {
			m.posts[i] = updated
		}
	}
	m.mu.Unlock()

	observer.Notify(&m.subs, func(h PostUpdatedHandler) { h.OnPostUpdated(updated) })
	return updated, nil
}

// DeletePost удаляет пост на сервере и из кэша.
func (m *Manager) DeletePost(ctx context.Context, id int64) error {
	m.setLoading(true)
	defer m.setLoading(false)

	if err := m.do(ctx, http.MethodDelete, postPath(id), nil, nil); err != nil {
		return m.fail("deleting post", err)
	}

	m.mu.Lock()
	kept := m.posts[:0:0]
	for _, p := range m.posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	m.posts = kept
	m.mu.Unlock()

	observer.Notify(&m.subs, func(h PostDeletedHandler) { h.OnPostDeleted(id) })
	return nil
}

// FetchPost запрашивает один пост с сервера. Кэш не меняется.
func (m *Manager) FetchPost(ctx context.Context, id int64) (domain.Post, error) {
	var post domain.Post
	if err := m.do(ctx, http.MethodGet, postPath(id), nil, &post); err != nil {
		return domain.Post{}, m.fail("fetching post", err)
	}
	return post, nil
}

func (m *Manager) setLoading(loading bool) {
	m.mu.Lock()
	m.loading = loading
	m.mu.Unlock()
	observer.Notify(&m.subs, func(h LoadingChangedHandler) { h.OnLoadingChanged(loading) })
}

// fail логирует ошибку, рассылает ее текст подписчикам и возвращает дальше.
func (m *Manager) fail(op string, err error) error {
	m.logger.Printf("error %s: %v", op, err)
	msg := err.Error()
	observer.Notify(&m.subs, func(h ErrorHandler) { h.OnError(msg) })
	return err
}

func postPath(id int64) string {
	return "/" + strconv.FormatInt(id, 10)
}

// do выполняет запрос к baseURL+path и декодирует ответ в out (если out != nil).
func (m *Manager) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, m.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := m.http.Do(req)
	if err != nil {
		return &TransportError{Op: method + " " + req.URL.Path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reqErr := &RequestError{StatusCode: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&payload) == nil {
			reqErr.Detail = payload.Error
		}
		return reqErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: "decode response", Err: err}
	}
	return nil
}

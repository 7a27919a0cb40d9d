package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UkralStul/blog-mvc/internal/domain"
	"github.com/UkralStul/blog-mvc/internal/storage"
	"github.com/UkralStul/blog-mvc/internal/storage/inmemory"
)

func newTestServer(t *testing.T, store storage.Storage) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewHandler(store, log.New(io.Discard, "", 0)).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestAPI_CreateThenGet(t *testing.T) {
	srv := newTestServer(t, inmemory.New())

	resp := do(t, http.MethodPost, srv.URL+"/api/posts", `{"title":"Hello","content":"World of content"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	created := decode[domain.Post](t, resp)
	assert.Positive(t, created.ID)
	assert.Equal(t, domain.DefaultAuthor, created.Author)
	assert.True(t, created.CreatedAt.Equal(created.UpdatedAt))

	resp = do(t, http.MethodGet, srv.URL+"/api/posts/"+itoa(created.ID), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[domain.Post](t, resp)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Content, got.Content)
}

func TestAPI_WireShape(t *testing.T) {
	srv := newTestServer(t, inmemory.New())

	resp := do(t, http.MethodPost, srv.URL+"/api/posts", `{"title":"Shape","content":"Check the keys","author":"Ann"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	raw := decode[map[string]any](t, resp)
	for _, key := range []string{"id", "title", "content", "author", "createdAt", "updatedAt"} {
		assert.Contains(t, raw, key)
	}
	assert.Equal(t, "Ann", raw["author"])

	_, err := time.Parse(time.RFC3339, raw["createdAt"].(string))
	assert.NoError(t, err)
}

func TestAPI_CreateMissingFields(t *testing.T) {
	srv := newTestServer(t, inmemory.New())

	for _, body := range []string{`{"title":"only title"}`, `{"content":"only content"}`, `{"title":"  ","content":"x"}`} {
		resp := do(t, http.MethodPost, srv.URL+"/api/posts", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		assert.Equal(t, msgFieldsRequired, decode[ErrorResponse](t, resp).Error)
	}

	resp := do(t, http.MethodPost, srv.URL+"/api/posts", `{not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// только наличие полей: короткие значения сервер принимает
	resp = do(t, http.MethodPost, srv.URL+"/api/posts", `{"title":"a","content":"b"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestAPI_ListOrder(t *testing.T) {
	srv := newTestServer(t, inmemory.New())

	for _, title := range []string{"P1", "P2", "P3"} {
		resp := do(t, http.MethodPost, srv.URL+"/api/posts", `{"title":"`+title+`","content":"content body"}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := do(t, http.MethodGet, srv.URL+"/api/posts", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	posts := decode[[]domain.Post](t, resp)
	require.Len(t, posts, 3)
	assert.Equal(t, "P3", posts[0].Title)
	assert.Equal(t, "P2", posts[1].Title)
	assert.Equal(t, "P1", posts[2].Title)
}

func TestAPI_EmptyListIsArray(t *testing.T) {
	srv := newTestServer(t, inmemory.New())

	resp := do(t, http.MethodGet, srv.URL+"/api/posts", "")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(body))
}

func TestAPI_Update(t *testing.T) {
	store := inmemory.New()
	srv := newTestServer(t, store)
	ctx := context.Background()
	p, err := store.CreatePost(ctx, domain.NewPost(domain.PostInput{Title: "Before", Content: "Before content", Author: "Kim"}))
	require.NoError(t, err)

	resp := do(t, http.MethodPut, srv.URL+"/api/posts/"+itoa(p.ID), `{"title":"After","content":"After content"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[domain.Post](t, resp)
	assert.Equal(t, p.ID, updated.ID)
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, "Kim", updated.Author)
	assert.True(t, updated.CreatedAt.Equal(p.CreatedAt))
	assert.False(t, updated.UpdatedAt.Before(p.UpdatedAt))

	resp = do(t, http.MethodPut, srv.URL+"/api/posts/"+itoa(p.ID), `{"title":"After"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, http.MethodPut, srv.URL+"/api/posts/9999", `{"title":"After","content":"After content"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_Delete(t *testing.T) {
	store := inmemory.New()
	srv := newTestServer(t, store)
	p, err := store.CreatePost(context.Background(), domain.NewPost(domain.PostInput{Title: "Gone", Content: "Soon to be gone"}))
	require.NoError(t, err)

	resp := do(t, http.MethodDelete, srv.URL+"/api/posts/"+itoa(p.ID), "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/api/posts/"+itoa(p.ID), "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, http.MethodDelete, srv.URL+"/api/posts/"+itoa(p.ID), "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_InvalidIDIsNotFound(t *testing.T) {
	srv := newTestServer(t, inmemory.New())

	for _, id := range []string{"abc", "0", "-3"} {
		resp := do(t, http.MethodGet, srv.URL+"/api/posts/"+id, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, id)

		resp = do(t, http.MethodPut, srv.URL+"/api/posts/"+id, `{"title":"Hello","content":"World of content"}`)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, id)

		resp = do(t, http.MethodDelete, srv.URL+"/api/posts/"+id, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, id)
	}
}

func TestAPI_StoreFailureIs500(t *testing.T) {
	srv := newTestServer(t, brokenStore{})

	resp := do(t, http.MethodGet, srv.URL+"/api/posts", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Failed to fetch posts", decode[ErrorResponse](t, resp).Error)

	resp = do(t, http.MethodPost, srv.URL+"/api/posts", `{"title":"Hello","content":"World of content"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp = do(t, http.MethodDelete, srv.URL+"/api/posts/1", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestAPI_HealthAndCORS(t *testing.T) {
	srv := newTestServer(t, inmemory.New())

	resp := do(t, http.MethodGet, srv.URL+"/api/hc", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	resp = do(t, http.MethodOptions, srv.URL+"/api/posts", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

var errBroken = errors.New("disk on fire")

// brokenStore отвечает ошибкой на любой вызов
type brokenStore struct{}

func (brokenStore) ListPosts(context.Context) ([]*domain.Post, error) { return nil, errBroken }
func (brokenStore) GetPostByID(context.Context, int64) (*domain.Post, error) { return nil, errBroken }
func (brokenStore) CreatePost(context.Context, *domain.Post) (*domain.Post, error) {
	return nil, errBroken
}
func (brokenStore) UpdatePost(context.Context, int64, string, string) (*domain.Post, error) {
	return nil, errBroken
}
func (brokenStore) DeletePost(context.Context, int64) error { return errBroken }
func (brokenStore) CountPosts(context.Context) (int64, error) { return 0, errBroken }
func (brokenStore) Close() error { return nil }

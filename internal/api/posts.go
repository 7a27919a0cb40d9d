package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/UkralStul/blog-mvc/internal/domain"
	"github.com/UkralStul/blog-mvc/internal/storage"
)

const (
	msgFieldsRequired = "Title and content are required"
	msgBadBody        = "Invalid request body"
	msgNotFound       = "Post not found"
)

// postID достает id из пути. Нечисловой или неположительный id не может
// указывать на существующий пост, поэтому второй результат false.
func postID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// decodeInput читает тело и проверяет только наличие полей; длины проверяет клиент.
func decodeInput(r *http.Request) (domain.PostInput, string) {
	var in domain.PostInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return in, msgBadBody
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" {
		return in, msgFieldsRequired
	}
	return in, ""
}

// ListPosts - GET /api/posts
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	h.logger.Printf("GET /api/posts - fetching all posts")

	posts, err := h.store.ListPosts(r.Context())
	if err != nil {
		h.logger.Printf("list posts failed: %v", err)
		h.respondWithError(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}
	h.respondWithJSON(w, http.StatusOK, posts)
}

// GetPost - GET /api/posts/{id}
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		h.respondWithError(w, http.StatusNotFound, msgNotFound)
		return
	}

	post, err := h.store.GetPostByID(r.Context(), id)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		h.respondWithError(w, http.StatusNotFound, msgNotFound)
	case err != nil:
		h.logger.Printf("get post %d failed: %v", id, err)
		h.respondWithError(w, http.StatusInternalServerError, "Failed to fetch post")
	default:
		h.respondWithJSON(w, http.StatusOK, post)
	}
}

// CreatePost - POST /api/posts
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	in, problem := decodeInput(r)
	if problem != "" {
		h.logger.Printf("POST /api/posts - rejected: %s", problem)
		h.respondWithError(w, http.StatusBadRequest, problem)
		return
	}
	h.logger.Printf("POST /api/posts - creating new post: %s", in.Title)

	post, err := h.store.CreatePost(r.Context(), domain.NewPost(in))
	if err != nil {
		h.logger.Printf("create post failed: %v", err)
		h.respondWithError(w, http.StatusInternalServerError, "Failed to create post")
		return
	}
	h.respondWithJSON(w, http.StatusCreated, post)
}

// UpdatePost - PUT /api/posts/{id}
func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		h.respondWithError(w, http.StatusNotFound, msgNotFound)
		return
	}
	in, problem := decodeInput(r)
	if problem != "" {
		h.respondWithError(w, http.StatusBadRequest, problem)
		return
	}
	h.logger.Printf("PUT /api/posts/%d - updating post", id)

	post, err := h.store.UpdatePost(r.Context(), id, in.Title, in.Content)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		h.respondWithError(w, http.StatusNotFound, msgNotFound)
	case err != nil:
		h.logger.Printf("update post %d failed: %v", id, err)
		h.respondWithError(w, http.StatusInternalServerError, "Failed to update post")
	default:
		h.respondWithJSON(w, http.StatusOK, post)
	}
}

// DeletePost - DELETE /api/posts/{id}
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		h.respondWithError(w, http.StatusNotFound, msgNotFound)
		return
	}
	h.logger.Printf("DELETE /api/posts/%d - deleting post", id)

	err := h.store.DeletePost(r.Context(), id)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		h.respondWithError(w, http.StatusNotFound, msgNotFound)
	case err != nil:
		h.logger.Printf("delete post %d failed: %v", id, err)
		h.respondWithError(w, http.StatusInternalServerError, "Failed to delete post")
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

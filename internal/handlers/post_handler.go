package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/forumhub/backend/internal/auth"
	"github.com/forumhub/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// dateLayout is the wire format for period search bounds
const dateLayout = "2006-01-02"

// PostService is the interface that wraps methods for post business logic.
type PostService interface {
	// Method Create persists a new post with zero likes, no comments and the current timestamp.
	Create(ctx context.Context, author string, req *models.NewPostRequest) (*models.Post, error)
	// Method Get retrieves a post by id.
	Get(ctx context.Context, id string) (*models.Post, error)
	// Method Remove deletes a post and returns the removed record.
	Remove(ctx context.Context, id string) (*models.Post, error)
	// Method Update overwrites provided title/content and adds provided tags
	// to the existing tag set (union, never replacement).
	Update(ctx context.Context, id string, req *models.UpdatePostRequest) (*models.Post, error)
	// Method AddComment appends a comment and returns the updated post.
	AddComment(ctx context.Context, postID, author, message string) (*models.Post, error)
	// Method AddLike increments the like counter and returns the new value.
	AddLike(ctx context.Context, postID string) (int, error)
	// Method FindByAuthor returns all posts by the author, matched case-insensitively.
	FindByAuthor(ctx context.Context, author string) ([]models.Post, error)
	// Method FindByTags returns posts whose tag set intersects the given set.
	FindByTags(ctx context.Context, tags []string) ([]models.Post, error)
	// Method FindByPeriod returns posts created within the inclusive [from, to] range.
	FindByPeriod(ctx context.Context, from, to time.Time) ([]models.Post, error)
}

// PostHandler handles forum post HTTP requests
type PostHandler struct {
	BaseHandler
	service PostService
	owners  auth.OwnerLookup
}

// NewPostHandler creates a new post handler. The owner lookup backs the
// ownership policies on update and delete.
func NewPostHandler(service PostService, owners auth.OwnerLookup, logger *zap.Logger) *PostHandler {
	return &PostHandler{
		BaseHandler: newBaseHandler(logger),
		service:     service,
		owners:      owners,
	}
}

// RegisterRoutes registers all forum routes with their authorization policies
func (h *PostHandler) RegisterRoutes(r chi.Router) {
	r.Route("/forum", func(r chi.Router) {
		r.With(auth.Require(auth.SelfOnly("author"))).Post("/post/{author}", h.Create)
		r.With(auth.Require(auth.AuthenticatedOnly())).Get("/post/{postId}", h.Get)
		r.With(auth.Require(auth.OwnerOnly(h.owners, "postId"))).Put("/post/{postId}", h.Update)
		r.With(auth.Require(auth.OwnerOrRole(h.owners, "postId", models.RoleModerator))).Delete("/post/{postId}", h.Remove)
		r.With(auth.Require(auth.AuthenticatedOnly())).Get("/posts/author/{author}", h.FindByAuthor)
		r.With(auth.Require(auth.SelfOnly("author"))).Put("/post/{postId}/comment/{author}", h.AddComment)
		r.With(auth.Require(auth.Public())).Post("/posts/tags", h.FindByTags)
		r.With(auth.Require(auth.Public())).Post("/posts/period", h.FindByPeriod)
		r.With(auth.Require(auth.AuthenticatedOnly())).Put("/post/{postId}/like", h.AddLike)
	})
}

// Create handles POST /forum/post/{author}
// @Summary Create a post
// @Description Create a post under the authenticated author's own login.
// @Tags forum
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param author path string true "Post author login"
// @Param request body models.NewPostRequest true "New post"
// @Success 200 {object} models.Post
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 403 {object} map[string]string "Permission denied"
// @Router /forum/post/{author} [post]
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.NewPostRequest
	if err := h.decodeValid(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.service.Create(r.Context(), chi.URLParam(r, "author"), &req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, post)
}

// Get handles GET /forum/post/{postId}
// @Summary Get a post
// @Tags forum
// @Produce json
// @Security BasicAuth
// @Param postId path string true "Post id"
// @Success 200 {object} models.Post
// @Failure 404 {object} map[string]string "Post not found"
// @Router /forum/post/{postId} [get]
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.service.Get(r.Context(), chi.URLParam(r, "postId"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, post)
}

// Update handles PUT /forum/post/{postId}
// @Summary Update a post
// @Description Overwrite title/content and add tags to the existing tag set. Owner only.
// @Tags forum
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param postId path string true "Post id"
// @Param request body models.UpdatePostRequest true "Post update"
// @Success 200 {object} models.Post
// @Failure 403 {object} map[string]string "Permission denied"
// @Failure 404 {object} map[string]string "Post not found"
// @Router /forum/post/{postId} [put]
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePostRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.service.Update(r.Context(), chi.URLParam(r, "postId"), &req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, post)
}

// Remove handles DELETE /forum/post/{postId}
// @Summary Remove a post
// @Description Remove a post. Allowed for the post owner or a moderator.
// @Tags forum
// @Produce json
// @Security BasicAuth
// @Param postId path string true "Post id"
// @Success 200 {object} models.Post "Removed post"
// @Failure 403 {object} map[string]string "Permission denied"
// @Failure 404 {object} map[string]string "Post not found"
// @Router /forum/post/{postId} [delete]
func (h *PostHandler) Remove(w http.ResponseWriter, r *http.Request) {
	post, err := h.service.Remove(r.Context(), chi.URLParam(r, "postId"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, post)
}

// FindByAuthor handles GET /forum/posts/author/{author}
// @Summary Find posts by author
// @Tags forum
// @Produce json
// @Security BasicAuth
// @Param author path string true "Author login (case-insensitive)"
// @Success 200 {array} models.Post
// @Router /forum/posts/author/{author} [get]
func (h *PostHandler) FindByAuthor(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.FindByAuthor(r.Context(), chi.URLParam(r, "author"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, posts)
}

// AddComment handles PUT /forum/post/{postId}/comment/{author}
// @Summary Add a comment
// @Description Append a comment under the authenticated author's own login.
// @Tags forum
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param postId path string true "Post id"
// @Param author path string true "Comment author login"
// @Param request body models.NewCommentRequest true "New comment"
// @Success 200 {object} models.Post "Updated post"
// @Failure 403 {object} map[string]string "Permission denied"
// @Failure 404 {object} map[string]string "Post not found"
// @Router /forum/post/{postId}/comment/{author} [put]
func (h *PostHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req models.NewCommentRequest
	if err := h.decodeValid(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.service.AddComment(r.Context(), chi.URLParam(r, "postId"), chi.URLParam(r, "author"), req.Message)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, post)
}

// FindByTags handles POST /forum/posts/tags
// @Summary Find posts by tags
// @Description Return posts whose tag set intersects the given set, case-insensitively.
// @Tags forum
// @Accept json
// @Produce json
// @Param tags body []string true "Tags to match"
// @Success 200 {array} models.Post
// @Router /forum/posts/tags [post]
func (h *PostHandler) FindByTags(w http.ResponseWriter, r *http.Request) {
	var tags []string
	if err := h.decodeJSON(r, &tags); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	posts, err := h.service.FindByTags(r.Context(), tags)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, posts)
}

// FindByPeriod handles POST /forum/posts/period
// @Summary Find posts by creation period
// @Description Return posts created within the inclusive [dateFrom, dateTo] range.
// @Tags forum
// @Accept json
// @Produce json
// @Param request body models.PeriodRequest true "Period bounds (2006-01-02)"
// @Success 200 {array} models.Post
// @Failure 400 {object} map[string]string "Invalid period"
// @Router /forum/posts/period [post]
func (h *PostHandler) FindByPeriod(w http.ResponseWriter, r *http.Request) {
	var req models.PeriodRequest
	if err := h.decodeValid(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	from, err := time.Parse(dateLayout, req.DateFrom)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid dateFrom")
		return
	}
	to, err := time.Parse(dateLayout, req.DateTo)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid dateTo")
		return
	}

	posts, err := h.service.FindByPeriod(r.Context(), from, to)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, posts)
}

// AddLike handles PUT /forum/post/{postId}/like
// @Summary Like a post
// @Description Increment the post's like counter and return the new value.
// @Tags forum
// @Produce json
// @Security BasicAuth
// @Param postId path string true "Post id"
// @Success 200 {object} models.LikesResponse
// @Failure 404 {object} map[string]string "Post not found"
// @Router /forum/post/{postId}/like [put]
func (h *PostHandler) AddLike(w http.ResponseWriter, r *http.Request) {
	likes, err := h.service.AddLike(r.Context(), chi.URLParam(r, "postId"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, models.LikesResponse{Likes: likes})
}

package services

import (
	"context"
	"time"

	"github.com/forumhub/backend/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PostRepository is the interface that wraps methods for post data access
type PostRepository interface {
	// Method Create inserts a new post together with its tag set.
	Create(ctx context.Context, post *models.Post) error
	// Method GetByID retrieves a post with its tags and comments.
	//
	// If no post with such id exists, (nil, nil) will be returned.
	GetByID(ctx context.Context, id string) (*models.Post, error)
	// Method Update persists title and content and adds new tag rows.
	// Existing tags are never removed by an update.
	Update(ctx context.Context, post *models.Post) error
	// Method Delete removes a post with its tags and comments.
	Delete(ctx context.Context, id string) error
	// Method AddComment appends a comment to a post.
	AddComment(ctx context.Context, postID string, comment *models.Comment) error
	// Method AddLike atomically increments the like counter.
	//
	// The new counter value is returned; "found" is false when no post with
	// such id exists.
	AddLike(ctx context.Context, id string) (likes int, found bool, err error)
	// Method FindByAuthor returns all posts by the author, matched case-insensitively.
	FindByAuthor(ctx context.Context, author string) ([]models.Post, error)
	// Method FindByTags returns posts whose tag set intersects the given set,
	// matched case-insensitively.
	FindByTags(ctx context.Context, tags []string) ([]models.Post, error)
	// Method FindByPeriod returns posts created within [from, to], both bounds inclusive.
	FindByPeriod(ctx context.Context, from, to time.Time) ([]models.Post, error)
}

// postService implements the post business operations
type postService struct {
	repo   PostRepository
	logger *zap.Logger
}

// NewPostService creates a new post service
func NewPostService(repo PostRepository, logger *zap.Logger) *postService {
	return &postService{
		repo:   repo,
		logger: logger,
	}
}

// Create persists a new post with zero likes, no comments and the current
// timestamp. Duplicate tags in the request collapse case-insensitively.
func (s *postService) Create(ctx context.Context, author string, req *models.NewPostRequest) (*models.Post, error) {
	post := &models.Post{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Content:     req.Content,
		Author:      author,
		DateCreated: time.Now().UTC(),
		Tags:        []string{},
		Comments:    []models.Comment{},
	}
	for _, tag := range req.Tags {
		post.AddTag(tag)
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// Get retrieves a post by id
func (s *postService) Get(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// Remove deletes a post and returns the removed record
func (s *postService) Remove(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logger.Info("post removed", zap.String("postId", id))
	return post, nil
}

// Update overwrites provided title/content and adds provided tags to the
// existing tag set. Tags are a union, never a replacement; this asymmetry
// with profile updates is part of the contract.
func (s *postService) Update(ctx context.Context, id string, req *models.UpdatePostRequest) (*models.Post, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	for _, tag := range req.Tags {
		post.AddTag(tag)
	}

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// AddComment appends a comment with the current timestamp and zero likes,
// returning the updated post
func (s *postService) AddComment(ctx context.Context, postID, author, message string) (*models.Post, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		User:        author,
		Message:     message,
		DateCreated: time.Now().UTC(),
	}
	if err := s.repo.AddComment(ctx, postID, &comment); err != nil {
		return nil, err
	}

	post.Comments = append(post.Comments, comment)
	return post, nil
}

// AddLike increments the like counter and returns the new value
func (s *postService) AddLike(ctx context.Context, postID string) (int, error) {
	likes, found, err := s.repo.AddLike(ctx, postID)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrPostNotFound
	}
	return likes, nil
}

// FindByAuthor returns all posts by the author, matched case-insensitively
func (s *postService) FindByAuthor(ctx context.Context, author string) ([]models.Post, error) {
	return s.repo.FindByAuthor(ctx, author)
}

// FindByTags returns posts whose tag set intersects the given set
func (s *postService) FindByTags(ctx context.Context, tags []string) ([]models.Post, error) {
	return s.repo.FindByTags(ctx, tags)
}

// FindByPeriod returns posts created within the inclusive [from, to] range
func (s *postService) FindByPeriod(ctx context.Context, from, to time.Time) ([]models.Post, error) {
	return s.repo.FindByPeriod(ctx, from, to)
}

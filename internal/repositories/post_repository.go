package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/forumhub/backend/internal/models"
	"go.uber.org/zap"
)

type postRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *sql.DB, logger *zap.Logger) *postRepository {
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new post together with its tag rows
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO posts (id, title, content, author, date_created, likes)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	if _, err := tx.ExecContext(ctx, query, post.ID, post.Title, post.Content, post.Author, post.DateCreated, post.Likes); err != nil {
		r.logger.Error("failed to create post", zap.Error(err), zap.String("author", post.Author))
		return fmt.Errorf("failed to create post: %w", err)
	}

	for _, tag := range post.Tags {
		if _, err := tx.ExecContext(ctx, `INSERT IGNORE INTO post_tags (post_id, tag) VALUES (?, ?)`, post.ID, tag); err != nil {
			r.logger.Error("failed to create post tag", zap.Error(err), zap.String("postId", post.ID))
			return fmt.Errorf("failed to create post tag: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a post with its tags and comments.
// Returns (nil, nil) when no such post exists.
func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	query := `
		SELECT id, title, content, author, date_created, likes
		FROM posts
		WHERE id = ?
	`

	post := &models.Post{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.Author,
		&post.DateCreated,
		&post.Likes,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to get post", zap.Error(err), zap.String("postId", id))
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	if err := r.attachTags(ctx, post); err != nil {
		return nil, err
	}
	if err := r.attachComments(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// GetAuthor resolves the author of a post for ownership checks.
// found is false when the post does not exist; that is not an error.
func (r *postRepository) GetAuthor(ctx context.Context, id string) (string, bool, error) {
	var author string
	err := r.db.QueryRowContext(ctx, `SELECT author FROM posts WHERE id = ?`, id).Scan(&author)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		r.logger.Error("failed to get post author", zap.Error(err), zap.String("postId", id))
		return "", false, fmt.Errorf("failed to get post author: %w", err)
	}
	return author, true, nil
}

// Update persists title and content and adds any new tag rows.
// Existing tags are never removed here; the tag set only grows on update.
func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE posts
		SET title = ?, content = ?
		WHERE id = ?
	`
	if _, err := tx.ExecContext(ctx, query, post.Title, post.Content, post.ID); err != nil {
		r.logger.Error("failed to update post", zap.Error(err), zap.String("postId", post.ID))
		return fmt.Errorf("failed to update post: %w", err)
	}

	for _, tag := range post.Tags {
		if _, err := tx.ExecContext(ctx, `INSERT IGNORE INTO post_tags (post_id, tag) VALUES (?, ?)`, post.ID, tag); err != nil {
			r.logger.Error("failed to add post tag", zap.Error(err), zap.String("postId", post.ID))
			return fmt.Errorf("failed to add post tag: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Delete removes a post. Tag and comment rows are removed by the cascade.
func (r *postRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id); err != nil {
		r.logger.Error("failed to delete post", zap.Error(err), zap.String("postId", id))
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

// AddComment appends a comment row to a post
func (r *postRepository) AddComment(ctx context.Context, postID string, comment *models.Comment) error {
	query := `
		INSERT INTO comments (post_id, author, message, date_created, likes)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := r.db.ExecContext(ctx, query, postID, comment.User, comment.Message, comment.DateCreated, comment.Likes); err != nil {
		r.logger.Error("failed to add comment", zap.Error(err), zap.String("postId", postID))
		return fmt.Errorf("failed to add comment: %w", err)
	}
	return nil
}

// AddLike atomically increments the like counter and returns the new value.
// found is false when the post does not exist.
func (r *postRepository) AddLike(ctx context.Context, id string) (int, bool, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE posts SET likes = likes + 1 WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("failed to add like", zap.Error(err), zap.String("postId", id))
		return 0, false, fmt.Errorf("failed to add like: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return 0, false, nil
	}

	var likes int
	if err := r.db.QueryRowContext(ctx, `SELECT likes FROM posts WHERE id = ?`, id).Scan(&likes); err != nil {
		r.logger.Error("failed to read like counter", zap.Error(err), zap.String("postId", id))
		return 0, false, fmt.Errorf("failed to read like counter: %w", err)
	}

	return likes, true, nil
}

// FindByAuthor returns all posts by the author, matched case-insensitively
func (r *postRepository) FindByAuthor(ctx context.Context, author string) ([]models.Post, error) {
	query := `
		SELECT id, title, content, author, date_created, likes
		FROM posts
		WHERE LOWER(author) = LOWER(?)
	`
	return r.queryPosts(ctx, query, author)
}

// FindByTags returns posts whose tag set intersects the given set,
// matched case-insensitively
func (r *postRepository) FindByTags(ctx context.Context, tags []string) ([]models.Post, error) {
	if len(tags) == 0 {
		return []models.Post{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(tags)), ",")
	query := fmt.Sprintf(`
		SELECT DISTINCT p.id, p.title, p.content, p.author, p.date_created, p.likes
		FROM posts p
		JOIN post_tags t ON t.post_id = p.id
		WHERE LOWER(t.tag) IN (%s)
	`, placeholders)

	args := make([]any, 0, len(tags))
	for _, tag := range tags {
		args = append(args, strings.ToLower(tag))
	}

	return r.queryPosts(ctx, query, args...)
}

// FindByPeriod returns posts created within [from, to], both bounds inclusive
func (r *postRepository) FindByPeriod(ctx context.Context, from, to time.Time) ([]models.Post, error) {
	query := `
		SELECT id, title, content, author, date_created, likes
		FROM posts
		WHERE date_created BETWEEN ? AND ?
	`
	return r.queryPosts(ctx, query, from, to)
}

// queryPosts runs a post row query and attaches tags and comments to each hit
func (r *postRepository) queryPosts(ctx context.Context, query string, args ...any) ([]models.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to query posts", zap.Error(err))
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.Author, &post.DateCreated, &post.Likes); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}

	for i := range posts {
		if err := r.attachTags(ctx, &posts[i]); err != nil {
			return nil, err
		}
		if err := r.attachComments(ctx, &posts[i]); err != nil {
			return nil, err
		}
	}

	return posts, nil
}

func (r *postRepository) attachTags(ctx context.Context, post *models.Post) error {
	rows, err := r.db.QueryContext(ctx, `SELECT tag FROM post_tags WHERE post_id = ?`, post.ID)
	if err != nil {
		r.logger.Error("failed to get post tags", zap.Error(err), zap.String("postId", post.ID))
		return fmt.Errorf("failed to get post tags: %w", err)
	}
	defer rows.Close()

	post.Tags = []string{}
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return fmt.Errorf("failed to scan post tag: %w", err)
		}
		post.Tags = append(post.Tags, tag)
	}
	return rows.Err()
}

func (r *postRepository) attachComments(ctx context.Context, post *models.Post) error {
	query := `
		SELECT author, message, date_created, likes
		FROM comments
		WHERE post_id = ?
		ORDER BY date_created, id
	`
	rows, err := r.db.QueryContext(ctx, query, post.ID)
	if err != nil {
		r.logger.Error("failed to get post comments", zap.Error(err), zap.String("postId", post.ID))
		return fmt.Errorf("failed to get post comments: %w", err)
	}
	defer rows.Close()

	post.Comments = []models.Comment{}
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(&comment.User, &comment.Message, &comment.DateCreated, &comment.Likes); err != nil {
			return fmt.Errorf("failed to scan comment: %w", err)
		}
		post.Comments = append(post.Comments, comment)
	}
	return rows.Err()
}

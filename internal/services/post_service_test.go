package services

import (
	"context"
	"testing"
	"time"

	"github.com/forumhub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockPostRepository is a mock implementation of PostRepository
type mockPostRepository struct {
	post  *models.Post
	posts []models.Post
	err   error

	created   *models.Post
	updated   *models.Post
	deletedID string
	comment   *models.Comment
	likes     int

	tagsArg []string
	fromArg time.Time
	toArg   time.Time
}

func (m *mockPostRepository) Create(ctx context.Context, post *models.Post) error {
	if m.err != nil {
		return m.err
	}
	m.created = post
	return nil
}

func (m *mockPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.post, nil
}

func (m *mockPostRepository) Update(ctx context.Context, post *models.Post) error {
	if m.err != nil {
		return m.err
	}
	m.updated = post
	return nil
}

func (m *mockPostRepository) Delete(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	m.deletedID = id
	return nil
}

func (m *mockPostRepository) AddComment(ctx context.Context, postID string, comment *models.Comment) error {
	if m.err != nil {
		return m.err
	}
	m.comment = comment
	return nil
}

func (m *mockPostRepository) AddLike(ctx context.Context, id string) (int, bool, error) {
	if m.err != nil {
		return 0, false, m.err
	}
	if m.post == nil || m.post.ID != id {
		return 0, false, nil
	}
	m.likes++
	return m.likes, true, nil
}

func (m *mockPostRepository) FindByAuthor(ctx context.Context, author string) ([]models.Post, error) {
	return m.posts, m.err
}

func (m *mockPostRepository) FindByTags(ctx context.Context, tags []string) ([]models.Post, error) {
	m.tagsArg = tags
	return m.posts, m.err
}

func (m *mockPostRepository) FindByPeriod(ctx context.Context, from, to time.Time) ([]models.Post, error) {
	m.fromArg = from
	m.toArg = to
	return m.posts, m.err
}

func samplePost() *models.Post {
	return &models.Post{
		ID:          "42",
		Title:       "kanji of the day",
		Content:     "today we learn 水",
		Author:      "bob",
		DateCreated: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Tags:        []string{"japanese", "kanji"},
		Comments:    []models.Comment{},
	}
}

func TestPostService_Create(t *testing.T) {
	repo := &mockPostRepository{}
	svc := NewPostService(repo, zap.NewNop())

	post, err := svc.Create(context.Background(), "bob", &models.NewPostRequest{
		Title:   "kanji of the day",
		Content: "today we learn 水",
		Tags:    []string{"japanese", "kanji", "Japanese"},
	})

	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "bob", post.Author)
	assert.Equal(t, []string{"japanese", "kanji"}, post.Tags, "duplicate tags must collapse case-insensitively")
	assert.Zero(t, post.Likes)
	assert.Empty(t, post.Comments)
	assert.WithinDuration(t, time.Now().UTC(), post.DateCreated, time.Minute)
}

func TestPostService_Get(t *testing.T) {
	svc := NewPostService(&mockPostRepository{post: samplePost()}, zap.NewNop())

	post, err := svc.Get(context.Background(), "42")

	require.NoError(t, err)
	assert.Equal(t, "42", post.ID)
}

func TestPostService_Get_NotFound(t *testing.T) {
	svc := NewPostService(&mockPostRepository{}, zap.NewNop())

	_, err := svc.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPostService_Remove(t *testing.T) {
	repo := &mockPostRepository{post: samplePost()}
	svc := NewPostService(repo, zap.NewNop())

	post, err := svc.Remove(context.Background(), "42")

	require.NoError(t, err)
	assert.Equal(t, "42", post.ID)
	assert.Equal(t, "42", repo.deletedID)
}

func TestPostService_Remove_NotFound(t *testing.T) {
	repo := &mockPostRepository{}
	svc := NewPostService(repo, zap.NewNop())

	_, err := svc.Remove(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.Empty(t, repo.deletedID)
}

func TestPostService_Update(t *testing.T) {
	newTitle := "kanji of the week"

	tests := []struct {
		name            string
		req             *models.UpdatePostRequest
		expectedTitle   string
		expectedContent string
		expectedTags    []string
	}{
		{
			name:            "title changes, content survives",
			req:             &models.UpdatePostRequest{Title: &newTitle},
			expectedTitle:   "kanji of the week",
			expectedContent: "today we learn 水",
			expectedTags:    []string{"japanese", "kanji"},
		},
		{
			name:            "new tags join the existing set",
			req:             &models.UpdatePostRequest{Tags: []string{"N5", "kanji"}},
			expectedTitle:   "kanji of the day",
			expectedContent: "today we learn 水",
			expectedTags:    []string{"japanese", "kanji", "N5"},
		},
		{
			name:            "tags are unioned case-insensitively",
			req:             &models.UpdatePostRequest{Tags: []string{"KANJI", "Japanese"}},
			expectedTitle:   "kanji of the day",
			expectedContent: "today we learn 水",
			expectedTags:    []string{"japanese", "kanji"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockPostRepository{post: samplePost()}
			svc := NewPostService(repo, zap.NewNop())

			post, err := svc.Update(context.Background(), "42", tt.req)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedTitle, post.Title)
			assert.Equal(t, tt.expectedContent, post.Content)
			assert.Equal(t, tt.expectedTags, post.Tags)
			require.NotNil(t, repo.updated)
		})
	}
}

func TestPostService_Update_NotFound(t *testing.T) {
	svc := NewPostService(&mockPostRepository{}, zap.NewNop())

	_, err := svc.Update(context.Background(), "missing", &models.UpdatePostRequest{})

	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPostService_AddComment(t *testing.T) {
	repo := &mockPostRepository{post: samplePost()}
	svc := NewPostService(repo, zap.NewNop())

	post, err := svc.AddComment(context.Background(), "42", "alice", "nice one")

	require.NoError(t, err)
	require.Len(t, post.Comments, 1)
	assert.Equal(t, "alice", post.Comments[0].User)
	assert.Equal(t, "nice one", post.Comments[0].Message)
	assert.Zero(t, post.Comments[0].Likes)
	require.NotNil(t, repo.comment)
}

func TestPostService_AddComment_NotFound(t *testing.T) {
	svc := NewPostService(&mockPostRepository{}, zap.NewNop())

	_, err := svc.AddComment(context.Background(), "missing", "alice", "nice one")

	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPostService_AddLike(t *testing.T) {
	repo := &mockPostRepository{post: samplePost()}
	svc := NewPostService(repo, zap.NewNop())

	for want := 1; want <= 5; want++ {
		likes, err := svc.AddLike(context.Background(), "42")
		require.NoError(t, err)
		assert.Equal(t, want, likes, "each like must advance the counter by exactly one")
	}
}

func TestPostService_AddLike_NotFound(t *testing.T) {
	svc := NewPostService(&mockPostRepository{}, zap.NewNop())

	_, err := svc.AddLike(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPostService_FindByAuthor(t *testing.T) {
	repo := &mockPostRepository{posts: []models.Post{*samplePost()}}
	svc := NewPostService(repo, zap.NewNop())

	posts, err := svc.FindByAuthor(context.Background(), "bob")

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "bob", posts[0].Author)
}

func TestPostService_FindByTags(t *testing.T) {
	repo := &mockPostRepository{posts: []models.Post{}}
	svc := NewPostService(repo, zap.NewNop())

	posts, err := svc.FindByTags(context.Background(), []string{"kanji", "N5"})

	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Equal(t, []string{"kanji", "N5"}, repo.tagsArg)
}

func TestPostService_FindByPeriod(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	repo := &mockPostRepository{posts: []models.Post{*samplePost()}}
	svc := NewPostService(repo, zap.NewNop())

	posts, err := svc.FindByPeriod(context.Background(), from, to)

	require.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, from, repo.fromArg)
	assert.Equal(t, to, repo.toArg)
}

package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn       func(context.Context, *models.Comment) error
	getByIDFn      func(context.Context, uint) (*models.Comment, error)
	listTopLevelFn func(context.Context, uint) ([]*models.Comment, error)
	listRepliesFn  func(context.Context, uint) ([]*models.Comment, error)
	updateFn       func(context.Context, *models.Comment) error
	deleteFn       func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListTopLevel(ctx context.Context, blogID uint) ([]*models.Comment, error) {
	return s.listTopLevelFn(ctx, blogID)
}
func (s *commentRepoStub) ListReplies(ctx context.Context, parentID uint) ([]*models.Comment, error) {
	return s.listRepliesFn(ctx, parentID)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:       func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:      func(_ context.Context, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listTopLevelFn: func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		listRepliesFn:  func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		updateFn:       func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:       func(_ context.Context, _ uint) error { return nil },
	}
}

// forestRepo builds a commentRepoStub backed by an in-memory forest: roots
// are the top-level comments, children maps a parent id to its replies.
func forestRepo(roots []*models.Comment, children map[uint][]*models.Comment) *commentRepoStub {
	repo := noopCommentRepo()
	repo.listTopLevelFn = func(_ context.Context, _ uint) ([]*models.Comment, error) {
		return roots, nil
	}
	repo.listRepliesFn = func(_ context.Context, parentID uint) ([]*models.Comment, error) {
		return children[parentID], nil
	}
	return repo
}

func blogRepoReturning(blog *models.Blog) *blogRepoStub {
	repo := noopBlogRepo()
	repo.getByIDFn = func(_ context.Context, _ uint) (*models.Blog, error) {
		return blog, nil
	}
	return repo
}

func TestCommentService_CreateComment_Validation(t *testing.T) {
	t.Parallel()

	svc := NewCommentService(noopCommentRepo(), blogRepoReturning(&models.Blog{ID: 1, AuthorID: 1}))
	ctx := context.Background()

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreateComment(ctx, CreateCommentInput{AuthorID: 1, BlogID: 1})
		assertValidationError(t, err)
	})

	t.Run("missing blog id", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreateComment(ctx, CreateCommentInput{AuthorID: 1, Content: "hi"})
		assertValidationError(t, err)
	})

	t.Run("content too long", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreateComment(ctx, CreateCommentInput{
			AuthorID: 1,
			BlogID:   1,
			Content:  strings.Repeat("x", 10001),
		})
		assertValidationError(t, err)
	})

	t.Run("blog not found", func(t *testing.T) {
		t.Parallel()
		blogRepo := noopBlogRepo()
		blogRepo.getByIDFn = func(_ context.Context, id uint) (*models.Blog, error) {
			return nil, models.NewNotFoundError("Blog", id)
		}
		svc2 := NewCommentService(noopCommentRepo(), blogRepo)
		_, err := svc2.CreateComment(ctx, CreateCommentInput{AuthorID: 1, BlogID: 99, Content: "hi"})
		assertNotFoundError(t, err)
	})
}

func TestCommentService_CreateComment_ParentChecks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	parentID := uint(10)

	t.Run("missing parent", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		svc := NewCommentService(commentRepo, blogRepoReturning(&models.Blog{ID: 1, AuthorID: 1}))
		_, err := svc.CreateComment(ctx, CreateCommentInput{
			AuthorID: 1, BlogID: 1, ParentCommentID: &parentID, Content: "hi",
		})
		assertNotFoundError(t, err)
	})

	t.Run("parent on another blog", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, BlogID: 2}, nil
		}
		svc := NewCommentService(commentRepo, blogRepoReturning(&models.Blog{ID: 1, AuthorID: 1}))
		_, err := svc.CreateComment(ctx, CreateCommentInput{
			AuthorID: 1, BlogID: 1, ParentCommentID: &parentID, Content: "hi",
		})
		assertValidationError(t, err)
	})

	t.Run("reply created", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, BlogID: 1}, nil
		}
		commentRepo.createFn = func(_ context.Context, c *models.Comment) error {
			c.ID = 55
			return nil
		}
		svc := NewCommentService(commentRepo, blogRepoReturning(&models.Blog{ID: 1, AuthorID: 1}))
		comment, err := svc.CreateComment(ctx, CreateCommentInput{
			AuthorID: 4, BlogID: 1, ParentCommentID: &parentID, Content: "a reply",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(55), comment.ID)
		require.NotNil(t, comment.ParentCommentID)
		assert.Equal(t, parentID, *comment.ParentCommentID)
	})
}

func TestCommentService_ListCommentForest_Nesting(t *testing.T) {
	t.Parallel()

	// Blog 1 owned by user 10. Two threads:
	//   C4 (newest top-level, author 30)
	//   C1 (author 20) -> C2 (author 30) -> C3 (author 20)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c1 := &models.Comment{ID: 1, Content: "first", BlogID: 1, AuthorID: 20, CreatedAt: base}
	c2 := &models.Comment{ID: 2, Content: "reply", BlogID: 1, AuthorID: 30, CreatedAt: base.Add(time.Minute)}
	c3 := &models.Comment{ID: 3, Content: "deeper", BlogID: 1, AuthorID: 20, CreatedAt: base.Add(2 * time.Minute)}
	c4 := &models.Comment{ID: 4, Content: "second thread", BlogID: 1, AuthorID: 30, CreatedAt: base.Add(3 * time.Minute)}
	c2.ParentCommentID = &c1.ID
	c3.ParentCommentID = &c2.ID

	repo := forestRepo(
		[]*models.Comment{c4, c1}, // newest first, as the repository orders them
		map[uint][]*models.Comment{1: {c2}, 2: {c3}},
	)
	svc := NewCommentService(repo, blogRepoReturning(&models.Blog{ID: 1, AuthorID: 10}))

	forest, err := svc.ListCommentForest(context.Background(), 1, 30)
	require.NoError(t, err)
	require.Len(t, forest, 2)

	// Top-level ordering is preserved.
	assert.Equal(t, uint(4), forest[0].ID)
	assert.Equal(t, uint(1), forest[1].ID)

	// Nesting: C1 -> C2 -> C3.
	thread := forest[1]
	require.Len(t, thread.Replies, 1)
	assert.Equal(t, uint(2), thread.Replies[0].ID)
	require.Len(t, thread.Replies[0].Replies, 1)
	assert.Equal(t, uint(3), thread.Replies[0].Replies[0].ID)
	assert.Empty(t, thread.Replies[0].Replies[0].Replies)

	// Viewer 30 owns what they authored, nothing else.
	assert.True(t, forest[0].Owner)                     // C4, authored
	assert.False(t, thread.Owner)                       // C1, someone else's
	assert.True(t, thread.Replies[0].Owner)             // C2, authored
	assert.False(t, thread.Replies[0].Replies[0].Owner) // C3
}

func TestCommentService_ListCommentForest_BlogOwnerSeesAllAsOwned(t *testing.T) {
	t.Parallel()

	c1 := &models.Comment{ID: 1, Content: "hi", BlogID: 1, AuthorID: 20}
	repo := forestRepo([]*models.Comment{c1}, nil)
	svc := NewCommentService(repo, blogRepoReturning(&models.Blog{ID: 1, AuthorID: 10}))

	forest, err := svc.ListCommentForest(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, forest, 1)
	assert.True(t, forest[0].Owner)
}

func TestCommentService_ListCommentForest_BlogNotFound(t *testing.T) {
	t.Parallel()

	blogRepo := noopBlogRepo()
	blogRepo.getByIDFn = func(_ context.Context, id uint) (*models.Blog, error) {
		return nil, models.NewNotFoundError("Blog", id)
	}
	svc := NewCommentService(noopCommentRepo(), blogRepo)

	_, err := svc.ListCommentForest(context.Background(), 99, 1)
	assertNotFoundError(t, err)
}

func TestCommentService_ListCommentForest_CycleTerminates(t *testing.T) {
	t.Parallel()

	// Corrupted parent chain: C2 and C3 claim each other as replies.
	c1 := &models.Comment{ID: 1, Content: "root", BlogID: 1, AuthorID: 1}
	c2 := &models.Comment{ID: 2, Content: "a", BlogID: 1, AuthorID: 1}
	c3 := &models.Comment{ID: 3, Content: "b", BlogID: 1, AuthorID: 1}

	repo := forestRepo(
		[]*models.Comment{c1},
		map[uint][]*models.Comment{1: {c2}, 2: {c3}, 3: {c2}},
	)
	svc := NewCommentService(repo, blogRepoReturning(&models.Blog{ID: 1, AuthorID: 1}))

	forest, err := svc.ListCommentForest(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Len(t, forest, 1)

	// C2 appears exactly once; the cycling edge back into it is dropped.
	require.Len(t, forest[0].Replies, 1)
	assert.Equal(t, uint(2), forest[0].Replies[0].ID)
	require.Len(t, forest[0].Replies[0].Replies, 1)
	assert.Equal(t, uint(3), forest[0].Replies[0].Replies[0].ID)
	assert.Empty(t, forest[0].Replies[0].Replies[0].Replies)
}

func TestCommentService_ListCommentForest_EmptyBlog(t *testing.T) {
	t.Parallel()

	repo := forestRepo(nil, nil)
	svc := NewCommentService(repo, blogRepoReturning(&models.Blog{ID: 1, AuthorID: 1}))

	forest, err := svc.ListCommentForest(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Empty(t, forest)
}

func TestCommentService_UpdateComment(t *testing.T) {
	t.Parallel()

	newRepo := func() *commentRepoStub {
		repo := noopCommentRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, AuthorID: 7, BlogID: 1, Content: "old"}, nil
		}
		return repo
	}
	blogRepo := blogRepoReturning(&models.Blog{ID: 1, AuthorID: 10})

	t.Run("author edits", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(newRepo(), blogRepo)
		comment, err := svc.UpdateComment(context.Background(), UpdateCommentInput{
			CommentID: 1, AuthorID: 7, Content: "new",
		})
		require.NoError(t, err)
		assert.Equal(t, "new", comment.Content)
	})

	t.Run("blog owner cannot edit someone else's comment", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(newRepo(), blogRepo)
		_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{
			CommentID: 1, AuthorID: 10, Content: "new",
		})
		assertForbiddenError(t, err)
	})

	t.Run("empty content rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(newRepo(), blogRepo)
		_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{
			CommentID: 1, AuthorID: 7, Content: "  ",
		})
		assertValidationError(t, err)
	})
}

func TestCommentService_DeleteComment(t *testing.T) {
	t.Parallel()

	newRepo := func() *commentRepoStub {
		repo := noopCommentRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, AuthorID: 7, BlogID: 1}, nil
		}
		return repo
	}
	blogRepo := blogRepoReturning(&models.Blog{ID: 1, AuthorID: 10})

	t.Run("author deletes own comment", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(newRepo(), blogRepo)
		comment, err := svc.DeleteComment(context.Background(), DeleteCommentInput{CommentID: 1, PrincipalID: 7})
		require.NoError(t, err)
		assert.Equal(t, uint(1), comment.ID)
	})

	t.Run("blog owner moderates", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(newRepo(), blogRepo)
		_, err := svc.DeleteComment(context.Background(), DeleteCommentInput{CommentID: 1, PrincipalID: 10})
		require.NoError(t, err)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(newRepo(), blogRepo)
		_, err := svc.DeleteComment(context.Background(), DeleteCommentInput{CommentID: 1, PrincipalID: 99})
		assertForbiddenError(t, err)
	})

	t.Run("deleted blog strips the owner's moderation right", func(t *testing.T) {
		t.Parallel()
		missingBlogRepo := noopBlogRepo()
		missingBlogRepo.getByIDFn = func(_ context.Context, id uint) (*models.Blog, error) {
			return nil, models.NewNotFoundError("Blog", id)
		}
		svc := NewCommentService(newRepo(), missingBlogRepo)

		_, err := svc.DeleteComment(context.Background(), DeleteCommentInput{CommentID: 1, PrincipalID: 10})
		assertForbiddenError(t, err)

		_, err = svc.DeleteComment(context.Background(), DeleteCommentInput{CommentID: 1, PrincipalID: 7})
		require.NoError(t, err)
	})
}

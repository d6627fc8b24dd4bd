package service

import (
	"context"
	"log/slog"
	"strings"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/repository"

	"golang.org/x/sync/errgroup"
)

const (
	maxCommentLen = 10000

	// maxCommentDepth bounds recursion when assembling a reply subtree. A
	// well-formed forest never gets near it; a corrupted parent chain that
	// cycles would otherwise recurse forever.
	maxCommentDepth = 32

	// subtreeWorkers bounds how many top-level subtrees are fetched at once.
	subtreeWorkers = 8
)

// CommentService implements threaded comments: create/edit/delete plus the
// forest assembler that powers the comment listing.
type CommentService struct {
	commentRepo repository.CommentRepository
	blogRepo    repository.BlogRepository
}

type CreateCommentInput struct {
	AuthorID        uint
	BlogID          uint
	ParentCommentID *uint
	Content         string
}

type UpdateCommentInput struct {
	CommentID uint
	AuthorID  uint
	Content   string
}

type DeleteCommentInput struct {
	CommentID   uint
	PrincipalID uint
}

func NewCommentService(commentRepo repository.CommentRepository, blogRepo repository.BlogRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, blogRepo: blogRepo}
}

// CreateComment adds a comment, optionally as a reply. The parent must exist
// and belong to the same blog.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if strings.TrimSpace(in.Content) == "" || in.BlogID == 0 {
		return nil, models.NewValidationError("Content and blogId are required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	if _, err := s.blogRepo.GetByID(ctx, in.BlogID); err != nil {
		return nil, err
	}

	if in.ParentCommentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *in.ParentCommentID)
		if err != nil {
			return nil, models.NewNotFoundError("Comment", *in.ParentCommentID)
		}
		if parent.BlogID != in.BlogID {
			return nil, models.NewValidationError("Parent comment belongs to a different blog")
		}
	}

	comment := &models.Comment{
		Content:         in.Content,
		BlogID:          in.BlogID,
		ParentCommentID: in.ParentCommentID,
		AuthorID:        in.AuthorID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// ListCommentForest returns the full ordered forest of active comments for a
// blog: top-level comments newest first, replies nested recursively oldest
// first, every node annotated with the viewer's owner flag.
//
// Each top-level subtree is independent, so subtrees are assembled
// concurrently; the output preserves the top-level ordering.
func (s *CommentService) ListCommentForest(ctx context.Context, blogID, viewerID uint) ([]*models.CommentNode, error) {
	blog, err := s.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	roots, err := s.commentRepo.ListTopLevel(ctx, blogID)
	if err != nil {
		return nil, err
	}

	nodes := make([]*models.CommentNode, len(roots))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(subtreeWorkers)

	for i, root := range roots {
		i, root := i, root
		g.Go(func() error {
			visited := map[uint]bool{root.ID: true}
			node, err := s.buildSubtree(gctx, root, blog.AuthorID, viewerID, visited, 1)
			if err != nil {
				return err
			}
			nodes[i] = node
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return nodes, nil
}

// buildSubtree assembles the reply tree below c. The visited set and depth
// counter guard against a corrupted parent chain that cycles back to an
// ancestor: the offending child is skipped rather than recursed into.
func (s *CommentService) buildSubtree(ctx context.Context, c *models.Comment, blogAuthorID, viewerID uint, visited map[uint]bool, depth int) (*models.CommentNode, error) {
	node := &models.CommentNode{
		Comment: *c,
		Owner:   OwnerFlag(viewerID, c.AuthorID, blogAuthorID),
		Replies: []*models.CommentNode{},
	}

	if depth >= maxCommentDepth {
		middleware.CommentTreeDepthTruncations.Inc()
		middleware.Logger.WarnContext(ctx, "comment subtree truncated at depth cap",
			slog.Any("comment_id", c.ID),
			slog.Int("depth", depth),
		)
		return node, nil
	}

	children, err := s.commentRepo.ListReplies(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	for _, child := range children {
		if visited[child.ID] {
			middleware.CommentTreeDepthTruncations.Inc()
			middleware.Logger.WarnContext(ctx, "comment parent chain cycles, skipping reply",
				slog.Any("comment_id", child.ID),
			)
			continue
		}
		visited[child.ID] = true

		childNode, err := s.buildSubtree(ctx, child, blogAuthorID, viewerID, visited, depth+1)
		if err != nil {
			return nil, err
		}
		node.Replies = append(node.Replies, childNode)
	}

	return node, nil
}

// UpdateComment edits a comment's content. Comment author only.
func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	if !CanEditComment(in.AuthorID, comment.AuthorID) {
		return nil, models.NewForbiddenError("You are not authorized to update this comment")
	}

	comment.Content = in.Content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// DeleteComment soft-deletes a comment. The comment author or the owning
// blog's author may delete; if the blog itself is already soft-deleted only
// the comment author remains eligible.
func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}

	var blogAuthorID uint
	if blog, blogErr := s.blogRepo.GetByID(ctx, comment.BlogID); blogErr == nil {
		blogAuthorID = blog.AuthorID
	}

	if !CanDeleteComment(in.PrincipalID, comment.AuthorID, blogAuthorID) {
		return nil, models.NewForbiddenError("You are not authorized to delete this comment")
	}

	if err := s.commentRepo.Delete(ctx, in.CommentID); err != nil {
		return nil, err
	}

	return comment, nil
}

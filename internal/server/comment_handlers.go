package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /comment. JSON body; parentComment is optional
// and makes the comment a reply.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req struct {
		Content       string `json:"content"`
		BlogID        uint   `json:"blogId"`
		ParentComment *uint  `json:"parentComment"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.NewValidationError("Invalid request body")
	}

	comment, err := s.commentService.CreateComment(c.UserContext(), service.CreateCommentInput{
		AuthorID:        currentUserID(c),
		BlogID:          req.BlogID,
		ParentCommentID: req.ParentComment,
		Content:         req.Content,
	})
	if err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusCreated, comment, "Comment created successfully")
}

// GetCommentForest handles GET /comment/:blogId, returning the blog's full
// nested comment tree.
func (s *Server) GetCommentForest(c *fiber.Ctx) error {
	blogID, err := parseID(c, "blogId")
	if err != nil {
		return err
	}

	forest, err := s.commentService.ListCommentForest(c.UserContext(), blogID, currentUserID(c))
	if err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusOK, forest, "Comments fetched successfully")
}

// UpdateComment handles PUT /comment/:id.
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.NewValidationError("Invalid request body")
	}

	comment, err := s.commentService.UpdateComment(c.UserContext(), service.UpdateCommentInput{
		CommentID: id,
		AuthorID:  currentUserID(c),
		Content:   req.Content,
	})
	if err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusOK, comment, "Comment updated successfully")
}

// DeleteComment handles DELETE /comment/:id.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	comment, err := s.commentService.DeleteComment(c.UserContext(), service.DeleteCommentInput{
		CommentID:   id,
		PrincipalID: currentUserID(c),
	})
	if err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusOK, comment, "Comment deleted successfully")
}

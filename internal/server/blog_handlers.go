package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateBlog handles POST /blog. Multipart body with title, description and a
// required image file.
func (s *Server) CreateBlog(c *fiber.Ctx) error {
	imagePath, cleanup, err := s.saveUpload(c, "image")
	if err != nil {
		return err
	}
	defer cleanup()

	blog, err := s.blogService.CreateBlog(c.UserContext(), service.CreateBlogInput{
		AuthorID:    currentUserID(c),
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		ImagePath:   imagePath,
	})
	if err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusCreated, blog, "Blog created successfully")
}

// ListBlogs handles GET /blog with page, limit and search query params.
func (s *Server) ListBlogs(c *fiber.Ctx) error {
	page, err := s.blogService.ListBlogs(c.UserContext(), service.ListBlogsInput{
		ViewerID: currentUserID(c),
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", 0),
		Search:   c.Query("search"),
	})
	if err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusOK, page, "Blogs fetched successfully")
}

// GetBlog handles GET /blog/:id.
func (s *Server) GetBlog(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	blog, err := s.blogService.GetBlog(c.UserContext(), id, currentUserID(c))
	if err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusOK, blog, "Blog fetched successfully")
}

// UpdateBlog handles PUT /blog/:id. Multipart body; the image file is
// optional and replaces the cover when present.
func (s *Server) UpdateBlog(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	imagePath, cleanup, err := s.saveUpload(c, "image")
	if err != nil {
		return err
	}
	defer cleanup()

	blog, err := s.blogService.UpdateBlog(c.UserContext(), service.UpdateBlogInput{
		BlogID:      id,
		AuthorID:    currentUserID(c),
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		ImagePath:   imagePath,
	})
	if err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusOK, blog, "Blog updated successfully")
}

// DeleteBlog handles DELETE /blog/:id.
func (s *Server) DeleteBlog(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := s.blogService.DeleteBlog(c.UserContext(), id, currentUserID(c)); err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusOK, fiber.Map{"id": id}, "Blog deleted successfully")
}

package service

import (
	"context"
	"strings"

	"inkwell/internal/media"
	"inkwell/internal/models"
	"inkwell/internal/repository"
)

const (
	defaultBlogPageLimit = 10
	maxBlogPageLimit     = 100
	maxTitleLen          = 300
	maxDescriptionLen    = 50000
)

// BlogService implements blog CRUD with pagination, search and soft delete.
type BlogService struct {
	blogRepo repository.BlogRepository
	uploader media.Uploader
}

type CreateBlogInput struct {
	AuthorID    uint
	Title       string
	Description string
	ImagePath   string // local path of the uploaded cover image
}

type ListBlogsInput struct {
	ViewerID uint
	Page     int
	Limit    int
	Search   string
}

type UpdateBlogInput struct {
	BlogID      uint
	AuthorID    uint
	Title       string
	Description string
	ImagePath   string // optional; empty keeps the existing image
}

func NewBlogService(blogRepo repository.BlogRepository, uploader media.Uploader) *BlogService {
	return &BlogService{blogRepo: blogRepo, uploader: uploader}
}

func validateBlogFields(title, description string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return models.NewValidationError("Title and description are required")
	}
	if len(title) > maxTitleLen {
		return models.NewValidationError("Title too long (max 300 characters)")
	}
	if len(description) > maxDescriptionLen {
		return models.NewValidationError("Description too long (max 50000 characters)")
	}
	return nil
}

// CreateBlog uploads the cover image and persists a new blog.
func (s *BlogService) CreateBlog(ctx context.Context, in CreateBlogInput) (*models.Blog, error) {
	if err := validateBlogFields(in.Title, in.Description); err != nil {
		return nil, err
	}
	if in.ImagePath == "" {
		return nil, models.NewValidationError("Image file is required")
	}

	imageURL, err := s.uploader.Upload(ctx, in.ImagePath)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	blog := &models.Blog{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		ImageURL:    imageURL,
		AuthorID:    in.AuthorID,
	}
	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, err
	}

	blog.Owner = true
	return blog, nil
}

// GetBlog returns a single active blog with the viewer's owner flag.
func (s *BlogService) GetBlog(ctx context.Context, id, viewerID uint) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	blog.Owner = CanModifyBlog(viewerID, blog.AuthorID)
	return blog, nil
}

// ListBlogs returns a paginated, searchable listing with owner flags and
// pagination metadata. Page starts at 1; limit defaults to 10.
func (s *BlogService) ListBlogs(ctx context.Context, in ListBlogsInput) (*models.BlogPage, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit <= 0 {
		limit = defaultBlogPageLimit
	}
	if limit > maxBlogPageLimit {
		limit = maxBlogPageLimit
	}

	blogs, total, err := s.blogRepo.List(ctx, strings.TrimSpace(in.Search), limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	for _, blog := range blogs {
		blog.Owner = CanModifyBlog(in.ViewerID, blog.AuthorID)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &models.BlogPage{
		Blogs: blogs,
		Pagination: models.Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
	}, nil
}

// UpdateBlog edits a blog. Author only; a new image is optional and replaces
// the stored URL when provided.
func (s *BlogService) UpdateBlog(ctx context.Context, in UpdateBlogInput) (*models.Blog, error) {
	if err := validateBlogFields(in.Title, in.Description); err != nil {
		return nil, err
	}

	blog, err := s.blogRepo.GetByID(ctx, in.BlogID)
	if err != nil {
		return nil, err
	}
	if !CanModifyBlog(in.AuthorID, blog.AuthorID) {
		return nil, models.NewForbiddenError("You are not authorized to edit this blog")
	}

	if in.ImagePath != "" {
		imageURL, err := s.uploader.Upload(ctx, in.ImagePath)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		blog.ImageURL = imageURL
	}

	blog.Title = strings.TrimSpace(in.Title)
	blog.Description = in.Description
	if err := s.blogRepo.Update(ctx, blog); err != nil {
		return nil, err
	}

	blog.Owner = true
	return blog, nil
}

// DeleteBlog soft-deletes a blog. Author only.
func (s *BlogService) DeleteBlog(ctx context.Context, blogID, principalID uint) error {
	blog, err := s.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		return err
	}
	if !CanModifyBlog(principalID, blog.AuthorID) {
		return models.NewForbiddenError("You are not authorized to delete this blog")
	}
	return s.blogRepo.Delete(ctx, blogID)
}

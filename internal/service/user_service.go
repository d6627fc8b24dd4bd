package service

import (
	"context"
	"strings"

	"inkwell/internal/media"
	"inkwell/internal/models"
	"inkwell/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 4

// UserService implements registration, login and profile management.
type UserService struct {
	userRepo repository.UserRepository
	uploader media.Uploader
}

type RegisterInput struct {
	Email     string
	Password  string
	ImagePath string // local path of the uploaded profile picture
}

type LoginInput struct {
	Email    string
	Password string
}

type UpdateProfileInput struct {
	UserID uint
	Email  string
}

func NewUserService(userRepo repository.UserRepository, uploader media.Uploader) *UserService {
	return &UserService{userRepo: userRepo, uploader: uploader}
}

// Register creates a new account. The profile picture has already been
// received as a temp file; it is pushed to the image host and only its URL is
// persisted.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, models.NewValidationError("Email and password are required")
	}
	if !strings.Contains(email, "@") {
		return nil, models.NewValidationError("Invalid email address")
	}
	if len(in.Password) < minPasswordLen {
		return nil, models.NewValidationError("Password must be at least 4 characters long")
	}
	if in.ImagePath == "" {
		return nil, models.NewValidationError("Profile picture file is required")
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewDuplicateError("User with this email already exists")
	}

	imageURL, err := s.uploader.Upload(ctx, in.ImagePath)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Email:           email,
		Password:        string(hashed),
		ProfileImageURL: imageURL,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and returns the user.
func (s *UserService) Login(ctx context.Context, in LoginInput) (*models.User, error) {
	if strings.TrimSpace(in.Email) == "" {
		return nil, models.NewValidationError("Email is required")
	}

	user, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", in.Email)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid user credentials")
	}

	return user, nil
}

// GetUser returns the user by id.
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateProfile changes the account email.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return nil, models.NewValidationError("Email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, models.NewValidationError("Invalid email address")
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	user.Email = email
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateProfilePicture uploads a new profile picture and stores its URL.
func (s *UserService) UpdateProfilePicture(ctx context.Context, userID uint, imagePath string) (*models.User, error) {
	if imagePath == "" {
		return nil, models.NewValidationError("Profile picture file is missing")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	imageURL, err := s.uploader.Upload(ctx, imagePath)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user.ProfileImageURL = imageURL
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

package server

import (
	"fmt"
	"strconv"
	"time"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Register handles POST /user/register. Multipart body with email, password
// and a required profilePicture file. Returns the created user plus a bearer
// token, also set as an HTTP-only cookie.
func (s *Server) Register(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	imagePath, cleanup, err := s.saveUpload(c, "profilePicture")
	if err != nil {
		return err
	}
	defer cleanup()

	user, err := s.userService.Register(c.UserContext(), service.RegisterInput{
		Email:     email,
		Password:  password,
		ImagePath: imagePath,
	})
	if err != nil {
		return err
	}

	token, err := s.generateToken(user.ID, user.Email)
	if err != nil {
		return models.NewInternalError(err)
	}
	s.setAccessTokenCookie(c, token)

	return models.Respond(c, fiber.StatusCreated, fiber.Map{
		"user":        user,
		"accessToken": token,
	}, "User registered successfully")
}

// Login handles POST /user/login.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.NewValidationError("Invalid request body")
	}

	user, err := s.userService.Login(c.UserContext(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	token, err := s.generateToken(user.ID, user.Email)
	if err != nil {
		return models.NewInternalError(err)
	}
	s.setAccessTokenCookie(c, token)

	return models.Respond(c, fiber.StatusOK, fiber.Map{
		"user":        user,
		"accessToken": token,
	}, "User logged in successfully")
}

// Logout handles POST /user/logout. Tokens are stateless; logout just clears
// the cookie on the client.
func (s *Server) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
	})
	return models.Respond(c, fiber.StatusOK, fiber.Map{}, "User logged out")
}

// GetCurrentUser handles GET /user.
func (s *Server) GetCurrentUser(c *fiber.Ctx) error {
	user, err := s.userService.GetUser(c.UserContext(), currentUserID(c))
	if err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusOK, user, "User fetched successfully")
}

// UpdateProfile handles PATCH /user/update-profile.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.NewValidationError("Invalid request body")
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), service.UpdateProfileInput{
		UserID: currentUserID(c),
		Email:  req.Email,
	})
	if err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusOK, user, "User updated successfully")
}

// UpdateProfilePicture handles PATCH /user/update-profile-picture (multipart).
func (s *Server) UpdateProfilePicture(c *fiber.Ctx) error {
	imagePath, cleanup, err := s.saveUpload(c, "profilePicture")
	if err != nil {
		return err
	}
	defer cleanup()

	user, err := s.userService.UpdateProfilePicture(c.UserContext(), currentUserID(c), imagePath)
	if err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusOK, user, "Profile picture updated successfully")
}

// generateToken creates a JWT for the given user. The payload carries the
// user id (sub) and email, expiring after the configured number of hours.
func (s *Server) generateToken(userID uint, email string) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatUint(uint64(userID), 10),
		"email": email,
		"iss":   "inkwell-api",
		"aud":   "inkwell-client",
		"exp":   now.Add(time.Duration(s.config.JWTExpiryHours) * time.Hour).Unix(),
		"iat":   now.Unix(),
		"nbf":   now.Unix(),
		"jti":   uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

func (s *Server) setAccessTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    token,
		Expires:  time.Now().Add(time.Duration(s.config.JWTExpiryHours) * time.Hour),
		HTTPOnly: true,
		Secure:   true,
	})
}

package server

import (
	"github.com/gofiber/fiber/v2"

	"quorum/internal/middleware"
	"quorum/internal/models"
	"quorum/internal/service"
)

type signupRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	// Original clients send the identifier under "username_or_email".
	UsernameOrEmail string `json:"username_or_email"`
	Password        string `json:"password"`
}

// identifier merges the current and original wire names for the login identifier.
func (r *loginRequest) identifier() string {
	if r.Username != "" {
		return r.Username
	}
	return r.UsernameOrEmail
}

// Signup registers a new account. Duplicate usernames and emails are
// rejected with a single combined check.
func (s *Server) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondError(c, models.NewValidationError("invalid request body"))
	}

	user, err := s.accounts.Register(c.Context(), service.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	middleware.Logger.InfoContext(c.Context(), "user registered",
		"user_id", user.ID, "username", user.Username)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"reason":  "Registration Successful",
		"user":    user,
	})
}

// Login checks credentials against both username and email and returns a
// bearer token on success.
func (s *Server) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondError(c, models.NewValidationError("invalid request body"))
	}

	user, err := s.accounts.Login(c.Context(), service.LoginInput{
		UsernameOrEmail: req.identifier(),
		Password:        req.Password,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return models.RespondError(c, models.NewInternalError(err))
	}

	middleware.Logger.InfoContext(c.Context(), "user logged in", "user_id", user.ID)

	return c.JSON(fiber.Map{
		"success": true,
		"reason":  "Login Successful",
		"token":   token,
		"user":    user,
	})
}

// Logout acknowledges a logout. Tokens are stateless so the client simply
// discards its copy; the endpoint exists so clients have a uniform flow.
func (s *Server) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"reason":  "Logout Successful",
	})
}

package server

import (
	"github.com/gofiber/fiber/v2"

	"quorum/internal/models"
	"quorum/internal/service"
)

type profileRequest struct {
	ProfileID       uint   `json:"profile_id"`
	UserID          uint   `json:"user_id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Location        string `json:"location"`
	PersonalWebsite string `json:"personal_website"`
	TwitterUsername string `json:"twitter_username"`
	GithubUsername  string `json:"github_username"`
	AvatarFilename  string `json:"avatar_filename"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
}

func (r profileRequest) toInput(userID uint) service.ProfileInput {
	in := service.ProfileInput{
		ProfileID:       r.ProfileID,
		UserID:          r.UserID,
		Title:           r.Title,
		Description:     r.Description,
		Location:        r.Location,
		PersonalWebsite: r.PersonalWebsite,
		TwitterUsername: r.TwitterUsername,
		GithubUsername:  r.GithubUsername,
		AvatarFilename:  r.AvatarFilename,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
	}
	if in.UserID == 0 {
		in.UserID = userID
	}
	return in
}

// CreateProfile creates a profile for a user and writes the first and last
// name back onto the owning user record in the same transaction.
func (s *Server) CreateProfile(c *fiber.Ctx) error {
	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondError(c, models.NewValidationError("invalid request body"))
	}

	profile, err := s.profiles.CreateProfile(c.Context(), req.toInput(currentUserID(c)))
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"reason":  "Profile Created",
		"profile": profile,
	})
}

// UpdateProfile replaces the mutable fields of an existing profile.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return models.RespondError(c, err)
	}

	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondError(c, models.NewValidationError("invalid request body"))
	}
	in := req.toInput(currentUserID(c))
	in.ProfileID = id

	profile, err := s.profiles.UpdateProfile(c.Context(), in)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"reason":  "Profile Updated",
		"profile": profile,
	})
}

// GetMyProfile returns the authenticated caller's profile.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.profiles.GetProfileByUser(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondError(c, models.NewInternalError(err))
	}
	if profile == nil {
		return models.RespondError(c, models.NewNotFoundError("Profile", currentUserID(c)))
	}
	return c.JSON(fiber.Map{"success": true, "profile": profile})
}

// UpsertProfile is the legacy overloaded endpoint: a resolvable profile_id
// routes to update, anything else to create.
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondError(c, models.NewValidationError("invalid request body"))
	}
	in := req.toInput(currentUserID(c))

	if in.ProfileID > 0 {
		existing, err := s.profiles.GetProfile(c.Context(), in.ProfileID)
		if err != nil {
			return models.RespondError(c, models.NewInternalError(err))
		}
		if existing != nil {
			profile, err := s.profiles.UpdateProfile(c.Context(), in)
			if err != nil {
				return models.RespondError(c, err)
			}
			return c.JSON(fiber.Map{
				"success": true,
				"reason":  "Profile Updated",
				"profile": profile,
			})
		}
	}

	profile, err := s.profiles.CreateProfile(c.Context(), in)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"reason":  "Profile Created",
		"profile": profile,
	})
}

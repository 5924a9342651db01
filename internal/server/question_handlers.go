package server

import (
	"github.com/gofiber/fiber/v2"

	"quorum/internal/models"
	"quorum/internal/service"
)

type questionRequest struct {
	ID        uint     `json:"id"`
	Title     string   `json:"title"`
	Body      string   `json:"question"`
	ProfileID uint     `json:"profile_id"`
	UpVote    bool     `json:"up_vote"`
	DownVote  bool     `json:"down_vote"`
	Tags      []string `json:"tags"`
	// Original clients send the tag collection under "tag".
	LegacyTags []string `json:"tag"`
}

// tagNames merges the current and original wire names for the tag collection.
func (r *questionRequest) tagNames() []string {
	if len(r.Tags) == 0 {
		return r.LegacyTags
	}
	return append(r.Tags, r.LegacyTags...)
}

// CreateQuestion creates a question, bumps the asker's reputation, and
// attaches tags by name.
func (s *Server) CreateQuestion(c *fiber.Ctx) error {
	var req questionRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondError(c, models.NewValidationError("invalid request body"))
	}

	question, err := s.questions.CreateQuestion(c.Context(), service.CreateQuestionInput{
		Title:     req.Title,
		Body:      req.Body,
		ProfileID: req.ProfileID,
		Tags:      req.tagNames(),
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"reason":   "Question Created",
		"question": question,
	})
}

// UpdateQuestion rewrites a question's title and body, applies vote
// triggers, and attaches any newly supplied tags.
func (s *Server) UpdateQuestion(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return models.RespondError(c, err)
	}

	var req questionRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondError(c, models.NewValidationError("invalid request body"))
	}

	question, err := s.questions.UpdateQuestion(c.Context(), service.UpdateQuestionInput{
		ID:        id,
		Title:     req.Title,
		Body:      req.Body,
		ProfileID: req.ProfileID,
		UpVote:    req.UpVote,
		DownVote:  req.DownVote,
		Tags:      req.tagNames(),
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"reason":   "Question Updated",
		"question": question,
	})
}

// GetQuestion returns a single question with tags, asker, and answers.
func (s *Server) GetQuestion(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return models.RespondError(c, err)
	}
	question, err := s.questions.GetQuestion(c.Context(), id)
	if err != nil {
		return models.RespondError(c, models.NewInternalError(err))
	}
	if question == nil {
		return models.RespondError(c, models.NewNotFoundError("Question", id))
	}
	return c.JSON(fiber.Map{"success": true, "question": question})
}

// ListQuestions serves the legacy GET /question/ listing.
func (s *Server) ListQuestions(c *fiber.Ctx) error {
	pg := parsePagination(c, defaultListLimit)
	list, err := s.questionRepo.List(c.Context(), pg.Limit, pg.Offset)
	if err != nil {
		return models.RespondError(c, models.NewInternalError(err))
	}
	return c.JSON(fiber.Map{"success": true, "questions": list})
}

// UpsertQuestion is the legacy overloaded endpoint. An absent id creates; a
// present id that resolves updates; a present id that does not resolve is an
// error, unlike the answer endpoint which falls through to create.
func (s *Server) UpsertQuestion(c *fiber.Ctx) error {
	var req questionRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondError(c, models.NewValidationError("invalid request body"))
	}

	if req.ID > 0 {
		question, err := s.questions.UpdateQuestion(c.Context(), service.UpdateQuestionInput{
			ID:        req.ID,
			Title:     req.Title,
			Body:      req.Body,
			ProfileID: req.ProfileID,
			UpVote:    req.UpVote,
			DownVote:  req.DownVote,
			Tags:      req.tagNames(),
		})
		if err != nil {
			return models.RespondError(c, err)
		}
		return c.JSON(fiber.Map{
			"success":  true,
			"reason":   "Question Updated",
			"question": question,
		})
	}

	question, err := s.questions.CreateQuestion(c.Context(), service.CreateQuestionInput{
		Title:     req.Title,
		Body:      req.Body,
		ProfileID: req.ProfileID,
		Tags:      req.tagNames(),
	})
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"reason":   "Question Created",
		"question": question,
	})
}

package server

import (
	"github.com/gofiber/fiber/v2"

	"quorum/internal/models"
	"quorum/internal/service"
)

type answerRequest struct {
	AnswerID   uint   `json:"answer_id"`
	Body       string `json:"answer"`
	QuestionID uint   `json:"question_id"`
	ProfileID  uint   `json:"profile_id"`
	ParentID   *uint  `json:"parent_id"`
	// Original clients send the parent reference under "parent".
	LegacyParent *uint `json:"parent"`
	Accepted     bool  `json:"accepted_or_not"`
	Favourite    bool  `json:"favourite"`
	UpVote       bool  `json:"up_vote"`
	DownVote     bool  `json:"down_vote"`
}

// parent merges the current and original wire names for the parent reference.
func (r *answerRequest) parent() *uint {
	if r.ParentID != nil {
		return r.ParentID
	}
	return r.LegacyParent
}

// CreateAnswer posts an answer or a reply under a question.
func (s *Server) CreateAnswer(c *fiber.Ctx) error {
	var req answerRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondError(c, models.NewValidationError("invalid request body"))
	}

	answer, err := s.answers.CreateAnswer(c.Context(), service.CreateAnswerInput{
		Body:       req.Body,
		QuestionID: req.QuestionID,
		ProfileID:  req.ProfileID,
		ParentID:   req.parent(),
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"reason":  "Answer Created",
		"answer":  answer,
	})
}

// UpdateAnswer edits an answer's body and applies the accept, favourite and
// vote triggers.
func (s *Server) UpdateAnswer(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return models.RespondError(c, err)
	}

	var req answerRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondError(c, models.NewValidationError("invalid request body"))
	}

	answer, err := s.answers.UpdateAnswer(c.Context(), service.UpdateAnswerInput{
		AnswerID:  id,
		Body:      req.Body,
		ProfileID: req.ProfileID,
		Accepted:  req.Accepted,
		Favourite: req.Favourite,
		UpVote:    req.UpVote,
		DownVote:  req.DownVote,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"reason":  "Answer Updated",
		"answer":  answer,
	})
}

// UpsertAnswer is the legacy overloaded endpoint: a resolvable answer_id
// routes to update and anything else, including a stale id, falls through
// to create.
func (s *Server) UpsertAnswer(c *fiber.Ctx) error {
	var req answerRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondError(c, models.NewValidationError("invalid request body"))
	}

	if req.AnswerID > 0 {
		existing, err := s.answers.GetAnswer(c.Context(), req.AnswerID)
		if err != nil {
			return models.RespondError(c, models.NewInternalError(err))
		}
		if existing != nil {
			answer, err := s.answers.UpdateAnswer(c.Context(), service.UpdateAnswerInput{
				AnswerID:  req.AnswerID,
				Body:      req.Body,
				ProfileID: req.ProfileID,
				Accepted:  req.Accepted,
				Favourite: req.Favourite,
				UpVote:    req.UpVote,
				DownVote:  req.DownVote,
			})
			if err != nil {
				return models.RespondError(c, err)
			}
			return c.JSON(fiber.Map{
				"success": true,
				"reason":  "Answer Updated",
				"answer":  answer,
			})
		}
	}

	answer, err := s.answers.CreateAnswer(c.Context(), service.CreateAnswerInput{
		Body:       req.Body,
		QuestionID: req.QuestionID,
		ProfileID:  req.ProfileID,
		ParentID:   req.parent(),
	})
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"reason":  "Answer Created",
		"answer":  answer,
	})
}

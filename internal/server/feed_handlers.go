package server

import (
	"github.com/gofiber/fiber/v2"

	"quorum/internal/models"
	"quorum/internal/service"
)

// GetFeed serves the composite page payload: tags, the question list
// (optionally filtered by search text), and the caller's own profile and
// content when authenticated.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	pg := parsePagination(c, defaultListLimit)
	result, err := s.feed.Feed(c.Context(), service.FeedInput{
		SearchText: c.Query("search"),
		UserID:     currentUserID(c),
		Limit:      pg.Limit,
		Offset:     pg.Offset,
	})
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "feed": result})
}

// LegacyPage serves the original overloaded root view. The query string
// selects what renders: "question_thread_id" returns the thread view,
// "question_id" a single question, and the "profile" / "login-signup"
// template hints are echoed back in the "view" field so legacy clients can
// pick a template.
func (s *Server) LegacyPage(c *fiber.Ctx) error {
	if id := c.QueryInt("question_thread_id", 0); id > 0 {
		thread, err := s.feed.Thread(c.Context(), uint(id))
		if err != nil {
			return models.RespondError(c, err)
		}
		return c.JSON(fiber.Map{"success": true, "view": "thread", "thread": thread})
	}

	if id := c.QueryInt("question_id", 0); id > 0 {
		question, err := s.questions.GetQuestion(c.Context(), uint(id))
		if err != nil {
			return models.RespondError(c, models.NewInternalError(err))
		}
		if question == nil {
			return models.RespondError(c, models.NewNotFoundError("Question", uint(id)))
		}
		return c.JSON(fiber.Map{"success": true, "view": "question", "question": question})
	}

	view := "index"
	switch {
	case c.Context().QueryArgs().Has("profile"):
		view = "profile"
	case c.Context().QueryArgs().Has("login-signup"):
		view = "login-signup"
	}

	pg := parsePagination(c, defaultListLimit)
	result, err := s.feed.Feed(c.Context(), service.FeedInput{
		SearchText: c.Query("search_text"),
		UserID:     currentUserID(c),
		Limit:      pg.Limit,
		Offset:     pg.Offset,
	})
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "view": view, "feed": result})
}

// GetThread returns one question together with its accepted answer, if any.
func (s *Server) GetThread(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return models.RespondError(c, err)
	}
	thread, err := s.feed.Thread(c.Context(), id)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "thread": thread})
}

// GetTags lists all tags, served from cache when Redis is available.
func (s *Server) GetTags(c *fiber.Ctx) error {
	tags, err := s.questions.CachedTags(c.Context())
	if err != nil {
		return models.RespondError(c, models.NewInternalError(err))
	}
	return c.JSON(fiber.Map{"success": true, "tags": tags})
}

package service

import (
	"context"

	"quorum/internal/models"
	"quorum/internal/repository"
)

// FeedService assembles the composite listing and thread views.
type FeedService struct {
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	profileRepo  repository.ProfileRepository
	questions    *QuestionService
}

// FeedInput selects what the composite view contains. UserID of zero means
// an anonymous caller. A non-positive Limit falls back to the default page
// size.
type FeedInput struct {
	SearchText string
	UserID     uint
	Limit      int
	Offset     int
}

const defaultFeedLimit = 20

// FeedResult is the composite page payload: all tags, the (optionally
// filtered) question list, and the caller's own profile, questions, and
// answers for authenticated requests.
type FeedResult struct {
	Tags         []*models.Tag      `json:"tags"`
	Questions    []*models.Question `json:"questions"`
	Profile      *models.Profile    `json:"profile,omitempty"`
	OwnQuestions []*models.Question `json:"own_questions,omitempty"`
	OwnAnswers   []*models.Answer   `json:"own_answers,omitempty"`
}

// ThreadResult is a single question plus its accepted answer, if any.
type ThreadResult struct {
	Question *models.Question `json:"question"`
	Accepted *models.Answer   `json:"accepted,omitempty"`
}

// NewFeedService creates a new FeedService.
func NewFeedService(
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	profileRepo repository.ProfileRepository,
	questions *QuestionService,
) *FeedService {
	return &FeedService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		profileRepo:  profileRepo,
		questions:    questions,
	}
}

// Feed builds the composite listing view.
func (s *FeedService) Feed(ctx context.Context, in FeedInput) (*FeedResult, error) {
	tags, err := s.questions.CachedTags(ctx)
	if err != nil {
		return nil, err
	}

	limit := in.Limit
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	offset := in.Offset
	if offset < 0 {
		offset = 0
	}

	var questions []*models.Question
	if in.SearchText != "" {
		questions, err = s.questionRepo.Search(ctx, in.SearchText, limit, offset)
	} else {
		questions, err = s.questionRepo.List(ctx, limit, offset)
	}
	if err != nil {
		return nil, err
	}

	result := &FeedResult{Tags: tags, Questions: questions}

	if in.UserID != 0 {
		profile, err := s.profileRepo.GetByUserID(ctx, in.UserID)
		if err != nil {
			return nil, err
		}
		if profile != nil {
			result.Profile = profile
			if result.OwnQuestions, err = s.questionRepo.ListByProfile(ctx, profile.ID); err != nil {
				return nil, err
			}
			if result.OwnAnswers, err = s.answerRepo.ListByProfile(ctx, profile.ID); err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}

// Thread loads a question plus at most one accepted answer scoped to it.
// A missing accepted answer is tolerated, not an error.
func (s *FeedService) Thread(ctx context.Context, questionID uint) (*ThreadResult, error) {
	question, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, models.NewNotFoundError("Question", questionID)
	}

	accepted, err := s.answerRepo.AcceptedForQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}

	return &ThreadResult{Question: question, Accepted: accepted}, nil
}

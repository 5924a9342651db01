package service

import (
	"context"

	"quorum/internal/models"
	"quorum/internal/repository"
)

// AnswerService implements answer create/update validation and the
// vote/acceptance/favourite transitions.
type AnswerService struct {
	answerRepo   repository.AnswerRepository
	questionRepo repository.QuestionRepository
	profileRepo  repository.ProfileRepository
}

// CreateAnswerInput carries the create payload. ParentID, when set, is
// resolved scoped to the same question; an unresolvable parent is treated as
// "no parent", never an error.
type CreateAnswerInput struct {
	Body       string
	QuestionID uint
	ProfileID  uint
	ParentID   *uint
}

// UpdateAnswerInput carries the update payload. Accepted is a one-way flip;
// Favourite, UpVote, and DownVote are triggers that each increment their
// counter by one. An up-vote also bumps the acting profile's reputation.
type UpdateAnswerInput struct {
	AnswerID  uint
	Body      string
	ProfileID uint
	Accepted  bool
	Favourite bool
	UpVote    bool
	DownVote  bool
}

// NewAnswerService creates a new AnswerService.
func NewAnswerService(
	answerRepo repository.AnswerRepository,
	questionRepo repository.QuestionRepository,
	profileRepo repository.ProfileRepository,
) *AnswerService {
	return &AnswerService{
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
		profileRepo:  profileRepo,
	}
}

// CreateAnswer validates references and persists a new answer attached to its
// question.
func (s *AnswerService) CreateAnswer(ctx context.Context, in CreateAnswerInput) (*models.Answer, error) {
	var missing []string
	if in.Body == "" {
		missing = append(missing, "answer")
	}
	if in.QuestionID == 0 {
		missing = append(missing, "question_id")
	}
	if len(missing) > 0 {
		return nil, models.NewMissingFieldError(missing...)
	}

	profile, err := s.profileRepo.GetByID(ctx, in.ProfileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewInvalidReferenceError("Referenced profile does not exist")
	}
	question, err := s.questionRepo.GetByID(ctx, in.QuestionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, models.NewInvalidReferenceError("Referenced question does not exist")
	}

	answer := &models.Answer{
		Body:       in.Body,
		QuestionID: question.ID,
		AnswerByID: &profile.ID,
	}
	if in.ParentID != nil && *in.ParentID != 0 {
		parent, err := s.answerRepo.GetForQuestion(ctx, *in.ParentID, question.ID)
		if err != nil {
			return nil, err
		}
		if parent != nil {
			answer.ParentID = &parent.ID
		}
	}

	if err := s.answerRepo.Create(ctx, answer); err != nil {
		return nil, err
	}
	return s.answerRepo.GetByID(ctx, answer.ID)
}

// UpdateAnswer applies the flag transitions to an existing answer. The id
// must resolve here; the legacy upsert shim routes unresolved ids to the
// create path instead of treating them as an error.
func (s *AnswerService) UpdateAnswer(ctx context.Context, in UpdateAnswerInput) (*models.Answer, error) {
	answer, err := s.answerRepo.GetByID(ctx, in.AnswerID)
	if err != nil {
		return nil, err
	}
	if answer == nil {
		return nil, models.NewNotFoundError("Answer", in.AnswerID)
	}

	if in.Body != "" && in.Body != answer.Body {
		answer.Body = in.Body
		if err := s.answerRepo.Update(ctx, answer); err != nil {
			return nil, err
		}
	}

	// Accepted only ever flips on; an update without the flag leaves it set.
	if in.Accepted && !answer.Accepted {
		if err := s.answerRepo.Accept(ctx, answer.ID); err != nil {
			return nil, err
		}
	}
	if in.Favourite {
		if err := s.answerRepo.MarkFavourite(ctx, answer.ID); err != nil {
			return nil, err
		}
	}
	if in.UpVote {
		profile, err := s.profileRepo.GetByID(ctx, in.ProfileID)
		if err != nil {
			return nil, err
		}
		if profile == nil {
			return nil, models.NewInvalidReferenceError("Referenced profile does not exist")
		}
		if err := s.answerRepo.Upvote(ctx, answer.ID, profile.ID); err != nil {
			return nil, err
		}
	}
	if in.DownVote {
		if err := s.answerRepo.Downvote(ctx, answer.ID); err != nil {
			return nil, err
		}
	}

	return s.answerRepo.GetByID(ctx, answer.ID)
}

// GetAnswer resolves an answer by id; (nil, nil) when absent.
func (s *AnswerService) GetAnswer(ctx context.Context, id uint) (*models.Answer, error) {
	return s.answerRepo.GetByID(ctx, id)
}

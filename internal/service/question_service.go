package service

import (
	"context"
	"log/slog"
	"time"

	"quorum/internal/cache"
	"quorum/internal/middleware"
	"quorum/internal/models"
	"quorum/internal/repository"
)

const tagListCacheKey = "feed:tags"

// QuestionService implements question create/update validation and the
// vote/reputation transitions.
type QuestionService struct {
	questionRepo repository.QuestionRepository
	tagRepo      repository.TagRepository
	profileRepo  repository.ProfileRepository
}

// CreateQuestionInput carries the create payload.
type CreateQuestionInput struct {
	Title     string
	Body      string
	ProfileID uint
	Tags      []string
}

// UpdateQuestionInput carries the update payload. UpVote and DownVote are
// independent triggers; each set flag increments its counter by one.
type UpdateQuestionInput struct {
	ID        uint
	Title     string
	Body      string
	ProfileID uint
	UpVote    bool
	DownVote  bool
	Tags      []string
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	tagRepo repository.TagRepository,
	profileRepo repository.ProfileRepository,
) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		tagRepo:      tagRepo,
		profileRepo:  profileRepo,
	}
}

func (s *QuestionService) resolveProfile(ctx context.Context, profileID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewUnknownProfileError(profileID)
	}
	return profile, nil
}

// CreateQuestion validates and persists a new question. The asking profile's
// reputation goes up by one in the same transaction as the insert.
func (s *QuestionService) CreateQuestion(ctx context.Context, in CreateQuestionInput) (*models.Question, error) {
	profile, err := s.resolveProfile(ctx, in.ProfileID)
	if err != nil {
		return nil, err
	}

	var missing []string
	if in.Title == "" {
		missing = append(missing, "title")
	}
	if in.Body == "" {
		missing = append(missing, "question")
	}
	if len(missing) > 0 {
		return nil, models.NewMissingFieldError(missing...)
	}

	question := &models.Question{
		Title:     in.Title,
		Body:      in.Body,
		AskedByID: &profile.ID,
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}

	s.attachTags(ctx, question.ID, in.Tags)

	return s.questionRepo.GetByID(ctx, question.ID)
}

// UpdateQuestion overwrites title/body unconditionally and applies the vote
// triggers. The id must resolve; an unresolved id is NotFound, unlike the
// answer update path.
func (s *QuestionService) UpdateQuestion(ctx context.Context, in UpdateQuestionInput) (*models.Question, error) {
	if _, err := s.resolveProfile(ctx, in.ProfileID); err != nil {
		return nil, err
	}

	question, err := s.questionRepo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, models.NewNotFoundError("Question", in.ID)
	}

	question.Title = in.Title
	question.Body = in.Body
	if err := s.questionRepo.Update(ctx, question); err != nil {
		return nil, err
	}

	if in.UpVote || in.DownVote {
		if err := s.questionRepo.IncrementVotes(ctx, in.ID, in.UpVote, in.DownVote); err != nil {
			return nil, err
		}
	}

	s.attachTags(ctx, question.ID, in.Tags)

	return s.questionRepo.GetByID(ctx, question.ID)
}

// GetQuestion resolves a question by id; (nil, nil) when absent.
func (s *QuestionService) GetQuestion(ctx context.Context, id uint) (*models.Question, error) {
	return s.questionRepo.GetByID(ctx, id)
}

// attachTags attaches each named tag, skipping empties. Attachment is an
// idempotent set union; per-tag failures are logged and swallowed so one bad
// tag never rejects the whole submission.
func (s *QuestionService) attachTags(ctx context.Context, questionID uint, names []string) {
	attached := false
	for _, name := range names {
		if name == "" {
			continue
		}
		tag, err := s.tagRepo.GetOrCreateByName(ctx, name)
		if err != nil {
			middleware.Logger.WarnContext(ctx, "tag attach skipped",
				slog.String("tag", name),
				slog.String("error", err.Error()),
			)
			continue
		}
		if err := s.questionRepo.AttachTag(ctx, questionID, tag.ID); err != nil {
			middleware.Logger.WarnContext(ctx, "tag attach skipped",
				slog.String("tag", name),
				slog.String("error", err.Error()),
			)
			continue
		}
		attached = true
	}
	if attached {
		cache.Invalidate(ctx, tagListCacheKey)
	}
}

// CachedTags returns the full tag list through the cache-aside helper.
func (s *QuestionService) CachedTags(ctx context.Context) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := cache.CacheAside(ctx, tagListCacheKey, &tags, 5*time.Minute, func() error {
		var err error
		tags, err = s.tagRepo.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tags, nil
}

package repository

import (
	"context"
	"errors"

	"quorum/internal/models"
	"quorum/internal/observability"

	"gorm.io/gorm"
)

// AnswerRepository defines the interface for answer operations.
type AnswerRepository interface {
	Create(ctx context.Context, answer *models.Answer) error
	// GetByID returns (nil, nil) when no answer matches.
	GetByID(ctx context.Context, id uint) (*models.Answer, error)
	// GetForQuestion resolves an answer id scoped to the given question.
	// Returns (nil, nil) when the id does not resolve within that question.
	GetForQuestion(ctx context.Context, id, questionID uint) (*models.Answer, error)
	Update(ctx context.Context, answer *models.Answer) error
	// Upvote increments the answer's up-vote counter and the acting
	// profile's reputation inside one transaction.
	Upvote(ctx context.Context, answerID, profileID uint) error
	Downvote(ctx context.Context, answerID uint) error
	// MarkFavourite bumps the favourite counter; the inbound flag is a
	// trigger, not a toggle.
	MarkFavourite(ctx context.Context, answerID uint) error
	// Accept flips the accepted flag on. There is no path back to false.
	Accept(ctx context.Context, answerID uint) error
	// AcceptedForQuestion returns the accepted answer of a question, or
	// (nil, nil) when none is flagged.
	AcceptedForQuestion(ctx context.Context, questionID uint) (*models.Answer, error)
	ListByProfile(ctx context.Context, profileID uint) ([]*models.Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

// NewAnswerRepository creates a new answer repository.
func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(ctx context.Context, answer *models.Answer) error {
	if err := r.db.WithContext(ctx).Create(answer).Error; err != nil {
		return models.NewInternalError(err)
	}
	observability.AnswersCreated.Inc()
	return nil
}

func (r *answerRepository) GetByID(ctx context.Context, id uint) (*models.Answer, error) {
	var answer models.Answer
	err := r.db.WithContext(ctx).Preload("AnswerBy").First(&answer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &answer, nil
}

func (r *answerRepository) GetForQuestion(ctx context.Context, id, questionID uint) (*models.Answer, error) {
	var answer models.Answer
	err := r.db.WithContext(ctx).
		Where("id = ? AND question_id = ?", id, questionID).
		First(&answer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &answer, nil
}

func (r *answerRepository) Update(ctx context.Context, answer *models.Answer) error {
	if err := r.db.WithContext(ctx).Save(answer).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *answerRepository) Upvote(ctx context.Context, answerID, profileID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Answer{}).
			Where("id = ?", answerID).
			UpdateColumn("up_vote", gorm.Expr("up_vote + ?", 1)).Error
		if err != nil {
			return err
		}
		return tx.Model(&models.Profile{}).
			Where("id = ?", profileID).
			UpdateColumn("reputation", gorm.Expr("reputation + ?", 1)).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	observability.VotesRecorded.WithLabelValues("answer", "up").Inc()
	observability.ReputationAwarded.Inc()
	return nil
}

func (r *answerRepository) Downvote(ctx context.Context, answerID uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.Answer{}).
		Where("id = ?", answerID).
		UpdateColumn("down_vote", gorm.Expr("down_vote + ?", 1)).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	observability.VotesRecorded.WithLabelValues("answer", "down").Inc()
	return nil
}

func (r *answerRepository) MarkFavourite(ctx context.Context, answerID uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.Answer{}).
		Where("id = ?", answerID).
		UpdateColumn("favourite", gorm.Expr("favourite + ?", 1)).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *answerRepository) Accept(ctx context.Context, answerID uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.Answer{}).
		Where("id = ?", answerID).
		UpdateColumn("accepted", true).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *answerRepository) AcceptedForQuestion(ctx context.Context, questionID uint) (*models.Answer, error) {
	var answer models.Answer
	err := r.db.WithContext(ctx).
		Preload("AnswerBy").
		Where("question_id = ? AND accepted = ?", questionID, true).
		First(&answer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &answer, nil
}

func (r *answerRepository) ListByProfile(ctx context.Context, profileID uint) ([]*models.Answer, error) {
	var answers []*models.Answer
	err := r.db.WithContext(ctx).
		Where("answer_by_id = ?", profileID).
		Order("created_at desc").
		Find(&answers).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return answers, nil
}

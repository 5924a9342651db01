package repository

import (
	"context"
	"errors"
	"strings"

	"quorum/internal/models"
	"quorum/internal/observability"

	"gorm.io/gorm"
)

// QuestionRepository defines the interface for question operations.
type QuestionRepository interface {
	// Create persists the question and bumps the asking profile's reputation
	// by one inside a single transaction.
	Create(ctx context.Context, question *models.Question) error
	// GetByID returns (nil, nil) when no question matches.
	GetByID(ctx context.Context, id uint) (*models.Question, error)
	Update(ctx context.Context, question *models.Question) error
	// IncrementVotes applies the requested vote counters as SQL-level
	// increments. Both flags are independent; neither excludes the other.
	IncrementVotes(ctx context.Context, id uint, up, down bool) error
	// AttachTag adds the tag to the question's tag set. Attaching an
	// already-attached tag is a no-op, not an error.
	AttachTag(ctx context.Context, questionID, tagID uint) error
	List(ctx context.Context, limit, offset int) ([]*models.Question, error)
	// Search filters by case-insensitive substring match against the title
	// or any attached tag name.
	Search(ctx context.Context, text string, limit, offset int) ([]*models.Question, error)
	ListByProfile(ctx context.Context, profileID uint) ([]*models.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new question repository.
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *models.Question) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(question).Error; err != nil {
			return err
		}
		if question.AskedByID == nil {
			return nil
		}
		return tx.Model(&models.Profile{}).
			Where("id = ?", *question.AskedByID).
			UpdateColumn("reputation", gorm.Expr("reputation + ?", 1)).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	observability.QuestionsCreated.Inc()
	observability.ReputationAwarded.Inc()
	return nil
}

func (r *questionRepository) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("AskedBy").
		Preload("AskedBy.User").
		Preload("Answers").
		First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &question, nil
}

func (r *questionRepository) Update(ctx context.Context, question *models.Question) error {
	err := r.db.WithContext(ctx).
		Model(question).
		Updates(map[string]interface{}{
			"title": question.Title,
			"body":  question.Body,
		}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *questionRepository) IncrementVotes(ctx context.Context, id uint, up, down bool) error {
	if up {
		err := r.db.WithContext(ctx).
			Model(&models.Question{}).
			Where("id = ?", id).
			UpdateColumn("up_vote", gorm.Expr("up_vote + ?", 1)).Error
		if err != nil {
			return models.NewInternalError(err)
		}
		observability.VotesRecorded.WithLabelValues("question", "up").Inc()
	}
	if down {
		err := r.db.WithContext(ctx).
			Model(&models.Question{}).
			Where("id = ?", id).
			UpdateColumn("down_vote", gorm.Expr("down_vote + ?", 1)).Error
		if err != nil {
			return models.NewInternalError(err)
		}
		observability.VotesRecorded.WithLabelValues("question", "down").Inc()
	}
	return nil
}

func (r *questionRepository) AttachTag(ctx context.Context, questionID, tagID uint) error {
	var count int64
	err := r.db.WithContext(ctx).
		Table("question_tags").
		Where("question_id = ? AND tag_id = ?", questionID, tagID).
		Count(&count).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	if count > 0 {
		return nil
	}
	err = r.db.WithContext(ctx).
		Exec("INSERT INTO question_tags (question_id, tag_id) VALUES (?, ?)", questionID, tagID).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *questionRepository) List(ctx context.Context, limit, offset int) ([]*models.Question, error) {
	var questions []*models.Question
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("AskedBy").
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&questions).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return questions, nil
}

func (r *questionRepository) Search(ctx context.Context, text string, limit, offset int) ([]*models.Question, error) {
	pattern := "%" + strings.ToLower(text) + "%"
	var questions []*models.Question
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("AskedBy").
		Where(
			"lower(title) LIKE ? OR id IN (?)",
			pattern,
			r.db.Table("question_tags").
				Select("question_tags.question_id").
				Joins("JOIN tags ON tags.id = question_tags.tag_id").
				Where("lower(tags.name) LIKE ?", pattern),
		).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&questions).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return questions, nil
}

func (r *questionRepository) ListByProfile(ctx context.Context, profileID uint) ([]*models.Question, error) {
	var questions []*models.Question
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Where("asked_by_id = ?", profileID).
		Order("created_at desc").
		Find(&questions).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return questions, nil
}

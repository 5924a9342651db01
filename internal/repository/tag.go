package repository

import (
	"context"
	"errors"
	"fmt"

	"quorum/internal/models"
	"quorum/internal/validation"

	"gorm.io/gorm"
)

// TagRepository defines the interface for tag operations.
type TagRepository interface {
	// GetOrCreateByName returns the existing tag with the given name, or
	// creates one with a slug derived from the name. Slug collisions with
	// differently-named tags get a numeric suffix.
	GetOrCreateByName(ctx context.Context, name string) (*models.Tag, error)
	List(ctx context.Context) ([]*models.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository.
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) GetOrCreateByName(ctx context.Context, name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewInternalError(err)
	}

	base := validation.Slugify(name)
	if base == "" {
		return nil, models.NewValidationError("Tag name must contain at least one letter or digit")
	}

	slug := base
	for i := 2; ; i++ {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Tag{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return nil, models.NewInternalError(err)
		}
		if count == 0 {
			break
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}

	tag = models.Tag{Name: name, Slug: slug}
	if err := r.db.WithContext(ctx).Create(&tag).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return &tag, nil
}

func (r *tagRepository) List(ctx context.Context) ([]*models.Tag, error) {
	var tags []*models.Tag
	if err := r.db.WithContext(ctx).Order("name asc").Find(&tags).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tags, nil
}

package service

import (
	"context"

	"quorum/internal/models"
	"quorum/internal/repository"
	"quorum/internal/validation"
)

// ProfileService implements profile create/update validation.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

// ProfileInput carries the flat profile payload shared by both paths.
type ProfileInput struct {
	ProfileID       uint
	UserID          uint
	Title           string
	Description     string
	Location        string
	PersonalWebsite string
	TwitterUsername string
	GithubUsername  string
	AvatarFilename  string
	FirstName       string
	LastName        string
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, userRepo: userRepo}
}

func validateProfileFields(in ProfileInput) error {
	var missing []string
	if in.Title == "" {
		missing = append(missing, "title")
	}
	if in.Description == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return models.NewMissingFieldError(missing...)
	}
	return nil
}

// CreateProfile validates and persists a new profile. Creation also writes
// first/last name back onto the linked user, in one transaction.
func (s *ProfileService) CreateProfile(ctx context.Context, in ProfileInput) (*models.Profile, error) {
	if err := validateProfileFields(in); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewInvalidReferenceError("Referenced user does not exist")
	}

	profile := &models.Profile{
		UserID:          in.UserID,
		Title:           in.Title,
		Description:     in.Description,
		Location:        in.Location,
		PersonalWebsite: in.PersonalWebsite,
		TwitterUsername: in.TwitterUsername,
		GithubUsername:  in.GithubUsername,
	}
	if in.AvatarFilename != "" {
		profile.AvatarPath = validation.AvatarPath(in.AvatarFilename)
	}

	if err := s.profileRepo.CreateWithOwnerName(ctx, profile, in.FirstName, in.LastName); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByID(ctx, profile.ID)
}

// UpdateProfile overwrites every listed field unconditionally, including with
// empty values. Last write wins; there are no partial-update semantics.
func (s *ProfileService) UpdateProfile(ctx context.Context, in ProfileInput) (*models.Profile, error) {
	if err := validateProfileFields(in); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByID(ctx, in.ProfileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("Profile", in.ProfileID)
	}

	profile.Title = in.Title
	profile.Description = in.Description
	profile.Location = in.Location
	profile.PersonalWebsite = in.PersonalWebsite
	profile.TwitterUsername = in.TwitterUsername
	profile.GithubUsername = in.GithubUsername
	if in.AvatarFilename != "" {
		profile.AvatarPath = validation.AvatarPath(in.AvatarFilename)
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByID(ctx, profile.ID)
}

// GetProfile resolves a profile by id; (nil, nil) when absent. The legacy
// upsert shim uses this to pick between the create and update paths.
func (s *ProfileService) GetProfile(ctx context.Context, id uint) (*models.Profile, error) {
	return s.profileRepo.GetByID(ctx, id)
}

// GetProfileByUser resolves the caller's own profile; (nil, nil) when the
// user has not created one yet.
func (s *ProfileService) GetProfileByUser(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

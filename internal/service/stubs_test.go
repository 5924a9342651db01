package service

import (
	"context"

	"quorum/internal/models"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn               func(context.Context, uint) (*models.User, error)
	getByUsernameOrEmailFn  func(context.Context, string) (*models.User, error)
	existsByUsernameOrEmail func(context.Context, string, string) (bool, error)
	createFn                func(context.Context, *models.User) error
	updateFn                func(context.Context, *models.User) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.User, error) {
	return s.getByUsernameOrEmailFn(ctx, identifier)
}
func (s *userRepoStub) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	return s.existsByUsernameOrEmail(ctx, username, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:               func(_ context.Context, _ uint) (*models.User, error) { return &models.User{ID: 1}, nil },
		getByUsernameOrEmailFn:  func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		existsByUsernameOrEmail: func(_ context.Context, _, _ string) (bool, error) { return false, nil },
		createFn:                func(_ context.Context, _ *models.User) error { return nil },
		updateFn:                func(_ context.Context, _ *models.User) error { return nil },
	}
}

// profileRepoStub is a stub for repository.ProfileRepository.
type profileRepoStub struct {
	getByIDFn             func(context.Context, uint) (*models.Profile, error)
	getByUserIDFn         func(context.Context, uint) (*models.Profile, error)
	createWithOwnerNameFn func(context.Context, *models.Profile, string, string) error
	updateFn              func(context.Context, *models.Profile) error
}

func (s *profileRepoStub) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	return s.getByIDFn(ctx, id)
}
func (s *profileRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *profileRepoStub) CreateWithOwnerName(ctx context.Context, profile *models.Profile, firstName, lastName string) error {
	return s.createWithOwnerNameFn(ctx, profile, firstName, lastName)
}
func (s *profileRepoStub) Update(ctx context.Context, profile *models.Profile) error {
	return s.updateFn(ctx, profile)
}

func noopProfileRepo() *profileRepoStub {
	return &profileRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.Profile, error) {
			return &models.Profile{ID: id}, nil
		},
		getByUserIDFn: func(_ context.Context, _ uint) (*models.Profile, error) { return nil, nil },
		createWithOwnerNameFn: func(_ context.Context, p *models.Profile, _, _ string) error {
			p.ID = 1
			return nil
		},
		updateFn: func(_ context.Context, _ *models.Profile) error { return nil },
	}
}

// tagRepoStub is a stub for repository.TagRepository.
type tagRepoStub struct {
	getOrCreateByNameFn func(context.Context, string) (*models.Tag, error)
	listFn              func(context.Context) ([]*models.Tag, error)
}

func (s *tagRepoStub) GetOrCreateByName(ctx context.Context, name string) (*models.Tag, error) {
	return s.getOrCreateByNameFn(ctx, name)
}
func (s *tagRepoStub) List(ctx context.Context) ([]*models.Tag, error) {
	return s.listFn(ctx)
}

func noopTagRepo() *tagRepoStub {
	return &tagRepoStub{
		getOrCreateByNameFn: func(_ context.Context, name string) (*models.Tag, error) {
			return &models.Tag{ID: 1, Name: name, Slug: name}, nil
		},
		listFn: func(_ context.Context) ([]*models.Tag, error) { return nil, nil },
	}
}

// questionRepoStub is a stub for repository.QuestionRepository.
type questionRepoStub struct {
	createFn         func(context.Context, *models.Question) error
	getByIDFn        func(context.Context, uint) (*models.Question, error)
	updateFn         func(context.Context, *models.Question) error
	incrementVotesFn func(context.Context, uint, bool, bool) error
	attachTagFn      func(context.Context, uint, uint) error
	listFn           func(context.Context, int, int) ([]*models.Question, error)
	searchFn         func(context.Context, string, int, int) ([]*models.Question, error)
	listByProfileFn  func(context.Context, uint) ([]*models.Question, error)
}

func (s *questionRepoStub) Create(ctx context.Context, question *models.Question) error {
	return s.createFn(ctx, question)
}
func (s *questionRepoStub) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	return s.getByIDFn(ctx, id)
}
func (s *questionRepoStub) Update(ctx context.Context, question *models.Question) error {
	return s.updateFn(ctx, question)
}
func (s *questionRepoStub) IncrementVotes(ctx context.Context, id uint, up, down bool) error {
	return s.incrementVotesFn(ctx, id, up, down)
}
func (s *questionRepoStub) AttachTag(ctx context.Context, questionID, tagID uint) error {
	return s.attachTagFn(ctx, questionID, tagID)
}
func (s *questionRepoStub) List(ctx context.Context, limit, offset int) ([]*models.Question, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *questionRepoStub) Search(ctx context.Context, text string, limit, offset int) ([]*models.Question, error) {
	return s.searchFn(ctx, text, limit, offset)
}
func (s *questionRepoStub) ListByProfile(ctx context.Context, profileID uint) ([]*models.Question, error) {
	return s.listByProfileFn(ctx, profileID)
}

func noopQuestionRepo() *questionRepoStub {
	return &questionRepoStub{
		createFn: func(_ context.Context, q *models.Question) error {
			q.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Question, error) {
			return &models.Question{ID: id}, nil
		},
		updateFn:         func(_ context.Context, _ *models.Question) error { return nil },
		incrementVotesFn: func(_ context.Context, _ uint, _, _ bool) error { return nil },
		attachTagFn:      func(_ context.Context, _, _ uint) error { return nil },
		listFn:           func(_ context.Context, _, _ int) ([]*models.Question, error) { return nil, nil },
		searchFn:         func(_ context.Context, _ string, _, _ int) ([]*models.Question, error) { return nil, nil },
		listByProfileFn:  func(_ context.Context, _ uint) ([]*models.Question, error) { return nil, nil },
	}
}

// answerRepoStub is a stub for repository.AnswerRepository.
type answerRepoStub struct {
	createFn              func(context.Context, *models.Answer) error
	getByIDFn             func(context.Context, uint) (*models.Answer, error)
	getForQuestionFn      func(context.Context, uint, uint) (*models.Answer, error)
	updateFn              func(context.Context, *models.Answer) error
	upvoteFn              func(context.Context, uint, uint) error
	downvoteFn            func(context.Context, uint) error
	markFavouriteFn       func(context.Context, uint) error
	acceptFn              func(context.Context, uint) error
	acceptedForQuestionFn func(context.Context, uint) (*models.Answer, error)
	listByProfileFn       func(context.Context, uint) ([]*models.Answer, error)
}

func (s *answerRepoStub) Create(ctx context.Context, answer *models.Answer) error {
	return s.createFn(ctx, answer)
}
func (s *answerRepoStub) GetByID(ctx context.Context, id uint) (*models.Answer, error) {
	return s.getByIDFn(ctx, id)
}
func (s *answerRepoStub) GetForQuestion(ctx context.Context, id, questionID uint) (*models.Answer, error) {
	return s.getForQuestionFn(ctx, id, questionID)
}
func (s *answerRepoStub) Update(ctx context.Context, answer *models.Answer) error {
	return s.updateFn(ctx, answer)
}
func (s *answerRepoStub) Upvote(ctx context.Context, answerID, profileID uint) error {
	return s.upvoteFn(ctx, answerID, profileID)
}
func (s *answerRepoStub) Downvote(ctx context.Context, answerID uint) error {
	return s.downvoteFn(ctx, answerID)
}
func (s *answerRepoStub) MarkFavourite(ctx context.Context, answerID uint) error {
	return s.markFavouriteFn(ctx, answerID)
}
func (s *answerRepoStub) Accept(ctx context.Context, answerID uint) error {
	return s.acceptFn(ctx, answerID)
}
func (s *answerRepoStub) AcceptedForQuestion(ctx context.Context, questionID uint) (*models.Answer, error) {
	return s.acceptedForQuestionFn(ctx, questionID)
}
func (s *answerRepoStub) ListByProfile(ctx context.Context, profileID uint) ([]*models.Answer, error) {
	return s.listByProfileFn(ctx, profileID)
}

func noopAnswerRepo() *answerRepoStub {
	return &answerRepoStub{
		createFn: func(_ context.Context, a *models.Answer) error {
			a.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Answer, error) {
			return &models.Answer{ID: id}, nil
		},
		getForQuestionFn:      func(_ context.Context, _, _ uint) (*models.Answer, error) { return nil, nil },
		updateFn:              func(_ context.Context, _ *models.Answer) error { return nil },
		upvoteFn:              func(_ context.Context, _, _ uint) error { return nil },
		downvoteFn:            func(_ context.Context, _ uint) error { return nil },
		markFavouriteFn:       func(_ context.Context, _ uint) error { return nil },
		acceptFn:              func(_ context.Context, _ uint) error { return nil },
		acceptedForQuestionFn: func(_ context.Context, _ uint) (*models.Answer, error) { return nil, nil },
		listByProfileFn:       func(_ context.Context, _ uint) ([]*models.Answer, error) { return nil, nil },
	}
}

package service

import (
	"context"
	"testing"

	"quorum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeedService(questions *questionRepoStub, answers *answerRepoStub, profiles *profileRepoStub, tags *tagRepoStub) *FeedService {
	questionSvc := NewQuestionService(questions, tags, profiles)
	return NewFeedService(questions, answers, profiles, questionSvc)
}

func TestFeedService_Feed_Anonymous(t *testing.T) {
	questions := noopQuestionRepo()
	var searched, listed bool
	questions.listFn = func(_ context.Context, limit, offset int) ([]*models.Question, error) {
		listed = true
		assert.Equal(t, 20, limit)
		assert.Equal(t, 0, offset)
		return []*models.Question{{ID: 1}, {ID: 2}}, nil
	}
	questions.searchFn = func(_ context.Context, _ string, _, _ int) ([]*models.Question, error) {
		searched = true
		return nil, nil
	}
	tags := noopTagRepo()
	tags.listFn = func(_ context.Context) ([]*models.Tag, error) {
		return []*models.Tag{{ID: 1, Name: "go"}}, nil
	}

	svc := newFeedService(questions, noopAnswerRepo(), noopProfileRepo(), tags)
	result, err := svc.Feed(context.Background(), FeedInput{})
	require.NoError(t, err)

	assert.True(t, listed)
	assert.False(t, searched)
	assert.Len(t, result.Questions, 2)
	assert.Len(t, result.Tags, 1)
	assert.Nil(t, result.Profile)
	assert.Nil(t, result.OwnQuestions)
	assert.Nil(t, result.OwnAnswers)
}

func TestFeedService_Feed_SearchText(t *testing.T) {
	questions := noopQuestionRepo()
	var gotText string
	questions.searchFn = func(_ context.Context, text string, _, _ int) ([]*models.Question, error) {
		gotText = text
		return []*models.Question{{ID: 3}}, nil
	}

	svc := newFeedService(questions, noopAnswerRepo(), noopProfileRepo(), noopTagRepo())
	result, err := svc.Feed(context.Background(), FeedInput{SearchText: "generics"})
	require.NoError(t, err)

	assert.Equal(t, "generics", gotText)
	assert.Len(t, result.Questions, 1)
}

func TestFeedService_Feed_Pagination(t *testing.T) {
	questions := noopQuestionRepo()
	var gotLimit, gotOffset int
	questions.listFn = func(_ context.Context, limit, offset int) ([]*models.Question, error) {
		gotLimit, gotOffset = limit, offset
		return nil, nil
	}
	svc := newFeedService(questions, noopAnswerRepo(), noopProfileRepo(), noopTagRepo())

	_, err := svc.Feed(context.Background(), FeedInput{Limit: 5, Offset: 10})
	require.NoError(t, err)
	assert.Equal(t, 5, gotLimit)
	assert.Equal(t, 10, gotOffset)

	// Non-positive values fall back to the defaults.
	_, err = svc.Feed(context.Background(), FeedInput{Limit: -1, Offset: -3})
	require.NoError(t, err)
	assert.Equal(t, 20, gotLimit)
	assert.Equal(t, 0, gotOffset)
}

func TestFeedService_Feed_Authenticated(t *testing.T) {
	profiles := noopProfileRepo()
	profiles.getByUserIDFn = func(_ context.Context, userID uint) (*models.Profile, error) {
		return &models.Profile{ID: 8, UserID: userID}, nil
	}
	questions := noopQuestionRepo()
	questions.listByProfileFn = func(_ context.Context, profileID uint) ([]*models.Question, error) {
		assert.EqualValues(t, 8, profileID)
		return []*models.Question{{ID: 1}}, nil
	}
	answers := noopAnswerRepo()
	answers.listByProfileFn = func(_ context.Context, profileID uint) ([]*models.Answer, error) {
		assert.EqualValues(t, 8, profileID)
		return []*models.Answer{{ID: 2}, {ID: 3}}, nil
	}

	svc := newFeedService(questions, answers, profiles, noopTagRepo())
	result, err := svc.Feed(context.Background(), FeedInput{UserID: 4})
	require.NoError(t, err)

	require.NotNil(t, result.Profile)
	assert.Len(t, result.OwnQuestions, 1)
	assert.Len(t, result.OwnAnswers, 2)
}

func TestFeedService_Feed_AuthenticatedWithoutProfile(t *testing.T) {
	// A logged-in user who never created a profile still gets the public feed.
	svc := newFeedService(noopQuestionRepo(), noopAnswerRepo(), noopProfileRepo(), noopTagRepo())
	result, err := svc.Feed(context.Background(), FeedInput{UserID: 4})
	require.NoError(t, err)
	assert.Nil(t, result.Profile)
}

func TestFeedService_Thread(t *testing.T) {
	questions := noopQuestionRepo()
	answers := noopAnswerRepo()

	t.Run("With Accepted Answer", func(t *testing.T) {
		answers.acceptedForQuestionFn = func(_ context.Context, _ uint) (*models.Answer, error) {
			return &models.Answer{ID: 5, Accepted: true}, nil
		}
		svc := newFeedService(questions, answers, noopProfileRepo(), noopTagRepo())
		thread, err := svc.Thread(context.Background(), 1)
		require.NoError(t, err)
		require.NotNil(t, thread.Accepted)
		assert.EqualValues(t, 5, thread.Accepted.ID)
	})

	t.Run("No Accepted Answer Is Tolerated", func(t *testing.T) {
		answers.acceptedForQuestionFn = func(_ context.Context, _ uint) (*models.Answer, error) {
			return nil, nil
		}
		svc := newFeedService(questions, answers, noopProfileRepo(), noopTagRepo())
		thread, err := svc.Thread(context.Background(), 1)
		require.NoError(t, err)
		assert.Nil(t, thread.Accepted)
	})

	t.Run("Unknown Question", func(t *testing.T) {
		missing := noopQuestionRepo()
		missing.getByIDFn = func(_ context.Context, _ uint) (*models.Question, error) {
			return nil, nil
		}
		svc := newFeedService(missing, answers, noopProfileRepo(), noopTagRepo())
		_, err := svc.Thread(context.Background(), 404)
		require.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}

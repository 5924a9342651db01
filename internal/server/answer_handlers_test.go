package server

import (
	"fmt"
	"net/http"
	"testing"

	"quorum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAnswer(t *testing.T) {
	app, _ := setupTestApp(t)
	token, _ := registerAndLogin(t, app, "answerer")
	profileID := createProfile(t, app, token)

	resp, body := doJSON(t, app, http.MethodPost, "/api/questions", token, map[string]any{
		"title": "Answer me", "question": "body", "profile_id": profileID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created, _ := body["question"].(map[string]any)
	questionID := uint((created["id"]).(float64))

	resp, body = doJSON(t, app, http.MethodPost, "/api/answers", token, map[string]any{
		"answer": "First answer", "question_id": questionID, "profile_id": profileID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	answer, _ := body["answer"].(map[string]any)
	parentID := uint((answer["id"]).(float64))

	// A reply nests under a resolvable parent from the same question.
	resp, body = doJSON(t, app, http.MethodPost, "/api/answers", token, map[string]any{
		"answer": "A reply", "question_id": questionID,
		"profile_id": profileID, "parent_id": parentID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	reply, _ := body["answer"].(map[string]any)
	assert.EqualValues(t, parentID, reply["parent_id"])

	// A stale parent id silently produces a top-level answer.
	resp, body = doJSON(t, app, http.MethodPost, "/api/answers", token, map[string]any{
		"answer": "Orphan reply", "question_id": questionID,
		"profile_id": profileID, "parent_id": 9999,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	orphan, _ := body["answer"].(map[string]any)
	assert.Nil(t, orphan["parent_id"])
}

func TestCreateAnswer_InvalidReferences(t *testing.T) {
	app, _ := setupTestApp(t)
	token, _ := registerAndLogin(t, app, "answerer")
	profileID := createProfile(t, app, token)

	tests := []struct {
		name string
		body map[string]any
		code string
	}{
		{
			name: "Unknown Question",
			body: map[string]any{"answer": "x", "question_id": 9999, "profile_id": profileID},
			code: "INVALID_REFERENCE",
		},
		{
			name: "Unknown Profile",
			body: map[string]any{"answer": "x", "question_id": 1, "profile_id": 9999},
			code: "INVALID_REFERENCE",
		},
		{
			name: "Missing Body",
			body: map[string]any{"question_id": 1, "profile_id": profileID},
			code: "MISSING_REQUIRED_FIELD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doJSON(t, app, http.MethodPost, "/api/answers", token, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tt.code, body["code"])
		})
	}
}

func TestUpdateAnswer_TriggersAndReputation(t *testing.T) {
	app, srv := setupTestApp(t)
	token, _ := registerAndLogin(t, app, "author")
	authorProfile := createProfile(t, app, token)

	voterToken, _ := registerAndLogin(t, app, "voter")
	voterProfile := createProfile(t, app, voterToken)

	resp, body := doJSON(t, app, http.MethodPost, "/api/questions", token, map[string]any{
		"title": "Q", "question": "body", "profile_id": authorProfile,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created, _ := body["question"].(map[string]any)
	questionID := uint((created["id"]).(float64))

	resp, body = doJSON(t, app, http.MethodPost, "/api/answers", token, map[string]any{
		"answer": "the answer", "question_id": questionID, "profile_id": authorProfile,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	answer, _ := body["answer"].(map[string]any)
	answerID := uint((answer["id"]).(float64))

	// Upvote from the voter bumps the answer and the voter's reputation.
	resp, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/answers/%d", answerID), voterToken, map[string]any{
		"up_vote": true, "profile_id": voterProfile,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var voter models.Profile
	require.NoError(t, srv.db.First(&voter, voterProfile).Error)
	assert.Equal(t, 1, voter.Reputation)

	// Accept and favourite.
	resp, body = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/answers/%d", answerID), token, map[string]any{
		"accepted_or_not": true, "favourite": true, "profile_id": authorProfile,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated, _ := body["answer"].(map[string]any)
	assert.Equal(t, true, updated["accepted_or_not"])
	assert.EqualValues(t, 1, updated["favourite"])

	// A later update without the flag leaves accepted set.
	resp, body = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/answers/%d", answerID), token, map[string]any{
		"answer": "edited body", "profile_id": authorProfile,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	edited, _ := body["answer"].(map[string]any)
	assert.Equal(t, true, edited["accepted_or_not"])
	assert.Equal(t, "edited body", edited["answer"])
}

func TestUpsertAnswer_LegacyFallthrough(t *testing.T) {
	app, _ := setupTestApp(t)
	token, _ := registerAndLogin(t, app, "legacy")
	profileID := createProfile(t, app, token)

	resp, body := doJSON(t, app, http.MethodPost, "/api/questions", token, map[string]any{
		"title": "Q", "question": "body", "profile_id": profileID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created, _ := body["question"].(map[string]any)
	questionID := uint((created["id"]).(float64))

	// A stale answer_id falls through to create instead of erroring, unlike
	// the question endpoint.
	resp, body = doJSON(t, app, http.MethodPost, "/answer/", "", map[string]any{
		"answer_id": 9999, "answer": "created via fallthrough",
		"question_id": questionID, "profile_id": profileID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	answer, _ := body["answer"].(map[string]any)
	answerID := uint((answer["id"]).(float64))

	// A resolvable answer_id routes to update.
	resp, body = doJSON(t, app, http.MethodPost, "/answer/", "", map[string]any{
		"answer_id": answerID, "answer": "now edited", "profile_id": profileID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated, _ := body["answer"].(map[string]any)
	assert.Equal(t, "now edited", updated["answer"])

	// Original clients send the parent reference under "parent", not
	// "parent_id".
	resp, body = doJSON(t, app, http.MethodPost, "/answer/", "", map[string]any{
		"answer": "legacy reply", "question_id": questionID,
		"profile_id": profileID, "parent": answerID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	reply, _ := body["answer"].(map[string]any)
	assert.EqualValues(t, answerID, reply["parent_id"])
}

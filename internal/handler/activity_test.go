package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/service"
	"github.com/mergington/activities/internal/store"
)

// newTestMux wires a freshly seeded store behind the same routes main registers.
func newTestMux() *http.ServeMux {
	svc := service.NewActivityService(service.ActivityServiceConfig{
		ActivityStore: store.NewMemoryStore(store.Seed()),
	})
	h := NewActivityHandler(svc)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", Root)
	mux.HandleFunc("GET /health", Health)
	mux.HandleFunc("GET /activities", h.List)
	mux.HandleFunc("POST /activities/{name}/signup", h.Signup)
	mux.HandleFunc("DELETE /activities/{name}/unregister", h.Unregister)
	return mux
}

func doRequest(t *testing.T, mux *http.ServeMux, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func getActivities(t *testing.T, mux *http.ServeMux) map[string]*model.Activity {
	t.Helper()
	rr := doRequest(t, mux, http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, rr.Code)

	var activities map[string]*model.Activity
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &activities))
	return activities
}

func decodeProblem(t *testing.T, rr *httptest.ResponseRecorder) model.ProblemDetails {
	t.Helper()
	var pd model.ProblemDetails
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &pd))
	return pd
}

func TestRoot_RedirectsToStaticIndex(t *testing.T) {
	mux := newTestMux()

	rr := doRequest(t, mux, http.MethodGet, "/")
	assert.Equal(t, http.StatusTemporaryRedirect, rr.Code)
	assert.Equal(t, "/static/index.html", rr.Header().Get("Location"))
}

func TestHealth(t *testing.T) {
	mux := newTestMux()

	rr := doRequest(t, mux, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestListActivities_ReturnsSeedSet(t *testing.T) {
	mux := newTestMux()

	activities := getActivities(t, mux)
	assert.Len(t, activities, 9)

	chess, ok := activities["Chess Club"]
	require.True(t, ok)
	assert.Equal(t, "Learn strategies and compete in chess tournaments", chess.Description)
	assert.Equal(t, "Fridays, 3:30 PM - 5:00 PM", chess.Schedule)
	assert.Equal(t, 12, chess.MaxParticipants)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)
}

func TestListActivities_EmptyParticipantsSerializeAsArray(t *testing.T) {
	mux := newTestMux()

	rr := doRequest(t, mux, http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, rr.Code)

	var raw map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	assert.JSONEq(t, `[]`, string(raw["Swimming Club"]["participants"]))
}

func TestSignup_NewParticipant(t *testing.T) {
	mux := newTestMux()

	rr := doRequest(t, mux, http.MethodPost, "/activities/Swimming%20Club/signup?email=newstudent@mergington.edu")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp model.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Signed up newstudent@mergington.edu for Swimming Club", resp.Message)

	activities := getActivities(t, mux)
	assert.Equal(t, []string{"newstudent@mergington.edu"}, activities["Swimming Club"].Participants)
}

func TestSignup_Duplicate(t *testing.T) {
	mux := newTestMux()

	rr := doRequest(t, mux, http.MethodPost, "/activities/Swimming%20Club/signup?email=test@mergington.edu")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, mux, http.MethodPost, "/activities/Swimming%20Club/signup?email=test@mergington.edu")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	pd := decodeProblem(t, rr)
	assert.Contains(t, pd.Detail, "already signed up")

	activities := getActivities(t, mux)
	assert.Len(t, activities["Swimming Club"].Participants, 1, "count unchanged after rejected duplicate")
}

func TestSignup_UnknownActivity(t *testing.T) {
	mux := newTestMux()

	rr := doRequest(t, mux, http.MethodPost, "/activities/Nonexistent%20Club/signup?email=test@mergington.edu")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	pd := decodeProblem(t, rr)
	assert.Contains(t, pd.Detail, "Activity not found")

	activities := getActivities(t, mux)
	assert.Len(t, activities, 9, "store unchanged")
}

func TestSignup_MissingEmail(t *testing.T) {
	mux := newTestMux()

	rr := doRequest(t, mux, http.MethodPost, "/activities/Chess%20Club/signup")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSignup_ActivityNameWithSpace(t *testing.T) {
	mux := newTestMux()

	rr := doRequest(t, mux, http.MethodPost, "/activities/Chess%20Club/signup?email=newchess@mergington.edu")
	require.Equal(t, http.StatusOK, rr.Code)

	activities := getActivities(t, mux)
	assert.Contains(t, activities["Chess Club"].Participants, "newchess@mergington.edu")
}

func TestUnregister_ExistingParticipant(t *testing.T) {
	mux := newTestMux()

	rr := doRequest(t, mux, http.MethodDelete, "/activities/Chess%20Club/unregister?email=michael@mergington.edu")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp model.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Unregistered michael@mergington.edu from Chess Club", resp.Message)

	activities := getActivities(t, mux)
	assert.Equal(t, []string{"daniel@mergington.edu"}, activities["Chess Club"].Participants)
}

func TestUnregister_NotSignedUp(t *testing.T) {
	mux := newTestMux()

	rr := doRequest(t, mux, http.MethodDelete, "/activities/Chess%20Club/unregister?email=noone@mergington.edu")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	pd := decodeProblem(t, rr)
	assert.Contains(t, pd.Detail, "not signed up")

	activities := getActivities(t, mux)
	assert.Len(t, activities["Chess Club"].Participants, 2, "store unchanged")
}

func TestUnregister_UnknownActivity(t *testing.T) {
	mux := newTestMux()

	rr := doRequest(t, mux, http.MethodDelete, "/activities/Nonexistent%20Club/unregister?email=test@mergington.edu")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	pd := decodeProblem(t, rr)
	assert.Contains(t, pd.Detail, "Activity not found")
}

func TestUnregisterThenSignup_RoundTrip(t *testing.T) {
	mux := newTestMux()

	before := getActivities(t, mux)["Chess Club"].Participants

	rr := doRequest(t, mux, http.MethodDelete, "/activities/Chess%20Club/unregister?email=michael@mergington.edu")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, mux, http.MethodPost, "/activities/Chess%20Club/signup?email=michael@mergington.edu")
	require.Equal(t, http.StatusOK, rr.Code)

	after := getActivities(t, mux)["Chess Club"].Participants
	assert.Len(t, after, len(before))

	count := 0
	for _, p := range after {
		if p == "michael@mergington.edu" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestFullSignupAndUnregisterFlow(t *testing.T) {
	mux := newTestMux()
	email := "integration@mergington.edu"

	initial := len(getActivities(t, mux)["Drama Club"].Participants)

	rr := doRequest(t, mux, http.MethodPost, "/activities/Drama%20Club/signup?email="+email)
	require.Equal(t, http.StatusOK, rr.Code)

	afterSignup := getActivities(t, mux)["Drama Club"].Participants
	assert.Len(t, afterSignup, initial+1)
	assert.Contains(t, afterSignup, email)

	rr = doRequest(t, mux, http.MethodDelete, "/activities/Drama%20Club/unregister?email="+email)
	require.Equal(t, http.StatusOK, rr.Code)

	afterUnregister := getActivities(t, mux)["Drama Club"].Participants
	assert.Len(t, afterUnregister, initial)
	assert.NotContains(t, afterUnregister, email)
}

func TestMultipleParticipantsSignup(t *testing.T) {
	mux := newTestMux()
	emails := []string{
		"student1@mergington.edu",
		"student2@mergington.edu",
		"student3@mergington.edu",
	}

	for _, email := range emails {
		rr := doRequest(t, mux, http.MethodPost, "/activities/Swimming%20Club/signup?email="+email)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	activities := getActivities(t, mux)
	assert.Equal(t, emails, activities["Swimming Club"].Participants)
}

package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/annie-elequin/pawgress/pkg/model"
)

func TestHandleCreateActivity(t *testing.T) {
	body := `{"type":"walk","notes":"around the block","petId":"p1","scheduledFor":"2026-03-01T09:30:00Z"}`

	t.Run("schedules for the caller's pet", func(t *testing.T) {
		pets := &MockPetsStore{}
		pets.On("FetchPet", "p1").Return(&model.Pet{ID: "p1", UserID: "alice"}, nil)
		activities := &MockActivitiesStore{}
		activities.On("CreateActivity", mock.MatchedBy(func(a *model.Activity) bool {
			return a.PetID == "p1" && a.Type == "walk" && !a.Completed &&
				a.ScheduledFor.Equal(time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC))
		})).Return(nil)

		w := httptest.NewRecorder()
		handleCreateActivity(activities, pets, nil)(w, requestAs("POST", "/api/activities", body, "alice"))

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var result model.Activity
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.NotEmpty(t, result.ID)
		assert.Equal(t, "around the block", result.Notes)
		activities.AssertExpectations(t)
	})

	t.Run("someone else's pet", func(t *testing.T) {
		pets := &MockPetsStore{}
		pets.On("FetchPet", "p1").Return(&model.Pet{ID: "p1", UserID: "bob"}, nil)
		activities := &MockActivitiesStore{}

		w := httptest.NewRecorder()
		handleCreateActivity(activities, pets, nil)(w, requestAs("POST", "/api/activities", body, "alice"))

		assert.Equal(t, http.StatusForbidden, w.Code)
		activities.AssertNotCalled(t, "CreateActivity", mock.Anything)
	})

	t.Run("missing pet", func(t *testing.T) {
		pets := &MockPetsStore{}
		pets.On("FetchPet", "p1").Return(nil, model.ErrNotFound)
		activities := &MockActivitiesStore{}

		w := httptest.NewRecorder()
		handleCreateActivity(activities, pets, nil)(w, requestAs("POST", "/api/activities", body, "alice"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Pet not found"}`, w.Body.String())
	})

	invalid := []struct {
		name    string
		body    string
		message string
	}{
		{"missing type", `{"petId":"p1","scheduledFor":"2026-03-01T09:30:00Z"}`, "Type is required"},
		{"missing pet", `{"type":"walk","scheduledFor":"2026-03-01T09:30:00Z"}`, "petId is required"},
		{"missing schedule", `{"type":"walk","petId":"p1"}`, "scheduledFor is required"},
		{"bad schedule", `{"type":"walk","petId":"p1","scheduledFor":"tomorrow"}`, "scheduledFor must be an RFC 3339 timestamp"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handleCreateActivity(&MockActivitiesStore{}, &MockPetsStore{}, nil)(w, requestAs("POST", "/api/activities", tt.body, "alice"))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":`+jsonString(tt.message)+`}`, w.Body.String())
		})
	}
}

func TestHandleGetActivity(t *testing.T) {
	tests := []struct {
		name       string
		caller     string
		activity   *model.Activity
		fetchErr   error
		wantStatus int
	}{
		{"owner of the pet", "alice", &model.Activity{ID: "a1", PetID: "p1", Pet: &model.Pet{ID: "p1", UserID: "alice"}}, nil, http.StatusOK},
		{"stranger", "bob", &model.Activity{ID: "a1", PetID: "p1", Pet: &model.Pet{ID: "p1", UserID: "alice"}}, nil, http.StatusForbidden},
		{"orphaned activity", "alice", &model.Activity{ID: "a1", PetID: "p1"}, nil, http.StatusForbidden},
		{"absent", "alice", nil, model.ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activities := &MockActivitiesStore{}
			activities.On("FetchActivity", "a1").Return(tt.activity, tt.fetchErr)

			req := withMuxVars(requestAs("GET", "/api/activities/a1", "", tt.caller), map[string]string{"id": "a1"})
			w := httptest.NewRecorder()
			handleGetActivity(activities, nil)(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusNotFound {
				assert.JSONEq(t, `{"error":"Activity not found"}`, w.Body.String())
			}
		})
	}
}

func TestHandleCompleteActivity(t *testing.T) {
	t.Run("owner marks it completed", func(t *testing.T) {
		activities := &MockActivitiesStore{}
		activities.On("FetchActivity", "a1").Return(&model.Activity{ID: "a1", PetID: "p1", Pet: &model.Pet{ID: "p1", UserID: "alice"}}, nil)
		activities.On("UpdateActivity", mock.MatchedBy(func(a *model.Activity) bool {
			return a.ID == "a1" && a.Completed
		})).Return(nil)

		req := withMuxVars(requestAs("PATCH", "/api/activities/a1/complete", "", "alice"), map[string]string{"id": "a1"})
		w := httptest.NewRecorder()
		handleCompleteActivity(activities, nil)(w, req)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var result model.Activity
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.True(t, result.Completed)
		assert.Nil(t, result.Pet)
		activities.AssertExpectations(t)
	})

	t.Run("stranger cannot complete", func(t *testing.T) {
		activities := &MockActivitiesStore{}
		activities.On("FetchActivity", "a1").Return(&model.Activity{ID: "a1", PetID: "p1", Pet: &model.Pet{ID: "p1", UserID: "alice"}}, nil)

		req := withMuxVars(requestAs("PATCH", "/api/activities/a1/complete", "", "bob"), map[string]string{"id": "a1"})
		w := httptest.NewRecorder()
		handleCompleteActivity(activities, nil)(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		activities.AssertNotCalled(t, "UpdateActivity", mock.Anything)
	})
}

package endpoints

import (
	"net/http"

	"github.com/annie-elequin/pawgress/pkg/apierr"
	"github.com/annie-elequin/pawgress/pkg/audit"
	"github.com/annie-elequin/pawgress/pkg/model"
	"github.com/annie-elequin/pawgress/pkg/server"
	"github.com/annie-elequin/pawgress/pkg/server/store"
)

func RegisterActivitiesEndpoints(s *server.Server) {
	activitiesRouter := s.Router.PathPrefix("/api/activities").Subrouter()
	activitiesRouter.Use(s.BearerAuth.Middleware)

	activitiesRouter.HandleFunc("", handleCreateActivity(s.Stores.Activities, s.Stores.Pets, s.Audit)).Methods("POST")
	activitiesRouter.HandleFunc("/{id}", handleGetActivity(s.Stores.Activities, s.Audit)).Methods("GET")
	activitiesRouter.HandleFunc("/{id}/complete", handleCompleteActivity(s.Stores.Activities, s.Audit)).Methods("PATCH")
}

// handleCreateActivity schedules an activity for one of the caller's pets.
func handleCreateActivity(activities store.ActivitiesStore, pets store.PetsStore, auditLogger *audit.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req activityRequest
		if err := decodeRequest(w, r, &req); err != nil {
			apierr.Write(w, err)
			return
		}

		pet, err := loadOwned(r, auditLogger, target{kind: "Pet", id: req.PetID, operation: "schedule activity for"}, pets.FetchPet)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		activity := &model.Activity{
			ID:           model.NewID(),
			Type:         req.Type,
			Notes:        req.Notes,
			PetID:        pet.ID,
			ScheduledFor: req.scheduledFor,
		}
		if err := activities.CreateActivity(r.Context(), activity); err != nil {
			apierr.Write(w, apierr.Internal(err))
			return
		}
		respondWithJSON(w, http.StatusCreated, activity)
	}
}

// Activities are owned through their pet.
func handleGetActivity(activities store.ActivitiesStore, auditLogger *audit.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activityID, err := pathID(r)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		activity, err := loadOwned(r, auditLogger, target{kind: "Activity", id: activityID, operation: "read"}, activities.FetchActivity)
		if err != nil {
			apierr.Write(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, activity)
	}
}

func handleCompleteActivity(activities store.ActivitiesStore, auditLogger *audit.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activityID, err := pathID(r)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		activity, err := loadOwned(r, auditLogger, target{kind: "Activity", id: activityID, operation: "complete"}, activities.FetchActivity)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		activity.Completed = true
		if err := activities.UpdateActivity(r.Context(), activity); err != nil {
			apierr.Write(w, storeErr("Activity", err))
			return
		}

		activity.Pet = nil
		respondWithJSON(w, http.StatusOK, activity)
	}
}

package endpoints

import (
	"net/http"

	"github.com/annie-elequin/pawgress/pkg/apierr"
	"github.com/annie-elequin/pawgress/pkg/audit"
	"github.com/annie-elequin/pawgress/pkg/markdown"
	"github.com/annie-elequin/pawgress/pkg/model"
	"github.com/annie-elequin/pawgress/pkg/server"
	"github.com/annie-elequin/pawgress/pkg/server/store"
)

type behaviorHTMLResponse struct {
	*model.Behavior
	DescriptionHTML string `json:"descriptionHtml"`
}

func RegisterBehaviorsEndpoints(s *server.Server) {
	behaviorsRouter := s.Router.PathPrefix("/api/behaviors").Subrouter()
	behaviorsRouter.Use(s.BearerAuth.Middleware)

	behaviorsRouter.HandleFunc("", handleListBehaviors(s.Stores.Behaviors)).Methods("GET")
	behaviorsRouter.HandleFunc("", handleCreateBehavior(s.Stores.Behaviors)).Methods("POST")
	behaviorsRouter.HandleFunc("/{id}", handleGetBehavior(s.Stores.Behaviors, s.Markdown, s.Audit)).Methods("GET")
	behaviorsRouter.HandleFunc("/{id}", handleUpdateBehavior(s.Stores.Behaviors, s.Audit)).Methods("PUT")
	behaviorsRouter.HandleFunc("/{id}", handleDeleteBehavior(s.Stores.Behaviors, s.Audit)).Methods("DELETE")
}

func handleListBehaviors(behaviors store.BehaviorsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := caller(r)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		list, err := behaviors.ListBehaviors(r.Context(), id.UserID)
		if err != nil {
			apierr.Write(w, apierr.Internal(err))
			return
		}
		respondWithJSON(w, http.StatusOK, list)
	}
}

func handleCreateBehavior(behaviors store.BehaviorsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := caller(r)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		var req behaviorRequest
		if err := decodeRequest(w, r, &req); err != nil {
			apierr.Write(w, err)
			return
		}

		behavior := &model.Behavior{ID: model.NewID(), UserID: id.UserID}
		req.apply(behavior)

		if err := behaviors.CreateBehavior(r.Context(), behavior); err != nil {
			apierr.Write(w, apierr.Internal(err))
			return
		}
		respondWithJSON(w, http.StatusCreated, behavior)
	}
}

// handleGetBehavior returns a behavior. With ?format=html the Markdown
// description is also rendered.
func handleGetBehavior(behaviors store.BehaviorsStore, renderer *markdown.Renderer, auditLogger *audit.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		behaviorID, err := pathID(r)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		behavior, err := loadOwned(r, auditLogger, target{kind: "Behavior", id: behaviorID, operation: "read"}, behaviors.FetchBehavior)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		if !wantsHTML(r) {
			respondWithJSON(w, http.StatusOK, behavior)
			return
		}

		html, err := renderer.Render(behavior.Description)
		if err != nil {
			apierr.Write(w, apierr.Internal(err))
			return
		}
		respondWithJSON(w, http.StatusOK, behaviorHTMLResponse{Behavior: behavior, DescriptionHTML: html})
	}
}

func handleUpdateBehavior(behaviors store.BehaviorsStore, auditLogger *audit.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		behaviorID, err := pathID(r)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		behavior, err := loadOwned(r, auditLogger, target{kind: "Behavior", id: behaviorID, operation: "update"}, behaviors.FetchBehavior)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		var req behaviorRequest
		if err := decodeRequest(w, r, &req); err != nil {
			apierr.Write(w, err)
			return
		}
		req.apply(behavior)

		if err := behaviors.UpdateBehavior(r.Context(), behavior); err != nil {
			apierr.Write(w, storeErr("Behavior", err))
			return
		}
		respondWithJSON(w, http.StatusOK, behavior)
	}
}

func handleDeleteBehavior(behaviors store.BehaviorsStore, auditLogger *audit.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		behaviorID, err := pathID(r)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		if _, err := loadOwned(r, auditLogger, target{kind: "Behavior", id: behaviorID, operation: "delete"}, behaviors.FetchBehavior); err != nil {
			apierr.Write(w, err)
			return
		}

		if err := behaviors.DeleteBehavior(r.Context(), behaviorID); err != nil {
			apierr.Write(w, storeErr("Behavior", err))
			return
		}
		respondWithMessage(w, "Behavior deleted successfully")
	}
}

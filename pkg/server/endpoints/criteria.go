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

type criterionHTMLResponse struct {
	*model.Criterion
	DescriptionHTML string `json:"descriptionHtml"`
	NotesHTML       string `json:"notesHtml"`
}

func RegisterCriteriaEndpoints(s *server.Server) {
	criteriaRouter := s.Router.PathPrefix("/api/criteria").Subrouter()
	criteriaRouter.Use(s.BearerAuth.Middleware)

	criteriaRouter.HandleFunc("", handleListCriteria(s.Stores.Criteria)).Methods("GET")
	criteriaRouter.HandleFunc("", handleCreateCriterion(s.Stores.Criteria)).Methods("POST")
	criteriaRouter.HandleFunc("/{id}", handleGetCriterion(s.Stores.Criteria, s.Markdown, s.Audit)).Methods("GET")
	criteriaRouter.HandleFunc("/{id}", handleUpdateCriterion(s.Stores.Criteria, s.Audit)).Methods("PUT")
	criteriaRouter.HandleFunc("/{id}", handleDeleteCriterion(s.Stores.Criteria, s.Audit)).Methods("DELETE")
}

func handleListCriteria(criteria store.CriteriaStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := caller(r)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		list, err := criteria.ListCriteria(r.Context(), id.UserID)
		if err != nil {
			apierr.Write(w, apierr.Internal(err))
			return
		}
		respondWithJSON(w, http.StatusOK, list)
	}
}

func handleCreateCriterion(criteria store.CriteriaStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := caller(r)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		var req criterionRequest
		if err := decodeRequest(w, r, &req); err != nil {
			apierr.Write(w, err)
			return
		}

		criterion := &model.Criterion{ID: model.NewID(), UserID: id.UserID}
		req.apply(criterion)

		if err := criteria.CreateCriterion(r.Context(), criterion); err != nil {
			apierr.Write(w, apierr.Internal(err))
			return
		}
		respondWithJSON(w, http.StatusCreated, criterion)
	}
}

func handleGetCriterion(criteria store.CriteriaStore, renderer *markdown.Renderer, auditLogger *audit.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criterionID, err := pathID(r)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		criterion, err := loadOwned(r, auditLogger, target{kind: "Criterion", id: criterionID, operation: "read"}, criteria.FetchCriterion)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		if !wantsHTML(r) {
			respondWithJSON(w, http.StatusOK, criterion)
			return
		}

		description, err := renderer.Render(criterion.Description)
		if err != nil {
			apierr.Write(w, apierr.Internal(err))
			return
		}
		notes, err := renderer.Render(criterion.Notes)
		if err != nil {
			apierr.Write(w, apierr.Internal(err))
			return
		}
		respondWithJSON(w, http.StatusOK, criterionHTMLResponse{
			Criterion:       criterion,
			DescriptionHTML: description,
			NotesHTML:       notes,
		})
	}
}

func handleUpdateCriterion(criteria store.CriteriaStore, auditLogger *audit.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criterionID, err := pathID(r)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		criterion, err := loadOwned(r, auditLogger, target{kind: "Criterion", id: criterionID, operation: "update"}, criteria.FetchCriterion)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		var req criterionRequest
		if err := decodeRequest(w, r, &req); err != nil {
			apierr.Write(w, err)
			return
		}
		req.apply(criterion)

		if err := criteria.UpdateCriterion(r.Context(), criterion); err != nil {
			apierr.Write(w, storeErr("Criterion", err))
			return
		}
		respondWithJSON(w, http.StatusOK, criterion)
	}
}

func handleDeleteCriterion(criteria store.CriteriaStore, auditLogger *audit.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criterionID, err := pathID(r)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		if _, err := loadOwned(r, auditLogger, target{kind: "Criterion", id: criterionID, operation: "delete"}, criteria.FetchCriterion); err != nil {
			apierr.Write(w, err)
			return
		}

		if err := criteria.DeleteCriterion(r.Context(), criterionID); err != nil {
			apierr.Write(w, storeErr("Criterion", err))
			return
		}
		respondWithMessage(w, "Criterion deleted successfully")
	}
}

package endpoints

import (
	"net/http"

	"github.com/annie-elequin/pawgress/pkg/apierr"
	"github.com/annie-elequin/pawgress/pkg/audit"
	"github.com/annie-elequin/pawgress/pkg/model"
	"github.com/annie-elequin/pawgress/pkg/server"
	"github.com/annie-elequin/pawgress/pkg/server/store"
)

// petResponse always carries the activities list, empty or not.
type petResponse struct {
	*model.Pet
	Activities []model.Activity `json:"activities"`
}

func newPetResponse(pet *model.Pet) petResponse {
	activities := pet.Activities
	if activities == nil {
		activities = []model.Activity{}
	}
	return petResponse{Pet: pet, Activities: activities}
}

func RegisterPetsEndpoints(s *server.Server) {
	petsRouter := s.Router.PathPrefix("/api/pets").Subrouter()
	petsRouter.Use(s.BearerAuth.Middleware)

	petsRouter.HandleFunc("", handleListPets(s.Stores.Pets)).Methods("GET")
	petsRouter.HandleFunc("", handleCreatePet(s.Stores.Pets)).Methods("POST")
	petsRouter.HandleFunc("/{id}", handleGetPet(s.Stores.Pets, s.Audit)).Methods("GET")
}

func handleListPets(pets store.PetsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := caller(r)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		list, err := pets.ListPets(r.Context(), id.UserID, store.PetFilter{})
		if err != nil {
			apierr.Write(w, apierr.Internal(err))
			return
		}
		respondWithJSON(w, http.StatusOK, list)
	}
}

func handleCreatePet(pets store.PetsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := caller(r)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		var req petRequest
		if err := decodeRequest(w, r, &req); err != nil {
			apierr.Write(w, err)
			return
		}

		pet := &model.Pet{ID: model.NewID(), Type: req.petType, UserID: id.UserID}
		req.apply(pet)

		if err := pets.CreatePet(r.Context(), pet); err != nil {
			apierr.Write(w, apierr.Internal(err))
			return
		}
		respondWithJSON(w, http.StatusCreated, pet)
	}
}

func handleGetPet(pets store.PetsStore, auditLogger *audit.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := pathID(r)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		pet, err := loadOwned(r, auditLogger, target{kind: "Pet", id: petID, operation: "read"}, pets.FetchPet)
		if err != nil {
			apierr.Write(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, newPetResponse(pet))
	}
}

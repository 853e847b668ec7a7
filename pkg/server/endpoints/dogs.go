package endpoints

import (
	"context"
	"net/http"

	"github.com/annie-elequin/pawgress/pkg/apierr"
	"github.com/annie-elequin/pawgress/pkg/audit"
	"github.com/annie-elequin/pawgress/pkg/model"
	"github.com/annie-elequin/pawgress/pkg/server"
	"github.com/annie-elequin/pawgress/pkg/server/store"
)

// RegisterDogsEndpoints registers the dogs API, a view of the pets whose
// type is DOG.
func RegisterDogsEndpoints(s *server.Server) {
	dogsRouter := s.Router.PathPrefix("/api/dogs").Subrouter()
	dogsRouter.Use(s.BearerAuth.Middleware)

	dogsRouter.HandleFunc("", handleListDogs(s.Stores.Pets)).Methods("GET")
	dogsRouter.HandleFunc("", handleCreateDog(s.Stores.Pets)).Methods("POST")
	dogsRouter.HandleFunc("/{id}", handleGetDog(s.Stores.Pets, s.Audit)).Methods("GET")
	dogsRouter.HandleFunc("/{id}", handleUpdateDog(s.Stores.Pets, s.Audit)).Methods("PUT")
	dogsRouter.HandleFunc("/{id}", handleDeleteDog(s.Stores.Pets, s.Audit)).Methods("DELETE")
}

// dogFetcher looks pets up through the dogs API: a pet of another type is
// reported as missing.
func dogFetcher(pets store.PetsStore) func(ctx context.Context, id string) (*model.Pet, error) {
	return func(ctx context.Context, id string) (*model.Pet, error) {
		pet, err := pets.FetchPet(ctx, id)
		if err != nil {
			return nil, err
		}
		if !pet.IsDog() {
			return nil, model.ErrNotFound
		}
		return pet, nil
	}
}

func handleListDogs(pets store.PetsStore) http.HandlerFunc {
	dog := model.PetTypeDog
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := caller(r)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		dogs, err := pets.ListPets(r.Context(), id.UserID, store.PetFilter{Type: &dog})
		if err != nil {
			apierr.Write(w, apierr.Internal(err))
			return
		}
		respondWithJSON(w, http.StatusOK, dogs)
	}
}

func handleCreateDog(pets store.PetsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := caller(r)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		var req dogRequest
		if err := decodeRequest(w, r, &req); err != nil {
			apierr.Write(w, err)
			return
		}

		dog := &model.Pet{ID: model.NewID(), Type: model.PetTypeDog, UserID: id.UserID}
		req.apply(dog)

		if err := pets.CreatePet(r.Context(), dog); err != nil {
			apierr.Write(w, apierr.Internal(err))
			return
		}
		respondWithJSON(w, http.StatusCreated, dog)
	}
}

func handleGetDog(pets store.PetsStore, auditLogger *audit.Logger) http.HandlerFunc {
	fetch := dogFetcher(pets)
	return func(w http.ResponseWriter, r *http.Request) {
		dogID, err := pathID(r)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		dog, err := loadOwned(r, auditLogger, target{kind: "Dog", id: dogID, operation: "read"}, fetch)
		if err != nil {
			apierr.Write(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, newPetResponse(dog))
	}
}

func handleUpdateDog(pets store.PetsStore, auditLogger *audit.Logger) http.HandlerFunc {
	fetch := dogFetcher(pets)
	return func(w http.ResponseWriter, r *http.Request) {
		dogID, err := pathID(r)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		// Ownership first so a stranger learns nothing from validation errors.
		dog, err := loadOwned(r, auditLogger, target{kind: "Dog", id: dogID, operation: "update"}, fetch)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		var req dogRequest
		if err := decodeRequest(w, r, &req); err != nil {
			apierr.Write(w, err)
			return
		}
		req.apply(dog)

		if err := pets.UpdatePet(r.Context(), dog); err != nil {
			apierr.Write(w, storeErr("Dog", err))
			return
		}

		dog.Activities = nil
		respondWithJSON(w, http.StatusOK, dog)
	}
}

func handleDeleteDog(pets store.PetsStore, auditLogger *audit.Logger) http.HandlerFunc {
	fetch := dogFetcher(pets)
	return func(w http.ResponseWriter, r *http.Request) {
		dogID, err := pathID(r)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		if _, err := loadOwned(r, auditLogger, target{kind: "Dog", id: dogID, operation: "delete"}, fetch); err != nil {
			apierr.Write(w, err)
			return
		}

		if err := pets.DeletePet(r.Context(), dogID); err != nil {
			apierr.Write(w, storeErr("Dog", err))
			return
		}
		respondWithMessage(w, "Dog deleted successfully")
	}
}

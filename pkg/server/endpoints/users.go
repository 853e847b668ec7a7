package endpoints

import (
	"errors"
	"net/http"

	"github.com/annie-elequin/pawgress/pkg/apierr"
	"github.com/annie-elequin/pawgress/pkg/audit"
	"github.com/annie-elequin/pawgress/pkg/model"
	"github.com/annie-elequin/pawgress/pkg/ownership"
	"github.com/annie-elequin/pawgress/pkg/server"
	"github.com/annie-elequin/pawgress/pkg/server/store"
)

// userResponse always carries the pets list, empty or not.
type userResponse struct {
	*model.User
	Pets []model.Pet `json:"pets"`
}

func RegisterUsersEndpoints(s *server.Server) {
	usersRouter := s.Router.PathPrefix("/api/users").Subrouter()
	usersRouter.Use(s.BearerAuth.Middleware)

	usersRouter.HandleFunc("/{id}", handleGetUser(s.Stores.Users, s.Audit)).Methods("GET")
}

// handleGetUser returns the caller's own profile with their pets. Asking for
// anyone else is refused before the lookup, so the response never reveals
// whether another user id exists.
func handleGetUser(users store.UsersStore, auditLogger *audit.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := caller(r)
		if err != nil {
			apierr.Write(w, err)
			return
		}
		userID, err := pathID(r)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		if !id.Owns(userID) {
			auditLogger.Log(audit.AccessEvent{
				UserID:     id.UserID,
				ClientIP:   clientIP(r),
				Resource:   "User",
				ResourceID: userID,
				Operation:  "read",
				Decision:   ownership.Forbidden.String(),
			})
			apierr.Write(w, apierr.Forbidden())
			return
		}

		user, err := users.FetchUser(r.Context(), userID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				apierr.Write(w, apierr.NotFound("User"))
				return
			}
			apierr.Write(w, apierr.Internal(err))
			return
		}
		pets := user.Pets
		if pets == nil {
			pets = []model.Pet{}
		}

		respondWithJSON(w, http.StatusOK, userResponse{User: user, Pets: pets})
	}
}

package endpoints

import (
	"net/http"

	"github.com/annie-elequin/pawgress/pkg/apierr"
	"github.com/annie-elequin/pawgress/pkg/server"
	"github.com/annie-elequin/pawgress/pkg/server/store"
)

// StatusResponse represents the response from /api/status
type StatusResponse struct {
	Status string `json:"status"`
}

// RegisterStatusEndpoints registers the public welcome and health endpoints
func RegisterStatusEndpoints(s *server.Server) {
	s.Router.HandleFunc("/", handleWelcome()).Methods("GET")
	s.Router.HandleFunc("/api/status", handleStatus(s.Stores.Health)).Methods("GET")
}

func handleWelcome() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithMessage(w, "Welcome to Pawgress API!")
	}
}

func handleStatus(healthStore store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := healthStore.CheckConnectivity(r.Context()); err != nil {
			apierr.Write(w, apierr.Unavailable(err))
			return
		}
		respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
	}
}

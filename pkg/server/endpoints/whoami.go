package endpoints

import (
	"net/http"

	"github.com/annie-elequin/pawgress/pkg/apierr"
	"github.com/annie-elequin/pawgress/pkg/audit"
	"github.com/annie-elequin/pawgress/pkg/server"
)

// WhoamiResponse represents the response from the /api/auth/me endpoint
type WhoamiResponse struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	TokenIAT int64  `json:"token_iat,omitempty"`
	TokenExp int64  `json:"token_exp,omitempty"`
	ClientIP string `json:"client_ip,omitempty"`
}

// RegisterWhoamiEndpoint registers the /api/auth/me endpoint
func RegisterWhoamiEndpoint(s *server.Server) {
	s.Router.Handle("/api/auth/me", s.BearerAuth.Middleware(handleWhoami(s.Audit))).Methods("GET")
}

func handleWhoami(auditLogger *audit.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := caller(r)
		if err != nil {
			apierr.Write(w, err)
			return
		}

		response := WhoamiResponse{
			UserID:   id.UserID,
			Email:    id.Email,
			ClientIP: clientIP(r),
		}
		if !id.IssuedAt.IsZero() {
			response.TokenIAT = id.IssuedAt.Unix()
		}
		if !id.ExpiresAt.IsZero() {
			response.TokenExp = id.ExpiresAt.Unix()
		}

		auditLogger.Log(audit.WhoamiEvent{UserID: id.UserID, ClientIP: response.ClientIP})
		respondWithJSON(w, http.StatusOK, response)
	}
}

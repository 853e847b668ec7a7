package endpoints

import (
	"errors"
	"net/http"

	"github.com/annie-elequin/pawgress/pkg/apierr"
	"github.com/annie-elequin/pawgress/pkg/audit"
	"github.com/annie-elequin/pawgress/pkg/authenticator"
	"github.com/annie-elequin/pawgress/pkg/authenticator/password"
	"github.com/annie-elequin/pawgress/pkg/model"
	"github.com/annie-elequin/pawgress/pkg/server"
	"github.com/annie-elequin/pawgress/pkg/server/store"
	"github.com/annie-elequin/pawgress/pkg/token"
)

// UserSummary is the public view of a user returned with a session token.
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	User  UserSummary `json:"user"`
	Token string      `json:"token"`
}

// RegisterAuthEndpoints registers signup and login. Both are public.
func RegisterAuthEndpoints(s *server.Server) {
	s.Router.HandleFunc("/api/auth/signup", handleSignup(s.Stores.Users, s.Tokens, s.Config.BcryptCost, s.Audit)).Methods("POST")
	s.Router.HandleFunc("/api/auth/login", handleLogin(s.Authenticators, s.Tokens, s.Audit)).Methods("POST")
}

func handleSignup(users store.UsersStore, tokens *token.Service, cost int, auditLogger *audit.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		if err := decodeRequest(w, r, &req); err != nil {
			apierr.Write(w, err)
			return
		}

		event := audit.SignupEvent{Email: req.Email, ClientIP: clientIP(r)}
		fail := func(err error) {
			apiErr := apierr.From(err)
			event.ErrorMessage = apiErr.Message
			auditLogger.Log(event)
			apierr.Write(w, apiErr)
		}

		if _, err := users.FindByEmail(r.Context(), req.Email); err == nil {
			fail(apierr.Validation(apierr.MsgUserExists))
			return
		} else if !errors.Is(err, model.ErrNotFound) {
			fail(apierr.Internal(err))
			return
		}

		hash, err := password.Hash(req.Password, cost)
		if err != nil {
			fail(apierr.Internal(err))
			return
		}

		user := &model.User{
			ID:           model.NewID(),
			Email:        req.Email,
			PasswordHash: hash,
			Name:         req.Name,
		}
		if err := users.CreateUser(r.Context(), user); err != nil {
			// Lost a race with a concurrent signup for the same email.
			if errors.Is(err, store.ErrDuplicate) {
				fail(apierr.Validation(apierr.MsgUserExists))
				return
			}
			fail(apierr.Internal(err))
			return
		}

		signed, err := tokens.Issue(user.ID, user.Email)
		if err != nil {
			fail(apierr.Internal(err))
			return
		}

		event.UserID = user.ID
		event.Success = true
		auditLogger.Log(event)

		respondWithJSON(w, http.StatusCreated, AuthResponse{
			User:  UserSummary{ID: user.ID, Email: user.Email, Name: user.Name},
			Token: signed,
		})
	}
}

func handleLogin(authenticators *authenticator.Registry, tokens *token.Service, auditLogger *audit.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeRequest(w, r, &req); err != nil {
			apierr.Write(w, err)
			return
		}

		authn, err := authenticators.Get(password.Name)
		if err != nil {
			apierr.Write(w, apierr.Internal(err))
			return
		}

		event := audit.LoginEvent{
			Email:             req.Email,
			ClientIP:          clientIP(r),
			AuthenticatorName: authn.Name(),
		}

		result, err := authn.Authenticate(r.Context(), authenticator.AuthenticatorInput{
			Login:       req.Email,
			Credentials: []byte(req.Password),
			ClientIP:    event.ClientIP,
		})
		if err != nil {
			event.ErrorMessage = err.Error()
			auditLogger.Log(event)
			if errors.Is(err, authenticator.ErrInvalidCredentials) {
				apierr.Write(w, apierr.InvalidCredentials())
				return
			}
			apierr.Write(w, apierr.Internal(err))
			return
		}

		signed, err := tokens.Issue(result.UserID, result.Email)
		if err != nil {
			apierr.Write(w, apierr.Internal(err))
			return
		}

		event.UserID = result.UserID
		event.Success = true
		auditLogger.Log(event)

		respondWithJSON(w, http.StatusOK, AuthResponse{
			User:  UserSummary{ID: result.UserID, Email: result.Email, Name: result.Name},
			Token: signed,
		})
	}
}

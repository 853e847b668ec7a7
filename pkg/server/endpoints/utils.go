package endpoints

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/annie-elequin/pawgress/pkg/apierr"
	"github.com/annie-elequin/pawgress/pkg/identity"
	"github.com/annie-elequin/pawgress/pkg/model"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

type messageResponse struct {
	Message string `json:"message"`
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		apierr.Write(w, apierr.Internal(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

func respondWithMessage(w http.ResponseWriter, msg string) {
	respondWithJSON(w, http.StatusOK, messageResponse{Message: msg})
}

// decodeJSON reads a single JSON object into dst. Unknown fields are
// rejected so that clients cannot smuggle in fields such as userId.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return apierr.Validation("Request body is required")
		case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
			return apierr.Validation("Malformed JSON body")
		case errors.As(err, &typeErr):
			return apierr.Validationf("Invalid value for field %q", jsonField(typeErr.Field))
		case errors.As(err, &maxErr):
			return apierr.Validation("Request body too large")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			field := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return apierr.Validationf("Unknown field %s", field)
		default:
			return apierr.Validation(err.Error())
		}
	}

	if dec.More() {
		return apierr.Validation("Request body must contain a single JSON object")
	}
	return nil
}

// caller returns the identity attached by the bearer middleware.
func caller(r *http.Request) (*identity.Identity, error) {
	id, ok := identity.Get(r.Context())
	if !ok || id.UserID == "" {
		return nil, apierr.TokenRequired()
	}
	return id, nil
}

func clientIP(r *http.Request) string {
	if id, ok := identity.Get(r.Context()); ok && id.RemoteIP != nil {
		return id.RemoteIP.String()
	}
	if ip := identity.ClientIP(r); ip != nil {
		return ip.String()
	}
	return ""
}

func pathID(r *http.Request) (string, error) {
	id := strings.TrimSpace(mux.Vars(r)["id"])
	if id == "" {
		return "", apierr.Validation("id is required")
	}
	return id, nil
}

type validator interface {
	Validate() error
}

// decodeRequest decodes the body into req and validates it.
func decodeRequest(w http.ResponseWriter, r *http.Request, req validator) error {
	if err := decodeJSON(w, r, req); err != nil {
		return err
	}
	return req.Validate()
}

// storeErr maps a write failure to the client error. A row that vanished
// between the ownership check and the write is reported as not found.
func storeErr(kind string, err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return apierr.NotFound(kind)
	}
	return apierr.Internal(err)
}

func wantsHTML(r *http.Request) bool {
	return strings.EqualFold(r.URL.Query().Get("format"), "html")
}

// jsonField trims the embedded struct path that encoding/json prefixes to
// UnmarshalTypeError.Field, leaving the key the client sent.
func jsonField(field string) string {
	if i := strings.LastIndex(field, "."); i >= 0 {
		return field[i+1:]
	}
	return field
}

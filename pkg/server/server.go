package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/annie-elequin/pawgress/pkg/apierr"
	"github.com/annie-elequin/pawgress/pkg/audit"
	"github.com/annie-elequin/pawgress/pkg/authenticator"
	"github.com/annie-elequin/pawgress/pkg/authenticator/password"
	"github.com/annie-elequin/pawgress/pkg/config"
	"github.com/annie-elequin/pawgress/pkg/markdown"
	"github.com/annie-elequin/pawgress/pkg/server/middleware"
	"github.com/annie-elequin/pawgress/pkg/server/store"
	gormstore "github.com/annie-elequin/pawgress/pkg/server/store/gorm"
	"github.com/annie-elequin/pawgress/pkg/token"
)

// Stores bundles the storage collaborators of the API.
type Stores struct {
	Users      store.UsersStore
	Pets       store.PetsStore
	Activities store.ActivitiesStore
	Behaviors  store.BehaviorsStore
	Criteria   store.CriteriaStore
	Health     store.HealthStore
}

// GormStores builds every store on one GORM connection.
func GormStores(db *gorm.DB) Stores {
	return Stores{
		Users:      gormstore.NewUsersStore(db),
		Pets:       gormstore.NewPetsStore(db),
		Activities: gormstore.NewActivitiesStore(db),
		Behaviors:  gormstore.NewBehaviorsStore(db),
		Criteria:   gormstore.NewCriteriaStore(db),
		Health:     gormstore.NewHealthStore(db),
	}
}

// Deps are the collaborators a Server is built from.
type Deps struct {
	Config *config.Config
	Stores Stores
	// Audit may be nil to discard audit events.
	Audit *audit.Logger
}

type Server struct {
	Config         *config.Config
	Router         *mux.Router
	Stores         Stores
	Tokens         *token.Service
	Authenticators *authenticator.Registry
	BearerAuth     *middleware.BearerAuthenticator
	Audit          *audit.Logger
	Markdown       *markdown.Renderer
	srv            *http.Server
}

func NewServer(deps Deps, host string, port string) (*Server, error) {
	cfg := deps.Config
	if cfg == nil {
		return nil, errors.New("server: config is required")
	}

	tokens := token.New(cfg.JWTSecret)
	if tokens.UsingDefaultSecret() {
		log.Printf("WARNING: no JWT secret configured, signing tokens with the built-in default. Set PAWGRESS_JWT_SECRET.")
	}

	passwords, err := password.New(deps.Stores.Users, cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	auditLogger := deps.Audit
	if !cfg.AuditEnabled {
		auditLogger = nil
	}

	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apierr.Write(w, apierr.NotFound("Route"))
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = w.Write([]byte(`{"error":"Method not allowed"}` + "\n"))
	})

	handler := handlers.CORS(
		handlers.AllowedOrigins(cfg.CORSAllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)(router)

	srv := &http.Server{
		Handler:      handlers.LoggingHandler(os.Stdout, handler),
		Addr:         net.JoinHostPort(host, port),
		WriteTimeout: cfg.WriteTimeout,
		ReadTimeout:  cfg.ReadTimeout,
	}

	return &Server{
		Config:         cfg,
		Router:         router,
		Stores:         deps.Stores,
		Tokens:         tokens,
		Authenticators: authenticator.NewRegistry(passwords),
		BearerAuth:     middleware.NewBearerAuthenticator(tokens, auditLogger),
		Audit:          auditLogger,
		Markdown:       markdown.New(),
		srv:            srv,
	}, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.srv.Addr
}

// Start serves until Shutdown is called. A clean shutdown returns nil.
func (s *Server) Start() error {
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

package integration

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/annie-elequin/pawgress/pkg/config"
	"github.com/annie-elequin/pawgress/pkg/db"
	"github.com/annie-elequin/pawgress/pkg/server"
	"github.com/annie-elequin/pawgress/pkg/server/endpoints"
)

const (
	serverPort = "18080"
	jwtSecret  = "integration-test-secret"
)

// TestContext holds all the resources needed for integration tests
type TestContext struct {
	DB            *gorm.DB
	Container     testcontainers.Container
	ServerURL     string
	DatabaseURL   string
	JWTSecret     string
	HTTPClient    *http.Client
	ServerProcess *exec.Cmd
	InlineServer  *server.Server
}

// NewTestContext creates a new test context with a PostgreSQL testcontainer.
// Modes:
//   - Binary mode (default): Set PAWGRESS_BINARY to the path of the pawgressctl binary
//   - Inline mode: Set PAWGRESS_INLINE=1 to run the server in-process (no binary needed)
func NewTestContext(ctx context.Context) (*TestContext, error) {
	projectRoot, err := findProjectRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to find project root: %w", err)
	}
	migrationsDir := filepath.Join(projectRoot, "db", "migrations")

	inlineMode := os.Getenv("PAWGRESS_INLINE") == "1"
	binaryPath := os.Getenv("PAWGRESS_BINARY")

	if !inlineMode && binaryPath == "" {
		return nil, errors.New("either PAWGRESS_BINARY or PAWGRESS_INLINE=1 is required.\n\nBinary mode:\n  go build -o pawgressctl ./cmd/pawgressctl\n  INTEGRATION_TEST=1 PAWGRESS_BINARY=$(pwd)/pawgressctl go test -v ./test/integration/...\n\nInline mode:\n  INTEGRATION_TEST=1 PAWGRESS_INLINE=1 go test -v ./test/integration/...")
	}

	if !inlineMode {
		if _, err := os.Stat(binaryPath); err != nil {
			return nil, fmt.Errorf("PAWGRESS_BINARY path does not exist: %s", binaryPath)
		}
		log.Printf("Using binary: %s", binaryPath)
	} else {
		log.Println("Using inline server mode")
	}

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("pawgress_test"),
		tcpostgres.WithUsername("pawgress"),
		tcpostgres.WithPassword("pawgress"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	if err := runMigrations(connStr, migrationsDir); err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	database, err := db.Connect(db.Config{URL: connStr, LogLevel: "silent"})
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, err
	}

	tc := &TestContext{
		DB:          database,
		Container:   pgContainer,
		ServerURL:   "http://127.0.0.1:" + serverPort,
		DatabaseURL: connStr,
		JWTSecret:   jwtSecret,
		HTTPClient:  &http.Client{Timeout: 10 * time.Second},
	}

	if inlineMode {
		tc.InlineServer, err = startInlineServer(database, serverPort)
	} else {
		tc.ServerProcess, err = startBinary(binaryPath, connStr, serverPort)
	}
	if err != nil {
		tc.Close(ctx)
		return nil, fmt.Errorf("failed to start server: %w", err)
	}

	if err := waitForServer(tc.ServerURL, 30*time.Second); err != nil {
		tc.Close(ctx)
		return nil, fmt.Errorf("server failed to become ready: %w", err)
	}

	return tc, nil
}

// startInlineServer starts the server in-process (no binary needed)
func startInlineServer(database *gorm.DB, port string) (*server.Server, error) {
	cfg := config.Default()
	cfg.JWTSecret = jwtSecret
	cfg.BcryptCost = 4

	s, err := server.NewServer(server.Deps{
		Config: cfg,
		Stores: server.GormStores(database),
	}, "127.0.0.1", port)
	if err != nil {
		return nil, err
	}
	endpoints.RegisterAll(s)

	go func() {
		if err := s.Start(); err != nil {
			log.Printf("inline server stopped: %v", err)
		}
	}()
	return s, nil
}

// startBinary starts the pawgressctl server binary
func startBinary(binaryPath, dbURL, port string) (*exec.Cmd, error) {
	// Use --no-migrate since the test setup already ran migrations
	cmd := exec.Command(binaryPath, "server", "--no-migrate", "-b", "127.0.0.1", "-p", port)
	cmd.Env = append(os.Environ(),
		"DATABASE_URL="+dbURL,
		"PAWGRESS_JWT_SECRET="+jwtSecret,
		"PAWGRESS_BCRYPT_COST=4",
		"PAWGRESS_CONFIG_PATH="+os.TempDir(),
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start binary: %w", err)
	}
	return cmd, nil
}

// waitForServer polls the status endpoint until it responds or times out
func waitForServer(serverURL string, timeout time.Duration) error {
	client := &http.Client{Timeout: 2 * time.Second}
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		resp, err := client.Get(serverURL + "/api/status")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}

	return fmt.Errorf("server did not become ready within %v", timeout)
}

// Reset empties every table between scenarios.
func (tc *TestContext) Reset() error {
	return tc.DB.Exec(`TRUNCATE users, pets, activities, behaviors, criteria CASCADE`).Error
}

// Close cleans up all test resources
func (tc *TestContext) Close(ctx context.Context) {
	if tc.InlineServer != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		_ = tc.InlineServer.Shutdown(shutdownCtx)
		cancel()
	}
	if tc.ServerProcess != nil && tc.ServerProcess.Process != nil {
		_ = tc.ServerProcess.Process.Kill()
		_ = tc.ServerProcess.Wait()
	}
	if tc.DB != nil {
		if sqlDB, err := tc.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if tc.Container != nil {
		_ = tc.Container.Terminate(ctx)
	}
}

// findProjectRoot locates the project root directory
func findProjectRoot() (string, error) {
	for _, p := range []string{"../..", "..", "."} {
		if _, err := os.Stat(filepath.Join(p, "go.mod")); err == nil {
			return filepath.Abs(p)
		}
	}
	return "", errors.New("project root not found (looking for go.mod)")
}

func runMigrations(dbURL, migrationsDir string) error {
	m, err := migrate.New("file://"+migrationsDir, dbURL)
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

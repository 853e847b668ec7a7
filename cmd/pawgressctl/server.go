package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/annie-elequin/pawgress/pkg/audit"
	"github.com/annie-elequin/pawgress/pkg/config"
	"github.com/annie-elequin/pawgress/pkg/db"
	"github.com/annie-elequin/pawgress/pkg/server"
	"github.com/annie-elequin/pawgress/pkg/server/endpoints"
)

const shutdownTimeout = 10 * time.Second

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return "0.0.0.0"
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "3001"
}

func defaultPortInt() int {
	if p, err := strconv.Atoi(defaultPort()); err == nil {
		return p
	}
	return 3001
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the Pawgress API server",
	Long: `Run the Pawgress API server.

The server requires DATABASE_URL. Set PAWGRESS_JWT_SECRET as well; without it
tokens are signed with a well-known default and a warning is logged.

By default, database migrations are run on startup. Use --no-migrate to skip.

SIGHUP reloads pawgress.yml and restarts the listener without dropping the
database pool. See "pawgressctl configuration apply".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")

		return runServer(host, port, !noMigrate)
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}

func runServer(host, port string, migrateFirst bool) error {
	// Validate configuration first (fail fast)
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if db.URL() == "" {
		return errors.New("DATABASE_URL environment variable is required")
	}

	if migrateFirst {
		log.Println("Running database migrations...")
		if err := runMigrations(); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	database, err := db.Connect(db.Config{LogLevel: cfg.LogLevel, MaxOpenConns: 20, ConnMaxLifetime: time.Hour})
	if err != nil {
		return err
	}

	auditLogger, closeAudit, err := newAuditLogger()
	if err != nil {
		return err
	}
	defer closeAudit()

	stores := server.GormStores(database)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigCh)

	for {
		reload, err := serveUntilSignal(cfg, stores, auditLogger, host, port, sigCh)
		if err != nil || !reload {
			return err
		}

		// SIGHUP: rebuild the server from a fresh configuration. A broken
		// file keeps the previous configuration in place.
		next, err := config.Load()
		if err == nil {
			err = next.Validate()
		}
		if err != nil {
			log.Printf("Configuration reload rejected, keeping current settings: %v", err)
			continue
		}
		cfg = next
		log.Println("Configuration reloaded")
	}
}

// serveUntilSignal runs one server generation until it fails or a signal
// arrives. It reports whether the signal asked for a reload.
func serveUntilSignal(cfg *config.Config, stores server.Stores, auditLogger *audit.Logger, host, port string, sigCh <-chan os.Signal) (bool, error) {
	s, err := server.NewServer(server.Deps{
		Config: cfg,
		Stores: stores,
		Audit:  auditLogger,
	}, host, port)
	if err != nil {
		return false, err
	}
	endpoints.RegisterAll(s)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Running server at http://%s...\n", s.Addr())
		errCh <- s.Start()
	}()

	var reload bool
	select {
	case err := <-errCh:
		return false, err
	case sig := <-sigCh:
		reload = sig == syscall.SIGHUP
		if reload {
			log.Printf("Received %s, reloading...", sig)
		} else {
			log.Printf("Received %s, shutting down...", sig)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		return false, fmt.Errorf("shutdown: %w", err)
	}
	return reload, <-errCh
}

// newAuditLogger writes audit lines to stdout and, when AUDIT_DATABASE_URL
// is set, also into its audit_messages table.
func newAuditLogger() (*audit.Logger, func(), error) {
	logger := audit.NewLogger(os.Stdout)

	store, err := audit.NewStore(os.Getenv("AUDIT_DATABASE_URL"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open audit database: %w", err)
	}
	if store == nil {
		return logger, func() {}, nil
	}

	return logger.WithSink(store), func() { _ = store.Close() }, nil
}

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/spf13/cobra"

	"github.com/annie-elequin/pawgress/pkg/db"
)

// migrationsTable keeps golang-migrate's bookkeeping apart from any
// schema_migrations table an earlier deployment may have left behind.
const migrationsTable = "pawgress_schema_migrations"

// dbMigrateCmd represents the db migrate command
var dbMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create and/or upgrade the database schema",
	Long: `Create and/or upgrade the database schema.

This command runs all pending database migrations to bring the schema
up to date. Migrations are located in the db/migrations directory.

Example:
  pawgressctl db migrate`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrations()
	},
}

var dbMigrateDownCmd = &cobra.Command{
	Use:   "down [steps]",
	Short: "Rollback database migrations",
	Long: `Rollback database migrations.

This command rolls back the specified number of migrations (default: 1).

Example:
  pawgressctl db down      # Rollback 1 migration
  pawgressctl db down 3    # Rollback 3 migrations`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps := 1
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("steps must be a positive integer, got %q", args[0])
			}
			steps = n
		}
		return runMigrationsDown(steps)
	},
}

var dbMigrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current migration version",
	Long:  `Show the current database migration version.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showMigrationStatus()
	},
}

func init() {
	dbCmd.AddCommand(dbMigrateCmd)
	dbCmd.AddCommand(dbMigrateDownCmd)
	dbCmd.AddCommand(dbMigrateStatusCmd)
}

// migrationURL returns dbURL with the custom migrations table parameter.
func migrationURL(dbURL string) string {
	if strings.Contains(dbURL, "?") {
		return dbURL + "&x-migrations-table=" + migrationsTable
	}
	return dbURL + "?x-migrations-table=" + migrationsTable
}

func openMigrations() (*migrate.Migrate, error) {
	dbURL := db.URL()
	if dbURL == "" {
		return nil, errors.New("DATABASE_URL environment variable is required")
	}

	m, err := createMigrateInstance(migrationURL(dbURL))
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

func runMigrations() error {
	m, err := openMigrations()
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	version, dirty, _ := m.Version()
	fmt.Printf("Current version: %d (dirty: %v)\n", version, dirty)

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("No migrations to run - database is up to date")
			return nil
		}
		return fmt.Errorf("migration failed: %w", err)
	}

	newVersion, _, _ := m.Version()
	fmt.Printf("Migrated to version: %d\n", newVersion)
	fmt.Println("Migrations complete")
	return nil
}

func runMigrationsDown(steps int) error {
	m, err := openMigrations()
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	fmt.Printf("Rolling back %d migration(s)...\n", steps)

	if err := m.Steps(-steps); err != nil {
		return fmt.Errorf("rollback failed: %w", err)
	}

	version, _, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		fmt.Println("Rolled back all migrations")
		return nil
	}
	fmt.Printf("Rolled back to version: %d\n", version)
	return nil
}

func showMigrationStatus() error {
	m, err := openMigrations()
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	files, err := listMigrationFiles()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Printf("No migrations have been applied yet (%d available)\n", len(files))
			return nil
		}
		return err
	}

	pending := 0
	for _, name := range files {
		if v, ok := migrationVersion(name); ok && v > version {
			pending++
		}
	}

	fmt.Printf("Current version: %d\n", version)
	fmt.Printf("Pending migrations: %d\n", pending)
	if dirty {
		fmt.Println("Warning: Database is in a dirty state")
	}
	return nil
}

// migrationVersion extracts the numeric prefix of a migration file name,
// e.g. 20260101000001 from "20260101000001_create_users.up.sql".
func migrationVersion(name string) (uint, bool) {
	prefix, _, ok := strings.Cut(name, "_")
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(prefix, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

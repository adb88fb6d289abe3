package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command line flags
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	migrationsDir := "migrations"
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		log.Fatalf("failed to read migrations directory: %v", err)
	}

	var migrationFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if filepath.Ext(name) == ".sql" && !strings.HasSuffix(name, "_rollback.sql") {
			migrationFiles = append(migrationFiles, name)
		}
	}
	// Sort files to apply in order
	sort.Strings(migrationFiles)

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`); err != nil {
		log.Fatalf("failed to create schema_migrations table: %v", err)
	}

	if *rollback {
		rollbackLast(db, migrationsDir)
		return
	}

	for _, name := range migrationFiles {
		version := strings.SplitN(name, "_", 2)[0]

		var applied bool
		if err := db.QueryRow(
			`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)`, version,
		).Scan(&applied); err != nil {
			log.Fatalf("failed to check migration %s: %v", name, err)
		}
		if applied {
			continue
		}

		content, err := os.ReadFile(filepath.Join(migrationsDir, name))
		if err != nil {
			log.Fatalf("failed to read migration %s: %v", name, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			log.Fatalf("failed to apply migration %s: %v", name, err)
		}
		if _, err := db.Exec(
			`INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`, version, name,
		); err != nil {
			log.Fatalf("failed to record migration %s: %v", name, err)
		}
		log.Printf("Applied migration %s", name)
	}
}

func rollbackLast(db *sql.DB, migrationsDir string) {
	var lastMigration struct {
		Version string
		Name    string
	}
	err := db.QueryRow(`
		SELECT version, name
		FROM schema_migrations
		ORDER BY applied_at DESC
		LIMIT 1
	`).Scan(&lastMigration.Version, &lastMigration.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Fatal("No migrations to rollback")
		}
		log.Fatalf("failed to get last migration: %v", err)
	}

	rollbackFile := fmt.Sprintf("%s_rollback.sql", strings.TrimSuffix(lastMigration.Name, ".sql"))
	content, err := os.ReadFile(filepath.Join(migrationsDir, rollbackFile))
	if err != nil {
		log.Fatalf("failed to read rollback file %s: %v", rollbackFile, err)
	}

	if _, err := db.Exec(string(content)); err != nil {
		log.Fatalf("failed to apply rollback %s: %v", rollbackFile, err)
	}
	if _, err := db.Exec(
		`DELETE FROM schema_migrations WHERE version = $1`, lastMigration.Version,
	); err != nil {
		log.Fatalf("failed to remove migration record %s: %v", lastMigration.Version, err)
	}
	log.Printf("Rolled back migration %s", lastMigration.Name)
}

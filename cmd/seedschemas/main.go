// Command seedschemas loads schema definitions from a JSON file into the
// catalog. Each definition is validated before insert; names already in the
// catalog are skipped so reseeding is idempotent.
// Usage: go run ./cmd/seedschemas [path]
// Default path: db/seeds/schemas.json
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"skema/internal/config"
	"skema/internal/domain"
	"skema/internal/repository/postgres"
	"skema/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	path := "db/seeds/schemas.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.DB.Store != "postgres" {
		return errors.New("seeding applies to the postgres catalog only; set SKEMA_DB_STORE=postgres")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var entries []service.CreateSchemaInput
	if err := json.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	svc := service.NewSchemaService(postgres.NewSchemaRepo(db))

	ctx := context.Background()
	var inserted, skipped int
	for _, entry := range entries {
		switch _, err := svc.Create(ctx, entry); {
		case errors.Is(err, domain.ErrDuplicateSchemaName):
			skipped++
			log.Printf("skipping %q: already in catalog", entry.Name)
		case err != nil:
			return fmt.Errorf("seed %q: %w", entry.Name, err)
		default:
			inserted++
		}
	}

	log.Printf("seeded %d schemas (%d skipped) from %s", inserted, skipped, path)
	return nil
}

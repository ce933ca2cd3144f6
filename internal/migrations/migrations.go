package migrations

import (
	"context"
	"embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"wardrobe/m/internal/database"
)

//go:embed *.sql
var schemaFS embed.FS

// Run creates the item_info and wear_count tables if they do not exist yet.
func Run(ctx context.Context, db *sqlx.DB) error {
	dialect := goose.DialectSQLite3
	if db.DriverName() == database.DriverPostgres {
		dialect = goose.DialectPostgres
	}

	provider, err := goose.NewProvider(dialect, db.DB, schemaFS)
	if err != nil {
		return fmt.Errorf("migration setup failed: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

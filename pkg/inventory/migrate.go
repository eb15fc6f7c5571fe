package inventory

import (
	"context"
	"fmt"

	"bookstock/pkg/log"
)

// migrations is the ordered list of forward schema transformations.
// PRAGMA user_version records how many of them the database file has
// already applied, so a fresh file runs all of them and an existing
// file runs only the tail.
var migrations = []string{
	// v1: initial schema
	`
-- Supplier table: companies that supply books
CREATE TABLE IF NOT EXISTS supplier (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    name      TEXT NOT NULL,
    email     TEXT NOT NULL,
    phone_num TEXT
);

-- Book table: one row per inventory item, price in integer cents.
-- supplier_id may reference a supplier that no longer exists; there is
-- no cascade and no NOT NULL on the reference.
CREATE TABLE IF NOT EXISTS book (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    supplier_id INTEGER REFERENCES supplier(id),
    title       TEXT NOT NULL,
    price       INTEGER NOT NULL DEFAULT 0,
    quantity    INTEGER NOT NULL DEFAULT 0,
    image       BLOB
);

CREATE INDEX IF NOT EXISTS idx_book_supplier ON book(supplier_id);
`,
}

// dropSchema removes every inventory table. Only reachable through the
// destructive-migration opt-in.
const dropSchema = `
DROP TABLE IF EXISTS book;
DROP TABLE IF EXISTS supplier;
`

// migrate brings the database file up to the current schema version.
//
// A file whose recorded version is newer than this build knows is
// refused with ErrSchemaVersion unless destructive recovery was opted
// into, in which case the schema is dropped and rebuilt, losing data.
func (s *Store) migrate(ctx context.Context, destructive bool) error {
	version, err := s.schemaVersion(ctx)
	if err != nil {
		return err
	}

	if version > len(migrations) {
		if !destructive {
			return fmt.Errorf("%w: database at version %d, build supports %d",
				ErrSchemaVersion, version, len(migrations))
		}

		log.Warn().
			Int("db_version", version).
			Int("supported_version", len(migrations)).
			Msg("Dropping and recreating schema, existing data is lost")

		if _, err := s.db.ExecContext(ctx, dropSchema); err != nil {
			return fmt.Errorf("%w: failed to drop schema: %w", ErrStorage, err)
		}
		if _, err := s.db.ExecContext(ctx, "PRAGMA user_version = 0"); err != nil {
			return fmt.Errorf("%w: failed to reset schema version: %w", ErrStorage, err)
		}
		version = 0
	}

	for i := version; i < len(migrations); i++ {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("%w: failed to begin migration %d: %w", ErrStorage, i+1, err)
		}

		if _, err := tx.ExecContext(ctx, migrations[i]); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("%w: migration %d failed: %w", ErrStorage, i+1, err)
		}

		// PRAGMA statements do not support placeholders.
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("%w: failed to record schema version %d: %w", ErrStorage, i+1, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("%w: failed to commit migration %d: %w", ErrStorage, i+1, err)
		}

		log.Debug().Int("version", i+1).Msg("Applied schema migration")
	}

	return nil
}

// schemaVersion reads the migration counter stored in the database file.
func (s *Store) schemaVersion(ctx context.Context) (int, error) {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("%w: failed to read schema version: %w", ErrStorage, err)
	}
	return version, nil
}

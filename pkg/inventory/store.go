package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"bookstock/pkg/log"

	_ "modernc.org/sqlite"
)

// Store owns the single read/write connection to the inventory
// database. It is constructed once by the composition root and handed
// to every collaborator; it is not torn down during normal operation.
type Store struct {
	db   *sql.DB
	opts StoreOptions
	mu   sync.RWMutex
}

// StoreOptions contains optional policy settings for a Store.
type StoreOptions struct {
	// GuardSupplierDeletes makes deleting a supplier fail with
	// ErrSupplierReferenced while books still reference it. Off by
	// default: the schema allows dangling references and the original
	// behavior is to permit them.
	GuardSupplierDeletes bool

	// DestructiveMigration permits dropping and recreating the schema
	// when the database file carries a version this build does not
	// know. Off by default; without it such a file is refused.
	DestructiveMigration bool
}

// NewStore opens (or creates) the inventory database at the given path
// with default options. The path ":memory:" yields an ephemeral store,
// which tests use to get a fresh instance per case.
func NewStore(path string) (*Store, error) {
	return NewStoreWithOptions(path, nil)
}

// NewStoreWithOptions opens the inventory database with explicit
// policy options.
func NewStoreWithOptions(path string, opts *StoreOptions) (*Store, error) {
	database, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %w", ErrStorage, err)
	}

	// One shared handle for the life of the process. This also keeps
	// ":memory:" stores coherent, where every new connection would
	// otherwise see its own empty database.
	database.SetMaxOpenConns(1)

	// Foreign key enforcement stays off: the schema allows books to keep
	// a supplier_id after that supplier is deleted. The REFERENCES clause
	// documents the relation; DeleteSupplierByID offers an opt-in guard.

	store := &Store{db: database}
	if opts != nil {
		store.opts = *opts
	}

	if err := store.migrate(context.Background(), store.opts.DestructiveMigration); err != nil {
		_ = database.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the database connection. Production code never calls
// this; it exists so tests can release their ephemeral stores.
func (s *Store) Close() error {
	return s.db.Close()
}

// insertRow validates and inserts one row inside a single transaction,
// returning the store-assigned id. Only columns the schema registry
// knows are written.
func (s *Store) insertRow(table Table, row Row, validate func(Row) error) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validate(row); err != nil {
		return 0, err
	}

	cols := make([]string, 0, len(table.Columns))
	args := make([]any, 0, len(table.Columns))
	for _, col := range table.Columns {
		if _, ok := row[col]; ok {
			cols = append(cols, col)
			args = append(args, row[col])
		}
	}

	var query string
	if len(cols) == 0 {
		query = fmt.Sprintf("INSERT INTO %s DEFAULT VALUES", table.Name)
	} else {
		query = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			table.Name,
			strings.Join(cols, ", "),
			strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", "))
	}

	ctx := context.Background()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, s.storageError("insert", table, 0, err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		_ = tx.Rollback()
		return 0, s.storageError("insert", table, 0, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return 0, s.storageError("insert", table, 0, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, s.storageError("insert", table, 0, err)
	}

	return id, nil
}

// updateRow validates the supplied fields and applies them to the row
// with the given id. Returns the number of rows affected; an update
// matching no row reports 0 without error.
func (s *Store) updateRow(table Table, id int64, row Row, validate func(Row) error) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validate(row); err != nil {
		return 0, err
	}

	return s.execUpdate(context.Background(), s.db, table, id, row)
}

// execUpdate builds and runs the UPDATE statement. Callers hold the
// write lock and have already validated the row.
func (s *Store) execUpdate(ctx context.Context, execer interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
}, table Table, id int64, row Row) (int64, error) {
	assignments := make([]string, 0, len(table.Columns))
	args := make([]any, 0, len(table.Columns)+1)
	for _, col := range table.Columns {
		if _, ok := row[col]; ok {
			assignments = append(assignments, col+" = ?")
			args = append(args, row[col])
		}
	}

	// Nothing to update; don't touch the database.
	if len(assignments) == 0 {
		return 0, nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
		table.Name, strings.Join(assignments, ", "), table.Key)

	result, err := execer.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, s.storageError("update", table, id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, s.storageError("update", table, id, err)
	}

	return affected, nil
}

// saveRow implements the upsert semantic: update by id first, insert
// when no row was touched. The decision and the write share one
// transaction so the caller observes it atomically.
func (s *Store) saveRow(table Table, id int64, row Row, validate func(Row) error) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validate(row); err != nil {
		return 0, err
	}

	ctx := context.Background()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, s.storageError("save", table, id, err)
	}

	affected, err := s.execUpdate(ctx, tx, table, id, row)
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}

	if affected == 1 {
		if err := tx.Commit(); err != nil {
			return 0, s.storageError("save", table, id, err)
		}
		return id, nil
	}

	cols := make([]string, 0, len(table.Columns))
	args := make([]any, 0, len(table.Columns))
	for _, col := range table.Columns {
		if _, ok := row[col]; ok {
			cols = append(cols, col)
			args = append(args, row[col])
		}
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table.Name,
		strings.Join(cols, ", "),
		strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", "))

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		_ = tx.Rollback()
		return 0, s.storageError("save", table, id, err)
	}

	newID, err := result.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return 0, s.storageError("save", table, id, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, s.storageError("save", table, id, err)
	}

	return newID, nil
}

// deleteByID removes one row; deletes are never validated.
func (s *Store) deleteByID(table Table, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", table.Name, table.Key)
	result, err := s.db.ExecContext(context.Background(), query, id)
	if err != nil {
		return 0, s.storageError("delete", table, id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, s.storageError("delete", table, id, err)
	}

	return affected, nil
}

// deleteAll removes every row of a table and returns the count.
func (s *Store) deleteAll(table Table) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(context.Background(), "DELETE FROM "+table.Name)
	if err != nil {
		return 0, s.storageError("delete-all", table, 0, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, s.storageError("delete-all", table, 0, err)
	}

	return affected, nil
}

// queryRows runs a SELECT and decodes every result row into a Row keyed
// by the column names of the projection.
func (s *Store) queryRows(query string, args ...any) ([]Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	var out []Row
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}

		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStorage, err)
		}

		row := make(Row, len(cols))
		for i, col := range cols {
			row[col] = values[i]
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return out, nil
}

// queryOneRow runs a single-row SELECT; an empty result returns
// (nil, nil), not an error.
func (s *Store) queryOneRow(query string, args ...any) (Row, error) {
	rows, err := s.queryRows(query, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// selectQuery builds the full projection SELECT for a table.
func selectQuery(table Table) string {
	return fmt.Sprintf("SELECT %s, %s FROM %s",
		table.Key, strings.Join(table.Columns, ", "), table.Name)
}

// storageError logs an engine-level failure with its context and wraps
// it so callers can branch on ErrStorage without seeing driver errors.
func (s *Store) storageError(op string, table Table, id int64, err error) error {
	event := log.Error().Err(err).
		Str("op", op).
		Str("table", table.Name)
	if id != 0 {
		event = event.Int64("id", id)
	}
	event.Msg("Database operation failed")

	return fmt.Errorf("%w: %s %s: %w", ErrStorage, op, table.Name, err)
}

// IsStorageFailure reports whether err came from the storage engine
// rather than validation or routing.
func IsStorageFailure(err error) bool {
	return errors.Is(err, ErrStorage)
}

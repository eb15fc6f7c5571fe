package inventory

import (
	"context"
	"fmt"

	"bookstock/pkg/models"
)

// InsertSupplier validates and inserts a new supplier, returning the
// store-assigned id.
func (s *Store) InsertSupplier(supplier *models.Supplier) (int64, error) {
	return s.insertRow(SupplierTable, SupplierToRow(supplier), ValidateSupplierRow)
}

// InsertSupplierRow inserts a supplier from caller-supplied fields.
func (s *Store) InsertSupplierRow(row Row) (int64, error) {
	return s.insertRow(SupplierTable, row, ValidateSupplierRow)
}

// SaveSupplier updates the supplier when its id matches an existing row
// and inserts it otherwise, returning the id either way.
func (s *Store) SaveSupplier(supplier *models.Supplier) (int64, error) {
	return s.saveRow(SupplierTable, supplier.ID, SupplierToRow(supplier), ValidateSupplierRow)
}

// UpdateSupplierByID applies the supplied fields to one supplier and
// reports whether exactly one row changed.
func (s *Store) UpdateSupplierByID(id int64, row Row) (bool, error) {
	affected, err := s.updateRow(SupplierTable, id, row, ValidateSupplierRow)
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// DeleteSupplierByID removes one supplier. There is no cascade: books
// referencing the supplier stay behind with a dangling reference. With
// GuardSupplierDeletes enabled the delete is refused instead while such
// books exist.
func (s *Store) DeleteSupplierByID(id int64) (int64, error) {
	if !s.opts.GuardSupplierDeletes {
		return s.deleteByID(SupplierTable, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := context.Background()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, s.storageError("delete", SupplierTable, id, err)
	}

	var referenced bool
	err = tx.QueryRowContext(ctx,
		fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = ?)", BookTable.Name, BookTable.ForeignKey),
		id,
	).Scan(&referenced)
	if err != nil {
		_ = tx.Rollback()
		return 0, s.storageError("delete", SupplierTable, id, err)
	}

	if referenced {
		_ = tx.Rollback()
		return 0, ErrSupplierReferenced
	}

	result, err := tx.ExecContext(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE %s = ?", SupplierTable.Name, SupplierTable.Key), id)
	if err != nil {
		_ = tx.Rollback()
		return 0, s.storageError("delete", SupplierTable, id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return 0, s.storageError("delete", SupplierTable, id, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, s.storageError("delete", SupplierTable, id, err)
	}

	return affected, nil
}

// DeleteAllSuppliers removes every supplier. The guard does not apply
// to bulk deletes; they are the reset path.
func (s *Store) DeleteAllSuppliers() (int64, error) {
	return s.deleteAll(SupplierTable)
}

// SupplierRowByID reads one supplier as a raw row. An absent id yields
// (nil, nil).
func (s *Store) SupplierRowByID(id int64) (Row, error) {
	query := selectQuery(SupplierTable) + fmt.Sprintf(" WHERE %s = ?", SupplierTable.Key)
	return s.queryOneRow(query, id)
}

// SupplierRows reads every supplier as raw rows.
func (s *Store) SupplierRows() ([]Row, error) {
	return s.queryRows(selectQuery(SupplierTable) + " ORDER BY " + SupplierTable.Key)
}

// SupplierByID reads one supplier; an absent id yields (nil, nil).
func (s *Store) SupplierByID(id int64) (*models.Supplier, error) {
	row, err := s.SupplierRowByID(id)
	if err != nil || row == nil {
		return nil, err
	}
	return SupplierFromRow(row)
}

// Suppliers reads every supplier.
func (s *Store) Suppliers() ([]*models.Supplier, error) {
	rows, err := s.SupplierRows()
	if err != nil {
		return nil, err
	}

	suppliers := make([]*models.Supplier, 0, len(rows))
	for _, row := range rows {
		supplier, err := SupplierFromRow(row)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, supplier)
	}
	return suppliers, nil
}

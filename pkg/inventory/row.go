package inventory

import (
	"bookstock/pkg/models"
)

// Row is a flat mapping from column name to primitive value, as produced
// by a storage read or supplied by a caller for a write. Values are the
// primitives the database driver and JSON decoding produce: int64,
// float64, string, []byte or nil.
type Row map[string]any

// Has reports whether the row carries a non-NULL value for the column.
// A column that was never part of the projection and a column that is
// NULL both count as absent.
func (r Row) Has(col string) bool {
	v, ok := r[col]
	return ok && v != nil
}

// String returns the column as a string, or "" when it is absent.
func (r Row) String(col string) string {
	switch v := r[col].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

// Int64 returns the column as an int64, or 0 when it is absent.
// Numeric values arrive as int64 from the driver and as float64 from
// JSON decoding; both are accepted.
func (r Row) Int64(col string) int64 {
	switch v := r[col].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

// Bytes returns the column as a byte slice, or nil when it is absent.
func (r Row) Bytes(col string) []byte {
	switch v := r[col].(type) {
	case []byte:
		return v
	case string:
		return []byte(v)
	default:
		return nil
	}
}

// SupplierResolver fetches a supplier by id so the codec can embed it
// into a decoded book without doing I/O itself. A resolver may return
// (nil, nil) when the referenced supplier does not exist.
type SupplierResolver func(id int64) (*models.Supplier, error)

// BookFromRow decodes a book row. Columns absent from the projection
// fall back to type defaults, except the title, which every full book
// row must carry. When the row references a supplier and resolve is
// non-nil, the supplier is fetched through it and embedded.
func BookFromRow(row Row, resolve SupplierResolver) (*models.Book, error) {
	if !row.Has(ColBookTitle) {
		return nil, MalformedRowError{Column: ColBookTitle}
	}

	book := &models.Book{
		ID:         row.Int64(ColBookID),
		SupplierID: row.Int64(ColBookSupplierID),
		Title:      row.String(ColBookTitle),
		PriceCents: row.Int64(ColBookPrice),
		Quantity:   row.Int64(ColBookQuantity),
		Image:      row.Bytes(ColBookImage),
	}

	if book.SupplierID > 0 && resolve != nil {
		supplier, err := resolve(book.SupplierID)
		if err != nil {
			return nil, err
		}
		book.Supplier = supplier
	}

	return book, nil
}

// SupplierFromRow decodes a supplier row. Name and email are required
// columns; the phone number is optional.
func SupplierFromRow(row Row) (*models.Supplier, error) {
	if !row.Has(ColSupplierName) {
		return nil, MalformedRowError{Column: ColSupplierName}
	}
	if !row.Has(ColSupplierEmail) {
		return nil, MalformedRowError{Column: ColSupplierEmail}
	}

	return &models.Supplier{
		ID:       row.Int64(ColSupplierID),
		Name:     row.String(ColSupplierName),
		Email:    row.String(ColSupplierEmail),
		PhoneNum: row.String(ColSupplierPhoneNum),
	}, nil
}

// BookToRow encodes all book data columns for an insert or update.
// The primary key is never emitted; the store assigns it.
func BookToRow(book *models.Book) Row {
	supplierID := book.SupplierID
	if book.Supplier != nil {
		supplierID = book.Supplier.ID
	}

	return Row{
		ColBookSupplierID: supplierID,
		ColBookTitle:      book.Title,
		ColBookPrice:      book.PriceCents,
		ColBookQuantity:   book.Quantity,
		ColBookImage:      book.Image,
	}
}

// SupplierToRow encodes all supplier data columns for an insert or
// update, never the primary key.
func SupplierToRow(supplier *models.Supplier) Row {
	return Row{
		ColSupplierName:     supplier.Name,
		ColSupplierEmail:    supplier.Email,
		ColSupplierPhoneNum: supplier.PhoneNum,
	}
}

// BookDetailFromRow decodes a single joined row that carries both book
// columns and the supplier columns under their prefixed names. When the
// supplier side of the join is NULL (dangling or unset reference) the
// book is returned with a nil Supplier.
func BookDetailFromRow(row Row) (*models.Book, error) {
	book, err := BookFromRow(row, nil)
	if err != nil {
		return nil, err
	}

	if row.Has(ColDetailSupplierName) {
		book.Supplier = &models.Supplier{
			ID:       book.SupplierID,
			Name:     row.String(ColDetailSupplierName),
			Email:    row.String(ColDetailSupplierEmail),
			PhoneNum: row.String(ColDetailSupplierPhoneNum),
		}
	}

	return book, nil
}

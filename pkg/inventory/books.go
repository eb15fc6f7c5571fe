package inventory

import (
	"fmt"
	"strings"

	"bookstock/pkg/models"
)

// detailQuery joins a book with its supplier in one statement so the
// caller observes both at a single point in time. LEFT JOIN: a book
// whose reference dangles still comes back, with NULL supplier columns.
const detailQuery = `
SELECT book.id, book.supplier_id, book.title, book.price, book.quantity, book.image,
       supplier.name AS supplier_name,
       supplier.email AS supplier_email,
       supplier.phone_num AS supplier_phone_num
FROM book
LEFT JOIN supplier ON book.supplier_id = supplier.id
WHERE book.id = ?`

// InsertBook validates and inserts a new book, returning the
// store-assigned id. Validation and insert share one transaction.
func (s *Store) InsertBook(book *models.Book) (int64, error) {
	return s.insertRow(BookTable, BookToRow(book), ValidateBookRow)
}

// InsertBookRow inserts a book from caller-supplied fields. Columns the
// schema does not know are ignored.
func (s *Store) InsertBookRow(row Row) (int64, error) {
	return s.insertRow(BookTable, row, ValidateBookRow)
}

// SaveBook updates the book when its id matches an existing row and
// inserts it otherwise, returning the id either way. Callers do not
// need to know in advance whether the book exists.
func (s *Store) SaveBook(book *models.Book) (int64, error) {
	return s.saveRow(BookTable, book.ID, BookToRow(book), ValidateBookRow)
}

// UpdateBookByID applies the supplied fields to one book. It reports
// whether exactly one row changed; matching no row is a false result,
// not an error.
func (s *Store) UpdateBookByID(id int64, row Row) (bool, error) {
	affected, err := s.updateRow(BookTable, id, row, ValidateBookRow)
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// DeleteBookByID removes one book and returns the affected row count.
// Deletes are never validated.
func (s *Store) DeleteBookByID(id int64) (int64, error) {
	return s.deleteByID(BookTable, id)
}

// DeleteAllBooks removes every book.
func (s *Store) DeleteAllBooks() (int64, error) {
	return s.deleteAll(BookTable)
}

// BookRowByID reads the full projection of one book as a raw row.
// An absent id yields (nil, nil).
func (s *Store) BookRowByID(id int64) (Row, error) {
	query := selectQuery(BookTable) + fmt.Sprintf(" WHERE %s = ?", BookTable.Key)
	return s.queryOneRow(query, id)
}

// BookSummaryRows reads the list projection of every book: id, supplier
// id, title, price and quantity, never the image blob.
func (s *Store) BookSummaryRows() ([]Row, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s",
		strings.Join(summaryColumns, ", "), BookTable.Name, BookTable.Key)
	return s.queryRows(query)
}

// BookDetailRowByID reads the joined book+supplier projection of one
// book as a raw row.
func (s *Store) BookDetailRowByID(id int64) (Row, error) {
	return s.queryOneRow(detailQuery, id)
}

// BookByID reads one book with its supplier resolved through a second
// lookup. An absent id yields (nil, nil).
func (s *Store) BookByID(id int64) (*models.Book, error) {
	row, err := s.BookRowByID(id)
	if err != nil || row == nil {
		return nil, err
	}
	return BookFromRow(row, s.SupplierByID)
}

// Books reads every book, full projection, suppliers resolved.
func (s *Store) Books() ([]*models.Book, error) {
	rows, err := s.queryRows(selectQuery(BookTable) + " ORDER BY " + BookTable.Key)
	if err != nil {
		return nil, err
	}

	books := make([]*models.Book, 0, len(rows))
	for _, row := range rows {
		book, err := BookFromRow(row, s.SupplierByID)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, nil
}

// BookSummaries reads the reduced list projection for every book.
func (s *Store) BookSummaries() ([]models.BookSummary, error) {
	rows, err := s.BookSummaryRows()
	if err != nil {
		return nil, err
	}

	summaries := make([]models.BookSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, models.BookSummary{
			ID:         row.Int64(ColBookID),
			SupplierID: row.Int64(ColBookSupplierID),
			Title:      row.String(ColBookTitle),
			PriceCents: row.Int64(ColBookPrice),
			Quantity:   row.Int64(ColBookQuantity),
		})
	}
	return summaries, nil
}

// BookDetailByID reads one book joined with its supplier in a single
// statement. A book whose supplier reference dangles comes back with a
// nil Supplier; an absent book yields (nil, nil).
func (s *Store) BookDetailByID(id int64) (*models.Book, error) {
	row, err := s.BookDetailRowByID(id)
	if err != nil || row == nil {
		return nil, err
	}
	return BookDetailFromRow(row)
}

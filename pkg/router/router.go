// Package router translates path-like resource addresses into inventory
// store operations. UI collaborators address data as "books",
// "books/5", "books/detail/5", "suppliers" or "suppliers/5" instead of
// naming tables or join logic.
package router

import (
	"fmt"
	"strconv"
	"strings"

	"bookstock/pkg/inventory"
)

const (
	pathBooks     = "books"
	pathSuppliers = "suppliers"
	pathDetail    = "detail"
)

// Entity identifies which kind of record an address refers to.
type Entity int

const (
	EntityBook Entity = iota
	EntitySupplier
)

func (e Entity) String() string {
	if e == EntitySupplier {
		return "supplier"
	}
	return "book"
}

// Kind identifies the shape of an address.
type Kind int

const (
	// KindCollection addresses every record of an entity.
	KindCollection Kind = iota
	// KindItem addresses one record by id.
	KindItem
	// KindDetail addresses one book joined with its supplier. Read-only.
	KindDetail
)

// Route is the resolved form of an address.
type Route struct {
	Entity Entity
	Kind   Kind
	ID     int64
}

// UnroutableAddressError is returned for an address shape the router
// does not recognize, or an operation an address does not support.
// This is a programming error on the caller's side and fails loudly.
type UnroutableAddressError struct {
	Address string
}

func (e UnroutableAddressError) Error() string {
	return fmt.Sprintf("unroutable address %q", e.Address)
}

// Resolve parses an address into its route. Recognized shapes:
//
//	books                collection of books (summary projection)
//	books/{id}           one book, full projection
//	books/detail/{id}    one book joined with its supplier
//	suppliers            collection of suppliers
//	suppliers/{id}       one supplier
func Resolve(address string) (Route, error) {
	parts := strings.Split(strings.Trim(address, "/"), "/")

	switch {
	case len(parts) == 1 && parts[0] == pathBooks:
		return Route{Entity: EntityBook, Kind: KindCollection}, nil

	case len(parts) == 1 && parts[0] == pathSuppliers:
		return Route{Entity: EntitySupplier, Kind: KindCollection}, nil

	case len(parts) == 2 && parts[0] == pathBooks:
		id, err := parseID(parts[1])
		if err != nil {
			return Route{}, UnroutableAddressError{Address: address}
		}
		return Route{Entity: EntityBook, Kind: KindItem, ID: id}, nil

	case len(parts) == 2 && parts[0] == pathSuppliers:
		id, err := parseID(parts[1])
		if err != nil {
			return Route{}, UnroutableAddressError{Address: address}
		}
		return Route{Entity: EntitySupplier, Kind: KindItem, ID: id}, nil

	case len(parts) == 3 && parts[0] == pathBooks && parts[1] == pathDetail:
		id, err := parseID(parts[2])
		if err != nil {
			return Route{}, UnroutableAddressError{Address: address}
		}
		return Route{Entity: EntityBook, Kind: KindDetail, ID: id}, nil
	}

	return Route{}, UnroutableAddressError{Address: address}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// Router dispatches resolved addresses to store operations. Every
// mutating dispatch goes through store methods that re-validate, so no
// address shape bypasses the validator.
type Router struct {
	store *inventory.Store
}

// New returns a Router over the given store.
func New(store *inventory.Store) *Router {
	return &Router{store: store}
}

// Query reads the rows an address selects. Collection addresses return
// every row (the book collection uses the summary projection); item and
// detail addresses return zero or one row.
func (r *Router) Query(address string) ([]inventory.Row, error) {
	route, err := Resolve(address)
	if err != nil {
		return nil, err
	}

	switch {
	case route.Entity == EntityBook && route.Kind == KindCollection:
		return r.store.BookSummaryRows()

	case route.Entity == EntityBook && route.Kind == KindItem:
		return oneOrEmpty(r.store.BookRowByID(route.ID))

	case route.Entity == EntityBook && route.Kind == KindDetail:
		return oneOrEmpty(r.store.BookDetailRowByID(route.ID))

	case route.Entity == EntitySupplier && route.Kind == KindCollection:
		return r.store.SupplierRows()

	default:
		return oneOrEmpty(r.store.SupplierRowByID(route.ID))
	}
}

// Insert writes a new row through a collection address and returns the
// store-assigned id. Item and detail addresses do not support inserts.
func (r *Router) Insert(address string, row inventory.Row) (int64, error) {
	route, err := Resolve(address)
	if err != nil {
		return 0, err
	}
	if route.Kind != KindCollection {
		return 0, UnroutableAddressError{Address: address}
	}

	if route.Entity == EntityBook {
		return r.store.InsertBookRow(row)
	}
	return r.store.InsertSupplierRow(row)
}

// Update applies fields to the row an item address selects and returns
// the affected row count.
func (r *Router) Update(address string, row inventory.Row) (int64, error) {
	route, err := Resolve(address)
	if err != nil {
		return 0, err
	}
	if route.Kind != KindItem {
		return 0, UnroutableAddressError{Address: address}
	}

	var updated bool
	if route.Entity == EntityBook {
		updated, err = r.store.UpdateBookByID(route.ID, row)
	} else {
		updated, err = r.store.UpdateSupplierByID(route.ID, row)
	}
	if err != nil {
		return 0, err
	}
	if updated {
		return 1, nil
	}
	return 0, nil
}

// Delete removes the row an item address selects, or every row of a
// collection address, returning the affected count. The detail address
// is read-only.
func (r *Router) Delete(address string) (int64, error) {
	route, err := Resolve(address)
	if err != nil {
		return 0, err
	}

	switch {
	case route.Entity == EntityBook && route.Kind == KindItem:
		return r.store.DeleteBookByID(route.ID)

	case route.Entity == EntityBook && route.Kind == KindCollection:
		return r.store.DeleteAllBooks()

	case route.Entity == EntitySupplier && route.Kind == KindItem:
		return r.store.DeleteSupplierByID(route.ID)

	case route.Entity == EntitySupplier && route.Kind == KindCollection:
		return r.store.DeleteAllSuppliers()

	default:
		return 0, UnroutableAddressError{Address: address}
	}
}

func oneOrEmpty(row inventory.Row, err error) ([]inventory.Row, error) {
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	return []inventory.Row{row}, nil
}

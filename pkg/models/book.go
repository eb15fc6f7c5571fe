package models

// Book represents a single inventory item.
//
// PriceCents stores the price in integer cents to avoid floating-point
// currency error. Image is an opaque blob; the store never interprets it.
type Book struct {
	ID         int64  `json:"id"`
	SupplierID int64  `json:"supplier_id"`
	Title      string `json:"title"`
	PriceCents int64  `json:"price"`
	Quantity   int64  `json:"quantity"`
	Image      []byte `json:"image,omitempty"`

	// Supplier is populated by detail reads and entity reads that
	// resolve the foreign key. Nil when the reference is dangling or unset.
	Supplier *Supplier `json:"supplier,omitempty"`
}

// BookSummary is the reduced projection used for list rendering.
// It deliberately excludes the image blob.
type BookSummary struct {
	ID         int64  `json:"id"`
	SupplierID int64  `json:"supplier_id"`
	Title      string `json:"title"`
	PriceCents int64  `json:"price"`
	Quantity   int64  `json:"quantity"`
}

// Sell reduces the quantity by one if we're not already at zero.
// Returns false if the book is out of stock.
func (b *Book) Sell() bool {
	if b.Quantity > 0 {
		b.Quantity--
		return true
	}
	return false
}

// Order increases the quantity by one.
func (b *Book) Order() {
	b.Quantity++
}

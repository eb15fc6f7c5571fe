package inventory

// Column names for the supplier table.
const (
	ColSupplierID       = "id"
	ColSupplierName     = "name"
	ColSupplierEmail    = "email"
	ColSupplierPhoneNum = "phone_num"
)

// Column names for the book table.
const (
	ColBookID         = "id"
	ColBookSupplierID = "supplier_id"
	ColBookTitle      = "title"
	ColBookPrice      = "price"
	ColBookQuantity   = "quantity"
	ColBookImage      = "image"
)

// Prefixed column names used by the joined detail projection, where book
// and supplier columns share one flat row.
const (
	ColDetailSupplierName     = "supplier_name"
	ColDetailSupplierEmail    = "supplier_email"
	ColDetailSupplierPhoneNum = "supplier_phone_num"
)

// Table describes one table of the inventory schema: its name, primary
// key, ordered data columns and, where applicable, the foreign key
// column. Every component reads names from here instead of repeating
// string literals.
type Table struct {
	Name       string
	Key        string
	Columns    []string
	ForeignKey string
}

// SupplierTable is the schema registry entry for the supplier table.
var SupplierTable = Table{
	Name: "supplier",
	Key:  ColSupplierID,
	Columns: []string{
		ColSupplierName,
		ColSupplierEmail,
		ColSupplierPhoneNum,
	},
}

// BookTable is the schema registry entry for the book table. The
// supplier_id column references supplier(id) without cascade.
var BookTable = Table{
	Name: "book",
	Key:  ColBookID,
	Columns: []string{
		ColBookSupplierID,
		ColBookTitle,
		ColBookPrice,
		ColBookQuantity,
		ColBookImage,
	},
	ForeignKey: ColBookSupplierID,
}

// summaryColumns is the reduced projection for book list reads.
// The image blob is excluded on purpose.
var summaryColumns = []string{
	ColBookID,
	ColBookSupplierID,
	ColBookTitle,
	ColBookPrice,
	ColBookQuantity,
}

package inventory

import "regexp"

// emailPattern matches a syntactically valid email address. It mirrors
// the common HTML5 address grammar rather than the full RFC.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// ValidateBookRow gate-checks a proposed book write. Only fields present
// in the row are checked; absent fields defer to the stored value or the
// column default, so partial updates stay legal.
func ValidateBookRow(row Row) error {
	if _, ok := row[ColBookTitle]; ok {
		if row.String(ColBookTitle) == "" {
			return InvalidFieldError{Field: ColBookTitle}
		}
	}

	// Books may be added before a supplier is known, but an assigned
	// supplier id can never be negative.
	if row.Has(ColBookSupplierID) && row.Int64(ColBookSupplierID) < 0 {
		return InvalidFieldError{Field: ColBookSupplierID}
	}

	if row.Has(ColBookPrice) && row.Int64(ColBookPrice) < 0 {
		return InvalidFieldError{Field: ColBookPrice}
	}

	if row.Has(ColBookQuantity) && row.Int64(ColBookQuantity) < 0 {
		return InvalidFieldError{Field: ColBookQuantity}
	}

	return nil
}

// ValidateSupplierRow gate-checks a proposed supplier write. As with
// books, absent fields are not checked.
func ValidateSupplierRow(row Row) error {
	if _, ok := row[ColSupplierName]; ok {
		if row.String(ColSupplierName) == "" {
			return InvalidFieldError{Field: ColSupplierName}
		}
	}

	if _, ok := row[ColSupplierEmail]; ok {
		if !emailPattern.MatchString(row.String(ColSupplierEmail)) {
			return InvalidFieldError{Field: ColSupplierEmail}
		}
	}

	return nil
}

package inventory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ValidatorTestSuite tests the write gate-checks.
type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestBookWrites() {
	testCases := []struct {
		row     Row
		field   string
		message string
	}{
		{Row{ColBookTitle: "Dune"}, "", "valid title"},
		{Row{ColBookTitle: ""}, ColBookTitle, "empty title"},
		{Row{ColBookTitle: nil}, ColBookTitle, "null title"},
		{Row{ColBookSupplierID: int64(-1)}, ColBookSupplierID, "negative supplier id"},
		{Row{ColBookSupplierID: int64(0)}, "", "unset supplier id"},
		{Row{ColBookPrice: int64(-5)}, ColBookPrice, "negative price"},
		{Row{ColBookPrice: int64(0)}, "", "zero price"},
		{Row{ColBookQuantity: int64(-1)}, ColBookQuantity, "negative quantity"},
		{Row{ColBookQuantity: float64(-1)}, ColBookQuantity, "negative quantity from JSON"},
		{Row{}, "", "empty write checks nothing"},
		{Row{ColBookPrice: int64(1199), ColBookQuantity: int64(5)}, "", "valid partial write"},
	}

	for _, tc := range testCases {
		err := ValidateBookRow(tc.row)
		if tc.field == "" {
			s.NoError(err, tc.message)
			continue
		}

		var invalid InvalidFieldError
		s.Require().True(errors.As(err, &invalid), tc.message)
		s.Equal(tc.field, invalid.Field, tc.message)
	}
}

func (s *ValidatorTestSuite) TestSupplierWrites() {
	testCases := []struct {
		row     Row
		field   string
		message string
	}{
		{Row{ColSupplierName: "Bob's Books", ColSupplierEmail: "books@supplier.com"}, "", "valid supplier"},
		{Row{ColSupplierName: ""}, ColSupplierName, "empty name"},
		{Row{ColSupplierName: nil}, ColSupplierName, "null name"},
		{Row{ColSupplierEmail: "not-an-email"}, ColSupplierEmail, "email without domain"},
		{Row{ColSupplierEmail: "@supplier.com"}, ColSupplierEmail, "email without local part"},
		{Row{ColSupplierEmail: ""}, ColSupplierEmail, "empty email"},
		{Row{ColSupplierEmail: "books@supplier.com"}, "", "valid email alone"},
		{Row{ColSupplierPhoneNum: ""}, "", "phone is never checked"},
		{Row{}, "", "empty write checks nothing"},
	}

	for _, tc := range testCases {
		err := ValidateSupplierRow(tc.row)
		if tc.field == "" {
			s.NoError(err, tc.message)
			continue
		}

		var invalid InvalidFieldError
		s.Require().True(errors.As(err, &invalid), tc.message)
		s.Equal(tc.field, invalid.Field, tc.message)
	}
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"bookstock/pkg/inventory"
	"bookstock/pkg/models"
	"bookstock/pkg/router"
)

// SuppliersHandlerTestSuite tests the supplier endpoints.
type SuppliersHandlerTestSuite struct {
	suite.Suite
	tempDir string
	dbPath  string
	store   *inventory.Store
	server  *InventoryServer
}

func (s *SuppliersHandlerTestSuite) SetupSuite() {
	var err error
	s.tempDir, err = os.MkdirTemp("", "suppliers-handler-test-*")
	s.Require().NoError(err)
}

func (s *SuppliersHandlerTestSuite) TearDownSuite() {
	if s.tempDir != "" {
		os.RemoveAll(s.tempDir)
	}
}

func (s *SuppliersHandlerTestSuite) SetupTest() {
	s.dbPath = filepath.Join(s.tempDir, "test.db")
	s.newServer(nil)
}

// newServer rebuilds the store and server, optionally with store
// options, so guard tests can opt in.
func (s *SuppliersHandlerTestSuite) newServer(opts *inventory.StoreOptions) {
	if s.store != nil {
		s.store.Close()
		os.Remove(s.dbPath)
	}

	var err error
	s.store, err = inventory.NewStoreWithOptions(s.dbPath, opts)
	s.Require().NoError(err)

	s.server = NewServer(router.New(s.store), 0, "test-v1.0.0")
	s.server.setupRoutes()
}

func (s *SuppliersHandlerTestSuite) TearDownTest() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
	os.Remove(s.dbPath)
}

func (s *SuppliersHandlerTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	s.server.echo.ServeHTTP(rec, req)
	return rec
}

func (s *SuppliersHandlerTestSuite) TestCreateAndGetSupplier() {
	rec := s.do(http.MethodPost, "/inventory/suppliers",
		`{"name": "Bob's Books", "email": "books@supplier.com", "phone_num": "0432 345 654"}`)
	s.Equal(http.StatusCreated, rec.Code)

	var created map[string]int64
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	s.Equal(int64(1), created["id"])

	rec = s.do(http.MethodGet, "/inventory/suppliers/1", "")
	s.Equal(http.StatusOK, rec.Code)

	var supplier map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &supplier))
	s.Equal("Bob's Books", supplier["name"])
	s.Equal("books@supplier.com", supplier["email"])
	s.Equal("0432 345 654", supplier["phone_num"])
}

func (s *SuppliersHandlerTestSuite) TestCreateSupplierInvalidEmail() {
	rec := s.do(http.MethodPost, "/inventory/suppliers",
		`{"name": "X", "email": "not-an-email"}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	var response map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("email", response["field"])

	suppliers, err := s.store.Suppliers()
	s.Require().NoError(err)
	s.Empty(suppliers)
}

func (s *SuppliersHandlerTestSuite) TestListSuppliers() {
	_, err := s.store.InsertSupplier(&models.Supplier{
		Name:  "Bob's Books",
		Email: "books@supplier.com",
	})
	s.Require().NoError(err)

	rec := s.do(http.MethodGet, "/inventory/suppliers", "")
	s.Equal(http.StatusOK, rec.Code)

	var response map[string][]map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response["suppliers"], 1)
}

func (s *SuppliersHandlerTestSuite) TestUpdateSupplier() {
	_, err := s.store.InsertSupplier(&models.Supplier{
		Name:  "Bob's Books",
		Email: "books@supplier.com",
	})
	s.Require().NoError(err)

	rec := s.do(http.MethodPut, "/inventory/suppliers/1", `{"name": "Bob's Better Books"}`)
	s.Equal(http.StatusOK, rec.Code)

	supplier, err := s.store.SupplierByID(1)
	s.Require().NoError(err)
	s.Equal("Bob's Better Books", supplier.Name)
	s.Equal("books@supplier.com", supplier.Email)
}

func (s *SuppliersHandlerTestSuite) TestDeleteSupplierNotFound() {
	rec := s.do(http.MethodDelete, "/inventory/suppliers/42", "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *SuppliersHandlerTestSuite) TestGuardedDeleteConflicts() {
	s.newServer(&inventory.StoreOptions{GuardSupplierDeletes: true})

	supplierID, err := s.store.InsertSupplier(&models.Supplier{
		Name:  "Bob's Books",
		Email: "books@supplier.com",
	})
	s.Require().NoError(err)

	_, err = s.store.InsertBook(&models.Book{SupplierID: supplierID, Title: "Dune"})
	s.Require().NoError(err)

	rec := s.do(http.MethodDelete, "/inventory/suppliers/1", "")
	s.Equal(http.StatusConflict, rec.Code)
}

func TestSuppliersHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SuppliersHandlerTestSuite))
}

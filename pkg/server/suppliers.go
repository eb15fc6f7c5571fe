package server

import (
	"net/http"

	"bookstock/pkg/inventory"

	"github.com/labstack/echo/v4"
)

// listSuppliers handles GET /inventory/suppliers.
func (srv *InventoryServer) listSuppliers(ctx echo.Context) error {
	rows, err := srv.router.Query("suppliers")
	if err != nil {
		return writeError(ctx, err)
	}

	if rows == nil {
		rows = []inventory.Row{}
	}
	return ctx.JSON(http.StatusOK, map[string]any{"suppliers": rows})
}

// getSupplier handles GET /inventory/suppliers/{id}.
func (srv *InventoryServer) getSupplier(ctx echo.Context) error {
	rows, err := srv.router.Query("suppliers/" + ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}
	if len(rows) == 0 {
		return notFound(ctx, "supplier")
	}
	return ctx.JSON(http.StatusOK, rows[0])
}

// createSupplier handles POST /inventory/suppliers.
func (srv *InventoryServer) createSupplier(ctx echo.Context) error {
	row, err := bindRow(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	id, err := srv.router.Insert("suppliers", row)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]int64{"id": id})
}

// updateSupplier handles PUT /inventory/suppliers/{id}.
func (srv *InventoryServer) updateSupplier(ctx echo.Context) error {
	row, err := bindRow(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	updated, err := srv.router.Update("suppliers/"+ctx.Param("id"), row)
	if err != nil {
		return writeError(ctx, err)
	}
	if updated == 0 {
		return notFound(ctx, "supplier")
	}

	return ctx.JSON(http.StatusOK, map[string]int64{"updated": updated})
}

// deleteSupplier handles DELETE /inventory/suppliers/{id}. With the
// referential guard enabled this returns 409 while books still
// reference the supplier.
func (srv *InventoryServer) deleteSupplier(ctx echo.Context) error {
	deleted, err := srv.router.Delete("suppliers/" + ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}
	if deleted == 0 {
		return notFound(ctx, "supplier")
	}

	return ctx.JSON(http.StatusOK, map[string]int64{"deleted": deleted})
}

// deleteAllSuppliers handles DELETE /inventory/suppliers.
func (srv *InventoryServer) deleteAllSuppliers(ctx echo.Context) error {
	deleted, err := srv.router.Delete("suppliers")
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, map[string]int64{"deleted": deleted})
}

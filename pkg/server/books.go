package server

import (
	"net/http"

	"bookstock/pkg/inventory"

	"github.com/labstack/echo/v4"
)

// listBooks handles GET /inventory/books: the summary projection of
// every book, never including the image blob.
func (srv *InventoryServer) listBooks(ctx echo.Context) error {
	rows, err := srv.router.Query("books")
	if err != nil {
		return writeError(ctx, err)
	}

	if rows == nil {
		rows = []inventory.Row{}
	}
	return ctx.JSON(http.StatusOK, map[string]any{"books": rows})
}

// getBook handles GET /inventory/books/{id}: one book, full projection.
func (srv *InventoryServer) getBook(ctx echo.Context) error {
	rows, err := srv.router.Query("books/" + ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}
	if len(rows) == 0 {
		return notFound(ctx, "book")
	}
	return ctx.JSON(http.StatusOK, rows[0])
}

// getBookDetail handles GET /inventory/books/detail/{id}: one book
// joined with its supplier.
func (srv *InventoryServer) getBookDetail(ctx echo.Context) error {
	rows, err := srv.router.Query("books/detail/" + ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}
	if len(rows) == 0 {
		return notFound(ctx, "book")
	}
	return ctx.JSON(http.StatusOK, rows[0])
}

// createBook handles POST /inventory/books.
func (srv *InventoryServer) createBook(ctx echo.Context) error {
	row, err := bindRow(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	id, err := srv.router.Insert("books", row)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]int64{"id": id})
}

// updateBook handles PUT /inventory/books/{id}. Partial bodies are
// fine; absent fields keep their stored values.
func (srv *InventoryServer) updateBook(ctx echo.Context) error {
	row, err := bindRow(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	updated, err := srv.router.Update("books/"+ctx.Param("id"), row)
	if err != nil {
		return writeError(ctx, err)
	}
	if updated == 0 {
		return notFound(ctx, "book")
	}

	return ctx.JSON(http.StatusOK, map[string]int64{"updated": updated})
}

// deleteBook handles DELETE /inventory/books/{id}.
func (srv *InventoryServer) deleteBook(ctx echo.Context) error {
	deleted, err := srv.router.Delete("books/" + ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}
	if deleted == 0 {
		return notFound(ctx, "book")
	}

	return ctx.JSON(http.StatusOK, map[string]int64{"deleted": deleted})
}

// deleteAllBooks handles DELETE /inventory/books.
func (srv *InventoryServer) deleteAllBooks(ctx echo.Context) error {
	deleted, err := srv.router.Delete("books")
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, map[string]int64{"deleted": deleted})
}

package server

import (
	"encoding/base64"
	"errors"
	"net/http"

	"bookstock/pkg/inventory"
	"bookstock/pkg/log"
	"bookstock/pkg/router"

	"github.com/labstack/echo/v4"
)

// bindRow decodes a JSON request body into a row. The image column is
// carried as base64 text on the wire and decoded to raw bytes here.
func bindRow(ctx echo.Context) (inventory.Row, error) {
	row := inventory.Row{}
	if err := ctx.Bind(&row); err != nil {
		return nil, err
	}

	if encoded, ok := row[inventory.ColBookImage].(string); ok {
		blob, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, err
		}
		row[inventory.ColBookImage] = blob
	}

	return row, nil
}

// writeError maps a store or router failure onto an HTTP response.
// Storage failures have already been logged with context by the engine;
// nothing in this path panics or crashes the process.
func writeError(ctx echo.Context, err error) error {
	var invalidField inventory.InvalidFieldError
	if errors.As(err, &invalidField) {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid field value",
			"field": invalidField.Field,
		})
	}

	var unroutable router.UnroutableAddressError
	if errors.As(err, &unroutable) {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "unroutable address",
		})
	}

	if errors.Is(err, inventory.ErrSupplierReferenced) {
		return ctx.JSON(http.StatusConflict, map[string]string{
			"error": "supplier is referenced by existing books",
		})
	}

	log.Error().Err(err).Str("path", ctx.Request().URL.Path).Msg("Request failed")
	return ctx.JSON(http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}

// notFound is the shared empty-result response.
func notFound(ctx echo.Context, what string) error {
	return ctx.JSON(http.StatusNotFound, map[string]string{
		"error": what + " not found",
	})
}

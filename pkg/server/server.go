// Package server exposes the inventory resource addresses over HTTP.
// It is a UI collaborator of the store: every request is translated to
// an address and dispatched through the resource router.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookstock/pkg/log"
	"bookstock/pkg/router"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 10

// InventoryServer serves the inventory HTTP API.
type InventoryServer struct {
	echo      *echo.Echo
	router    *router.Router
	rateLimit rate.Limit
	version   string
}

// NewServer builds a server over the given router. rateLimit is the
// sustained per-client requests-per-second budget; zero disables
// limiting.
func NewServer(rt *router.Router, rateLimit float64, version string) *InventoryServer {
	return &InventoryServer{
		echo:      echo.New(),
		router:    rt,
		rateLimit: rate.Limit(rateLimit),
		version:   version,
	}
}

// Start runs the server until SIGINT/SIGTERM, then shuts down
// gracefully.
func (srv *InventoryServer) Start(addr string) error {
	srv.setupRoutes()

	go func() {
		log.Info().
			Str("addr", addr).
			Str("version", srv.version).
			Msg("Starting inventory server")

		if err := srv.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server startup failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	return srv.Shutdown()
}

// Shutdown stops the server, allowing in-flight requests to finish.
func (srv *InventoryServer) Shutdown() error {
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout*time.Second)
	defer cancel()

	if err := srv.echo.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
		return err
	}

	log.Info().Msg("Server gracefully stopped")
	return nil
}

func (srv *InventoryServer) setupRoutes() {
	srv.echo.HideBanner = true
	srv.echo.HidePort = true

	srv.echo.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} ${status} ${method} ${uri} (${latency_human})\n",
	}))
	srv.echo.Use(middleware.Recover())

	if srv.rateLimit > 0 {
		srv.echo.Use(middleware.RateLimiter(
			middleware.NewRateLimiterMemoryStore(srv.rateLimit)))
	}

	books := srv.echo.Group("/inventory/books")
	books.GET("", srv.listBooks)
	books.POST("", srv.createBook)
	books.DELETE("", srv.deleteAllBooks)
	books.GET("/detail/:id", srv.getBookDetail)
	books.GET("/:id", srv.getBook)
	books.PUT("/:id", srv.updateBook)
	books.DELETE("/:id", srv.deleteBook)

	suppliers := srv.echo.Group("/inventory/suppliers")
	suppliers.GET("", srv.listSuppliers)
	suppliers.POST("", srv.createSupplier)
	suppliers.DELETE("", srv.deleteAllSuppliers)
	suppliers.GET("/:id", srv.getSupplier)
	suppliers.PUT("/:id", srv.updateSupplier)
	suppliers.DELETE("/:id", srv.deleteSupplier)
}

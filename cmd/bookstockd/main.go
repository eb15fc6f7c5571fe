package main

import (
	"flag"

	"bookstock/pkg/config"
	"bookstock/pkg/inventory"
	"bookstock/pkg/log"
	"bookstock/pkg/router"
	"bookstock/pkg/server"
)

const version = "1.0.0"

func main() {
	configPath := flag.String("config", "", "Configuration file path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("config", *configPath).Msg("Failed to load configuration")
	}

	if cfg.Log.Debug {
		log.SetDebugMode()
	}

	// The store is constructed exactly once here and handed down; every
	// collaborator shares this instance for the life of the process.
	store, err := inventory.NewStoreWithOptions(cfg.Database.Path, &inventory.StoreOptions{
		GuardSupplierDeletes: cfg.Database.GuardSupplierDeletes,
		DestructiveMigration: cfg.Database.DestructiveMigration,
	})
	if err != nil {
		log.Fatal().Err(err).Str("db_path", cfg.Database.Path).Msg("Failed to open inventory store")
	}

	rt := router.New(store)
	srv := server.NewServer(rt, cfg.Server.RateLimit, version)

	if err := srv.Start(cfg.Server.Addr); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}

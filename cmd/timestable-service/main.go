package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"time"

	"times-table/internal/config"
	"times-table/internal/game"
	"times-table/internal/httpapi"
	"times-table/internal/theme"
	"times-table/internal/theme/sqlite"
)

func main() {
	var cfg config.Service
	if err := config.ParseEnv(&cfg); err != nil {
		config.Exitf("load config: %v", err)
	}

	addr := flag.String("addr", cfg.Addr, "HTTP listen address")
	dbPath := flag.String("db", cfg.DBPath, "SQLite database path for saved preferences")
	idle := flag.Duration("session-idle", cfg.SessionIdleTimeout, "drop sessions idle for this long (0 = never)")
	minOperand := flag.Int("min", cfg.Game.MinOperand, "default smallest factor")
	maxOperand := flag.Int("max", cfg.Game.MaxOperand, "default largest factor")
	length := flag.Int("length", cfg.Game.SessionLength, "default questions per session (0 = unlimited)")
	flag.Parse()

	store, err := sqlite.NewStore(*dbPath)
	if err != nil {
		log.Fatalf("open preference store: %v", err)
	}
	defer store.Close()

	defaults := game.Settings{MinOperand: *minOperand, MaxOperand: *maxOperand, Length: *length}
	api := httpapi.NewAPI(
		game.NewExpiringRegistry(*idle),
		theme.NewPreferences(store, httpapi.PrefersDarkFromContext),
		defaults,
	)

	server := &http.Server{
		Addr:              *addr,
		Handler:           httpapi.NewRouter(api, log.Default()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("timestable-service listening on %s (db=%s)", *addr, *dbPath)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}

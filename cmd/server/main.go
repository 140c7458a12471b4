package main

import (
	"flag"
	"log/slog"
	"os"

	"study-tracker/internal/config"
	"study-tracker/internal/handler"
	"study-tracker/internal/logger"
	"study-tracker/internal/service"
	"study-tracker/internal/store"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}

	st := store.NewGormStore(db)
	if err := st.Migrate(); err != nil {
		slog.Error("migrate failed", "err", err)
		os.Exit(1)
	}

	svc := service.NewTrackerService(st)
	h := handler.NewTrackerHandler(svc)
	r := handler.NewRouter(h)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}

package main

import (
	"log/slog"
	"os"

	_ "tutoring_queue/docs"
	"tutoring_queue/internal/auth"
	"tutoring_queue/internal/catalog"
	"tutoring_queue/internal/config"
	"tutoring_queue/internal/directory"
	"tutoring_queue/internal/handlers"
	"tutoring_queue/internal/ledger"
	"tutoring_queue/internal/notify"
	"tutoring_queue/internal/queue"
	"tutoring_queue/internal/storage"
	"tutoring_queue/internal/tasks"

	"gorm.io/gorm"
)

// @Title						Campus tutoring queue
// @Version					1.0
// @Description				Walk-in queues for tutoring services
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	dir := directory.New()
	cat := catalog.New()

	var db *gorm.DB
	loadedAccounts := 0
	if cfg.DB.Enabled() {
		db, err = storage.ConnectDatabase(cfg.DB)
		if err != nil {
			logger.Error("database", "err", err)
			os.Exit(1)
		}
		if loadedAccounts, err = dir.LoadFromDB(db); err != nil {
			logger.Error("load accounts", "err", err)
			os.Exit(1)
		}
		logger.Info("accounts loaded from database", "count", loadedAccounts)
	}

	seed, err := storage.LoadSeed(cfg.SeedFile)
	if err != nil {
		logger.Error("seed", "file", cfg.SeedFile, "err", err)
		os.Exit(1)
	}
	if err := seed.Apply(dir, cat, loadedAccounts == 0); err != nil {
		logger.Error("apply seed", "file", cfg.SeedFile, "err", err)
		os.Exit(1)
	}
	logger.Info("seed applied", "accounts", dir.Len(), "services", len(cat.List()))

	history := ledger.New()
	notices := notify.NewSink()
	store := queue.New(cat, history, notices, queue.WithLogger(logger))

	scheduler, err := tasks.InitScheduler(tasks.Schedules{
		CloseServices: cfg.CloseSchedule,
		QueueStats:    cfg.StatsSchedule,
	}, cat, store, logger)
	if err != nil {
		logger.Error("cron", "err", err)
		os.Exit(1)
	}
	defer scheduler.Stop()

	h := &handlers.Handler{
		Queue:     store,
		Catalog:   cat,
		Directory: dir,
		Ledger:    history,
		Notices:   notices,
		Issuer:    auth.NewIssuer(cfg.AccessSecret, cfg.RefreshSecret, cfg.AccessTTL, cfg.RefreshTTL),
		Logger:    logger,
		DB:        db,
	}

	r := h.Router(cfg.AllowedOrigins)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"invitelink/configs"
	"invitelink/configs/configsdatabase"
	"invitelink/configs/configslog"
	"invitelink/database"
	"invitelink/pkg/backup"
	"invitelink/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg, err := configs.Load()
	if err != nil {
		configslog.Log.Fatal("configuration error", zap.Error(err))
	}

	db := configsdatabase.MustConnect(cfg)
	if err := database.Initialize(db, true, cfg.SeedDemo); err != nil {
		configslog.Log.Fatal("database initialization failed", zap.Error(err))
	}

	engine := html.New(cfg.ViewsDir, ".html")
	app := fiber.New(fiber.Config{
		AppName: "invitelink",
		Views:   engine,
	})

	routes.SetupRoutes(app, db, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The backup task is a collaborator, not part of the core: it copies the
	// storage file on a timer and only applies to the sqlite engine.
	if cfg.BackupEnabled && cfg.DBDriver == "sqlite" {
		scheduler := backup.New(cfg.DBDSN, cfg.BackupDir, cfg.BackupInterval, cfg.BackupKeep)
		go scheduler.Run(ctx)
		configslog.SLog.Infow("backup scheduler running",
			"interval", cfg.BackupInterval, "dir", cfg.BackupDir, "keep", cfg.BackupKeep)
	}

	go func() {
		configslog.SLog.Infof("Server running at http://%s", cfg.Addr())
		if err := app.Listen(cfg.Addr()); err != nil {
			configslog.Log.Fatal("server stopped unexpectedly", zap.Error(err))
		}
	}()

	<-ctx.Done()
	configslog.SLog.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		configslog.Log.Error("graceful shutdown failed", zap.Error(err))
	}
}

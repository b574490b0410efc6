package main

import (
	"flag"

	"invitelink/configs"
	"invitelink/configs/configsdatabase"
	"invitelink/configs/configslog"
	"invitelink/database"

	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "Run database migrations")
	seedFlag := flag.Bool("seed", false, "Run database seeders")
	flag.Parse()

	cfg, err := configs.Load()
	if err != nil {
		configslog.Log.Fatal("configuration error", zap.Error(err))
	}

	db := configsdatabase.MustConnect(cfg)

	configslog.SLog.Info("Running database initialization...")
	if err := database.Initialize(db, *migrateFlag, *seedFlag); err != nil {
		configslog.Log.Fatal("database initialization failed", zap.Error(err))
	}
	configslog.SLog.Info("Database initialization finished.")
}

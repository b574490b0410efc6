package database

import (
	"invitelink/configs/configslog"
	"invitelink/database/migrations"
	"invitelink/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize runs migrations and seeders inside one transaction so a partial
// schema never survives a failed boot.
func Initialize(db *gorm.DB, migrate bool, seed bool) error {
	if !migrate && !seed {
		configslog.SLog.Info("Neither migrate nor seed requested, skipping database initialization.")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if migrate {
			configslog.SLog.Info("Running migrations...")
			if err := RunMigrationsInOrder(tx); err != nil {
				configslog.Log.Error("Migration failed", zap.Error(err))
				return err
			}
			configslog.SLog.Info("Migrations completed.")
		}

		if seed {
			configslog.SLog.Info("Running seeders...")
			if err := seeders.SeedDemoInvitation(tx); err != nil {
				configslog.Log.Error("Seeding failed", zap.Error(err))
				return err
			}
			configslog.SLog.Info("Seeders completed.")
		}

		return nil
	})
}

// RunMigrationsInOrder migrates the two tables. Order matters only for
// readability here; the slug reference between them is soft, not a foreign
// key.
func RunMigrationsInOrder(db *gorm.DB) error {
	if err := migrations.MigrateInvitationsTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateRSVPResponsesTable(db); err != nil {
		return err
	}
	return nil
}

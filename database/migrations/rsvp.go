package migrations

import (
	"invitelink/configs/configslog"
	"invitelink/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateRSVPResponsesTable creates or updates the rsvp_responses table. The
// unique index on slug is what makes the submit upsert a safe conflict
// target.
func MigrateRSVPResponsesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating rsvp_responses table...")
	if err := db.AutoMigrate(&models.RSVPResponse{}); err != nil {
		configslog.Log.Error("Failed to migrate rsvp_responses table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Rsvp_responses table migrated successfully")
	return nil
}

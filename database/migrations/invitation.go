package migrations

import (
	"invitelink/configs/configslog"
	"invitelink/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateInvitationsTable creates or updates the invitations table. The
// unique index on slug created here is the correctness authority for slug
// uniqueness.
func MigrateInvitationsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating invitations table...")
	if err := db.AutoMigrate(&models.Invitation{}); err != nil {
		configslog.Log.Error("Failed to migrate invitations table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Invitations table migrated successfully")
	return nil
}

package seeders

import (
	"invitelink/configs/configslog"
	"invitelink/models"

	"gorm.io/gorm"
)

// SeedDemoInvitation drops a known invitation into an empty database so a
// fresh development install has something to open at /demo1. It never touches
// an existing row.
func SeedDemoInvitation(db *gorm.DB) error {
	demo := models.Invitation{
		Slug:          "demo1",
		Name:          "Demo Guest",
		Pronoun:       "they",
		Message:       "You are warmly invited. This is the seeded demo invitation.",
		InviteToParty: true,
	}
	err := db.Where(models.Invitation{Slug: demo.Slug}).FirstOrCreate(&demo).Error
	if err != nil {
		return err
	}
	configslog.SLog.Infow("demo invitation present", "slug", demo.Slug, "id", demo.ID)
	return nil
}

package services

import (
	"os"
	"testing"

	"invitelink/configs/configslog"
	"invitelink/models"
	"invitelink/pkg/slug"
	"invitelink/repositories"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	defer configslog.SyncLogger()
	os.Exit(m.Run())
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Invitation{}, &models.RSVPResponse{}))
	return db
}

// newInvitationService wires a service onto a fresh database and returns the
// concrete struct so tests can swap the slug generator.
func newInvitationService(t *testing.T) (*InvitationService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return &InvitationService{
		repo:         repositories.NewInvitationRepository(db),
		generateSlug: slug.Generate,
	}, db
}

package impl

import (
	"testing"

	"github.com/appleman9709/bcb-with-db/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB поднимает чистую in-memory базу на каждый тест.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Family{},
		&models.FamilyMember{},
		&models.Feeding{},
		&models.Diaper{},
		&models.Bath{},
		&models.Activity{},
		&models.SleepSession{},
		&models.Settings{},
	))
	return db
}

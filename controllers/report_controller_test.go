package controllers

import (
	"testing"

	"github.com/lapor-desu/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupReportDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=1"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Category{}, &models.Report{}))
	return db
}

func TestReloadWithRelations(t *testing.T) {
	db := setupReportDB(t)

	user := models.User{Name: "Ujang Lapor", Email: "ujang@warga.com", Password: "x", Role: models.RoleReporter}
	require.NoError(t, db.Create(&user).Error)
	category := models.Category{Name: "Jalan Rusak"}
	require.NoError(t, db.Create(&category).Error)
	report := models.Report{
		Title:      "Lubang Besar Depan Gedung Sate",
		Latitude:   -6.902481,
		Longitude:  107.618810,
		Status:     models.StatusPending,
		UserID:     user.ID,
		CategoryID: category.ID,
	}
	require.NoError(t, db.Create(&report).Error)

	rc := NewReportController(db, nil)

	reloaded := rc.reloadWithRelations(models.Report{ID: report.ID})
	assert.Equal(t, report.Title, reloaded.Title)
	assert.Equal(t, "Ujang Lapor", reloaded.User.Name)
	assert.Equal(t, "Jalan Rusak", reloaded.Category.Name)

	// When the re-read fails the record we already hold comes back unchanged
	require.NoError(t, db.Migrator().DropTable(&models.Report{}))
	kept := rc.reloadWithRelations(report)
	assert.Equal(t, report.ID, kept.ID)
	assert.Equal(t, report.Title, kept.Title)
	assert.Equal(t, report.UserID, kept.UserID)
}

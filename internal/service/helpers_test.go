package service

import (
	"testing"

	"recipe-go/internal/config"
	"recipe-go/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB 为每个测试打开独立的内存数据库
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开内存数据库失败: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Token{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
	); err != nil {
		t.Fatalf("迁移失败: %v", err)
	}

	return db
}

// testConfig 测试用配置
func testConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		User:  config.UserConfig{MinPasswordLength: 5},
		Token: config.TokenConfig{ExpireHours: 720},
		Upload: config.UploadConfig{
			Root:      t.TempDir(),
			MaxSizeMB: 10,
		},
	}
}

package database

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/uzbeknews/core/internal/config"
	"github.com/uzbeknews/core/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database and runs auto-migration.
//
// The DSN selects the driver: "file:..." (or a bare *.db path) opens an
// embedded SQLite database, anything else is treated as a MySQL DSN.
func Connect(cfg *config.AppConfig) (*gorm.DB, error) {
	db, err := open(cfg)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}

func open(cfg *config.AppConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.IsDev() {
		logLevel = logger.Info
	}
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var dialector gorm.Dialector
	if cfg.UsesSQLite() {
		dialector = sqlite.Open(strings.TrimPrefix(cfg.DSN, "file:"))
	} else {
		dialector = mysql.New(mysql.Config{DSN: cfg.DSN, DefaultStringSize: 191})
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return db, nil
}

// migrate runs GORM auto-migration for all models.
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.ArticleModel{},
	)
}

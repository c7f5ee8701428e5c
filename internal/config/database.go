package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"alfredoptarigan/cv-tailor/internal/models"
)

// InitDatabase opens the Postgres connection, sizes its pool and migrates the
// document and tailoring result tables.
func InitDatabase(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDatabaseDSN()), gormConfig(cfg.Server.Env))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := configurePool(db, cfg.Database); err != nil {
		return nil, err
	}
	log.Printf("✅ Database connected (%s:%s/%s, max %d open conns)\n",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName, cfg.Database.MaxOpenConns)

	if err := db.AutoMigrate(&models.Document{}, &models.TailoringResult{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Println("✅ Database migration completed")

	return db, nil
}

// gormConfig logs SQL only in development.
func gormConfig(env string) *gorm.Config {
	logLevel := logger.Silent
	if env == "development" {
		logLevel = logger.Info
	}

	return &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	}
}

// configurePool applies the pool limits to the underlying sql.DB. Zero values
// keep database/sql defaults.
func configurePool(db *gorm.DB, cfg DatabaseConfig) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return nil
}

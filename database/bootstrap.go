// database/bootstrap.go
package database

import (
	"context"
	"fmt"
	"log"
	"time"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hempdb/config"
	"hempdb/entities"
)

// Open is the single connection factory: driver and DSN come from config,
// the pool is bounded, the first ping has a hard timeout, and a failed open
// is retried exactly once before giving up.
func Open(cfg config.AppConfig) (*gorm.DB, error) {
	if cfg.DBDriver != "sqlite" && cfg.DBDriver != "postgres" {
		return nil, fmt.Errorf("unknown db driver %q", cfg.DBDriver)
	}
	db, err := open(cfg)
	if err != nil {
		log.Printf("[db] open failed, retrying once: %v", err)
		time.Sleep(2 * time.Second)
		db, err = open(cfg)
	}
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&entities.User{},
		&entities.PlantType{},
		&entities.PlantPart{},
		&entities.Industry{},
		&entities.SubIndustry{},
		&entities.HempProduct{},
		&entities.ResearchPaper{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}

func open(cfg config.AppConfig) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dial = sqlite.Open(cfg.DBPath)
	case "postgres":
		dial = postgres.Open(cfg.PostgresDSN())
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxConns / 2)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DBConnTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}
	return db, nil
}

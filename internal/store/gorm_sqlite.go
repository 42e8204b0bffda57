// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
	_ "github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// profileRow gives the singleton profile a primary key for gorm.
type profileRow struct {
	ID             int `gorm:"column:id;primaryKey;autoIncrement:false"`
	models.Profile `gorm:"embedded"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (profileRow) TableName() string {
	return "profile"
}

// NewConnectGormSQLite opens the single-file content database through gorm
// and brings the schema up to date with AutoMigrate.
func NewConnectGormSQLite(ctx context.Context, dsn string, log *logger.Logger) (*gorm.DB, error) {
	path := strings.TrimPrefix(dsn, "sqlite://")
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				log.Err(err).Str("func", "NewConnectGormSQLite").Msg("error creating database directory")
				return nil, fmt.Errorf("error creating database directory: %w", err)
			}
		}
	}

	sqlDB, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Err(err).Str("func", "NewConnectGormSQLite").Msg("error opening sqlite database")
		return nil, fmt.Errorf("error opening sqlite database: %w", err)
	}
	// sqlite allows one writer; one connection also keeps :memory: alive
	sqlDB.SetMaxOpenConns(1)

	if err = sqlDB.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectGormSQLite").Msg("error connecting database (ping)")
		_ = sqlDB.Close()
		return nil, err
	}

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		log.Err(err).Str("func", "NewConnectGormSQLite").Msg("error initialising gorm")
		_ = sqlDB.Close()
		return nil, fmt.Errorf("error initialising gorm: %w", err)
	}

	if err = db.WithContext(ctx).AutoMigrate(&profileRow{}, &models.Project{}, &models.Resource{}, &models.Message{}); err != nil {
		log.Err(err).Str("func", "NewConnectGormSQLite").Msg("error migrating schema")
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	log.Info().Str("func", "NewConnectGormSQLite").Str("path", path).Msg("connected to database successfully")

	return db, nil
}

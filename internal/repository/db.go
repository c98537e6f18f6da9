package repository

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskboard/internal/model"
)

// NewDB opens a SQLite database, runs migrations and seeds the fixed
// status/priority rows plus demo content on first run.
func NewDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = "taskboard.db"
	}

	if err := ensureDirForSQLite(dsn); err != nil {
		return nil, err
	}

	dbLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: dbLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Status{},
		&model.Priority{},
		&model.Task{},
	); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	if err := seed(db); err != nil {
		return nil, fmt.Errorf("seed db: %w", err)
	}

	return db, nil
}

// seed fills an empty database with the fixed status/priority sets and a
// demo account (demo@demo.com / demo) with a couple of categories and one
// example task. Re-runs are no-ops.
func seed(db *gorm.DB) error {
	var statusCount int64
	if err := db.Model(&model.Status{}).Count(&statusCount).Error; err != nil {
		return err
	}
	if statusCount == 0 {
		if err := db.Create(model.Statuses()).Error; err != nil {
			return err
		}
		if err := db.Create(model.Priorities()).Error; err != nil {
			return err
		}
	}

	var userCount int64
	if err := db.Model(&model.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	demo := model.User{Name: "Demo User", Email: "demo@demo.com", PasswordHash: string(hash)}
	if err := db.Create(&demo).Error; err != nil {
		return err
	}

	personal := model.Category{UserID: demo.ID, Name: "Personal"}
	work := model.Category{UserID: demo.ID, Name: "Work"}
	if err := db.Create(&personal).Error; err != nil {
		return err
	}
	if err := db.Create(&work).Error; err != nil {
		return err
	}

	desc := "This is a seeded task"
	task := model.Task{
		UserID:      demo.ID,
		CategoryID:  &work.ID,
		StatusID:    model.StatusTodo,
		PriorityID:  model.PriorityMedium,
		Title:       "First task",
		Description: &desc,
	}
	return db.Create(&task).Error
}

// ensureDirForSQLite creates the parent dir for the SQLite file if needed.
func ensureDirForSQLite(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}

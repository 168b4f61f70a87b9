// Package session is the durable local key-value storage holding the
// sanitized user record for the current session.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cyclegear/storefront/internal/models"
)

const userKey = "user"

type record struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (record) TableName() string {
	return "session_records"
}

type Store struct {
	db *gorm.DB
}

func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("session: open %q: %w", path, err)
	}
	return New(db)
}

func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("session: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Save(ctx context.Context, u models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("session: marshal user: %w", err)
	}
	rec := record{Key: userKey, Value: data, UpdatedAt: time.Now()}
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&rec).Error; err != nil {
		return fmt.Errorf("session: save: %w", err)
	}
	return nil
}

// Load reads the persisted user record. A missing row or a payload that
// does not parse both come back as (zero, false, nil); the bad row is
// dropped so the next restore starts clean.
func (s *Store) Load(ctx context.Context) (models.User, bool, error) {
	var rec record
	err := s.db.WithContext(ctx).Where("key = ?", userKey).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, fmt.Errorf("session: load: %w", err)
	}

	var u models.User
	if err := json.Unmarshal(rec.Value, &u); err != nil {
		_ = s.Clear(ctx)
		return models.User{}, false, nil
	}
	if u.ID == 0 || u.Email == "" {
		_ = s.Clear(ctx)
		return models.User{}, false, nil
	}
	return u, true, nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := s.db.WithContext(ctx).
		Where("key = ?", userKey).
		Delete(&record{}).Error; err != nil {
		return fmt.Errorf("session: clear: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

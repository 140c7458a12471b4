package store

import (
	"context"
	"errors"
	"fmt"

	"study-tracker/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

// Migrate creates the users table when missing.
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(&model.User{})
}

func (s *GormStore) FindUser(ctx context.Context, name string) (*model.User, error) {
	var u model.User
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}

func (s *GormStore) SaveUser(ctx context.Context, u *model.User) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(u).Error
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

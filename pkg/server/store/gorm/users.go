package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/annie-elequin/pawgress/pkg/model"
	"github.com/annie-elequin/pawgress/pkg/server/store"
)

// Ensure UsersStore implements store.UsersStore
var _ store.UsersStore = (*UsersStore)(nil)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db *gorm.DB
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB) *UsersStore {
	return &UsersStore{db: db}
}

// FindByEmail looks a user up by login email.
func (s *UsersStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// FetchUser retrieves a user with their pets, newest first.
func (s *UsersStore) FetchUser(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	tx := s.db.WithContext(ctx).
		Preload("Pets", func(db *gorm.DB) *gorm.DB { return db.Order("created_at desc") }).
		Where("id = ?", id).
		First(&user)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return &user, nil
}

// CreateUser inserts a new user.
func (s *UsersStore) CreateUser(ctx context.Context, user *model.User) error {
	return translate(s.db.WithContext(ctx).Create(user).Error)
}

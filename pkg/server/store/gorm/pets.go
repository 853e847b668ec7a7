package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/annie-elequin/pawgress/pkg/model"
	"github.com/annie-elequin/pawgress/pkg/server/store"
)

// Ensure PetsStore implements store.PetsStore
var _ store.PetsStore = (*PetsStore)(nil)

var petColumns = []string{"name", "type", "breed", "birthdate", "age", "photo", "notes"}

// PetsStore implements store.PetsStore using GORM
type PetsStore struct {
	db *gorm.DB
}

// NewPetsStore creates a new PetsStore
func NewPetsStore(db *gorm.DB) *PetsStore {
	return &PetsStore{db: db}
}

// ListPets returns a user's pets, newest first.
func (s *PetsStore) ListPets(ctx context.Context, userID string, filter store.PetFilter) ([]model.Pet, error) {
	pets := []model.Pet{}
	tx := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Type != nil {
		tx = tx.Where("type = ?", *filter.Type)
	}
	if err := tx.Order("created_at desc").Find(&pets).Error; err != nil {
		return nil, translate(err)
	}
	return pets, nil
}

// FetchPet retrieves a pet with its activities in schedule order.
func (s *PetsStore) FetchPet(ctx context.Context, id string) (*model.Pet, error) {
	var pet model.Pet
	tx := s.db.WithContext(ctx).
		Preload("Activities", func(db *gorm.DB) *gorm.DB { return db.Order("scheduled_for asc") }).
		Where("id = ?", id).
		First(&pet)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return &pet, nil
}

// CreatePet inserts a new pet.
func (s *PetsStore) CreatePet(ctx context.Context, pet *model.Pet) error {
	return translate(s.db.WithContext(ctx).Create(pet).Error)
}

// UpdatePet writes every mutable field of pet. Associations are not touched.
func (s *PetsStore) UpdatePet(ctx context.Context, pet *model.Pet) error {
	return affected(s.db.WithContext(ctx).Model(pet).Select(petColumns).Updates(pet))
}

// DeletePet removes a pet. Activities go with it through the foreign key.
func (s *PetsStore) DeletePet(ctx context.Context, id string) error {
	return affected(s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Pet{}))
}

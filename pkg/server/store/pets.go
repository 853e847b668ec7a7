package store

import (
	"context"

	"github.com/annie-elequin/pawgress/pkg/model"
)

// PetFilter narrows ListPets.
type PetFilter struct {
	// Type restricts the listing to one species when set.
	Type *model.PetType
}

// PetsStore abstracts pet storage. Dogs are pets of type DOG.
type PetsStore interface {
	// ListPets returns a user's pets, newest first.
	ListPets(ctx context.Context, userID string, filter PetFilter) ([]model.Pet, error)

	// FetchPet retrieves a pet with its activities.
	FetchPet(ctx context.Context, id string) (*model.Pet, error)

	CreatePet(ctx context.Context, pet *model.Pet) error

	// UpdatePet writes every mutable field of pet.
	UpdatePet(ctx context.Context, pet *model.Pet) error

	// DeletePet removes a pet and its activities.
	DeletePet(ctx context.Context, id string) error
}

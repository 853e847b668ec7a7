package model

import "time"

//go:generate go run github.com/dmarkham/enumer -type PetType -trimprefix PetType -transform upper -json -sql -output pet_type_enumer.go

// PetType is the species of a pet.
type PetType int

const (
	PetTypeDog PetType = iota
	PetTypeCat
	PetTypeOther
)

// Pet represents an animal owned by a user.
type Pet struct {
	ID        string     `gorm:"column:id;primaryKey" json:"id"`
	Name      string     `gorm:"column:name" json:"name"`
	Type      PetType    `gorm:"column:type" json:"type"`
	Breed     string     `gorm:"column:breed" json:"breed"`
	Birthdate *time.Time `gorm:"column:birthdate" json:"birthdate"`
	Age       *int       `gorm:"column:age" json:"age"`
	Photo     string     `gorm:"column:photo" json:"photo"`
	Notes     string     `gorm:"column:notes" json:"notes"`
	UserID    string     `gorm:"column:user_id;not null" json:"userId"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"column:updated_at" json:"updatedAt"`

	Activities []Activity `gorm:"foreignKey:PetID" json:"activities,omitempty"`
}

func (Pet) TableName() string {
	return "pets"
}

func (p Pet) Owner() string {
	return p.UserID
}

// IsDog reports whether the pet is visible through the dogs API.
func (p Pet) IsDog() bool {
	return p.Type == PetTypeDog
}

package model

import "time"

// User is the persisted credential and profile of a pet owner.
type User struct {
	ID           string    `gorm:"column:id;primaryKey" json:"id"`
	Email        string    `gorm:"column:email;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	Name         string    `gorm:"column:name" json:"name"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updatedAt"`

	Pets []Pet `gorm:"foreignKey:UserID" json:"pets,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Owner returns the user's own id; a user record is owned by itself.
func (u User) Owner() string {
	return u.ID
}

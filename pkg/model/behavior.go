package model

import "time"

// Behavior is a training behavior a user works on with their dogs.
type Behavior struct {
	ID          string    `gorm:"column:id;primaryKey" json:"id"`
	Title       string    `gorm:"column:title" json:"title"`
	Description string    `gorm:"column:description" json:"description"`
	Category    string    `gorm:"column:category" json:"category"`
	UserID      string    `gorm:"column:user_id;not null" json:"userId"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Behavior) TableName() string {
	return "behaviors"
}

func (b Behavior) Owner() string {
	return b.UserID
}

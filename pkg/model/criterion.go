package model

import "time"

//go:generate go run github.com/dmarkham/enumer -type Difficulty -trimprefix Difficulty -transform lower -json -sql -output difficulty_enumer.go

// Difficulty grades a training criterion.
type Difficulty int

const (
	DifficultyBeginner Difficulty = iota
	DifficultyIntermediate
	DifficultyAdvanced
)

// Criterion is a measurable training criterion. Difficulty is optional.
type Criterion struct {
	ID          string      `gorm:"column:id;primaryKey" json:"id"`
	Name        string      `gorm:"column:name" json:"name"`
	Description string      `gorm:"column:description" json:"description"`
	Difficulty  *Difficulty `gorm:"column:difficulty" json:"difficulty"`
	Notes       string      `gorm:"column:notes" json:"notes"`
	UserID      string      `gorm:"column:user_id;not null" json:"userId"`
	CreatedAt   time.Time   `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time   `gorm:"column:updated_at" json:"updatedAt"`
}

func (Criterion) TableName() string {
	return "criteria"
}

func (c Criterion) Owner() string {
	return c.UserID
}

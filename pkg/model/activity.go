package model

import "time"

// Activity is a scheduled activity (walk, training session, vet visit...)
// for a pet. It has no owner column of its own.
type Activity struct {
	ID           string    `gorm:"column:id;primaryKey" json:"id"`
	Type         string    `gorm:"column:type" json:"type"`
	Notes        string    `gorm:"column:notes" json:"notes"`
	PetID        string    `gorm:"column:pet_id;not null" json:"petId"`
	ScheduledFor time.Time `gorm:"column:scheduled_for" json:"scheduledFor"`
	Completed    bool      `gorm:"column:completed" json:"completed"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updatedAt"`

	Pet *Pet `gorm:"foreignKey:PetID" json:"pet,omitempty"`
}

func (Activity) TableName() string {
	return "activities"
}

// Owner resolves ownership through the parent pet. An activity loaded
// without its pet has no owner and is never authorized.
func (a Activity) Owner() string {
	if a.Pet == nil {
		return ""
	}
	return a.Pet.UserID
}

package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/annie-elequin/pawgress/pkg/model"
	"github.com/annie-elequin/pawgress/pkg/server/store"
)

// Ensure ActivitiesStore implements store.ActivitiesStore
var _ store.ActivitiesStore = (*ActivitiesStore)(nil)

var activityColumns = []string{"type", "notes", "scheduled_for", "completed"}

// ActivitiesStore implements store.ActivitiesStore using GORM
type ActivitiesStore struct {
	db *gorm.DB
}

// NewActivitiesStore creates a new ActivitiesStore
func NewActivitiesStore(db *gorm.DB) *ActivitiesStore {
	return &ActivitiesStore{db: db}
}

// FetchActivity retrieves an activity with its pet.
func (s *ActivitiesStore) FetchActivity(ctx context.Context, id string) (*model.Activity, error) {
	var activity model.Activity
	if err := s.db.WithContext(ctx).Preload("Pet").Where("id = ?", id).First(&activity).Error; err != nil {
		return nil, translate(err)
	}
	return &activity, nil
}

// CreateActivity inserts a new activity. The Pet association is not written.
func (s *ActivitiesStore) CreateActivity(ctx context.Context, activity *model.Activity) error {
	return translate(s.db.WithContext(ctx).Omit("Pet").Create(activity).Error)
}

// UpdateActivity writes every mutable field of activity.
func (s *ActivitiesStore) UpdateActivity(ctx context.Context, activity *model.Activity) error {
	return affected(s.db.WithContext(ctx).Model(activity).Select(activityColumns).Updates(activity))
}

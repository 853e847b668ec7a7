package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/annie-elequin/pawgress/pkg/model"
	"github.com/annie-elequin/pawgress/pkg/server/store"
)

// Ensure BehaviorsStore implements store.BehaviorsStore
var _ store.BehaviorsStore = (*BehaviorsStore)(nil)

var behaviorColumns = []string{"title", "description", "category"}

// BehaviorsStore implements store.BehaviorsStore using GORM
type BehaviorsStore struct {
	db *gorm.DB
}

// NewBehaviorsStore creates a new BehaviorsStore
func NewBehaviorsStore(db *gorm.DB) *BehaviorsStore {
	return &BehaviorsStore{db: db}
}

func (s *BehaviorsStore) ListBehaviors(ctx context.Context, userID string) ([]model.Behavior, error) {
	behaviors := []model.Behavior{}
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&behaviors).Error
	if err != nil {
		return nil, translate(err)
	}
	return behaviors, nil
}

func (s *BehaviorsStore) FetchBehavior(ctx context.Context, id string) (*model.Behavior, error) {
	var behavior model.Behavior
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&behavior).Error; err != nil {
		return nil, translate(err)
	}
	return &behavior, nil
}

func (s *BehaviorsStore) CreateBehavior(ctx context.Context, behavior *model.Behavior) error {
	return translate(s.db.WithContext(ctx).Create(behavior).Error)
}

func (s *BehaviorsStore) UpdateBehavior(ctx context.Context, behavior *model.Behavior) error {
	return affected(s.db.WithContext(ctx).Model(behavior).Select(behaviorColumns).Updates(behavior))
}

func (s *BehaviorsStore) DeleteBehavior(ctx context.Context, id string) error {
	return affected(s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Behavior{}))
}

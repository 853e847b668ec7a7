package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/annie-elequin/pawgress/pkg/model"
	"github.com/annie-elequin/pawgress/pkg/server/store"
)

// Ensure CriteriaStore implements store.CriteriaStore
var _ store.CriteriaStore = (*CriteriaStore)(nil)

var criterionColumns = []string{"name", "description", "difficulty", "notes"}

// CriteriaStore implements store.CriteriaStore using GORM
type CriteriaStore struct {
	db *gorm.DB
}

// NewCriteriaStore creates a new CriteriaStore
func NewCriteriaStore(db *gorm.DB) *CriteriaStore {
	return &CriteriaStore{db: db}
}

func (s *CriteriaStore) ListCriteria(ctx context.Context, userID string) ([]model.Criterion, error) {
	criteria := []model.Criterion{}
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&criteria).Error
	if err != nil {
		return nil, translate(err)
	}
	return criteria, nil
}

func (s *CriteriaStore) FetchCriterion(ctx context.Context, id string) (*model.Criterion, error) {
	var criterion model.Criterion
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&criterion).Error; err != nil {
		return nil, translate(err)
	}
	return &criterion, nil
}

func (s *CriteriaStore) CreateCriterion(ctx context.Context, criterion *model.Criterion) error {
	return translate(s.db.WithContext(ctx).Create(criterion).Error)
}

func (s *CriteriaStore) UpdateCriterion(ctx context.Context, criterion *model.Criterion) error {
	return affected(s.db.WithContext(ctx).Model(criterion).Select(criterionColumns).Updates(criterion))
}

func (s *CriteriaStore) DeleteCriterion(ctx context.Context, id string) error {
	return affected(s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Criterion{}))
}

package store

import (
	"context"

	"github.com/annie-elequin/pawgress/pkg/model"
)

// CriteriaStore abstracts training criterion storage
type CriteriaStore interface {
	// ListCriteria returns a user's criteria, newest first.
	ListCriteria(ctx context.Context, userID string) ([]model.Criterion, error)
	FetchCriterion(ctx context.Context, id string) (*model.Criterion, error)
	CreateCriterion(ctx context.Context, criterion *model.Criterion) error
	UpdateCriterion(ctx context.Context, criterion *model.Criterion) error
	DeleteCriterion(ctx context.Context, id string) error
}

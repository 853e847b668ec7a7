package store

import (
	"context"

	"github.com/annie-elequin/pawgress/pkg/model"
)

// BehaviorsStore abstracts training behavior storage
type BehaviorsStore interface {
	// ListBehaviors returns a user's behaviors, newest first.
	ListBehaviors(ctx context.Context, userID string) ([]model.Behavior, error)
	FetchBehavior(ctx context.Context, id string) (*model.Behavior, error)
	CreateBehavior(ctx context.Context, behavior *model.Behavior) error
	UpdateBehavior(ctx context.Context, behavior *model.Behavior) error
	DeleteBehavior(ctx context.Context, id string) error
}

package store

import (
	"context"

	"github.com/annie-elequin/pawgress/pkg/model"
)

// ActivitiesStore abstracts activity storage
type ActivitiesStore interface {
	// FetchActivity retrieves an activity together with its pet, which
	// carries the owner.
	FetchActivity(ctx context.Context, id string) (*model.Activity, error)

	CreateActivity(ctx context.Context, activity *model.Activity) error

	// UpdateActivity writes every mutable field of activity.
	UpdateActivity(ctx context.Context, activity *model.Activity) error
}

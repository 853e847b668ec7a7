package plan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gorm.io/gorm"

	"github.com/annie-elequin/pawgress/pkg/model"
	gormstore "github.com/annie-elequin/pawgress/pkg/server/store/gorm"
)

// errDryRun rolls back the transaction of a dry run.
var errDryRun = errors.New("dry run")

// LoadResult counts the records a plan created.
type LoadResult struct {
	Dogs      int  `json:"dogs"`
	Behaviors int  `json:"behaviors"`
	Criteria  int  `json:"criteria"`
	DryRun    bool `json:"dry_run"`
}

// Loader handles loading plans into the database
type Loader struct {
	db     *gorm.DB
	userID string
	dryRun bool
}

// NewLoader creates a loader that assigns every record to userID.
func NewLoader(db *gorm.DB, userID string) *Loader {
	return &Loader{db: db, userID: userID}
}

// WithDryRun sets whether to validate only without applying changes
func (l *Loader) WithDryRun(dryRun bool) *Loader {
	l.dryRun = dryRun
	return l
}

// LoadFromReader parses and loads a plan from an io.Reader
func (l *Loader) LoadFromReader(ctx context.Context, r io.Reader) (*LoadResult, error) {
	statements, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return l.Load(ctx, statements)
}

// LoadFromString parses and loads a plan from a string
func (l *Loader) LoadFromString(ctx context.Context, text string) (*LoadResult, error) {
	return l.LoadFromReader(ctx, strings.NewReader(text))
}

// Load creates every statement in one transaction.
func (l *Loader) Load(ctx context.Context, statements Statements) (*LoadResult, error) {
	if l.userID == "" {
		return nil, errors.New("plan: user is required")
	}

	result := &LoadResult{DryRun: l.dryRun}

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pets := gormstore.NewPetsStore(tx)
		behaviors := gormstore.NewBehaviorsStore(tx)
		criteria := gormstore.NewCriteriaStore(tx)

		for i, stmt := range statements {
			var err error
			switch s := stmt.(type) {
			case Dog:
				err = pets.CreatePet(ctx, &model.Pet{
					ID:     model.NewID(),
					Name:   strings.TrimSpace(s.Name),
					Type:   model.PetTypeDog,
					Breed:  s.Breed,
					Age:    s.Age,
					Notes:  s.Notes,
					UserID: l.userID,
				})
				result.Dogs++
			case Behavior:
				err = behaviors.CreateBehavior(ctx, &model.Behavior{
					ID:          model.NewID(),
					Title:       strings.TrimSpace(s.Title),
					Description: s.Description,
					Category:    s.Category,
					UserID:      l.userID,
				})
				result.Behaviors++
			case Criterion:
				var difficulty *model.Difficulty
				if difficulty, err = s.difficulty(); err != nil {
					break
				}
				err = criteria.CreateCriterion(ctx, &model.Criterion{
					ID:          model.NewID(),
					Name:        strings.TrimSpace(s.Name),
					Description: s.Description,
					Difficulty:  difficulty,
					Notes:       s.Notes,
					UserID:      l.userID,
				})
				result.Criteria++
			default:
				err = fmt.Errorf("unsupported statement %T", stmt)
			}
			if err != nil {
				return fmt.Errorf("statement %d (%s): %w", i+1, stmt.Kind(), err)
			}
		}

		if l.dryRun {
			return errDryRun
		}
		return nil
	})

	if errors.Is(err, errDryRun) {
		return result, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

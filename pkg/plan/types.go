package plan

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/annie-elequin/pawgress/pkg/model"
)

// Statement is one tagged entry of a plan.
type Statement interface {
	Kind() Kind
	validate() error
}

type Dog struct {
	Name  string `yaml:"name"`
	Breed string `yaml:"breed,omitempty"`
	Age   *int   `yaml:"age,omitempty"`
	Notes string `yaml:"notes,omitempty"`
}

func (Dog) Kind() Kind { return KindDog }

// UnmarshalYAML for Dog handles both scalar (just the name) and mapping forms
func (d *Dog) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		d.Name = value.Value
		return nil
	}
	type dogAlias Dog
	return value.Decode((*dogAlias)(d))
}

func (d Dog) validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.New("name is required")
	}
	if d.Age != nil && *d.Age < 0 {
		return errors.New("age must not be negative")
	}
	return nil
}

type Behavior struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Category    string `yaml:"category,omitempty"`
}

func (Behavior) Kind() Kind { return KindBehavior }

// UnmarshalYAML for Behavior handles both scalar (just the title) and mapping forms
func (b *Behavior) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		b.Title = value.Value
		return nil
	}
	type behaviorAlias Behavior
	return value.Decode((*behaviorAlias)(b))
}

func (b Behavior) validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return errors.New("title is required")
	}
	return nil
}

type Criterion struct {
	Name            string `yaml:"name"`
	Description     string `yaml:"description,omitempty"`
	DifficultyLevel string `yaml:"difficultyLevel,omitempty"`
	Notes           string `yaml:"notes,omitempty"`
}

func (Criterion) Kind() Kind { return KindCriterion }

// UnmarshalYAML for Criterion handles both scalar (just the name) and mapping forms
func (c *Criterion) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		c.Name = value.Value
		return nil
	}
	type criterionAlias Criterion
	return value.Decode((*criterionAlias)(c))
}

func (c Criterion) validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name is required")
	}
	_, err := c.difficulty()
	return err
}

func (c Criterion) difficulty() (*model.Difficulty, error) {
	if c.DifficultyLevel == "" {
		return nil, nil
	}
	d, err := model.DifficultyString(strings.ToLower(c.DifficultyLevel))
	if err != nil {
		return nil, fmt.Errorf("difficultyLevel must be one of %s", strings.Join(model.DifficultyStrings(), ", "))
	}
	return &d, nil
}

// Statements is the top-level sequence of a plan document.
type Statements []Statement

func (s *Statements) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: a plan must be a sequence of statements", value.Line)
	}

	var statements []Statement
	for _, node := range value.Content {
		var statement Statement

		switch node.Tag {
		case KindDog.Tag():
			var dog Dog
			if err := node.Decode(&dog); err != nil {
				return err
			}
			statement = dog
		case KindBehavior.Tag():
			var behavior Behavior
			if err := node.Decode(&behavior); err != nil {
				return err
			}
			statement = behavior
		case KindCriterion.Tag():
			var criterion Criterion
			if err := node.Decode(&criterion); err != nil {
				return err
			}
			statement = criterion
		default:
			return fmt.Errorf("line %d: unknown statement tag %q", node.Line, node.Tag)
		}

		if err := statement.validate(); err != nil {
			return fmt.Errorf("line %d: %s: %w", node.Line, statement.Kind(), err)
		}
		statements = append(statements, statement)
	}

	*s = statements
	return nil
}

package plan

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Parse reads a plan document.
func Parse(r io.Reader) (Statements, error) {
	var statements Statements
	if err := yaml.NewDecoder(r).Decode(&statements); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("plan is empty")
		}
		return nil, fmt.Errorf("failed to parse plan: %w", err)
	}
	return statements, nil
}

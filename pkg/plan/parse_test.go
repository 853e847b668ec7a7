package plan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	statements, err := Parse(strings.NewReader(`
- !dog
  name: Rex
  breed: Beagle
  age: 3
- !behavior
  title: Sit
  description: Hold for **five** seconds
  category: basics
- !behavior Down
- !criterion
  name: Duration
  difficultyLevel: Intermediate
`))
	require.NoError(t, err)
	require.Len(t, statements, 4)

	dog, ok := statements[0].(Dog)
	require.True(t, ok)
	assert.Equal(t, "Rex", dog.Name)
	require.NotNil(t, dog.Age)
	assert.Equal(t, 3, *dog.Age)

	assert.Equal(t, Behavior{Title: "Sit", Description: "Hold for **five** seconds", Category: "basics"}, statements[1])
	assert.Equal(t, Behavior{Title: "Down"}, statements[2])

	criterion, ok := statements[3].(Criterion)
	require.True(t, ok)
	d, err := criterion.difficulty()
	require.NoError(t, err)
	assert.Equal(t, "intermediate", d.String())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty document", ``, "plan is empty"},
		{"not a sequence", `title: Sit`, "a plan must be a sequence of statements"},
		{"unknown tag", `- !cat Milo`, `unknown statement tag "!cat"`},
		{"untagged entry", `- title: Sit`, "unknown statement tag"},
		{"missing title", "- !behavior\n  category: basics", "behavior: title is required"},
		{"negative age", "- !dog\n  name: Rex\n  age: -2", "dog: age must not be negative"},
		{"bad difficulty", "- !criterion\n  name: Duration\n  difficultyLevel: expert", "difficultyLevel must be one of beginner, intermediate, advanced"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestKindTag(t *testing.T) {
	assert.Equal(t, "!dog", KindDog.Tag())
	assert.Equal(t, "!behavior", KindBehavior.Tag())
	assert.Equal(t, "!criterion", KindCriterion.Tag())

	for _, k := range KindValues() {
		got, err := KindString(k.Tag()[1:])
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
}

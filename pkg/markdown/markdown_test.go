package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	r := New()

	tests := []struct {
		name     string
		source   string
		contains []string
	}{
		{"emphasis", "Reward **immediately**", []string{"<p>Reward <strong>immediately</strong></p>"}},
		{"list", "- sit\n- stay\n", []string{"<ul>", "<li>sit</li>", "<li>stay</li>"}},
		{"gfm strikethrough", "~~lure~~ hand signal", []string{"<del>lure</del>"}},
		{"gfm table", "| day | reps |\n|-----|------|\n| 1 | 5 |\n", []string{"<table>", "<td>5</td>"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Render(tt.source)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestRender_Empty(t *testing.T) {
	out, err := New().Render("")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRender_DropsRawHTML(t *testing.T) {
	out, err := New().Render("hello <script>alert(1)</script>\n\n[click](javascript:void)")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "javascript:")
}

func TestPlainText(t *testing.T) {
	r := New()

	assert.Equal(t, "Reward immediately", r.PlainText("Reward **immediately**"))
	assert.Equal(t, "Goals sit stay", r.PlainText("# Goals\n\n- sit\n- stay\n"))
	assert.Equal(t, "use the clicker", r.PlainText("use the `clicker`"))
	assert.Equal(t, "", r.PlainText(""))
	assert.False(t, strings.Contains(r.PlainText("line one\nline two"), "\n"))
}

package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/daybook/pkg/types"
)

func renderFixture() []types.Entry {
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return []types.Entry{
		{
			ID:          "e1",
			Title:       "Morning Pages",
			Content:     "<p>Slept well, woke up <b>early</b>.</p>",
			ContentType: types.ContentTypeHTML,
			Mood:        types.MoodHappy,
			Category:    "Personal",
			Tags:        []string{"sleep", "morning"},
			IsFavorite:  true,
			CreatedAt:   created,
			UpdatedAt:   created,
		},
		{
			ID:          "e2",
			Content:     "Quick note, no title.",
			ContentType: types.ContentTypePlain,
			CreatedAt:   created.Add(24 * time.Hour),
			UpdatedAt:   created.Add(24 * time.Hour),
		},
	}
}

func TestRenderCSV(t *testing.T) {
	out, err := RenderCSV(renderFixture())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Title,Content,Mood,Category,Tags,Favorite", lines[0])
	assert.Contains(t, lines[1], "Morning Pages")
	assert.Contains(t, lines[1], "Slept well")
	assert.NotContains(t, lines[1], "<p>")
	assert.Contains(t, lines[1], "Happy")
	assert.Contains(t, lines[1], "sleep; morning")
	assert.Contains(t, lines[1], "true")
	assert.Contains(t, lines[2], "Untitled")
	assert.Contains(t, lines[2], "false")
}

func TestRenderCSVEmpty(t *testing.T) {
	out, err := RenderCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "Date,Title,Content,Mood,Category,Tags,Favorite\n", out)
}

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown(renderFixture())

	assert.True(t, strings.HasPrefix(out, "# Journal Export\n"))
	assert.Contains(t, out, "## Morning Pages")
	assert.Contains(t, out, "Mood: Happy")
	assert.Contains(t, out, "Tags: sleep, morning")
	assert.Contains(t, out, "## Untitled")
	assert.NotContains(t, out, "<b>")
}

func TestRenderText(t *testing.T) {
	out := RenderText(renderFixture())

	assert.Contains(t, out, "Morning Pages")
	assert.Contains(t, out, "Slept well, woke up early.")
	assert.Contains(t, out, strings.Repeat("-", 40))
	assert.Contains(t, out, "Untitled")
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain passthrough", in: "no markup here", want: "no markup here"},
		{name: "tags removed", in: "<p>Hello <em>world</em></p>", want: "Hello world"},
		{name: "entities decoded", in: "fish &amp; chips", want: "fish & chips"},
		{name: "empty", in: "", want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripHTML(tc.in))
		})
	}
}

package export

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/mesh-intelligence/daybook/pkg/types"
)

// moodLabels maps mood levels to the words used in renderings. MoodUnset has
// no label and renders as an empty field.
var moodLabels = map[int]string{
	types.MoodVerySad:   "Very Sad",
	types.MoodSad:       "Sad",
	types.MoodNeutral:   "Neutral",
	types.MoodHappy:     "Happy",
	types.MoodVeryHappy: "Very Happy",
}

const renderDateLayout = "2006-01-02 15:04"

// RenderCSV produces a spreadsheet-friendly rendering of the entries, one row
// each. HTML content is flattened to text first.
func RenderCSV(entries []types.Entry) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write([]string{"Date", "Title", "Content", "Mood", "Category", "Tags", "Favorite"}); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	for i := range entries {
		e := &entries[i]
		row := []string{
			e.CreatedAt.Local().Format(renderDateLayout),
			e.DisplayTitle(),
			renderContent(e),
			moodLabels[e.Mood],
			e.Category,
			strings.Join(e.Tags, "; "),
			strconv.FormatBool(e.IsFavorite),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderMarkdown produces a single Markdown document with one section per
// entry. Markdown content is passed through as-is; HTML is flattened.
func RenderMarkdown(entries []types.Entry) string {
	var b strings.Builder
	b.WriteString("# Journal Export\n")
	for i := range entries {
		e := &entries[i]
		b.WriteString("\n## ")
		b.WriteString(e.DisplayTitle())
		b.WriteString("\n\n*")
		b.WriteString(e.CreatedAt.Local().Format(renderDateLayout))
		b.WriteString("*")
		if label := moodLabels[e.Mood]; label != "" {
			b.WriteString(" · Mood: ")
			b.WriteString(label)
		}
		if e.Category != "" {
			b.WriteString(" · ")
			b.WriteString(e.Category)
		}
		b.WriteString("\n\n")
		if e.ContentType == types.ContentTypeHTML {
			b.WriteString(StripHTML(e.Content))
		} else {
			b.WriteString(e.Content)
		}
		b.WriteString("\n")
		if len(e.Tags) > 0 {
			b.WriteString("\nTags: ")
			b.WriteString(strings.Join(e.Tags, ", "))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderText produces a plaintext rendering with entries separated by a rule.
func RenderText(entries []types.Entry) string {
	var b strings.Builder
	for i := range entries {
		e := &entries[i]
		if i > 0 {
			b.WriteString("\n" + strings.Repeat("-", 40) + "\n\n")
		}
		b.WriteString(e.DisplayTitle())
		b.WriteString("\n")
		b.WriteString(e.CreatedAt.Local().Format(renderDateLayout))
		b.WriteString("\n\n")
		b.WriteString(renderContent(e))
		b.WriteString("\n")
	}
	return b.String()
}

func renderContent(e *types.Entry) string {
	if e.ContentType == types.ContentTypeHTML {
		return StripHTML(e.Content)
	}
	return e.Content
}

// StripHTML flattens markup to its text content. Plain strings pass through
// unchanged.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	tz := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		tt := tz.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			b.WriteString(tz.Token().Data)
		}
	}
	return strings.TrimSpace(b.String())
}

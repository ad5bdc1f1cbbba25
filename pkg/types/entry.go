package types

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Content types recognized for entry bodies.
const (
	ContentTypePlain    = "plain"
	ContentTypeMarkdown = "markdown"
	ContentTypeHTML     = "html"
)

// validContentTypes is the set of recognized content type values.
var validContentTypes = map[string]bool{
	ContentTypePlain:    true,
	ContentTypeMarkdown: true,
	ContentTypeHTML:     true,
}

// ValidContentType reports whether ct is a recognized content type.
func ValidContentType(ct string) bool {
	return validContentTypes[ct]
}

// Mood levels. Zero means no mood was recorded.
const (
	MoodUnset     = 0
	MoodVerySad   = 1
	MoodSad       = 2
	MoodNeutral   = 3
	MoodHappy     = 4
	MoodVeryHappy = 5
)

// ValidMood reports whether m is MoodUnset or one of the five mood levels.
func ValidMood(m int) bool {
	return m >= MoodUnset && m <= MoodVeryHappy
}

// Location is an optional geographic annotation on an entry.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
	PlaceName string  `json:"placeName,omitempty"`
}

// Entry is a single dated journal record.
type Entry struct {
	ID          string    `json:"id"`          // UUID v7, assigned on creation.
	JournalID   string    `json:"journalId"`   // Owning journal; empty for legacy records.
	Title       string    `json:"title"`       // May be empty; display falls back to "Untitled".
	Content     string    `json:"content"`     // Required, non-empty on creation.
	ContentType string    `json:"contentType"` // One of the ContentType constants.
	Mood        int       `json:"mood,omitempty"`
	Category    string    `json:"category,omitempty"`
	Tags        []string  `json:"tags"`
	IsFavorite  bool      `json:"isFavorite"`
	IsEncrypted bool      `json:"isEncrypted"`
	Location    *Location `json:"location,omitempty"`
	WordCount   int       `json:"wordCount,omitempty"`
	CharCount   int       `json:"charCount,omitempty"`
	CreatedAt   time.Time `json:"createdAt"` // Immutable after creation.
	UpdatedAt   time.Time `json:"updatedAt"` // Bumped on every mutation; never before CreatedAt.
}

// DisplayTitle returns the title, or "Untitled" when the stored title is
// blank. The fallback is applied at display time only and never persisted.
func (e *Entry) DisplayTitle() string {
	if strings.TrimSpace(e.Title) == "" {
		return "Untitled"
	}
	return e.Title
}

// RecountContent refreshes the derived word and character counts from Content.
func (e *Entry) RecountContent() {
	e.WordCount = len(strings.Fields(e.Content))
	e.CharCount = utf8.RuneCountInString(e.Content)
}

// HasTag reports whether the entry carries the given tag.
func (e *Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// EntryDraft holds the caller-supplied fields for a new entry. The repository
// assigns ID and timestamps.
type EntryDraft struct {
	JournalID   string
	Title       string
	Content     string
	ContentType string
	Mood        int
	Category    string
	Tags        []string
	IsFavorite  bool
	IsEncrypted bool
	Location    *Location
}

// EntryPatch describes a partial update. Nil fields are left unchanged.
type EntryPatch struct {
	JournalID   *string
	Title       *string
	Content     *string
	ContentType *string
	Mood        *int
	Category    *string
	Tags        *[]string
	IsFavorite  *bool
	IsEncrypted *bool
	Location    *Location
}

// Apply merges the patch over the entry. ID and CreatedAt are never touched;
// the caller owns the UpdatedAt bump.
func (p *EntryPatch) Apply(e *Entry) {
	if p.JournalID != nil {
		e.JournalID = *p.JournalID
	}
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Content != nil {
		e.Content = *p.Content
		e.RecountContent()
	}
	if p.ContentType != nil {
		e.ContentType = *p.ContentType
	}
	if p.Mood != nil {
		e.Mood = *p.Mood
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Tags != nil {
		e.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.IsFavorite != nil {
		e.IsFavorite = *p.IsFavorite
	}
	if p.IsEncrypted != nil {
		e.IsEncrypted = *p.IsEncrypted
	}
	if p.Location != nil {
		loc := *p.Location
		e.Location = &loc
	}
}

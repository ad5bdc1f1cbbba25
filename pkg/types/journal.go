package types

import "time"

// Journal theme patterns. A journal renders with one of these backgrounds.
const (
	ThemeSolid    = "solid"
	ThemeGradient = "gradient"
	ThemeDots     = "dots"
	ThemeGrid     = "grid"
	ThemeWaves    = "waves"
	ThemeStripes  = "stripes"
	ThemePaper    = "paper"
	ThemeTexture  = "texture"
)

// validThemes is the set of recognized journal theme values.
var validThemes = map[string]bool{
	ThemeSolid:    true,
	ThemeGradient: true,
	ThemeDots:     true,
	ThemeGrid:     true,
	ThemeWaves:    true,
	ThemeStripes:  true,
	ThemePaper:    true,
	ThemeTexture:  true,
}

// ValidTheme reports whether theme is one of the eight known patterns.
func ValidTheme(theme string) bool {
	return validThemes[theme]
}

// Journal is a named container of entries. Exactly one journal in the
// collection is the default at any time; the default journal cannot be
// deleted and receives entries when no journal is chosen explicitly.
type Journal struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Color      string    `json:"color"` // Hex string, e.g. "#4F46E5".
	Icon       string    `json:"icon,omitempty"`
	Theme      string    `json:"theme,omitempty"` // One of the Theme constants.
	IsDefault  bool      `json:"isDefault"`
	EntryCount int       `json:"entryCount"` // Computed on read, not maintained in the store.
	CreatedAt  time.Time `json:"createdAt"`
	LastUsedAt time.Time `json:"lastUsedAt,omitempty"`
}

// JournalDraft holds the caller-supplied fields for a new journal.
type JournalDraft struct {
	Name      string
	Color     string
	Icon      string
	Theme     string
	IsDefault bool
}

// JournalPatch describes a partial update. Nil fields are left unchanged.
// The default flag is deliberately absent: JournalRepository.SetDefault is
// the only way to move it.
type JournalPatch struct {
	Name       *string
	Color      *string
	Icon       *string
	Theme      *string
	LastUsedAt *time.Time
}

// Apply merges the patch over the journal.
func (p *JournalPatch) Apply(j *Journal) {
	if p.Name != nil {
		j.Name = *p.Name
	}
	if p.Color != nil {
		j.Color = *p.Color
	}
	if p.Icon != nil {
		j.Icon = *p.Icon
	}
	if p.Theme != nil {
		j.Theme = *p.Theme
	}
	if p.LastUsedAt != nil {
		j.LastUsedAt = *p.LastUsedAt
	}
}

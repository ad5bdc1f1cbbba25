// Default category seeding on first run.
package sqlite

import (
	"time"

	"github.com/mesh-intelligence/daybook/pkg/types"
)

// builtInCategory describes a category seeded when the table is empty.
type builtInCategory struct {
	name  string
	color string
	icon  string
}

// builtInCategories are created on first startup, in display order.
var builtInCategories = []builtInCategory{
	{"Personal", "#3B82F6", "👤"},
	{"Work", "#8B5CF6", "💼"},
	{"Travel", "#10B981", "✈️"},
	{"Gratitude", "#F59E0B", "🙏"},
	{"Dreams", "#EC4899", "💭"},
	{"Goals", "#EF4444", "🎯"},
	{"Health", "#14B8A6", "💪"},
	{"Relationships", "#F43F5E", "❤️"},
}

// seedCategories populates the categories table when it is empty.
func (s *Store) seedCategories() error {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&n); err != nil {
		return types.NewStoreError("seed categories", err)
	}
	if n > 0 {
		return nil
	}

	now := time.Now()
	cats := make([]types.Category, 0, len(builtInCategories))
	for i, b := range builtInCategories {
		cats = append(cats, types.Category{
			ID:        newUUID(),
			Name:      b.name,
			Color:     b.color,
			Icon:      b.icon,
			Ordinal:   i + 1,
			CreatedAt: now,
		})
	}
	return s.PutCategories(cats)
}

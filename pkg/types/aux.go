package types

import (
	"encoding/json"
	"time"
)

// Category is a free-form grouping label with display metadata. Categories
// are ancillary: entries reference them by name and survive category removal.
type Category struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Color      string    `json:"color"`
	Icon       string    `json:"icon,omitempty"`
	Ordinal    int       `json:"order"`
	IsArchived bool      `json:"isArchived"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Tag is a derived aggregate: a tag name and how many entries carry it.
// Entries are the source of truth; the stored tag collection is resynced
// from them after every entry mutation.
type Tag struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Setting is an opaque key-value pair round-tripped by the export codec.
type Setting struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

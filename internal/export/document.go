// Package export serializes the full store to a portable JSON document and
// restores from one, plus one-way plaintext, Markdown, and CSV renderings.
package export

import (
	"time"

	"github.com/mesh-intelligence/daybook/pkg/types"
)

// Document is the portable export format. ExportJSON produces exactly the
// shape ImportJSON accepts; entries and journals round-trip with full
// fidelity, the ancillary collections best-effort.
type Document struct {
	Entries    []types.Entry    `json:"entries"`
	Journals   []types.Journal  `json:"journals"`
	Categories []types.Category `json:"categories"`
	Tags       []types.Tag      `json:"tags"`
	Settings   []types.Setting  `json:"settings"`
	ExportedAt time.Time        `json:"exportedAt"`
}

// snapshot converts the document back into a store snapshot.
func (d *Document) snapshot() types.Snapshot {
	return types.Snapshot{
		Entries:    d.Entries,
		Journals:   d.Journals,
		Categories: d.Categories,
		Tags:       d.Tags,
		Settings:   d.Settings,
	}
}

package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mesh-intelligence/daybook/internal/logging"
	"github.com/mesh-intelligence/daybook/pkg/types"
)

// Codec moves complete database snapshots in and out of a store.
type Codec struct {
	store types.Store
	log   logging.Logger
}

func NewCodec(store types.Store, log logging.Logger) *Codec {
	if log == nil {
		log = logging.Nop()
	}
	return &Codec{store: store, log: log.With("component", "export")}
}

// ExportJSON snapshots the store into an indented JSON document.
func (c *Codec) ExportJSON() ([]byte, error) {
	snap, err := c.store.ExportAll()
	if err != nil {
		return nil, fmt.Errorf("export snapshot: %w", err)
	}
	doc := Document{
		Entries:    snap.Entries,
		Journals:   snap.Journals,
		Categories: snap.Categories,
		Tags:       snap.Tags,
		Settings:   snap.Settings,
		ExportedAt: time.Now().UTC(),
	}
	if doc.Entries == nil {
		doc.Entries = []types.Entry{}
	}
	if doc.Journals == nil {
		doc.Journals = []types.Journal{}
	}
	if doc.Categories == nil {
		doc.Categories = []types.Category{}
	}
	if doc.Tags == nil {
		doc.Tags = []types.Tag{}
	}
	if doc.Settings == nil {
		doc.Settings = []types.Setting{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	c.log.Info("exported snapshot",
		"entries", len(doc.Entries),
		"journals", len(doc.Journals))
	return data, nil
}

// ImportJSON restores a store from an exported document. The payload must be
// a JSON object; unknown keys are ignored and missing collections default to
// empty. Imported rows are merged by id in a single transaction.
func (c *Codec) ImportJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("%w: payload is not a JSON object", types.ErrParse)
	}
	var doc Document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return fmt.Errorf("%w: %v", types.ErrParse, err)
	}
	if err := c.store.ImportAll(doc.snapshot()); err != nil {
		return fmt.Errorf("apply import: %w", err)
	}
	c.log.Info("imported snapshot",
		"entries", len(doc.Entries),
		"journals", len(doc.Journals))
	return nil
}

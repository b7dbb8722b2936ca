package sheet

import (
	"encoding/json"

	"github.com/hearthforge/sheet-api/internal/errors"
)

// Export renders the record as a pretty-printed JSON document with the
// set fields serialized as arrays. The output round-trips through
// Normalize to an equal record.
func (c *CharacterData) Export() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal character document")
	}
	return data, nil
}

// ExportFilename derives the download filename from the character name,
// falling back to "character" for unnamed sheets.
func (c *CharacterData) ExportFilename() string {
	name := c.Name
	if name == "" {
		name = "character"
	}
	return name + "_sheet.json"
}

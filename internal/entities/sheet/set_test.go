package sheet_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthforge/sheet-api/internal/entities/sheet"
)

func TestStringSetToggle(t *testing.T) {
	s := sheet.NewStringSet("Perception")

	s.Toggle("Stealth")
	assert.True(t, s.Has("Stealth"))

	s.Toggle("Stealth")
	assert.False(t, s.Has("Stealth"))
	assert.True(t, s.Has("Perception"))
}

func TestStringSetCloneIsIndependent(t *testing.T) {
	s := sheet.NewStringSet("Arcana")
	clone := s.Clone()
	clone.Toggle("Arcana")

	assert.True(t, s.Has("Arcana"))
	assert.False(t, clone.Has("Arcana"))
}

func TestStringSetMarshalsAsSortedArray(t *testing.T) {
	s := sheet.NewStringSet("Stealth", "Arcana", "Perception")

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["Arcana","Perception","Stealth"]`, string(data))
}

func TestStringSetUnmarshal(t *testing.T) {
	var s sheet.StringSet
	require.NoError(t, json.Unmarshal([]byte(`["DEX","WIS"]`), &s))
	assert.True(t, s.Has("DEX"))
	assert.True(t, s.Has("WIS"))
	assert.Len(t, s, 2)

	// duplicates collapse
	var dup sheet.StringSet
	require.NoError(t, json.Unmarshal([]byte(`["DEX","DEX"]`), &dup))
	assert.Len(t, dup, 1)

	// null yields an empty set, not a nil map
	var empty sheet.StringSet
	require.NoError(t, json.Unmarshal([]byte(`null`), &empty))
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)
}

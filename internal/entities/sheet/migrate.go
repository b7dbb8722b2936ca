package sheet

import (
	"bytes"
	"encoding/json"

	"github.com/hearthforge/sheet-api/internal/errors"
)

// Normalize reconciles a document of unknown shape, from storage or an
// uploaded file, against the canonical default record. Every key present
// in the document overwrites the default; absent keys keep their default,
// which preserves explicit zeros and explicit false (only truly missing
// armorBase/armorBonus/inspiration fall back to 10/0/false). Legacy
// documents are upgraded:
//
//   - a top-level "spells" string, or a missing spellcasting block,
//     resets spellcasting to the default (old free-text spell lists are
//     not converted)
//   - scalar class/subclass/level fields become a one-entry class list
//   - a missing or sparse slot map is filled to levels 1-9 with zero slots
//
// Malformed JSON returns InvalidArgument and no record; callers decide
// whether to fall back to the default or keep their previous state.
func Normalize(raw []byte) (*CharacterData, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed character document")
	}
	if doc == nil {
		return nil, errors.InvalidArgument("character document is null")
	}

	c := NewDefault()
	if err := reconcile(c, doc); err != nil {
		return nil, err
	}
	return c, nil
}

func reconcile(c *CharacterData, doc map[string]json.RawMessage) error {
	fields := []struct {
		key string
		dst interface{}
	}{
		{"name", &c.Name},
		{"race", &c.Race},
		{"subrace", &c.Subrace},
		{"classes", &c.Classes},
		{"alignment", &c.Alignment},
		{"background", &c.Background},
		{"playerName", &c.PlayerName},
		{"experience", &c.Experience},
		{"bodyType", &c.BodyType},
		{"abilities", &c.Abilities},
		{"inspiration", &c.Inspiration},
		{"proficiencies", &c.Proficiencies},
		{"expertises", &c.Expertises},
		{"acOverride", &c.ACOverride},
		{"armorBase", &c.ArmorBase},
		{"armorBonus", &c.ArmorBonus},
		{"initiativeOverride", &c.InitiativeOverride},
		{"speed", &c.Speed},
		{"hpCurrent", &c.HPCurrent},
		{"hpMaxOverride", &c.HPMaxOverride},
		{"hpTemp", &c.HPTemp},
		{"hitDiceTotal", &c.HitDiceTotal},
		{"hitDiceUsed", &c.HitDiceUsed},
		{"deathSaves", &c.DeathSaves},
		{"traits", &c.Traits},
		{"ideals", &c.Ideals},
		{"bonds", &c.Bonds},
		{"flaws", &c.Flaws},
		{"attacks", &c.Attacks},
		{"proficienciesText", &c.ProficienciesText},
		{"currency", &c.Currency},
		{"status", &c.Status},
		{"features", &c.Features},
		{"backstory", &c.Backstory},
	}

	for _, f := range fields {
		raw, ok := doc[f.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, f.dst); err != nil {
			return errors.WrapWithCodef(err, errors.CodeInvalidArgument, "invalid %q field", f.key)
		}
	}

	// JSON null decodes sets and slices to nil; repair to empty values.
	if c.Proficiencies == nil {
		c.Proficiencies = NewStringSet()
	}
	if c.Expertises == nil {
		c.Expertises = NewStringSet()
	}
	if c.Attacks == nil {
		c.Attacks = NewDefault().Attacks
	}

	reconcileClasses(c, doc)

	return reconcileSpellcasting(c, doc)
}

// reconcileClasses upholds the non-empty class list invariant, migrating
// legacy scalar class/subclass/level fields when no list was present.
func reconcileClasses(c *CharacterData, doc map[string]json.RawMessage) {
	if len(c.Classes) > 0 {
		return
	}

	legacy := ClassItem{ID: "1", Name: "Fighter", Level: 1}
	migrated := false
	if raw, ok := doc["class"]; ok {
		var name string
		if json.Unmarshal(raw, &name) == nil && name != "" {
			legacy.Name = name
			migrated = true
		}
	}
	if migrated {
		if raw, ok := doc["level"]; ok {
			var level int
			if json.Unmarshal(raw, &level) == nil && level > 0 {
				legacy.Level = level
			}
		}
		if raw, ok := doc["subclass"]; ok {
			var subclass string
			if json.Unmarshal(raw, &subclass) == nil {
				legacy.Subclass = subclass
			}
		}
	}
	c.Classes = []ClassItem{legacy}
}

func reconcileSpellcasting(c *CharacterData, doc map[string]json.RawMessage) error {
	// Old saves stored "spells" as a free-text string; those and documents
	// with no spellcasting block at all get the default block.
	if raw, ok := doc["spells"]; ok {
		var legacyText string
		if json.Unmarshal(raw, &legacyText) == nil {
			return nil
		}
	}
	raw, ok := doc["spellcasting"]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}

	if err := json.Unmarshal(raw, &c.Spellcasting); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid \"spellcasting\" field")
	}

	if c.Spellcasting.Slots == nil {
		c.Spellcasting.Slots = DefaultSlots()
	} else {
		// An absent level means zero slots; fill the map out to 1-9 and
		// drop out-of-range keys.
		for level := range c.Spellcasting.Slots {
			if level < 1 || level > 9 {
				delete(c.Spellcasting.Slots, level)
			}
		}
		for level := 1; level <= 9; level++ {
			if _, present := c.Spellcasting.Slots[level]; !present {
				c.Spellcasting.Slots[level] = SpellSlot{Total: "0", Expended: "0"}
			}
		}
	}
	if c.Spellcasting.Spells == nil {
		c.Spellcasting.Spells = []Spell{}
	}
	if !IsAbilityName(string(c.Spellcasting.Ability)) {
		c.Spellcasting.Ability = INT
	}
	return nil
}

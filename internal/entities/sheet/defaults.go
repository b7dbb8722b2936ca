package sheet

// NewDefault returns the canonical blank character: a single level 1
// Fighter with all scores at 10, three blank attack rows, and all spell
// slots zeroed. Migration reconciles loaded documents against this value.
func NewDefault() *CharacterData {
	return &CharacterData{
		Name:    "",
		Race:    "",
		Subrace: "",
		Classes: []ClassItem{
			{ID: "1", Name: "Fighter", Level: 1, Subclass: ""},
		},
		Alignment:  "",
		Background: "",
		PlayerName: "",
		Experience: "0",
		BodyType:   "",
		Abilities: AbilityScores{
			STR: 10,
			DEX: 10,
			CON: 10,
			INT: 10,
			WIS: 10,
			CHA: 10,
		},
		Inspiration:        false,
		Proficiencies:      NewStringSet(),
		Expertises:         NewStringSet(),
		ACOverride:         nil,
		ArmorBase:          10,
		ArmorBonus:         0,
		InitiativeOverride: nil,
		Speed:              "30",
		HPCurrent:          10,
		HPMaxOverride:      nil,
		HPTemp:             "",
		HitDiceTotal:       "1d10",
		HitDiceUsed:        "0",
		DeathSaves:         DeathSaves{},
		Attacks: []Attack{
			{ID: "1"},
			{ID: "2"},
			{ID: "3"},
		},
		Currency: Currency{},
		Status:   Status{},
		Spellcasting: Spellcasting{
			Class:   "",
			Ability: INT,
			Slots:   DefaultSlots(),
			Spells:  []Spell{},
		},
	}
}

// DefaultSlots returns the zeroed slot map for spell levels 1-9.
func DefaultSlots() map[int]SpellSlot {
	slots := make(map[int]SpellSlot, 9)
	for level := 1; level <= 9; level++ {
		slots[level] = SpellSlot{Total: "0", Expended: "0"}
	}
	return slots
}

package sheet

// Clone returns a deep copy. Mutators clone before changing anything so
// every mutation yields a fresh record.
func (c *CharacterData) Clone() *CharacterData {
	out := *c

	out.Classes = make([]ClassItem, len(c.Classes))
	copy(out.Classes, c.Classes)

	out.Attacks = make([]Attack, len(c.Attacks))
	copy(out.Attacks, c.Attacks)

	out.Proficiencies = c.Proficiencies.Clone()
	out.Expertises = c.Expertises.Clone()

	out.ACOverride = cloneIntPtr(c.ACOverride)
	out.InitiativeOverride = cloneIntPtr(c.InitiativeOverride)
	out.HPMaxOverride = cloneIntPtr(c.HPMaxOverride)

	out.Spellcasting.Slots = make(map[int]SpellSlot, len(c.Spellcasting.Slots))
	for level, slot := range c.Spellcasting.Slots {
		out.Spellcasting.Slots[level] = slot
	}
	out.Spellcasting.Spells = make([]Spell, len(c.Spellcasting.Spells))
	copy(out.Spellcasting.Spells, c.Spellcasting.Spells)

	return &out
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

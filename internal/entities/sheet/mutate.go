package sheet

// Mutators return a new record and leave the receiver untouched. List
// mutators preserve insertion order; update and delete match by id and
// leave every other entry alone.

// SetAbility returns a record with one ability score replaced.
func (c *CharacterData) SetAbility(name AbilityName, score int) *CharacterData {
	out := c.Clone()
	out.Abilities.Set(name, score)
	return out
}

// ToggleProficiency flips membership of key in the proficiency set.
func (c *CharacterData) ToggleProficiency(key string) *CharacterData {
	out := c.Clone()
	out.Proficiencies.Toggle(key)
	return out
}

// ToggleExpertise flips membership of key in the expertise set.
func (c *CharacterData) ToggleExpertise(key string) *CharacterData {
	out := c.Clone()
	out.Expertises.Toggle(key)
	return out
}

// ToggleDeathSaveSuccess flips one success checkbox. Out-of-range indexes
// are ignored and return an unchanged copy.
func (c *CharacterData) ToggleDeathSaveSuccess(index int) *CharacterData {
	out := c.Clone()
	if index >= 0 && index < len(out.DeathSaves.Success) {
		out.DeathSaves.Success[index] = !out.DeathSaves.Success[index]
	}
	return out
}

// ToggleDeathSaveFailure flips one failure checkbox.
func (c *CharacterData) ToggleDeathSaveFailure(index int) *CharacterData {
	out := c.Clone()
	if index >= 0 && index < len(out.DeathSaves.Failures) {
		out.DeathSaves.Failures[index] = !out.DeathSaves.Failures[index]
	}
	return out
}

// AddAttack appends an attack row.
func (c *CharacterData) AddAttack(attack Attack) *CharacterData {
	out := c.Clone()
	out.Attacks = append(out.Attacks, attack)
	return out
}

// UpdateAttack replaces the attack whose id matches. Returns the new
// record and whether a match was found.
func (c *CharacterData) UpdateAttack(attack Attack) (*CharacterData, bool) {
	out := c.Clone()
	for i := range out.Attacks {
		if out.Attacks[i].ID == attack.ID {
			out.Attacks[i] = attack
			return out, true
		}
	}
	return out, false
}

// RemoveAttack filters out the attack with the given id.
func (c *CharacterData) RemoveAttack(id string) (*CharacterData, bool) {
	out := c.Clone()
	for i := range out.Attacks {
		if out.Attacks[i].ID == id {
			out.Attacks = append(out.Attacks[:i], out.Attacks[i+1:]...)
			return out, true
		}
	}
	return out, false
}

// AddClass appends a class entry.
func (c *CharacterData) AddClass(class ClassItem) *CharacterData {
	out := c.Clone()
	out.Classes = append(out.Classes, class)
	return out
}

// UpdateClass replaces the class entry whose id matches.
func (c *CharacterData) UpdateClass(class ClassItem) (*CharacterData, bool) {
	out := c.Clone()
	for i := range out.Classes {
		if out.Classes[i].ID == class.ID {
			out.Classes[i] = class
			return out, true
		}
	}
	return out, false
}

// RemoveClass filters out the class with the given id. A character always
// keeps at least one class: removing the last entry is refused and the
// returned record is unchanged.
func (c *CharacterData) RemoveClass(id string) (*CharacterData, bool) {
	out := c.Clone()
	if len(out.Classes) <= 1 {
		return out, false
	}
	for i := range out.Classes {
		if out.Classes[i].ID == id {
			out.Classes = append(out.Classes[:i], out.Classes[i+1:]...)
			return out, true
		}
	}
	return out, false
}

// AddSpell appends a spell. Storage order is insertion order; display
// sorting is the client's concern.
func (c *CharacterData) AddSpell(spell Spell) *CharacterData {
	out := c.Clone()
	out.Spellcasting.Spells = append(out.Spellcasting.Spells, spell)
	return out
}

// UpdateSpell replaces the spell whose id matches.
func (c *CharacterData) UpdateSpell(spell Spell) (*CharacterData, bool) {
	out := c.Clone()
	for i := range out.Spellcasting.Spells {
		if out.Spellcasting.Spells[i].ID == spell.ID {
			out.Spellcasting.Spells[i] = spell
			return out, true
		}
	}
	return out, false
}

// RemoveSpell filters out the spell with the given id.
func (c *CharacterData) RemoveSpell(id string) (*CharacterData, bool) {
	out := c.Clone()
	for i := range out.Spellcasting.Spells {
		if out.Spellcasting.Spells[i].ID == id {
			out.Spellcasting.Spells = append(out.Spellcasting.Spells[:i], out.Spellcasting.Spells[i+1:]...)
			return out, true
		}
	}
	return out, false
}

// SetSpellSlot replaces the slot entry for one spell level.
func (c *CharacterData) SetSpellSlot(level int, slot SpellSlot) *CharacterData {
	out := c.Clone()
	out.Spellcasting.Slots[level] = slot
	return out
}

// Package rules implements the derived-stat calculations for fifth-edition
// character sheets. Every function is pure and total: any integer input
// produces a deterministic result and nothing here returns an error.
package rules

import (
	"fmt"

	"github.com/hearthforge/sheet-api/internal/entities/sheet"
)

// Modifier derives the ability modifier from a raw score using a true
// mathematical floor, so scores below 10 round toward negative infinity
// (9 is -1, 7 is -2).
func Modifier(score int) int {
	diff := score - 10
	if diff < 0 {
		return (diff - 1) / 2
	}
	return diff / 2
}

// ProficiencyBonus derives the level-scaled proficiency bonus. Levels below
// 1 are treated as level 1, so the bonus floors at +2.
func ProficiencyBonus(totalLevel int) int {
	if totalLevel < 1 {
		totalLevel = 1
	}
	return (totalLevel-1)/4 + 2
}

// FormatModifier renders a modifier with an explicit leading "+" for zero
// and positive values.
func FormatModifier(mod int) string {
	if mod >= 0 {
		return fmt.Sprintf("+%d", mod)
	}
	return fmt.Sprintf("%d", mod)
}

// TotalLevel sums the levels of every class entry.
func TotalLevel(classes []sheet.ClassItem) int {
	total := 0
	for _, c := range classes {
		total += c.Level
	}
	return total
}

// MaxHP computes maximum hit points. A non-nil override always wins, even
// when implausible. Otherwise the first class gets its maximum hit die at
// level 1 plus average-die accrual for later levels, and each additional
// class accrues average-die HP from level 1 (no max-die bonus). Unknown
// class names fall back to a d8. The result never drops below 1.
func MaxHP(classes []sheet.ClassItem, conScore int, override *int) int {
	if override != nil {
		return *override
	}

	conMod := Modifier(conScore)
	total := 0
	for i, c := range classes {
		die := HitDie(c.Name)
		perLevel := (die+1)/2 + 1 + conMod
		if i == 0 {
			total += die + conMod
			if c.Level > 1 {
				total += perLevel * (c.Level - 1)
			}
			continue
		}
		total += perLevel * c.Level
	}

	if total < 1 {
		return 1
	}
	return total
}

// PassivePerception is 10 plus the Wisdom modifier, plus the proficiency
// bonus when the character is proficient in Perception.
func PassivePerception(wisScore, profBonus int, isProficient bool) int {
	pp := 10 + Modifier(wisScore)
	if isProficient {
		pp += profBonus
	}
	return pp
}

// SpellSaveDC is 8 plus the casting ability modifier plus proficiency.
func SpellSaveDC(abilityScore, profBonus int) int {
	return 8 + Modifier(abilityScore) + profBonus
}

// SpellAttackBonus is the casting ability modifier plus proficiency.
func SpellAttackBonus(abilityScore, profBonus int) int {
	return Modifier(abilityScore) + profBonus
}

// ArmorClass is armor base plus the Dexterity modifier plus armor bonus,
// unless an override is set, in which case the override wins unconditionally.
func ArmorClass(armorBase, dexScore, armorBonus int, acOverride *int) int {
	if acOverride != nil {
		return *acOverride
	}
	return armorBase + Modifier(dexScore) + armorBonus
}

// Initiative is the Dexterity modifier unless overridden.
func Initiative(dexScore int, override *int) int {
	if override != nil {
		return *override
	}
	return Modifier(dexScore)
}

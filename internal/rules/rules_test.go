package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hearthforge/sheet-api/internal/entities/sheet"
	"github.com/hearthforge/sheet-api/internal/rules"
)

func TestModifier(t *testing.T) {
	testCases := []struct {
		score    int
		expected int
	}{
		{10, 0},
		{11, 0},
		{12, 1},
		{9, -1},
		{8, -1},
		{7, -2},
		{1, -5},
		{30, 10},
		{0, -5},
		{-4, -7},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, rules.Modifier(tc.score), "score %d", tc.score)
	}
}

func TestProficiencyBonus(t *testing.T) {
	testCases := []struct {
		level    int
		expected int
	}{
		{1, 2}, {4, 2},
		{5, 3}, {8, 3},
		{9, 4}, {12, 4},
		{13, 5}, {16, 5},
		{17, 6}, {20, 6},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, rules.ProficiencyBonus(tc.level), "level %d", tc.level)
	}

	// Levels below 1 behave like level 1.
	assert.Equal(t, rules.ProficiencyBonus(1), rules.ProficiencyBonus(0))
	assert.Equal(t, rules.ProficiencyBonus(1), rules.ProficiencyBonus(-3))
}

func TestFormatModifier(t *testing.T) {
	assert.Equal(t, "+0", rules.FormatModifier(0))
	assert.Equal(t, "+5", rules.FormatModifier(5))
	assert.Equal(t, "-3", rules.FormatModifier(-3))
}

func TestTotalLevel(t *testing.T) {
	classes := []sheet.ClassItem{
		{ID: "1", Name: "Fighter", Level: 3},
		{ID: "2", Name: "Wizard", Level: 2},
	}
	assert.Equal(t, 5, rules.TotalLevel(classes))
	assert.Equal(t, 0, rules.TotalLevel(nil))
}

func TestMaxHP(t *testing.T) {
	t.Run("override always wins", func(t *testing.T) {
		classes := []sheet.ClassItem{{ID: "1", Name: "Fighter", Level: 5}}
		for _, override := range []int{100, 1, 0, -7} {
			v := override
			assert.Equal(t, v, rules.MaxHP(classes, 14, &v))
		}
	})

	t.Run("single class level 1", func(t *testing.T) {
		classes := []sheet.ClassItem{{ID: "1", Name: "Fighter", Level: 1}}
		// d10 max + CON mod 2
		assert.Equal(t, 12, rules.MaxHP(classes, 14, nil))
	})

	t.Run("single class higher level", func(t *testing.T) {
		classes := []sheet.ClassItem{{ID: "1", Name: "Fighter", Level: 3}}
		// 10+1 at level 1, then (5+1+1) per level
		assert.Equal(t, 25, rules.MaxHP(classes, 12, nil))
	})

	t.Run("multiclass", func(t *testing.T) {
		classes := []sheet.ClassItem{
			{ID: "1", Name: "Fighter", Level: 3},
			{ID: "2", Name: "Wizard", Level: 2},
		}
		// first class 25, wizard adds (3+1+1)*2
		assert.Equal(t, 35, rules.MaxHP(classes, 12, nil))
	})

	t.Run("unknown class defaults to d8", func(t *testing.T) {
		classes := []sheet.ClassItem{{ID: "1", Name: "Bloodhunter", Level: 1}}
		assert.Equal(t, 8, rules.MaxHP(classes, 10, nil))
	})

	t.Run("floors at 1", func(t *testing.T) {
		classes := []sheet.ClassItem{{ID: "1", Name: "Wizard", Level: 1}}
		// d6 with CON 1 (mod -5) would be 1
		assert.Equal(t, 1, rules.MaxHP(classes, 1, nil))
		assert.Equal(t, 1, rules.MaxHP(nil, 10, nil))
	})
}

func TestPassivePerception(t *testing.T) {
	assert.Equal(t, 10, rules.PassivePerception(10, 2, false))
	assert.Equal(t, 12, rules.PassivePerception(10, 2, true))
	assert.Equal(t, 15, rules.PassivePerception(14, 3, true))
	assert.Equal(t, 9, rules.PassivePerception(8, 2, false))
}

func TestSpellSaveDC(t *testing.T) {
	assert.Equal(t, 10, rules.SpellSaveDC(10, 2))
	assert.Equal(t, 13, rules.SpellSaveDC(16, 2))
}

func TestSpellAttackBonus(t *testing.T) {
	assert.Equal(t, 2, rules.SpellAttackBonus(10, 2))
	assert.Equal(t, 5, rules.SpellAttackBonus(16, 2))
}

func TestArmorClass(t *testing.T) {
	assert.Equal(t, 12, rules.ArmorClass(10, 14, 0, nil))
	assert.Equal(t, 15, rules.ArmorClass(12, 14, 1, nil))
	// explicit zero base is honored, not coerced to 10
	assert.Equal(t, 2, rules.ArmorClass(0, 14, 0, nil))

	override := 18
	assert.Equal(t, 18, rules.ArmorClass(10, 14, 0, &override))
}

func TestInitiative(t *testing.T) {
	assert.Equal(t, 2, rules.Initiative(14, nil))
	assert.Equal(t, -1, rules.Initiative(9, nil))

	override := 5
	assert.Equal(t, 5, rules.Initiative(14, &override))
}

func TestHitDie(t *testing.T) {
	assert.Equal(t, 12, rules.HitDie("Barbarian"))
	assert.Equal(t, 10, rules.HitDie("Fighter"))
	assert.Equal(t, 6, rules.HitDie("Wizard"))
	assert.Equal(t, 8, rules.HitDie("Artificer"))
}

package sheet_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hearthforge/sheet-api/internal/entities/sheet"
	"github.com/hearthforge/sheet-api/internal/errors"
)

type MigrateTestSuite struct {
	suite.Suite
}

func TestMigrateSuite(t *testing.T) {
	suite.Run(t, new(MigrateTestSuite))
}

func (s *MigrateTestSuite) TestEmptyDocumentYieldsDefault() {
	c, err := sheet.Normalize([]byte(`{}`))
	s.Require().NoError(err)
	s.Equal(sheet.NewDefault(), c)
}

func (s *MigrateTestSuite) TestMalformedDocument() {
	testCases := []struct {
		name string
		raw  string
	}{
		{"truncated", `{"name": "Ara`},
		{"not an object", `[1,2,3]`},
		{"null", `null`},
		{"wrong field type", `{"abilities": "strong"}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, err := sheet.Normalize([]byte(tc.raw))
			s.Require().Error(err)
			s.Nil(c)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *MigrateTestSuite) TestPresentFieldsSurviveMigration() {
	raw := []byte(`{
		"name": "Aragorn",
		"race": "Human",
		"abilities": {"STR": 16, "DEX": 14, "CON": 14, "INT": 11, "WIS": 13, "CHA": 14},
		"proficiencies": ["Athletics", "Survival"],
		"expertises": ["Survival"],
		"hpCurrent": 42
	}`)

	c, err := sheet.Normalize(raw)
	s.Require().NoError(err)
	s.Equal("Aragorn", c.Name)
	s.Equal(16, c.Abilities.STR)
	s.True(c.Proficiencies.Has("Athletics"))
	s.True(c.Expertises.Has("Survival"))
	s.Equal(42, c.HPCurrent)
	// gaps filled from defaults
	s.Equal("30", c.Speed)
	s.Len(c.Attacks, 3)
}

func (s *MigrateTestSuite) TestMissingCurrencyFilledFromDefault() {
	c, err := sheet.Normalize([]byte(`{"name": "Gimli"}`))
	s.Require().NoError(err)
	s.Equal(sheet.NewDefault().Currency, c.Currency)
}

func (s *MigrateTestSuite) TestExplicitZeroesPreserved() {
	raw := []byte(`{"armorBase": 0, "armorBonus": 0, "inspiration": false}`)
	c, err := sheet.Normalize(raw)
	s.Require().NoError(err)
	s.Equal(0, c.ArmorBase)
	s.Equal(0, c.ArmorBonus)
	s.False(c.Inspiration)
}

func (s *MigrateTestSuite) TestAbsentArmorFieldsGetDefaults() {
	c, err := sheet.Normalize([]byte(`{"name": "Legolas"}`))
	s.Require().NoError(err)
	s.Equal(10, c.ArmorBase)
	s.Equal(0, c.ArmorBonus)
}

func (s *MigrateTestSuite) TestNullableOverrides() {
	raw := []byte(`{"acOverride": 18, "initiativeOverride": null}`)
	c, err := sheet.Normalize(raw)
	s.Require().NoError(err)
	s.Require().NotNil(c.ACOverride)
	s.Equal(18, *c.ACOverride)
	s.Nil(c.InitiativeOverride)
	s.Nil(c.HPMaxOverride)

	// an override of zero is a real value, not "unset"
	c2, err := sheet.Normalize([]byte(`{"acOverride": 0}`))
	s.Require().NoError(err)
	s.Require().NotNil(c2.ACOverride)
	s.Equal(0, *c2.ACOverride)
}

func (s *MigrateTestSuite) TestLegacySpellsStringResetsSpellcasting() {
	raw := []byte(`{"spells": "Fireball, Magic Missile", "spellcasting": {"class": "Wizard"}}`)
	c, err := sheet.Normalize(raw)
	s.Require().NoError(err)
	s.Equal(sheet.NewDefault().Spellcasting, c.Spellcasting)
}

func (s *MigrateTestSuite) TestMissingSpellcastingGetsDefault() {
	c, err := sheet.Normalize([]byte(`{"name": "Conan"}`))
	s.Require().NoError(err)
	s.Equal(sheet.NewDefault().Spellcasting, c.Spellcasting)
}

func (s *MigrateTestSuite) TestSpellcastingWithoutSlotsGetsDefaultSlots() {
	raw := []byte(`{"spellcasting": {"class": "Wizard", "ability": "INT", "slots": null, "spells": []}}`)
	c, err := sheet.Normalize(raw)
	s.Require().NoError(err)
	s.Equal("Wizard", c.Spellcasting.Class)
	s.Equal(sheet.DefaultSlots(), c.Spellcasting.Slots)
}

func (s *MigrateTestSuite) TestSparseSlotsFilledToNine() {
	raw := []byte(`{"spellcasting": {"ability": "CHA", "slots": {"3": {"total": "2", "expended": "1"}, "12": {"total": "9", "expended": "0"}}}}`)
	c, err := sheet.Normalize(raw)
	s.Require().NoError(err)
	s.Len(c.Spellcasting.Slots, 9)
	s.Equal("2", c.Spellcasting.Slots[3].Total)
	s.Equal("0", c.Spellcasting.Slots[5].Total)
	_, outOfRange := c.Spellcasting.Slots[12]
	s.False(outOfRange)
	s.Equal(sheet.CHA, c.Spellcasting.Ability)
}

func (s *MigrateTestSuite) TestInvalidSpellcastingAbilityNormalized() {
	raw := []byte(`{"spellcasting": {"ability": "LUK"}}`)
	c, err := sheet.Normalize(raw)
	s.Require().NoError(err)
	s.Equal(sheet.INT, c.Spellcasting.Ability)
}

func (s *MigrateTestSuite) TestEmptyClassesGetsDefault() {
	c, err := sheet.Normalize([]byte(`{"classes": []}`))
	s.Require().NoError(err)
	s.Require().Len(c.Classes, 1)
	s.Equal("Fighter", c.Classes[0].Name)
	s.Equal(1, c.Classes[0].Level)
}

func (s *MigrateTestSuite) TestLegacyScalarClassMigrated() {
	raw := []byte(`{"class": "Rogue", "subclass": "Thief", "level": 4}`)
	c, err := sheet.Normalize(raw)
	s.Require().NoError(err)
	s.Require().Len(c.Classes, 1)
	s.Equal("Rogue", c.Classes[0].Name)
	s.Equal("Thief", c.Classes[0].Subclass)
	s.Equal(4, c.Classes[0].Level)
}

func (s *MigrateTestSuite) TestExportRoundTrip() {
	c := sheet.NewDefault()
	c.Name = "Eowyn"
	c = c.ToggleProficiency("Perception").ToggleExpertise("Insight")
	c = c.AddSpell(sheet.Spell{ID: "s1", Level: 1, Name: "Shield"})
	override := 15
	c.ACOverride = &override
	c.ArmorBase = 0

	data, err := c.Export()
	s.Require().NoError(err)

	back, err := sheet.Normalize(data)
	s.Require().NoError(err)
	s.Equal(c, back)
}

func (s *MigrateTestSuite) TestExportFilename() {
	c := sheet.NewDefault()
	s.Equal("character_sheet.json", c.ExportFilename())

	c.Name = "Frodo"
	s.Equal("Frodo_sheet.json", c.ExportFilename())
}

func (s *MigrateTestSuite) TestNullSetsBecomeEmptySets() {
	raw := []byte(`{"proficiencies": null, "expertises": null, "attacks": null}`)
	c, err := sheet.Normalize(raw)
	s.Require().NoError(err)
	s.NotNil(c.Proficiencies)
	s.NotNil(c.Expertises)
	s.Len(c.Attacks, 3)
}

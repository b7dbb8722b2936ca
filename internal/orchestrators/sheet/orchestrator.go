// Package sheet implements the character sheet orchestrator
package sheet

import (
	"context"
	"log/slog"

	"github.com/hearthforge/sheet-api/internal/clients/narrative"
	entities "github.com/hearthforge/sheet-api/internal/entities/sheet"
	"github.com/hearthforge/sheet-api/internal/errors"
	"github.com/hearthforge/sheet-api/internal/pkg/idgen"
	sheetrepo "github.com/hearthforge/sheet-api/internal/repositories/sheet"
	"github.com/hearthforge/sheet-api/internal/services/sheet"
)

// BackstoryFallback is returned when the narrative service cannot be
// reached. It is shown to the player but never stored.
const BackstoryFallback = "Error connecting to the lore archives (API Error). Please try again."

// NameFallback is the name suggestion used when the narrative service
// fails.
const NameFallback = "Nameless One"

// Config holds the dependencies for the sheet orchestrator
type Config struct {
	SheetRepo sheetrepo.Repository
	Narrative narrative.Client
	IDGen     idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SheetRepo == nil {
		vb.RequiredField("SheetRepo")
	}
	if c.Narrative == nil {
		vb.RequiredField("Narrative")
	}

	return vb.Build()
}

// Orchestrator implements the sheet.Service interface
type Orchestrator struct {
	sheetRepo sheetrepo.Repository
	narrative narrative.Client
	idGen     idgen.Generator
}

// New creates a new sheet orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	gen := cfg.IDGen
	if gen == nil {
		gen = &idgen.SimpleGenerator{}
	}

	return &Orchestrator{
		sheetRepo: cfg.SheetRepo,
		narrative: cfg.Narrative,
		idGen:     gen,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ sheet.Service = (*Orchestrator)(nil)

// load fetches the stored record for a user. A user with no saved sheet
// gets the default record; an unreadable stored document also degrades
// to the default, reported through recovered so callers can tell the
// player their save was lost.
func (o *Orchestrator) load(ctx context.Context, username string) (char *entities.CharacterData, recovered bool, err error) {
	if username == "" {
		return nil, false, errors.InvalidArgument("username cannot be empty")
	}

	out, err := o.sheetRepo.Load(ctx, sheetrepo.LoadInput{Username: username})
	switch {
	case err == nil:
		return out.Character, false, nil
	case errors.IsNotFound(err):
		return entities.NewDefault(), false, nil
	case errors.IsInvalidArgument(err):
		slog.ErrorContext(ctx, "stored sheet unreadable, handing out default",
			"username", username,
			"error", err,
		)
		return entities.NewDefault(), true, nil
	default:
		return nil, false, err
	}
}

// save persists the new record and returns it unchanged.
func (o *Orchestrator) save(ctx context.Context, username string, char *entities.CharacterData) (*entities.CharacterData, error) {
	if _, err := o.sheetRepo.Save(ctx, sheetrepo.SaveInput{Username: username, Character: char}); err != nil {
		return nil, err
	}
	return char, nil
}

// Whole-record operations

// GetSheet loads and migrates the stored record
func (o *Orchestrator) GetSheet(ctx context.Context, input *sheet.GetSheetInput) (*sheet.GetSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, recovered, err := o.load(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	return &sheet.GetSheetOutput{Character: char, Recovered: recovered}, nil
}

// PutSheet replaces the stored record wholesale
func (o *Orchestrator) PutSheet(ctx context.Context, input *sheet.PutSheetInput) (*sheet.PutSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Username == "" {
		return nil, errors.InvalidArgument("username cannot be empty")
	}

	char, err := entities.Normalize(input.Document)
	if err != nil {
		return nil, err
	}

	saved, err := o.save(ctx, input.Username, char)
	if err != nil {
		return nil, err
	}
	return &sheet.PutSheetOutput{Character: saved}, nil
}

// Section-based updates

// UpdateDetails patches the free-text header and personality fields
func (o *Orchestrator) UpdateDetails(ctx context.Context, input *sheet.UpdateDetailsInput) (*sheet.UpdateDetailsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, _, err := o.load(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	next := char.Clone()
	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&next.Name, input.Name)
	applyString(&next.Race, input.Race)
	applyString(&next.Subrace, input.Subrace)
	applyString(&next.Alignment, input.Alignment)
	applyString(&next.Background, input.Background)
	applyString(&next.PlayerName, input.PlayerName)
	applyString(&next.Experience, input.Experience)
	applyString(&next.BodyType, input.BodyType)
	applyString(&next.Traits, input.Traits)
	applyString(&next.Ideals, input.Ideals)
	applyString(&next.Bonds, input.Bonds)
	applyString(&next.Flaws, input.Flaws)
	applyString(&next.Features, input.Features)
	applyString(&next.Backstory, input.Backstory)
	if input.Inspiration != nil {
		next.Inspiration = *input.Inspiration
	}

	saved, err := o.save(ctx, input.Username, next)
	if err != nil {
		return nil, err
	}
	return &sheet.UpdateDetailsOutput{Character: saved}, nil
}

// UpdateAbility sets one ability score
func (o *Orchestrator) UpdateAbility(ctx context.Context, input *sheet.UpdateAbilityInput) (*sheet.UpdateAbilityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !entities.IsAbilityName(string(input.Ability)) {
		return nil, errors.InvalidArgumentf("unknown ability %q", input.Ability)
	}

	char, _, err := o.load(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	saved, err := o.save(ctx, input.Username, char.SetAbility(input.Ability, input.Score))
	if err != nil {
		return nil, err
	}
	return &sheet.UpdateAbilityOutput{Character: saved}, nil
}

// ToggleProficiency flips membership of a skill or save key
func (o *Orchestrator) ToggleProficiency(ctx context.Context, input *sheet.ToggleProficiencyInput) (*sheet.ToggleProficiencyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Key == "" {
		return nil, errors.InvalidArgument("key cannot be empty")
	}

	char, _, err := o.load(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	saved, err := o.save(ctx, input.Username, char.ToggleProficiency(input.Key))
	if err != nil {
		return nil, err
	}
	return &sheet.ToggleProficiencyOutput{Character: saved}, nil
}

// ToggleExpertise flips membership of an expertise key
func (o *Orchestrator) ToggleExpertise(ctx context.Context, input *sheet.ToggleExpertiseInput) (*sheet.ToggleExpertiseOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Key == "" {
		return nil, errors.InvalidArgument("key cannot be empty")
	}

	char, _, err := o.load(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	saved, err := o.save(ctx, input.Username, char.ToggleExpertise(input.Key))
	if err != nil {
		return nil, err
	}
	return &sheet.ToggleExpertiseOutput{Character: saved}, nil
}

// UpdateCombat replaces the combat block
func (o *Orchestrator) UpdateCombat(ctx context.Context, input *sheet.UpdateCombatInput) (*sheet.UpdateCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, _, err := o.load(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	next := char.Clone()
	next.ACOverride = input.ACOverride
	next.ArmorBase = input.ArmorBase
	next.ArmorBonus = input.ArmorBonus
	next.InitiativeOverride = input.InitiativeOverride
	next.Speed = input.Speed
	next.HPCurrent = input.HPCurrent
	next.HPMaxOverride = input.HPMaxOverride
	next.HPTemp = input.HPTemp
	next.HitDiceTotal = input.HitDiceTotal
	next.HitDiceUsed = input.HitDiceUsed

	saved, err := o.save(ctx, input.Username, next)
	if err != nil {
		return nil, err
	}
	return &sheet.UpdateCombatOutput{Character: saved}, nil
}

// ToggleDeathSave flips one success or failure checkbox
func (o *Orchestrator) ToggleDeathSave(ctx context.Context, input *sheet.ToggleDeathSaveInput) (*sheet.ToggleDeathSaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Index < 0 || input.Index > 2 {
		return nil, errors.InvalidArgumentf("death save index %d out of range", input.Index)
	}

	char, _, err := o.load(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	var next *entities.CharacterData
	switch input.Kind {
	case sheet.DeathSaveSuccess:
		next = char.ToggleDeathSaveSuccess(input.Index)
	case sheet.DeathSaveFailure:
		next = char.ToggleDeathSaveFailure(input.Index)
	default:
		return nil, errors.InvalidArgumentf("unknown death save kind %q", input.Kind)
	}

	saved, err := o.save(ctx, input.Username, next)
	if err != nil {
		return nil, err
	}
	return &sheet.ToggleDeathSaveOutput{Character: saved}, nil
}

// Attack list

// AddAttack appends an attack row with a generated id
func (o *Orchestrator) AddAttack(ctx context.Context, input *sheet.AddAttackInput) (*sheet.AddAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, _, err := o.load(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	attack := input.Attack
	attack.ID = o.idGen.Generate()

	saved, err := o.save(ctx, input.Username, char.AddAttack(attack))
	if err != nil {
		return nil, err
	}
	return &sheet.AddAttackOutput{Character: saved, Attack: attack}, nil
}

// UpdateAttack replaces an attack row by id
func (o *Orchestrator) UpdateAttack(ctx context.Context, input *sheet.UpdateAttackInput) (*sheet.UpdateAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Attack.ID == "" {
		return nil, errors.InvalidArgument("attack id cannot be empty")
	}

	char, _, err := o.load(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	next, found := char.UpdateAttack(input.Attack)
	if !found {
		return nil, errors.NotFoundf("attack %s not found", input.Attack.ID)
	}

	saved, err := o.save(ctx, input.Username, next)
	if err != nil {
		return nil, err
	}
	return &sheet.UpdateAttackOutput{Character: saved}, nil
}

// RemoveAttack deletes an attack row by id
func (o *Orchestrator) RemoveAttack(ctx context.Context, input *sheet.RemoveAttackInput) (*sheet.RemoveAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.AttackID == "" {
		return nil, errors.InvalidArgument("attack id cannot be empty")
	}

	char, _, err := o.load(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	next, found := char.RemoveAttack(input.AttackID)
	if !found {
		return nil, errors.NotFoundf("attack %s not found", input.AttackID)
	}

	saved, err := o.save(ctx, input.Username, next)
	if err != nil {
		return nil, err
	}
	return &sheet.RemoveAttackOutput{Character: saved}, nil
}

// Class list

// AddClass appends a class entry with a generated id
func (o *Orchestrator) AddClass(ctx context.Context, input *sheet.AddClassInput) (*sheet.AddClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, _, err := o.load(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	class := input.Class
	class.ID = o.idGen.Generate()
	if class.Level < 1 {
		class.Level = 1
	}

	saved, err := o.save(ctx, input.Username, char.AddClass(class))
	if err != nil {
		return nil, err
	}
	return &sheet.AddClassOutput{Character: saved, Class: class}, nil
}

// UpdateClass replaces a class entry by id
func (o *Orchestrator) UpdateClass(ctx context.Context, input *sheet.UpdateClassInput) (*sheet.UpdateClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Class.ID == "" {
		return nil, errors.InvalidArgument("class id cannot be empty")
	}

	char, _, err := o.load(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	next, found := char.UpdateClass(input.Class)
	if !found {
		return nil, errors.NotFoundf("class %s not found", input.Class.ID)
	}

	saved, err := o.save(ctx, input.Username, next)
	if err != nil {
		return nil, err
	}
	return &sheet.UpdateClassOutput{Character: saved}, nil
}

// RemoveClass deletes a class entry by id. The last class entry cannot
// be removed; the stored record is left unchanged.
func (o *Orchestrator) RemoveClass(ctx context.Context, input *sheet.RemoveClassInput) (*sheet.RemoveClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ClassID == "" {
		return nil, errors.InvalidArgument("class id cannot be empty")
	}

	char, _, err := o.load(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	if len(char.Classes) <= 1 {
		return nil, errors.FailedPrecondition("a character must keep at least one class")
	}

	next, found := char.RemoveClass(input.ClassID)
	if !found {
		return nil, errors.NotFoundf("class %s not found", input.ClassID)
	}

	saved, err := o.save(ctx, input.Username, next)
	if err != nil {
		return nil, err
	}
	return &sheet.RemoveClassOutput{Character: saved}, nil
}

// Spell list and spellcasting

// AddSpell appends a spell with a generated id
func (o *Orchestrator) AddSpell(ctx context.Context, input *sheet.AddSpellInput) (*sheet.AddSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Spell.Level < 0 || input.Spell.Level > 9 {
		return nil, errors.InvalidArgumentf("spell level %d out of range", input.Spell.Level)
	}

	char, _, err := o.load(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	spell := input.Spell
	spell.ID = o.idGen.Generate()

	saved, err := o.save(ctx, input.Username, char.AddSpell(spell))
	if err != nil {
		return nil, err
	}
	return &sheet.AddSpellOutput{Character: saved, Spell: spell}, nil
}

// UpdateSpell replaces a spell by id
func (o *Orchestrator) UpdateSpell(ctx context.Context, input *sheet.UpdateSpellInput) (*sheet.UpdateSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Spell.ID == "" {
		return nil, errors.InvalidArgument("spell id cannot be empty")
	}
	if input.Spell.Level < 0 || input.Spell.Level > 9 {
		return nil, errors.InvalidArgumentf("spell level %d out of range", input.Spell.Level)
	}

	char, _, err := o.load(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	next, found := char.UpdateSpell(input.Spell)
	if !found {
		return nil, errors.NotFoundf("spell %s not found", input.Spell.ID)
	}

	saved, err := o.save(ctx, input.Username, next)
	if err != nil {
		return nil, err
	}
	return &sheet.UpdateSpellOutput{Character: saved}, nil
}

// RemoveSpell deletes a spell by id
func (o *Orchestrator) RemoveSpell(ctx context.Context, input *sheet.RemoveSpellInput) (*sheet.RemoveSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SpellID == "" {
		return nil, errors.InvalidArgument("spell id cannot be empty")
	}

	char, _, err := o.load(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	next, found := char.RemoveSpell(input.SpellID)
	if !found {
		return nil, errors.NotFoundf("spell %s not found", input.SpellID)
	}

	saved, err := o.save(ctx, input.Username, next)
	if err != nil {
		return nil, err
	}
	return &sheet.RemoveSpellOutput{Character: saved}, nil
}

// UpdateSpellSlot sets total/expended for one spell level
func (o *Orchestrator) UpdateSpellSlot(ctx context.Context, input *sheet.UpdateSpellSlotInput) (*sheet.UpdateSpellSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Level < 1 || input.Level > 9 {
		return nil, errors.InvalidArgumentf("spell slot level %d out of range", input.Level)
	}

	char, _, err := o.load(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	saved, err := o.save(ctx, input.Username, char.SetSpellSlot(input.Level, input.Slot))
	if err != nil {
		return nil, err
	}
	return &sheet.UpdateSpellSlotOutput{Character: saved}, nil
}

// UpdateSpellcasting replaces the casting header fields
func (o *Orchestrator) UpdateSpellcasting(ctx context.Context, input *sheet.UpdateSpellcastingInput) (*sheet.UpdateSpellcastingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !entities.IsAbilityName(string(input.Ability)) {
		return nil, errors.InvalidArgumentf("unknown ability %q", input.Ability)
	}

	char, _, err := o.load(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	next := char.Clone()
	next.Spellcasting.Class = input.Class
	next.Spellcasting.Ability = input.Ability
	next.Spellcasting.SaveDCOverride = input.SaveDCOverride
	next.Spellcasting.AttackBonusOverride = input.AttackBonusOverride

	saved, err := o.save(ctx, input.Username, next)
	if err != nil {
		return nil, err
	}
	return &sheet.UpdateSpellcastingOutput{Character: saved}, nil
}

// Nested blocks

// UpdateCurrency replaces the currency block
func (o *Orchestrator) UpdateCurrency(ctx context.Context, input *sheet.UpdateCurrencyInput) (*sheet.UpdateCurrencyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, _, err := o.load(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	next := char.Clone()
	next.Currency = input.Currency

	saved, err := o.save(ctx, input.Username, next)
	if err != nil {
		return nil, err
	}
	return &sheet.UpdateCurrencyOutput{Character: saved}, nil
}

// UpdateStatus replaces the status block
func (o *Orchestrator) UpdateStatus(ctx context.Context, input *sheet.UpdateStatusInput) (*sheet.UpdateStatusOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, _, err := o.load(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	next := char.Clone()
	next.Status = input.Status

	saved, err := o.save(ctx, input.Username, next)
	if err != nil {
		return nil, err
	}
	return &sheet.UpdateStatusOutput{Character: saved}, nil
}

// UpdateProficienciesText replaces the free-text proficiency block
func (o *Orchestrator) UpdateProficienciesText(ctx context.Context, input *sheet.UpdateProficienciesTextInput) (*sheet.UpdateProficienciesTextOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, _, err := o.load(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	next := char.Clone()
	next.ProficienciesText = input.ProficienciesText

	saved, err := o.save(ctx, input.Username, next)
	if err != nil {
		return nil, err
	}
	return &sheet.UpdateProficienciesTextOutput{Character: saved}, nil
}

// Transfer

// ExportSheet renders the stored record as a pretty-printed download
func (o *Orchestrator) ExportSheet(ctx context.Context, input *sheet.ExportSheetInput) (*sheet.ExportSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, _, err := o.load(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	doc, err := char.Export()
	if err != nil {
		return nil, err
	}
	return &sheet.ExportSheetOutput{Document: doc, Filename: char.ExportFilename()}, nil
}

// ImportSheet reconciles an uploaded document and stores it. A document
// that fails to parse leaves the previously stored record untouched.
func (o *Orchestrator) ImportSheet(ctx context.Context, input *sheet.ImportSheetInput) (*sheet.ImportSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Username == "" {
		return nil, errors.InvalidArgument("username cannot be empty")
	}

	char, err := entities.Normalize(input.Document)
	if err != nil {
		return nil, err
	}

	saved, err := o.save(ctx, input.Username, char)
	if err != nil {
		return nil, err
	}
	return &sheet.ImportSheetOutput{Character: saved}, nil
}

// Narrative generation

// GenerateBackstory asks the narrative service for a backstory. On
// success the text is stored on the record; on failure a canned apology
// is returned and nothing is stored.
func (o *Orchestrator) GenerateBackstory(ctx context.Context, input *sheet.GenerateBackstoryInput) (*sheet.GenerateBackstoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, _, err := o.load(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	out, err := o.narrative.GenerateBackstory(ctx, &narrative.GenerateBackstoryInput{Character: char})
	if err != nil {
		slog.ErrorContext(ctx, "backstory generation failed",
			"username", input.Username,
			"error", err,
		)
		return &sheet.GenerateBackstoryOutput{
			Backstory: BackstoryFallback,
			Fallback:  true,
			Character: char,
		}, nil
	}

	next := char.Clone()
	next.Backstory = out.Backstory

	saved, err := o.save(ctx, input.Username, next)
	if err != nil {
		return nil, err
	}
	return &sheet.GenerateBackstoryOutput{Backstory: out.Backstory, Character: saved}, nil
}

// SuggestName asks the narrative service for a character name. The
// suggestion is returned but never stored.
func (o *Orchestrator) SuggestName(ctx context.Context, input *sheet.SuggestNameInput) (*sheet.SuggestNameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, _, err := o.load(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	class := ""
	if len(char.Classes) > 0 {
		class = char.Classes[0].Name
	}

	out, err := o.narrative.SuggestName(ctx, &narrative.SuggestNameInput{Race: char.Race, Class: class})
	if err != nil {
		slog.ErrorContext(ctx, "name suggestion failed",
			"username", input.Username,
			"error", err,
		)
		return &sheet.SuggestNameOutput{Name: NameFallback, Fallback: true}, nil
	}
	return &sheet.SuggestNameOutput{Name: out.Name}, nil
}

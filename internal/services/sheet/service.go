// Package sheet defines the interface for character sheet operations
package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=sheetmock github.com/hearthforge/sheet-api/internal/services/sheet Service

import (
	"context"

	entities "github.com/hearthforge/sheet-api/internal/entities/sheet"
)

// Service defines the interface for character sheet operations. Every
// operation is scoped to the authenticated username, and every mutation
// persists the new record before returning it.
type Service interface {
	// Whole-record operations
	GetSheet(ctx context.Context, input *GetSheetInput) (*GetSheetOutput, error)
	PutSheet(ctx context.Context, input *PutSheetInput) (*PutSheetOutput, error)

	// Section-based updates
	UpdateDetails(ctx context.Context, input *UpdateDetailsInput) (*UpdateDetailsOutput, error)
	UpdateAbility(ctx context.Context, input *UpdateAbilityInput) (*UpdateAbilityOutput, error)
	ToggleProficiency(ctx context.Context, input *ToggleProficiencyInput) (*ToggleProficiencyOutput, error)
	ToggleExpertise(ctx context.Context, input *ToggleExpertiseInput) (*ToggleExpertiseOutput, error)
	UpdateCombat(ctx context.Context, input *UpdateCombatInput) (*UpdateCombatOutput, error)
	ToggleDeathSave(ctx context.Context, input *ToggleDeathSaveInput) (*ToggleDeathSaveOutput, error)

	// Attack list
	AddAttack(ctx context.Context, input *AddAttackInput) (*AddAttackOutput, error)
	UpdateAttack(ctx context.Context, input *UpdateAttackInput) (*UpdateAttackOutput, error)
	RemoveAttack(ctx context.Context, input *RemoveAttackInput) (*RemoveAttackOutput, error)

	// Class list
	AddClass(ctx context.Context, input *AddClassInput) (*AddClassOutput, error)
	UpdateClass(ctx context.Context, input *UpdateClassInput) (*UpdateClassOutput, error)
	RemoveClass(ctx context.Context, input *RemoveClassInput) (*RemoveClassOutput, error)

	// Spell list and spellcasting
	AddSpell(ctx context.Context, input *AddSpellInput) (*AddSpellOutput, error)
	UpdateSpell(ctx context.Context, input *UpdateSpellInput) (*UpdateSpellOutput, error)
	RemoveSpell(ctx context.Context, input *RemoveSpellInput) (*RemoveSpellOutput, error)
	UpdateSpellSlot(ctx context.Context, input *UpdateSpellSlotInput) (*UpdateSpellSlotOutput, error)
	UpdateSpellcasting(ctx context.Context, input *UpdateSpellcastingInput) (*UpdateSpellcastingOutput, error)

	// Nested blocks
	UpdateCurrency(ctx context.Context, input *UpdateCurrencyInput) (*UpdateCurrencyOutput, error)
	UpdateStatus(ctx context.Context, input *UpdateStatusInput) (*UpdateStatusOutput, error)
	UpdateProficienciesText(ctx context.Context, input *UpdateProficienciesTextInput) (*UpdateProficienciesTextOutput, error)

	// Transfer
	ExportSheet(ctx context.Context, input *ExportSheetInput) (*ExportSheetOutput, error)
	ImportSheet(ctx context.Context, input *ImportSheetInput) (*ImportSheetOutput, error)

	// Narrative generation
	GenerateBackstory(ctx context.Context, input *GenerateBackstoryInput) (*GenerateBackstoryOutput, error)
	SuggestName(ctx context.Context, input *SuggestNameInput) (*SuggestNameOutput, error)
}

// Whole-record types

// GetSheetInput defines the request for loading a sheet
type GetSheetInput struct {
	Username string
}

// GetSheetOutput defines the response for loading a sheet. Recovered is
// set when the stored document was unreadable and a fresh default record
// was handed out in its place.
type GetSheetOutput struct {
	Character *entities.CharacterData
	Recovered bool
}

// PutSheetInput defines the request for replacing a sheet wholesale.
// Document is the raw JSON body; it goes through the same reconciliation
// pass as a load.
type PutSheetInput struct {
	Username string
	Document []byte
}

// PutSheetOutput defines the response for replacing a sheet
type PutSheetOutput struct {
	Character *entities.CharacterData
}

// Section update types

// UpdateDetailsInput is a patch of the free-text header and personality
// fields. Nil pointers leave the stored value untouched.
type UpdateDetailsInput struct {
	Username string

	Name       *string
	Race       *string
	Subrace    *string
	Alignment  *string
	Background *string
	PlayerName *string
	Experience *string
	BodyType   *string

	Inspiration *bool

	Traits *string
	Ideals *string
	Bonds  *string
	Flaws  *string

	Features  *string
	Backstory *string
}

// UpdateDetailsOutput defines the response for a details patch
type UpdateDetailsOutput struct {
	Character *entities.CharacterData
}

// UpdateAbilityInput defines the request for setting one ability score
type UpdateAbilityInput struct {
	Username string
	Ability  entities.AbilityName
	Score    int
}

// UpdateAbilityOutput defines the response for setting one ability score
type UpdateAbilityOutput struct {
	Character *entities.CharacterData
}

// ToggleProficiencyInput defines the request for flipping a proficiency
type ToggleProficiencyInput struct {
	Username string
	Key      string
}

// ToggleProficiencyOutput defines the response for flipping a proficiency
type ToggleProficiencyOutput struct {
	Character *entities.CharacterData
}

// ToggleExpertiseInput defines the request for flipping an expertise
type ToggleExpertiseInput struct {
	Username string
	Key      string
}

// ToggleExpertiseOutput defines the response for flipping an expertise
type ToggleExpertiseOutput struct {
	Character *entities.CharacterData
}

// UpdateCombatInput replaces the combat block wholesale
type UpdateCombatInput struct {
	Username string

	ACOverride         *int
	ArmorBase          int
	ArmorBonus         int
	InitiativeOverride *int
	Speed              string
	HPCurrent          int
	HPMaxOverride      *int
	HPTemp             string
	HitDiceTotal       string
	HitDiceUsed        string
}

// UpdateCombatOutput defines the response for a combat update
type UpdateCombatOutput struct {
	Character *entities.CharacterData
}

// DeathSaveKind selects the success or failure row.
type DeathSaveKind string

// Death save rows.
const (
	DeathSaveSuccess DeathSaveKind = "success"
	DeathSaveFailure DeathSaveKind = "failure"
)

// ToggleDeathSaveInput defines the request for flipping one death save
// cell. Index is 0-2.
type ToggleDeathSaveInput struct {
	Username string
	Kind     DeathSaveKind
	Index    int
}

// ToggleDeathSaveOutput defines the response for a death save toggle
type ToggleDeathSaveOutput struct {
	Character *entities.CharacterData
}

// Attack list types

// AddAttackInput defines the request for adding an attack row. The ID is
// assigned server-side.
type AddAttackInput struct {
	Username string
	Attack   entities.Attack
}

// AddAttackOutput defines the response for adding an attack row
type AddAttackOutput struct {
	Character *entities.CharacterData
	Attack    entities.Attack
}

// UpdateAttackInput defines the request for updating an attack row by id
type UpdateAttackInput struct {
	Username string
	Attack   entities.Attack
}

// UpdateAttackOutput defines the response for updating an attack row
type UpdateAttackOutput struct {
	Character *entities.CharacterData
}

// RemoveAttackInput defines the request for removing an attack row
type RemoveAttackInput struct {
	Username string
	AttackID string
}

// RemoveAttackOutput defines the response for removing an attack row
type RemoveAttackOutput struct {
	Character *entities.CharacterData
}

// Class list types

// AddClassInput defines the request for adding a class entry
type AddClassInput struct {
	Username string
	Class    entities.ClassItem
}

// AddClassOutput defines the response for adding a class entry
type AddClassOutput struct {
	Character *entities.CharacterData
	Class     entities.ClassItem
}

// UpdateClassInput defines the request for updating a class entry by id
type UpdateClassInput struct {
	Username string
	Class    entities.ClassItem
}

// UpdateClassOutput defines the response for updating a class entry
type UpdateClassOutput struct {
	Character *entities.CharacterData
}

// RemoveClassInput defines the request for removing a class entry
type RemoveClassInput struct {
	Username string
	ClassID  string
}

// RemoveClassOutput defines the response for removing a class entry
type RemoveClassOutput struct {
	Character *entities.CharacterData
}

// Spell types

// AddSpellInput defines the request for adding a spell
type AddSpellInput struct {
	Username string
	Spell    entities.Spell
}

// AddSpellOutput defines the response for adding a spell
type AddSpellOutput struct {
	Character *entities.CharacterData
	Spell     entities.Spell
}

// UpdateSpellInput defines the request for updating a spell by id
type UpdateSpellInput struct {
	Username string
	Spell    entities.Spell
}

// UpdateSpellOutput defines the response for updating a spell
type UpdateSpellOutput struct {
	Character *entities.CharacterData
}

// RemoveSpellInput defines the request for removing a spell
type RemoveSpellInput struct {
	Username string
	SpellID  string
}

// RemoveSpellOutput defines the response for removing a spell
type RemoveSpellOutput struct {
	Character *entities.CharacterData
}

// UpdateSpellSlotInput defines the request for setting one slot level.
// Level is 1-9.
type UpdateSpellSlotInput struct {
	Username string
	Level    int
	Slot     entities.SpellSlot
}

// UpdateSpellSlotOutput defines the response for setting one slot level
type UpdateSpellSlotOutput struct {
	Character *entities.CharacterData
}

// UpdateSpellcastingInput replaces the casting header fields. Slots and
// the spell list are managed through their own operations.
type UpdateSpellcastingInput struct {
	Username string

	Class               string
	Ability             entities.AbilityName
	SaveDCOverride      string
	AttackBonusOverride string
}

// UpdateSpellcastingOutput defines the response for a spellcasting update
type UpdateSpellcastingOutput struct {
	Character *entities.CharacterData
}

// Nested block types

// UpdateCurrencyInput replaces the currency block
type UpdateCurrencyInput struct {
	Username string
	Currency entities.Currency
}

// UpdateCurrencyOutput defines the response for a currency update
type UpdateCurrencyOutput struct {
	Character *entities.CharacterData
}

// UpdateStatusInput replaces the status block
type UpdateStatusInput struct {
	Username string
	Status   entities.Status
}

// UpdateStatusOutput defines the response for a status update
type UpdateStatusOutput struct {
	Character *entities.CharacterData
}

// UpdateProficienciesTextInput replaces the free-text proficiency block
type UpdateProficienciesTextInput struct {
	Username          string
	ProficienciesText entities.ProficienciesText
}

// UpdateProficienciesTextOutput defines the response for a proficiency
// text update
type UpdateProficienciesTextOutput struct {
	Character *entities.CharacterData
}

// Transfer types

// ExportSheetInput defines the request for exporting a sheet
type ExportSheetInput struct {
	Username string
}

// ExportSheetOutput carries the pretty-printed document and the download
// filename derived from the character name.
type ExportSheetOutput struct {
	Document []byte
	Filename string
}

// ImportSheetInput defines the request for importing an uploaded document
type ImportSheetInput struct {
	Username string
	Document []byte
}

// ImportSheetOutput defines the response for importing a document
type ImportSheetOutput struct {
	Character *entities.CharacterData
}

// Narrative types

// GenerateBackstoryInput defines the request for generating a backstory
type GenerateBackstoryInput struct {
	Username string
}

// GenerateBackstoryOutput carries the generated backstory. Fallback is
// set when the narrative service failed and the text is the canned
// apology rather than generated prose; fallback text is never stored.
type GenerateBackstoryOutput struct {
	Backstory string
	Fallback  bool
	Character *entities.CharacterData
}

// SuggestNameInput defines the request for suggesting a character name
type SuggestNameInput struct {
	Username string
}

// SuggestNameOutput carries the suggested name. The suggestion is never
// stored; the client applies it through a details patch if accepted.
type SuggestNameOutput struct {
	Name     string
	Fallback bool
}

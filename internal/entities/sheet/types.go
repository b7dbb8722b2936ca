// Package sheet defines the character record aggregate, its canonical
// default value, and the pure mutators and normalization pass that
// operate on it. JSON field names match the legacy document format so
// exported sheets stay interchangeable with old saves.
package sheet

// AbilityName identifies one of the six ability scores.
type AbilityName string

// The six abilities.
const (
	STR AbilityName = "STR"
	DEX AbilityName = "DEX"
	CON AbilityName = "CON"
	INT AbilityName = "INT"
	WIS AbilityName = "WIS"
	CHA AbilityName = "CHA"
)

// AbilityNames lists the six abilities in display order.
var AbilityNames = []AbilityName{STR, DEX, CON, INT, WIS, CHA}

// IsAbilityName reports whether s names one of the six abilities.
func IsAbilityName(s string) bool {
	for _, a := range AbilityNames {
		if string(a) == s {
			return true
		}
	}
	return false
}

// AbilityScores holds the six raw ability scores. Conventionally 1-30 but
// the model does not constrain them; the calculator tolerates any integer.
type AbilityScores struct {
	STR int `json:"STR"`
	DEX int `json:"DEX"`
	CON int `json:"CON"`
	INT int `json:"INT"`
	WIS int `json:"WIS"`
	CHA int `json:"CHA"`
}

// Get returns the score for the named ability, 0 for unknown names.
func (a AbilityScores) Get(name AbilityName) int {
	switch name {
	case STR:
		return a.STR
	case DEX:
		return a.DEX
	case CON:
		return a.CON
	case INT:
		return a.INT
	case WIS:
		return a.WIS
	case CHA:
		return a.CHA
	}
	return 0
}

// Set assigns the score for the named ability. Unknown names are ignored.
func (a *AbilityScores) Set(name AbilityName, score int) {
	switch name {
	case STR:
		a.STR = score
	case DEX:
		a.DEX = score
	case CON:
		a.CON = score
	case INT:
		a.INT = score
	case WIS:
		a.WIS = score
	case CHA:
		a.CHA = score
	}
}

// ClassItem is one class entry in a multiclass list.
type ClassItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Subclass string `json:"subclass"`
}

// Attack is one row in the attacks table. Bonus and damage are free text
// on purpose; players write formulas and dice expressions there.
type Attack struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Bonus  string `json:"bonus"`
	Damage string `json:"damage"`
	Type   string `json:"type"`
	Notes  string `json:"notes"`
}

// Spell is one known or prepared spell. Level 0 is a cantrip, for which
// the prepared flag carries no meaning.
type Spell struct {
	ID            string `json:"id"`
	Level         int    `json:"level"`
	Name          string `json:"name"`
	Prepared      bool   `json:"prepared"`
	Time          string `json:"time"`
	Range         string `json:"range"`
	Components    string `json:"components"`
	Duration      string `json:"duration"`
	Concentration bool   `json:"concentration"`
	Ritual        bool   `json:"ritual"`
}

// SpellSlot tracks total and expended slots for one spell level as free
// text; players track halves and reminders in these boxes.
type SpellSlot struct {
	Total    string `json:"total"`
	Expended string `json:"expended"`
}

// Spellcasting groups the casting class, ability, overrides, slots, and
// spell list. Empty overrides mean "use the computed value"; non-empty
// overrides are displayed verbatim.
type Spellcasting struct {
	Class               string            `json:"class"`
	Ability             AbilityName       `json:"ability"`
	SaveDCOverride      string            `json:"saveDCOverride"`
	AttackBonusOverride string            `json:"attackBonusOverride"`
	Slots               map[int]SpellSlot `json:"slots"`
	Spells              []Spell           `json:"spells"`
}

// Currency holds the five coin denominations as free text to tolerate
// expressions and approximate values.
type Currency struct {
	CP string `json:"cp"`
	SP string `json:"sp"`
	EP string `json:"ep"`
	GP string `json:"gp"`
	PP string `json:"pp"`
}

// Status tracks concentration and free-text conditions.
type Status struct {
	Concentrating bool   `json:"concentrating"`
	Conditions    string `json:"conditions"`
	Other         string `json:"other"`
}

// DeathSaves holds the three success and three failure checkboxes.
type DeathSaves struct {
	Success  [3]bool `json:"success"`
	Failures [3]bool `json:"failures"`
}

// ProficienciesText holds the five free-text proficiency categories.
type ProficienciesText struct {
	Armor     string `json:"armor"`
	Weapons   string `json:"weapons"`
	Tools     string `json:"tools"`
	Languages string `json:"languages"`
	Other     string `json:"other"`
}

// CharacterData is the aggregate character record. Mutators never modify
// a record in place; they return a new record so concurrent observers
// never see a partial update.
type CharacterData struct {
	Name       string      `json:"name"`
	Race       string      `json:"race"`
	Subrace    string      `json:"subrace"`
	Classes    []ClassItem `json:"classes"`
	Alignment  string      `json:"alignment"`
	Background string      `json:"background"`
	PlayerName string      `json:"playerName"`
	Experience string      `json:"experience"`
	BodyType   string      `json:"bodyType"`

	Abilities   AbilityScores `json:"abilities"`
	Inspiration bool          `json:"inspiration"`

	Proficiencies StringSet `json:"proficiencies"`
	Expertises    StringSet `json:"expertises"`

	ACOverride         *int   `json:"acOverride"`
	ArmorBase          int    `json:"armorBase"`
	ArmorBonus         int    `json:"armorBonus"`
	InitiativeOverride *int   `json:"initiativeOverride"`
	Speed              string `json:"speed"`
	HPCurrent          int    `json:"hpCurrent"`
	HPMaxOverride      *int   `json:"hpMaxOverride"`
	HPTemp             string `json:"hpTemp"`
	HitDiceTotal       string `json:"hitDiceTotal"`
	HitDiceUsed        string `json:"hitDiceUsed"`

	DeathSaves DeathSaves `json:"deathSaves"`

	Traits string `json:"traits"`
	Ideals string `json:"ideals"`
	Bonds  string `json:"bonds"`
	Flaws  string `json:"flaws"`

	Attacks []Attack `json:"attacks"`

	ProficienciesText ProficienciesText `json:"proficienciesText"`
	Currency          Currency          `json:"currency"`
	Status            Status            `json:"status"`

	Features string `json:"features"`

	Spellcasting Spellcasting `json:"spellcasting"`

	Backstory string `json:"backstory"`
}

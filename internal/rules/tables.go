package rules

// Skill pairs a skill name with its governing ability.
type Skill struct {
	Name    string
	Ability string
}

// Skills lists the eighteen standard skills in display order.
var Skills = []Skill{
	{Name: "Acrobatics", Ability: "DEX"},
	{Name: "Animal Handling", Ability: "WIS"},
	{Name: "Arcana", Ability: "INT"},
	{Name: "Athletics", Ability: "STR"},
	{Name: "Deception", Ability: "CHA"},
	{Name: "History", Ability: "INT"},
	{Name: "Insight", Ability: "WIS"},
	{Name: "Intimidation", Ability: "CHA"},
	{Name: "Investigation", Ability: "INT"},
	{Name: "Medicine", Ability: "WIS"},
	{Name: "Nature", Ability: "INT"},
	{Name: "Perception", Ability: "WIS"},
	{Name: "Performance", Ability: "CHA"},
	{Name: "Persuasion", Ability: "CHA"},
	{Name: "Religion", Ability: "INT"},
	{Name: "Sleight of Hand", Ability: "DEX"},
	{Name: "Stealth", Ability: "DEX"},
	{Name: "Survival", Ability: "WIS"},
}

// SkillPerception is the skill key consulted for passive perception.
const SkillPerception = "Perception"

// Classes lists the selectable class names.
var Classes = []string{
	"Barbarian", "Bard", "Cleric", "Druid", "Fighter",
	"Monk", "Paladin", "Ranger", "Rogue", "Sorcerer", "Warlock", "Wizard",
}

// Alignments lists the nine standard alignments.
var Alignments = []string{
	"Lawful Good", "Neutral Good", "Chaotic Good",
	"Lawful Neutral", "True Neutral", "Chaotic Neutral",
	"Lawful Evil", "Neutral Evil", "Chaotic Evil",
}

// hitDice maps class names to hit die sizes.
var hitDice = map[string]int{
	"Barbarian": 12,
	"Bard":      8,
	"Cleric":    8,
	"Druid":     8,
	"Fighter":   10,
	"Monk":      8,
	"Paladin":   10,
	"Ranger":    10,
	"Rogue":     8,
	"Sorcerer":  6,
	"Warlock":   8,
	"Wizard":    6,
}

// defaultHitDie is used for class names not in the table, including
// homebrew free-text entries.
const defaultHitDie = 8

// HitDie returns the hit die size for a class name.
func HitDie(className string) int {
	if die, ok := hitDice[className]; ok {
		return die
	}
	return defaultHitDie
}

package progression

import "github.com/akwawa/guildmaster/internal/domain"

// StatBonus is the per-level class bonus applied on top of the random gains
type StatBonus struct {
	Stat  string
	Bonus int
}

// Stat name keys for the class bonus table
const (
	StatStrength     = "strength"
	StatAgility      = "agility"
	StatIntelligence = "intelligence"
	StatVitality     = "vitality"
)

// classStatBonuses is the single owner of the class-keyed growth table.
// Unknown classes fall back to +1 strength.
var classStatBonuses = map[string]StatBonus{
	"Guerrier":  {StatStrength, 2},
	"Guerrière": {StatStrength, 2},
	"Mage":      {StatIntelligence, 2},
	"Magicienne": {StatIntelligence, 2},
	"Rôdeur":    {StatAgility, 2},
	"Rôdeuse":   {StatAgility, 2},
	"Paladin":   {StatVitality, 2},
	"Paladine":  {StatVitality, 2},
	"Druide":    {StatIntelligence, 1},
	"Druidesse": {StatIntelligence, 1},
	"Roublard":  {StatAgility, 2},
	"Roublarde": {StatAgility, 2},
	"Clerc":     {StatIntelligence, 1},
	"Barbare":   {StatStrength, 2},
}

var magicClasses = map[string]bool{
	"Mage":       true,
	"Magicienne": true,
	"Clerc":      true,
	"Druide":     true,
	"Druidesse":  true,
	"Paladin":    true,
	"Paladine":   true,
}

// ClassStatBonus returns the per-level stat bonus for a class.
func ClassStatBonus(class string) StatBonus {
	if b, ok := classStatBonuses[class]; ok {
		return b
	}
	return StatBonus{StatStrength, 1}
}

// IsMagicClass reports whether the class has a mana pool.
func IsMagicClass(class string) bool {
	return magicClasses[class]
}

// specialtyBonuses maps team specialty x quest type to a flat success-chance
// bonus. Missing pairs contribute nothing.
var specialtyBonuses = map[string]map[domain.QuestType]int{
	"Combat": {
		domain.QuestTypeCombat: 10,
		domain.QuestTypeChasse: 5,
	},
	"Magie": {
		domain.QuestTypeReligieux: 10,
		domain.QuestTypeDonjon:    5,
	},
	"Exploration": {
		domain.QuestTypeRecuperation: 10,
		domain.QuestTypeEscorte:      5,
		domain.QuestTypePatrouille:   5,
	},
	"Diplomatie": {
		domain.QuestTypeDiplomatie: 15,
		domain.QuestTypePrestige:   10,
	},
}

// SpecialtyBonus returns the flat success-chance bonus a team specialty grants
// against a quest type.
func SpecialtyBonus(specialty string, questType domain.QuestType) int {
	if m, ok := specialtyBonuses[specialty]; ok {
		return m[questType]
	}
	return 0
}

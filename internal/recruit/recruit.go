// Package recruit rolls the candidates offered in the recruitment pool. The
// core simulation only round-trips the pool; this package owns its contents.
package recruit

import (
	"math"
	"math/rand"

	"github.com/akwawa/guildmaster/internal/catalog"
	"github.com/akwawa/guildmaster/internal/domain"
	"github.com/akwawa/guildmaster/internal/progression"
)

// DefaultPoolSize is the number of candidates offered per refresh
const DefaultPoolSize = 6

// RefreshIntervalCycles is how often the pool is rerolled (once per day)
const RefreshIntervalCycles = domain.CyclesPerDay

var rarityStatMultipliers = map[domain.Rarity]float64{
	domain.RarityCommon:    0.8,
	domain.RarityRare:      1.0,
	domain.RarityEpic:      1.2,
	domain.RarityLegendary: 1.5,
}

var rarityBaseCosts = map[domain.Rarity]int{
	domain.RarityCommon:    100,
	domain.RarityRare:      250,
	domain.RarityEpic:      500,
	domain.RarityLegendary: 1000,
}

var classCostFactors = map[string]float64{
	"Guerrier": 1.0, "Guerrière": 1.0,
	"Mage": 1.3, "Magicienne": 1.3,
	"Rôdeur": 1.1, "Rôdeuse": 1.1,
	"Paladin": 1.4, "Paladine": 1.4,
	"Druide": 1.2, "Druidesse": 1.2,
	"Roublard": 1.1, "Roublarde": 1.1,
	"Clerc":    1.2,
	"Barbare":  1.0,
}

// Rarity draw pool: commons are most likely, legendaries rare
var rarityDrawPool = []domain.Rarity{
	domain.RarityCommon, domain.RarityCommon, domain.RarityCommon,
	domain.RarityRare, domain.RarityRare,
	domain.RarityEpic,
	domain.RarityLegendary,
}

// Generator rolls recruit candidates from the catalog tables
type Generator struct {
	tables catalog.RecruitTables
	rng    *rand.Rand
}

// NewGenerator creates a recruit generator with its own seeded source.
func NewGenerator(cat *catalog.Catalog, seed int64) *Generator {
	//nolint:gosec // game mechanics, not cryptography
	return &Generator{tables: cat.Recruits, rng: rand.New(rand.NewSource(seed))}
}

// NewGeneratorWithRand creates a generator sharing an existing rand source.
func NewGeneratorWithRand(cat *catalog.Catalog, rng *rand.Rand) *Generator {
	return &Generator{tables: cat.Recruits, rng: rng}
}

// GeneratePool rolls a fresh set of hire candidates.
func (g *Generator) GeneratePool(count int) []domain.RecruitableCharacter {
	out := make([]domain.RecruitableCharacter, count)
	for i := range out {
		out[i] = g.generateOne()
	}
	return out
}

func (g *Generator) generateOne() domain.RecruitableCharacter {
	rarity := rarityDrawPool[g.rng.Intn(len(rarityDrawPool))]
	class := g.tables.Classes[g.rng.Intn(len(g.tables.Classes))]

	race := class.Races[g.rng.Intn(len(class.Races))]
	gender := "male"
	if g.rng.Float64() > 0.5 {
		gender = "female"
	}
	names := g.tables.Names[race][gender]
	name := names[g.rng.Intn(len(names))]

	level := g.rollLevel(rarity)
	stats := g.rollStats(class.BaseStats, rarity)

	maxHealth := 50 + stats.Vitality*5 + level*10
	maxMana := 0
	if isMagicRecruitClass(class.Name) {
		maxMana = 30 + stats.Intelligence*3 + level*5
	}

	skills := make([]domain.Skill, len(class.Skills))
	for i, s := range class.Skills {
		skills[i] = domain.Skill{ID: i + 1, Name: s, Level: 1, MaxLevel: 5, Type: "combat"}
	}

	return domain.RecruitableCharacter{
		Name:            name,
		Level:           level,
		Class:           class.Name,
		Stats:           stats,
		Experience:      (level-1)*1000 + g.rng.Intn(500),
		Health:          maxHealth,
		MaxHealth:       maxHealth,
		Mana:            maxMana,
		MaxMana:         maxMana,
		Skills:          skills,
		Biography:       g.pickBiography(class.Name),
		RecruitmentCost: RecruitmentCost(level, rarity, class.Name),
		Rarity:          rarity,
	}
}

func (g *Generator) rollLevel(rarity domain.Rarity) int {
	switch rarity {
	case domain.RarityLegendary:
		return g.rng.Intn(3) + 4
	case domain.RarityEpic:
		return g.rng.Intn(2) + 3
	case domain.RarityRare:
		return g.rng.Intn(2) + 2
	default:
		return g.rng.Intn(2) + 1
	}
}

func (g *Generator) rollStats(base domain.Stats, rarity domain.Rarity) domain.Stats {
	mult := rarityStatMultipliers[rarity]
	variance := 0.2
	if rarity == domain.RarityLegendary {
		variance = 0.3
	}
	roll := func(v int) int {
		return int(math.Round(float64(v) * mult * (1 + (g.rng.Float64()-0.5)*variance)))
	}
	return domain.Stats{
		Strength:     roll(base.Strength),
		Agility:      roll(base.Agility),
		Intelligence: roll(base.Intelligence),
		Vitality:     roll(base.Vitality),
	}
}

func (g *Generator) pickBiography(class string) string {
	bios, ok := g.tables.Biographies[baseClassKey(class)]
	if !ok {
		bios = g.tables.Biographies["Guerrier"]
	}
	if len(bios) == 0 {
		return ""
	}
	return bios[g.rng.Intn(len(bios))]
}

// RecruitmentCost scales with rarity, level and class.
func RecruitmentCost(level int, rarity domain.Rarity, class string) int {
	base, ok := rarityBaseCosts[rarity]
	if !ok {
		base = rarityBaseCosts[domain.RarityCommon]
	}
	factor, ok := classCostFactors[class]
	if !ok {
		factor = 1.0
	}
	return int(math.Round(float64(base) * math.Pow(1.5, float64(level-1)) * factor))
}

// biographyGroups folds feminine class variants onto their biography group
var biographyGroups = map[string]string{
	"Guerrière":  "Guerrier",
	"Magicienne": "Mage",
	"Rôdeuse":    "Rôdeur",
	"Paladine":   "Paladin",
	"Druidesse":  "Druide",
	"Roublarde":  "Roublard",
}

func baseClassKey(class string) string {
	if base, ok := biographyGroups[class]; ok {
		return base
	}
	return class
}

func isMagicRecruitClass(class string) bool {
	return progression.IsMagicClass(class)
}

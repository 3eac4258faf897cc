// Package questgen turns quest templates into concrete quest instances and
// maintains the available-quest pool: spawn rolls, weighted selection, expiry
// and regeneration cadence.
package questgen

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/akwawa/guildmaster/internal/catalog"
	"github.com/akwawa/guildmaster/internal/domain"
)

// Rank gates: both the reputation and the guild-level condition must hold
const (
	rank2Reputation = 300
	rank2GuildLevel = 2
	rank3Reputation = 800
	rank3GuildLevel = 4
	rank4Reputation = 2000
	rank4GuildLevel = 5
)

// Pool regeneration runs at most once per full day
const regenerationIntervalCycles = domain.CyclesPerDay

var rarityRewardMultipliers = map[domain.Rarity]float64{
	domain.RarityCommon:    1.0,
	domain.RarityRare:      1.2,
	domain.RarityEpic:      1.5,
	domain.RarityLegendary: 2.0,
}

var rarityWeights = map[domain.Rarity]float64{
	domain.RarityCommon:    1.0,
	domain.RarityRare:      0.6,
	domain.RarityEpic:      0.3,
	domain.RarityLegendary: 0.1,
}

// Generator produces quest instances from the injected template catalog
type Generator struct {
	catalog *catalog.Catalog
	rng     *rand.Rand
	now     func() time.Time
}

// NewGenerator creates a generator seeded for reproducible draws.
func NewGenerator(cat *catalog.Catalog, seed int64) *Generator {
	//nolint:gosec // game mechanics, not cryptography
	return &Generator{catalog: cat, rng: rand.New(rand.NewSource(seed)), now: time.Now}
}

// NewGeneratorWithRand creates a generator sharing an existing rand source.
func NewGeneratorWithRand(cat *catalog.Catalog, rng *rand.Rand) *Generator {
	return &Generator{catalog: cat, rng: rng, now: time.Now}
}

// MaxAccessibleRank returns the highest quest rank a guild can see. Each step
// requires both the reputation and the guild-level threshold.
func MaxAccessibleRank(reputation, guildLevel int) int {
	switch {
	case reputation >= rank4Reputation && guildLevel >= rank4GuildLevel:
		return domain.RankExpert
	case reputation >= rank3Reputation && guildLevel >= rank3GuildLevel:
		return domain.RankAvance
	case reputation >= rank2Reputation && guildLevel >= rank2GuildLevel:
		return domain.RankIntermediaire
	default:
		return domain.RankDebutant
	}
}

// GenerateDailyQuests rolls every daily template the guild's reputation allows.
func (g *Generator) GenerateDailyQuests(save domain.GameSave) []domain.Quest {
	var out []domain.Quest
	for _, t := range g.catalog.DailyTemplates() {
		if save.Guild.Reputation < t.RequiredReputation {
			continue
		}
		if g.rng.Float64() >= t.SpawnChance {
			continue
		}
		q := g.Instantiate(t)
		exp := save.Cycle.TotalCycles + t.AvailabilityDays*domain.CyclesPerDay
		q.ExpirationCycle = &exp
		out = append(out, q)
	}
	return out
}

// GenerateRandomQuests draws up to count unique non-daily quests using the
// weighted selection. Fewer than count may result when spawn rolls fail; that
// is expected.
func (g *Generator) GenerateRandomQuests(save domain.GameSave, count int) []domain.Quest {
	maxRank := MaxAccessibleRank(save.Guild.Reputation, save.Guild.Level)

	var eligible []domain.QuestTemplate
	for _, t := range g.catalog.StandardTemplates() {
		if t.Rank <= maxRank && save.Guild.Reputation >= t.RequiredReputation {
			eligible = append(eligible, t)
		}
	}

	var out []domain.Quest
	attempts := count * 3
	for i := 0; i < attempts && len(out) < count; i++ {
		t, ok := g.selectWeightedTemplate(eligible, save.Guild.Reputation)
		if !ok || g.rng.Float64() >= t.SpawnChance {
			continue
		}
		duplicate := false
		for _, q := range out {
			if q.TemplateID == t.ID {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		q := g.Instantiate(t)
		exp := save.Cycle.TotalCycles + t.AvailabilityDays*domain.CyclesPerDay
		q.ExpirationCycle = &exp
		out = append(out, q)
	}
	return out
}

// selectWeightedTemplate runs a cumulative-weight roulette draw. Templates
// whose rank matches the guild's reputation tier get a 1.5x weight; rarer
// templates weigh less.
func (g *Generator) selectWeightedTemplate(templates []domain.QuestTemplate, reputation int) (domain.QuestTemplate, bool) {
	if len(templates) == 0 {
		return domain.QuestTemplate{}, false
	}

	reputationRank := reputation/500 + 1
	weights := make([]float64, len(templates))
	total := 0.0
	for i, t := range templates {
		w := 1.0
		if t.Rank == reputationRank {
			w *= 1.5
		}
		if rw, ok := rarityWeights[t.Rarity]; ok {
			w *= rw
		}
		weights[i] = w
		total += w
	}

	r := g.rng.Float64() * total
	for i := range templates {
		r -= weights[i]
		if r <= 0 {
			return templates[i], true
		}
	}
	// float rounding can leave a remainder; fall back to the last template
	return templates[len(templates)-1], true
}

// Instantiate builds a concrete quest from a template: random enemy, location
// and artifact, substituted description, and ±20% variance on difficulty,
// duration and reward. The reward is scaled by rarity before the variance.
func (g *Generator) Instantiate(t domain.QuestTemplate) domain.Quest {
	enemy := g.pick(t.Enemies)
	location := g.pick(t.Locations)
	artifact := ""
	if len(t.Artifacts) > 0 {
		artifact = g.pick(t.Artifacts)
	}

	description := strings.Replace(t.DescriptionTemplate, "{enemy}", enemy, 1)
	description = strings.Replace(description, "{location}", location, 1)
	if artifact != "" {
		description = strings.Replace(description, "{artifact}", artifact, 1)
	}

	rarityMult, ok := rarityRewardMultipliers[t.Rarity]
	if !ok {
		rarityMult = 1.0
	}

	const variance = 0.2
	difficulty := int(math.Round(float64(t.BaseDifficulty) * (1 + g.variance(variance))))
	duration := int(math.Round(float64(t.BaseDuration) * (1 + g.variance(variance))))
	reward := int(math.Round(float64(t.BaseReward) * rarityMult * (1 + g.variance(variance))))
	if difficulty < 1 {
		difficulty = 1
	}
	if duration < 1 {
		duration = 1
	}

	return domain.Quest{
		ID:                 fmt.Sprintf("%s_%d_%s", t.ID, g.now().UnixNano(), uuid.NewString()[:8]),
		TemplateID:         t.ID,
		Title:              t.Title,
		Description:        description,
		Difficulty:         difficulty,
		Duration:           duration,
		Reward:             reward,
		Type:               t.Type,
		Rank:               t.Rank,
		RequiredLevel:      t.RequiredLevel,
		RequiredReputation: t.RequiredReputation,
		Rarity:             t.Rarity,
		Enemy:              enemy,
		Location:           location,
		Artifact:           artifact,
		IsDaily:            t.IsDaily,
	}
}

func (g *Generator) variance(v float64) float64 {
	return g.rng.Float64()*v*2 - v
}

func (g *Generator) pick(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[g.rng.Intn(len(values))]
}

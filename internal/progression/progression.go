// Package progression implements the experience and leveling system: quest XP,
// level curves, stat growth, success chances and post-quest reward
// distribution. All randomness flows through an injected rand source so
// outcomes are reproducible under a fixed seed.
package progression

import (
	"math"
	"math/rand"

	"github.com/akwawa/guildmaster/internal/domain"
)

// System rolls dice for level-up stat gains and quest outcomes
type System struct {
	rng *rand.Rand
}

// NewSystem creates a progression system with the given seed.
func NewSystem(seed int64) *System {
	//nolint:gosec // game mechanics, not cryptography
	return &System{rng: rand.New(rand.NewSource(seed))}
}

// NewSystemWithRand creates a progression system sharing an existing source.
func NewSystemWithRand(rng *rand.Rand) *System {
	return &System{rng: rng}
}

var rarityExpMultipliers = map[domain.Rarity]float64{
	domain.RarityCommon:    1.0,
	domain.RarityRare:      1.3,
	domain.RarityEpic:      1.6,
	domain.RarityLegendary: 2.0,
}

// QuestExperience computes the XP value of a quest from its difficulty, rank
// and rarity.
func QuestExperience(q domain.Quest) int {
	base := float64(q.Difficulty * 100)
	rankMult := float64(q.Rank) * 0.5
	rarityMult, ok := rarityExpMultipliers[q.Rarity]
	if !ok {
		rarityMult = 1.0
	}
	return int(math.Round(base * (1 + rankMult) * rarityMult))
}

// CharacterLevel converts character experience to a level.
// Level thresholds: 0, 100, 400, 900, ...
func CharacterLevel(experience int) int {
	if experience < 0 {
		experience = 0
	}
	return int(math.Floor(math.Sqrt(float64(experience)/100))) + 1
}

// TeamLevel converts team experience to a level. Teams level at half the pace
// of characters.
func TeamLevel(experience int) int {
	if experience < 0 {
		experience = 0
	}
	return int(math.Floor(math.Sqrt(float64(experience)/200))) + 1
}

// ExperienceForLevel returns the character experience threshold for a level.
func ExperienceForLevel(level int) int {
	return (level - 1) * (level - 1) * 100
}

// ExperienceToNextLevel returns the XP missing until the next character level.
func ExperienceToNextLevel(currentExp int) int {
	return ExperienceForLevel(CharacterLevel(currentExp)+1) - currentExp
}

// SuccessChance is the resolution-time success probability of a team on a
// quest, as a percentage clamped to [10, 95].
func SuccessChance(team domain.Team, quest domain.Quest) float64 {
	chance := successChanceBase(team, quest)
	chance += math.Min(float64(team.Reputation)/100, 20)
	return clampChance(chance)
}

// EstimateSuccessChance is the pre-assignment estimate shown to the player. It
// omits the team-reputation term, so displayed odds run pessimistic relative
// to actual resolution.
func EstimateSuccessChance(team domain.Team, quest domain.Quest) float64 {
	return clampChance(successChanceBase(team, quest))
}

func successChanceBase(team domain.Team, quest domain.Quest) float64 {
	chance := 50.0
	chance += 15 * float64(team.Level-quest.RequiredLevel)
	chance -= 10 * float64(quest.Difficulty-1)
	chance += math.Min(5*float64(len(team.Members)), 25)
	chance += float64(SpecialtyBonus(team.Specialty, quest.Type))
	return chance
}

func clampChance(chance float64) float64 {
	return math.Max(10, math.Min(95, chance))
}

// RollSuccess performs the single Bernoulli trial deciding a quest's outcome.
func (s *System) RollSuccess(team domain.Team, quest domain.Quest) bool {
	return s.rng.Float64()*100 < SuccessChance(team, quest)
}

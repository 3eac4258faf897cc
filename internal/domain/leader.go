package domain

// BonusType tags a leader percentage modifier by the value it applies to
type BonusType string

const (
	BonusGold         BonusType = "gold"
	BonusExperience   BonusType = "experience"
	BonusReputation   BonusType = "reputation"
	BonusQuestRewards BonusType = "quest_rewards"
	BonusBuildingCost BonusType = "building_cost"
	BonusRecruitment  BonusType = "recruitment"
)

// LeaderModifier is a percentage bonus or malus tagged by effect category
type LeaderModifier struct {
	Type        BonusType `json:"type"`
	Value       int       `json:"value"` // percent
	Description string    `json:"description,omitempty"`
}

// SpecialAbility is descriptive only; it has no mechanical effect in the core
type SpecialAbility struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// PlayerLeader is the immutable archetype chosen at new-game time
type PlayerLeader struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Title             string           `json:"title"`
	Background        string           `json:"background"`
	Description       string           `json:"description,omitempty"`
	StartingGold      int              `json:"startingGold"`
	StartingGems      int              `json:"startingGems"`
	Bonuses           []LeaderModifier `json:"bonuses"`
	Maluses           []LeaderModifier `json:"maluses"`
	StartingBuildings []BuildingType   `json:"startingBuildings"`
	SpecialAbility    SpecialAbility   `json:"specialAbility"`
}

// BonusPercent sums the leader's bonuses minus maluses for one effect category.
func (l PlayerLeader) BonusPercent(t BonusType) int {
	total := 0
	for _, b := range l.Bonuses {
		if b.Type == t {
			total += b.Value
		}
	}
	for _, m := range l.Maluses {
		if m.Type == t {
			total -= m.Value
		}
	}
	return total
}

// ApplyBonus applies the leader's net percentage modifier for the category to a
// gain (reward, experience, reputation), rounding to the nearest integer.
func (l PlayerLeader) ApplyBonus(t BonusType, base int) int {
	pct := l.BonusPercent(t)
	if pct == 0 {
		return base
	}
	adjusted := float64(base) * (1 + float64(pct)/100)
	if adjusted < 0 {
		return 0
	}
	return int(adjusted + 0.5)
}

// ApplyCost applies the modifier to a cost. A positive net percent is a
// discount, a negative one a surcharge.
func (l PlayerLeader) ApplyCost(t BonusType, base int) int {
	pct := l.BonusPercent(t)
	if pct == 0 {
		return base
	}
	adjusted := float64(base) * (1 - float64(pct)/100)
	if adjusted < 0 {
		return 0
	}
	return int(adjusted + 0.5)
}

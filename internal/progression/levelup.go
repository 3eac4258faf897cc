package progression

import "github.com/akwawa/guildmaster/internal/domain"

// LevelUpCharacter recomputes the character's level from experience and, when
// it rose, applies stat, health and mana growth for each level gained. Current
// health is healed by exactly the amount the maximum grew; it never drops.
func (s *System) LevelUpCharacter(c domain.Character) domain.Character {
	newLevel := CharacterLevel(c.Experience)
	if newLevel <= c.Level {
		return c
	}
	diff := newLevel - c.Level

	gain := domain.Stats{
		Strength:     s.rng.Intn(3) + 1,
		Agility:      s.rng.Intn(3) + 1,
		Intelligence: s.rng.Intn(3) + 1,
		Vitality:     s.rng.Intn(3) + 1,
	}
	bonus := ClassStatBonus(c.Class)
	switch bonus.Stat {
	case StatStrength:
		gain.Strength += bonus.Bonus
	case StatAgility:
		gain.Agility += bonus.Bonus
	case StatIntelligence:
		gain.Intelligence += bonus.Bonus
	case StatVitality:
		gain.Vitality += bonus.Bonus
	}

	healthGain := (gain.Vitality*5 + 10) * diff
	manaGain := 0
	if IsMagicClass(c.Class) {
		manaGain = (gain.Intelligence*3 + 5) * diff
	}

	c.Level = newLevel
	c.Stats = domain.Stats{
		Strength:     c.Stats.Strength + gain.Strength*diff,
		Agility:      c.Stats.Agility + gain.Agility*diff,
		Intelligence: c.Stats.Intelligence + gain.Intelligence*diff,
		Vitality:     c.Stats.Vitality + gain.Vitality*diff,
	}
	c.MaxHealth += healthGain
	c.Health += healthGain
	c.MaxMana += manaGain
	c.Mana += manaGain
	return c
}

// LevelUpTeam recomputes the team's level from experience; each level gained
// raises the team's reputation by 50.
func (s *System) LevelUpTeam(t domain.Team) domain.Team {
	newLevel := TeamLevel(t.Experience)
	if newLevel <= t.Level {
		return t
	}
	diff := newLevel - t.Level
	t.Level = newLevel
	t.Reputation += diff * 50
	return t
}

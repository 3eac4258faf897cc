package questgen

import "github.com/akwawa/guildmaster/internal/domain"

// Base pool size before the guild-level scaling kicks in
const basePoolSize = 8

// RemoveExpired filters out quests whose expiration cycle has passed.
func RemoveExpired(quests []domain.Quest, totalCycles int) []domain.Quest {
	out := make([]domain.Quest, 0, len(quests))
	for _, q := range quests {
		if !q.Expired(totalCycles) {
			out = append(out, q)
		}
	}
	return out
}

// ShouldRegenerate reports whether a full day has passed since the last
// quest-pool refresh.
func ShouldRegenerate(save domain.GameSave) bool {
	return save.Cycle.TotalCycles-save.LastQuestGeneration >= regenerationIntervalCycles
}

// UpdateQuestPool runs the expiry pass and, once per day, regenerates the
// pool: dailies are replaced wholesale and the non-daily pool is topped up to
// its guild-level-dependent cap. Returns a new save; the input is not mutated.
func (g *Generator) UpdateQuestPool(save domain.GameSave) domain.GameSave {
	available := RemoveExpired(save.AvailableQuests, save.Cycle.TotalCycles)

	if !ShouldRegenerate(save) {
		save.AvailableQuests = available
		return save
	}

	nonDaily := make([]domain.Quest, 0, len(available))
	for _, q := range available {
		if !q.IsDaily {
			nonDaily = append(nonDaily, q)
		}
	}

	maxQuests := basePoolSize + save.Guild.Level/2
	toGenerate := maxQuests - len(nonDaily)
	if toGenerate < 0 {
		toGenerate = 0
	}

	pool := nonDaily
	pool = append(pool, g.GenerateDailyQuests(save)...)
	pool = append(pool, g.GenerateRandomQuests(save, toGenerate)...)

	save.AvailableQuests = pool
	save.LastQuestGeneration = save.Cycle.TotalCycles
	return save
}

// VisibleQuests filters the available pool against the guild's current rank
// and reputation. Stricter than generation-time eligibility so stale quests
// are tolerated after a reputation regression.
func VisibleQuests(save domain.GameSave) []domain.Quest {
	maxRank := MaxAccessibleRank(save.Guild.Reputation, save.Guild.Level)
	out := make([]domain.Quest, 0, len(save.AvailableQuests))
	for _, q := range save.AvailableQuests {
		if q.Rank <= maxRank && q.RequiredReputation <= save.Guild.Reputation {
			out = append(out, q)
		}
	}
	return out
}

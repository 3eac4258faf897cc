package game

import (
	"github.com/akwawa/guildmaster/internal/domain"
	"github.com/akwawa/guildmaster/internal/progression"
)

// Guild gains applied when a reward is collected
const guildExperiencePerDifficulty = 50

// CollectQuestReward settles a resolved quest: experience and gold shares go to
// the team and its members, the guild banks the reward, and the quest flips to
// collected. Collecting a quest that is absent or already collected is a no-op
// returning the save unchanged, so a double collection never pays out twice.
func (s *Service) CollectQuestReward(save domain.GameSave, questID string) domain.GameSave {
	idx := -1
	for i, cq := range save.CompletedQuests {
		if cq.ID == questID && cq.Status == domain.QuestStatusAwaitingCollection {
			idx = i
			break
		}
	}
	if idx == -1 {
		return save
	}

	next := save.Clone()
	quest := next.CompletedQuests[idx]

	next.Characters, next.Teams = s.prog.Distribute(quest, next.Characters, next.Teams)
	next = syncTeamSnapshots(next)

	next.Guild.Gold += next.PlayerLeader.ApplyBonus(domain.BonusGold, quest.ActualReward)
	next.Guild.Experience += next.PlayerLeader.ApplyBonus(domain.BonusExperience, quest.Difficulty*guildExperiencePerDifficulty)
	repGain := quest.Difficulty * 2
	if quest.Success {
		repGain = quest.Difficulty * 10
	}
	next.Guild.Reputation += next.PlayerLeader.ApplyBonus(domain.BonusReputation, repGain)

	// Guild level only ever moves up
	if lvl := progression.TeamLevel(next.Guild.Experience); lvl > next.Guild.Level {
		next.Guild.Level = lvl
	}

	next.CompletedQuests[idx].Status = domain.QuestStatusCompleted
	return next
}

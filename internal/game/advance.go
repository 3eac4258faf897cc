package game

import (
	"math"

	"github.com/akwawa/guildmaster/internal/domain"
	"github.com/akwawa/guildmaster/internal/progression"
	"github.com/akwawa/guildmaster/internal/recruit"
)

// Reward kept on failure: 30% of the adjusted reward
const failureRewardFactor = 0.3

// AdvanceCycle advances the simulation by one period: ticks active quests,
// resolves the finished ones, completes building upgrades, refreshes the
// recruitment pool and regenerates the quest pool. Teams are freed at
// resolution time; the gold/XP settlement waits for collection.
func (s *Service) AdvanceCycle(save domain.GameSave) domain.GameSave {
	next := save.Clone()
	next.Cycle = next.Cycle.Tick()

	var stillActive []domain.ActiveQuest
	var finished []domain.ActiveQuest
	for _, aq := range next.ActiveQuests {
		if aq.CyclesRemaining > 0 {
			aq.CyclesRemaining--
		}
		if aq.Duration > 0 {
			aq.Progress = int(math.Round(float64(aq.Duration-aq.CyclesRemaining) / float64(aq.Duration) * 100))
		}
		if aq.CyclesRemaining <= 0 {
			finished = append(finished, aq)
		} else {
			stillActive = append(stillActive, aq)
		}
	}
	next.ActiveQuests = stillActive

	for _, aq := range finished {
		next = s.resolveQuest(next, aq)
	}

	for i, b := range next.Guild.Buildings {
		if b.UpgradeDone(next.Cycle.TotalCycles) {
			next.Guild.Buildings[i].Level++
			next.Guild.Buildings[i].IsUpgrading = false
			next.Guild.Buildings[i].UpgradeStartCycle = nil
		}
	}

	if next.Cycle.TotalCycles-next.LastRecruitRefreshCycle >= recruit.RefreshIntervalCycles {
		next.AvailableRecruits = s.recruiter.GeneratePool(recruit.DefaultPoolSize)
		next.LastRecruitRefreshCycle = next.Cycle.TotalCycles
	}

	return s.generator.UpdateQuestPool(next)
}

// resolveQuest turns a finished active quest into an awaiting-collection
// completed quest and frees its team.
func (s *Service) resolveQuest(save domain.GameSave, aq domain.ActiveQuest) domain.GameSave {
	success := s.prog.RollSuccess(aq.AssignedTeam, aq.Quest)

	actualReward := save.PlayerLeader.ApplyBonus(domain.BonusQuestRewards, aq.Reward)
	if !success {
		actualReward = int(math.Round(float64(actualReward) * failureRewardFactor))
	}

	completed := domain.CompletedQuest{
		Quest:            aq.Quest,
		Status:           domain.QuestStatusAwaitingCollection,
		AssignedTeam:     aq.AssignedTeam,
		StartCycle:       aq.StartCycle,
		CompletionCycle:  save.Cycle.TotalCycles,
		ExperienceReward: progression.QuestExperience(aq.Quest),
		Success:          success,
		ActualReward:     actualReward,
	}
	save.CompletedQuests = append(save.CompletedQuests, completed)

	return freeTeam(save, aq.AssignedTeam.ID)
}

package game

import (
	"github.com/akwawa/guildmaster/internal/domain"
	"github.com/akwawa/guildmaster/internal/questgen"
	"github.com/akwawa/guildmaster/internal/recruit"
)

const (
	startingReputation      = 100
	nobleStartingReputation = 200
	startingMaxMembers      = 8
)

// NewGame creates a fresh save for the chosen leader archetype: starting
// buildings and resources from the leader, a seeded quest pool and a first
// recruitment offer.
func (s *Service) NewGame(playerID, guildName, leaderID string) (domain.GameSave, error) {
	leader, err := s.catalog.LeaderByID(leaderID)
	if err != nil {
		return domain.GameSave{}, err
	}

	reputation := startingReputation
	if leader.Background == "Noble" {
		reputation = nobleStartingReputation
	}

	save := domain.GameSave{
		PlayerID:     playerID,
		PlayerLeader: leader,
		Guild: domain.Guild{
			ID:         1,
			Name:       guildName,
			Level:      1,
			Reputation: reputation,
			Gold:       leader.StartingGold,
			Gems:       leader.StartingGems,
			Buildings:  s.catalog.StartingBuildings(leader),
			MaxMembers: startingMaxMembers,
		},
		Cycle:    domain.GameCycle{Day: 1, Period: domain.PeriodDay, TotalCycles: 0},
		LastSave: s.now(),
		// Backdated so the seeding pool update below regenerates at cycle 0
		LastQuestGeneration: -domain.CyclesPerDay,
	}

	save.AvailableRecruits = s.recruiter.GeneratePool(recruit.DefaultPoolSize)
	return s.generator.UpdateQuestPool(save), nil
}

// VisibleQuests is the rank- and reputation-filtered view of the quest pool.
func (s *Service) VisibleQuests(save domain.GameSave) []domain.Quest {
	return questgen.VisibleQuests(save)
}

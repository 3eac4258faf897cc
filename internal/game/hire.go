package game

import (
	"fmt"

	"github.com/akwawa/guildmaster/internal/domain"
)

// HireRecruit converts a pool candidate into a roster character. The index
// addresses the current recruitment pool; the leader's recruitment modifier
// adjusts the cost.
func (s *Service) HireRecruit(save domain.GameSave, index int) (domain.GameSave, error) {
	if index < 0 || index >= len(save.AvailableRecruits) {
		return save, fmt.Errorf("%w: index %d", domain.ErrRecruitNotFound, index)
	}
	if save.Guild.CurrentMembers >= save.Guild.MaxMembers {
		return save, fmt.Errorf("%w: %d/%d", domain.ErrGuildFull, save.Guild.CurrentMembers, save.Guild.MaxMembers)
	}

	candidate := save.AvailableRecruits[index]
	cost := save.PlayerLeader.ApplyCost(domain.BonusRecruitment, candidate.RecruitmentCost)
	if save.Guild.Gold < cost {
		return save, fmt.Errorf("%w: need %d gold, have %d", domain.ErrInsufficientGold, cost, save.Guild.Gold)
	}

	next := save.Clone()
	next.Guild.Gold -= cost
	next.Guild.CurrentMembers++
	next.AvailableRecruits = append(next.AvailableRecruits[:index], next.AvailableRecruits[index+1:]...)

	next.Characters = append(next.Characters, domain.Character{
		ID:          nextCharacterID(next),
		Name:        candidate.Name,
		Level:       candidate.Level,
		Class:       candidate.Class,
		Stats:       candidate.Stats,
		Experience:  candidate.Experience,
		IsAvailable: true,
		Health:      candidate.Health,
		MaxHealth:   candidate.MaxHealth,
		Mana:        candidate.Mana,
		MaxMana:     candidate.MaxMana,
		Equipment:   candidate.Equipment,
		Skills:      candidate.Skills,
		Biography:   candidate.Biography,
		JoinDate:    s.now(),
	})
	return next, nil
}

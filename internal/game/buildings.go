package game

import (
	"fmt"

	"github.com/akwawa/guildmaster/internal/domain"
)

// StartUpgrade begins a building upgrade: the leader-adjusted cost is deducted
// immediately and the level increments once the upgrade time elapses.
func (s *Service) StartUpgrade(save domain.GameSave, buildingID int) (domain.GameSave, error) {
	idx := -1
	for i, b := range save.Guild.Buildings {
		if b.ID == buildingID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return save, fmt.Errorf("%w: %d", domain.ErrBuildingNotFound, buildingID)
	}

	b := save.Guild.Buildings[idx]
	if b.Level >= b.MaxLevel {
		return save, fmt.Errorf("%w: %s", domain.ErrBuildingMaxLevel, b.Name)
	}
	if b.IsUpgrading {
		return save, fmt.Errorf("%w: %s", domain.ErrBuildingUpgrading, b.Name)
	}

	cost := save.PlayerLeader.ApplyCost(domain.BonusBuildingCost, b.UpgradeCost*b.Level)
	if save.Guild.Gold < cost {
		return save, fmt.Errorf("%w: need %d gold, have %d", domain.ErrInsufficientGold, cost, save.Guild.Gold)
	}

	next := save.Clone()
	start := next.Cycle.TotalCycles
	next.Guild.Gold -= cost
	next.Guild.Buildings[idx].IsUpgrading = true
	next.Guild.Buildings[idx].UpgradeStartCycle = &start
	return next, nil
}

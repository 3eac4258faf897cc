// Package save handles serialization and persistence of the player's game
// state: the JSON codec with legacy-shape migration, and the cached
// load/store service over a storage backend.
package save

import (
	"encoding/json"
	"fmt"

	"github.com/akwawa/guildmaster/internal/domain"
)

// Minutes per cycle in legacy saves that tracked wall-clock game time
const legacyMinutesPerCycle = 30

// Encode serializes a save to its on-disk JSON form.
func Encode(save domain.GameSave) ([]byte, error) {
	data, err := json.Marshal(save)
	if err != nil {
		return nil, fmt.Errorf("encode save: %w", err)
	}
	return data, nil
}

// Decode parses a save blob, migrating legacy field shapes in place. The
// second return reports whether the save needs a quest-pool refresh: true for
// migrated legacy saves and saves predating the quest pool.
func Decode(data []byte) (domain.GameSave, bool, error) {
	var save domain.GameSave
	if err := json.Unmarshal(data, &save); err != nil {
		return domain.GameSave{}, false, fmt.Errorf("decode save: %w", err)
	}

	var legacy legacyOverlay
	// The overlay shares the blob's shape, so it cannot fail after the above
	_ = json.Unmarshal(data, &legacy)

	needsRefresh := false

	if save.Cycle.Period == "" {
		totalCycles := 0
		if legacy.GameTime != nil {
			totalCycles = *legacy.GameTime / legacyMinutesPerCycle
		}
		save.Cycle = cycleFromTotal(totalCycles)
		needsRefresh = true
	}

	for i := range save.ActiveQuests {
		aq := &save.ActiveQuests[i]
		if aq.StartCycle == 0 && i < len(legacy.ActiveQuests) && legacy.ActiveQuests[i].StartTime != nil {
			aq.StartCycle = minutesToCycles(*legacy.ActiveQuests[i].StartTime)
		}
		if aq.CyclesRemaining == 0 && aq.Duration > 0 {
			elapsed := save.Cycle.TotalCycles - aq.StartCycle
			if remaining := aq.Duration - elapsed; remaining > 0 {
				aq.CyclesRemaining = remaining
			} else {
				aq.CyclesRemaining = 1
			}
		}
	}

	for i := range save.Guild.Buildings {
		b := &save.Guild.Buildings[i]
		if b.IsUpgrading && b.UpgradeStartCycle == nil &&
			i < len(legacy.Guild.Buildings) && legacy.Guild.Buildings[i].UpgradeStartTime != nil {
			start := minutesToCycles(*legacy.Guild.Buildings[i].UpgradeStartTime)
			b.UpgradeStartCycle = &start
		}
		if b.UpgradeTime == 0 {
			b.UpgradeTime = 1
		}
	}

	if save.AvailableQuests == nil {
		save.AvailableQuests = []domain.Quest{}
		needsRefresh = true
	}
	if save.Achievements == nil {
		save.Achievements = []string{}
	}

	return save, needsRefresh, nil
}

// legacyOverlay captures the pre-cycle field shapes only; everything else
// decodes through domain.GameSave directly.
type legacyOverlay struct {
	GameTime     *int `json:"gameTime"`
	ActiveQuests []struct {
		StartTime *int `json:"startTime"`
	} `json:"activeQuests"`
	Guild struct {
		Buildings []struct {
			UpgradeStartTime *int `json:"upgradeStartTime"`
		} `json:"buildings"`
	} `json:"guild"`
}

func cycleFromTotal(totalCycles int) domain.GameCycle {
	period := domain.PeriodDay
	if totalCycles%domain.CyclesPerDay != 0 {
		period = domain.PeriodNight
	}
	return domain.GameCycle{
		Day:         totalCycles/domain.CyclesPerDay + 1,
		Period:      period,
		TotalCycles: totalCycles,
	}
}

func minutesToCycles(minutes int) int {
	cycles := minutes / legacyMinutesPerCycle
	if cycles < 1 {
		cycles = 1
	}
	return cycles
}

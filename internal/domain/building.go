package domain

// BuildingType is one of the six guild facility kinds
type BuildingType string

const (
	BuildingTavern         BuildingType = "tavern"
	BuildingQuestBoard     BuildingType = "quest_board"
	BuildingArmory         BuildingType = "armory"
	BuildingLibrary        BuildingType = "library"
	BuildingTrainingGround BuildingType = "training_ground"
	BuildingInfirmary      BuildingType = "infirmary"
)

// Building is a guild facility. An upgrade completes once
// totalCycles - upgradeStartCycle >= upgradeTime.
type Building struct {
	ID                int          `json:"id"`
	Name              string       `json:"name"`
	Type              BuildingType `json:"type"`
	Level             int          `json:"level"`
	MaxLevel          int          `json:"maxLevel"`
	Description       string       `json:"description,omitempty"`
	Benefits          []string     `json:"benefits,omitempty"`
	UpgradeCost       int          `json:"upgradeCost"`
	UpgradeTime       int          `json:"upgradeTime"` // in cycles
	IsUpgrading       bool         `json:"isUpgrading"`
	UpgradeStartCycle *int         `json:"upgradeStartCycle,omitempty"`
}

// UpgradeDone reports whether a running upgrade has finished at the given cycle.
func (b Building) UpgradeDone(totalCycles int) bool {
	return b.IsUpgrading && b.UpgradeStartCycle != nil &&
		totalCycles-*b.UpgradeStartCycle >= b.UpgradeTime
}

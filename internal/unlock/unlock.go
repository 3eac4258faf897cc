// Package unlock decides which UI sections are visible for a given save. It
// reads the save only; nothing here mutates game state.
package unlock

import "github.com/akwawa/guildmaster/internal/domain"

// ConditionType is the kind of check a condition performs
type ConditionType string

const (
	ConditionAlways          ConditionType = "always"
	ConditionBuilding        ConditionType = "building"
	ConditionCharacters      ConditionType = "characters"
	ConditionQuestsCompleted ConditionType = "quests_completed"
	ConditionGuildLevel      ConditionType = "guild_level"
	ConditionGold            ConditionType = "gold"
)

// Condition is one gate on a section. IntValue carries the threshold for
// numeric checks, BuildingValue the facility for building checks.
type Condition struct {
	Type          ConditionType       `json:"type"`
	IntValue      int                 `json:"value,omitempty"`
	BuildingValue domain.BuildingType `json:"building,omitempty"`
	Description   string              `json:"description"`
}

// Section is a navigable part of the interface, unlocked once all its
// conditions hold.
type Section struct {
	ID         string      `json:"id"`
	Label      string      `json:"label"`
	Conditions []Condition `json:"unlockConditions"`
}

// Sections is the navigation layout in display order.
var Sections = []Section{
	{ID: "overview", Label: "Vue d'ensemble", Conditions: []Condition{
		{Type: ConditionAlways, Description: "Toujours disponible"},
	}},
	{ID: "guild", Label: "Guilde", Conditions: []Condition{
		{Type: ConditionAlways, Description: "Toujours disponible"},
	}},
	{ID: "teams", Label: "Équipes", Conditions: []Condition{
		{Type: ConditionCharacters, IntValue: 2, Description: "Recrutez au moins 2 aventuriers"},
	}},
	{ID: "quests", Label: "Quêtes", Conditions: []Condition{
		{Type: ConditionBuilding, BuildingValue: domain.BuildingQuestBoard, Description: "Construisez un tableau des quêtes"},
	}},
	{ID: "recruitment", Label: "Recrutement", Conditions: []Condition{
		{Type: ConditionBuilding, BuildingValue: domain.BuildingTavern, Description: "Construisez une taverne"},
	}},
	{ID: "library", Label: "Bibliothèque", Conditions: []Condition{
		{Type: ConditionGuildLevel, IntValue: 2, Description: "Atteignez le niveau de guilde 2"},
		{Type: ConditionQuestsCompleted, IntValue: 5, Description: "Terminez 5 quêtes"},
	}},
	{ID: "settings", Label: "Paramètres", Conditions: []Condition{
		{Type: ConditionAlways, Description: "Toujours disponible"},
	}},
}

// Check evaluates a single condition against the save.
func Check(c Condition, save domain.GameSave) bool {
	switch c.Type {
	case ConditionAlways:
		return true
	case ConditionBuilding:
		return save.Guild.HasBuilding(c.BuildingValue)
	case ConditionCharacters:
		return len(save.Characters) >= orDefault(c.IntValue, 1)
	case ConditionQuestsCompleted:
		return len(save.CompletedQuests) >= orDefault(c.IntValue, 1)
	case ConditionGuildLevel:
		return save.Guild.Level >= orDefault(c.IntValue, 1)
	case ConditionGold:
		return save.Guild.Gold >= orDefault(c.IntValue, 100)
	default:
		return false
	}
}

// CheckAll reports whether every condition holds.
func CheckAll(conditions []Condition, save domain.GameSave) bool {
	for _, c := range conditions {
		if !Check(c, save) {
			return false
		}
	}
	return true
}

// UnlockedSections returns the sections currently available to the player.
func UnlockedSections(save domain.GameSave) []Section {
	var out []Section
	for _, s := range Sections {
		if CheckAll(s.Conditions, save) {
			out = append(out, s)
		}
	}
	return out
}

// NextHint describes the first unmet condition of the first locked section, or
// "" when everything is unlocked.
func NextHint(save domain.GameSave) string {
	for _, s := range Sections {
		if CheckAll(s.Conditions, save) {
			continue
		}
		for _, c := range s.Conditions {
			if !Check(c, save) {
				return "Pour débloquer \"" + s.Label + "\": " + c.Description
			}
		}
	}
	return ""
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

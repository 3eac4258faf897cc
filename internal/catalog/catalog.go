// Package catalog holds the static game data: quest templates, player-leader
// archetypes, building blueprints and recruit tables. The catalog is built once
// at startup, validated, and injected read-only into the engine packages.
package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/akwawa/guildmaster/internal/domain"
)

// BuildingDef is a blueprint for a guild facility. Upgrade time is kept in
// minutes, the unit of the original balance sheet; new-game setup converts it
// to cycles.
type BuildingDef struct {
	ID                 int                 `json:"id" validate:"required"`
	Name               string              `json:"name" validate:"required"`
	Type               domain.BuildingType `json:"type" validate:"required"`
	MaxLevel           int                 `json:"maxLevel" validate:"min=1"`
	Description        string              `json:"description"`
	Benefits           []string            `json:"benefits"`
	UpgradeCost        int                 `json:"upgradeCost" validate:"min=0"`
	UpgradeTimeMinutes int                 `json:"upgradeTimeMinutes" validate:"min=1"`
}

// Catalog bundles all static data consumed by the engine
type Catalog struct {
	Templates []domain.QuestTemplate `validate:"min=1,dive"`
	Leaders   []domain.PlayerLeader  `validate:"min=1"`
	Buildings []BuildingDef          `validate:"min=1,dive"`
	Recruits  RecruitTables
}

// Default returns the built-in catalog, validated.
func Default() (*Catalog, error) {
	c := &Catalog{
		Templates: questTemplates,
		Leaders:   playerLeaders,
		Buildings: buildingDefs,
		Recruits:  recruitTables,
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("default catalog: %w", err)
	}
	return c, nil
}

// Validate checks the structural constraints on all catalog entries.
func (c *Catalog) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return err
	}
	seen := make(map[string]bool, len(c.Templates))
	for _, t := range c.Templates {
		if seen[t.ID] {
			return fmt.Errorf("duplicate quest template id %q", t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}

// LeaderByID looks up a player-leader archetype.
func (c *Catalog) LeaderByID(id string) (domain.PlayerLeader, error) {
	for _, l := range c.Leaders {
		if l.ID == id {
			return l, nil
		}
	}
	return domain.PlayerLeader{}, fmt.Errorf("%w: %s", domain.ErrLeaderNotFound, id)
}

// DailyTemplates returns the templates flagged as daily quests.
func (c *Catalog) DailyTemplates() []domain.QuestTemplate {
	var out []domain.QuestTemplate
	for _, t := range c.Templates {
		if t.IsDaily {
			out = append(out, t)
		}
	}
	return out
}

// StandardTemplates returns the non-daily templates.
func (c *Catalog) StandardTemplates() []domain.QuestTemplate {
	var out []domain.QuestTemplate
	for _, t := range c.Templates {
		if !t.IsDaily {
			out = append(out, t)
		}
	}
	return out
}

// StartingBuildings instantiates the blueprints named by the leader archetype.
// Upgrade durations convert from minutes to cycles, one cycle per half hour,
// never below one cycle.
func (c *Catalog) StartingBuildings(leader domain.PlayerLeader) []domain.Building {
	var out []domain.Building
	for _, def := range c.Buildings {
		for _, t := range leader.StartingBuildings {
			if def.Type == t {
				out = append(out, def.Instantiate())
				break
			}
		}
	}
	return out
}

// Instantiate converts a blueprint into a level-1 building.
func (d BuildingDef) Instantiate() domain.Building {
	cycles := d.UpgradeTimeMinutes / 30
	if cycles < 1 {
		cycles = 1
	}
	return domain.Building{
		ID:          d.ID,
		Name:        d.Name,
		Type:        d.Type,
		Level:       1,
		MaxLevel:    d.MaxLevel,
		Description: d.Description,
		Benefits:    append([]string(nil), d.Benefits...),
		UpgradeCost: d.UpgradeCost,
		UpgradeTime: cycles,
	}
}

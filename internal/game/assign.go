package game

import (
	"fmt"

	"github.com/akwawa/guildmaster/internal/domain"
)

// AssignQuest dispatches an available team on an available quest. The quest
// moves from the pool to the active list and the team goes on-quest until
// resolution.
func (s *Service) AssignQuest(save domain.GameSave, questID string, teamID int) (domain.GameSave, error) {
	questIdx := -1
	for i, q := range save.AvailableQuests {
		if q.ID == questID {
			questIdx = i
			break
		}
	}
	if questIdx == -1 {
		return save, fmt.Errorf("%w: %s", domain.ErrQuestNotFound, questID)
	}

	team, ok := findTeam(save, teamID)
	if !ok {
		return save, fmt.Errorf("%w: %d", domain.ErrTeamNotFound, teamID)
	}
	if team.Status != domain.TeamStatusAvailable {
		return save, fmt.Errorf("%w: team %d is %s", domain.ErrTeamUnavailable, teamID, team.Status)
	}

	next := save.Clone()
	quest := next.AvailableQuests[questIdx]
	next.AvailableQuests = append(next.AvailableQuests[:questIdx], next.AvailableQuests[questIdx+1:]...)

	next = occupyTeam(next, teamID)
	assigned, _ := findTeam(next, teamID)

	next.ActiveQuests = append(next.ActiveQuests, domain.ActiveQuest{
		Quest:           quest,
		AssignedTeam:    assigned,
		StartCycle:      next.Cycle.TotalCycles,
		CyclesRemaining: quest.Duration,
		Progress:        0,
	})
	return next, nil
}

package game

import (
	"fmt"

	"github.com/akwawa/guildmaster/internal/domain"
)

// CreateTeam forms a new team from available, unaffiliated characters.
func (s *Service) CreateTeam(save domain.GameSave, name, specialty string, memberIDs []int) (domain.GameSave, error) {
	if len(memberIDs) < domain.MinTeamSize || len(memberIDs) > domain.MaxTeamSize {
		return save, fmt.Errorf("%w: got %d", domain.ErrTeamSize, len(memberIDs))
	}

	members := make([]domain.Character, 0, len(memberIDs))
	for _, id := range memberIDs {
		idx := findCharacterIndex(save, id)
		if idx == -1 {
			return save, fmt.Errorf("%w: %d", domain.ErrCharacterNotFound, id)
		}
		c := save.Characters[idx]
		if !c.IsAvailable {
			return save, fmt.Errorf("%w: %s", domain.ErrCharacterBusy, c.Name)
		}
		if characterInAnyTeam(save, id) {
			return save, fmt.Errorf("%w: %s", domain.ErrCharacterInTeam, c.Name)
		}
		members = append(members, c)
	}

	next := save.Clone()
	next.Teams = append(next.Teams, domain.Team{
		ID:        nextTeamID(next),
		Name:      name,
		Level:     1,
		Members:   members,
		Status:    domain.TeamStatusAvailable,
		Specialty: specialty,
	})
	return syncTeamSnapshots(next), nil
}

// DisbandTeam removes a team. Its members stay on the roster; a team on a
// quest cannot be disbanded.
func (s *Service) DisbandTeam(save domain.GameSave, teamID int) (domain.GameSave, error) {
	team, ok := findTeam(save, teamID)
	if !ok {
		return save, fmt.Errorf("%w: %d", domain.ErrTeamNotFound, teamID)
	}
	if team.Status == domain.TeamStatusOnQuest {
		return save, fmt.Errorf("%w: team %d is on a quest", domain.ErrTeamUnavailable, teamID)
	}

	next := save.Clone()
	for i, t := range next.Teams {
		if t.ID == teamID {
			next.Teams = append(next.Teams[:i], next.Teams[i+1:]...)
			break
		}
	}
	return next, nil
}

package game

import "github.com/akwawa/guildmaster/internal/domain"

// freeTeam marks a team and its members available again, both on the canonical
// roster and on the team's member snapshots.
func freeTeam(save domain.GameSave, teamID int) domain.GameSave {
	for i, t := range save.Teams {
		if t.ID != teamID {
			continue
		}
		save.Teams[i].Status = domain.TeamStatusAvailable
		for j := range save.Teams[i].Members {
			save.Teams[i].Members[j].IsAvailable = true
		}
		for j, c := range save.Characters {
			if t.HasMember(c.ID) {
				save.Characters[j].IsAvailable = true
			}
		}
		break
	}
	return save
}

// occupyTeam flips a team and its members to the on-quest state.
func occupyTeam(save domain.GameSave, teamID int) domain.GameSave {
	for i, t := range save.Teams {
		if t.ID != teamID {
			continue
		}
		save.Teams[i].Status = domain.TeamStatusOnQuest
		for j := range save.Teams[i].Members {
			save.Teams[i].Members[j].IsAvailable = false
		}
		for j, c := range save.Characters {
			if t.HasMember(c.ID) {
				save.Characters[j].IsAvailable = false
			}
		}
		break
	}
	return save
}

// syncTeamSnapshots refreshes every team's member snapshots from the canonical
// roster, so stat and level changes show up on the team views.
func syncTeamSnapshots(save domain.GameSave) domain.GameSave {
	byID := make(map[int]domain.Character, len(save.Characters))
	for _, c := range save.Characters {
		byID[c.ID] = c
	}
	for i := range save.Teams {
		for j, m := range save.Teams[i].Members {
			if c, ok := byID[m.ID]; ok {
				c.IsAvailable = m.IsAvailable
				save.Teams[i].Members[j] = c
			}
		}
	}
	return save
}

func findTeam(save domain.GameSave, teamID int) (domain.Team, bool) {
	for _, t := range save.Teams {
		if t.ID == teamID {
			return t, true
		}
	}
	return domain.Team{}, false
}

func findCharacterIndex(save domain.GameSave, characterID int) int {
	for i, c := range save.Characters {
		if c.ID == characterID {
			return i
		}
	}
	return -1
}

func characterInAnyTeam(save domain.GameSave, characterID int) bool {
	for _, t := range save.Teams {
		if t.HasMember(characterID) {
			return true
		}
	}
	return false
}

func nextCharacterID(save domain.GameSave) int {
	max := 0
	for _, c := range save.Characters {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}

func nextTeamID(save domain.GameSave) int {
	max := 0
	for _, t := range save.Teams {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

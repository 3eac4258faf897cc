package progression

import (
	"math"

	"github.com/akwawa/guildmaster/internal/domain"
)

// Distribute applies a resolved quest's experience and earnings to the
// assigned team and its members. Failure still grants half experience; gold
// shares accrue only on success. Characters and teams outside the assigned
// team are returned unchanged.
func (s *System) Distribute(quest domain.CompletedQuest, characters []domain.Character, teams []domain.Team) ([]domain.Character, []domain.Team) {
	mult := 0.5
	if quest.Success {
		mult = 1.0
	}
	finalExp := int(math.Round(float64(quest.ExperienceReward) * mult))

	memberCount := len(quest.AssignedTeam.Members)
	if memberCount == 0 {
		memberCount = 1
	}
	expShare := int(math.Round(float64(finalExp) / float64(memberCount)))
	goldShare := 0
	if quest.Success {
		goldShare = int(math.Round(float64(quest.ActualReward) / float64(memberCount)))
	}

	outChars := make([]domain.Character, len(characters))
	for i, c := range characters {
		if !quest.AssignedTeam.HasMember(c.ID) {
			outChars[i] = c
			continue
		}
		c.Experience += expShare
		c.QuestsCompleted++
		c.TotalEarnings += goldShare
		outChars[i] = s.LevelUpCharacter(c)
	}

	repGain := quest.Difficulty * 2
	if quest.Success {
		repGain = quest.Difficulty * 10
	}

	outTeams := make([]domain.Team, len(teams))
	for i, t := range teams {
		if t.ID != quest.AssignedTeam.ID {
			outTeams[i] = t
			continue
		}
		t.Experience += finalExp
		t.QuestsCompleted++
		t.Reputation += repGain
		outTeams[i] = s.LevelUpTeam(t)
	}

	return outChars, outTeams
}

package domain

import "time"

// GameSave is the aggregate root. Every core operation is a pure transform
// producing a new save value; callers never see their input mutated.
type GameSave struct {
	PlayerID                string                 `json:"playerId"`
	PlayerLeader            PlayerLeader           `json:"playerLeader"`
	Guild                   Guild                  `json:"guild"`
	Characters              []Character            `json:"characters"`
	Teams                   []Team                 `json:"teams"`
	ActiveQuests            []ActiveQuest          `json:"activeQuests"`
	CompletedQuests         []CompletedQuest       `json:"completedQuests"`
	AvailableQuests         []Quest                `json:"availableQuests"`
	Cycle                   GameCycle              `json:"cycle"`
	LastSave                time.Time              `json:"lastSave"`
	Achievements            []string               `json:"achievements"`
	AvailableRecruits       []RecruitableCharacter `json:"availableRecruits"`
	LastRecruitRefreshCycle int                    `json:"lastRecruitRefreshCycle"`
	LastQuestGeneration     int                    `json:"lastQuestGeneration"`
}

// Clone returns a deep copy of the save. Slices and pointer fields are copied
// so transforms on the clone cannot alias the original.
func (s GameSave) Clone() GameSave {
	out := s
	out.Characters = cloneCharacters(s.Characters)
	out.Teams = cloneTeams(s.Teams)
	out.Achievements = append([]string(nil), s.Achievements...)
	out.AvailableRecruits = append([]RecruitableCharacter(nil), s.AvailableRecruits...)

	out.AvailableQuests = make([]Quest, len(s.AvailableQuests))
	for i, q := range s.AvailableQuests {
		out.AvailableQuests[i] = q.clone()
	}

	out.ActiveQuests = make([]ActiveQuest, len(s.ActiveQuests))
	for i, aq := range s.ActiveQuests {
		cp := aq
		cp.Quest = aq.Quest.clone()
		cp.AssignedTeam = aq.AssignedTeam.clone()
		out.ActiveQuests[i] = cp
	}

	out.CompletedQuests = make([]CompletedQuest, len(s.CompletedQuests))
	for i, cq := range s.CompletedQuests {
		cp := cq
		cp.Quest = cq.Quest.clone()
		cp.AssignedTeam = cq.AssignedTeam.clone()
		out.CompletedQuests[i] = cp
	}

	out.Guild.Buildings = make([]Building, len(s.Guild.Buildings))
	for i, b := range s.Guild.Buildings {
		out.Guild.Buildings[i] = b.clone()
	}

	return out
}

func (q Quest) clone() Quest {
	cp := q
	if q.ExpirationCycle != nil {
		v := *q.ExpirationCycle
		cp.ExpirationCycle = &v
	}
	return cp
}

func (t Team) clone() Team {
	cp := t
	cp.Members = cloneCharacters(t.Members)
	return cp
}

func (b Building) clone() Building {
	cp := b
	cp.Benefits = append([]string(nil), b.Benefits...)
	if b.UpgradeStartCycle != nil {
		v := *b.UpgradeStartCycle
		cp.UpgradeStartCycle = &v
	}
	return cp
}

func (c Character) clone() Character {
	cp := c
	cp.Skills = append([]Skill(nil), c.Skills...)
	cp.Equipment = EquipmentSlots{
		Weapon:    cloneEquipment(c.Equipment.Weapon),
		Armor:     cloneEquipment(c.Equipment.Armor),
		Accessory: cloneEquipment(c.Equipment.Accessory),
	}
	return cp
}

func cloneEquipment(e *Equipment) *Equipment {
	if e == nil {
		return nil
	}
	cp := *e
	return &cp
}

func cloneCharacters(cs []Character) []Character {
	out := make([]Character, len(cs))
	for i, c := range cs {
		out[i] = c.clone()
	}
	return out
}

func cloneTeams(ts []Team) []Team {
	out := make([]Team, len(ts))
	for i, t := range ts {
		out[i] = t.clone()
	}
	return out
}

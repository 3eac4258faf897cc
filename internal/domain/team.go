package domain

// TeamStatus is the availability state of a team
type TeamStatus string

const (
	TeamStatusAvailable TeamStatus = "available"
	TeamStatusOnQuest   TeamStatus = "on_quest"
	TeamStatusResting   TeamStatus = "resting"
)

// Team size bounds enforced at creation
const (
	MinTeamSize = 2
	MaxTeamSize = 8
)

// Team groups characters for quest dispatch. Members are snapshots of the
// canonical characters on the save; the game layer keeps them in sync.
type Team struct {
	ID              int         `json:"id"`
	Name            string      `json:"name"`
	Level           int         `json:"level"`
	Members         []Character `json:"members"`
	Status          TeamStatus  `json:"status"`
	Specialty       string      `json:"specialty"`
	Experience      int         `json:"experience"`
	Reputation      int         `json:"reputation"`
	QuestsCompleted int         `json:"questsCompleted"`
}

// HasMember reports whether the character belongs to this team.
func (t Team) HasMember(characterID int) bool {
	for _, m := range t.Members {
		if m.ID == characterID {
			return true
		}
	}
	return false
}

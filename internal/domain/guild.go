package domain

// Guild is the player's company: resources, facilities and roster capacity
type Guild struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Level          int        `json:"level"`
	Experience     int        `json:"experience"`
	Reputation     int        `json:"reputation"`
	Gold           int        `json:"gold"`
	Gems           int        `json:"gems"`
	Buildings      []Building `json:"buildings"`
	MaxMembers     int        `json:"maxMembers"`
	CurrentMembers int        `json:"currentMembers"`
}

// HasBuilding reports whether the guild owns a facility of the given type.
func (g Guild) HasBuilding(t BuildingType) bool {
	for _, b := range g.Buildings {
		if b.Type == t {
			return true
		}
	}
	return false
}

package domain

// QuestType categorizes quests; teams with a matching specialty get a success bonus
type QuestType string

const (
	QuestTypeNettoyage   QuestType = "Nettoyage"
	QuestTypeChasse      QuestType = "Chasse"
	QuestTypeEscorte     QuestType = "Escorte"
	QuestTypeCombat      QuestType = "Combat"
	QuestTypeDiplomatie  QuestType = "Diplomatie"
	QuestTypeReligieux   QuestType = "Religieux"
	QuestTypeDonjon      QuestType = "Donjon"
	QuestTypeDonjonEpic  QuestType = "Donjon Épique"
	QuestTypeRecuperation QuestType = "Récupération"
	QuestTypePatrouille  QuestType = "Patrouille"
	QuestTypePrestige    QuestType = "Prestige"
)

// Rarity is the quality tier shared by quests, recruits and equipment
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Quest ranks gate visibility by guild reputation and level
const (
	RankDebutant      = 1
	RankIntermediaire = 2
	RankAvance        = 3
	RankExpert        = 4
)

// QuestStatus tracks a completed quest through the two-phase settlement
type QuestStatus string

const (
	QuestStatusAwaitingCollection QuestStatus = "awaiting_collection"
	QuestStatusCompleted          QuestStatus = "completed"
)

// QuestTemplate is an immutable catalog entry quests are generated from.
// Placeholders {enemy}, {location} and {artifact} in the description template
// are substituted at instantiation time.
type QuestTemplate struct {
	ID                  string    `json:"id" validate:"required"`
	Title               string    `json:"title" validate:"required"`
	DescriptionTemplate string    `json:"descriptionTemplate" validate:"required"`
	Type                QuestType `json:"type" validate:"required"`
	Rank                int       `json:"rank" validate:"min=1,max=4"`
	BaseDifficulty      int       `json:"baseDifficulty" validate:"min=1"`
	BaseDuration        int       `json:"baseDuration" validate:"min=1"`
	BaseReward          int       `json:"baseReward" validate:"min=0"`
	RequiredLevel       int       `json:"requiredLevel" validate:"min=1"`
	RequiredReputation  int       `json:"requiredReputation" validate:"min=0"`
	Enemies             []string  `json:"enemies" validate:"min=1"`
	Locations           []string  `json:"locations" validate:"min=1"`
	Rarity              Rarity    `json:"rarity" validate:"oneof=common rare epic legendary"`
	AvailabilityDays    int       `json:"availabilityDays" validate:"min=1"`
	SpawnChance         float64   `json:"spawnChance" validate:"min=0,max=1"`
	Artifacts           []string  `json:"artifacts,omitempty"`
	IsDaily             bool      `json:"isDaily,omitempty"`
}

// Quest is a generated instance living in the available pool until it is
// assigned to a team or its expiration cycle passes.
type Quest struct {
	ID                 string    `json:"id"`
	TemplateID         string    `json:"templateId,omitempty"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Difficulty         int       `json:"difficulty"`
	Duration           int       `json:"duration"` // in cycles
	Reward             int       `json:"reward"`   // gold
	Type               QuestType `json:"type"`
	Rank               int       `json:"rank"`
	RequiredLevel      int       `json:"requiredLevel"`
	RequiredReputation int       `json:"requiredReputation"`
	Rarity             Rarity    `json:"rarity"`
	Enemy              string    `json:"enemy,omitempty"`
	Location           string    `json:"location,omitempty"`
	Artifact           string    `json:"artifact,omitempty"`
	ExpirationCycle    *int      `json:"expirationCycle"` // nil = never expires
	IsDaily            bool      `json:"isDaily"`
}

// ActiveQuest is a quest checked out by a team. The team snapshot travels with
// the quest; the canonical roster lives on the save.
type ActiveQuest struct {
	Quest
	AssignedTeam    Team `json:"assignedTeam"`
	StartCycle      int  `json:"startCycle"`
	CyclesRemaining int  `json:"cyclesRemaining"`
	Progress        int  `json:"progress"` // 0-100
}

// CompletedQuest is a resolved quest. Rewards are frozen at resolution time and
// applied to the guild only when the player collects them.
type CompletedQuest struct {
	Quest
	Status           QuestStatus `json:"status"`
	AssignedTeam     Team        `json:"assignedTeam"`
	StartCycle       int         `json:"startCycle"`
	CompletionCycle  int         `json:"completionCycle"`
	ExperienceReward int         `json:"experienceReward"`
	Success          bool        `json:"success"`
	ActualReward     int         `json:"actualReward"`
}

// Expired reports whether the quest's expiration cycle has passed.
func (q Quest) Expired(totalCycles int) bool {
	return q.ExpirationCycle != nil && totalCycles >= *q.ExpirationCycle
}

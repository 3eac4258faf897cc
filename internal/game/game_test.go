package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akwawa/guildmaster/internal/catalog"
	"github.com/akwawa/guildmaster/internal/domain"
	"github.com/akwawa/guildmaster/internal/progression"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return NewService(cat, 42)
}

// baseSave builds a deterministic mid-game save: three characters, one
// two-member team, one building, full quest pool bookkeeping up to date.
func baseSave() domain.GameSave {
	chars := []domain.Character{
		{ID: 1, Name: "Aldric", Class: "Guerrier", Level: 2, IsAvailable: true},
		{ID: 2, Name: "Lyra", Class: "Mage", Level: 2, IsAvailable: true},
		{ID: 3, Name: "Bran", Class: "Clerc", Level: 1, IsAvailable: true},
	}
	team := domain.Team{
		ID:      1,
		Name:    "Les Lames",
		Level:   2,
		Members: []domain.Character{chars[0], chars[1]},
		Status:  domain.TeamStatusAvailable,
	}
	return domain.GameSave{
		PlayerID: "p1",
		Guild: domain.Guild{
			ID:         1,
			Name:       "Aube d'Argent",
			Level:      1,
			Reputation: 100,
			Gold:       1000,
			Buildings: []domain.Building{
				{ID: 1, Name: "Tableau des quêtes", Type: domain.BuildingQuestBoard, Level: 1, MaxLevel: 5, UpgradeCost: 100, UpgradeTime: 2},
			},
			MaxMembers:     10,
			CurrentMembers: 3,
		},
		Characters: chars,
		Teams:      []domain.Team{team},
		Cycle:      domain.GameCycle{Day: 1, Period: domain.PeriodDay, TotalCycles: 0},
	}
}

func TestNewGame(t *testing.T) {
	svc := newTestService(t)

	t.Run("unknown leader", func(t *testing.T) {
		_, err := svc.NewGame("p1", "Guild", "nobody")
		assert.ErrorIs(t, err, domain.ErrLeaderNotFound)
	})

	t.Run("fresh save", func(t *testing.T) {
		save, err := svc.NewGame("p1", "Aube d'Argent", "captain_ironforge")
		require.NoError(t, err)

		assert.Equal(t, "p1", save.PlayerID)
		assert.Equal(t, "Aube d'Argent", save.Guild.Name)
		assert.Equal(t, 1, save.Guild.Level)
		assert.Equal(t, domain.GameCycle{Day: 1, Period: domain.PeriodDay, TotalCycles: 0}, save.Cycle)
		assert.NotEmpty(t, save.Guild.Buildings)
		assert.NotEmpty(t, save.AvailableQuests, "quest pool seeded at creation")
		assert.Len(t, save.AvailableRecruits, 6)
		assert.Equal(t, 0, save.LastQuestGeneration, "seeding counts as the day's refresh")
	})

	t.Run("noble background doubles starting reputation", func(t *testing.T) {
		cat, err := catalog.Default()
		require.NoError(t, err)

		var noble, common string
		for _, l := range cat.Leaders {
			if l.Background == "Noble" && noble == "" {
				noble = l.ID
			}
			if l.Background != "Noble" && common == "" {
				common = l.ID
			}
		}
		require.NotEmpty(t, noble)
		require.NotEmpty(t, common)

		nobleSave, err := svc.NewGame("p1", "G", noble)
		require.NoError(t, err)
		commonSave, err := svc.NewGame("p2", "G", common)
		require.NoError(t, err)

		assert.Equal(t, 200, nobleSave.Guild.Reputation)
		assert.Equal(t, 100, commonSave.Guild.Reputation)
	})
}

func TestAdvanceCycle(t *testing.T) {
	svc := newTestService(t)

	t.Run("ticks the cycle", func(t *testing.T) {
		save := baseSave()
		next := svc.AdvanceCycle(save)

		assert.Equal(t, domain.GameCycle{Day: 1, Period: domain.PeriodNight, TotalCycles: 1}, next.Cycle)
		assert.Equal(t, 0, save.Cycle.TotalCycles, "input save untouched")
	})

	t.Run("active quests progress and resolve", func(t *testing.T) {
		save := baseSave()
		var err error
		save.AvailableQuests = []domain.Quest{
			{ID: "q1", Title: "Patrouille", Difficulty: 2, Duration: 2, Reward: 1000, Rank: 1},
		}
		save, err = svc.AssignQuest(save, "q1", 1)
		require.NoError(t, err)

		mid := svc.AdvanceCycle(save)
		require.Len(t, mid.ActiveQuests, 1)
		assert.Equal(t, 1, mid.ActiveQuests[0].CyclesRemaining)
		assert.Equal(t, 50, mid.ActiveQuests[0].Progress)
		assert.Equal(t, domain.TeamStatusOnQuest, mid.Teams[0].Status)

		done := svc.AdvanceCycle(mid)
		assert.Empty(t, done.ActiveQuests)
		require.Len(t, done.CompletedQuests, 1)

		cq := done.CompletedQuests[0]
		assert.Equal(t, domain.QuestStatusAwaitingCollection, cq.Status)
		assert.Equal(t, 2, cq.CompletionCycle)
		assert.Equal(t, progression.QuestExperience(cq.Quest), cq.ExperienceReward)
		if cq.Success {
			assert.Equal(t, 1000, cq.ActualReward)
		} else {
			assert.Equal(t, 300, cq.ActualReward, "failure keeps 30% of the reward")
		}

		// Settlement waits for collection
		assert.Equal(t, save.Guild.Gold, done.Guild.Gold)

		// Team freed at resolution
		assert.Equal(t, domain.TeamStatusAvailable, done.Teams[0].Status)
		for _, c := range done.Characters[:2] {
			assert.True(t, c.IsAvailable)
		}
	})

	t.Run("leader reward bonus frozen at resolution", func(t *testing.T) {
		save := baseSave()
		save.PlayerLeader = domain.PlayerLeader{
			Bonuses: []domain.LeaderModifier{{Type: domain.BonusQuestRewards, Value: 20}},
		}
		var err error
		save.AvailableQuests = []domain.Quest{{ID: "q1", Difficulty: 1, Duration: 1, Reward: 100, Rank: 1}}
		save, err = svc.AssignQuest(save, "q1", 1)
		require.NoError(t, err)

		done := svc.AdvanceCycle(save)
		require.Len(t, done.CompletedQuests, 1)

		cq := done.CompletedQuests[0]
		if cq.Success {
			assert.Equal(t, 120, cq.ActualReward)
		} else {
			assert.Equal(t, 36, cq.ActualReward)
		}
	})

	t.Run("building upgrade completes after its time", func(t *testing.T) {
		save := baseSave()
		var err error
		save, err = svc.StartUpgrade(save, 1)
		require.NoError(t, err)

		mid := svc.AdvanceCycle(save)
		assert.True(t, mid.Guild.Buildings[0].IsUpgrading)
		assert.Equal(t, 1, mid.Guild.Buildings[0].Level)

		done := svc.AdvanceCycle(mid)
		assert.False(t, done.Guild.Buildings[0].IsUpgrading)
		assert.Equal(t, 2, done.Guild.Buildings[0].Level)
		assert.Nil(t, done.Guild.Buildings[0].UpgradeStartCycle)
	})

	t.Run("recruit pool refreshes daily", func(t *testing.T) {
		save := baseSave()
		save.AvailableRecruits = []domain.RecruitableCharacter{{Name: "Vieux"}}

		mid := svc.AdvanceCycle(save)
		assert.Equal(t, save.AvailableRecruits, mid.AvailableRecruits, "same day, same pool")

		done := svc.AdvanceCycle(mid)
		assert.Len(t, done.AvailableRecruits, 6)
		assert.Equal(t, 2, done.LastRecruitRefreshCycle)
	})
}

func TestCollectQuestReward(t *testing.T) {
	svc := newTestService(t)

	collected := func() domain.GameSave {
		save := baseSave()
		save.CompletedQuests = []domain.CompletedQuest{
			{
				Quest:            domain.Quest{ID: "cq1", Difficulty: 2},
				Status:           domain.QuestStatusAwaitingCollection,
				AssignedTeam:     save.Teams[0],
				ExperienceReward: 400,
				ActualReward:     300,
				Success:          true,
			},
		}
		return save
	}

	t.Run("absent quest is a no-op", func(t *testing.T) {
		save := baseSave()
		got := svc.CollectQuestReward(save, "ghost")
		assert.Equal(t, save, got)
	})

	t.Run("settles gold, experience and reputation", func(t *testing.T) {
		save := collected()
		got := svc.CollectQuestReward(save, "cq1")

		assert.Equal(t, 1300, got.Guild.Gold)
		assert.Equal(t, 100, got.Guild.Experience, "difficulty * 50")
		assert.Equal(t, 120, got.Guild.Reputation, "difficulty * 10 on success")
		assert.Equal(t, domain.QuestStatusCompleted, got.CompletedQuests[0].Status)

		// Members split experience and gold
		assert.Equal(t, 200, got.Characters[0].Experience)
		assert.Equal(t, 150, got.Characters[0].TotalEarnings)
		assert.Zero(t, got.Characters[2].Experience, "non-member untouched")

		// Team snapshots reflect the new member stats
		assert.Equal(t, got.Characters[0].Experience, got.Teams[0].Members[0].Experience)

		// Input save untouched
		assert.Equal(t, 1000, save.Guild.Gold)
	})

	t.Run("double collection pays once", func(t *testing.T) {
		save := collected()
		once := svc.CollectQuestReward(save, "cq1")
		twice := svc.CollectQuestReward(once, "cq1")

		assert.Equal(t, once, twice)
	})

	t.Run("leader settlement bonuses apply", func(t *testing.T) {
		save := collected()
		save.PlayerLeader = domain.PlayerLeader{
			Bonuses: []domain.LeaderModifier{
				{Type: domain.BonusGold, Value: 10},
				{Type: domain.BonusReputation, Value: 50},
			},
		}
		got := svc.CollectQuestReward(save, "cq1")

		assert.Equal(t, 1330, got.Guild.Gold)
		assert.Equal(t, 130, got.Guild.Reputation)
	})

	t.Run("guild level never drops", func(t *testing.T) {
		save := collected()
		save.Guild.Level = 9
		got := svc.CollectQuestReward(save, "cq1")
		assert.Equal(t, 9, got.Guild.Level)
	})

	t.Run("guild levels up from banked experience", func(t *testing.T) {
		save := collected()
		save.Guild.Experience = 700 // +100 crosses the level 3 threshold
		got := svc.CollectQuestReward(save, "cq1")
		assert.Equal(t, 3, got.Guild.Level)
	})
}

func TestAssignQuest(t *testing.T) {
	svc := newTestService(t)

	ready := func() domain.GameSave {
		save := baseSave()
		save.AvailableQuests = []domain.Quest{{ID: "q1", Duration: 3, Reward: 100}}
		return save
	}

	t.Run("moves quest to active and occupies team", func(t *testing.T) {
		save := ready()
		got, err := svc.AssignQuest(save, "q1", 1)
		require.NoError(t, err)

		assert.Empty(t, got.AvailableQuests)
		require.Len(t, got.ActiveQuests, 1)
		aq := got.ActiveQuests[0]
		assert.Equal(t, "q1", aq.ID)
		assert.Equal(t, 0, aq.StartCycle)
		assert.Equal(t, 3, aq.CyclesRemaining)
		assert.Equal(t, 0, aq.Progress)
		assert.Equal(t, domain.TeamStatusOnQuest, aq.AssignedTeam.Status)
		assert.Equal(t, domain.TeamStatusOnQuest, got.Teams[0].Status)
		assert.False(t, got.Characters[0].IsAvailable)
		assert.True(t, got.Characters[2].IsAvailable, "non-member stays free")

		// Input save untouched
		assert.Len(t, save.AvailableQuests, 1)
		assert.Equal(t, domain.TeamStatusAvailable, save.Teams[0].Status)
	})

	t.Run("unknown quest", func(t *testing.T) {
		_, err := svc.AssignQuest(ready(), "ghost", 1)
		assert.ErrorIs(t, err, domain.ErrQuestNotFound)
	})

	t.Run("unknown team", func(t *testing.T) {
		_, err := svc.AssignQuest(ready(), "q1", 9)
		assert.ErrorIs(t, err, domain.ErrTeamNotFound)
	})

	t.Run("busy team", func(t *testing.T) {
		save := ready()
		save.Teams[0].Status = domain.TeamStatusOnQuest
		_, err := svc.AssignQuest(save, "q1", 1)
		assert.ErrorIs(t, err, domain.ErrTeamUnavailable)
	})
}

func TestCreateTeam(t *testing.T) {
	svc := newTestService(t)

	t.Run("happy path", func(t *testing.T) {
		save := baseSave()
		save.Teams = nil

		got, err := svc.CreateTeam(save, "Aventuriers", "Combat", []int{1, 3})
		require.NoError(t, err)
		require.Len(t, got.Teams, 1)

		team := got.Teams[0]
		assert.Equal(t, 1, team.ID)
		assert.Equal(t, "Aventuriers", team.Name)
		assert.Equal(t, "Combat", team.Specialty)
		assert.Equal(t, 1, team.Level)
		assert.Equal(t, domain.TeamStatusAvailable, team.Status)
		require.Len(t, team.Members, 2)
		assert.Equal(t, 1, team.Members[0].ID)
		assert.Equal(t, 3, team.Members[1].ID)
	})

	t.Run("team ids grow monotonically", func(t *testing.T) {
		save := baseSave()
		save.Characters = append(save.Characters, domain.Character{ID: 7, Name: "Extra", IsAvailable: true})
		got, err := svc.CreateTeam(save, "Seconde", "", []int{3, 7})
		require.NoError(t, err)
		assert.Equal(t, 2, got.Teams[1].ID)
	})

	t.Run("too small", func(t *testing.T) {
		_, err := svc.CreateTeam(baseSave(), "Solo", "", []int{1})
		assert.ErrorIs(t, err, domain.ErrTeamSize)
	})

	t.Run("too large", func(t *testing.T) {
		ids := make([]int, 9)
		_, err := svc.CreateTeam(baseSave(), "Armée", "", ids)
		assert.ErrorIs(t, err, domain.ErrTeamSize)
	})

	t.Run("unknown character", func(t *testing.T) {
		_, err := svc.CreateTeam(baseSave(), "X", "", []int{3, 99})
		assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
	})

	t.Run("busy character", func(t *testing.T) {
		save := baseSave()
		save.Teams = nil
		save.Characters[0].IsAvailable = false
		_, err := svc.CreateTeam(save, "X", "", []int{1, 2})
		assert.ErrorIs(t, err, domain.ErrCharacterBusy)
	})

	t.Run("already in a team", func(t *testing.T) {
		_, err := svc.CreateTeam(baseSave(), "X", "", []int{1, 3})
		assert.ErrorIs(t, err, domain.ErrCharacterInTeam)
	})
}

func TestDisbandTeam(t *testing.T) {
	svc := newTestService(t)

	t.Run("removes the team, keeps the roster", func(t *testing.T) {
		save := baseSave()
		got, err := svc.DisbandTeam(save, 1)
		require.NoError(t, err)

		assert.Empty(t, got.Teams)
		assert.Len(t, got.Characters, 3)
	})

	t.Run("unknown team", func(t *testing.T) {
		_, err := svc.DisbandTeam(baseSave(), 9)
		assert.ErrorIs(t, err, domain.ErrTeamNotFound)
	})

	t.Run("team on quest", func(t *testing.T) {
		save := baseSave()
		save.Teams[0].Status = domain.TeamStatusOnQuest
		_, err := svc.DisbandTeam(save, 1)
		assert.ErrorIs(t, err, domain.ErrTeamUnavailable)
	})
}

func TestStartUpgrade(t *testing.T) {
	svc := newTestService(t)

	t.Run("deducts cost and starts the timer", func(t *testing.T) {
		save := baseSave()
		got, err := svc.StartUpgrade(save, 1)
		require.NoError(t, err)

		assert.Equal(t, 900, got.Guild.Gold, "cost is upgradeCost * level")
		b := got.Guild.Buildings[0]
		assert.True(t, b.IsUpgrading)
		require.NotNil(t, b.UpgradeStartCycle)
		assert.Equal(t, 0, *b.UpgradeStartCycle)

		assert.Equal(t, 1000, save.Guild.Gold, "input save untouched")
	})

	t.Run("leader discount applies", func(t *testing.T) {
		save := baseSave()
		save.PlayerLeader = domain.PlayerLeader{
			Bonuses: []domain.LeaderModifier{{Type: domain.BonusBuildingCost, Value: 20}},
		}
		got, err := svc.StartUpgrade(save, 1)
		require.NoError(t, err)
		assert.Equal(t, 920, got.Guild.Gold)
	})

	t.Run("unknown building", func(t *testing.T) {
		_, err := svc.StartUpgrade(baseSave(), 9)
		assert.ErrorIs(t, err, domain.ErrBuildingNotFound)
	})

	t.Run("max level", func(t *testing.T) {
		save := baseSave()
		save.Guild.Buildings[0].Level = 5
		_, err := svc.StartUpgrade(save, 1)
		assert.ErrorIs(t, err, domain.ErrBuildingMaxLevel)
	})

	t.Run("already upgrading", func(t *testing.T) {
		save := baseSave()
		save.Guild.Buildings[0].IsUpgrading = true
		_, err := svc.StartUpgrade(save, 1)
		assert.ErrorIs(t, err, domain.ErrBuildingUpgrading)
	})

	t.Run("insufficient gold", func(t *testing.T) {
		save := baseSave()
		save.Guild.Gold = 10
		_, err := svc.StartUpgrade(save, 1)
		assert.ErrorIs(t, err, domain.ErrInsufficientGold)
	})
}

func TestHireRecruit(t *testing.T) {
	svc := newTestService(t)

	withRecruit := func() domain.GameSave {
		save := baseSave()
		save.AvailableRecruits = []domain.RecruitableCharacter{
			{Name: "Recrue", Level: 1, Class: "Guerrier", RecruitmentCost: 100, Rarity: domain.RarityCommon},
		}
		return save
	}

	t.Run("happy path", func(t *testing.T) {
		save := withRecruit()
		got, err := svc.HireRecruit(save, 0)
		require.NoError(t, err)

		assert.Equal(t, 900, got.Guild.Gold)
		assert.Equal(t, 4, got.Guild.CurrentMembers)
		assert.Empty(t, got.AvailableRecruits)
		require.Len(t, got.Characters, 4)

		hired := got.Characters[3]
		assert.Equal(t, 4, hired.ID)
		assert.Equal(t, "Recrue", hired.Name)
		assert.True(t, hired.IsAvailable)
		assert.False(t, hired.JoinDate.IsZero())
	})

	t.Run("recruitment discount applies", func(t *testing.T) {
		save := withRecruit()
		save.PlayerLeader = domain.PlayerLeader{
			Bonuses: []domain.LeaderModifier{{Type: domain.BonusRecruitment, Value: 25}},
		}
		got, err := svc.HireRecruit(save, 0)
		require.NoError(t, err)
		assert.Equal(t, 925, got.Guild.Gold)
	})

	t.Run("bad index", func(t *testing.T) {
		_, err := svc.HireRecruit(withRecruit(), 5)
		assert.ErrorIs(t, err, domain.ErrRecruitNotFound)

		_, err = svc.HireRecruit(withRecruit(), -1)
		assert.ErrorIs(t, err, domain.ErrRecruitNotFound)
	})

	t.Run("guild full", func(t *testing.T) {
		save := withRecruit()
		save.Guild.CurrentMembers = save.Guild.MaxMembers
		_, err := svc.HireRecruit(save, 0)
		assert.ErrorIs(t, err, domain.ErrGuildFull)
	})

	t.Run("insufficient gold", func(t *testing.T) {
		save := withRecruit()
		save.Guild.Gold = 50
		_, err := svc.HireRecruit(save, 0)
		assert.ErrorIs(t, err, domain.ErrInsufficientGold)
	})
}

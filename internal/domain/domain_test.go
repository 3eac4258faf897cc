package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameCycleTick(t *testing.T) {
	c := GameCycle{Day: 1, Period: PeriodDay, TotalCycles: 0}

	night := c.Tick()
	assert.Equal(t, GameCycle{Day: 1, Period: PeriodNight, TotalCycles: 1}, night)

	nextDay := night.Tick()
	assert.Equal(t, GameCycle{Day: 2, Period: PeriodDay, TotalCycles: 2}, nextDay)
}

func TestQuestExpired(t *testing.T) {
	cycle := 10

	t.Run("nil expiration never expires", func(t *testing.T) {
		q := Quest{}
		assert.False(t, q.Expired(1000000))
	})

	t.Run("expires at the exact cycle", func(t *testing.T) {
		q := Quest{ExpirationCycle: &cycle}
		assert.False(t, q.Expired(9))
		assert.True(t, q.Expired(10))
		assert.True(t, q.Expired(11))
	})
}

func TestTeamHasMember(t *testing.T) {
	team := Team{Members: []Character{{ID: 1}, {ID: 3}}}

	assert.True(t, team.HasMember(1))
	assert.True(t, team.HasMember(3))
	assert.False(t, team.HasMember(2))
	assert.False(t, Team{}.HasMember(1))
}

func TestLeaderBonusPercent(t *testing.T) {
	leader := PlayerLeader{
		Bonuses: []LeaderModifier{
			{Type: BonusGold, Value: 20},
			{Type: BonusGold, Value: 5},
			{Type: BonusReputation, Value: 10},
		},
		Maluses: []LeaderModifier{
			{Type: BonusGold, Value: 10},
		},
	}

	assert.Equal(t, 15, leader.BonusPercent(BonusGold))
	assert.Equal(t, 10, leader.BonusPercent(BonusReputation))
	assert.Equal(t, 0, leader.BonusPercent(BonusRecruitment))
}

func TestLeaderApplyBonus(t *testing.T) {
	leader := PlayerLeader{
		Bonuses: []LeaderModifier{{Type: BonusQuestRewards, Value: 15}},
		Maluses: []LeaderModifier{{Type: BonusExperience, Value: 10}},
	}

	assert.Equal(t, 115, leader.ApplyBonus(BonusQuestRewards, 100))
	assert.Equal(t, 90, leader.ApplyBonus(BonusExperience, 100))
	assert.Equal(t, 100, leader.ApplyBonus(BonusGold, 100), "no modifier is identity")
	assert.Equal(t, 58, leader.ApplyBonus(BonusQuestRewards, 50), "57.5 rounds up")
}

func TestLeaderApplyCost(t *testing.T) {
	leader := PlayerLeader{
		Bonuses: []LeaderModifier{{Type: BonusBuildingCost, Value: 20}},
		Maluses: []LeaderModifier{{Type: BonusRecruitment, Value: 25}},
	}

	assert.Equal(t, 80, leader.ApplyCost(BonusBuildingCost, 100), "positive percent is a discount")
	assert.Equal(t, 125, leader.ApplyCost(BonusRecruitment, 100), "negative percent is a surcharge")
	assert.Equal(t, 100, leader.ApplyCost(BonusGold, 100))
}

func TestGameSaveClone(t *testing.T) {
	exp := 20
	upgrade := 4
	original := GameSave{
		PlayerID: "p1",
		Guild: Guild{
			Name: "Aube d'Argent",
			Buildings: []Building{
				{ID: 1, Level: 2, Benefits: []string{"a"}, UpgradeStartCycle: &upgrade},
			},
		},
		Characters: []Character{
			{ID: 1, Skills: []Skill{{ID: 1, Name: "Charge"}}, Equipment: EquipmentSlots{Weapon: &Equipment{ID: 7}}},
		},
		Teams: []Team{
			{ID: 1, Members: []Character{{ID: 1}}},
		},
		AvailableQuests: []Quest{
			{ID: "q1", ExpirationCycle: &exp},
		},
		ActiveQuests: []ActiveQuest{
			{Quest: Quest{ID: "q2"}, AssignedTeam: Team{ID: 1, Members: []Character{{ID: 1}}}},
		},
		CompletedQuests: []CompletedQuest{
			{Quest: Quest{ID: "q3"}, AssignedTeam: Team{ID: 1}},
		},
		Achievements:      []string{"first_quest"},
		AvailableRecruits: []RecruitableCharacter{{Name: "Recrue"}},
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	// Mutating the clone must not leak into the original
	clone.Characters[0].Name = "changed"
	clone.Characters[0].Skills[0].Name = "changed"
	clone.Characters[0].Equipment.Weapon.ID = 99
	clone.Teams[0].Members[0].ID = 99
	*clone.AvailableQuests[0].ExpirationCycle = 999
	*clone.Guild.Buildings[0].UpgradeStartCycle = 999
	clone.Guild.Buildings[0].Benefits[0] = "changed"
	clone.Achievements[0] = "changed"
	clone.AvailableRecruits[0].Name = "changed"
	clone.ActiveQuests[0].AssignedTeam.Members[0].ID = 99

	assert.Equal(t, "", original.Characters[0].Name)
	assert.Equal(t, "Charge", original.Characters[0].Skills[0].Name)
	assert.Equal(t, 7, original.Characters[0].Equipment.Weapon.ID)
	assert.Equal(t, 1, original.Teams[0].Members[0].ID)
	assert.Equal(t, 20, *original.AvailableQuests[0].ExpirationCycle)
	assert.Equal(t, 4, *original.Guild.Buildings[0].UpgradeStartCycle)
	assert.Equal(t, "a", original.Guild.Buildings[0].Benefits[0])
	assert.Equal(t, "first_quest", original.Achievements[0])
	assert.Equal(t, "Recrue", original.AvailableRecruits[0].Name)
	assert.Equal(t, 1, original.ActiveQuests[0].AssignedTeam.Members[0].ID)
}

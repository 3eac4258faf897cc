package recruit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akwawa/guildmaster/internal/catalog"
	"github.com/akwawa/guildmaster/internal/domain"
	"github.com/akwawa/guildmaster/internal/progression"
)

func testGenerator(t *testing.T, seed int64) *Generator {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return NewGenerator(cat, seed)
}

func TestGeneratePool(t *testing.T) {
	g := testGenerator(t, 9)

	pool := g.GeneratePool(DefaultPoolSize)
	require.Len(t, pool, DefaultPoolSize)

	for i, r := range pool {
		assert.NotEmpty(t, r.Name, "recruit %d has no name", i)
		assert.NotEmpty(t, r.Class, "recruit %d has no class", i)
		assert.GreaterOrEqual(t, r.Level, 1)
		assert.LessOrEqual(t, r.Level, 6)
		assert.Positive(t, r.RecruitmentCost)
		assert.Equal(t, r.MaxHealth, r.Health, "recruits arrive at full health")
		assert.Equal(t, r.MaxMana, r.Mana)
		assert.Contains(t, []domain.Rarity{
			domain.RarityCommon, domain.RarityRare, domain.RarityEpic, domain.RarityLegendary,
		}, r.Rarity)
	}
}

func TestGeneratePool_LevelTracksRarity(t *testing.T) {
	g := testGenerator(t, 31)

	// Draw a large pool so every rarity shows up
	pool := g.GeneratePool(200)
	for _, r := range pool {
		switch r.Rarity {
		case domain.RarityLegendary:
			assert.GreaterOrEqual(t, r.Level, 4)
			assert.LessOrEqual(t, r.Level, 6)
		case domain.RarityEpic:
			assert.GreaterOrEqual(t, r.Level, 3)
			assert.LessOrEqual(t, r.Level, 4)
		case domain.RarityRare:
			assert.GreaterOrEqual(t, r.Level, 2)
			assert.LessOrEqual(t, r.Level, 3)
		default:
			assert.GreaterOrEqual(t, r.Level, 1)
			assert.LessOrEqual(t, r.Level, 2)
		}
	}
}

func TestGeneratePool_MagicClassesGetMana(t *testing.T) {
	g := testGenerator(t, 31)

	for _, r := range g.GeneratePool(100) {
		if progression.IsMagicClass(r.Class) {
			assert.Positive(t, r.MaxMana, "magic class %s has no mana", r.Class)
		} else {
			assert.Zero(t, r.MaxMana, "martial class %s has mana", r.Class)
		}
	}
}

func TestGeneratePool_Deterministic(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	a := NewGenerator(cat, 55).GeneratePool(10)
	b := NewGenerator(cat, 55).GeneratePool(10)

	assert.Equal(t, a, b)
}

func TestRecruitmentCost(t *testing.T) {
	t.Run("scales with level", func(t *testing.T) {
		assert.Equal(t, 100, RecruitmentCost(1, domain.RarityCommon, "Guerrier"))
		assert.Equal(t, 150, RecruitmentCost(2, domain.RarityCommon, "Guerrier"))
		assert.Equal(t, 225, RecruitmentCost(3, domain.RarityCommon, "Guerrier"))
	})

	t.Run("scales with rarity", func(t *testing.T) {
		assert.Equal(t, 1000, RecruitmentCost(1, domain.RarityLegendary, "Guerrier"))
		assert.Equal(t, 500, RecruitmentCost(1, domain.RarityEpic, "Guerrier"))
	})

	t.Run("class factor", func(t *testing.T) {
		assert.Equal(t, 130, RecruitmentCost(1, domain.RarityCommon, "Mage"))
		assert.Equal(t, 140, RecruitmentCost(1, domain.RarityCommon, "Paladin"))
	})

	t.Run("unknown rarity and class fall back", func(t *testing.T) {
		assert.Equal(t, 100, RecruitmentCost(1, "mythic", "Inconnu"))
	})
}

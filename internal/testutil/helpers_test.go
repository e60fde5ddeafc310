package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/gridwar/internal/game/core"
	"github.com/mitchelldurbincs/gridwar/internal/game/entity"
)

func TestScriptedRoller(t *testing.T) {
	r := NewScriptedRoller([]float64{0.1}, []int{3, 9, -2})

	assert.Equal(t, 0.1, r.Float64())
	assert.Equal(t, 0.99, r.Float64())

	assert.Equal(t, 3, r.Intn(5))
	assert.Equal(t, 4, r.Intn(5), "clamped to n-1")
	assert.Equal(t, 0, r.Intn(5), "clamped to 0")
	assert.Equal(t, 0, r.Intn(5), "exhausted")
}

func TestNewTestRNGDeterministic(t *testing.T) {
	a, b := NewTestRNG(7), NewTestRNG(7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestFixtures(t *testing.T) {
	g := CreateTestGridWithTerrain(3, 3, map[core.Position]core.Terrain{{X: 1, Y: 1}: core.TerrainWater})
	assert.Equal(t, 1, g.CountTerrain(core.TerrainWater))

	u := CreateTestUnit(entity.Archer, 1, 4)
	assert.Equal(t, 4, u.ID)
	assert.Equal(t, 1, u.Owner)

	b := CreateTestBuilding(entity.TrainingCamp, 0, 2)
	assert.True(t, b.CanTrain())

	AssertPanic(t, func() { CreateTestUnit(entity.UnitKind(99), 0, 1) })
}

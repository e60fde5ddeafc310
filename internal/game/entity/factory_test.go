package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/gridwar/internal/game/core"
	"github.com/mitchelldurbincs/gridwar/internal/game/resources"
)

func TestCreateUnit(t *testing.T) {
	tests := []struct {
		id   string
		kind UnitKind
		ok   bool
	}{
		{"soldier", Soldier, true},
		{"ARCHER", Archer, true},
		{"  Cavalry ", Cavalry, true},
		{"dragon", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			u, ok := CreateUnit(tt.id)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				assert.Nil(t, u)
				return
			}
			require.NotNil(t, u)
			assert.Equal(t, tt.kind, u.Kind)
			assert.Equal(t, core.NoPlayer, u.Owner)
		})
	}
}

func TestCreateBuilding(t *testing.T) {
	tests := []struct {
		id   string
		kind BuildingKind
		ok   bool
	}{
		{"CommandCenter", CommandCenter, true},
		{"command", CommandCenter, true},
		{"trainingcamp", TrainingCamp, true},
		{"Training", TrainingCamp, true},
		{"MINE", Mine, true},
		{"farm", Farm, true},
		{"sawmill", Sawmill, true},
		{"castle", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			b, ok := CreateBuilding(tt.id)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				assert.Nil(t, b)
				return
			}
			assert.Equal(t, tt.kind, b.Kind)
			assert.False(t, b.Constructed)
		})
	}
}

func TestAvailableIdentifiersResolve(t *testing.T) {
	for _, id := range AvailableUnits() {
		_, ok := CreateUnit(id)
		assert.True(t, ok, id)
	}
	for _, id := range AvailableBuildings() {
		_, ok := CreateBuilding(id)
		assert.True(t, ok, id)
	}
}

func TestCosts(t *testing.T) {
	c, ok := UnitCost("archer")
	require.True(t, ok)
	assert.Equal(t, 60, c)
	_, ok = UnitCost("nope")
	assert.False(t, ok)

	bc, ok := BuildingCost("training")
	require.True(t, ok)
	assert.Equal(t, resources.Cost{resources.Gold: 100, resources.Wood: 75}, bc)
	bc[resources.Gold] = 0
	again, _ := BuildingCost("training")
	assert.Equal(t, 100, again[resources.Gold])
}

func TestFaction(t *testing.T) {
	assert.Equal(t, Empire, FactionFor(0))
	assert.Equal(t, Kingdom, FactionFor(1))
	assert.Equal(t, Rebellion, FactionFor(2))
	assert.Equal(t, Empire, FactionFor(3))

	assert.Equal(t, "Kingdom", Kingdom.String())
	assert.InDelta(t, 1.1, Kingdom.StrengthBonus(), 1e-9)
	assert.InDelta(t, 0.9, Rebellion.StrengthBonus(), 1e-9)
	assert.NotEmpty(t, Empire.Description())
	assert.Equal(t, "Faction(5)", Faction(5).String())
}

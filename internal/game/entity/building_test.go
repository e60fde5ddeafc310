package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/gridwar/internal/game/resources"
)

func TestBuildingStats(t *testing.T) {
	tests := []struct {
		kind   BuildingKind
		hp     int
		armor  int
		turns  int
		output resources.Kind
		rate   int
	}{
		{CommandCenter, 100, 5, 5, resources.Gold, 5},
		{TrainingCamp, 60, 3, 4, 0, 0},
		{Mine, 40, 2, 3, resources.Stone, 15},
		{Farm, 35, 1, 2, resources.Food, 20},
		{Sawmill, 40, 2, 3, resources.Wood, 18},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			b, ok := NewBuilding(tt.kind, 0)
			require.True(t, ok)
			assert.Equal(t, tt.hp, b.Health)
			assert.Equal(t, tt.armor, b.Armor())
			assert.Equal(t, tt.turns, b.Remaining)
			assert.False(t, b.Constructed)

			b.ForceComplete()
			kind, amount, ok := b.Produce()
			if tt.rate == 0 {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.output, kind)
			assert.Equal(t, tt.rate, amount)
		})
	}
}

func TestBuilding_CostIsCopied(t *testing.T) {
	b, _ := NewBuilding(CommandCenter, 0)
	b.Stats.Cost[resources.Gold] = 1
	c, _ := NewBuilding(CommandCenter, 0)
	assert.Equal(t, 200, c.Cost()[resources.Gold])
}

func TestBuilding_Construction(t *testing.T) {
	b, _ := NewBuilding(Farm, 0)
	calls := 0
	b.OnComplete = func(*Building) { calls++ }

	assert.False(t, b.AdvanceConstruction())
	assert.Equal(t, 1, b.Remaining)
	_, _, ok := b.Produce()
	assert.False(t, ok, "unfinished buildings produce nothing")

	assert.True(t, b.AdvanceConstruction())
	assert.True(t, b.Constructed)
	assert.Equal(t, 0, b.Remaining)

	assert.True(t, b.AdvanceConstruction())
	b.ForceComplete()
	assert.Equal(t, 1, calls, "completion hook fires once")
}

func TestBuilding_ForceComplete(t *testing.T) {
	b, _ := NewBuilding(CommandCenter, 0)
	var got *Building
	b.OnComplete = func(done *Building) { got = done }

	b.ForceComplete()
	assert.True(t, b.Constructed)
	assert.Equal(t, 0, b.Remaining)
	assert.Same(t, b, got)
}

func TestBuilding_TrainingGate(t *testing.T) {
	camp, _ := NewBuilding(TrainingCamp, 0)
	assert.False(t, camp.CanTrain())
	camp.ForceComplete()
	assert.True(t, camp.CanTrain())

	cc, _ := NewBuilding(CommandCenter, 0)
	cc.ForceComplete()
	assert.False(t, cc.CanTrain())
}

func TestBuilding_ArmorFloor(t *testing.T) {
	for armor := 0; armor <= 6; armor++ {
		for damage := 0; damage <= 12; damage++ {
			b := &Building{Stats: BuildingStats{Armor: armor, MaxHealth: 1000}, Health: 1000}
			applied := b.TakeDamage(damage)

			want := damage - armor
			if want < 1 {
				want = 1
			}
			assert.Equal(t, want, applied, "damage=%d armor=%d", damage, armor)
		}
	}
}

func TestBuilding_Destroyed(t *testing.T) {
	b, _ := NewBuilding(Farm, 0)
	b.TakeDamage(10)
	assert.Equal(t, 26, b.Health)
	assert.False(t, b.IsDestroyed())

	assert.Equal(t, 26, b.TakeDamage(500))
	assert.Equal(t, 0, b.Health)
	assert.True(t, b.IsDestroyed())
}

func TestBuilding_String(t *testing.T) {
	b, _ := NewBuilding(Mine, 0)
	b.ID = 2
	assert.Equal(t, "Mine#2(HP:40/40, 3 turns left)", b.String())
	b.ForceComplete()
	assert.Equal(t, "Mine#2(HP:40/40)", b.String())
}

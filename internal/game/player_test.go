package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/gridwar/internal/game/core"
	"github.com/mitchelldurbincs/gridwar/internal/game/entity"
	"github.com/mitchelldurbincs/gridwar/internal/game/resources"
	"github.com/mitchelldurbincs/gridwar/internal/testutil"
)

func TestPlayer_InitialState(t *testing.T) {
	p := NewPlayer(1, nil, core.Position{X: 3, Y: 4})

	assert.Equal(t, 1, p.ID)
	assert.Equal(t, 1, p.GetID())
	assert.Equal(t, "Player 2", p.Name)
	assert.Equal(t, entity.FactionFor(1), p.Faction)
	assert.Equal(t, core.Position{X: 3, Y: 4}, p.Anchor)
	require.NotNil(t, p.Ledger)
	assert.Equal(t, 0, p.Ledger.Quantity(resources.Gold))
	assert.False(t, p.IsAlive(), "no units and no buildings")
}

func TestPlayer_Elimination(t *testing.T) {
	tests := []struct {
		name      string
		units     int
		buildings int
		alive     bool
	}{
		{"units and buildings", 2, 1, true},
		{"only units", 1, 0, true},
		{"only buildings", 0, 1, true},
		{"nothing left", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(0, nil, core.Position{})
			for i := 0; i < tt.units; i++ {
				p.AddUnit(testutil.CreateTestUnit(entity.Soldier, 0, 0))
			}
			for i := 0; i < tt.buildings; i++ {
				p.AddBuilding(testutil.CreateTestBuilding(entity.Farm, 0, 0))
			}
			assert.Equal(t, tt.alive, p.IsAlive())
		})
	}
}

func TestPlayer_RosterIDs(t *testing.T) {
	p := NewPlayer(2, nil, core.Position{})
	a := testutil.CreateTestUnit(entity.Soldier, core.NoPlayer, 0)
	b := testutil.CreateTestUnit(entity.Archer, core.NoPlayer, 0)
	p.AddUnit(a)
	p.AddUnit(b)

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
	assert.Equal(t, 2, a.Owner)

	got, ok := p.UnitByID(2)
	require.True(t, ok)
	assert.Same(t, b, got)

	removed, ok := p.RemoveUnit(1)
	require.True(t, ok)
	assert.Same(t, a, removed)
	_, ok = p.RemoveUnit(1)
	assert.False(t, ok)

	// IDs are never reused
	c := testutil.CreateTestUnit(entity.Cavalry, core.NoPlayer, 0)
	p.AddUnit(c)
	assert.Equal(t, 3, c.ID)

	camp := testutil.CreateTestBuilding(entity.TrainingCamp, core.NoPlayer, 0)
	p.AddBuilding(camp)
	assert.Equal(t, 1, camp.ID)
	assert.True(t, p.HasTrainingFacility())

	_, ok = p.BuildingByID(1)
	assert.True(t, ok)
	_, ok = p.RemoveBuilding(1)
	assert.True(t, ok)
	assert.False(t, p.HasTrainingFacility())
}

func TestPlayer_RemoveOldestUnits(t *testing.T) {
	p := NewPlayer(0, nil, core.Position{})
	for i := 0; i < 5; i++ {
		p.AddUnit(testutil.CreateTestUnit(entity.Soldier, 0, 0))
	}

	lost := p.RemoveOldestUnits(2)
	require.Len(t, lost, 2)
	assert.Equal(t, 1, lost[0].ID)
	assert.Equal(t, 2, lost[1].ID)
	require.Len(t, p.Units, 3)
	assert.Equal(t, 3, p.Units[0].ID)

	assert.Nil(t, p.RemoveOldestUnits(0))
	assert.Len(t, p.RemoveOldestUnits(10), 3)
	assert.Empty(t, p.Units)
}

func TestPlayer_Status(t *testing.T) {
	p := NewPlayer(0, resources.NewLedger(100, 0), core.Position{})
	p.AddUnit(testutil.CreateTestUnit(entity.Soldier, 0, 0))
	p.AddBuilding(testutil.CreateTestBuilding(entity.CommandCenter, 0, 0))

	s := p.Status()
	assert.Contains(t, s, "Player 1")
	assert.Contains(t, s, "Units: 1")
	assert.Contains(t, s, "Buildings: 1")
	assert.Contains(t, s, "Command Center")
	assert.Contains(t, p.String(), p.Faction.String())
}

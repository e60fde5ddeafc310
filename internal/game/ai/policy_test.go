package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/gridwar/internal/game"
	"github.com/mitchelldurbincs/gridwar/internal/game/core"
	"github.com/mitchelldurbincs/gridwar/internal/game/entity"
	"github.com/mitchelldurbincs/gridwar/internal/game/resources"
	"github.com/mitchelldurbincs/gridwar/internal/testutil"
)

func newSession(t *testing.T, seed int64) *game.Coordinator {
	t.Helper()
	cfg := game.DefaultSessionConfig(20, 20, 2)
	cfg.Rng = testutil.NewTestRNG(seed)
	c, err := game.NewSession(context.Background(), cfg)
	require.NoError(t, err)
	return c
}

func TestPlan_OpeningTurn(t *testing.T) {
	c := newSession(t, 7)
	p := NewPolicy(testutil.NewTestRNG(1), testutil.NopLogger())

	cmds := p.Plan(c)
	require.Len(t, cmds, 4)

	attack, ok := cmds[0].(*core.AttackUnitCommand)
	require.True(t, ok, "opening move attacks an enemy unit")
	assert.Equal(t, 0, attack.PlayerID)
	assert.Equal(t, 1, attack.TargetPlayerID)

	build, ok := cmds[1].(*core.ConstructCommand)
	require.True(t, ok, "without a camp the policy builds one")
	assert.Equal(t, campType, build.BuildingType)

	move, ok := cmds[2].(*core.MoveCommand)
	require.True(t, ok, "a unit marches toward the enemy")
	assert.NotEqual(t, build.At, move.To)

	assert.Equal(t, core.CommandEndTurn, cmds[3].GetType())
}

func TestPlan_TrainsWithCamp(t *testing.T) {
	c := newSession(t, 7)
	me := c.CurrentPlayer()
	me.AddBuilding(testutil.CreateTestBuilding(entity.TrainingCamp, me.ID, 0))

	cmds := NewPolicy(testutil.NewTestRNG(1), testutil.NopLogger()).Plan(c)
	require.Len(t, cmds, 4)
	train, ok := cmds[1].(*core.TrainUnitCommand)
	require.True(t, ok)
	assert.Equal(t, recruitType, train.UnitType)
}

func TestPlan_SkipsWhatItCannotAfford(t *testing.T) {
	c := newSession(t, 7)
	me := c.CurrentPlayer()
	me.Ledger = resources.NewEmptyLedger()

	cmds := NewPolicy(testutil.NewTestRNG(1), testutil.NopLogger()).Plan(c)
	for _, cmd := range cmds {
		assert.NotEqual(t, core.CommandConstruct, cmd.GetType())
		assert.NotEqual(t, core.CommandTrainUnit, cmd.GetType())
	}
}

func TestPlan_BuildsFarmWhenStarving(t *testing.T) {
	c := newSession(t, 7)
	me := c.CurrentPlayer()
	me.Ledger = resources.NewEmptyLedger()
	require.NoError(t, me.Ledger.Credit(resources.Gold, 500))
	require.NoError(t, me.Ledger.Credit(resources.Wood, 500))

	cmds := NewPolicy(testutil.NewTestRNG(1), testutil.NopLogger()).Plan(c)
	var built string
	for _, cmd := range cmds {
		if b, ok := cmd.(*core.ConstructCommand); ok {
			built = b.BuildingType
		}
	}
	assert.Equal(t, farmType, built)
}

func TestPlan_AttacksBuildingsWhenNoUnitsLeft(t *testing.T) {
	c := newSession(t, 7)
	enemy, ok := c.Player(1)
	require.True(t, ok)
	enemy.Units = nil

	cmds := NewPolicy(testutil.NewTestRNG(1), testutil.NopLogger()).Plan(c)
	hit, ok := cmds[0].(*core.AttackBuildingCommand)
	require.True(t, ok)
	assert.Equal(t, 1, hit.TargetPlayerID)
	assert.Equal(t, enemy.Buildings[0].ID, hit.TargetBuildingID)
}

func TestPlan_MoveClosesDistance(t *testing.T) {
	c := newSession(t, 7)
	me := c.CurrentPlayer()
	enemy, ok := c.Player(1)
	require.True(t, ok)

	var move *core.MoveCommand
	for _, cmd := range NewPolicy(testutil.NewTestRNG(3), testutil.NopLogger()).Plan(c) {
		if m, ok := cmd.(*core.MoveCommand); ok {
			move = m
		}
	}
	require.NotNil(t, move)

	from, ok := c.Grid().FindUnit(me.ID, move.UnitID)
	require.True(t, ok)
	assert.Less(t, move.To.DistanceTo(enemy.Anchor), from.DistanceTo(enemy.Anchor))

	require.NoError(t, c.Apply(context.Background(), move))
	at, ok := c.Grid().FindUnit(me.ID, move.UnitID)
	require.True(t, ok)
	assert.Equal(t, move.To, at)
}

func TestPlan_NoMoveOnceEveryUnitHasMoved(t *testing.T) {
	c := newSession(t, 7)
	for _, u := range c.CurrentPlayer().Units {
		u.MarkMoved()
	}
	for _, cmd := range NewPolicy(testutil.NewTestRNG(1), testutil.NopLogger()).Plan(c) {
		assert.NotEqual(t, core.CommandMove, cmd.GetType())
	}
}

func TestPlan_OnlyArmedUnitsAttack(t *testing.T) {
	c := newSession(t, 7)
	me := c.CurrentPlayer()
	armed := me.Units[1]
	for _, u := range me.Units {
		if u != armed {
			u.Stats.Range = 0
		}
	}

	for seed := int64(0); seed < 10; seed++ {
		cmds := NewPolicy(testutil.NewTestRNG(seed), testutil.NopLogger()).Plan(c)
		attack, ok := cmds[0].(*core.AttackUnitCommand)
		require.True(t, ok)
		assert.Equal(t, armed.ID, attack.AttackerID)
	}

	armed.Stats.Range = 0
	for _, cmd := range NewPolicy(testutil.NewTestRNG(1), testutil.NopLogger()).Plan(c) {
		assert.NotEqual(t, core.CommandAttackUnit, cmd.GetType())
	}
}

func TestTakeTurn_LedgerNeverNegative(t *testing.T) {
	c := newSession(t, 42)
	p := NewPolicy(c.Rand(), testutil.NopLogger())
	ctx := context.Background()

	for i := 0; i < 200 && !c.IsGameOver(); i++ {
		actor := c.CurrentPlayerIndex()
		res, err := p.TakeTurn(ctx, c)
		require.NoError(t, err)
		assert.True(t, res.EndedTurn)
		if !c.IsGameOver() {
			assert.NotEqual(t, actor, c.CurrentPlayerIndex(), "turn passes to the next player")
		}

		for _, pl := range c.Players() {
			for _, k := range resources.AllKinds {
				assert.GreaterOrEqual(t, pl.Ledger.Quantity(k), 0, "player %d %s", pl.ID, k)
			}
		}
	}
}

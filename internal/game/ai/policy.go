// Package ai holds the computer opponent. A Policy looks at the current
// player's position, plans a short list of commands and submits them through
// a processor.CommandProcessor, always finishing with an end turn.
package ai

import (
	"context"
	"errors"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/gridwar/internal/game"
	"github.com/mitchelldurbincs/gridwar/internal/game/core"
	"github.com/mitchelldurbincs/gridwar/internal/game/entity"
	"github.com/mitchelldurbincs/gridwar/internal/game/processor"
	"github.com/mitchelldurbincs/gridwar/internal/game/resources"
	"github.com/mitchelldurbincs/gridwar/internal/game/rules"
)

const (
	recruitType = "Soldier"
	campType    = "TrainingCamp"
	farmType    = "Farm"
)

// Policy is a simple scripted opponent
type Policy struct {
	rng    *rand.Rand
	logger zerolog.Logger
}

// NewPolicy creates a policy drawing its choices from rng
func NewPolicy(rng *rand.Rand, logger zerolog.Logger) *Policy {
	return &Policy{
		rng:    rng,
		logger: logger.With().Str("component", "AIPolicy").Logger(),
	}
}

// Plan returns the commands the current player would issue this turn. The
// list always ends with an end turn.
func (p *Policy) Plan(c *game.Coordinator) []core.Command {
	me := c.CurrentPlayer()
	if me == nil {
		return nil
	}

	var cmds []core.Command
	if cmd := p.planAttack(c, me); cmd != nil {
		cmds = append(cmds, cmd)
	}
	reserved := map[core.Position]bool{}
	if cmd := p.planEconomy(c, me); cmd != nil {
		if build, ok := cmd.(*core.ConstructCommand); ok {
			reserved[build.At] = true
		}
		cmds = append(cmds, cmd)
	}
	if cmd := p.planMove(c, me, reserved); cmd != nil {
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, &core.EndTurnCommand{PlayerID: me.ID})

	p.logger.Debug().
		Int("player_id", me.ID).
		Int("commands", len(cmds)).
		Msg("Planned turn")
	return cmds
}

// TakeTurn plans and plays the current player's turn
func (p *Policy) TakeTurn(ctx context.Context, c *game.Coordinator) (processor.Result, error) {
	cmds := p.Plan(c)
	if len(cmds) == 0 {
		return processor.Result{}, errors.New("ai: no player to act for")
	}
	res, err := processor.NewCommandProcessor(c, p.logger).Process(ctx, cmds)
	if err != nil {
		return res, err
	}
	// Make sure the turn passes even if the end turn got lost
	if !res.EndedTurn && !c.IsGameOver() {
		if err := c.AdvanceTurn(ctx); err != nil {
			return res, err
		}
		res.EndedTurn = true
	}
	return res, nil
}

// planAttack sends a random own unit against a random enemy unit it may
// strike, or against a random enemy building once the enemy has no units
// left.
func (p *Policy) planAttack(c *game.Coordinator, me *game.Player) core.Command {
	var enemyUnits []*entity.Unit
	type target struct{ owner, id int }
	var buildings []target
	for _, other := range c.Players() {
		if other.ID == me.ID || !other.IsAlive() {
			continue
		}
		enemyUnits = append(enemyUnits, other.Units...)
		for _, b := range other.Buildings {
			buildings = append(buildings, target{other.ID, b.ID})
		}
	}

	legal := c.LegalMoves()
	if len(enemyUnits) > 0 {
		var armed []*entity.Unit
		for _, u := range me.Units {
			if len(legal.AttackTargets(u, enemyUnits)) > 0 {
				armed = append(armed, u)
			}
		}
		if len(armed) == 0 {
			return nil
		}
		attacker := armed[p.rng.Intn(len(armed))]
		targets := legal.AttackTargets(attacker, enemyUnits)
		t := targets[p.rng.Intn(len(targets))]
		return &core.AttackUnitCommand{
			PlayerID:       me.ID,
			AttackerID:     attacker.ID,
			TargetPlayerID: t.Owner,
			TargetUnitID:   t.ID,
		}
	}

	if len(buildings) == 0 {
		return nil
	}
	t := buildings[p.rng.Intn(len(buildings))]
	var armed []*entity.Unit
	for _, u := range me.Units {
		if legal.ValidateAttack(u, t.owner) == nil {
			armed = append(armed, u)
		}
	}
	if len(armed) == 0 {
		return nil
	}
	return &core.AttackBuildingCommand{
		PlayerID:         me.ID,
		AttackerID:       armed[p.rng.Intn(len(armed))].ID,
		TargetPlayerID:   t.owner,
		TargetBuildingID: t.id,
	}
}

// planMove advances a random unit that has not moved yet toward the nearest
// enemy home, skipping reserved cells. It returns nil when no reachable cell
// gets closer.
func (p *Policy) planMove(c *game.Coordinator, me *game.Player, reserved map[core.Position]bool) core.Command {
	goal, ok := nearestEnemyHome(c, me)
	if !ok {
		return nil
	}
	grid := c.Grid()
	legal := c.LegalMoves()

	type option struct {
		unit *entity.Unit
		to   core.Position
	}
	var options []option
	for _, u := range me.Units {
		from, ok := grid.FindUnit(me.ID, u.ID)
		if !ok {
			continue
		}
		best, bestDist := from, from.DistanceTo(goal)
		for _, to := range legal.Destinations(grid, u, from) {
			if d := to.DistanceTo(goal); d < bestDist && !reserved[to] {
				best, bestDist = to, d
			}
		}
		if best != from {
			options = append(options, option{u, best})
		}
	}
	if len(options) == 0 {
		return nil
	}
	o := options[p.rng.Intn(len(options))]
	return &core.MoveCommand{PlayerID: me.ID, UnitID: o.unit.ID, To: o.to}
}

func nearestEnemyHome(c *game.Coordinator, me *game.Player) (core.Position, bool) {
	var goal core.Position
	found := false
	for _, other := range c.Players() {
		if other.ID == me.ID || !other.IsAlive() {
			continue
		}
		if !found || me.Anchor.DistanceTo(other.Anchor) < me.Anchor.DistanceTo(goal) {
			goal, found = other.Anchor, true
		}
	}
	return goal, found
}

// planEconomy trains a soldier when a camp is ready. Otherwise it starts a
// farm when upkeep is short, or a camp when none is standing.
func (p *Policy) planEconomy(c *game.Coordinator, me *game.Player) core.Command {
	if me.HasTrainingFacility() {
		if me.Ledger.CanAfford(unitCost(recruitType)) {
			return &core.TrainUnitCommand{PlayerID: me.ID, UnitType: recruitType}
		}
		return nil
	}

	kind := ""
	switch {
	case starving(me) && !owns(me, entity.Farm):
		kind = farmType
	case !owns(me, entity.TrainingCamp):
		kind = campType
	default:
		return nil
	}

	cost, ok := entity.BuildingCost(kind)
	if !ok || !me.Ledger.CanAfford(cost) {
		return nil
	}
	at, ok := c.Grid().NearestFree(me.Anchor)
	if !ok {
		return nil
	}
	return &core.ConstructCommand{PlayerID: me.ID, BuildingType: kind, At: at}
}

func unitCost(id string) resources.Cost {
	gold, _ := entity.UnitCost(id)
	return resources.GoldCost(gold)
}

// owns reports whether the player has a building of kind k, finished or not
func owns(me *game.Player, k entity.BuildingKind) bool {
	for _, b := range me.Buildings {
		if b.Kind == k {
			return true
		}
	}
	return false
}

// starving reports whether next upkeep would cost the player units
func starving(me *game.Player) bool {
	return rules.StarvationLosses(len(me.Units)+1, me.Ledger.Quantity(resources.Food)) > 0
}

package game

import (
	"github.com/mitchelldurbincs/gridwar/internal/game/core"
	"github.com/mitchelldurbincs/gridwar/internal/game/entity"
	"github.com/mitchelldurbincs/gridwar/internal/game/events"
)

// Command handlers. Each one checks every precondition before it touches
// the ledger, the grid or a roster, so a rejected command changes nothing.

func (c *Coordinator) trainUnit(cmd *core.TrainUnitCommand) error {
	p := c.gs.CurrentPlayer()

	u, ok := entity.CreateUnit(cmd.UnitType)
	if !ok {
		return core.ErrUnknownUnitType
	}
	if !p.HasTrainingFacility() {
		return core.ErrMissingPrerequisite
	}
	spawn, ok := c.gs.Grid.NearestFree(p.Anchor)
	if !ok {
		return core.ErrNoSpace
	}
	if !p.Ledger.Spend(u.Cost()) {
		return core.ErrInsufficientResources
	}

	p.AddUnit(u)
	if err := c.gs.Grid.Place(spawn, u.Occupant()); err != nil {
		// NearestFree guarantees a passable empty cell
		c.logger.Error().Err(err).Str("unit", u.String()).Msg("Spawn cell rejected placement")
	}

	c.eventBus.Publish(events.NewUnitTrainedEvent(c.gameID, p.ID, u.ID, u.Name(), spawn, c.gs.Turn))
	return nil
}

func (c *Coordinator) construct(cmd *core.ConstructCommand) error {
	p := c.gs.CurrentPlayer()

	b, ok := entity.CreateBuilding(cmd.BuildingType)
	if !ok {
		return core.ErrUnknownBuildingType
	}
	cell, ok := c.gs.Grid.Cell(cmd.At)
	if !ok {
		return core.ErrInvalidPosition
	}
	if !cell.Terrain.Passable() {
		return core.ErrImpassable
	}
	if !cell.IsEmpty() {
		return core.ErrOccupied
	}
	if !p.Ledger.Spend(b.Cost()) {
		return core.ErrInsufficientResources
	}

	p.AddBuilding(b)
	cell.Occupant = b.Occupant()
	b.OnComplete = c.onConstructed

	c.eventBus.Publish(events.NewBuildingStartedEvent(c.gameID, p.ID, b.ID, b.Name(), cmd.At, c.gs.Turn))
	return nil
}

// onConstructed is the completion hook installed on every building started
// during play.
func (c *Coordinator) onConstructed(b *entity.Building) {
	c.logger.Info().
		Int("player_id", b.Owner).
		Str("building", b.String()).
		Int("turn", c.gs.Turn).
		Msg("Construction complete")
	c.eventBus.Publish(events.NewBuildingConstructedEvent(c.gameID, b.Owner, b.ID, b.Name(), c.gs.Turn))
}

func (c *Coordinator) moveUnit(cmd *core.MoveCommand) error {
	p := c.gs.CurrentPlayer()

	u, ok := p.UnitByID(cmd.UnitID)
	if !ok {
		return core.ErrUnitNotFound
	}
	from, ok := c.gs.Grid.FindUnit(p.ID, u.ID)
	if !ok {
		return core.ErrUnitNotFound
	}
	if err := c.legalMoves.ValidateMove(c.gs.Grid, u, from, cmd.To); err != nil {
		return err
	}
	if err := c.gs.Grid.Move(from, cmd.To); err != nil {
		return err
	}
	u.MarkMoved()

	c.eventBus.Publish(events.NewUnitMovedEvent(c.gameID, p.ID, u.ID, from, cmd.To, c.gs.Turn))
	return nil
}

// enemy resolves the target player of an attack
func (c *Coordinator) enemy(attacker *Player, targetID int) (*Player, error) {
	target, ok := c.gs.PlayerByID(targetID)
	if !ok {
		return nil, core.ErrInvalidPlayer
	}
	if target.ID == attacker.ID {
		return nil, core.ErrFriendlyTarget
	}
	return target, nil
}

// attackerUnit resolves and checks the attacking unit
func (c *Coordinator) attackerUnit(p *Player, id int) (*entity.Unit, error) {
	u, ok := p.UnitByID(id)
	if !ok {
		return nil, core.ErrUnitNotFound
	}
	if !u.IsAlive() {
		return nil, core.ErrUnitDead
	}
	return u, nil
}

func (c *Coordinator) attackUnit(cmd *core.AttackUnitCommand) error {
	p := c.gs.CurrentPlayer()

	attacker, err := c.attackerUnit(p, cmd.AttackerID)
	if err != nil {
		return err
	}
	target, err := c.enemy(p, cmd.TargetPlayerID)
	if err != nil {
		return err
	}
	defender, ok := target.UnitByID(cmd.TargetUnitID)
	if !ok {
		return core.ErrUnitNotFound
	}
	if !defender.IsAlive() {
		return core.ErrUnitDead
	}
	if err := c.legalMoves.ValidateAttack(attacker, defender.Owner); err != nil {
		return err
	}

	outcome := c.resolver.Attack(attacker, defender)
	c.logger.Debug().
		Int("turn", c.gs.Turn).
		Str("attacker", attacker.String()).
		Str("defender", defender.String()).
		Int("damage", outcome.Damage).
		Bool("critical", outcome.Critical).
		Msg("Unit attacked")

	if outcome.Killed {
		c.removeUnit(target, defender)
		p.Score += c.cfg.UnitKillScore
	}
	return nil
}

func (c *Coordinator) attackBuilding(cmd *core.AttackBuildingCommand) error {
	p := c.gs.CurrentPlayer()

	attacker, err := c.attackerUnit(p, cmd.AttackerID)
	if err != nil {
		return err
	}
	target, err := c.enemy(p, cmd.TargetPlayerID)
	if err != nil {
		return err
	}
	b, ok := target.BuildingByID(cmd.TargetBuildingID)
	if !ok {
		return core.ErrBuildingNotFound
	}
	if err := c.legalMoves.ValidateAttack(attacker, target.ID); err != nil {
		return err
	}

	// Raw attack, no variance or critical roll; armor applies inside TakeDamage
	dealt := b.TakeDamage(attacker.Attack())
	c.eventBus.Publish(events.NewBuildingDamagedEvent(c.gameID, target.ID, b.ID, p.ID, attacker.ID, dealt, b.Health, c.gs.Turn))

	if b.IsDestroyed() {
		target.RemoveBuilding(b.ID)
		if pos, ok := c.gs.Grid.FindBuilding(target.ID, b.ID); ok {
			c.gs.Grid.Clear(pos)
		}
		p.Score += c.cfg.BuildingDestroyedScore
		c.logger.Info().
			Int("player_id", target.ID).
			Str("building", b.Name()).
			Int("destroyed_by", p.ID).
			Msg("Building destroyed")
		c.eventBus.Publish(events.NewBuildingDestroyedEvent(c.gameID, target.ID, b.ID, b.Name(), p.ID, c.gs.Turn))
	}
	return nil
}

// removeUnit takes a unit off its owner's roster and off the grid
func (c *Coordinator) removeUnit(owner *Player, u *entity.Unit) {
	owner.RemoveUnit(u.ID)
	if pos, ok := c.gs.Grid.FindUnit(owner.ID, u.ID); ok {
		c.gs.Grid.Clear(pos)
	}
}

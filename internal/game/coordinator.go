package game

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/mitchelldurbincs/gridwar/internal/game/combat"
	"github.com/mitchelldurbincs/gridwar/internal/game/core"
	"github.com/mitchelldurbincs/gridwar/internal/game/events"
	"github.com/mitchelldurbincs/gridwar/internal/game/rules"
	"github.com/mitchelldurbincs/gridwar/internal/game/states"
)

// NoWinner is reported when the game is still running or ended with nobody standing
const NoWinner = rules.NoWinner

// Coordinator owns one game session: the grid, the seated players, the turn
// cursor and the phase. It validates and applies commands one at a time and
// is not safe for concurrent use.
type Coordinator struct {
	gs     *GameState
	cfg    SessionConfig
	rng    *rand.Rand
	winner int

	resolver          *combat.Resolver
	legalMoves        *rules.LegalMoveCalculator
	winCondition      *rules.WinConditionChecker
	productionManager *ProductionManager
	turnProcessor     *TurnProcessor
	stateMachine      *states.StateMachine

	eventBus *events.EventBus
	gameID   string
	logger   zerolog.Logger
	tracer   trace.Tracer
}

// InitializeSession discards the current game and seats a fresh one of the
// given shape, keeping the coordinator's collaborators and configuration.
func (c *Coordinator) InitializeSession(width, height, players int) error {
	cfg := c.cfg
	cfg.Width, cfg.Height, cfg.Players = width, height, players
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid session config: %w", err)
	}

	if err := c.stateMachine.Reset("new session"); err != nil {
		return fmt.Errorf("reset state machine: %w", err)
	}

	si := NewSessionInitializer(cfg)
	si.setupDefaults()
	c.cfg = si.config
	return si.seat(c)
}

// Public accessors
func (c *Coordinator) GameID() string                         { return c.gameID }
func (c *Coordinator) Grid() *core.Grid                       { return c.gs.Grid }
func (c *Coordinator) Players() []*Player                     { return c.gs.Players }
func (c *Coordinator) CurrentPlayer() *Player                 { return c.gs.CurrentPlayer() }
func (c *Coordinator) CurrentPlayerIndex() int                { return c.gs.Current }
func (c *Coordinator) Phase() states.GamePhase                { return c.stateMachine.CurrentPhase() }
func (c *Coordinator) IsGameOver() bool                       { return c.Phase() == states.PhaseGameOver }
func (c *Coordinator) EventBus() *events.EventBus             { return c.eventBus }
func (c *Coordinator) Resolver() *combat.Resolver             { return c.resolver }
func (c *Coordinator) Rand() *rand.Rand                       { return c.rng }
func (c *Coordinator) LegalMoves() *rules.LegalMoveCalculator { return c.legalMoves }

// Turn returns the global turn counter
func (c *Coordinator) Turn() int {
	if c.gs == nil {
		return 0
	}
	return c.gs.Turn
}

// Player returns the player with the given id
func (c *Coordinator) Player(id int) (*Player, bool) {
	return c.gs.PlayerByID(id)
}

// Winner returns the winning player id, or -1 while the game runs or when
// nobody survived.
func (c *Coordinator) Winner() int {
	if !c.IsGameOver() {
		return rules.NoWinner
	}
	return c.winner
}

// Apply validates cmd and applies it in full, or rejects it with a
// *core.ActionError leaving the session unchanged.
func (c *Coordinator) Apply(ctx context.Context, cmd core.Command) error {
	if cmd == nil {
		return core.WrapActionError(nil, core.ErrUnknownCommand)
	}
	ctx, span := c.tracer.Start(ctx, "coordinator.apply")
	defer span.End()
	span.SetAttributes(
		attribute.String("game.id", c.gameID),
		attribute.Int("game.turn", c.Turn()),
		attribute.Int("player.id", cmd.GetPlayerID()),
		attribute.String("command.type", cmd.GetType().String()),
	)

	if err := c.checkTurn(cmd); err != nil {
		return c.reject(span, cmd, err)
	}

	var err error
	switch cmd := cmd.(type) {
	case *core.TrainUnitCommand:
		err = c.trainUnit(cmd)
	case *core.ConstructCommand:
		err = c.construct(cmd)
	case *core.MoveCommand:
		err = c.moveUnit(cmd)
	case *core.AttackUnitCommand:
		err = c.attackUnit(cmd)
	case *core.AttackBuildingCommand:
		err = c.attackBuilding(cmd)
	case *core.EndTurnCommand:
		// AdvanceTurn publishes its own events
		return c.AdvanceTurn(ctx)
	default:
		err = core.ErrUnknownCommand
	}
	if err != nil {
		return c.reject(span, cmd, err)
	}

	c.logger.Debug().
		Int("player_id", cmd.GetPlayerID()).
		Str("command", cmd.Describe()).
		Int("turn", c.gs.Turn).
		Msg("Command applied")
	c.eventBus.Publish(events.NewCommandAppliedEvent(c.gameID, cmd, c.gs.Turn))
	return nil
}

// checkTurn rejects commands outside the Playing phase or out of turn
func (c *Coordinator) checkTurn(cmd core.Command) error {
	if !c.Phase().CanReceiveActions() {
		return core.ErrGameOver
	}
	if _, ok := c.gs.PlayerByID(cmd.GetPlayerID()); !ok {
		return core.ErrInvalidPlayer
	}
	if cmd.GetPlayerID() != c.gs.CurrentPlayer().ID {
		return core.ErrNotYourTurn
	}
	return nil
}

func (c *Coordinator) reject(span trace.Span, cmd core.Command, err error) error {
	wrapped := core.WrapActionError(cmd, err)
	span.RecordError(wrapped)
	span.SetAttributes(attribute.Bool("command.rejected", true))

	c.logger.Warn().
		Err(err).
		Int("player_id", cmd.GetPlayerID()).
		Str("command", cmd.Describe()).
		Int("turn", c.Turn()).
		Msg("Command rejected")
	c.eventBus.Publish(events.NewCommandRejectedEvent(c.gameID, cmd, err, c.Turn()))
	return wrapped
}

// TrainUnit recruits a unit for the current player
func (c *Coordinator) TrainUnit(ctx context.Context, playerID int, unitType string) error {
	return c.Apply(ctx, &core.TrainUnitCommand{PlayerID: playerID, UnitType: unitType})
}

// Construct starts a building at the given cell
func (c *Coordinator) Construct(ctx context.Context, playerID int, buildingType string, at core.Position) error {
	return c.Apply(ctx, &core.ConstructCommand{PlayerID: playerID, BuildingType: buildingType, At: at})
}

// MoveUnit relocates one of the current player's units
func (c *Coordinator) MoveUnit(ctx context.Context, playerID, unitID int, to core.Position) error {
	return c.Apply(ctx, &core.MoveCommand{PlayerID: playerID, UnitID: unitID, To: to})
}

// AttackUnit strikes an enemy unit through the combat resolver
func (c *Coordinator) AttackUnit(ctx context.Context, playerID, attackerID, targetPlayer, targetUnitID int) error {
	return c.Apply(ctx, &core.AttackUnitCommand{
		PlayerID:       playerID,
		AttackerID:     attackerID,
		TargetPlayerID: targetPlayer,
		TargetUnitID:   targetUnitID,
	})
}

// AttackBuilding strikes an enemy building with raw attack damage
func (c *Coordinator) AttackBuilding(ctx context.Context, playerID, attackerID, targetPlayer, targetBuildingID int) error {
	return c.Apply(ctx, &core.AttackBuildingCommand{
		PlayerID:         playerID,
		AttackerID:       attackerID,
		TargetPlayerID:   targetPlayer,
		TargetBuildingID: targetBuildingID,
	})
}

// EndTurn finishes the current player's turn
func (c *Coordinator) EndTurn(ctx context.Context, playerID int) error {
	return c.Apply(ctx, &core.EndTurnCommand{PlayerID: playerID})
}

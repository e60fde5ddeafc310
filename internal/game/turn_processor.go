package game

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/mitchelldurbincs/gridwar/internal/game/core"
	"github.com/mitchelldurbincs/gridwar/internal/game/entity"
	"github.com/mitchelldurbincs/gridwar/internal/game/events"
	"github.com/mitchelldurbincs/gridwar/internal/game/resources"
	"github.com/mitchelldurbincs/gridwar/internal/game/rules"
	"github.com/mitchelldurbincs/gridwar/internal/game/states"
)

// TurnProcessor handles the end of a player's turn and the cursor advance
type TurnProcessor struct {
	coord  *Coordinator
	logger zerolog.Logger
}

// UpkeepReport describes what EndTurnFor did to one player
type UpkeepReport struct {
	Production ProductionReport
	Starved    []*entity.Unit // removed oldest first
}

// NewTurnProcessor creates a new turn processor
func NewTurnProcessor(coord *Coordinator) *TurnProcessor {
	return &TurnProcessor{
		coord:  coord,
		logger: coord.logger.With().Str("component", "TurnProcessor").Logger(),
	}
}

// AdvanceTurn ends the current player's turn, moves the cursor, and checks
// the win condition. The turn counter grows when the cursor wraps to 0.
func (c *Coordinator) AdvanceTurn(ctx context.Context) error {
	return c.turnProcessor.AdvanceTurn(ctx)
}

// EndTurnFor runs end-of-turn upkeep for p without moving the cursor
func (c *Coordinator) EndTurnFor(p *Player) UpkeepReport {
	return c.turnProcessor.EndTurnFor(p)
}

// AdvanceTurn executes the turn hand-over
func (tp *TurnProcessor) AdvanceTurn(ctx context.Context) error {
	if err := tp.checkContext(ctx); err != nil {
		return err
	}
	if err := tp.validateGameState(); err != nil {
		return err
	}

	c := tp.coord
	gs := c.gs

	_, span := c.tracer.Start(ctx, "coordinator.advance_turn")
	defer span.End()

	current := gs.CurrentPlayer()
	turnLogger := tp.logger.With().Int("turn", gs.Turn).Int("player_id", current.ID).Logger()
	turnLogger.Debug().Msg("Ending turn")

	report := tp.EndTurnFor(current)
	c.eventBus.Publish(events.NewTurnEndedEvent(c.gameID, gs.Turn, current.ID, len(report.Starved)))

	gs.Current = (gs.Current + 1) % len(gs.Players)
	if gs.Current == 0 {
		gs.Turn++
	}

	span.SetAttributes(
		attribute.String("game.id", c.gameID),
		attribute.Int("game.turn", gs.Turn),
		attribute.Int("player.ended", current.ID),
		attribute.Int("player.next", gs.Current),
		attribute.Int("units.starved", len(report.Starved)),
	)

	if tp.checkGameOver(current, turnLogger) {
		span.SetAttributes(attribute.Int("game.winner", c.winner))
		return nil
	}

	c.eventBus.Publish(events.NewTurnStartedEvent(c.gameID, gs.Turn, gs.CurrentPlayer().ID))
	turnLogger.Debug().Int("next_player", gs.Current).Int("next_turn", gs.Turn).Msg("Turn advanced")
	return nil
}

// EndTurnFor runs, in order: building production and construction, unit
// move resets, then food upkeep. Starvation removes units from the front of
// the roster and does not consume food.
func (tp *TurnProcessor) EndTurnFor(p *Player) UpkeepReport {
	c := tp.coord
	report := UpkeepReport{
		Production: c.productionManager.ProcessPlayerProduction(p, c.gs.Turn),
	}

	for _, u := range p.Units {
		u.ResetTurn()
	}

	food := p.Ledger.Quantity(resources.Food)
	if lost := rules.StarvationLosses(len(p.Units), food); lost > 0 {
		report.Starved = p.RemoveOldestUnits(lost)
		for _, u := range report.Starved {
			if pos, ok := c.gs.Grid.FindUnit(p.ID, u.ID); ok {
				c.gs.Grid.Clear(pos)
			}
			c.eventBus.Publish(events.NewUnitStarvedEvent(c.gameID, p.ID, u.ID, c.gs.Turn))
		}
		tp.logger.Info().
			Int("player_id", p.ID).
			Int("food", food).
			Int("units_lost", len(report.Starved)).
			Msg("Units starved")
	}

	return report
}

// checkContext checks if the context is cancelled
func (tp *TurnProcessor) checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		tp.logger.Warn().
			Err(ctx.Err()).
			Int("turn", tp.coord.Turn()).
			Msg("Turn advance cancelled")
		return ctx.Err()
	default:
		return nil
	}
}

// validateGameState ensures the game can still advance
func (tp *TurnProcessor) validateGameState() error {
	currentPhase := tp.coord.Phase()
	if !currentPhase.CanReceiveActions() {
		tp.logger.Warn().
			Str("current_phase", currentPhase.String()).
			Int("turn", tp.coord.Turn()).
			Msg("Attempted to advance a game that cannot receive actions")
		return fmt.Errorf("advance turn in %s phase: %w", currentPhase, core.ErrGameOver)
	}
	return nil
}

// checkGameOver marks newly eliminated players and ends the game when at
// most one player still has a unit or a building. It reports whether the
// game ended.
func (tp *TurnProcessor) checkGameOver(lastActor *Player, turnLogger zerolog.Logger) bool {
	c := tp.coord
	gs := c.gs

	ruleView := make([]rules.Player, len(gs.Players))
	for i, p := range gs.Players {
		ruleView[i] = p
	}

	for _, id := range c.winCondition.Eliminated(ruleView) {
		p := gs.Players[id]
		if p.Defeated {
			continue
		}
		p.Defeated = true
		by := lastActor.ID
		if by == p.ID {
			by = core.NoPlayer
		}
		turnLogger.Info().Int("eliminated_player", p.ID).Int("eliminated_by", by).Msg("Player eliminated")
		c.eventBus.Publish(events.NewPlayerEliminatedEvent(c.gameID, p.ID, by, gs.Turn))
	}

	over, winner := c.winCondition.CheckGameOver(ruleView)
	if !over {
		return false
	}

	c.winner = winner
	gameContext := c.stateMachine.GetContext()
	gameContext.Winner = winner
	gameContext.FinalTurn = gs.Turn

	reason := "all players eliminated"
	if winner != rules.NoWinner {
		reason = fmt.Sprintf("%s is the last player standing", gs.Players[winner].Name)
	}
	if err := c.stateMachine.TransitionTo(states.PhaseGameOver, reason); err != nil {
		turnLogger.Error().Err(err).Msg("Failed to transition to GameOver state")
	}

	c.eventBus.Publish(events.NewGameEndedEvent(c.gameID, winner, gameContext.GetElapsedTime(), gs.Turn))
	turnLogger.Info().Int("winner", winner).Int("final_turn", gs.Turn).Msg("Game over")
	return true
}

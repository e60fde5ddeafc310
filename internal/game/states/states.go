package states

import (
	"fmt"
	"time"
)

// InitializingState represents session setup
type InitializingState struct{}

func NewInitializingState() State {
	return &InitializingState{}
}

func (s *InitializingState) Phase() GamePhase {
	return PhaseInitializing
}

func (s *InitializingState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Entering Initializing state")
	return nil
}

func (s *InitializingState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().
		Int("player_count", ctx.PlayerCount).
		Msg("Session setup complete")
	return nil
}

func (s *InitializingState) Validate(ctx *GameContext) error {
	return nil
}

// PlayingState represents active gameplay
type PlayingState struct{}

func NewPlayingState() State {
	return &PlayingState{}
}

func (s *PlayingState) Phase() GamePhase {
	return PhasePlaying
}

func (s *PlayingState) Enter(ctx *GameContext) error {
	ctx.StartTime = time.Now()
	ctx.EndTime = time.Time{}
	ctx.Winner = NoWinner
	ctx.Logger.Info().
		Int("player_count", ctx.PlayerCount).
		Time("start_time", ctx.StartTime).
		Msg("Game started")
	return nil
}

func (s *PlayingState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().
		Dur("elapsed", ctx.GetElapsedTime()).
		Msg("Exiting playing state")
	return nil
}

func (s *PlayingState) Validate(ctx *GameContext) error {
	if !ctx.IsReady() {
		return fmt.Errorf("not enough players to start: have %d, need at least %d", ctx.PlayerCount, ctx.MinPlayers)
	}
	return nil
}

// GameOverState represents a finished game
type GameOverState struct{}

func NewGameOverState() State {
	return &GameOverState{}
}

func (s *GameOverState) Phase() GamePhase {
	return PhaseGameOver
}

func (s *GameOverState) Enter(ctx *GameContext) error {
	ctx.EndTime = time.Now()
	event := ctx.Logger.Info().
		Int("final_turn", ctx.FinalTurn).
		Dur("duration", ctx.GetElapsedTime())
	if ctx.Winner == NoWinner {
		event.Msg("Game over with no survivors")
	} else {
		event.Int("winner", ctx.Winner).Msg("Game over")
	}
	return nil
}

func (s *GameOverState) Exit(ctx *GameContext) error {
	return nil
}

func (s *GameOverState) Validate(ctx *GameContext) error {
	if ctx.Winner < NoWinner || ctx.Winner >= ctx.PlayerCount {
		return fmt.Errorf("winner %d is not a seated player", ctx.Winner)
	}
	return nil
}

// ResetState clears per-session data before a new session
type ResetState struct{}

func NewResetState() State {
	return &ResetState{}
}

func (s *ResetState) Phase() GamePhase {
	return PhaseReset
}

func (s *ResetState) Enter(ctx *GameContext) error {
	ctx.Logger.Info().Msg("Resetting session")
	ctx.PlayerCount = 0
	ctx.Winner = NoWinner
	ctx.FinalTurn = 0
	ctx.StartTime = time.Time{}
	ctx.EndTime = time.Time{}
	return nil
}

func (s *ResetState) Exit(ctx *GameContext) error {
	return nil
}

func (s *ResetState) Validate(ctx *GameContext) error {
	return nil
}

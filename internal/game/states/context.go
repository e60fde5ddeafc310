package states

import (
	"time"

	"github.com/rs/zerolog"
)

// NoWinner marks a game without a winner
const NoWinner = -1

// GameContext provides session information to states for making decisions
type GameContext struct {
	// GameID uniquely identifies this session
	GameID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// PlayerCount is the number of players seated
	PlayerCount int

	// MinPlayers is the number of players required to start
	MinPlayers int

	// StartTime is when PhasePlaying was entered
	StartTime time.Time

	// EndTime is when PhaseGameOver was entered
	EndTime time.Time

	// Winner is the winning player ID, NoWinner while playing or on a wipeout
	Winner int

	// FinalTurn is the turn counter when the game ended
	FinalTurn int
}

// NewGameContext creates a new game context
func NewGameContext(gameID string, minPlayers int, logger zerolog.Logger) *GameContext {
	return &GameContext{
		GameID:     gameID,
		MinPlayers: minPlayers,
		Logger:     logger.With().Str("game_id", gameID).Logger(),
		Winner:     NoWinner,
	}
}

// IsReady returns true if the session has enough players to start
func (gc *GameContext) IsReady() bool {
	return gc.PlayerCount >= gc.MinPlayers
}

// GetElapsedTime returns the play time so far, or the full duration once the game ended
func (gc *GameContext) GetElapsedTime() time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}
	if !gc.EndTime.IsZero() {
		return gc.EndTime.Sub(gc.StartTime)
	}
	return time.Since(gc.StartTime)
}

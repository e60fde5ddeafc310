package rules

import "github.com/rs/zerolog"

// NoWinner is reported when the game ends with nobody left standing
const NoWinner = -1

// Player is the view of a seat the win check needs
type Player interface {
	GetID() int
	// IsAlive reports whether the player still owns a unit or a building
	IsAlive() bool
}

// WinConditionChecker decides when a session is over and who won it
type WinConditionChecker struct {
	logger zerolog.Logger
	seats  int
}

func NewWinConditionChecker(logger zerolog.Logger, seats int) *WinConditionChecker {
	return &WinConditionChecker{
		logger: logger.With().Str("component", "WinConditionChecker").Logger(),
		seats:  seats,
	}
}

// CheckGameOver reports whether the game has ended and the winner, or
// NoWinner when nobody is left. A multi-seat game ends when at most one
// player stands; a solo game ends only when the sole player falls.
func (wc *WinConditionChecker) CheckGameOver(players []Player) (bool, int) {
	standing := wc.standing(players)

	limit := 1
	if wc.seats <= 1 {
		limit = 0
	}
	over := len(standing) <= limit

	wc.logger.Debug().
		Bool("is_game_over", over).
		Ints("standing", standing).
		Msg("Game over check complete")

	if !over {
		return false, NoWinner
	}
	if len(standing) == 1 {
		wc.logger.Info().Int("winner_player_id", standing[0]).Msg("Winner determined")
		return true, standing[0]
	}
	wc.logger.Info().Msg("No winner, every player was eliminated")
	return true, NoWinner
}

// Eliminated returns the ids of players with no presence left on the field
func (wc *WinConditionChecker) Eliminated(players []Player) []int {
	var out []int
	for _, p := range players {
		if !p.IsAlive() {
			out = append(out, p.GetID())
		}
	}
	return out
}

func (wc *WinConditionChecker) standing(players []Player) []int {
	var ids []int
	for _, p := range players {
		if p.IsAlive() {
			ids = append(ids, p.GetID())
		}
	}
	return ids
}

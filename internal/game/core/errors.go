package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPosition       = errors.New("position outside the grid")
	ErrImpassable            = errors.New("terrain is impassable")
	ErrOccupied              = errors.New("cell is occupied")
	ErrNoSpace               = errors.New("no free cell available")
	ErrUnitNotFound          = errors.New("unit not found")
	ErrBuildingNotFound      = errors.New("building not found")
	ErrUnknownUnitType       = errors.New("unknown unit type")
	ErrUnknownBuildingType   = errors.New("unknown building type")
	ErrInsufficientResources = errors.New("not enough resources")
	ErrMissingPrerequisite   = errors.New("missing prerequisite building")
	ErrAlreadyMoved          = errors.New("unit has already moved this turn")
	ErrOutOfRange            = errors.New("destination beyond movement allowance")
	ErrFriendlyTarget        = errors.New("cannot attack own units or buildings")
	ErrUnitDead              = errors.New("unit is dead")
	ErrNotYourTurn           = errors.New("not this player's turn")
	ErrGameOver              = errors.New("game is over")
	ErrInvalidPlayer         = errors.New("invalid player ID")
	ErrUnknownCommand        = errors.New("unknown command")
)

// ActionError is a rejected command. It unwraps to one of the sentinel
// errors above.
type ActionError struct {
	PlayerID int
	Command  string
	Err      error
}

func (e *ActionError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("player %d: %v", e.PlayerID, e.Err)
	}
	return fmt.Sprintf("player %d: %s: %v", e.PlayerID, e.Command, e.Err)
}

func (e *ActionError) Unwrap() error { return e.Err }

// WrapActionError attaches command context to err. A nil err stays nil.
func WrapActionError(cmd Command, err error) error {
	if err == nil {
		return nil
	}
	if cmd == nil {
		return fmt.Errorf("player action: %w", err)
	}
	return &ActionError{
		PlayerID: cmd.GetPlayerID(),
		Command:  cmd.Describe(),
		Err:      err,
	}
}

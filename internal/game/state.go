package game

import "github.com/mitchelldurbincs/gridwar/internal/game/core"

// GameState is the mutable board of one session
type GameState struct {
	Turn    int // starts at 1, bumps when the cursor wraps to player 0
	Current int // index into Players whose turn it is
	Grid    *core.Grid
	Players []*Player
}

// CurrentPlayer returns the player whose turn it is
func (gs *GameState) CurrentPlayer() *Player {
	return gs.Players[gs.Current]
}

// PlayerByID returns the player with the given id
func (gs *GameState) PlayerByID(id int) (*Player, bool) {
	if id < 0 || id >= len(gs.Players) {
		return nil, false
	}
	return gs.Players[id], true
}

// UnitAt returns the unit standing on p, if any
func (gs *GameState) UnitAt(p core.Position) (*Player, int, bool) {
	c, ok := gs.Grid.Cell(p)
	if !ok || !c.Occupant.IsUnit() {
		return nil, 0, false
	}
	owner, ok := gs.PlayerByID(c.Occupant.Owner)
	if !ok {
		return nil, 0, false
	}
	return owner, c.Occupant.ID, true
}

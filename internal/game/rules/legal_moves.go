package rules

import (
	"github.com/mitchelldurbincs/gridwar/internal/game/core"
	"github.com/mitchelldurbincs/gridwar/internal/game/entity"
)

// LegalMoveCalculator computes where units may go and whom they may strike
type LegalMoveCalculator struct{}

// NewLegalMoveCalculator creates a new legal move calculator
func NewLegalMoveCalculator() *LegalMoveCalculator {
	return &LegalMoveCalculator{}
}

// ValidateMove checks a single-step relocation of u from one cell to another.
// The distance is Manhattan and ignores obstacles in between.
func (lmc *LegalMoveCalculator) ValidateMove(grid *core.Grid, u *entity.Unit, from, to core.Position) error {
	if !u.IsAlive() {
		return core.ErrUnitDead
	}
	if u.HasMoved() {
		return core.ErrAlreadyMoved
	}
	cell, ok := grid.Cell(to)
	if !ok {
		return core.ErrInvalidPosition
	}
	if !cell.Terrain.Passable() {
		return core.ErrImpassable
	}
	if !cell.IsEmpty() {
		return core.ErrOccupied
	}
	if from.DistanceTo(to) > u.Movement() {
		return core.ErrOutOfRange
	}
	return nil
}

// Destinations lists every cell u could legally move to this turn, in
// row-major order.
func (lmc *LegalMoveCalculator) Destinations(grid *core.Grid, u *entity.Unit, from core.Position) []core.Position {
	if !u.IsAlive() || u.HasMoved() {
		return nil
	}
	reach := u.Movement()
	var out []core.Position
	for y := from.Y - reach; y <= from.Y+reach; y++ {
		for x := from.X - reach; x <= from.X+reach; x++ {
			to := core.Position{X: x, Y: y}
			if to == from {
				continue
			}
			// Use the existing validation logic
			if lmc.ValidateMove(grid, u, from, to) == nil {
				out = append(out, to)
			}
		}
	}
	return out
}

// ValidateAttack checks that attacker may strike a unit or building owned
// by targetOwner. Distance is not checked; any range of at least 1 reaches.
func (lmc *LegalMoveCalculator) ValidateAttack(attacker *entity.Unit, targetOwner int) error {
	if !attacker.IsAlive() {
		return core.ErrUnitDead
	}
	if attacker.Range() < 1 {
		return core.ErrOutOfRange
	}
	if attacker.Owner == targetOwner {
		return core.ErrFriendlyTarget
	}
	return nil
}

// AttackTargets returns the living enemy units attacker may strike
func (lmc *LegalMoveCalculator) AttackTargets(attacker *entity.Unit, enemies []*entity.Unit) []*entity.Unit {
	var out []*entity.Unit
	for _, e := range enemies {
		if e.IsAlive() && lmc.ValidateAttack(attacker, e.Owner) == nil {
			out = append(out, e)
		}
	}
	return out
}

// HasTrainingFacility reports whether any constructed building can train units
func HasTrainingFacility(buildings []*entity.Building) bool {
	for _, b := range buildings {
		if b.CanTrain() {
			return true
		}
	}
	return false
}

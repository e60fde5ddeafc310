package core

import "fmt"

// OccupantKind tags what, if anything, stands on a cell
type OccupantKind int

const (
	OccupantEmpty OccupantKind = iota
	OccupantUnit
	OccupantBuilding
)

// Occupant is the tagged content of a cell. The ID is the per-player unit or
// building id; Owner is the owning player id.
type Occupant struct {
	Kind  OccupantKind
	ID    int
	Owner int
}

// EmptyOccupant is the zero occupant
var EmptyOccupant = Occupant{Kind: OccupantEmpty, Owner: NoPlayer}

// UnitOccupant builds an occupant for a unit
func UnitOccupant(id, owner int) Occupant {
	return Occupant{Kind: OccupantUnit, ID: id, Owner: owner}
}

// BuildingOccupant builds an occupant for a building
func BuildingOccupant(id, owner int) Occupant {
	return Occupant{Kind: OccupantBuilding, ID: id, Owner: owner}
}

func (o Occupant) IsEmpty() bool    { return o.Kind == OccupantEmpty }
func (o Occupant) IsUnit() bool     { return o.Kind == OccupantUnit }
func (o Occupant) IsBuilding() bool { return o.Kind == OccupantBuilding }

func (o Occupant) String() string {
	switch o.Kind {
	case OccupantUnit:
		return fmt.Sprintf("unit#%d(p%d)", o.ID, o.Owner)
	case OccupantBuilding:
		return fmt.Sprintf("building#%d(p%d)", o.ID, o.Owner)
	default:
		return "empty"
	}
}

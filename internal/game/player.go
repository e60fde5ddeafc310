package game

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/gridwar/internal/game/core"
	"github.com/mitchelldurbincs/gridwar/internal/game/entity"
	"github.com/mitchelldurbincs/gridwar/internal/game/resources"
	"github.com/mitchelldurbincs/gridwar/internal/game/rules"
)

// Player owns a ledger, a roster of units and a set of buildings. Units and
// buildings belong to exactly one player for their whole life.
type Player struct {
	ID        int
	Name      string
	Faction   entity.Faction
	Ledger    *resources.Ledger
	Units     []*entity.Unit
	Buildings []*entity.Building
	Score     int
	Defeated  bool
	Anchor    core.Position // home cell used for spawning

	nextUnitID     int
	nextBuildingID int
}

// NewPlayer creates a player seated at index id with an empty roster
func NewPlayer(id int, ledger *resources.Ledger, anchor core.Position) *Player {
	if ledger == nil {
		ledger = resources.NewEmptyLedger()
	}
	return &Player{
		ID:             id,
		Name:           fmt.Sprintf("Player %d", id+1),
		Faction:        entity.FactionFor(id),
		Ledger:         ledger,
		Anchor:         anchor,
		nextUnitID:     1,
		nextBuildingID: 1,
	}
}

// GetID implements rules.Player
func (p *Player) GetID() int { return p.ID }

// IsAlive reports whether the player still fields a unit or a building
func (p *Player) IsAlive() bool {
	return len(p.Units) > 0 || len(p.Buildings) > 0
}

// AddUnit takes ownership of u and assigns the next unit id
func (p *Player) AddUnit(u *entity.Unit) {
	u.Owner = p.ID
	u.ID = p.nextUnitID
	p.nextUnitID++
	p.Units = append(p.Units, u)
}

// AddBuilding takes ownership of b and assigns the next building id
func (p *Player) AddBuilding(b *entity.Building) {
	b.Owner = p.ID
	b.ID = p.nextBuildingID
	p.nextBuildingID++
	p.Buildings = append(p.Buildings, b)
}

// UnitByID finds a unit in the roster
func (p *Player) UnitByID(id int) (*entity.Unit, bool) {
	for _, u := range p.Units {
		if u.ID == id {
			return u, true
		}
	}
	return nil, false
}

// BuildingByID finds an owned building
func (p *Player) BuildingByID(id int) (*entity.Building, bool) {
	for _, b := range p.Buildings {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

// RemoveUnit drops the unit with the given id, keeping roster order
func (p *Player) RemoveUnit(id int) (*entity.Unit, bool) {
	for i, u := range p.Units {
		if u.ID == id {
			p.Units = append(p.Units[:i], p.Units[i+1:]...)
			return u, true
		}
	}
	return nil, false
}

// RemoveBuilding drops the building with the given id, keeping order
func (p *Player) RemoveBuilding(id int) (*entity.Building, bool) {
	for i, b := range p.Buildings {
		if b.ID == id {
			p.Buildings = append(p.Buildings[:i], p.Buildings[i+1:]...)
			return b, true
		}
	}
	return nil, false
}

// RemoveOldestUnits drops up to n units from the front of the roster and
// returns them in removal order.
func (p *Player) RemoveOldestUnits(n int) []*entity.Unit {
	if n > len(p.Units) {
		n = len(p.Units)
	}
	if n <= 0 {
		return nil
	}
	lost := make([]*entity.Unit, n)
	copy(lost, p.Units[:n])
	p.Units = append(p.Units[:0], p.Units[n:]...)
	return lost
}

// HasTrainingFacility reports whether a constructed building can train units
func (p *Player) HasTrainingFacility() bool {
	return rules.HasTrainingFacility(p.Buildings)
}

// Status is a multi-line summary of the player's holdings
func (p *Player) Status() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s] score %d\n", p.Name, p.Faction, p.Score)
	fmt.Fprintf(&sb, "Resources: %s\n", p.Ledger)
	fmt.Fprintf(&sb, "Units: %d", len(p.Units))
	for _, u := range p.Units {
		fmt.Fprintf(&sb, "\n  %s", u)
	}
	fmt.Fprintf(&sb, "\nBuildings: %d", len(p.Buildings))
	for _, b := range p.Buildings {
		fmt.Fprintf(&sb, "\n  %s", b)
	}
	return sb.String()
}

func (p *Player) String() string {
	return fmt.Sprintf("%s [%s]", p.Name, p.Faction)
}

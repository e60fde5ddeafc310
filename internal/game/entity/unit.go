package entity

import (
	"fmt"

	"github.com/mitchelldurbincs/gridwar/internal/common"
	"github.com/mitchelldurbincs/gridwar/internal/game/core"
	"github.com/mitchelldurbincs/gridwar/internal/game/resources"
)

// UnitKind selects a unit archetype
type UnitKind int

const (
	Soldier UnitKind = iota
	Archer
	Cavalry
)

// DamagePolicy selects how an archetype turns attack and defense into damage
type DamagePolicy int

const (
	Balanced DamagePolicy = iota
	RangedBonus
	ChargeBonus
)

func (p DamagePolicy) String() string {
	switch p {
	case Balanced:
		return "balanced"
	case RangedBonus:
		return "ranged"
	case ChargeBonus:
		return "charge"
	default:
		return fmt.Sprintf("DamagePolicy(%d)", int(p))
	}
}

// UnitStats is the immutable template of an archetype
type UnitStats struct {
	Name      string
	MaxHealth int
	Attack    int
	Defense   int
	Range     int
	Cost      int // gold
	Movement  int
	Policy    DamagePolicy
}

var unitTable = [...]UnitStats{
	Soldier: {Name: "Soldier", MaxHealth: 20, Attack: 10, Defense: 5, Range: 1, Cost: 50, Movement: 3, Policy: Balanced},
	Archer:  {Name: "Archer", MaxHealth: 15, Attack: 12, Defense: 3, Range: 4, Cost: 60, Movement: 2, Policy: RangedBonus},
	Cavalry: {Name: "Cavalry", MaxHealth: 25, Attack: 14, Defense: 4, Range: 1, Cost: 80, Movement: 5, Policy: ChargeBonus},
}

// AllUnitKinds lists every unit archetype
var AllUnitKinds = []UnitKind{Soldier, Archer, Cavalry}

// Stats returns the template of k. Unknown kinds yield ok=false.
func (k UnitKind) Stats() (UnitStats, bool) {
	if k < Soldier || k > Cavalry {
		return UnitStats{}, false
	}
	return unitTable[k], true
}

func (k UnitKind) String() string {
	if s, ok := k.Stats(); ok {
		return s.Name
	}
	return fmt.Sprintf("UnitKind(%d)", int(k))
}

// Unit is a trained unit on the field
type Unit struct {
	Kind   UnitKind
	Stats  UnitStats
	ID     int
	Owner  int
	Health int
	Moved  bool
}

// NewUnit creates a full-health unit of kind k owned by owner. The ID is
// assigned when the unit joins a roster.
func NewUnit(k UnitKind, owner int) (*Unit, bool) {
	stats, ok := k.Stats()
	if !ok {
		return nil, false
	}
	return &Unit{Kind: k, Stats: stats, Owner: owner, Health: stats.MaxHealth}, true
}

func (u *Unit) Name() string   { return u.Stats.Name }
func (u *Unit) Attack() int    { return u.Stats.Attack }
func (u *Unit) Defense() int   { return u.Stats.Defense }
func (u *Unit) Range() int     { return u.Stats.Range }
func (u *Unit) Movement() int  { return u.Stats.Movement }
func (u *Unit) MaxHealth() int { return u.Stats.MaxHealth }
func (u *Unit) IsAlive() bool  { return u.Health > 0 }
func (u *Unit) HasMoved() bool { return u.Moved }
func (u *Unit) MarkMoved()     { u.Moved = true }
func (u *Unit) ResetTurn()     { u.Moved = false }
func (u *Unit) Cost() resources.Cost {
	return resources.GoldCost(u.Stats.Cost)
}

// TakeDamage lowers health, flooring at 0, and returns the health actually lost
func (u *Unit) TakeDamage(n int) int {
	if n <= 0 {
		return 0
	}
	before := u.Health
	u.Health = common.Clamp(u.Health-n, 0, u.Stats.MaxHealth)
	return before - u.Health
}

// Heal restores health up to the archetype maximum
func (u *Unit) Heal(n int) {
	if n <= 0 || !u.IsAlive() {
		return
	}
	u.Health = common.Clamp(u.Health+n, 0, u.Stats.MaxHealth)
}

// HealthPercent is current health as an integer percentage of max
func (u *Unit) HealthPercent() int {
	return common.Percent(u.Health, u.Stats.MaxHealth)
}

// Occupant returns the grid tag for this unit
func (u *Unit) Occupant() core.Occupant {
	return core.UnitOccupant(u.ID, u.Owner)
}

func (u *Unit) String() string {
	return fmt.Sprintf("%s#%d(HP:%d/%d, ATK:%d, DEF:%d, RNG:%d)",
		u.Stats.Name, u.ID, u.Health, u.Stats.MaxHealth, u.Stats.Attack, u.Stats.Defense, u.Stats.Range)
}

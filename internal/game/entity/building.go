package entity

import (
	"fmt"

	"github.com/mitchelldurbincs/gridwar/internal/game/core"
	"github.com/mitchelldurbincs/gridwar/internal/game/resources"
)

// BuildingKind selects a building archetype
type BuildingKind int

const (
	CommandCenter BuildingKind = iota
	TrainingCamp
	Mine
	Farm
	Sawmill
)

// BuildingStats is the immutable template of a building archetype
type BuildingStats struct {
	Name             string
	MaxHealth        int
	Armor            int
	Cost             resources.Cost
	ConstructionTime int
	Output           resources.Kind
	ProductionRate   int // 0 means the building produces nothing
	CanTrain         bool
}

var buildingTable = [...]BuildingStats{
	CommandCenter: {
		Name:             "Command Center",
		MaxHealth:        100,
		Armor:            5,
		Cost:             resources.Cost{resources.Gold: 200, resources.Wood: 150, resources.Stone: 100},
		ConstructionTime: 5,
		Output:           resources.Gold,
		ProductionRate:   5,
	},
	TrainingCamp: {
		Name:             "Training Camp",
		MaxHealth:        60,
		Armor:            3,
		Cost:             resources.Cost{resources.Gold: 100, resources.Wood: 75},
		ConstructionTime: 4,
		CanTrain:         true,
	},
	Mine: {
		Name:             "Mine",
		MaxHealth:        40,
		Armor:            2,
		Cost:             resources.Cost{resources.Gold: 50, resources.Wood: 50},
		ConstructionTime: 3,
		Output:           resources.Stone,
		ProductionRate:   15,
	},
	Farm: {
		Name:             "Farm",
		MaxHealth:        35,
		Armor:            1,
		Cost:             resources.Cost{resources.Gold: 30, resources.Wood: 40},
		ConstructionTime: 2,
		Output:           resources.Food,
		ProductionRate:   20,
	},
	Sawmill: {
		Name:             "Sawmill",
		MaxHealth:        40,
		Armor:            2,
		Cost:             resources.Cost{resources.Gold: 40, resources.Stone: 30},
		ConstructionTime: 3,
		Output:           resources.Wood,
		ProductionRate:   18,
	},
}

// AllBuildingKinds lists every building archetype
var AllBuildingKinds = []BuildingKind{CommandCenter, TrainingCamp, Mine, Farm, Sawmill}

// Stats returns the template of k with a private copy of its cost
func (k BuildingKind) Stats() (BuildingStats, bool) {
	if k < CommandCenter || k > Sawmill {
		return BuildingStats{}, false
	}
	s := buildingTable[k]
	s.Cost = s.Cost.Clone()
	return s, true
}

func (k BuildingKind) String() string {
	if k < CommandCenter || k > Sawmill {
		return fmt.Sprintf("BuildingKind(%d)", int(k))
	}
	return buildingTable[k].Name
}

// Building is a structure owned by a player. It starts under construction
// unless force-completed.
type Building struct {
	Kind        BuildingKind
	Stats       BuildingStats
	ID          int
	Owner       int
	Health      int
	Remaining   int
	Constructed bool

	// OnComplete runs once when construction finishes
	OnComplete func(*Building)
	notified   bool
}

// NewBuilding creates an unfinished building of kind k owned by owner
func NewBuilding(k BuildingKind, owner int) (*Building, bool) {
	stats, ok := k.Stats()
	if !ok {
		return nil, false
	}
	return &Building{
		Kind:      k,
		Stats:     stats,
		Owner:     owner,
		Health:    stats.MaxHealth,
		Remaining: stats.ConstructionTime,
	}, true
}

func (b *Building) Name() string         { return b.Stats.Name }
func (b *Building) Armor() int           { return b.Stats.Armor }
func (b *Building) CanTrain() bool       { return b.Constructed && b.Stats.CanTrain }
func (b *Building) IsDestroyed() bool    { return b.Health <= 0 }
func (b *Building) Cost() resources.Cost { return b.Stats.Cost.Clone() }
func (b *Building) Occupant() core.Occupant {
	return core.BuildingOccupant(b.ID, b.Owner)
}

// AdvanceConstruction ticks construction by one turn and reports whether the
// building is constructed afterwards.
func (b *Building) AdvanceConstruction() bool {
	if b.Constructed {
		return true
	}
	b.Remaining--
	if b.Remaining <= 0 {
		b.Remaining = 0
		b.complete()
	}
	return b.Constructed
}

// ForceComplete finishes construction immediately
func (b *Building) ForceComplete() {
	b.Remaining = 0
	b.complete()
}

func (b *Building) complete() {
	b.Constructed = true
	if b.notified {
		return
	}
	b.notified = true
	if b.OnComplete != nil {
		b.OnComplete(b)
	}
}

// Produce returns the resource this building yields for one turn. Unfinished
// buildings and buildings without output yield ok=false.
func (b *Building) Produce() (resources.Kind, int, bool) {
	if !b.Constructed || b.Stats.ProductionRate <= 0 {
		return 0, 0, false
	}
	return b.Stats.Output, b.Stats.ProductionRate, true
}

// TakeDamage applies incoming damage through armor. At least one point always
// lands. Returns the health actually lost.
func (b *Building) TakeDamage(damage int) int {
	actual := damage - b.Stats.Armor
	if actual < 1 {
		actual = 1
	}
	before := b.Health
	b.Health -= actual
	if b.Health < 0 {
		b.Health = 0
	}
	return before - b.Health
}

func (b *Building) String() string {
	if b.Constructed {
		return fmt.Sprintf("%s#%d(HP:%d/%d)", b.Stats.Name, b.ID, b.Health, b.Stats.MaxHealth)
	}
	return fmt.Sprintf("%s#%d(HP:%d/%d, %d turns left)", b.Stats.Name, b.ID, b.Health, b.Stats.MaxHealth, b.Remaining)
}

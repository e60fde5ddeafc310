package resources

import "fmt"

// Kind is one of the four tradable resources
type Kind int

const (
	Gold Kind = iota
	Wood
	Stone
	Food
)

// AllKinds lists every resource kind in declaration order
var AllKinds = []Kind{Gold, Wood, Stone, Food}

type kindInfo struct {
	name        string
	description string
	baseValue   int
}

var kindTable = [...]kindInfo{
	Gold:  {"Gold", "Precious metal for trade and construction", 100},
	Wood:  {"Wood", "Building material from forests", 75},
	Stone: {"Stone", "Heavy material from mountains", 50},
	Food:  {"Food", "Sustenance for units and population", 80},
}

func (k Kind) valid() bool { return k >= Gold && k <= Food }

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindTable[k].name
}

// Description is a one-line flavor text for menus
func (k Kind) Description() string {
	if !k.valid() {
		return ""
	}
	return kindTable[k].description
}

// BaseValue is the nominal trade value of one unit of the resource
func (k Kind) BaseValue() int {
	if !k.valid() {
		return 0
	}
	return kindTable[k].baseValue
}

// Cost is a bundle of resource amounts that must be paid together
type Cost map[Kind]int

// GoldCost is shorthand for a gold-only bundle
func GoldCost(amount int) Cost { return Cost{Gold: amount} }

// Clone returns an independent copy of the bundle
func (c Cost) Clone() Cost {
	out := make(Cost, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

func (c Cost) String() string {
	s := ""
	for _, k := range AllKinds {
		v, ok := c[k]
		if !ok {
			continue
		}
		if s != "" {
			s += ", "
		}
		s += fmt.Sprintf("%s %d", k, v)
	}
	if s == "" {
		return "free"
	}
	return s
}

package entity

import "fmt"

// Faction is a cosmetic allegiance. Its strength bonus is informational and
// does not enter combat math.
type Faction int

const (
	Empire Faction = iota
	Kingdom
	Rebellion
)

// AllFactions lists the factions in assignment order
var AllFactions = []Faction{Empire, Kingdom, Rebellion}

type factionInfo struct {
	name        string
	description string
	bonus       float64
}

var factionTable = [...]factionInfo{
	Empire:    {"Empire", "Balanced faction with strong economy", 1.0},
	Kingdom:   {"Kingdom", "Military-focused with strong units", 1.1},
	Rebellion: {"Rebellion", "Resource-poor but agile", 0.9},
}

// FactionFor assigns factions round-robin by player index
func FactionFor(playerIndex int) Faction {
	if playerIndex < 0 {
		playerIndex = -playerIndex
	}
	return AllFactions[playerIndex%len(AllFactions)]
}

func (f Faction) valid() bool { return f >= Empire && f <= Rebellion }

func (f Faction) String() string {
	if !f.valid() {
		return fmt.Sprintf("Faction(%d)", int(f))
	}
	return factionTable[f].name
}

func (f Faction) Description() string {
	if !f.valid() {
		return ""
	}
	return factionTable[f].description
}

func (f Faction) StrengthBonus() float64 {
	if !f.valid() {
		return 1.0
	}
	return factionTable[f].bonus
}

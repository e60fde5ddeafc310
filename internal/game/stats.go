package game

import "github.com/mitchelldurbincs/gridwar/internal/game/resources"

// PlayerSnapshot is a read-only copy of one player's standing
type PlayerSnapshot struct {
	ID                int
	Name              string
	Faction           string
	Resources         map[resources.Kind]int
	Units             int
	Buildings         int
	UnderConstruction int
	Score             int
	Defeated          bool
}

// Snapshot is a read-only copy of the session used by presenters
type Snapshot struct {
	GameID        string
	Turn          int
	CurrentPlayer int
	Phase         string
	Winner        int
	Width         int
	Height        int
	Players       []PlayerSnapshot
}

// Snapshot copies the current standing of every player
func (c *Coordinator) Snapshot() Snapshot {
	s := Snapshot{
		GameID:        c.gameID,
		Turn:          c.gs.Turn,
		CurrentPlayer: c.gs.Current,
		Phase:         c.Phase().String(),
		Winner:        c.Winner(),
		Width:         c.gs.Grid.W,
		Height:        c.gs.Grid.H,
		Players:       make([]PlayerSnapshot, 0, len(c.gs.Players)),
	}
	for _, p := range c.gs.Players {
		s.Players = append(s.Players, snapshotPlayer(p))
	}
	return s
}

func snapshotPlayer(p *Player) PlayerSnapshot {
	ps := PlayerSnapshot{
		ID:        p.ID,
		Name:      p.Name,
		Faction:   p.Faction.String(),
		Resources: p.Ledger.Snapshot(),
		Units:     len(p.Units),
		Buildings: len(p.Buildings),
		Score:     p.Score,
		Defeated:  p.Defeated,
	}
	for _, b := range p.Buildings {
		if !b.Constructed {
			ps.UnderConstruction++
		}
	}
	return ps
}

// TotalUnits counts the units fielded by every player
func (s Snapshot) TotalUnits() int {
	n := 0
	for _, p := range s.Players {
		n += p.Units
	}
	return n
}

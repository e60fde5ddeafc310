package mapgen

import (
	"math/rand"

	"github.com/mitchelldurbincs/gridwar/internal/game/core"
)

// MapConfig holds configuration for map generation
type MapConfig struct {
	Width          int
	Height         int
	PlayerCount    int
	GrassBias      float64 // chance a cell is forced to grass before the uniform draw
	HomeClearance  int     // Manhattan radius around each home kept as grass
	MinHomeSpacing int
}

// DefaultMapConfig returns a sensible default configuration
func DefaultMapConfig(w, h, players int) MapConfig {
	return MapConfig{
		Width:          w,
		Height:         h,
		PlayerCount:    players,
		GrassBias:      0.6,
		HomeClearance:  2,
		MinHomeSpacing: 5,
	}
}

// Generator handles map generation with deterministic RNG
type Generator struct {
	config MapConfig
	rng    *rand.Rand
}

// NewGenerator creates a new map generator
func NewGenerator(config MapConfig, rng *rand.Rand) *Generator {
	return &Generator{
		config: config,
		rng:    rng,
	}
}

// GenerateMap creates a grid with random terrain and one home anchor per player
func (g *Generator) GenerateMap() (*core.Grid, []HomePlacement) {
	grid := core.NewGrid(g.config.Width, g.config.Height)

	g.placeTerrain(grid)
	homes := g.placeHomes(grid)

	return grid, homes
}

// placeTerrain rolls every cell independently: GrassBias of the time grass,
// otherwise a uniform pick over all terrain kinds (grass included).
func (g *Generator) placeTerrain(grid *core.Grid) {
	for i := range grid.Cells {
		t := core.TerrainGrass
		if g.rng.Float64() >= g.config.GrassBias {
			t = core.AllTerrains[g.rng.Intn(len(core.AllTerrains))]
		}
		grid.Cells[i].Terrain = t
	}
}

func (g *Generator) placeHomes(grid *core.Grid) []HomePlacement {
	homes := make([]HomePlacement, 0, g.config.PlayerCount)

	for pid := 0; pid < g.config.PlayerCount; pid++ {
		var pos core.Position
		if pid < 4 {
			pos = corner(grid, pid)
		} else {
			pos = g.findHomeLocation(grid, homes)
		}
		g.clearAround(grid, pos)
		homes = append(homes, HomePlacement{PlayerID: pid, Position: pos})
	}

	return homes
}

// corner returns the home corner for the first four players, opposite
// corners first so two-player games start far apart.
func corner(grid *core.Grid, pid int) core.Position {
	switch pid {
	case 0:
		return core.NewPosition(0, 0)
	case 1:
		return core.NewPosition(grid.W-1, grid.H-1)
	case 2:
		return core.NewPosition(grid.W-1, 0)
	default:
		return core.NewPosition(0, grid.H-1)
	}
}

func (g *Generator) findHomeLocation(grid *core.Grid, existing []HomePlacement) core.Position {
	maxAttempts := grid.W * grid.H

	for attempts := 0; attempts < maxAttempts; attempts++ {
		p := core.NewPosition(g.rng.Intn(grid.W), g.rng.Intn(grid.H))

		valid := true
		for _, other := range existing {
			if p.DistanceTo(other.Position) < g.config.MinHomeSpacing {
				valid = false
				break
			}
		}
		if valid {
			return p
		}
	}

	// Fallback: the cell farthest from every existing home
	best, bestDist := core.Position{}, -1
	for i := range grid.Cells {
		p := grid.PositionOf(i)
		d := grid.W + grid.H
		for _, other := range existing {
			if dd := p.DistanceTo(other.Position); dd < d {
				d = dd
			}
		}
		if d > bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// clearAround turns the home neighbourhood into grass so the starting kit
// always has room.
func (g *Generator) clearAround(grid *core.Grid, home core.Position) {
	r := g.config.HomeClearance
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			p := core.NewPosition(home.X+dx, home.Y+dy)
			if home.DistanceTo(p) <= r {
				_ = grid.SetTerrain(p, core.TerrainGrass)
			}
		}
	}
}

// HomePlacement tracks where a player's home anchor was placed
type HomePlacement struct {
	PlayerID int
	Position core.Position
}

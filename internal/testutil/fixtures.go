package testutil

import (
	"github.com/mitchelldurbincs/gridwar/internal/game/core"
	"github.com/mitchelldurbincs/gridwar/internal/game/entity"
)

// CreateTestGrid creates an all-grass grid with the given dimensions
func CreateTestGrid(width, height int) *core.Grid {
	return core.NewGrid(width, height)
}

// CreateTestGridWithTerrain creates a grid and overrides specific cells
func CreateTestGridWithTerrain(width, height int, terrain map[core.Position]core.Terrain) *core.Grid {
	g := core.NewGrid(width, height)
	for p, t := range terrain {
		_ = g.SetTerrain(p, t)
	}
	return g
}

// CreateTestUnit creates a unit of kind owned by owner with the given id
func CreateTestUnit(kind entity.UnitKind, owner, id int) *entity.Unit {
	u, ok := entity.NewUnit(kind, owner)
	if !ok {
		panic("testutil: unknown unit kind")
	}
	u.ID = id
	return u
}

// CreateTestBuilding creates a finished building owned by owner with the given id
func CreateTestBuilding(kind entity.BuildingKind, owner, id int) *entity.Building {
	b, ok := entity.NewBuilding(kind, owner)
	if !ok {
		panic("testutil: unknown building kind")
	}
	b.ID = id
	b.ForceComplete()
	return b
}

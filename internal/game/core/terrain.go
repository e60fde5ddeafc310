package core

import "fmt"

// Terrain is the ground type of a cell
type Terrain int

const (
	TerrainGrass Terrain = iota
	TerrainWater
	TerrainMountain
	TerrainForest
	TerrainDesert
	TerrainSwamp
)

// AllTerrains lists every terrain kind in declaration order
var AllTerrains = []Terrain{
	TerrainGrass,
	TerrainWater,
	TerrainMountain,
	TerrainForest,
	TerrainDesert,
	TerrainSwamp,
}

type terrainInfo struct {
	name          string
	passable      bool
	resourceBonus float64
	description   string
}

var terrainTable = map[Terrain]terrainInfo{
	TerrainGrass:    {"Grass", true, 1.0, "Standard terrain"},
	TerrainWater:    {"Water", false, 0.5, "Impassable for land units"},
	TerrainMountain: {"Mountain", true, 1.3, "Difficult terrain, stone bonus"},
	TerrainForest:   {"Forest", true, 1.1, "Wood bonus, movement penalty"},
	TerrainDesert:   {"Desert", true, 0.8, "Poor resources"},
	TerrainSwamp:    {"Swamp", true, 1.5, "Difficult movement, disease risk"},
}

// String returns the display name of the terrain
func (t Terrain) String() string {
	if info, ok := terrainTable[t]; ok {
		return info.name
	}
	return fmt.Sprintf("Unknown(%d)", int(t))
}

// Passable reports whether land units may stand on this terrain
func (t Terrain) Passable() bool {
	return terrainTable[t].passable
}

// ResourceBonus is a flavor multiplier; nothing in the rules consumes it yet.
func (t Terrain) ResourceBonus() float64 {
	return terrainTable[t].resourceBonus
}

// Description returns a short human readable description
func (t Terrain) Description() string {
	return terrainTable[t].description
}

// Symbol returns the single character used when printing the grid
func (t Terrain) Symbol() byte {
	return t.String()[0]
}

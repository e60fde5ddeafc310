package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerrain_Table(t *testing.T) {
	tests := []struct {
		terrain  Terrain
		name     string
		passable bool
		bonus    float64
	}{
		{TerrainGrass, "Grass", true, 1.0},
		{TerrainWater, "Water", false, 0.5},
		{TerrainMountain, "Mountain", true, 1.3},
		{TerrainForest, "Forest", true, 1.1},
		{TerrainDesert, "Desert", true, 0.8},
		{TerrainSwamp, "Swamp", true, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.terrain.String())
			assert.Equal(t, tt.passable, tt.terrain.Passable())
			assert.InDelta(t, tt.bonus, tt.terrain.ResourceBonus(), 1e-9)
			assert.NotEmpty(t, tt.terrain.Description())
		})
	}
	assert.Len(t, AllTerrains, len(tests))
}

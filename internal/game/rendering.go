package game

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/gridwar/internal/game/core"
)

// ANSI color codes for grid rendering
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

var playerColors = []string{ColorRed, ColorBlue, ColorGreen, ColorYellow, ColorPurple, ColorCyan}

const (
	grassSymbol    = "·"
	unitSymbol     = "u"
	buildingSymbol = "■"
	playerSymbols  = "ABCDEFGH"
)

// RenderGrid draws the grid two characters per cell: a player letter plus
// u or ■ for occupied cells, and the terrain initial otherwise. With color
// set, owners and terrain are tinted with ANSI codes.
func RenderGrid(grid *core.Grid, color bool) string {
	var sb strings.Builder
	sb.Grow((grid.W*12 + 4) * (grid.H + 3))

	// Header row
	sb.WriteString("   ")
	for x := 0; x < grid.W; x++ {
		fmt.Fprintf(&sb, "%2d", x%100)
	}
	sb.WriteString("\n")

	for y := 0; y < grid.H; y++ {
		fmt.Fprintf(&sb, "%2d ", y%100)
		for x := 0; x < grid.W; x++ {
			c, _ := grid.Cell(core.Position{X: x, Y: y})
			tint, symbol := cellDisplay(c)
			if color && tint != "" {
				sb.WriteString(tint)
				sb.WriteString(symbol)
				sb.WriteString(ColorReset)
			} else {
				sb.WriteString(symbol)
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n" + grassSymbol + "=grass W=water M=mountain F=forest D=desert S=swamp ")
	sb.WriteString(unitSymbol + "=unit " + buildingSymbol + "=building A-H=players\n")
	return sb.String()
}

// cellDisplay returns the color and the two-character symbol of a cell
func cellDisplay(c *core.Cell) (string, string) {
	switch {
	case c.Occupant.IsUnit():
		return getPlayerColor(c.Occupant.Owner), playerLetter(c.Occupant.Owner) + unitSymbol
	case c.Occupant.IsBuilding():
		return getPlayerColor(c.Occupant.Owner), playerLetter(c.Occupant.Owner) + buildingSymbol
	}

	switch c.Terrain {
	case core.TerrainGrass:
		return ColorGray, " " + grassSymbol
	case core.TerrainWater:
		return ColorBlue, " " + string(c.Terrain.Symbol())
	case core.TerrainForest, core.TerrainSwamp:
		return ColorGreen, " " + string(c.Terrain.Symbol())
	default:
		return ColorWhite, " " + string(c.Terrain.Symbol())
	}
}

func playerLetter(playerID int) string {
	if playerID < 0 {
		return "?"
	}
	return string(playerSymbols[playerID%len(playerSymbols)])
}

// getPlayerColor returns the color for the given player ID
func getPlayerColor(playerID int) string {
	if playerID < 0 || playerID >= len(playerColors) {
		return ColorWhite
	}
	return playerColors[playerID]
}

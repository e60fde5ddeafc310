package game

import (
	"github.com/mitchelldurbincs/gridwar/internal/config"
	"github.com/mitchelldurbincs/gridwar/internal/game/combat"
	"github.com/mitchelldurbincs/gridwar/internal/game/mapgen"
)

// Map generation functions
func GrassBias() float64 {
	return config.Get().Game.Map.GrassBias
}

func HomeClearance() int {
	return config.Get().Game.Map.HomeClearance
}

func MinHomeSpacing() int {
	return config.Get().Game.Map.MinHomeSpacing
}

// MapConfig builds the generator settings for a w×h map with n players
func MapConfig(w, h, players int) mapgen.MapConfig {
	cfg := mapgen.DefaultMapConfig(w, h, players)
	cfg.GrassBias = GrassBias()
	cfg.HomeClearance = HomeClearance()
	cfg.MinHomeSpacing = MinHomeSpacing()
	return cfg
}

// Economy functions
func StartingResources() int {
	return config.Get().Game.Economy.StartingResources
}

func ProductionRate() int {
	return config.Get().Game.Economy.ProductionRate
}

func BaseProductionTick() bool {
	return config.Get().Game.Economy.BaseProductionTick
}

// Combat functions
func CombatConfig() combat.Config {
	c := config.Get().Game.Combat
	return combat.Config{
		CritChance:       c.CritChance,
		CritMultiplier:   c.CritMultiplier,
		WoundedThreshold: c.WoundedThreshold,
		MaxRounds:        c.MaxSkirmishRounds,
	}
}

// Scoring functions
func UnitKillScore() int {
	return config.Get().Game.Scoring.UnitKill
}

func BuildingDestroyedScore() int {
	return config.Get().Game.Scoring.BuildingDestroyed
}

// Rule functions
func MaxTurns() int {
	return config.Get().Game.Rules.MaxTurns
}

func MinPlayers() int {
	return config.Get().Game.Rules.MinPlayers
}

func StartingSoldiers() int {
	return config.Get().Game.StartingKit.Soldiers
}

func StartingArchers() int {
	return config.Get().Game.StartingKit.Archers
}

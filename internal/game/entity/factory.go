package entity

import (
	"strings"

	"github.com/mitchelldurbincs/gridwar/internal/game/core"
	"github.com/mitchelldurbincs/gridwar/internal/game/resources"
)

var unitAliases = map[string]UnitKind{
	"soldier": Soldier,
	"archer":  Archer,
	"cavalry": Cavalry,
}

var buildingAliases = map[string]BuildingKind{
	"commandcenter":  CommandCenter,
	"command_center": CommandCenter,
	"command":        CommandCenter,
	"trainingcamp":   TrainingCamp,
	"training_camp":  TrainingCamp,
	"training":       TrainingCamp,
	"mine":           Mine,
	"farm":           Farm,
	"sawmill":        Sawmill,
}

func normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// ParseUnitKind resolves a case-insensitive unit identifier
func ParseUnitKind(id string) (UnitKind, bool) {
	k, ok := unitAliases[normalize(id)]
	return k, ok
}

// ParseBuildingKind resolves a case-insensitive building identifier
func ParseBuildingKind(id string) (BuildingKind, bool) {
	k, ok := buildingAliases[normalize(id)]
	return k, ok
}

// CreateUnit builds an unowned unit from a type identifier
func CreateUnit(id string) (*Unit, bool) {
	k, ok := ParseUnitKind(id)
	if !ok {
		return nil, false
	}
	return NewUnit(k, core.NoPlayer)
}

// CreateBuilding builds an unowned, unfinished building from a type identifier
func CreateBuilding(id string) (*Building, bool) {
	k, ok := ParseBuildingKind(id)
	if !ok {
		return nil, false
	}
	return NewBuilding(k, core.NoPlayer)
}

// AvailableUnits returns the canonical unit identifiers
func AvailableUnits() []string {
	return []string{"Soldier", "Archer", "Cavalry"}
}

// AvailableBuildings returns the canonical building identifiers
func AvailableBuildings() []string {
	return []string{"CommandCenter", "TrainingCamp", "Mine", "Farm", "Sawmill"}
}

// UnitCost returns the gold price of a unit identifier, or false if unknown
func UnitCost(id string) (int, bool) {
	k, ok := ParseUnitKind(id)
	if !ok {
		return 0, false
	}
	return unitTable[k].Cost, true
}

// BuildingCost returns the construction bundle of a building identifier
func BuildingCost(id string) (resources.Cost, bool) {
	k, ok := ParseBuildingKind(id)
	if !ok {
		return nil, false
	}
	return buildingTable[k].Cost.Clone(), true
}

package core

import "fmt"

// CommandType enumerates the player-issued commands
type CommandType int

const (
	CommandTrainUnit CommandType = iota
	CommandConstruct
	CommandMove
	CommandAttackUnit
	CommandAttackBuilding
	CommandEndTurn
)

func (t CommandType) String() string {
	switch t {
	case CommandTrainUnit:
		return "train"
	case CommandConstruct:
		return "construct"
	case CommandMove:
		return "move"
	case CommandAttackUnit:
		return "attack_unit"
	case CommandAttackBuilding:
		return "attack_building"
	case CommandEndTurn:
		return "end_turn"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// Command is a single player decision submitted to the coordinator
type Command interface {
	GetPlayerID() int
	GetType() CommandType
	Describe() string
}

// TrainUnitCommand recruits a unit of the given archetype
type TrainUnitCommand struct {
	PlayerID int
	UnitType string
}

func (c *TrainUnitCommand) GetPlayerID() int     { return c.PlayerID }
func (c *TrainUnitCommand) GetType() CommandType { return CommandTrainUnit }
func (c *TrainUnitCommand) Describe() string     { return fmt.Sprintf("train %s", c.UnitType) }

// ConstructCommand starts a building at a grid position
type ConstructCommand struct {
	PlayerID     int
	BuildingType string
	At           Position
}

func (c *ConstructCommand) GetPlayerID() int     { return c.PlayerID }
func (c *ConstructCommand) GetType() CommandType { return CommandConstruct }
func (c *ConstructCommand) Describe() string {
	return fmt.Sprintf("construct %s at %s", c.BuildingType, c.At)
}

// MoveCommand relocates one of the player's units
type MoveCommand struct {
	PlayerID int
	UnitID   int
	To       Position
}

func (c *MoveCommand) GetPlayerID() int     { return c.PlayerID }
func (c *MoveCommand) GetType() CommandType { return CommandMove }
func (c *MoveCommand) Describe() string {
	return fmt.Sprintf("move unit %d to %s", c.UnitID, c.To)
}

// AttackUnitCommand sends one of the player's units against an enemy unit
type AttackUnitCommand struct {
	PlayerID       int
	AttackerID     int
	TargetPlayerID int
	TargetUnitID   int
}

func (c *AttackUnitCommand) GetPlayerID() int     { return c.PlayerID }
func (c *AttackUnitCommand) GetType() CommandType { return CommandAttackUnit }
func (c *AttackUnitCommand) Describe() string {
	return fmt.Sprintf("unit %d attacks player %d unit %d", c.AttackerID, c.TargetPlayerID, c.TargetUnitID)
}

// AttackBuildingCommand sends one of the player's units against an enemy building
type AttackBuildingCommand struct {
	PlayerID         int
	AttackerID       int
	TargetPlayerID   int
	TargetBuildingID int
}

func (c *AttackBuildingCommand) GetPlayerID() int     { return c.PlayerID }
func (c *AttackBuildingCommand) GetType() CommandType { return CommandAttackBuilding }
func (c *AttackBuildingCommand) Describe() string {
	return fmt.Sprintf("unit %d attacks player %d building %d", c.AttackerID, c.TargetPlayerID, c.TargetBuildingID)
}

// EndTurnCommand finishes the player's turn
type EndTurnCommand struct {
	PlayerID int
}

func (c *EndTurnCommand) GetPlayerID() int     { return c.PlayerID }
func (c *EndTurnCommand) GetType() CommandType { return CommandEndTurn }
func (c *EndTurnCommand) Describe() string     { return "end turn" }

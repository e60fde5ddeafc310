package events

import (
	"time"

	"github.com/mitchelldurbincs/gridwar/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted         = "game.started"
	TypeGameEnded           = "game.ended"
	TypeTurnStarted         = "turn.started"
	TypeTurnEnded           = "turn.ended"
	TypeCommandApplied      = "command.applied"
	TypeCommandRejected     = "command.rejected"
	TypeUnitTrained         = "unit.trained"
	TypeUnitMoved           = "unit.moved"
	TypeUnitKilled          = "unit.killed"
	TypeUnitWounded         = "unit.wounded"
	TypeUnitStarved         = "unit.starved"
	TypeCombatResolved      = "combat.resolved"
	TypeBuildingStarted     = "building.started"
	TypeBuildingConstructed = "building.constructed"
	TypeBuildingDamaged     = "building.damaged"
	TypeBuildingDestroyed   = "building.destroyed"
	TypeResourcesProduced   = "resources.produced"
	TypePlayerEliminated    = "player.eliminated"
	TypeStateTransition     = "state.transition"
)

// GameStartedEvent is published when a new session begins
type GameStartedEvent struct {
	BaseEvent
	NumPlayers int
	MapWidth   int
	MapHeight  int
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, numPlayers, width, height int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent:  newBase(TypeGameStarted, gameID),
		NumPlayers: numPlayers,
		MapWidth:   width,
		MapHeight:  height,
	}
}

// GameEndedEvent is published when a game ends. Winner is -1 when nobody survived.
type GameEndedEvent struct {
	BaseEvent
	Winner    int
	Duration  time.Duration
	FinalTurn int
}

// NewGameEndedEvent creates a new GameEndedEvent
func NewGameEndedEvent(gameID string, winner int, duration time.Duration, finalTurn int) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: newBase(TypeGameEnded, gameID),
		Winner:    winner,
		Duration:  duration,
		FinalTurn: finalTurn,
	}
}

// TurnStartedEvent is published when control passes to a player
type TurnStartedEvent struct {
	BaseEvent
	TurnNumber int
	PlayerID   int
}

// NewTurnStartedEvent creates a new TurnStartedEvent
func NewTurnStartedEvent(gameID string, turn, playerID int) *TurnStartedEvent {
	return &TurnStartedEvent{
		BaseEvent:  newBase(TypeTurnStarted, gameID),
		TurnNumber: turn,
		PlayerID:   playerID,
	}
}

// TurnEndedEvent is published after a player's end-of-turn upkeep
type TurnEndedEvent struct {
	BaseEvent
	TurnNumber   int
	PlayerID     int
	UnitsStarved int
}

// NewTurnEndedEvent creates a new TurnEndedEvent
func NewTurnEndedEvent(gameID string, turn, playerID, starved int) *TurnEndedEvent {
	return &TurnEndedEvent{
		BaseEvent:    newBase(TypeTurnEnded, gameID),
		TurnNumber:   turn,
		PlayerID:     playerID,
		UnitsStarved: starved,
	}
}

// CommandAppliedEvent is published after a command took effect
type CommandAppliedEvent struct {
	BaseEvent
	PlayerID int
	Command  core.CommandType
	Detail   string
	Turn     int
}

// NewCommandAppliedEvent creates a new CommandAppliedEvent
func NewCommandAppliedEvent(gameID string, cmd core.Command, turn int) *CommandAppliedEvent {
	return &CommandAppliedEvent{
		BaseEvent: newBase(TypeCommandApplied, gameID),
		PlayerID:  cmd.GetPlayerID(),
		Command:   cmd.GetType(),
		Detail:    cmd.Describe(),
		Turn:      turn,
	}
}

// CommandRejectedEvent is published when a command fails validation
type CommandRejectedEvent struct {
	BaseEvent
	PlayerID int
	Command  core.CommandType
	Detail   string
	Reason   string
	Turn     int
}

// NewCommandRejectedEvent creates a new CommandRejectedEvent
func NewCommandRejectedEvent(gameID string, cmd core.Command, reason error, turn int) *CommandRejectedEvent {
	return &CommandRejectedEvent{
		BaseEvent: newBase(TypeCommandRejected, gameID),
		PlayerID:  cmd.GetPlayerID(),
		Command:   cmd.GetType(),
		Detail:    cmd.Describe(),
		Reason:    reason.Error(),
		Turn:      turn,
	}
}

// UnitTrainedEvent is published when a unit joins a roster
type UnitTrainedEvent struct {
	BaseEvent
	PlayerID int
	UnitID   int
	UnitType string
	Position core.Position
	Turn     int
}

// NewUnitTrainedEvent creates a new UnitTrainedEvent
func NewUnitTrainedEvent(gameID string, playerID, unitID int, unitType string, at core.Position, turn int) *UnitTrainedEvent {
	return &UnitTrainedEvent{
		BaseEvent: newBase(TypeUnitTrained, gameID),
		PlayerID:  playerID,
		UnitID:    unitID,
		UnitType:  unitType,
		Position:  at,
		Turn:      turn,
	}
}

// UnitMovedEvent is published after a unit changes cell
type UnitMovedEvent struct {
	BaseEvent
	PlayerID int
	UnitID   int
	From     core.Position
	To       core.Position
	Turn     int
}

// NewUnitMovedEvent creates a new UnitMovedEvent
func NewUnitMovedEvent(gameID string, playerID, unitID int, from, to core.Position, turn int) *UnitMovedEvent {
	return &UnitMovedEvent{
		BaseEvent: newBase(TypeUnitMoved, gameID),
		PlayerID:  playerID,
		UnitID:    unitID,
		From:      from,
		To:        to,
		Turn:      turn,
	}
}

// CombatResolvedEvent is published after every unit-versus-unit attack
type CombatResolvedEvent struct {
	BaseEvent
	AttackerOwner  int
	AttackerID     int
	DefenderOwner  int
	DefenderID     int
	Damage         int
	Critical       bool
	DefenderHealth int
	Turn           int
}

// NewCombatResolvedEvent creates a new CombatResolvedEvent
func NewCombatResolvedEvent(gameID string, attackerOwner, attackerID, defenderOwner, defenderID, damage int, critical bool, defenderHealth, turn int) *CombatResolvedEvent {
	return &CombatResolvedEvent{
		BaseEvent:      newBase(TypeCombatResolved, gameID),
		AttackerOwner:  attackerOwner,
		AttackerID:     attackerID,
		DefenderOwner:  defenderOwner,
		DefenderID:     defenderID,
		Damage:         damage,
		Critical:       critical,
		DefenderHealth: defenderHealth,
		Turn:           turn,
	}
}

// UnitKilledEvent is published when a unit's health reaches zero in combat
type UnitKilledEvent struct {
	BaseEvent
	PlayerID    int
	UnitID      int
	KillerOwner int
	KillerID    int
	Turn        int
}

// NewUnitKilledEvent creates a new UnitKilledEvent
func NewUnitKilledEvent(gameID string, playerID, unitID, killerOwner, killerID, turn int) *UnitKilledEvent {
	return &UnitKilledEvent{
		BaseEvent:   newBase(TypeUnitKilled, gameID),
		PlayerID:    playerID,
		UnitID:      unitID,
		KillerOwner: killerOwner,
		KillerID:    killerID,
		Turn:        turn,
	}
}

// UnitWoundedEvent is published when a unit drops to the wounded threshold
type UnitWoundedEvent struct {
	BaseEvent
	PlayerID      int
	UnitID        int
	HealthPercent int
	Turn          int
}

// NewUnitWoundedEvent creates a new UnitWoundedEvent
func NewUnitWoundedEvent(gameID string, playerID, unitID, pct, turn int) *UnitWoundedEvent {
	return &UnitWoundedEvent{
		BaseEvent:     newBase(TypeUnitWounded, gameID),
		PlayerID:      playerID,
		UnitID:        unitID,
		HealthPercent: pct,
		Turn:          turn,
	}
}

// UnitStarvedEvent is published for each unit lost to food upkeep
type UnitStarvedEvent struct {
	BaseEvent
	PlayerID int
	UnitID   int
	Turn     int
}

// NewUnitStarvedEvent creates a new UnitStarvedEvent
func NewUnitStarvedEvent(gameID string, playerID, unitID, turn int) *UnitStarvedEvent {
	return &UnitStarvedEvent{
		BaseEvent: newBase(TypeUnitStarved, gameID),
		PlayerID:  playerID,
		UnitID:    unitID,
		Turn:      turn,
	}
}

// BuildingStartedEvent is published when construction is paid for and placed
type BuildingStartedEvent struct {
	BaseEvent
	PlayerID     int
	BuildingID   int
	BuildingType string
	Position     core.Position
	Turn         int
}

// NewBuildingStartedEvent creates a new BuildingStartedEvent
func NewBuildingStartedEvent(gameID string, playerID, buildingID int, buildingType string, at core.Position, turn int) *BuildingStartedEvent {
	return &BuildingStartedEvent{
		BaseEvent:    newBase(TypeBuildingStarted, gameID),
		PlayerID:     playerID,
		BuildingID:   buildingID,
		BuildingType: buildingType,
		Position:     at,
		Turn:         turn,
	}
}

// BuildingConstructedEvent is published once when construction completes
type BuildingConstructedEvent struct {
	BaseEvent
	PlayerID     int
	BuildingID   int
	BuildingType string
	Turn         int
}

// NewBuildingConstructedEvent creates a new BuildingConstructedEvent
func NewBuildingConstructedEvent(gameID string, playerID, buildingID int, buildingType string, turn int) *BuildingConstructedEvent {
	return &BuildingConstructedEvent{
		BaseEvent:    newBase(TypeBuildingConstructed, gameID),
		PlayerID:     playerID,
		BuildingID:   buildingID,
		BuildingType: buildingType,
		Turn:         turn,
	}
}

// BuildingDamagedEvent is published when a unit strikes a building
type BuildingDamagedEvent struct {
	BaseEvent
	PlayerID      int
	BuildingID    int
	AttackerOwner int
	AttackerID    int
	Damage        int
	Remaining     int
	Turn          int
}

// NewBuildingDamagedEvent creates a new BuildingDamagedEvent
func NewBuildingDamagedEvent(gameID string, playerID, buildingID, attackerOwner, attackerID, damage, remaining, turn int) *BuildingDamagedEvent {
	return &BuildingDamagedEvent{
		BaseEvent:     newBase(TypeBuildingDamaged, gameID),
		PlayerID:      playerID,
		BuildingID:    buildingID,
		AttackerOwner: attackerOwner,
		AttackerID:    attackerID,
		Damage:        damage,
		Remaining:     remaining,
		Turn:          turn,
	}
}

// BuildingDestroyedEvent is published when a building's health reaches zero
type BuildingDestroyedEvent struct {
	BaseEvent
	PlayerID     int
	BuildingID   int
	BuildingType string
	DestroyedBy  int
	Turn         int
}

// NewBuildingDestroyedEvent creates a new BuildingDestroyedEvent
func NewBuildingDestroyedEvent(gameID string, playerID, buildingID int, buildingType string, destroyedBy, turn int) *BuildingDestroyedEvent {
	return &BuildingDestroyedEvent{
		BaseEvent:    newBase(TypeBuildingDestroyed, gameID),
		PlayerID:     playerID,
		BuildingID:   buildingID,
		BuildingType: buildingType,
		DestroyedBy:  destroyedBy,
		Turn:         turn,
	}
}

// ResourcesProducedEvent is published for each credit from a building or the
// base production tick
type ResourcesProducedEvent struct {
	BaseEvent
	PlayerID int
	Resource string
	Amount   int
	Source   string
	Turn     int
}

// NewResourcesProducedEvent creates a new ResourcesProducedEvent
func NewResourcesProducedEvent(gameID string, playerID int, resource string, amount int, source string, turn int) *ResourcesProducedEvent {
	return &ResourcesProducedEvent{
		BaseEvent: newBase(TypeResourcesProduced, gameID),
		PlayerID:  playerID,
		Resource:  resource,
		Amount:    amount,
		Source:    source,
		Turn:      turn,
	}
}

// PlayerEliminatedEvent is published once when a player has no units or
// buildings left
type PlayerEliminatedEvent struct {
	BaseEvent
	PlayerID     int
	EliminatedBy int
	Turn         int
}

// NewPlayerEliminatedEvent creates a new PlayerEliminatedEvent
func NewPlayerEliminatedEvent(gameID string, playerID, eliminatedBy, turn int) *PlayerEliminatedEvent {
	return &PlayerEliminatedEvent{
		BaseEvent:    newBase(TypePlayerEliminated, gameID),
		PlayerID:     playerID,
		EliminatedBy: eliminatedBy,
		Turn:         turn,
	}
}

// StateTransitionEvent is published when the game changes phase
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, gameID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}

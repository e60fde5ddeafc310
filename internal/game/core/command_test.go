package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand_Interface(t *testing.T) {
	tests := []struct {
		name     string
		cmd      Command
		typ      CommandType
		typeName string
	}{
		{"Train", &TrainUnitCommand{PlayerID: 1, UnitType: "soldier"}, CommandTrainUnit, "train"},
		{"Construct", &ConstructCommand{PlayerID: 1, BuildingType: "mine"}, CommandConstruct, "construct"},
		{"Move", &MoveCommand{PlayerID: 1, UnitID: 1}, CommandMove, "move"},
		{"AttackUnit", &AttackUnitCommand{PlayerID: 1}, CommandAttackUnit, "attack_unit"},
		{"AttackBuilding", &AttackBuildingCommand{PlayerID: 1}, CommandAttackBuilding, "attack_building"},
		{"EndTurn", &EndTurnCommand{PlayerID: 1}, CommandEndTurn, "end_turn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 1, tt.cmd.GetPlayerID())
			assert.Equal(t, tt.typ, tt.cmd.GetType())
			assert.Equal(t, tt.typeName, tt.cmd.GetType().String())
			assert.NotEmpty(t, tt.cmd.Describe())
		})
	}
	assert.Equal(t, "unknown(42)", CommandType(42).String())
}

func TestAttackCommand_Describe(t *testing.T) {
	c := &AttackUnitCommand{PlayerID: 0, AttackerID: 2, TargetPlayerID: 1, TargetUnitID: 5}
	assert.Equal(t, "unit 2 attacks player 1 unit 5", c.Describe())

	b := &AttackBuildingCommand{PlayerID: 0, AttackerID: 3, TargetPlayerID: 1, TargetBuildingID: 1}
	assert.Equal(t, "unit 3 attacks player 1 building 1", b.Describe())
}

func TestOccupant(t *testing.T) {
	assert.True(t, EmptyOccupant.IsEmpty())
	assert.Equal(t, NoPlayer, EmptyOccupant.Owner)

	u := UnitOccupant(4, 1)
	assert.True(t, u.IsUnit())
	assert.False(t, u.IsBuilding())
	assert.Equal(t, "unit#4(p1)", u.String())

	b := BuildingOccupant(2, 0)
	assert.True(t, b.IsBuilding())
	assert.Equal(t, "building#2(p0)", b.String())
	assert.NotEqual(t, u, b)
}

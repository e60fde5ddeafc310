package game

import "github.com/mitchelldurbincs/gridwar/internal/game/core"

// Menu actions offered to a human player each step of their turn
const (
	ActionTrain = iota + 1
	ActionConstruct
	ActionMove
	ActionAttackUnit
	ActionAttackBuilding
	ActionEndTurn
	ActionQuit
)

// Presenter is the port between a turn-loop driver and whatever shows the
// game to a human. Choose methods block until the user answers.
type Presenter interface {
	ChooseAction() int
	ChooseUnitType() string
	ChooseBuildingType() string
	ChoosePosition() core.Position
	// ChooseIndex returns a value in [0, n), or -1 if the user backs out.
	ChooseIndex(n int) int
	ShowMessage(msg string)
	ShowError(err error)
	ShowStatus(s Snapshot)
}

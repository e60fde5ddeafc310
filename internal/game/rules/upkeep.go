package rules

// FoodPerUnit is the food each unit needs at the end of its owner's turn
const FoodPerUnit = 2

// StarvationLosses returns how many units are lost when unitCount units must
// be fed from food. Food is not consumed.
func StarvationLosses(unitCount, food int) int {
	need := unitCount * FoodPerUnit
	if food >= need {
		return 0
	}
	lost := (need - food) / 2
	if lost > unitCount {
		lost = unitCount
	}
	return lost
}

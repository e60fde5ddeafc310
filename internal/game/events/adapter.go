package events

import "github.com/mitchelldurbincs/gridwar/internal/game/entity"

// CombatObserverAdapter turns combat notifications into bus events. It
// satisfies combat.Observer.
type CombatObserverAdapter struct {
	bus    Publisher
	gameID string
	turn   func() int
}

// NewCombatObserverAdapter creates an adapter; turn reports the current turn
// number at publish time.
func NewCombatObserverAdapter(bus Publisher, gameID string, turn func() int) *CombatObserverAdapter {
	return &CombatObserverAdapter{bus: bus, gameID: gameID, turn: turn}
}

func (a *CombatObserverAdapter) currentTurn() int {
	if a.turn == nil {
		return 0
	}
	return a.turn()
}

func (a *CombatObserverAdapter) OnCombat(attacker, defender *entity.Unit, damage int, critical bool) {
	a.bus.Publish(NewCombatResolvedEvent(a.gameID,
		attacker.Owner, attacker.ID, defender.Owner, defender.ID,
		damage, critical, defender.Health, a.currentTurn()))
}

func (a *CombatObserverAdapter) OnUnitKilled(unit, killer *entity.Unit) {
	a.bus.Publish(NewUnitKilledEvent(a.gameID, unit.Owner, unit.ID, killer.Owner, killer.ID, a.currentTurn()))
}

func (a *CombatObserverAdapter) OnUnitWounded(unit *entity.Unit, healthPercent int) {
	a.bus.Publish(NewUnitWoundedEvent(a.gameID, unit.Owner, unit.ID, healthPercent, a.currentTurn()))
}

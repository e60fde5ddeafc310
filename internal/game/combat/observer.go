package combat

import "github.com/mitchelldurbincs/gridwar/internal/game/entity"

// Observer receives combat notifications. It has no effect on outcomes.
type Observer interface {
	OnCombat(attacker, defender *entity.Unit, damage int, critical bool)
	OnUnitKilled(unit, killer *entity.Unit)
	OnUnitWounded(unit *entity.Unit, healthPercent int)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	Combat  func(attacker, defender *entity.Unit, damage int, critical bool)
	Killed  func(unit, killer *entity.Unit)
	Wounded func(unit *entity.Unit, healthPercent int)
}

func (o ObserverFuncs) OnCombat(attacker, defender *entity.Unit, damage int, critical bool) {
	if o.Combat != nil {
		o.Combat(attacker, defender, damage, critical)
	}
}

func (o ObserverFuncs) OnUnitKilled(unit, killer *entity.Unit) {
	if o.Killed != nil {
		o.Killed(unit, killer)
	}
}

func (o ObserverFuncs) OnUnitWounded(unit *entity.Unit, healthPercent int) {
	if o.Wounded != nil {
		o.Wounded(unit, healthPercent)
	}
}

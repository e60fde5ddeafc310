package combat

import (
	"github.com/mitchelldurbincs/gridwar/internal/common"
	"github.com/mitchelldurbincs/gridwar/internal/game/entity"
)

const (
	rangedMultiplier = 2
	chargeBonus      = 5
	minDamage        = 1
	minChargeDamage  = 2
)

// baseDamage computes pre-critical damage from the attacker's archetype policy
func baseDamage(r Roller, policy entity.DamagePolicy, attack, defense int) int {
	mitigated := common.Max(minDamage, attack-defense)
	switch policy {
	case entity.RangedBonus:
		return common.Max(minDamage, rangedMultiplier*mitigated+uniform(r, -3, 3))
	case entity.ChargeBonus:
		return common.Max(minChargeDamage, mitigated+chargeBonus+uniform(r, -2, 3))
	default:
		return common.Max(minDamage, attack-defense+uniform(r, -2, 2))
	}
}

// Package combat resolves unit-versus-unit attacks.
package combat

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/gridwar/internal/game/entity"
)

const (
	DefaultCritChance       = 0.15
	DefaultCritMultiplier   = 1.5
	DefaultWoundedThreshold = 25
	// MaxSkirmishRounds bounds Skirmish so two units that cannot hurt each
	// other still terminate.
	MaxSkirmishRounds = 20
)

// Config holds the tunable combat constants
type Config struct {
	CritChance       float64
	CritMultiplier   float64
	WoundedThreshold int // health percent at or below which a unit is wounded
	MaxRounds        int // Skirmish round limit
}

// DefaultConfig returns the standard combat constants
func DefaultConfig() Config {
	return Config{
		CritChance:       DefaultCritChance,
		CritMultiplier:   DefaultCritMultiplier,
		WoundedThreshold: DefaultWoundedThreshold,
		MaxRounds:        MaxSkirmishRounds,
	}
}

// Outcome describes one resolved attack
type Outcome struct {
	Damage   int
	Critical bool
	Killed   bool
}

// Resolver computes and applies combat damage. It keeps no state between
// calls beyond its randomness source.
type Resolver struct {
	rng      Roller
	cfg      Config
	observer Observer
	logger   zerolog.Logger
}

// NewResolver creates a resolver drawing from rng
func NewResolver(rng Roller, cfg Config, logger zerolog.Logger) *Resolver {
	return &Resolver{
		rng:    rng,
		cfg:    cfg,
		logger: logger.With().Str("component", "CombatResolver").Logger(),
	}
}

// SetObserver installs an optional listener; nil removes it
func (r *Resolver) SetObserver(o Observer) {
	r.observer = o
}

// CanAttack reports whether attacker may strike defender at all. Range is a
// sanity check only; grid distance is not consulted.
func CanAttack(attacker, defender *entity.Unit) bool {
	if attacker == nil || defender == nil {
		return false
	}
	if !attacker.IsAlive() || !defender.IsAlive() {
		return false
	}
	if attacker.Owner == defender.Owner {
		return false
	}
	return attacker.Range() >= 1
}

// Resolve performs one attack and reports whether the defender died.
// Invalid pairings are a silent no-op returning false.
func (r *Resolver) Resolve(attacker, defender *entity.Unit) bool {
	return r.Attack(attacker, defender).Killed
}

// Attack performs one attack and returns its full outcome
func (r *Resolver) Attack(attacker, defender *entity.Unit) Outcome {
	if !CanAttack(attacker, defender) {
		return Outcome{}
	}

	critical := r.rng.Float64() < r.cfg.CritChance
	damage := r.Damage(attacker, defender)
	if critical {
		damage = int(float64(damage) * r.cfg.CritMultiplier)
	}

	beforePct := defender.HealthPercent()
	defender.TakeDamage(damage)
	killed := defender.Health == 0

	r.logger.Debug().
		Str("attacker", attacker.String()).
		Str("defender", defender.String()).
		Int("damage", damage).
		Bool("critical", critical).
		Bool("killed", killed).
		Msg("Attack resolved")

	if r.observer != nil {
		r.observer.OnCombat(attacker, defender, damage, critical)
		if killed {
			r.observer.OnUnitKilled(defender, attacker)
		} else if pct := defender.HealthPercent(); beforePct > r.cfg.WoundedThreshold && pct <= r.cfg.WoundedThreshold {
			r.observer.OnUnitWounded(defender, pct)
		}
	}

	return Outcome{Damage: damage, Critical: critical, Killed: killed}
}

// Damage rolls the attacker's base damage against defender, before any
// critical multiplier.
func (r *Resolver) Damage(attacker, defender *entity.Unit) int {
	return baseDamage(r.rng, attacker.Stats.Policy, attacker.Attack(), defender.Defense())
}

// Skirmish alternates attacks, first strike to a, until one side falls or
// the configured round limit passes. It returns a if a still stands, else b
// if b does, else nil.
func (r *Resolver) Skirmish(a, b *entity.Unit) *entity.Unit {
	rounds := r.cfg.MaxRounds
	if rounds <= 0 {
		rounds = MaxSkirmishRounds
	}
	for round := 0; round < rounds && a.IsAlive() && b.IsAlive(); round++ {
		r.Resolve(a, b)
		if b.IsAlive() {
			r.Resolve(b, a)
		}
	}

	switch {
	case a.IsAlive():
		return a
	case b.IsAlive():
		return b
	default:
		return nil
	}
}

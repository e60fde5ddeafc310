package game

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/gridwar/internal/game/events"
	"github.com/mitchelldurbincs/gridwar/internal/game/resources"
)

// ProductionManager runs the building economy at the end of a player's turn
type ProductionManager struct {
	eventBus events.Publisher
	gameID   string
	baseTick bool
	logger   zerolog.Logger
}

// ProductionReport summarises one player's end-of-turn economy
type ProductionReport struct {
	Produced  map[resources.Kind]int
	Completed int // buildings whose construction finished this tick
	Building  int // buildings still under construction afterwards
}

// NewProductionManager creates a new production manager. With baseTick set,
// every ledger also receives its flat per-kind rate each turn.
func NewProductionManager(eventBus events.Publisher, gameID string, baseTick bool, logger zerolog.Logger) *ProductionManager {
	return &ProductionManager{
		eventBus: eventBus,
		gameID:   gameID,
		baseTick: baseTick,
		logger:   logger.With().Str("component", "ProductionManager").Logger(),
	}
}

// ProcessPlayerProduction credits output from constructed buildings and
// advances construction on the rest. A building that finishes this tick
// starts producing next turn.
func (pm *ProductionManager) ProcessPlayerProduction(p *Player, turn int) ProductionReport {
	report := ProductionReport{Produced: make(map[resources.Kind]int)}

	for _, b := range p.Buildings {
		if !b.Constructed {
			if b.AdvanceConstruction() {
				report.Completed++
			} else {
				report.Building++
			}
			continue
		}

		kind, amount, ok := b.Produce()
		if !ok {
			continue
		}
		if err := p.Ledger.Credit(kind, amount); err != nil {
			pm.logger.Error().Err(err).Str("building", b.String()).Msg("Production credit rejected")
			continue
		}
		report.Produced[kind] += amount
		pm.publish(events.NewResourcesProducedEvent(pm.gameID, p.ID, kind.String(), amount, b.Name(), turn))
	}

	if pm.baseTick {
		for _, kind := range resources.AllKinds {
			if rate := p.Ledger.Rate(kind); rate > 0 {
				report.Produced[kind] += rate
				pm.publish(events.NewResourcesProducedEvent(pm.gameID, p.ID, kind.String(), rate, "base", turn))
			}
		}
		p.Ledger.ApplyProductionTick()
	}

	pm.logger.Debug().
		Int("player_id", p.ID).
		Int("turn", turn).
		Int("completed", report.Completed).
		Int("under_construction", report.Building).
		Interface("produced", report.Produced).
		Msg("Player production complete")

	return report
}

func (pm *ProductionManager) publish(e events.Event) {
	if pm.eventBus != nil {
		pm.eventBus.Publish(e)
	}
}

package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/gridwar/internal/game/events"
)

// LoggerSubscriber writes every event it receives as one structured log line
type LoggerSubscriber struct {
	id       string
	logger   zerolog.Logger
	logLevel zerolog.Level
	patterns []string // event type patterns, empty logs everything
	devMode  bool     // attach the full event as JSON
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

func (ls *LoggerSubscriber) ID() string { return ls.id }

// SetEventFilter restricts logging to events matching any of patterns.
// Patterns follow events.Matches; nil or empty logs everything.
func (ls *LoggerSubscriber) SetEventFilter(patterns []string) {
	ls.patterns = append([]string(nil), patterns...)
}

func (ls *LoggerSubscriber) SetDevMode(enabled bool) { ls.devMode = enabled }

func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if len(ls.patterns) == 0 {
		return true
	}
	for _, p := range ls.patterns {
		if events.Matches(p, eventType) {
			return true
		}
	}
	return false
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	logEvent := ls.logger.WithLevel(ls.logLevel).
		Str("event_type", event.Type()).
		Str("category", events.Category(event.Type())).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp())

	// Add event-specific fields based on type
	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Int("num_players", e.NumPlayers).
			Int("map_width", e.MapWidth).
			Int("map_height", e.MapHeight)

	case *events.GameEndedEvent:
		logEvent.
			Int("winner", e.Winner).
			Dur("duration", e.Duration).
			Int("final_turn", e.FinalTurn)

	case *events.TurnStartedEvent:
		logEvent.
			Int("turn", e.TurnNumber).
			Int("player_id", e.PlayerID)

	case *events.TurnEndedEvent:
		logEvent.
			Int("turn", e.TurnNumber).
			Int("player_id", e.PlayerID).
			Int("units_starved", e.UnitsStarved)

	case *events.CommandAppliedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Stringer("command", e.Command).
			Str("detail", e.Detail)

	case *events.CommandRejectedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Stringer("command", e.Command).
			Str("detail", e.Detail).
			Str("reason", e.Reason)

	case *events.UnitTrainedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("unit_id", e.UnitID).
			Str("unit_type", e.UnitType).
			Int("x", e.Position.X).
			Int("y", e.Position.Y)

	case *events.UnitMovedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("unit_id", e.UnitID).
			Int("from_x", e.From.X).
			Int("from_y", e.From.Y).
			Int("to_x", e.To.X).
			Int("to_y", e.To.Y)

	case *events.CombatResolvedEvent:
		logEvent.
			Int("attacker_owner", e.AttackerOwner).
			Int("attacker_id", e.AttackerID).
			Int("defender_owner", e.DefenderOwner).
			Int("defender_id", e.DefenderID).
			Int("damage", e.Damage).
			Bool("critical", e.Critical).
			Int("defender_health", e.DefenderHealth)

	case *events.UnitKilledEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("unit_id", e.UnitID).
			Int("killer_owner", e.KillerOwner).
			Int("killer_id", e.KillerID)

	case *events.UnitWoundedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("unit_id", e.UnitID).
			Int("health_percent", e.HealthPercent)

	case *events.UnitStarvedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("unit_id", e.UnitID)

	case *events.BuildingStartedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("building_id", e.BuildingID).
			Str("building_type", e.BuildingType).
			Int("x", e.Position.X).
			Int("y", e.Position.Y)

	case *events.BuildingConstructedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("building_id", e.BuildingID).
			Str("building_type", e.BuildingType)

	case *events.BuildingDamagedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("building_id", e.BuildingID).
			Int("damage", e.Damage).
			Int("remaining", e.Remaining)

	case *events.BuildingDestroyedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("building_id", e.BuildingID).
			Str("building_type", e.BuildingType).
			Int("destroyed_by", e.DestroyedBy)

	case *events.ResourcesProducedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Str("resource", e.Resource).
			Int("amount", e.Amount).
			Str("source", e.Source)

	case *events.PlayerEliminatedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("eliminated_by", e.EliminatedBy)

	case *events.StateTransitionEvent:
		logEvent.
			Str("from", e.FromPhase).
			Str("to", e.ToPhase).
			Str("reason", e.Reason)
	}

	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}

package subscribers_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/gridwar/internal/game/core"
	"github.com/mitchelldurbincs/gridwar/internal/game/events"
	"github.com/mitchelldurbincs/gridwar/internal/game/events/subscribers"
)

func TestLoggerSubscriber(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).With().Timestamp().Logger()

	logSub := subscribers.NewLoggerSubscriber("test-logger", logger, zerolog.InfoLevel)

	assert.Equal(t, "test-logger", logSub.ID())
	assert.True(t, logSub.InterestedIn(events.TypeGameStarted))
	assert.True(t, logSub.InterestedIn(events.TypeUnitKilled))
	assert.True(t, logSub.InterestedIn("any.event.type"))
}

func TestLoggerSubscriberEventLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logSub := subscribers.NewLoggerSubscriber("event-logger", logger, zerolog.InfoLevel)

	testCases := []struct {
		name  string
		event events.Event
		check func(t *testing.T, logLine map[string]interface{})
	}{
		{
			name:  "GameStartedEvent",
			event: events.NewGameStartedEvent("test-game-1", 2, 20, 20),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(2), logLine["num_players"])
				assert.Equal(t, float64(20), logLine["map_width"])
				assert.Equal(t, float64(20), logLine["map_height"])
			},
		},
		{
			name:  "TurnEndedEvent",
			event: events.NewTurnEndedEvent("test-game-1", 5, 1, 3),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(5), logLine["turn"])
				assert.Equal(t, float64(1), logLine["player_id"])
				assert.Equal(t, float64(3), logLine["units_starved"])
			},
		},
		{
			name: "CommandRejectedEvent",
			event: events.NewCommandRejectedEvent("test-game-1",
				&core.TrainUnitCommand{PlayerID: 0, UnitType: "archer"}, core.ErrMissingPrerequisite, 2),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "train", logLine["command"])
				assert.Equal(t, "train archer", logLine["detail"])
				assert.Equal(t, "missing prerequisite building", logLine["reason"])
			},
		},
		{
			name:  "CombatResolvedEvent",
			event: events.NewCombatResolvedEvent("test-game-1", 0, 1, 1, 2, 14, true, 6, 3),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(1), logLine["attacker_id"])
				assert.Equal(t, float64(2), logLine["defender_id"])
				assert.Equal(t, float64(14), logLine["damage"])
				assert.Equal(t, true, logLine["critical"])
				assert.Equal(t, float64(6), logLine["defender_health"])
			},
		},
		{
			name:  "UnitMovedEvent",
			event: events.NewUnitMovedEvent("test-game-1", 1, 4, core.NewPosition(2, 2), core.NewPosition(4, 3), 1),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(4), logLine["unit_id"])
				assert.Equal(t, float64(2), logLine["from_x"])
				assert.Equal(t, float64(3), logLine["to_y"])
			},
		},
		{
			name:  "BuildingDestroyedEvent",
			event: events.NewBuildingDestroyedEvent("test-game-1", 1, 2, "Farm", 0, 9),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "Farm", logLine["building_type"])
				assert.Equal(t, float64(0), logLine["destroyed_by"])
			},
		},
		{
			name:  "ResourcesProducedEvent",
			event: events.NewResourcesProducedEvent("test-game-1", 0, "Food", 20, "Farm", 4),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "Food", logLine["resource"])
				assert.Equal(t, float64(20), logLine["amount"])
				assert.Equal(t, "Farm", logLine["source"])
			},
		},
		{
			name:  "PlayerEliminatedEvent",
			event: events.NewPlayerEliminatedEvent("test-game-1", 1, 0, 12),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(1), logLine["player_id"])
				assert.Equal(t, float64(0), logLine["eliminated_by"])
			},
		},
		{
			name:  "GameEndedEvent",
			event: events.NewGameEndedEvent("test-game-1", 0, 5*time.Minute, 30),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(0), logLine["winner"])
				assert.Equal(t, float64(300000), logLine["duration"]) // 5 minutes in ms
				assert.Equal(t, float64(30), logLine["final_turn"])
			},
		},
		{
			name:  "StateTransitionEvent",
			event: events.NewStateTransitionEvent("test-game-1", "Playing", "GameOver", "one player left"),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "Playing", logLine["from"])
				assert.Equal(t, "GameOver", logLine["to"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf.Reset()
			logSub.HandleEvent(tc.event)

			logOutput := buf.String()
			require.NotEmpty(t, logOutput, "Log output should not be empty")

			var logLine map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(logOutput), &logLine))

			assert.Equal(t, "info", logLine["level"])
			assert.Equal(t, "Game event", logLine["message"])
			assert.Equal(t, tc.event.Type(), logLine["event_type"])
			assert.Equal(t, "test-game-1", logLine["game_id"])
			assert.Equal(t, events.Category(tc.event.Type()), logLine["category"])

			tc.check(t, logLine)
		})
	}
}

func TestLoggerSubscriberWithFilter(t *testing.T) {
	logSub := subscribers.NewLoggerSubscriber("filtered-logger", zerolog.Nop(), zerolog.InfoLevel)
	logSub.SetEventFilter([]string{events.TypeGameStarted, events.TypeGameEnded})

	assert.True(t, logSub.InterestedIn(events.TypeGameStarted))
	assert.True(t, logSub.InterestedIn(events.TypeGameEnded))
	assert.False(t, logSub.InterestedIn(events.TypeTurnStarted))
	assert.False(t, logSub.InterestedIn(events.TypeUnitMoved))

	logSub.SetEventFilter(nil)
	assert.True(t, logSub.InterestedIn(events.TypeUnitMoved))

	logSub.SetEventFilter([]string{"building.*", events.TypePlayerEliminated})
	assert.True(t, logSub.InterestedIn(events.TypeBuildingDestroyed))
	assert.True(t, logSub.InterestedIn(events.TypePlayerEliminated))
	assert.False(t, logSub.InterestedIn(events.TypeUnitKilled))
}

func TestLoggerSubscriberOnBus(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("bus-logger", zerolog.New(&buf), zerolog.InfoLevel)
	logSub.SetEventFilter([]string{events.TypeUnitKilled})

	bus := events.NewEventBus(zerolog.Nop())
	bus.Subscribe(logSub)

	bus.Publish(events.NewTurnStartedEvent("g", 1, 0))
	assert.Zero(t, buf.Len())

	bus.Publish(events.NewUnitKilledEvent("g", 1, 2, 0, 1, 1))
	assert.Contains(t, buf.String(), `"event_type":"unit.killed"`)
}

func TestLoggerSubscriberLogLevels(t *testing.T) {
	testCases := []struct {
		name     string
		logLevel zerolog.Level
		expected string
	}{
		{"Debug", zerolog.DebugLevel, "debug"},
		{"Info", zerolog.InfoLevel, "info"},
		{"Warn", zerolog.WarnLevel, "warn"},
		{"Error", zerolog.ErrorLevel, "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Level(tc.logLevel)

			logSub := subscribers.NewLoggerSubscriber("level-logger", logger, tc.logLevel)
			logSub.HandleEvent(events.NewGameStartedEvent("game1", 2, 10, 10))

			var logLine map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))
			assert.Equal(t, tc.expected, logLine["level"])
		})
	}
}

func TestLoggerSubscriberDevelopmentMode(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("dev-logger", zerolog.New(&buf), zerolog.InfoLevel)
	logSub.SetDevMode(true)

	logSub.HandleEvent(events.NewUnitMovedEvent("dev-game", 0, 1, core.NewPosition(5, 5), core.NewPosition(6, 5), 1))

	var logLine map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))

	eventData, ok := logLine["event_data"]
	require.True(t, ok, "event_data should be present")

	eventDataBytes, err := json.Marshal(eventData)
	require.NoError(t, err)
	assert.Contains(t, string(eventDataBytes), "unit.moved")
	assert.Contains(t, string(eventDataBytes), "UnitID")
}

package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/mitchelldurbincs/gridwar/internal/common"
	"github.com/mitchelldurbincs/gridwar/internal/game/combat"
	"github.com/mitchelldurbincs/gridwar/internal/game/core"
	"github.com/mitchelldurbincs/gridwar/internal/game/entity"
	"github.com/mitchelldurbincs/gridwar/internal/game/events"
	"github.com/mitchelldurbincs/gridwar/internal/game/mapgen"
	"github.com/mitchelldurbincs/gridwar/internal/game/resources"
	"github.com/mitchelldurbincs/gridwar/internal/game/rules"
	"github.com/mitchelldurbincs/gridwar/internal/game/states"
	"github.com/mitchelldurbincs/gridwar/internal/telemetry"
)

// SessionConfig describes a new game session
type SessionConfig struct {
	Width   int
	Height  int
	Players int
	GameID  string // generated when empty

	Rng *rand.Rand // map generation, combat and AI; seeded from the clock when nil
	// Roller overrides Rng for combat rolls when set
	Roller combat.Roller

	Map    mapgen.MapConfig
	Combat combat.Config

	StartingResources  int
	ProductionRate     int
	BaseProductionTick bool
	StartingSoldiers   int
	StartingArchers    int

	UnitKillScore          int
	BuildingDestroyedScore int
	MinPlayers             int

	Logger   zerolog.Logger
	EventBus *events.EventBus // created when nil
	Tracer   trace.Tracer     // no-op when nil
}

// DefaultSessionConfig builds a session config from the loaded configuration
func DefaultSessionConfig(w, h, players int) SessionConfig {
	return SessionConfig{
		Width:                  w,
		Height:                 h,
		Players:                players,
		Map:                    MapConfig(w, h, players),
		Combat:                 CombatConfig(),
		StartingResources:      StartingResources(),
		ProductionRate:         ProductionRate(),
		BaseProductionTick:     BaseProductionTick(),
		StartingSoldiers:       StartingSoldiers(),
		StartingArchers:        StartingArchers(),
		UnitKillScore:          UnitKillScore(),
		BuildingDestroyedScore: BuildingDestroyedScore(),
		MinPlayers:             MinPlayers(),
		Logger:                 zerolog.Nop(),
	}
}

// Validate checks the session shape before anything is built
func (c SessionConfig) Validate() error {
	minPlayers := c.MinPlayers
	if minPlayers < 2 {
		minPlayers = 2
	}
	checks := []error{
		common.RequirePositive("width", c.Width),
		common.RequirePositive("height", c.Height),
		common.RequireAtLeast("players", c.Players, minPlayers),
		common.RequireNonNegative("starting resources", c.StartingResources),
		common.RequireNonNegative("production rate", c.ProductionRate),
		common.RequireNonNegative("starting soldiers", c.StartingSoldiers),
		common.RequireNonNegative("starting archers", c.StartingArchers),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

// SessionInitializer handles the construction of a coordinator
type SessionInitializer struct {
	config SessionConfig
	logger zerolog.Logger
}

// NewSessionInitializer creates a new session initializer
func NewSessionInitializer(cfg SessionConfig) *SessionInitializer {
	return &SessionInitializer{
		config: cfg,
		logger: cfg.Logger.With().Str("component", "Session").Logger(),
	}
}

// NewSession creates a coordinator for a fresh game in the Playing phase
func NewSession(ctx context.Context, cfg SessionConfig) (*Coordinator, error) {
	return NewSessionInitializer(cfg).Initialize(ctx)
}

// Initialize creates and initializes a new coordinator
func (si *SessionInitializer) Initialize(ctx context.Context) (*Coordinator, error) {
	// Check context early
	select {
	case <-ctx.Done():
		si.logger.Error().Err(ctx.Err()).Msg("Session creation cancelled before start")
		return nil, ctx.Err()
	default:
	}

	if err := si.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid session config: %w", err)
	}
	si.setupDefaults()

	c := si.createCoordinator()
	if err := si.seat(c); err != nil {
		return nil, err
	}
	return c, nil
}

// setupDefaults fills in optional collaborators
func (si *SessionInitializer) setupDefaults() {
	cfg := &si.config
	if cfg.Rng == nil {
		si.logger.Debug().Msg("No RNG provided, creating new seeded RNG")
		cfg.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.GameID == "" {
		cfg.GameID = uuid.NewString()
	}
	if cfg.MinPlayers < 2 {
		cfg.MinPlayers = 2
	}
	if cfg.Combat == (combat.Config{}) {
		cfg.Combat = combat.DefaultConfig()
	}
	if cfg.Map.Width != cfg.Width || cfg.Map.Height != cfg.Height || cfg.Map.PlayerCount != cfg.Players {
		m := cfg.Map
		if m == (mapgen.MapConfig{}) {
			m = mapgen.DefaultMapConfig(cfg.Width, cfg.Height, cfg.Players)
		}
		m.Width, m.Height, m.PlayerCount = cfg.Width, cfg.Height, cfg.Players
		cfg.Map = m
	}
	if cfg.EventBus == nil {
		cfg.EventBus = events.NewEventBus(si.logger)
	}
	if cfg.Tracer == nil {
		cfg.Tracer = telemetry.NoopTracer()
	}
}

// createCoordinator wires the long-lived collaborators of a coordinator
func (si *SessionInitializer) createCoordinator() *Coordinator {
	cfg := si.config
	logger := cfg.Logger.With().Str("component", "Coordinator").Logger()

	roller := cfg.Roller
	if roller == nil {
		roller = cfg.Rng
	}

	gameContext := states.NewGameContext(cfg.GameID, cfg.MinPlayers, logger)

	c := &Coordinator{
		cfg:          cfg,
		rng:          cfg.Rng,
		logger:       logger,
		tracer:       cfg.Tracer,
		eventBus:     cfg.EventBus,
		gameID:       cfg.GameID,
		legalMoves:   rules.NewLegalMoveCalculator(),
		stateMachine: states.NewStateMachine(gameContext, cfg.EventBus),
		winner:       rules.NoWinner,
	}
	c.resolver = combat.NewResolver(roller, cfg.Combat, logger)
	c.resolver.SetObserver(events.NewCombatObserverAdapter(cfg.EventBus, cfg.GameID, c.Turn))
	c.turnProcessor = NewTurnProcessor(c)
	return c
}

// seat generates the map, creates the players and their starting kit, then
// moves the coordinator into the Playing phase.
func (si *SessionInitializer) seat(c *Coordinator) error {
	cfg := c.cfg

	grid, homes := mapgen.NewGenerator(cfg.Map, cfg.Rng).GenerateMap()
	gs := &GameState{Turn: 1, Grid: grid, Players: make([]*Player, cfg.Players)}

	for i := 0; i < cfg.Players; i++ {
		ledger := resources.NewLedger(cfg.StartingResources, cfg.ProductionRate)
		gs.Players[i] = NewPlayer(i, ledger, homes[i].Position)
		if err := si.giveStartingKit(gs, gs.Players[i]); err != nil {
			return fmt.Errorf("starting kit for player %d: %w", i, err)
		}
	}

	c.gs = gs
	c.winner = rules.NoWinner
	c.winCondition = rules.NewWinConditionChecker(c.logger, cfg.Players)
	c.productionManager = NewProductionManager(c.eventBus, c.gameID, cfg.BaseProductionTick, c.logger)

	gameContext := c.stateMachine.GetContext()
	gameContext.PlayerCount = cfg.Players
	if err := c.stateMachine.TransitionTo(states.PhasePlaying, "session ready"); err != nil {
		si.logger.Error().Err(err).Msg("Failed to transition to Playing state")
		return fmt.Errorf("state machine initialization failed: %w", err)
	}

	c.eventBus.Publish(events.NewGameStartedEvent(c.gameID, cfg.Players, cfg.Width, cfg.Height))
	c.eventBus.Publish(events.NewTurnStartedEvent(c.gameID, gs.Turn, gs.CurrentPlayer().ID))

	si.logger.Info().
		Str("game_id", c.gameID).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("players", cfg.Players).
		Msg("Session created successfully")

	return nil
}

// giveStartingKit places a finished command center on the player's home cell
// and spawns the starting units next to it.
func (si *SessionInitializer) giveStartingKit(gs *GameState, p *Player) error {
	cc, _ := entity.NewBuilding(entity.CommandCenter, p.ID)
	cc.ForceComplete()
	p.AddBuilding(cc)
	if err := placeNear(gs.Grid, p.Anchor, cc.Occupant()); err != nil {
		return err
	}

	kit := make([]entity.UnitKind, 0, si.config.StartingSoldiers+si.config.StartingArchers)
	for i := 0; i < si.config.StartingSoldiers; i++ {
		kit = append(kit, entity.Soldier)
	}
	for i := 0; i < si.config.StartingArchers; i++ {
		kit = append(kit, entity.Archer)
	}
	for _, kind := range kit {
		u, _ := entity.NewUnit(kind, p.ID)
		p.AddUnit(u)
		if err := placeNear(gs.Grid, p.Anchor, u.Occupant()); err != nil {
			return err
		}
	}
	return nil
}

// placeNear puts o on the free cell closest to anchor
func placeNear(grid *core.Grid, anchor core.Position, o core.Occupant) error {
	pos, ok := grid.NearestFree(anchor)
	if !ok {
		return core.ErrNoSpace
	}
	return grid.Place(pos, o)
}

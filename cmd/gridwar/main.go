package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mitchelldurbincs/gridwar/internal/config"
	"github.com/mitchelldurbincs/gridwar/internal/game"
	"github.com/mitchelldurbincs/gridwar/internal/game/ai"
	"github.com/mitchelldurbincs/gridwar/internal/game/events"
	"github.com/mitchelldurbincs/gridwar/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/gridwar/internal/telemetry"
	"github.com/mitchelldurbincs/gridwar/internal/ui/console"
)

func main() {
	// Load .env for local development; env vars may also be set directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("Failed to load .env file")
	}

	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", os.Getenv("APP_ENV"), "Environment overlay to merge (config.<env>.yaml)")
	width := flag.Int("width", -1, "Grid width (-1 to use config default)")
	height := flag.Int("height", -1, "Grid height (-1 to use config default)")
	players := flag.Int("players", -1, "Number of players (-1 to use config default)")
	human := flag.Int("human", -2, "Human seat (-1 for AI only, -2 to use config default)")
	maxTurns := flag.Int("max-turns", -1, "Turn limit before a draw (-1 to use config default)")
	seed := flag.Int64("seed", 0, "Random seed (0 to seed from the clock)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	watch := flag.Bool("watch", false, "Reload the config file when it changes")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if *env != "" {
		if err := config.LoadEnvironmentConfig(*env); err != nil {
			log.Fatal().Err(err).Str("env", *env).Msg("Failed to load environment config")
		}
	}

	// Flags override every config source and are validated with it
	overrides := map[string]any{}
	setInt := func(key string, value, unset int) {
		if value != unset {
			overrides[key] = value
		}
	}
	setInt("game.map.width", *width, -1)
	setInt("game.map.height", *height, -1)
	setInt("game.players.count", *players, -1)
	setInt("game.players.human_player", *human, -2)
	setInt("game.rules.max_turns", *maxTurns, -1)
	if *logLevel != "" {
		overrides["logging.level"] = *logLevel
	}
	if err := config.Override(overrides); err != nil {
		log.Fatal().Err(err).Msg("Invalid command line settings")
	}

	cfg := config.Get()
	level := cfg.Logging.Level
	if cfg.Development.VerboseLogging && *logLevel == "" {
		level = "debug"
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	// Setup logging
	closeLog := setupLogging(level, cfg.Logging)
	defer closeLog()

	if *watch {
		config.WatchConfig(func() {
			zerolog.SetGlobalLevel(parseLevel(config.Get().Logging.Level))
			log.Info().Str("file", config.ConfigFilePath()).Msg("Configuration reloaded")
		}, func(err error) {
			log.Warn().Err(err).Msg("Ignoring invalid configuration change")
		})
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	tracer := telemetry.NoopTracer()
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			ServiceName: cfg.Telemetry.ServiceName,
			Endpoint:    cfg.Telemetry.Endpoint,
			Insecure:    true,
		})
		if err != nil {
			log.Warn().Err(err).Msg("Telemetry setup failed, continuing without tracing")
		} else {
			tracer = telemetry.Tracer("game")
			defer func() {
				sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer scancel()
				if err := shutdown(sctx); err != nil {
					log.Warn().Err(err).Msg("Error shutting down telemetry")
				}
			}()
		}
	}

	rng := rand.New(rand.NewSource(*seed))
	bus := events.NewEventBus(log.Logger)
	if cfg.Logging.Events {
		sub := subscribers.NewLoggerSubscriber("event-logger", log.Logger, zerolog.DebugLevel)
		sub.SetDevMode(cfg.Development.VerboseLogging)
		sub.SetEventFilter(cfg.Logging.EventFilter)
		bus.Subscribe(sub)
	}

	sessionCfg := game.DefaultSessionConfig(cfg.Game.Map.Width, cfg.Game.Map.Height, cfg.Game.Players.Count)
	sessionCfg.Rng = rng
	sessionCfg.Logger = log.Logger
	sessionCfg.EventBus = bus
	sessionCfg.Tracer = tracer

	coord, err := game.NewSession(ctx, sessionCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start game session")
	}

	log.Info().
		Str("game_id", coord.GameID()).
		Int("width", cfg.Game.Map.Width).
		Int("height", cfg.Game.Map.Height).
		Int("players", cfg.Game.Players.Count).
		Int("human", cfg.Game.Players.HumanPlayer).
		Int64("seed", *seed).
		Msg("Starting gridwar")

	driver := console.NewDriver(coord,
		console.NewPresenter(os.Stdin, os.Stdout),
		ai.NewPolicy(rng, log.Logger),
		console.Options{
			HumanPlayer: cfg.Game.Players.HumanPlayer,
			HotSeat:     !cfg.Features.EnableAI,
			MaxTurns:    cfg.Game.Rules.MaxTurns,
			ShowGrid:    cfg.Development.ShowGrid,
			Color:       os.Getenv("NO_COLOR") == "",
		},
		log.Logger)

	outcome, err := driver.Run(ctx)
	switch {
	case errors.Is(err, console.ErrQuit):
		log.Info().Int("turn", coord.Turn()).Msg("Player left the game")
	case err != nil:
		log.Error().Err(err).Msg("Game loop stopped")
	default:
		log.Info().
			Int("winner", outcome.Winner).
			Int("turns", outcome.Turns).
			Bool("draw", outcome.Draw).
			Msg("Game finished")
	}
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// setupLogging configures the global logger. The console shows the game on
// stdout, so log output goes to stderr and optionally to a rotating file.
func setupLogging(level string, lc config.LoggingConfig) func() {
	zerolog.SetGlobalLevel(parseLevel(level))

	var out io.Writer
	if os.Getenv("APP_ENV") == "production" || lc.Format == "json" {
		// JSON output for production
		out = os.Stderr
	} else {
		// Pretty console output for development
		out = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}

	if lc.File == "" {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
		return func() {}
	}

	file := &lumberjack.Logger{
		Filename:   lc.File,
		MaxSize:    max(1, lc.MaxSizeMB),
		MaxBackups: max(0, lc.MaxBackups),
		MaxAge:     max(0, lc.MaxAgeDays),
	}
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(out, file)).With().Timestamp().Logger()
	return func() { _ = file.Close() }
}

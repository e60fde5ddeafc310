package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/mitchelldurbincs/gridwar/internal/common"
)

// Config holds all configuration for the application
type Config struct {
	Game        GameConfig        `mapstructure:"game"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Telemetry   TelemetryConfig   `mapstructure:"telemetry"`
	Development DevelopmentConfig `mapstructure:"development"`
	Features    FeaturesConfig    `mapstructure:"features"`
}

// GameConfig holds game mechanics configuration
type GameConfig struct {
	Map         MapConfig         `mapstructure:"map"`
	Players     PlayersConfig     `mapstructure:"players"`
	Economy     EconomyConfig     `mapstructure:"economy"`
	Combat      CombatConfig      `mapstructure:"combat"`
	Scoring     ScoringConfig     `mapstructure:"scoring"`
	Rules       RulesConfig       `mapstructure:"rules"`
	StartingKit StartingKitConfig `mapstructure:"starting_kit"`
}

// MapConfig holds map generation settings
type MapConfig struct {
	Width          int     `mapstructure:"width"`
	Height         int     `mapstructure:"height"`
	GrassBias      float64 `mapstructure:"grass_bias"`
	HomeClearance  int     `mapstructure:"home_clearance"`
	MinHomeSpacing int     `mapstructure:"min_home_spacing"`
}

// PlayersConfig holds seat settings
type PlayersConfig struct {
	Count       int `mapstructure:"count"`
	HumanPlayer int `mapstructure:"human_player"` // -1 for AI only
}

// EconomyConfig holds ledger settings
type EconomyConfig struct {
	StartingResources  int  `mapstructure:"starting_resources"`
	ProductionRate     int  `mapstructure:"production_rate"`
	BaseProductionTick bool `mapstructure:"base_production_tick"`
}

// CombatConfig holds combat resolver tuning
type CombatConfig struct {
	CritChance        float64 `mapstructure:"crit_chance"`
	CritMultiplier    float64 `mapstructure:"crit_multiplier"`
	WoundedThreshold  int     `mapstructure:"wounded_threshold"`
	MaxSkirmishRounds int     `mapstructure:"max_skirmish_rounds"`
}

// ScoringConfig holds score awards
type ScoringConfig struct {
	UnitKill          int `mapstructure:"unit_kill"`
	BuildingDestroyed int `mapstructure:"building_destroyed"`
}

// RulesConfig holds match limits
type RulesConfig struct {
	MaxTurns   int `mapstructure:"max_turns"`
	MinPlayers int `mapstructure:"min_players"`
}

// StartingKitConfig holds the units every player begins with
type StartingKitConfig struct {
	Soldiers int `mapstructure:"soldiers"`
	Archers  int `mapstructure:"archers"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Events     bool   `mapstructure:"events"`

	// EventFilter lists event type patterns such as "unit.*"; empty logs all
	EventFilter []string `mapstructure:"event_filter"`
}

// TelemetryConfig holds tracing settings
type TelemetryConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
	Endpoint    string `mapstructure:"endpoint"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	VerboseLogging bool `mapstructure:"verbose_logging"`
	ShowGrid       bool `mapstructure:"show_grid"`
}

// FeaturesConfig holds feature flags
type FeaturesConfig struct {
	EnableAI bool `mapstructure:"enable_ai"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Map defaults
	v.SetDefault("game.map.width", 10)
	v.SetDefault("game.map.height", 10)
	v.SetDefault("game.map.grass_bias", 0.6)
	v.SetDefault("game.map.home_clearance", 2)
	v.SetDefault("game.map.min_home_spacing", 5)

	v.SetDefault("game.players.count", 2)
	v.SetDefault("game.players.human_player", 0)

	// Economy defaults
	v.SetDefault("game.economy.starting_resources", 500)
	v.SetDefault("game.economy.production_rate", 10)
	v.SetDefault("game.economy.base_production_tick", false)

	// Combat defaults
	v.SetDefault("game.combat.crit_chance", 0.15)
	v.SetDefault("game.combat.crit_multiplier", 1.5)
	v.SetDefault("game.combat.wounded_threshold", 25)
	v.SetDefault("game.combat.max_skirmish_rounds", 20)

	v.SetDefault("game.scoring.unit_kill", 10)
	v.SetDefault("game.scoring.building_destroyed", 25)

	v.SetDefault("game.rules.max_turns", 100)
	v.SetDefault("game.rules.min_players", 2)

	v.SetDefault("game.starting_kit.soldiers", 2)
	v.SetDefault("game.starting_kit.archers", 1)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.max_size_mb", 10)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age_days", 7)
	v.SetDefault("logging.events", false)
	v.SetDefault("logging.event_filter", []string{})

	// Telemetry defaults
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "gridwar")
	v.SetDefault("telemetry.endpoint", "localhost:4318")

	// Development defaults
	v.SetDefault("development.verbose_logging", false)
	v.SetDefault("development.show_grid", true)

	// Feature flags
	v.SetDefault("features.enable_ai", true)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/gridwar")
	}

	// Set environment variable prefix
	v.SetEnvPrefix("GW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			// No config file in the default locations; use defaults
		case configPath != "" && errors.Is(err, fs.ErrNotExist):
			// Specific file requested but not found; use defaults
		default:
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal into config struct
	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Validate configuration
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// LoadEnvironmentConfig loads environment-specific config overlay
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)

	// Try to find environment-specific config
	v.SetConfigFile(envFile)
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error merging environment config %s: %w", envFile, err)
		}
	}

	// Re-unmarshal with merged config
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}

	return Validate(cfg)
}

// Override applies runtime values such as command line flags on top of
// every other source. The merged config must validate; otherwise the
// previous values are restored and the error is returned. Overrides survive
// WatchConfig reloads.
func Override(values map[string]any) error {
	current := Get()
	previous := make(map[string]any, len(values))
	for key, value := range values {
		previous[key] = v.Get(key)
		v.Set(key, value)
	}

	next := &Config{}
	err := v.Unmarshal(next)
	if err == nil {
		err = Validate(next)
	}
	if err != nil {
		for key, value := range previous {
			v.Set(key, value)
		}
		return fmt.Errorf("config override rejected: %w", err)
	}
	*current = *next
	return nil
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file. Changes that fail
// validation are reported through onError and leave the previous values.
func WatchConfig(onChange func(), onError func(error)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		next := &Config{}
		if err := v.Unmarshal(next); err != nil {
			if onError != nil {
				onError(fmt.Errorf("reload %s: %w", e.Name, err))
			}
			return
		}
		if err := Validate(next); err != nil {
			if onError != nil {
				onError(fmt.Errorf("reload %s: %w", e.Name, err))
			}
			return
		}
		*cfg = *next
		if onChange != nil {
			onChange()
		}
	})
	v.WatchConfig()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	checks := []error{
		// Map
		common.RequireAtLeast("game.map.width", c.Game.Map.Width, 2),
		common.RequireAtLeast("game.map.height", c.Game.Map.Height, 2),
		common.RequireProbability("game.map.grass_bias", c.Game.Map.GrassBias),
		common.RequireNonNegative("game.map.home_clearance", c.Game.Map.HomeClearance),
		common.RequireAtLeast("game.map.min_home_spacing", c.Game.Map.MinHomeSpacing, 1),

		// Seats
		common.RequireAtLeast("game.rules.min_players", c.Game.Rules.MinPlayers, 2),
		common.RequireAtLeast("game.players.count", c.Game.Players.Count, c.Game.Rules.MinPlayers),
		common.RequireAtLeast("game.players.human_player", c.Game.Players.HumanPlayer, -1),

		// Economy
		common.RequireNonNegative("game.economy.starting_resources", c.Game.Economy.StartingResources),
		common.RequireNonNegative("game.economy.production_rate", c.Game.Economy.ProductionRate),

		// Combat
		common.RequireProbability("game.combat.crit_chance", c.Game.Combat.CritChance),
		common.RequireNonNegative("game.combat.wounded_threshold", c.Game.Combat.WoundedThreshold),
		common.RequirePositive("game.combat.max_skirmish_rounds", c.Game.Combat.MaxSkirmishRounds),

		common.RequireNonNegative("game.scoring.unit_kill", c.Game.Scoring.UnitKill),
		common.RequireNonNegative("game.scoring.building_destroyed", c.Game.Scoring.BuildingDestroyed),
		common.RequirePositive("game.rules.max_turns", c.Game.Rules.MaxTurns),

		common.RequireNonNegative("game.starting_kit.soldiers", c.Game.StartingKit.Soldiers),
		common.RequireNonNegative("game.starting_kit.archers", c.Game.StartingKit.Archers),

		// Logging
		common.RequireNonNegative("logging.max_size_mb", c.Logging.MaxSizeMB),
		common.RequireNonNegative("logging.max_backups", c.Logging.MaxBackups),
		common.RequireNonNegative("logging.max_age_days", c.Logging.MaxAgeDays),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}

	if c.Game.Combat.CritMultiplier < 1 {
		return fmt.Errorf("game.combat.crit_multiplier must be at least 1, got %g", c.Game.Combat.CritMultiplier)
	}
	if c.Game.Players.HumanPlayer >= c.Game.Players.Count {
		return fmt.Errorf("game.players.human_player must be -1 or a valid player index")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}

	return nil
}

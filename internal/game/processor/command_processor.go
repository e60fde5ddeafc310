package processor

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/gridwar/internal/game/core"
)

// Applier accepts a single command. The game coordinator satisfies it.
type Applier interface {
	Apply(ctx context.Context, cmd core.Command) error
}

// Result summarizes a processed batch
type Result struct {
	Applied  int
	Rejected []error
	// EndedTurn is set when the batch contained an accepted end-turn command.
	// Commands after it are not submitted.
	EndedTurn bool
}

// CommandProcessor submits batches of commands in order. A rejected command
// leaves the game untouched, so processing continues with the next one.
type CommandProcessor struct {
	applier Applier
	logger  zerolog.Logger
}

// NewCommandProcessor creates a new command processor
func NewCommandProcessor(applier Applier, logger zerolog.Logger) *CommandProcessor {
	return &CommandProcessor{
		applier: applier,
		logger:  logger.With().Str("component", "CommandProcessor").Logger(),
	}
}

// Process applies commands one by one until the batch is exhausted, an end
// turn is accepted, or ctx is cancelled.
func (cp *CommandProcessor) Process(ctx context.Context, cmds []core.Command) (Result, error) {
	var res Result
	for _, cmd := range cmds {
		select {
		case <-ctx.Done():
			cp.logger.Warn().Err(ctx.Err()).Msg("Command processing interrupted by context cancellation")
			return res, ctx.Err()
		default:
		}
		if cmd == nil {
			continue
		}

		cp.logger.Debug().
			Int("player_id", cmd.GetPlayerID()).
			Stringer("command", cmd.GetType()).
			Msg("Applying command")

		if err := cp.applier.Apply(ctx, cmd); err != nil {
			if errors.Is(err, core.ErrGameOver) {
				return res, err
			}
			cp.logger.Debug().Err(err).Int("player_id", cmd.GetPlayerID()).Msg("Command rejected")
			res.Rejected = append(res.Rejected, err)
			continue
		}
		res.Applied++

		if cmd.GetType() == core.CommandEndTurn {
			res.EndedTurn = true
			break
		}
	}
	return res, nil
}

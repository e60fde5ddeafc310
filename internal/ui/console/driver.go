package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/gridwar/internal/game"
	"github.com/mitchelldurbincs/gridwar/internal/game/ai"
	"github.com/mitchelldurbincs/gridwar/internal/game/entity"
)

// ErrQuit is returned by Run when the human player leaves the game
var ErrQuit = errors.New("player quit")

// PlayerType says who controls a seat
type PlayerType int

const (
	PlayerTypeHuman PlayerType = iota
	PlayerTypeAI
)

// Options configures a Driver
type Options struct {
	// HumanPlayer is the seat controlled through the presenter; -1 lets the
	// AI play every seat.
	HumanPlayer int
	// HotSeat hands every seat to the presenter
	HotSeat bool
	// MaxTurns ends the game as a draw once the turn counter passes it
	MaxTurns int
	ShowGrid bool
	Color    bool
}

// Outcome is how a driven game ended
type Outcome struct {
	Winner int
	Turns  int
	Draw   bool
}

// Driver runs the turn loop, asking the presenter for the human seat's
// commands and the AI policy for everybody else's.
type Driver struct {
	coord     *game.Coordinator
	presenter game.Presenter
	policy    *ai.Policy
	opts      Options
	logger    zerolog.Logger
}

// NewDriver creates a driver
func NewDriver(coord *game.Coordinator, presenter game.Presenter, policy *ai.Policy, opts Options, logger zerolog.Logger) *Driver {
	return &Driver{
		coord:     coord,
		presenter: presenter,
		policy:    policy,
		opts:      opts,
		logger:    logger.With().Str("component", "ConsoleDriver").Logger(),
	}
}

// PlayerType reports who controls seat id
func (d *Driver) PlayerType(id int) PlayerType {
	if d.opts.HotSeat || id == d.opts.HumanPlayer {
		return PlayerTypeHuman
	}
	return PlayerTypeAI
}

// Run plays until someone wins, the turn limit is reached, the human quits,
// or ctx is cancelled.
func (d *Driver) Run(ctx context.Context) (Outcome, error) {
	d.logger.Info().
		Str("game_id", d.coord.GameID()).
		Int("human_player", d.opts.HumanPlayer).
		Int("max_turns", d.opts.MaxTurns).
		Msg("Starting game loop")

	for !d.coord.IsGameOver() {
		if err := ctx.Err(); err != nil {
			return Outcome{}, err
		}
		if d.opts.MaxTurns > 0 && d.coord.Turn() > d.opts.MaxTurns {
			out := Outcome{Winner: game.NoWinner, Turns: d.opts.MaxTurns, Draw: true}
			d.presenter.ShowMessage(fmt.Sprintf("Turn limit of %d reached. The game is a draw.", d.opts.MaxTurns))
			d.logger.Info().Int("turns", out.Turns).Msg("Game ended in a draw")
			return out, nil
		}

		current := d.coord.CurrentPlayer()
		var err error
		switch {
		case current.Defeated:
			err = d.coord.EndTurn(ctx, current.ID)
		case d.PlayerType(current.ID) == PlayerTypeHuman:
			err = d.humanTurn(ctx, current)
		default:
			_, err = d.policy.TakeTurn(ctx, d.coord)
		}
		if err != nil {
			return Outcome{}, err
		}
	}

	out := Outcome{Winner: d.coord.Winner(), Turns: d.coord.Turn()}
	d.presenter.ShowStatus(d.coord.Snapshot())
	if out.Winner == game.NoWinner {
		d.presenter.ShowMessage("Game over. Nobody is left standing.")
	} else {
		p, _ := d.coord.Player(out.Winner)
		d.presenter.ShowMessage(fmt.Sprintf("Game over. %s wins!", p))
	}
	return out, nil
}

// humanTurn keeps asking for commands until the player ends the turn.
// Rejected commands are shown and the menu comes back.
func (d *Driver) humanTurn(ctx context.Context, me *game.Player) error {
	for {
		d.presenter.ShowStatus(d.coord.Snapshot())
		if d.opts.ShowGrid {
			d.presenter.ShowMessage(game.RenderGrid(d.coord.Grid(), d.opts.Color))
		}
		d.presenter.ShowMessage(me.Status())

		var err error
		switch d.presenter.ChooseAction() {
		case game.ActionTrain:
			err = d.coord.TrainUnit(ctx, me.ID, d.presenter.ChooseUnitType())
		case game.ActionConstruct:
			kind := d.presenter.ChooseBuildingType()
			err = d.coord.Construct(ctx, me.ID, kind, d.presenter.ChoosePosition())
		case game.ActionMove:
			u := d.chooseUnit(me.Units, "Which unit moves?")
			if u == nil {
				continue
			}
			if from, ok := d.coord.Grid().FindUnit(me.ID, u.ID); ok {
				reach := d.coord.LegalMoves().Destinations(d.coord.Grid(), u, from)
				d.presenter.ShowMessage(fmt.Sprintf("%s at %s can reach %d cells.", u, from, len(reach)))
			}
			err = d.coord.MoveUnit(ctx, me.ID, u.ID, d.presenter.ChoosePosition())
		case game.ActionAttackUnit:
			err = d.attackUnit(ctx, me)
		case game.ActionAttackBuilding:
			err = d.attackBuilding(ctx, me)
		case game.ActionEndTurn:
			return d.coord.EndTurn(ctx, me.ID)
		case game.ActionQuit:
			return ErrQuit
		}
		if err != nil {
			d.presenter.ShowError(err)
		}
		if d.coord.IsGameOver() {
			return nil
		}
	}
}

func (d *Driver) chooseUnit(units []*entity.Unit, prompt string) *entity.Unit {
	if len(units) == 0 {
		d.presenter.ShowMessage("No units available.")
		return nil
	}
	d.presenter.ShowMessage(prompt)
	for i, u := range units {
		d.presenter.ShowMessage(fmt.Sprintf("  %d) %s", i+1, u))
	}
	i := d.presenter.ChooseIndex(len(units))
	if i < 0 {
		return nil
	}
	return units[i]
}

func (d *Driver) attackUnit(ctx context.Context, me *game.Player) error {
	attacker := d.chooseUnit(me.Units, "Which unit attacks?")
	if attacker == nil {
		return nil
	}
	var enemies []*entity.Unit
	for _, p := range d.coord.Players() {
		if p.ID != me.ID {
			enemies = append(enemies, p.Units...)
		}
	}
	targets := d.coord.LegalMoves().AttackTargets(attacker, enemies)
	if len(targets) == 0 {
		d.presenter.ShowMessage(fmt.Sprintf("%s has no enemy unit to attack.", attacker))
		return nil
	}
	target := d.chooseUnit(targets, "Which enemy unit?")
	if target == nil {
		return nil
	}
	return d.coord.AttackUnit(ctx, me.ID, attacker.ID, target.Owner, target.ID)
}

func (d *Driver) attackBuilding(ctx context.Context, me *game.Player) error {
	attacker := d.chooseUnit(me.Units, "Which unit attacks?")
	if attacker == nil {
		return nil
	}
	var targets []*entity.Building
	for _, p := range d.coord.Players() {
		if p.ID != me.ID {
			targets = append(targets, p.Buildings...)
		}
	}
	if len(targets) == 0 {
		d.presenter.ShowMessage("No enemy buildings.")
		return nil
	}
	d.presenter.ShowMessage("Which enemy building?")
	for i, b := range targets {
		d.presenter.ShowMessage(fmt.Sprintf("  %d) %s", i+1, b))
	}
	i := d.presenter.ChooseIndex(len(targets))
	if i < 0 {
		return nil
	}
	return d.coord.AttackBuilding(ctx, me.ID, attacker.ID, targets[i].Owner, targets[i].ID)
}

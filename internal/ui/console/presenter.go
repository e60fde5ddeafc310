// Package console plays the game in a terminal: a line-oriented Presenter
// and a Driver that alternates human and computer turns.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mitchelldurbincs/gridwar/internal/game"
	"github.com/mitchelldurbincs/gridwar/internal/game/core"
	"github.com/mitchelldurbincs/gridwar/internal/game/entity"
	"github.com/mitchelldurbincs/gridwar/internal/game/resources"
)

// Presenter implements game.Presenter over a pair of text streams. When the
// input runs dry every Choose method returns its "back out" answer.
type Presenter struct {
	in  *bufio.Scanner
	out io.Writer
}

var _ game.Presenter = (*Presenter)(nil)

// NewPresenter creates a presenter reading answers from in
func NewPresenter(in io.Reader, out io.Writer) *Presenter {
	return &Presenter{in: bufio.NewScanner(in), out: out}
}

func (p *Presenter) readLine(prompt string) (string, bool) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

// readInt prompts until it gets an integer in [lo, hi]
func (p *Presenter) readInt(prompt string, lo, hi int) (int, bool) {
	for {
		line, ok := p.readLine(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= lo && n <= hi {
			return n, true
		}
		fmt.Fprintf(p.out, "Enter a number from %d to %d.\n", lo, hi)
	}
}

func (p *Presenter) ChooseAction() int {
	fmt.Fprintln(p.out, "\nActions:")
	fmt.Fprintln(p.out, "  1) Train unit")
	fmt.Fprintln(p.out, "  2) Construct building")
	fmt.Fprintln(p.out, "  3) Move unit")
	fmt.Fprintln(p.out, "  4) Attack unit")
	fmt.Fprintln(p.out, "  5) Attack building")
	fmt.Fprintln(p.out, "  6) End turn")
	fmt.Fprintln(p.out, "  7) Quit")
	n, ok := p.readInt("> ", game.ActionTrain, game.ActionQuit)
	if !ok {
		return game.ActionQuit
	}
	return n
}

func (p *Presenter) ChooseUnitType() string {
	ids := entity.AvailableUnits()
	fmt.Fprintln(p.out, "Unit types:")
	for i, id := range ids {
		cost, _ := entity.UnitCost(id)
		fmt.Fprintf(p.out, "  %d) %s (%d gold)\n", i+1, id, cost)
	}
	return p.chooseName(ids)
}

func (p *Presenter) ChooseBuildingType() string {
	ids := entity.AvailableBuildings()
	fmt.Fprintln(p.out, "Building types:")
	for i, id := range ids {
		cost, _ := entity.BuildingCost(id)
		fmt.Fprintf(p.out, "  %d) %s (%s)\n", i+1, id, cost)
	}
	return p.chooseName(ids)
}

// chooseName accepts either a menu number or a free-form identifier. Unknown
// names are passed through so the coordinator can reject them.
func (p *Presenter) chooseName(ids []string) string {
	line, ok := p.readLine("> ")
	if !ok {
		return ""
	}
	if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(ids) {
		return ids[n-1]
	}
	return line
}

func (p *Presenter) ChoosePosition() core.Position {
	for {
		line, ok := p.readLine("Position (x y): ")
		if !ok {
			return core.Position{X: -1, Y: -1}
		}
		var x, y int
		if _, err := fmt.Sscan(line, &x, &y); err == nil {
			return core.Position{X: x, Y: y}
		}
		fmt.Fprintln(p.out, "Enter two numbers separated by a space.")
	}
}

func (p *Presenter) ChooseIndex(n int) int {
	if n <= 0 {
		return -1
	}
	i, ok := p.readInt(fmt.Sprintf("Choice (1-%d, 0 to cancel): ", n), 0, n)
	if !ok || i == 0 {
		return -1
	}
	return i - 1
}

func (p *Presenter) ShowMessage(msg string) {
	fmt.Fprintln(p.out, msg)
}

func (p *Presenter) ShowError(err error) {
	fmt.Fprintf(p.out, "Error: %v\n", err)
}

func (p *Presenter) ShowStatus(s game.Snapshot) {
	fmt.Fprintf(p.out, "\n=== Turn %d | %s ===\n", s.Turn, s.Phase)
	for _, ps := range s.Players {
		marker := " "
		if ps.ID == s.CurrentPlayer {
			marker = "*"
		}
		state := ""
		if ps.Defeated {
			state = " (defeated)"
		}
		fmt.Fprintf(p.out, "%s %-9s %-10s units %-3d buildings %-3d score %-4d%s\n",
			marker, ps.Name, ps.Faction, ps.Units, ps.Buildings, ps.Score, state)
		fmt.Fprintf(p.out, "    %s\n", formatResources(ps.Resources))
	}
}

func formatResources(r map[resources.Kind]int) string {
	parts := make([]string, 0, len(resources.AllKinds))
	for _, k := range resources.AllKinds {
		parts = append(parts, fmt.Sprintf("%s %d", k, r[k]))
	}
	return strings.Join(parts, ", ")
}

package core

// NoPlayer marks the absence of an owner
const NoPlayer = -1

// Cell is a single location on the grid
type Cell struct {
	Terrain  Terrain
	Occupant Occupant
}

// Passable reports whether a unit could enter this cell right now
func (c *Cell) Passable() bool {
	return c.Terrain.Passable() && c.Occupant.IsEmpty()
}

// IsEmpty reports whether nothing stands on the cell
func (c *Cell) IsEmpty() bool { return c.Occupant.IsEmpty() }

// Grid is a fixed-size W×H field of cells
type Grid struct {
	W, H  int
	Cells []Cell // length = W*H (row-major)
}

// NewGrid creates a grid of empty grass cells
func NewGrid(w, h int) *Grid {
	g := &Grid{W: w, H: h, Cells: make([]Cell, w*h)}
	for i := range g.Cells {
		g.Cells[i].Terrain = TerrainGrass
		g.Cells[i].Occupant = EmptyOccupant
	}
	return g
}

func (g *Grid) Idx(p Position) int          { return p.ToIndex(g.W) }
func (g *Grid) PositionOf(idx int) Position { return FromIndex(idx, g.W) }

// InBounds checks if the position is within grid boundaries
func (g *Grid) InBounds(p Position) bool {
	return p.IsValid(g.W, g.H)
}

// Cell returns the cell at p; out-of-bounds positions yield (nil, false)
func (g *Grid) Cell(p Position) (*Cell, bool) {
	if !g.InBounds(p) {
		return nil, false
	}
	return &g.Cells[g.Idx(p)], true
}

// SetTerrain changes the terrain of an in-bounds cell
func (g *Grid) SetTerrain(p Position, t Terrain) error {
	c, ok := g.Cell(p)
	if !ok {
		return ErrInvalidPosition
	}
	c.Terrain = t
	return nil
}

// Place puts an occupant on a passable, empty cell
func (g *Grid) Place(p Position, o Occupant) error {
	c, ok := g.Cell(p)
	if !ok {
		return ErrInvalidPosition
	}
	if !c.IsEmpty() {
		return ErrOccupied
	}
	if !c.Terrain.Passable() {
		return ErrImpassable
	}
	c.Occupant = o
	return nil
}

// Clear empties the cell at p. Out-of-bounds positions are ignored.
func (g *Grid) Clear(p Position) {
	if c, ok := g.Cell(p); ok {
		c.Occupant = EmptyOccupant
	}
}

// Move relocates whatever occupies from onto to
func (g *Grid) Move(from, to Position) error {
	src, ok := g.Cell(from)
	if !ok {
		return ErrInvalidPosition
	}
	if src.IsEmpty() {
		return ErrUnitNotFound
	}
	if err := g.Place(to, src.Occupant); err != nil {
		return err
	}
	src.Occupant = EmptyOccupant
	return nil
}

// Find returns the position holding exactly the given occupant
func (g *Grid) Find(o Occupant) (Position, bool) {
	for i := range g.Cells {
		if g.Cells[i].Occupant == o {
			return g.PositionOf(i), true
		}
	}
	return Position{}, false
}

// FindUnit locates a unit by owner and per-player id
func (g *Grid) FindUnit(owner, id int) (Position, bool) {
	return g.Find(UnitOccupant(id, owner))
}

// FindBuilding locates a building by owner and per-player id
func (g *Grid) FindBuilding(owner, id int) (Position, bool) {
	return g.Find(BuildingOccupant(id, owner))
}

// NearestFree returns the closest passable empty cell to anchor, searching
// breadth-first over orthogonal neighbors. It is only used for spawn
// placement; the search crosses blocked cells.
func (g *Grid) NearestFree(anchor Position) (Position, bool) {
	if !g.InBounds(anchor) {
		return Position{}, false
	}
	seen := make([]bool, len(g.Cells))
	queue := []Position{anchor}
	seen[g.Idx(anchor)] = true
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if g.Cells[g.Idx(p)].Passable() {
			return p, true
		}
		for _, n := range p.ValidNeighbors(g.W, g.H) {
			if idx := g.Idx(n); !seen[idx] {
				seen[idx] = true
				queue = append(queue, n)
			}
		}
	}
	return Position{}, false
}

// CountTerrain counts the cells of the given terrain
func (g *Grid) CountTerrain(t Terrain) int {
	n := 0
	for i := range g.Cells {
		if g.Cells[i].Terrain == t {
			n++
		}
	}
	return n
}

// Path is a straight-line stub: it returns [start, end] when both are in
// bounds and end is passable, otherwise nil. It does not search.
func (g *Grid) Path(start, end Position) []Position {
	if !g.InBounds(start) || !g.InBounds(end) {
		return nil
	}
	if c, _ := g.Cell(end); !c.Passable() {
		return nil
	}
	return []Position{start, end}
}

// Distance is the Manhattan distance between two positions
func (g *Grid) Distance(a, b Position) int {
	return a.DistanceTo(b)
}

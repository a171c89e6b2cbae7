package tilemap

// Distance field markers. Everything >= 0 is a BFS hop distance from the
// start tile.
const (
	distUnvisited = -1
	distBlocked   = -2
)

// DistanceField holds per-tile BFS distances for one pathfinding query.
type DistanceField []int

// PathNode is a pixel-space waypoint at a tile center.
type PathNode struct {
	X, Y float64
}

// step is a neighbor offset. Orthogonal neighbors are always considered in
// up, right, down, left order; diagonal neighbors follow in a fixed order
// and each one names the two orthogonal cells that must be passable for
// the diagonal move to be legal (no cutting through a solid corner).
type step struct {
	dx, dy int
	// Orthogonal guards for diagonal steps; unused for cardinals.
	gx1, gy1 int
	gx2, gy2 int
	diagonal bool
}

var neighborSteps = []step{
	{dx: 0, dy: -1},
	{dx: 1, dy: 0},
	{dx: 0, dy: 1},
	{dx: -1, dy: 0},
	{dx: -1, dy: -1, gx1: 0, gy1: -1, gx2: -1, gy2: 0, diagonal: true},
	{dx: 1, dy: -1, gx1: 0, gy1: -1, gx2: 1, gy2: 0, diagonal: true},
	{dx: 1, dy: 1, gx1: 0, gy1: 1, gx2: 1, gy2: 0, diagonal: true},
	{dx: -1, dy: 1, gx1: 0, gy1: 1, gx2: -1, gy2: 0, diagonal: true},
}

// Pathfinder computes shortest tile paths over a layer's solidity data.
// Queries are blocking and unbounded; callers should avoid running them
// every tick on large grids.
type Pathfinder struct {
	layer *TileLayer
}

// NewPathfinder returns a pathfinder over the given layer.
func NewPathfinder(layer *TileLayer) *Pathfinder {
	return &Pathfinder{layer: layer}
}

// GetPath returns the pixel-space waypoints of a shortest path from the
// start to the goal position, both given in pixels, in start-to-goal
// order. Waypoints are tile centers. It returns nil when either endpoint
// lies on a solid tile or outside the grid, or when no path exists.
// Diagonal movement, when enabled, never cuts a solid corner: a diagonal
// step requires both adjacent orthogonal tiles to be passable.
func (p *Pathfinder) GetPath(startX, startY, goalX, goalY float64, diagonal bool) []PathNode {
	l := p.layer

	sx, sy := int(startX)/l.TileWidth, int(startY)/l.TileHeight
	gx, gy := int(goalX)/l.TileWidth, int(goalY)/l.TileHeight
	if l.Solid(sx, sy) || l.Solid(gx, gy) {
		return nil
	}

	start := l.Index(sx, sy)
	goal := l.Index(gx, gy)

	field := p.floodFill(start, goal, diagonal)
	if field[goal] < 0 {
		return nil
	}
	return p.backtrace(field, goal, diagonal)
}

// floodFill expands a BFS wavefront from the start index, recording hop
// distances. Expansion stops once the goal has been assigned, after the
// current wave completes.
func (p *Pathfinder) floodFill(start, goal int, diagonal bool) DistanceField {
	l := p.layer

	field := make(DistanceField, len(l.tiles))
	for i, value := range l.tiles {
		if l.mask(value) != 0 {
			field[i] = distBlocked
		} else {
			field[i] = distUnvisited
		}
	}
	field[start] = 0

	frontier := []int{start}
	for wave := 1; len(frontier) > 0; wave++ {
		if field[goal] >= 0 {
			break
		}
		var next []int
		for _, index := range frontier {
			tx := index % l.WidthInTiles
			ty := index / l.WidthInTiles
			for _, s := range neighborSteps {
				if s.diagonal && !diagonal {
					break
				}
				nx, ny := tx+s.dx, ty+s.dy
				if !l.InBounds(nx, ny) {
					continue
				}
				if s.diagonal && !p.diagonalOpen(field, tx, ty, s) {
					continue
				}
				n := l.Index(nx, ny)
				if field[n] != distUnvisited {
					continue
				}
				field[n] = wave
				next = append(next, n)
			}
		}
		frontier = next
	}
	return field
}

// diagonalOpen reports whether both orthogonal cells adjacent to a
// diagonal step are passable.
func (p *Pathfinder) diagonalOpen(field DistanceField, tx, ty int, s step) bool {
	l := p.layer
	g1x, g1y := tx+s.gx1, ty+s.gy1
	g2x, g2y := tx+s.gx2, ty+s.gy2
	if !l.InBounds(g1x, g1y) || !l.InBounds(g2x, g2y) {
		return false
	}
	return field[l.Index(g1x, g1y)] != distBlocked &&
		field[l.Index(g2x, g2y)] != distBlocked
}

// backtrace walks from the goal down the distance gradient to the start,
// collecting tile centers, then reverses the list into start-to-goal
// order. The walk is an explicit loop, so grid size never threatens the
// stack.
func (p *Pathfinder) backtrace(field DistanceField, goal int, diagonal bool) []PathNode {
	l := p.layer

	nodes := []PathNode{p.center(goal)}
	current := goal
	for field[current] != 0 {
		tx := current % l.WidthInTiles
		ty := current / l.WidthInTiles
		next := -1
		for _, s := range neighborSteps {
			if s.diagonal && !diagonal {
				break
			}
			nx, ny := tx+s.dx, ty+s.dy
			if !l.InBounds(nx, ny) {
				continue
			}
			if s.diagonal && !p.diagonalOpen(field, tx, ty, s) {
				continue
			}
			n := l.Index(nx, ny)
			if field[n] >= 0 && field[n] < field[current] {
				next = n
				break
			}
		}
		if next < 0 {
			// A reachable goal always has a descending neighbor chain;
			// anything else is a corrupted field.
			panic("tilemap: distance field has no descent to start")
		}
		current = next
		nodes = append(nodes, p.center(current))
	}

	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	return nodes
}

func (p *Pathfinder) center(index int) PathNode {
	l := p.layer
	cx, cy := l.TileCenter(index%l.WidthInTiles, index/l.WidthInTiles)
	return PathNode{X: cx, Y: cy}
}

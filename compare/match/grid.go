package match

import (
	"fmt"
	"math"

	"github.com/snapdiff/snapdiff/compare/model"
)

// cellKey identifies one bucket of the spatial grid: a tolerance-sized tile
// of the page, scoped by tag name so position matching never compares
// elements of different tags.
type cellKey struct {
	cx, cy int
	tag    string
}

// spatialGrid buckets compare elements by (floor(x/tolerance),
// floor(y/tolerance), tagName) so position matching (strategy 5) only
// needs to search the 3x3 neighborhood of a baseline element's cell,
// rather than every unmatched compare element.
type spatialGrid struct {
	tolerance float64
	cells     map[cellKey][]int // compare index
}

func newSpatialGrid(elements []model.ElementDescriptor, tolerance float64) *spatialGrid {
	if tolerance <= 0 {
		tolerance = 1
	}
	g := &spatialGrid{tolerance: tolerance, cells: make(map[cellKey][]int)}
	for i, el := range elements {
		if el.Position == nil {
			continue
		}
		key := g.keyFor(el.Position.X, el.Position.Y, el.TagName)
		g.cells[key] = append(g.cells[key], i)
	}
	return g
}

func (g *spatialGrid) keyFor(x, y float64, tagName string) cellKey {
	return cellKey{cx: int(math.Floor(x / g.tolerance)), cy: int(math.Floor(y / g.tolerance)), tag: tagName}
}

// candidates returns the compare indices in the 3x3 neighborhood of
// (x, y) for the given tag.
func (g *spatialGrid) candidates(x, y float64, tagName string) []int {
	center := g.keyFor(x, y, tagName)
	var out []int
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			key := cellKey{cx: center.cx + dx, cy: center.cy + dy, tag: tagName}
			out = append(out, g.cells[key]...)
		}
	}
	return out
}

func (k cellKey) String() string {
	return fmt.Sprintf("%s:%d:%d", k.tag, k.cx, k.cy)
}

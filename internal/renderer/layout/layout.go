package layout

import (
	"fmt"

	"github.com/dshills/termracer/internal/renderer/core"
)

// Layout owns the split tree and the resolved rectangle of every region.
// It is not safe for concurrent use; the game loop owns it exclusively.
type Layout struct {
	bounds  core.Rect
	regions []core.Rect
	root    *Node
}

// New creates a layout with a single region, id 0, covering bounds.
func New(bounds core.Rect) *Layout {
	return &Layout{
		bounds:  bounds,
		regions: []core.Rect{bounds},
		root:    leaf(0),
	}
}

// Bounds returns the root rectangle the regions were resolved against.
func (l *Layout) Bounds() core.Rect {
	return l.bounds
}

// Len returns the number of regions.
func (l *Layout) Len() int {
	return len(l.regions)
}

// Region returns the current rectangle of region id.
// The second result is false if id does not name a region.
func (l *Layout) Region(id RegionID) (core.Rect, bool) {
	if id < 0 || int(id) >= len(l.regions) {
		return core.Rect{}, false
	}
	return l.regions[id], true
}

// MustRegion is like Region but panics on an unknown id.
func (l *Layout) MustRegion(id RegionID) core.Rect {
	r, ok := l.Region(id)
	if !ok {
		panic(fmt.Sprintf("layout: invalid region %d (have %d)", id, len(l.regions)))
	}
	return r
}

// Regions returns a copy of every region rectangle, indexed by id.
func (l *Layout) Regions() []core.Rect {
	out := make([]core.Rect, len(l.regions))
	copy(out, l.regions)
	return out
}

// Tree returns a copy of the split recipe.
func (l *Layout) Tree() *Node {
	return l.root.clone()
}

// VerticalSplit divides region id into left and right parts.
// The left part keeps id; the right part gets a new id, which is returned
// second. Panics if id is not a region.
func (l *Layout) VerticalSplit(split core.VerticalSplit, id RegionID) (RegionID, RegionID) {
	node := l.mustLeaf(id)
	left, right := l.regions[id].VerticalSplit(split)

	newID := l.push(right)
	l.regions[id] = left

	node.Kind = VerticalNode
	node.Vertical = split
	node.First = leaf(id)
	node.Second = leaf(newID)
	return id, newID
}

// HorizontalSplit divides region id into top and bottom parts.
// The top part keeps id; the bottom part gets a new id, which is returned
// second. Panics if id is not a region.
func (l *Layout) HorizontalSplit(split core.HorizontalSplit, id RegionID) (RegionID, RegionID) {
	node := l.mustLeaf(id)
	top, bottom := l.regions[id].HorizontalSplit(split)

	newID := l.push(bottom)
	l.regions[id] = top

	node.Kind = HorizontalNode
	node.Horizontal = split
	node.First = leaf(id)
	node.Second = leaf(newID)
	return id, newID
}

// Resize recomputes every region from bounds by replaying the split tree.
func (l *Layout) Resize(bounds core.Rect) {
	l.bounds = bounds
	l.root.resolve(bounds, l.regions)
}

func (l *Layout) push(r core.Rect) RegionID {
	l.regions = append(l.regions, r)
	return RegionID(len(l.regions) - 1)
}

func (l *Layout) mustLeaf(id RegionID) *Node {
	l.MustRegion(id)
	node := l.root.find(id)
	if node == nil {
		panic(fmt.Sprintf("layout: region %d missing from split tree", id))
	}
	return node
}

// Package layout carves a window into named rectangular regions and keeps
// them correct when the window is resized.
//
// A Layout remembers how every region was produced as a binary split tree.
// Resize replays that recipe from the new root bounds, so percentage splits
// rescale and cell-count splits re-clamp without accumulating rounding
// error from earlier sizes.
package layout

import (
	"fmt"
	"strings"

	"github.com/dshills/termracer/internal/renderer/core"
)

// RegionID identifies a leaf region of a Layout.
// IDs are assigned in split order and stay valid for the Layout's lifetime.
type RegionID int

// NodeKind discriminates split tree nodes.
type NodeKind uint8

const (
	// LeafNode is a region with no further subdivision.
	LeafNode NodeKind = iota
	// VerticalNode divides its bounds into left and right children.
	VerticalNode
	// HorizontalNode divides its bounds into top and bottom children.
	HorizontalNode
)

// Node is one step of the split recipe.
// Leaves carry Region; inner nodes carry the split that produced
// First (left/top) and Second (right/bottom).
type Node struct {
	Kind       NodeKind
	Region     RegionID
	Vertical   core.VerticalSplit
	Horizontal core.HorizontalSplit
	First      *Node
	Second     *Node
}

func leaf(id RegionID) *Node {
	return &Node{Kind: LeafNode, Region: id}
}

// find returns the leaf holding id, or nil.
func (n *Node) find(id RegionID) *Node {
	if n == nil {
		return nil
	}
	if n.Kind == LeafNode {
		if n.Region == id {
			return n
		}
		return nil
	}
	if found := n.First.find(id); found != nil {
		return found
	}
	return n.Second.find(id)
}

// resolve walks the recipe from bounds, writing each leaf's rect into regions.
func (n *Node) resolve(bounds core.Rect, regions []core.Rect) {
	switch n.Kind {
	case LeafNode:
		regions[n.Region] = bounds
	case VerticalNode:
		left, right := bounds.VerticalSplit(n.Vertical)
		n.First.resolve(left, regions)
		n.Second.resolve(right, regions)
	case HorizontalNode:
		top, bottom := bounds.HorizontalSplit(n.Horizontal)
		n.First.resolve(top, regions)
		n.Second.resolve(bottom, regions)
	}
}

func (n *Node) clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.First = n.First.clone()
	c.Second = n.Second.clone()
	return &c
}

// String renders the recipe, e.g. "H(CellsInTop(20), 0, V(PercentInLeft(40), 1, 2))".
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder) {
	switch n.Kind {
	case LeafNode:
		fmt.Fprintf(sb, "%d", n.Region)
		return
	case VerticalNode:
		fmt.Fprintf(sb, "V(%s, ", n.Vertical)
	case HorizontalNode:
		fmt.Fprintf(sb, "H(%s, ", n.Horizontal)
	}
	n.First.write(sb)
	sb.WriteString(", ")
	n.Second.write(sb)
	sb.WriteByte(')')
}

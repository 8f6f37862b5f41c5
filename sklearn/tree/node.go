package tree

import (
	"encoding/gob"
	"fmt"
	"strconv"
	"strings"
)

func init() {
	gob.Register(&Leaf{})
	gob.Register(&Split{})
}

// Node is a decision tree node: exactly one of *Leaf or *Split.
// A nil Node is an empty subtree.
type Node interface {
	isNode()
	fmt.Stringer
}

// Leaf carries a class label and nothing else.
type Leaf struct {
	Class int
}

// Split routes samples with x[Feature] <= Threshold to Left and the rest to Right.
// Either child may be nil when its partition was empty.
type Split struct {
	Feature   int
	Threshold float64
	Left      Node
	Right     Node
}

func (*Leaf) isNode()  {}
func (*Split) isNode() {}

// String renders the node in the node/edge export format.
func (l *Leaf) String() string {
	return nodeLabel("None", "None", strconv.Itoa(l.Class))
}

// String renders the node in the node/edge export format.
func (s *Split) String() string {
	return nodeLabel(strconv.Itoa(s.Feature), formatValue(s.Threshold), "None")
}

func nodeLabel(feature, value, class string) string {
	return "Node(feature:" + feature + " - value:" + value + " - class:" + class + ")"
}

// formatValue keeps a trailing ".0" on whole numbers so exported labels read 3.0, not 3.
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if strings.Trim(s, "-0123456789") == "" {
		s += ".0"
	}
	return s
}

// Depth returns the number of edges on the longest root-to-leaf path.
// An empty tree and a single leaf both have depth 0.
func Depth(n Node) int {
	s, ok := n.(*Split)
	if !ok {
		return 0
	}
	l, r := Depth(s.Left), Depth(s.Right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// Count returns the number of non-empty nodes.
func Count(n Node) int {
	switch v := n.(type) {
	case *Leaf:
		return 1
	case *Split:
		return 1 + Count(v.Left) + Count(v.Right)
	default:
		return 0
	}
}

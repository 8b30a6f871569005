package timenode

import (
	"time"

	"k8s.io/apimachinery/pkg/labels"
)

// Source describes how a TimeNode gets its span. It is implemented by Leaf
// and Composite only.
type Source interface {
	isSource()
}

// Leaf is a node with an explicit interval and no children.
type Leaf struct {
	Start time.Time
	End   time.Time
}

// Composite is a node whose span is derived from its children.
type Composite struct {
	Children []*TimeNode
}

func (Leaf) isSource()      {}
func (Composite) isSource() {}

type Option func(*TimeNode)

// WithLabels attaches a copy of l to the node.
func WithLabels(l labels.Set) Option {
	return func(n *TimeNode) {
		n.labels = labels.Merge(nil, l)
	}
}

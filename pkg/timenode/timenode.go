package timenode

import (
	"fmt"
	"sort"
	"time"

	"k8s.io/apimachinery/pkg/labels"
)

// TimeNode is a time span that is either set explicitly (leaf) or derived
// from its children (composite). Children are owned by the node and kept
// sorted by span. Links are non-owning references to any other node.
//
// A TimeNode is not safe for concurrent mutation; AddLink needs external
// synchronization when the node is shared.
type TimeNode struct {
	span     Span
	children []*TimeNode
	links    []*TimeNode
	linkSet  map[*TimeNode]struct{}
	labels   labels.Set
}

// TimeNodes implements sort.Interface using the span ordering.
type TimeNodes []*TimeNode

func (r TimeNodes) Len() int           { return len(r) }
func (r TimeNodes) Less(i, j int) bool { return r[i].Less(r[j]) }
func (r TimeNodes) Swap(i, j int)      { r[i], r[j] = r[j], r[i] }

// New builds a node from src. A composite source needs at least one
// non-nil child.
func New(src Source, opts ...Option) (*TimeNode, error) {
	var r *TimeNode
	switch s := src.(type) {
	case Leaf:
		r = newNode(SpanFrom(s.Start, s.End), nil)
	case Composite:
		if len(s.Children) == 0 {
			return nil, fmt.Errorf("%w: composite without children", ErrInvalidConstruction)
		}
		children := make(TimeNodes, 0, len(s.Children))
		for i, child := range s.Children {
			if child == nil {
				return nil, fmt.Errorf("%w: child %d is nil", ErrInvalidConstruction, i)
			}
			children = append(children, child)
		}
		// sort a copy, the caller keeps its own ordering
		sort.Stable(children)
		r = newNode(spanOf(children), children)
	default:
		return nil, fmt.Errorf("%w: no source provided", ErrInvalidConstruction)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// NewLeaf returns a leaf node covering start to end.
func NewLeaf(start, end time.Time, opts ...Option) *TimeNode {
	r, _ := New(Leaf{Start: start, End: end}, opts...)
	return r
}

// NewComposite returns a node spanning all of children.
func NewComposite(children []*TimeNode, opts ...Option) (*TimeNode, error) {
	return New(Composite{Children: children}, opts...)
}

func newNode(span Span, children []*TimeNode) *TimeNode {
	return &TimeNode{
		span:     span,
		children: children,
		linkSet:  map[*TimeNode]struct{}{},
	}
}

// spanOf returns the min start and max end of nodes; nodes must not be empty.
func spanOf(nodes []*TimeNode) Span {
	start, end := nodes[0].span.start, nodes[0].span.end
	for _, n := range nodes[1:] {
		if n.span.start.Before(start) {
			start = n.span.start
		}
		if n.span.end.After(end) {
			end = n.span.end
		}
	}
	return SpanFrom(start, end)
}

func (r *TimeNode) StartTime() time.Time { return r.span.start }
func (r *TimeNode) EndTime() time.Time   { return r.span.end }
func (r *TimeNode) Span() Span           { return r.span }
func (r *TimeNode) IsLeaf() bool         { return len(r.children) == 0 }

// Labels returns the labels of the node, nil when none were set.
func (r *TimeNode) Labels() labels.Set { return r.labels }

// Children returns the children in ascending span order.
func (r *TimeNode) Children() []*TimeNode {
	return append([]*TimeNode(nil), r.children...)
}

// Links returns the linked nodes in the order they were added.
func (r *TimeNode) Links() []*TimeNode {
	return append([]*TimeNode(nil), r.links...)
}

func (r *TimeNode) String() string {
	return fmt.Sprintf("span: %s, children: %d, links: %d", r.span.String(), len(r.children), len(r.links))
}

// Compare orders a and b by start time and then by end time. Nodes with the
// same span compare equal whatever their children or links.
func Compare(a, b *TimeNode) int {
	return a.span.Compare(b.span)
}

func (r *TimeNode) Less(other *TimeNode) bool {
	return Compare(r, other) < 0
}

// StrongVerifyChildren returns true when every child starts exactly where
// the previous one ends.
func (r *TimeNode) StrongVerifyChildren() bool {
	for i := 1; i < len(r.children); i++ {
		if !r.children[i-1].span.Touches(r.children[i].span) {
			return false
		}
	}
	return true
}

// WeakVerifyChildren returns true when no child starts before the previous
// one ends. Gaps are allowed.
func (r *TimeNode) WeakVerifyChildren() bool {
	for i := 1; i < len(r.children); i++ {
		if !r.children[i-1].span.EntirelyBefore(r.children[i].span) {
			return false
		}
	}
	return true
}

// AddLink adds a one-directional link to other, compared by identity.
// It returns false when other is nil, is the node itself or is already
// linked.
func (r *TimeNode) AddLink(other *TimeNode) bool {
	if other == nil || other == r {
		return false
	}
	if _, ok := r.linkSet[other]; ok {
		return false
	}
	r.linkSet[other] = struct{}{}
	r.links = append(r.links, other)
	return true
}

func (r *TimeNode) HasLink(other *TimeNode) bool {
	_, ok := r.linkSet[other]
	return ok
}

// LinksBySelector returns the linked nodes whose labels match selector.
func (r *TimeNode) LinksBySelector(selector labels.Selector) []*TimeNode {
	nodes := []*TimeNode{}
	for _, l := range r.links {
		if selector.Matches(l.labels) {
			nodes = append(nodes, l)
		}
	}
	return nodes
}

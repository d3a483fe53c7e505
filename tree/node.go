package tree

import (
	"fmt"

	"github.com/pbanos/tdidt/dataset"
	"github.com/pbanos/tdidt/feature"
)

/*
Node is a node of a binary decision tree. Each node owns its
children exclusively.
*/
type Node struct {
	// Whether the node is a leaf
	Leaf bool
	// The attribute tested on the node. Nil for leaves.
	Attribute *feature.Attribute
	// For leaves, the Label predicted. For decision nodes,
	// the Marker, Threshold or CategorySet examples are
	// tested against, matching the kind of the Attribute.
	Value TestValue
	// The subtree for examples that pass the test
	Positive *Node
	// The subtree for examples that fail the test
	Negative *Node
}

// NewLeaf returns a leaf node predicting the given label.
func NewLeaf(label string) *Node {
	return &Node{Leaf: true, Value: Label(label)}
}

/*
NewDecision returns a decision node testing the given attribute
against the given value with the given subtrees.
*/
func NewDecision(a feature.Attribute, v TestValue, positive, negative *Node) *Node {
	return &Node{Attribute: &a, Value: v, Positive: positive, Negative: negative}
}

/*
Test takes an example and returns whether it passes the test on the node,
that is, whether it belongs to the positive branch. It returns an error if
the node is not a decision node or the example value cannot be tested.
*/
func (n *Node) Test(e dataset.Example) (bool, error) {
	if n.Leaf || n.Attribute == nil {
		return false, fmt.Errorf("%w: node has no test", ErrMalformedTree)
	}
	v, err := e.Value(n.Attribute.ID)
	if err != nil {
		return false, err
	}
	switch tv := n.Value.(type) {
	case Marker:
		return v == string(tv), nil
	case Threshold:
		f, err := dataset.ParseNumber(v)
		if err != nil {
			return false, fmt.Errorf("testing %s: %v", n.Attribute.Name(), err)
		}
		return f <= float64(tv), nil
	case CategorySet:
		return tv.Contains(v), nil
	}
	return false, fmt.Errorf("%w: unexpected test value %T on attribute %s", ErrMalformedTree, n.Value, n.Attribute.Name())
}

/*
Validate checks the node and its subtree: leaves must hold a label and no
children, decision nodes an attribute, a test value matching its kind
and both children. The error identifies the offending node by its path
from the receiver, a string of 'y' and 'n' steps.
*/
func (n *Node) Validate() error {
	return n.validate("")
}

func (n *Node) validate(path string) error {
	if n == nil {
		return fmt.Errorf("%w: missing node at %q", ErrMalformedTree, path)
	}
	if n.Leaf {
		if _, ok := n.Value.(Label); !ok {
			return fmt.Errorf("%w: leaf at %q has no label", ErrMalformedTree, path)
		}
		if n.Positive != nil || n.Negative != nil {
			return fmt.Errorf("%w: leaf at %q has children", ErrMalformedTree, path)
		}
		return nil
	}
	if n.Attribute == nil {
		return fmt.Errorf("%w: decision node at %q has no attribute", ErrMalformedTree, path)
	}
	if n.Value == nil || !matches(n.Value, n.Attribute.Kind) {
		return fmt.Errorf("%w: decision node at %q tests %s attribute %s with %T", ErrMalformedTree, path, n.Attribute.Kind, n.Attribute.Name(), n.Value)
	}
	if err := n.Positive.validate(path + "y"); err != nil {
		return err
	}
	return n.Negative.validate(path + "n")
}

// Size returns the number of nodes on the subtree.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	return 1 + n.Positive.Size() + n.Negative.Size()
}

// Depth returns the number of edges on the longest path down to a leaf.
func (n *Node) Depth() int {
	if n == nil || n.Leaf {
		return 0
	}
	p, q := n.Positive.Depth(), n.Negative.Depth()
	if q > p {
		p = q
	}
	return p + 1
}

// Leaves returns the number of leaves on the subtree.
func (n *Node) Leaves() int {
	if n == nil {
		return 0
	}
	if n.Leaf {
		return 1
	}
	return n.Positive.Leaves() + n.Negative.Leaves()
}

/*
Describe returns a short description of the node: the predicted label
for leaves or the test for decision nodes.
*/
func (n *Node) Describe() string {
	if n.Leaf {
		return fmt.Sprintf("=> %v", n.Value)
	}
	if n.Attribute == nil {
		return "?"
	}
	switch tv := n.Value.(type) {
	case Marker:
		return fmt.Sprintf("%s = %v", n.Attribute.Name(), tv)
	case Threshold:
		return fmt.Sprintf("%s <= %v", n.Attribute.Name(), tv)
	case CategorySet:
		return fmt.Sprintf("%s in %v", n.Attribute.Name(), tv)
	}
	return fmt.Sprintf("%s ? %v", n.Attribute.Name(), n.Value)
}

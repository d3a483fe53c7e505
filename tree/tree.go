package tree

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbanos/tdidt/dataset"
)

// TreeError represents an error related with the structure of a tree
type TreeError string

/*
ErrMalformedTree is the error returned when a tree does not hold the
invariants of a grown tree: a leaf without label, a decision node without
attribute, a test value or one of its children. It is never expected on
trees built by the builder.
*/
const ErrMalformedTree = TreeError("malformed decision tree")

func (te TreeError) Error() string {
	return string(te)
}

/*
Classify takes the root of a tree and an example and returns the label
predicted for the example, walking down the tree from the root following
the branch for the result of every node test until a leaf is reached.
It returns an error wrapping ErrMalformedTree if a node on the way breaks
the invariants of the tree, or the error testing the example on a node.
*/
func Classify(n *Node, e dataset.Example) (string, error) {
	var path string
	for {
		if n == nil {
			return "", fmt.Errorf("%w: missing node at %q", ErrMalformedTree, path)
		}
		if n.Leaf {
			l, ok := n.Value.(Label)
			if !ok {
				return "", fmt.Errorf("%w: leaf at %q has no label", ErrMalformedTree, path)
			}
			return string(l), nil
		}
		ok, err := n.Test(e)
		if err != nil {
			return "", fmt.Errorf("classifying %v at %q: %w", e, path, err)
		}
		if ok {
			n = n.Positive
			path += "y"
		} else {
			n = n.Negative
			path += "n"
		}
	}
}

// Traverse takes a context, bottomup boolean and an
// error-returning function that takes a context and a node
// as parameters, and goes through the tree running the
// function with the context and every traversed node.
// Traverse will call the function with a parent node before
// calling it for its children if bottomup is false, and
// call it after its children if bottomup is true. Positive
// children are visited before negative ones.
// If the given context times out or is cancelled, the context
// error is returned. If the call to the function returns an
// error, the traversing is aborted and the error is returned.
func (n *Node) Traverse(ctx context.Context, bottomup bool, f func(context.Context, *Node) error) error {
	if n == nil {
		return nil
	}
	err := ctx.Err()
	if err != nil {
		return err
	}
	if !bottomup {
		if err = f(ctx, n); err != nil {
			return err
		}
	}
	for _, c := range []*Node{n.Positive, n.Negative} {
		if err = c.Traverse(ctx, bottomup, f); err != nil {
			return err
		}
	}
	if bottomup {
		err = f(ctx, n)
	}
	return err
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>\n"
	}
	result := fmt.Sprintf("[%s]\n", n.Describe())
	if n.Leaf {
		return result
	}
	children := []struct {
		branch string
		node   *Node
	}{{"yes", n.Positive}, {"no", n.Negative}}
	for i, c := range children {
		for j, line := range strings.Split(c.node.String(), "\n") {
			if len(line) == 0 {
				continue
			}
			switch {
			case j == 0:
				result = fmt.Sprintf("%s|__%s: %s\n", result, c.branch, line)
			case i == len(children)-1:
				result = fmt.Sprintf("%s   %s\n", result, line)
			default:
				result = fmt.Sprintf("%s|  %s\n", result, line)
			}
		}
	}
	return result
}

/*
Package dot renders decision trees as Graphviz DOT graphs.
*/
package dot

import (
	"fmt"
	"io"
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/pbanos/tdidt/tree"
)

const graphName = "tdidt"

/*
Graph takes the root of a tree and returns a DOT digraph with a node
per tree node, labelled with its test or predicted label, and edges
labelled "yes" towards positive children and "no" towards negative ones.
Node names are "n" followed by the path from the root.
*/
func Graph(root *tree.Node) (string, error) {
	if err := root.Validate(); err != nil {
		return "", fmt.Errorf("rendering tree as DOT: %w", err)
	}
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}
	if err := addNodes(g, root, "n"); err != nil {
		return "", fmt.Errorf("rendering tree as DOT: %v", err)
	}
	return g.String(), nil
}

/*
Write takes an io.Writer and the root of a tree and writes the DOT
rendering of the tree on the writer.
*/
func Write(w io.Writer, root *tree.Node) error {
	s, err := Graph(root)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

func addNodes(g *gographviz.Graph, n *tree.Node, name string) error {
	attrs := map[string]string{"label": strconv.Quote(n.Describe())}
	if n.Leaf {
		attrs["shape"] = "box"
	}
	if err := g.AddNode(graphName, name, attrs); err != nil {
		return err
	}
	if n.Leaf {
		return nil
	}
	for _, c := range []struct {
		suffix, label string
		node          *tree.Node
	}{{"y", "yes", n.Positive}, {"n", "no", n.Negative}} {
		cname := name + c.suffix
		if err := addNodes(g, c.node, cname); err != nil {
			return err
		}
		if err := g.AddEdge(name, cname, true, map[string]string{"label": c.label}); err != nil {
			return err
		}
	}
	return nil
}

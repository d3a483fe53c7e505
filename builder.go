/*
Package tdidt grows binary decision trees from labeled examples with
top-down induction: every node is split on the attribute test that
minimizes the conditional entropy of the outcome, until examples share
an outcome or no attribute can split them.
*/
package tdidt

import (
	"context"
	"fmt"

	"github.com/pbanos/tdidt/dataset"
	"github.com/pbanos/tdidt/feature"
	"github.com/pbanos/tdidt/tree"
	"go.uber.org/zap"
)

/*
Builder grows decision trees for datasets following some labels.
*/
type Builder struct {
	labels    dataset.Labels
	logger    *zap.Logger
	evaluator *Evaluator
}

// Option configures a Builder.
type Option func(*Builder)

/*
WithLogger returns an Option that makes the builder trace its
decisions at debug level on the given logger. Builders are silent
by default.
*/
func WithLogger(l *zap.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

/*
New takes the labels of a dataset and options and returns a Builder
or an error if the labels are not valid.
*/
func New(labels dataset.Labels, opts ...Option) (*Builder, error) {
	if err := labels.Validate(); err != nil {
		return nil, err
	}
	b := &Builder{labels: labels, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	b.evaluator = NewEvaluator(labels, b.logger)
	return b, nil
}

// Labels returns the labels the builder grows trees for.
func (b *Builder) Labels() dataset.Labels {
	return b.labels
}

/*
Build takes a context, a slice of examples and a catalog of attributes
and returns the root of a decision tree grown from them. It returns
dataset.ErrEmptyDataset if there are no examples, the context error if
it is cancelled while growing and an error if an example cannot be
evaluated on an attribute.
*/
func (b *Builder) Build(ctx context.Context, examples []dataset.Example, c feature.Catalog) (*tree.Node, error) {
	if len(examples) == 0 {
		return nil, dataset.ErrEmptyDataset
	}
	root := &tree.Node{}
	if err := b.develop(ctx, root, examples, c.Clone(), ""); err != nil {
		return nil, fmt.Errorf("building tree: %w", err)
	}
	return root, nil
}

// BuildDataset is Build for the examples and catalog of a dataset.
func (b *Builder) BuildDataset(ctx context.Context, d *dataset.Dataset) (*tree.Node, error) {
	return b.Build(ctx, d.Examples, d.Catalog)
}

/*
develop turns the node into a leaf or a decision node for the given
examples, and in the latter case develops its children. The path is
the sequence of branches ('y' or 'n') taken from the root.
*/
func (b *Builder) develop(ctx context.Context, n *tree.Node, examples []dataset.Example, c feature.Catalog, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(examples) == 0 {
		return nil
	}
	if outcome, ok := uniformOutcome(examples); ok {
		b.makeLeaf(n, outcome, path, len(examples))
		return nil
	}
	split, err := b.evaluator.BestSplit(ctx, examples, c)
	if err != nil {
		return err
	}
	if split == nil {
		b.makeLeaf(n, tallyOutcomes(examples, b.labels).Majority(b.labels), path, len(examples))
		return nil
	}
	a := split.Attribute
	n.Attribute = &a
	n.Value = split.Value
	if a.Kind == feature.Categorical {
		c = c.Remove(a)
	}
	var positive, negative []dataset.Example
	for _, e := range examples {
		ok, err := n.Test(e)
		if err != nil {
			return err
		}
		if ok {
			positive = append(positive, e)
		} else {
			negative = append(negative, e)
		}
	}
	if len(positive) == 0 || len(negative) == 0 {
		// a chosen split always separates examples, but never leave a decision node without children
		n.Attribute, n.Value = nil, nil
		b.makeLeaf(n, tallyOutcomes(examples, b.labels).Majority(b.labels), path, len(examples))
		return nil
	}
	b.logger.Debug("split node",
		zap.String("path", path),
		zap.Stringer("attribute", a),
		zap.Stringer("value", split.Value),
		zap.Float64("entropy", split.Entropy),
		zap.Int("positive", len(positive)),
		zap.Int("negative", len(negative)))
	n.Negative = &tree.Node{}
	if err = b.develop(ctx, n.Negative, negative, c.Clone(), path+"n"); err != nil {
		return err
	}
	n.Positive = &tree.Node{}
	return b.develop(ctx, n.Positive, positive, c.Clone(), path+"y")
}

func (b *Builder) makeLeaf(n *tree.Node, label, path string, count int) {
	n.Leaf = true
	n.Value = tree.Label(label)
	b.logger.Debug("leaf node",
		zap.String("path", path),
		zap.String("label", label),
		zap.Int("examples", count))
}

/*
uniformOutcome returns the outcome of the examples and true if they all
share it, or false otherwise.
*/
func uniformOutcome(examples []dataset.Example) (string, bool) {
	first := examples[0].Outcome()
	for _, e := range examples[1:] {
		if e.Outcome() != first {
			return "", false
		}
	}
	return first, true
}

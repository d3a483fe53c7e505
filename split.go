package tdidt

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/pbanos/tdidt/dataset"
	"github.com/pbanos/tdidt/feature"
	"github.com/pbanos/tdidt/tree"
	"go.uber.org/zap"
)

/*
Split represents a binary partition of examples with a test on an
attribute, along with the conditional entropy of the outcome given it.
*/
type Split struct {
	Attribute feature.Attribute
	Value     tree.TestValue
	Entropy   float64
}

/*
Evaluator searches the split of a set of examples that minimizes the
conditional entropy of their outcome.
*/
type Evaluator struct {
	labels dataset.Labels
	logger *zap.Logger
}

/*
NewEvaluator takes the labels of a dataset and a logger and returns an
Evaluator. A nil logger silences the evaluator.
*/
func NewEvaluator(labels dataset.Labels, logger *zap.Logger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{labels: labels, logger: logger}
}

/*
BestSplit takes a context, a non-empty slice of examples and a catalog and
returns the split with the lowest conditional entropy among the best
candidates of every attribute on the catalog. Attributes are evaluated in
catalog order and a later attribute must be strictly better to replace an
earlier one. Candidates with undefined entropy are never chosen.
A nil split is returned if the catalog is empty or no attribute yields a
defined entropy. An error is returned if the context is done or an
example lacks a value or has a non-numeric value for a numerical attribute.
*/
func (ev *Evaluator) BestSplit(ctx context.Context, examples []dataset.Example, c feature.Catalog) (*Split, error) {
	var best *Split
	for _, a := range c.Attributes() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s, err := ev.Evaluate(examples, a)
		if err != nil {
			return nil, err
		}
		if s == nil || math.IsNaN(s.Entropy) {
			continue
		}
		ev.logger.Debug("candidate split",
			zap.Stringer("attribute", s.Attribute),
			zap.Stringer("value", s.Value),
			zap.Float64("entropy", s.Entropy))
		if best == nil || s.Entropy < best.Entropy {
			best = s
		}
	}
	return best, nil
}

/*
Evaluate takes a slice of examples and an attribute and returns the best
split of the examples on the attribute, or nil if the attribute offers no
candidate split.
*/
func (ev *Evaluator) Evaluate(examples []dataset.Example, a feature.Attribute) (*Split, error) {
	switch a.Kind {
	case feature.Binary:
		return ev.binarySplit(examples, a)
	case feature.Categorical:
		return ev.categoricalSplit(examples, a)
	case feature.Numerical:
		return ev.numericalSplit(examples, a)
	}
	return nil, fmt.Errorf("unknown kind %v for attribute %s", a.Kind, a.Name())
}

/*
binarySplit separates examples holding the true marker on the attribute
from the rest.
*/
func (ev *Evaluator) binarySplit(examples []dataset.Example, a feature.Attribute) (*Split, error) {
	var marked, unmarked Tally
	for _, e := range examples {
		v, err := e.Value(a.ID)
		if err != nil {
			return nil, err
		}
		if v == ev.labels.True {
			marked.Parse(e.Outcome(), ev.labels)
		} else {
			unmarked.Parse(e.Outcome(), ev.labels)
		}
	}
	h := ConditionalEntropy(marked.Positive, marked.Negative, unmarked.Positive, unmarked.Negative)
	return &Split{Attribute: a, Value: tree.Marker(ev.labels.True), Entropy: h}, nil
}

/*
categoricalSplit looks for a bipartition of the values of the attribute.
Starting with no chosen values, every round tries moving each remaining
value into the chosen set and keeps the move with the lowest entropy of
chosen against remaining values, as long as it improves on every
previous round. The search ends when no move improves or the chosen set
reaches half of the distinct values.
This is a greedy search and may miss the best bipartition.
*/
func (ev *Evaluator) categoricalSplit(examples []dataset.Example, a feature.Attribute) (*Split, error) {
	var remaining []Tally
	index := make(map[string]int)
	var total Tally
	for _, e := range examples {
		v, err := e.Value(a.ID)
		if err != nil {
			return nil, err
		}
		i, ok := index[v]
		if !ok {
			i = len(remaining)
			index[v] = i
			remaining = append(remaining, Tally{Category: v})
		}
		remaining[i].Parse(e.Outcome(), ev.labels)
		total.Parse(e.Outcome(), ev.labels)
	}
	half := len(remaining) / 2
	var chosen []Tally
	var left Tally
	best := math.Inf(1)
	for len(chosen) < half {
		move := -1
		for i, t := range remaining {
			l := left.Merge(t)
			h := ConditionalEntropy(l.Positive, l.Negative, total.Positive-l.Positive, total.Negative-l.Negative)
			if h < best {
				best = h
				move = i
			}
		}
		if move < 0 {
			break
		}
		left = left.Merge(remaining[move])
		chosen = append(chosen, remaining[move])
		remaining = append(remaining[:move:move], remaining[move+1:]...)
	}
	if len(chosen) == 0 {
		return nil, nil
	}
	values := make([]string, 0, len(chosen))
	for _, t := range chosen {
		values = append(values, t.Category)
	}
	return &Split{Attribute: a, Value: tree.NewCategorySet(values...), Entropy: best}, nil
}

type numericalPoint struct {
	value   float64
	outcome string
}

/*
numericalSplit sorts examples by value, then outcome, and scans the
boundaries between consecutive examples with different values keeping a
tally of the examples left of the boundary. Each boundary proposes as
threshold the midpoint of the values around it. Among thresholds with
the same entropy the last one scanned is kept.
*/
func (ev *Evaluator) numericalSplit(examples []dataset.Example, a feature.Attribute) (*Split, error) {
	points := make([]numericalPoint, 0, len(examples))
	var total Tally
	for _, e := range examples {
		v, err := e.Value(a.ID)
		if err != nil {
			return nil, err
		}
		f, err := dataset.ParseNumber(v)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %v", a.Name(), err)
		}
		points = append(points, numericalPoint{f, e.Outcome()})
		total.Parse(e.Outcome(), ev.labels)
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].value != points[j].value {
			return points[i].value < points[j].value
		}
		return points[i].outcome < points[j].outcome
	})
	var result *Split
	var left Tally
	for i := 0; i < len(points)-1; i++ {
		left.Parse(points[i].outcome, ev.labels)
		if points[i].value == points[i+1].value {
			continue
		}
		h := ConditionalEntropy(left.Positive, left.Negative, total.Positive-left.Positive, total.Negative-left.Negative)
		if math.IsNaN(h) {
			continue
		}
		if result == nil || h <= result.Entropy {
			threshold := midpoint(points[i].value, points[i+1].value)
			result = &Split{Attribute: a, Value: tree.Threshold(threshold), Entropy: h}
		}
	}
	return result, nil
}

/*
midpoint returns a threshold between lo and hi, lo < hi, that sends lo
to the positive branch and hi to the negative one. Halves are added to
avoid overflowing on large values. When no float lies strictly between
them lo itself is returned.
*/
func midpoint(lo, hi float64) float64 {
	m := lo/2 + hi/2
	if m < lo || m >= hi {
		return lo
	}
	return m
}

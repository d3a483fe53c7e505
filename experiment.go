package tdidt

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/pbanos/tdidt/dataset"
	"github.com/pbanos/tdidt/tree"
	"go.uber.org/zap"
)

/*
ExperimentResult holds the outcome of testing a tree grown from a
random portion of a dataset against the rest of it.
*/
type ExperimentResult struct {
	Index    int
	Correct  int
	Total    int
	Accuracy float64
}

/*
Accuracy takes the root of a tree and a slice of examples and returns
the number of examples whose outcome the tree predicts, or an error if
an example cannot be classified.
*/
func Accuracy(root *tree.Node, examples []dataset.Example) (int, error) {
	var correct int
	for _, e := range examples {
		label, err := tree.Classify(root, e)
		if err != nil {
			return 0, err
		}
		if label == e.Outcome() {
			correct++
		}
	}
	return correct, nil
}

/*
RunExperiments takes a context, a dataset, a number of experiments, a
training percent and a source of randomness and, for every experiment,
shuffles the examples of the dataset, grows a tree from the first
percent of them and tests it against the rest. It returns the results
of the experiments in order or an error if a tree cannot be grown or
tested.
*/
func (b *Builder) RunExperiments(ctx context.Context, d *dataset.Dataset, times, percent int, rnd *rand.Rand) ([]ExperimentResult, error) {
	results := make([]ExperimentResult, 0, times)
	for i := 0; i < times; i++ {
		train, test, err := dataset.Split(d.Examples, percent, rnd)
		if err != nil {
			return nil, err
		}
		if len(train) == 0 || len(test) == 0 {
			return nil, fmt.Errorf("experiment %d: %d%% of %d examples leaves an empty training or test set", i, percent, len(d.Examples))
		}
		root, err := b.Build(ctx, train, d.Catalog)
		if err != nil {
			return nil, fmt.Errorf("experiment %d: %w", i, err)
		}
		correct, err := Accuracy(root, test)
		if err != nil {
			return nil, fmt.Errorf("experiment %d: %w", i, err)
		}
		r := ExperimentResult{
			Index:    i,
			Correct:  correct,
			Total:    len(test),
			Accuracy: float64(correct) / float64(len(test)),
		}
		b.logger.Debug("experiment done",
			zap.Int("experiment", i),
			zap.Int("correct", r.Correct),
			zap.Int("total", r.Total),
			zap.Float64("accuracy", r.Accuracy))
		results = append(results, r)
	}
	return results, nil
}

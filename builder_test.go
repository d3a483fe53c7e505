package tdidt

import (
	"context"
	"errors"
	"testing"

	"github.com/pbanos/tdidt/dataset"
	"github.com/pbanos/tdidt/feature"
	"github.com/pbanos/tdidt/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newBuilder(t *testing.T, labels dataset.Labels, opts ...Option) *Builder {
	b, err := New(labels, opts...)
	require.NoError(t, err)
	return b
}

func TestNewRejectsInvalidLabels(t *testing.T) {
	_, err := New(dataset.Labels{Positive: "yes", Negative: "yes", True: "yes"})
	require.Error(t, err)
}

func TestBuildEmpty(t *testing.T) {
	b := newBuilder(t, dataset.DefaultLabels())
	_, err := b.Build(context.Background(), nil, feature.Catalog{})
	require.True(t, errors.Is(err, dataset.ErrEmptyDataset))
}

func TestBuildSingleOutcome(t *testing.T) {
	b := newBuilder(t, dataset.DefaultLabels())
	c := catalog(t, feature.Attribute{ID: 0, Kind: feature.Binary}, feature.Attribute{ID: 1, Kind: feature.Numerical})
	root, err := b.Build(context.Background(), examples(
		[]string{"yes", "1", "no"},
		[]string{"no", "4", "no"},
		[]string{"yes", "2", "no"},
	), c)
	require.NoError(t, err)
	assert.True(t, root.Leaf)
	assert.Equal(t, tree.Label("no"), root.Value)
	assert.Equal(t, 1, root.Size())
}

func TestBuildBinary(t *testing.T) {
	labels := dataset.Labels{Positive: "1", Negative: "0", True: "1"}
	b := newBuilder(t, labels)
	c := catalog(t, feature.Attribute{ID: 0, Kind: feature.Binary}, feature.Attribute{ID: 1, Kind: feature.Binary})
	ex := examples([]string{"1", "1", "1"}, []string{"0", "1", "0"}, []string{"1", "0", "1"})

	root, err := b.Build(context.Background(), ex, c)
	require.NoError(t, err)
	require.NoError(t, root.Validate())
	require.False(t, root.Leaf)
	assert.Equal(t, 0, root.Attribute.ID)
	assert.Equal(t, tree.Marker("1"), root.Value)
	assert.Equal(t, tree.NewLeaf("1"), root.Positive)
	assert.Equal(t, tree.NewLeaf("0"), root.Negative)

	for _, e := range ex {
		label, err := tree.Classify(root, e)
		require.NoError(t, err)
		assert.Equal(t, e.Outcome(), label)
	}
}

func TestBuildReproducesTrainingLabels(t *testing.T) {
	b := newBuilder(t, dataset.DefaultLabels())
	c := catalog(t,
		feature.Attribute{ID: 0, Kind: feature.Binary},
		feature.Attribute{ID: 1, Kind: feature.Categorical},
		feature.Attribute{ID: 2, Kind: feature.Numerical},
	)
	ex := examples(
		[]string{"yes", "sunny", "30", "no"},
		[]string{"yes", "sunny", "27", "no"},
		[]string{"no", "overcast", "28", "yes"},
		[]string{"no", "rain", "21", "yes"},
		[]string{"no", "rain", "20", "yes"},
		[]string{"yes", "rain", "18", "no"},
		[]string{"yes", "overcast", "17", "yes"},
		[]string{"no", "sunny", "22", "no"},
		[]string{"no", "sunny", "19", "yes"},
		[]string{"no", "rain", "23", "yes"},
		[]string{"yes", "sunny", "24", "yes"},
		[]string{"yes", "overcast", "22.5", "yes"},
		[]string{"no", "overcast", "29", "yes"},
		[]string{"yes", "rain", "21.5", "no"},
	)
	root, err := b.Build(context.Background(), ex, c)
	require.NoError(t, err)
	require.NoError(t, root.Validate())
	correct, err := Accuracy(root, ex)
	require.NoError(t, err)
	assert.Equal(t, len(ex), correct, "tree:\n%v", root)
}

func TestBuildMajorityLeaf(t *testing.T) {
	b := newBuilder(t, dataset.DefaultLabels())

	root, err := b.Build(context.Background(), examples([]string{"yes"}, []string{"no"}), feature.Catalog{})
	require.NoError(t, err)
	assert.Equal(t, tree.NewLeaf("no"), root, "ties go to the negative label")

	c := catalog(t, feature.Attribute{ID: 0, Kind: feature.Binary})
	root, err = b.Build(context.Background(), examples(
		[]string{"yes", "yes"},
		[]string{"yes", "no"},
		[]string{"yes", "yes"},
	), c)
	require.NoError(t, err)
	assert.Equal(t, tree.NewLeaf("yes"), root, "examples that cannot be told apart get the majority")
}

func TestBuildRemovesChosenCategoricalAttribute(t *testing.T) {
	b := newBuilder(t, dataset.DefaultLabels())
	c := catalog(t, feature.Attribute{ID: 0, Kind: feature.Categorical})
	ex := examples(
		[]string{"A", "yes"}, []string{"A", "yes"},
		[]string{"B", "no"}, []string{"B", "no"},
		[]string{"C", "yes"}, []string{"C", "no"},
	)
	root, err := b.Build(context.Background(), ex, c)
	require.NoError(t, err)
	require.NoError(t, root.Validate())
	assert.Equal(t, 3, root.Size(), "tree:\n%v", root)
	assert.Equal(t, []string{"A"}, root.Value.(tree.CategorySet).Values())
	assert.Equal(t, tree.NewLeaf("yes"), root.Positive)
	assert.Equal(t, tree.NewLeaf("no"), root.Negative)
	assert.Equal(t, 1, c.Len(), "the caller catalog must be left untouched")
}

func TestBuildKeepsNumericalAttribute(t *testing.T) {
	b := newBuilder(t, dataset.DefaultLabels())
	c := catalog(t, feature.Attribute{ID: 0, Kind: feature.Numerical})
	ex := examples(
		[]string{"1", "yes"}, []string{"2", "yes"},
		[]string{"3", "no"}, []string{"4", "no"},
		[]string{"5", "yes"}, []string{"6", "yes"},
	)
	root, err := b.Build(context.Background(), ex, c)
	require.NoError(t, err)
	assert.Greater(t, root.Depth(), 1, "a numerical attribute may be tested again down the tree")
	correct, err := Accuracy(root, ex)
	require.NoError(t, err)
	assert.Equal(t, len(ex), correct)
}

func TestBuildCancelled(t *testing.T) {
	b := newBuilder(t, dataset.DefaultLabels())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := b.Build(ctx, examples([]string{"yes", "yes"}, []string{"no", "no"}), catalog(t, feature.Attribute{ID: 0, Kind: feature.Binary}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestBuildTrace(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	b := newBuilder(t, dataset.Labels{Positive: "1", Negative: "0", True: "1"}, WithLogger(zap.New(core)))
	c := catalog(t, feature.Attribute{ID: 0, Kind: feature.Binary}, feature.Attribute{ID: 1, Kind: feature.Binary})
	_, err := b.Build(context.Background(), examples([]string{"1", "1", "1"}, []string{"0", "1", "0"}, []string{"1", "0", "1"}), c)
	require.NoError(t, err)

	splits := logs.FilterMessage("split node").All()
	require.Len(t, splits, 1)
	assert.Equal(t, "a:b", splits[0].ContextMap()["attribute"])
	assert.Equal(t, "", splits[0].ContextMap()["path"])
	leaves := logs.FilterMessage("leaf node").All()
	require.Len(t, leaves, 2)
	assert.Equal(t, "n", leaves[0].ContextMap()["path"], "negative branch is grown first")
	assert.Equal(t, "y", leaves[1].ContextMap()["path"])
	assert.Equal(t, 2, logs.FilterMessage("candidate split").Len())
}

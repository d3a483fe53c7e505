package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pbanos/tdidt"
	"github.com/pbanos/tdidt/dataset"
	"github.com/pbanos/tdidt/feature"
	"github.com/pbanos/tdidt/tree"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceKind(t *testing.T) {
	for location, kind := range map[string]sourceKind{
		"":                             textSource,
		"weather.txt":                  textSource,
		"weather.db":                   sqliteSource,
		"postgresql://localhost/tdidt": postgresSource,
		"postgres://localhost/tdidt":   postgresSource,
		"mongodb://localhost/tdidt":    mongoSource,
		"redis://localhost:6379/0":     redisSource,
	} {
		sc := &sourceConfig{location: location}
		assert.Equal(t, kind, sc.kind(), location)
	}
}

func TestSourceValidate(t *testing.T) {
	sc := &sourceConfig{location: "weather.db"}
	require.Error(t, sc.Validate(), "SQL sources have no header")
	sc.metadataInput = "weather.yml"
	require.NoError(t, sc.Validate())
	require.NoError(t, (&sourceConfig{location: "weather.txt"}).Validate())
}

func TestTextSourceReadWrite(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("a:b,b:n\nyes,1,yes\nno,2,no\n"), 0600))

	rcc := &rootCmdConfig{v: viper.New()}
	require.NoError(t, rcc.load())
	source := &sourceConfig{rootCmdConfig: rcc, location: in, table: defaultTable}
	d, labels, err := source.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dataset.DefaultLabels(), labels)
	assert.Len(t, d.Examples, 2)

	dest := &sourceConfig{rootCmdConfig: rcc, location: out, table: defaultTable}
	require.NoError(t, dest.Write(context.Background(), d))
	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "a:b,b:n\nyes,1,yes\nno,2,no\n", string(written))
}

func TestLabelsFromConfig(t *testing.T) {
	rcc := &rootCmdConfig{v: viper.New()}
	rcc.v.Set("labels.positive", "1")
	rcc.v.Set("labels.negative", "0")
	l, err := rcc.labels(dataset.DefaultLabels())
	require.NoError(t, err)
	assert.Equal(t, dataset.Labels{Positive: "1", Negative: "0", True: "yes"}, l)

	rcc.v.Set("labels.negative", "1")
	_, err = rcc.labels(dataset.DefaultLabels())
	require.Error(t, err)
}

func TestTestCmdValidate(t *testing.T) {
	tcc := &testCmdConfig{source: &sourceConfig{}, times: 1, percent: 66}
	require.NoError(t, tcc.Validate())
	tcc.percent = 100
	require.Error(t, tcc.Validate())
	tcc.percent, tcc.times = 50, 0
	require.Error(t, tcc.Validate())
}

func TestResultsTable(t *testing.T) {
	s := resultsTable([]tdidt.ExperimentResult{
		{Index: 0, Correct: 3, Total: 4, Accuracy: 0.75},
		{Index: 1, Correct: 4, Total: 4, Accuracy: 1},
	})
	assert.Contains(t, s, "75.00%")
	assert.Contains(t, s, "100.00%")
	assert.Contains(t, s, "87.50%")
	assert.Equal(t, 1, strings.Count(s, "ACCURACY")+strings.Count(s, "Accuracy"))
}

func TestGrowCmd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "tree.txt")
	dotOut := filepath.Join(dir, "tree.dot")
	require.NoError(t, os.WriteFile(in, []byte("a:b,b:b\n1,1,1\n0,1,0\n1,0,1\n"), 0600))

	cmd := cliParser()
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"grow", "--positive", "1", "--negative", "0", "--true", "1", "-i", in, "-o", out, "--dot", dotOut})
	require.NoError(t, cmd.Execute(), stderr.String())

	printed, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "[a = 1]\n|__yes: [=> 1]\n|__no: [=> 0]\n", string(printed))
	graph, err := os.ReadFile(dotOut)
	require.NoError(t, err)
	assert.Contains(t, string(graph), "digraph tdidt")
}

func TestNodeCounts(t *testing.T) {
	root := tree.NewDecision(feature.Attribute{ID: 0, Kind: feature.Binary}, tree.Marker("yes"),
		tree.NewDecision(feature.Attribute{ID: 1, Kind: feature.Numerical}, tree.Threshold(2), tree.NewLeaf("yes"), tree.NewLeaf("no")),
		tree.NewDecision(feature.Attribute{ID: 2, Kind: feature.Numerical}, tree.Threshold(7), tree.NewLeaf("no"), tree.NewLeaf("yes")),
	)
	counts, err := nodeCounts(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"binary": 1, "numerical": 2, "leaf": 4}, counts)

	_, err = nodeCounts(context.Background(), &tree.Node{Positive: tree.NewLeaf("yes"), Negative: tree.NewLeaf("no")})
	assert.True(t, errors.Is(err, tree.ErrMalformedTree))
}

package dot

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/pbanos/tdidt/feature"
	"github.com/pbanos/tdidt/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph(t *testing.T) {
	root := tree.NewDecision(feature.Attribute{ID: 0, Kind: feature.Binary}, tree.Marker("yes"),
		tree.NewDecision(feature.Attribute{ID: 2, Kind: feature.Numerical}, tree.Threshold(3.5), tree.NewLeaf("yes"), tree.NewLeaf("no")),
		tree.NewLeaf("no"),
	)
	s, err := Graph(root)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(s), "digraph tdidt"), s)
	for _, label := range []string{`"a = yes"`, `"c <= 3.5"`, `"=> yes"`, `"=> no"`} {
		assert.Contains(t, s, label)
	}
	for _, name := range []string{"ny", "nn", "nyy", "nyn"} {
		assert.Contains(t, s, name)
	}
	assert.Equal(t, 4, strings.Count(s, "->"))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, root))
	assert.Equal(t, s, buf.String())
}

func TestGraphMalformed(t *testing.T) {
	root := tree.NewDecision(feature.Attribute{ID: 0, Kind: feature.Binary}, tree.Marker("yes"), tree.NewLeaf("yes"), nil)
	_, err := Graph(root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, tree.ErrMalformedTree))
}

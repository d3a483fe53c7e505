package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) Catalog {
	c, err := NewCatalog(
		Attribute{ID: 0, Kind: Binary},
		Attribute{ID: 2, Kind: Numerical},
		Attribute{ID: 1, Kind: Categorical},
	)
	require.NoError(t, err)
	return c
}

func TestNewCatalog(t *testing.T) {
	c := testCatalog(t)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 2, c.MaxID())
	assert.Equal(t, []Attribute{{0, Binary}, {2, Numerical}, {1, Categorical}}, c.Attributes(), "insertion order is kept")

	_, err := NewCatalog(Attribute{ID: 1, Kind: Binary}, Attribute{ID: 1, Kind: Numerical})
	require.Error(t, err)
	_, err = NewCatalog(Attribute{ID: -1, Kind: Binary})
	require.Error(t, err)

	assert.Equal(t, -1, Catalog{}.MaxID())
	assert.Equal(t, 0, Catalog{}.Len())
}

func TestCatalogGet(t *testing.T) {
	c := testCatalog(t)
	a, ok := c.Get(2)
	require.True(t, ok)
	assert.Equal(t, Numerical, a.Kind)
	_, ok = c.Get(5)
	assert.False(t, ok)
}

func TestCatalogRemove(t *testing.T) {
	c := testCatalog(t)
	r := c.Remove(Attribute{ID: 2, Kind: Numerical})
	assert.Equal(t, []Attribute{{0, Binary}, {1, Categorical}}, r.Attributes())
	assert.Equal(t, 3, c.Len(), "remove must not alter the receiver")
	assert.Equal(t, []Attribute{{0, Binary}, {2, Numerical}, {1, Categorical}}, c.Attributes())

	assert.Equal(t, c.Attributes(), c.Remove(Attribute{ID: 7}).Attributes())
}

func TestCatalogCloneIndependence(t *testing.T) {
	c := testCatalog(t)
	left := c.Clone().Remove(Attribute{ID: 0})
	right := c.Clone().Remove(Attribute{ID: 1})
	assert.Equal(t, []Attribute{{2, Numerical}, {1, Categorical}}, left.Attributes())
	assert.Equal(t, []Attribute{{0, Binary}, {2, Numerical}}, right.Attributes())
	assert.Equal(t, 3, c.Len())

	attrs := c.Attributes()
	attrs[0] = Attribute{ID: 9, Kind: Numerical}
	_, ok := c.Get(9)
	assert.False(t, ok, "Attributes returns a copy")
}

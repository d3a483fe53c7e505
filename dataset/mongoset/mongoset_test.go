package mongoset

import (
	"context"
	"os"
	"testing"

	"github.com/pbanos/tdidt/dataset"
	"github.com/pbanos/tdidt/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

func testCatalog(t *testing.T) feature.Catalog {
	c, err := feature.NewCatalog(feature.Attribute{ID: 0, Kind: feature.Categorical}, feature.Attribute{ID: 1, Kind: feature.Numerical})
	require.NoError(t, err)
	return c
}

func TestDocumentFromExample(t *testing.T) {
	doc, err := DocumentFromExample(dataset.Example{"red", "2.5", "yes"}, testCatalog(t))
	require.NoError(t, err)
	assert.Equal(t, bson.M{"a": "red", "b": "2.5", "outcome": "yes"}, doc)

	_, err = DocumentFromExample(dataset.Example{"red", "yes"}, testCatalog(t))
	require.Error(t, err)
}

func TestExampleFromDocument(t *testing.T) {
	e, err := ExampleFromDocument(bson.M{"a": "red", "b": 2.5, "outcome": "yes", "_id": bson.NewObjectId()}, testCatalog(t))
	require.NoError(t, err)
	assert.Equal(t, dataset.Example{"red", "2.5", "yes"}, e)

	e, err = ExampleFromDocument(bson.M{"a": "red", "b": 3, "outcome": "no"}, testCatalog(t))
	require.NoError(t, err)
	assert.Equal(t, dataset.Example{"red", "3", "no"}, e)

	_, err = ExampleFromDocument(bson.M{"a": "red", "outcome": "no"}, testCatalog(t))
	require.Error(t, err)
	_, err = ExampleFromDocument(bson.M{"a": "red", "b": nil, "outcome": "no"}, testCatalog(t))
	require.Error(t, err)
	_, err = ExampleFromDocument(bson.M{"a": "red", "b": 1}, testCatalog(t))
	require.Error(t, err)
}

// TestWriteRead needs a MongoDB server at TDIDT_TEST_MONGODB_URL.
func TestWriteRead(t *testing.T) {
	url := os.Getenv("TDIDT_TEST_MONGODB_URL")
	if url == "" {
		t.Skip("TDIDT_TEST_MONGODB_URL is not set")
	}
	session, err := mgo.Dial(url)
	require.NoError(t, err)
	defer session.Close()
	collection := "tdidt_test_" + bson.NewObjectId().Hex()
	defer session.DB("").C(collection).DropCollection()

	d := &dataset.Dataset{
		Catalog:  testCatalog(t),
		Examples: []dataset.Example{{"red", "1", "yes"}, {"blue", "2", "no"}},
	}
	ctx := context.Background()
	require.NoError(t, Write(ctx, session, collection, d))
	read, err := Read(ctx, session, collection, d.Catalog, dataset.DefaultLabels())
	require.NoError(t, err)
	assert.ElementsMatch(t, d.Examples, read.Examples)
}

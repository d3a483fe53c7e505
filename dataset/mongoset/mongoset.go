/*
Package mongoset reads datasets from and writes datasets to MongoDB
collections.

Every document of a dataset collection is an example: it holds a
property per attribute id named after its letter ('a', 'b', ...) up to
the highest id on the catalog, and an outcome property.
*/
package mongoset

import (
	"context"
	"fmt"

	"github.com/pbanos/tdidt/dataset"
	"github.com/pbanos/tdidt/feature"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

// OutcomeKey is the document property holding outcomes.
const OutcomeKey = "outcome"

/*
Read takes a context, a MongoDB session, a collection name, the catalog
of the dataset and its labels and returns a dataset with every document
of the collection on the session's default database, or an error.
*/
func Read(ctx context.Context, session *mgo.Session, collection string, c feature.Catalog, labels dataset.Labels) (*dataset.Dataset, error) {
	s := session.Copy()
	defer s.Close()
	iter := s.DB("").C(collection).Find(nil).Iter()
	var examples []dataset.Example
	for {
		if err := ctx.Err(); err != nil {
			iter.Close()
			return nil, err
		}
		doc := bson.M{}
		if !iter.Next(&doc) {
			break
		}
		e, err := ExampleFromDocument(doc, c)
		if err != nil {
			iter.Close()
			return nil, fmt.Errorf("reading document %d of collection %s: %v", len(examples)+1, collection, err)
		}
		examples = append(examples, e)
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("reading collection %s: %v", collection, err)
	}
	d := &dataset.Dataset{Catalog: c, Examples: examples}
	if err := d.Validate(labels); err != nil {
		return nil, fmt.Errorf("reading collection %s: %w", collection, err)
	}
	return d, nil
}

/*
Write takes a context, a MongoDB session, a collection name and a
dataset and inserts every example of the dataset as a document on the
collection of the session's default database.
*/
func Write(ctx context.Context, session *mgo.Session, collection string, d *dataset.Dataset) error {
	docs := make([]interface{}, 0, len(d.Examples))
	for i, e := range d.Examples {
		doc, err := DocumentFromExample(e, d.Catalog)
		if err != nil {
			return fmt.Errorf("encoding example %d: %v", i+1, err)
		}
		docs = append(docs, doc)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s := session.Copy()
	defer s.Close()
	if err := s.DB("").C(collection).Insert(docs...); err != nil {
		return fmt.Errorf("inserting examples on collection %s: %v", collection, err)
	}
	return nil
}

/*
ExampleFromDocument takes a document and a catalog and returns the
example it holds or an error if a property is missing. Non-string
values are formatted with fmt.
*/
func ExampleFromDocument(doc bson.M, c feature.Catalog) (dataset.Example, error) {
	width := c.MaxID() + 1
	e := make(dataset.Example, 0, width+1)
	for id := 0; id < width; id++ {
		key := feature.Attribute{ID: id}.Name()
		v, ok := doc[key]
		if !ok || v == nil {
			return nil, fmt.Errorf("missing value for attribute %s", key)
		}
		e = append(e, stringify(v))
	}
	o, ok := doc[OutcomeKey]
	if !ok || o == nil {
		return nil, fmt.Errorf("missing %s", OutcomeKey)
	}
	return append(e, stringify(o)), nil
}

/*
DocumentFromExample takes an example and a catalog and returns the
document representing it or an error if the example has not enough fields.
*/
func DocumentFromExample(e dataset.Example, c feature.Catalog) (bson.M, error) {
	width := c.MaxID() + 1
	if len(e) < width+1 {
		return nil, fmt.Errorf("%d fields are not enough for attributes %v and the outcome", len(e), c)
	}
	doc := bson.M{OutcomeKey: e.Outcome()}
	for id := 0; id < width; id++ {
		doc[feature.Attribute{ID: id}.Name()] = e[id]
	}
	return doc, nil
}

func stringify(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

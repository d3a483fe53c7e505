/*
Package yaml provides methods to parse attribute catalogs and dataset
labels, also known as metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"io/ioutil"
	"sort"

	"github.com/pbanos/tdidt/dataset"
	"github.com/pbanos/tdidt/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
Metadata describes a dataset whose source has no header: the catalog
of its attributes and its labels.
*/
type Metadata struct {
	Catalog feature.Catalog
	Labels  dataset.Labels
}

/*
ReadMetadata takes a slice of bytes with a metadata specification in YML
and returns the metadata parsed from it or an error.
The YML is expected to be an object containing an attributes property.
The value for this should be an object with a property for each attribute
with its letter id and its kind: "binary", "categorical" or "numerical"
(or their one letter codes). Attributes are catalogued in id order.
An optional labels property may hold positive, negative and true
properties; missing ones take the default yes/no values.
*/
func ReadMetadata(md []byte) (*Metadata, error) {
	metadata := struct {
		Attributes map[string]string `yaml:"attributes"`
		Labels     dataset.Labels    `yaml:"labels"`
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing yml metadata: %v", err)
	}
	if len(metadata.Attributes) == 0 {
		return nil, fmt.Errorf("metadata has no attribute information")
	}
	attributes := make([]feature.Attribute, 0, len(metadata.Attributes))
	for letter, kind := range metadata.Attributes {
		id, err := feature.ParseID(letter)
		if err != nil {
			return nil, fmt.Errorf("parsing yml metadata: %v", err)
		}
		k, err := feature.ParseKind(kind)
		if err != nil {
			return nil, fmt.Errorf("parsing yml metadata: attribute %s: %v", letter, err)
		}
		attributes = append(attributes, feature.Attribute{ID: id, Kind: k})
	}
	sort.Slice(attributes, func(i, j int) bool { return attributes[i].ID < attributes[j].ID })
	c, err := feature.NewCatalog(attributes...)
	if err != nil {
		return nil, err
	}
	labels := metadata.Labels.Merge(dataset.DefaultLabels())
	if err = labels.Validate(); err != nil {
		return nil, fmt.Errorf("parsing yml metadata: %v", err)
	}
	return &Metadata{Catalog: c, Labels: labels}, nil
}

/*
ReadMetadataFromFile takes a filepath string, reads its contents and uses
ReadMetadata to parse it and return the metadata or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadMetadataFromFile(filepath string) (*Metadata, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading metadata yml file %s: %v", filepath, err)
	}
	m, err := ReadMetadata(md)
	if err != nil {
		err = fmt.Errorf("parsing metadata yml file %s: %v", filepath, err)
	}
	return m, err
}

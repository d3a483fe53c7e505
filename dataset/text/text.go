/*
Package text reads datasets from comma-separated text.

The first line of a dataset declares its attributes, one token per
attribute with format <letter-id>:<kind-code>, where the kind code is
'b' for binary, 'c' for categorical and 'n' for numerical attributes,
and the id of an attribute is the position of its letter in the
alphabet ('a' is 0). Every following line holds an example: its values
aligned to attribute ids followed by the outcome label.
*/
package text

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pbanos/tdidt/dataset"
	"github.com/pbanos/tdidt/feature"
)

/*
ParseHeader takes the tokens of a dataset header and returns the catalog
they declare or an error if a token is malformed or has an unknown kind.
*/
func ParseHeader(tokens []string) (feature.Catalog, error) {
	attributes := make([]feature.Attribute, 0, len(tokens))
	for _, token := range tokens {
		parts := strings.Split(strings.TrimSpace(token), ":")
		if len(parts) != 2 {
			return feature.Catalog{}, fmt.Errorf("parsing header: malformed attribute %q", token)
		}
		id, err := feature.ParseID(parts[0])
		if err != nil {
			return feature.Catalog{}, fmt.Errorf("parsing header: %v", err)
		}
		kind, err := feature.ParseKind(parts[1])
		if err != nil {
			return feature.Catalog{}, fmt.Errorf("parsing header: attribute %s: %v", parts[0], err)
		}
		attributes = append(attributes, feature.Attribute{ID: id, Kind: kind})
	}
	c, err := feature.NewCatalog(attributes...)
	if err != nil {
		return feature.Catalog{}, fmt.Errorf("parsing header: %v", err)
	}
	return c, nil
}

/*
ParseHeaderLine is ParseHeader for a whole comma-separated header line.
*/
func ParseHeaderLine(line string) (feature.Catalog, error) {
	return ParseHeader(strings.Split(line, ","))
}

/*
ReadByExample takes an io.Reader for a dataset, its labels and a lambda
function on an integer and an example that returns a boolean value. It
parses the header and then every example, validating it, and calls the
lambda with its index and the example. If the lambda returns false the
reading stops. The parsed catalog is returned along an error if something
goes wrong when reading or parsing.
*/
func ReadByExample(reader io.Reader, labels dataset.Labels, lambda func(int, dataset.Example) (bool, error)) (feature.Catalog, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err != nil {
		return feature.Catalog{}, fmt.Errorf("reading header: %v", err)
	}
	catalog, err := ParseHeader(header)
	if err != nil {
		return feature.Catalog{}, err
	}
	for i := 0; ; i++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return catalog, fmt.Errorf("reading body: %v", err)
		}
		e := dataset.Example(row)
		if err = dataset.ValidateExample(e, catalog, labels); err != nil {
			line, _ := r.FieldPos(0)
			return catalog, fmt.Errorf("parsing line %d: %v", line, err)
		}
		ok, err := lambda(i, e)
		if err != nil {
			return catalog, err
		}
		if !ok {
			break
		}
	}
	return catalog, nil
}

/*
Read takes an io.Reader for a dataset and its labels and returns the
dataset parsed from it or an error.
*/
func Read(reader io.Reader, labels dataset.Labels) (*dataset.Dataset, error) {
	var examples []dataset.Example
	catalog, err := ReadByExample(reader, labels, func(_ int, e dataset.Example) (bool, error) {
		examples = append(examples, e)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	d := &dataset.Dataset{Catalog: catalog, Examples: examples}
	if err = d.Validate(labels); err != nil {
		return nil, err
	}
	return d, nil
}

/*
ReadLines takes the lines of a dataset, header first, and its labels and
returns the dataset parsed from them or an error.
*/
func ReadLines(lines []string, labels dataset.Labels) (*dataset.Dataset, error) {
	return Read(strings.NewReader(strings.Join(lines, "\n")), labels)
}

/*
ReadFile takes a filepath string and labels, opens the file and uses
Read to return the dataset in it. If the filepath is "" os.Stdin is
read instead.
*/
func ReadFile(filepath string, labels dataset.Labels) (*dataset.Dataset, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading dataset: %v", err)
		}
		defer f.Close()
	}
	d, err := Read(f, labels)
	if err != nil {
		err = fmt.Errorf("parsing dataset file %s: %v", filepath, err)
	}
	return d, err
}

/*
FormatHeader returns the header line declaring the attributes of
the given catalog.
*/
func FormatHeader(c feature.Catalog) string {
	tokens := make([]string, 0, c.Len())
	for _, a := range c.Attributes() {
		tokens = append(tokens, a.String())
	}
	return strings.Join(tokens, ",")
}

/*
Lines returns the lines of the text representation of a dataset,
header first.
*/
func Lines(d *dataset.Dataset) []string {
	lines := make([]string, 0, len(d.Examples)+1)
	lines = append(lines, FormatHeader(d.Catalog))
	for _, e := range d.Examples {
		lines = append(lines, e.String())
	}
	return lines
}

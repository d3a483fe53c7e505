/*
Package input reads unlabeled examples to classify from a stream.
*/
package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pbanos/tdidt/dataset"
	"github.com/pbanos/tdidt/feature"
)

/*
ParseLine takes a comma-separated line of attribute values and a
catalog and returns the unlabeled example it holds or an error if it
has not enough values or a numerical attribute value is not a finite number.
*/
func ParseLine(line string, c feature.Catalog) (dataset.Example, error) {
	values := strings.Split(line, ",")
	for i := range values {
		values[i] = strings.TrimSpace(values[i])
	}
	if len(values) < c.MaxID()+1 {
		return nil, fmt.Errorf("%d values are not enough for attributes %v", len(values), c)
	}
	for _, a := range c.Attributes() {
		if a.Kind != feature.Numerical {
			continue
		}
		if _, err := dataset.ParseNumber(values[a.ID]); err != nil {
			return nil, fmt.Errorf("attribute %s: %v", a.Name(), err)
		}
	}
	return dataset.Unlabeled(values), nil
}

/*
Read takes a context, an io.Reader, a catalog and a lambda function on an
integer and an example. It reads the reader line by line, skipping blank
lines, and calls the lambda with the index and the example parsed from
every line. Reading stops at the end of the reader, when the lambda
returns false or when it returns an error, which is then returned. Lines
that cannot be parsed are passed to reject, if not nil, and skipped; with
a nil reject the parsing error is returned.
*/
func Read(ctx context.Context, r io.Reader, c feature.Catalog, lambda func(int, dataset.Example) (bool, error), reject func(string, error)) error {
	scanner := bufio.NewScanner(r)
	var i int
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		e, err := ParseLine(line, c)
		if err != nil {
			if reject == nil {
				return fmt.Errorf("parsing example %q: %v", line, err)
			}
			reject(line, err)
			continue
		}
		ok, err := lambda(i, e)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		i++
	}
	return scanner.Err()
}

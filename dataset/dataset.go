package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"github.com/pbanos/tdidt/feature"
)

// Error is the type of the sentinel errors of the package.
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrEmptyDataset is returned when a dataset holds no examples.
const ErrEmptyDataset = Error("dataset has no examples")

/*
Dataset represents a set of examples along the catalog of
attributes that describes their fields.
*/
type Dataset struct {
	Catalog  feature.Catalog
	Examples []Example
}

/*
Validate takes the labels of the dataset and checks every example
against the catalog: each example must have a field for every
attribute plus the outcome, values for numerical attributes must
parse as numbers and outcomes must be one of the labels.
It returns ErrEmptyDataset if there are no examples.
*/
func (d *Dataset) Validate(labels Labels) error {
	if len(d.Examples) == 0 {
		return ErrEmptyDataset
	}
	width := -1
	for i, e := range d.Examples {
		if width < 0 {
			width = len(e)
		}
		if len(e) != width {
			return fmt.Errorf("example %d has %d fields, expected %d", i+1, len(e), width)
		}
		if err := ValidateExample(e, d.Catalog, labels); err != nil {
			return fmt.Errorf("example %d: %w", i+1, err)
		}
	}
	return nil
}

/*
ValidateExample checks a single example against a catalog and labels.
*/
func ValidateExample(e Example, c feature.Catalog, labels Labels) error {
	if len(e) < c.MaxID()+2 {
		return fmt.Errorf("%d fields are not enough for attributes %v and the outcome", len(e), c)
	}
	for _, a := range c.Attributes() {
		if a.Kind != feature.Numerical {
			continue
		}
		v, _ := e.Value(a.ID)
		if _, err := ParseNumber(v); err != nil {
			return fmt.Errorf("attribute %s: %v", a.Name(), err)
		}
	}
	if o := e.Outcome(); o != labels.Positive && o != labels.Negative {
		return fmt.Errorf("outcome %q is neither %q nor %q", o, labels.Positive, labels.Negative)
	}
	return nil
}

/*
ParseNumber returns the value of a numerical attribute field or an
error if it is not a finite number. NaN and infinities are rejected
as they cannot be ordered against thresholds.
*/
func ParseNumber(v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("value %q is not a finite number", v)
	}
	return f, nil
}

/*
Split takes a slice of examples, a percent and a source of randomness and
returns a shuffled copy of the examples split in two: the first percent of
them for training and the rest for testing. The given slice is not altered.
*/
func Split(examples []Example, percent int, rnd *rand.Rand) ([]Example, []Example, error) {
	if percent <= 0 || percent >= 100 {
		return nil, nil, fmt.Errorf("training percent must be between 1 and 99, got %d", percent)
	}
	shuffled := append([]Example(nil), examples...)
	rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	n := len(shuffled) * percent / 100
	return shuffled[:n], shuffled[n:], nil
}

package dataset

import "fmt"

/*
Labels holds the conventions of a dataset: the outcome values
for positive and negative examples and the marker a binary
attribute takes when it holds.
*/
type Labels struct {
	Positive string `yaml:"positive"`
	Negative string `yaml:"negative"`
	True     string `yaml:"true"`
}

// DefaultLabels returns the yes/no conventions.
func DefaultLabels() Labels {
	return Labels{Positive: "yes", Negative: "no", True: "yes"}
}

// Validate returns an error if any label is empty or the outcome labels match.
func (l Labels) Validate() error {
	if l.Positive == "" || l.Negative == "" || l.True == "" {
		return fmt.Errorf("labels must not be empty: %+v", l)
	}
	if l.Positive == l.Negative {
		return fmt.Errorf("positive and negative labels must differ, both are %q", l.Positive)
	}
	return nil
}

// IsPositive reports whether the outcome is the positive label.
func (l Labels) IsPositive(outcome string) bool {
	return outcome == l.Positive
}

/*
Merge returns the labels with any empty field filled in with
the corresponding field of the defaults.
*/
func (l Labels) Merge(defaults Labels) Labels {
	if l.Positive == "" {
		l.Positive = defaults.Positive
	}
	if l.Negative == "" {
		l.Negative = defaults.Negative
	}
	if l.True == "" {
		l.True = defaults.True
	}
	return l
}

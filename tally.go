package tdidt

import (
	"fmt"

	"github.com/pbanos/tdidt/dataset"
)

/*
Tally counts positive and negative outcomes of a group of examples,
optionally tagged with the category value they share. Counts only grow.
*/
type Tally struct {
	Positive int
	Negative int
	Category string
}

/*
Parse takes an outcome and the labels of the dataset and counts the
outcome as positive if it is the positive label, negative otherwise.
*/
func (t *Tally) Parse(outcome string, labels dataset.Labels) {
	if labels.IsPositive(outcome) {
		t.Positive++
	} else {
		t.Negative++
	}
}

// Merge returns a tally with the counts of both tallies summed and no category.
func (t Tally) Merge(o Tally) Tally {
	return Tally{Positive: t.Positive + o.Positive, Negative: t.Negative + o.Negative}
}

// Total returns the number of outcomes counted.
func (t Tally) Total() int {
	return t.Positive + t.Negative
}

/*
Majority returns the label with most outcomes on the tally.
Ties go to the negative label.
*/
func (t Tally) Majority(labels dataset.Labels) string {
	if t.Positive > t.Negative {
		return labels.Positive
	}
	return labels.Negative
}

func (t Tally) String() string {
	return fmt.Sprintf("%s +:%d -:%d", t.Category, t.Positive, t.Negative)
}

// tallyOutcomes counts the outcomes of the given examples.
func tallyOutcomes(examples []dataset.Example, labels dataset.Labels) Tally {
	var t Tally
	for _, e := range examples {
		t.Parse(e.Outcome(), labels)
	}
	return t
}

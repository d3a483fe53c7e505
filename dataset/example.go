package dataset

import (
	"fmt"
	"strings"
)

/*
Example is an ordered sequence of string fields. Fields are indexed
positionally by attribute ID and the last field holds the outcome.
Examples are never modified once read; partitioning only regroups them.
*/
type Example []string

// Outcome returns the last field of the example, or "" if it has no fields.
func (e Example) Outcome() string {
	if len(e) == 0 {
		return ""
	}
	return e[len(e)-1]
}

/*
Value returns the field for the attribute with the given ID or an error
if the example has no such field. The outcome field is never returned
as an attribute value.
*/
func (e Example) Value(id int) (string, error) {
	if id < 0 || id >= len(e)-1 {
		return "", fmt.Errorf("example %v has no value for attribute %d", e, id)
	}
	return e[id], nil
}

func (e Example) String() string {
	return strings.Join(e, ",")
}

/*
Unlabeled takes the attribute values of an example whose outcome is
unknown and returns an Example with an empty outcome, suitable for
classification.
*/
func Unlabeled(values []string) Example {
	return Example(append(append([]string(nil), values...), ""))
}

package tree

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set"
	"github.com/pbanos/tdidt/feature"
)

/*
TestValue is the value a node compares examples against. It is one of:
  - Marker: on binary attributes, the value that sends an example to the positive branch
  - Threshold: on numerical attributes, values less or equal to it go to the positive branch
  - CategorySet: on categorical attributes, members go to the positive branch
  - Label: on leaves, the outcome predicted
*/
type TestValue interface {
	fmt.Stringer
	isTestValue()
}

// Marker is the test value for binary attributes.
type Marker string

// Threshold is the test value for numerical attributes.
type Threshold float64

// Label is the value of a leaf.
type Label string

// CategorySet is the test value for categorical attributes.
type CategorySet struct {
	values mapset.Set
}

// NewCategorySet returns a CategorySet holding the given values.
func NewCategorySet(values ...string) CategorySet {
	s := mapset.NewThreadUnsafeSet()
	for _, v := range values {
		s.Add(v)
	}
	return CategorySet{s}
}

// Contains reports whether the value belongs to the set.
func (cs CategorySet) Contains(value string) bool {
	if cs.values == nil {
		return false
	}
	return cs.values.Contains(value)
}

// Len returns the number of values in the set.
func (cs CategorySet) Len() int {
	if cs.values == nil {
		return 0
	}
	return cs.values.Cardinality()
}

// Values returns the values in the set sorted.
func (cs CategorySet) Values() []string {
	var result []string
	if cs.values == nil {
		return result
	}
	for _, v := range cs.values.ToSlice() {
		result = append(result, v.(string))
	}
	sort.Strings(result)
	return result
}

func (Marker) isTestValue()      {}
func (Threshold) isTestValue()   {}
func (Label) isTestValue()       {}
func (CategorySet) isTestValue() {}

func (m Marker) String() string {
	return string(m)
}

func (t Threshold) String() string {
	return strconv.FormatFloat(float64(t), 'g', -1, 64)
}

func (l Label) String() string {
	return string(l)
}

func (cs CategorySet) String() string {
	return "{" + strings.Join(cs.Values(), ",") + "}"
}

/*
matches reports whether the test value is the one expected
for decisions on attributes of the given kind.
*/
func matches(v TestValue, k feature.Kind) bool {
	switch v.(type) {
	case Marker:
		return k == feature.Binary
	case Threshold:
		return k == feature.Numerical
	case CategorySet:
		return k == feature.Categorical
	}
	return false
}

package feature

import "fmt"

/*
Kind represents the type of values an attribute takes and thus
the way examples can be split on it.
*/
type Kind int

const (
	// Binary attributes take either the true marker or anything else.
	Binary Kind = iota
	// Categorical attributes take a value among an unordered set.
	Categorical
	// Numerical attributes take ordered, continuous values.
	Numerical
)

/*
Attribute represents a property of the examples that can be tested
on a decision node. Its ID is the position of its value on the
fields of an example. Two attributes are the same attribute when
they share ID.
*/
type Attribute struct {
	ID   int
	Kind Kind
}

/*
ParseKind takes a kind code as found on dataset headers ("b", "c" or "n")
or a kind name ("binary", "categorical" or "numerical") and returns the
corresponding Kind or an error if the code is unknown.
*/
func ParseKind(code string) (Kind, error) {
	switch code {
	case "b", "binary":
		return Binary, nil
	case "c", "categorical":
		return Categorical, nil
	case "n", "numerical":
		return Numerical, nil
	}
	return 0, fmt.Errorf("unknown attribute kind %q", code)
}

/*
ParseID takes the letter identifying an attribute on a dataset header
and returns its numeric ID: 'a' is 0, 'b' is 1 and so on.
*/
func ParseID(letter string) (int, error) {
	if len(letter) != 1 || letter[0] < 'a' || letter[0] > 'z' {
		return 0, fmt.Errorf("invalid attribute id %q: expected a single lowercase letter", letter)
	}
	return int(letter[0] - 'a'), nil
}

func (k Kind) String() string {
	switch k {
	case Binary:
		return "binary"
	case Categorical:
		return "categorical"
	case Numerical:
		return "numerical"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Code returns the one-letter code for the kind used on dataset headers.
func (k Kind) Code() string {
	return k.String()[:1]
}

/*
Name returns the letter identifying the attribute on dataset headers.
IDs beyond 'z' are rendered with their number.
*/
func (a Attribute) Name() string {
	if a.ID >= 0 && a.ID < 26 {
		return string(rune('a' + a.ID))
	}
	return fmt.Sprintf("#%d", a.ID)
}

// Equal reports whether both attributes share ID.
func (a Attribute) Equal(o Attribute) bool {
	return a.ID == o.ID
}

func (a Attribute) String() string {
	return fmt.Sprintf("%s:%s", a.Name(), a.Kind.Code())
}

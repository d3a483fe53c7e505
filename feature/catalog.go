package feature

import "fmt"

/*
Catalog is an ordered collection of attributes available to split
examples on. The order of the attributes is the order in which they
are evaluated, so it decides which attribute wins ties.

Catalogs behave as values: Remove returns a new catalog and never
alters the receiver, so a catalog handed to a branch of a tree can
not be changed by its sibling.
*/
type Catalog struct {
	attributes []Attribute
}

/*
NewCatalog takes a list of attributes and returns a catalog holding
them in the given order. It returns an error if two attributes share ID.
*/
func NewCatalog(attributes ...Attribute) (Catalog, error) {
	seen := make(map[int]bool, len(attributes))
	for _, a := range attributes {
		if a.ID < 0 {
			return Catalog{}, fmt.Errorf("attribute %v has negative id", a)
		}
		if seen[a.ID] {
			return Catalog{}, fmt.Errorf("attribute %s declared twice", a.Name())
		}
		seen[a.ID] = true
	}
	return Catalog{append([]Attribute(nil), attributes...)}, nil
}

// Clone returns an independent copy of the catalog.
func (c Catalog) Clone() Catalog {
	return Catalog{append([]Attribute(nil), c.attributes...)}
}

/*
Remove returns a catalog with the same attributes in the same order
except the given one. If the attribute is not on the catalog an
equivalent copy is returned.
*/
func (c Catalog) Remove(a Attribute) Catalog {
	result := make([]Attribute, 0, len(c.attributes))
	for _, ca := range c.attributes {
		if !ca.Equal(a) {
			result = append(result, ca)
		}
	}
	return Catalog{result}
}

// Attributes returns a copy of the attributes on the catalog in order.
func (c Catalog) Attributes() []Attribute {
	return append([]Attribute(nil), c.attributes...)
}

// Len returns the number of attributes on the catalog.
func (c Catalog) Len() int {
	return len(c.attributes)
}

// Get returns the attribute with the given ID and whether it was found.
func (c Catalog) Get(id int) (Attribute, bool) {
	for _, a := range c.attributes {
		if a.ID == id {
			return a, true
		}
	}
	return Attribute{}, false
}

// MaxID returns the highest attribute ID on the catalog or -1 if empty.
func (c Catalog) MaxID() int {
	max := -1
	for _, a := range c.attributes {
		if a.ID > max {
			max = a.ID
		}
	}
	return max
}

func (c Catalog) String() string {
	return fmt.Sprintf("%v", c.attributes)
}

package crypto

import "strings"

// Category identifies one of the fixed character sets a password can draw from.
type Category uint8

const (
	Lowercase Category = 1 << iota
	Uppercase
	Numeric
	Special
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numericChars   = "0123456789"
	specialChars   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Categories lists every category in canonical order. Pools and required
// characters are always assembled in this order.
var Categories = []Category{Lowercase, Uppercase, Numeric, Special}

// Charset returns the characters belonging to the category.
func (c Category) Charset() string {
	switch c {
	case Lowercase:
		return lowercaseChars
	case Uppercase:
		return uppercaseChars
	case Numeric:
		return numericChars
	case Special:
		return specialChars
	}
	return ""
}

func (c Category) String() string {
	switch c {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Numeric:
		return "numeric"
	case Special:
		return "special"
	}
	return "unknown"
}

// CategorySet is a set of categories.
type CategorySet uint8

// NewCategorySet builds a set from the given categories.
func NewCategorySet(cats ...Category) CategorySet {
	var s CategorySet
	for _, c := range cats {
		s = s.With(c)
	}
	return s
}

// AllCategories returns a set with every category enabled.
func AllCategories() CategorySet {
	return NewCategorySet(Categories...)
}

// With returns a copy of s that also contains c.
func (s CategorySet) With(c Category) CategorySet {
	return s | CategorySet(c)
}

// Has reports whether c is in s.
func (s CategorySet) Has(c Category) bool {
	return s&CategorySet(c) != 0
}

// Empty reports whether no category is enabled.
func (s CategorySet) Empty() bool {
	return s.Count() == 0
}

// Count returns the number of enabled categories.
func (s CategorySet) Count() int {
	n := 0
	for _, c := range Categories {
		if s.Has(c) {
			n++
		}
	}
	return n
}

// List returns the enabled categories in canonical order.
func (s CategorySet) List() []Category {
	var out []Category
	for _, c := range Categories {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// String renders the set as a comma-separated list, e.g. "lowercase,numeric".
func (s CategorySet) String() string {
	names := make([]string, 0, len(Categories))
	for _, c := range s.List() {
		names = append(names, c.String())
	}
	return strings.Join(names, ",")
}

// ParseCategorySet is the inverse of CategorySet.String. Unknown names are ignored.
func ParseCategorySet(s string) CategorySet {
	var set CategorySet
	for _, name := range strings.Split(s, ",") {
		for _, c := range Categories {
			if strings.TrimSpace(name) == c.String() {
				set = set.With(c)
			}
		}
	}
	return set
}

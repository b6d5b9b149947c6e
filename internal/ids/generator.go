package ids

import (
	"errors"
	"fmt"
)

var ErrInvalidCategory = errors.New("invalid id category")

// Category selects which counter an identifier is drawn from.
type Category string

const (
	Patient     Category = "P"
	Doctor      Category = "D"
	Appointment Category = "A"
)

// Generator hands out P001, D001, A001 style identifiers. Counters start at
// zero, are incremented before formatting and are never reused. It is not
// safe for concurrent use; the registry serialises access.
type Generator struct {
	counters map[Category]int
}

func NewGenerator() *Generator {
	return &Generator{
		counters: map[Category]int{
			Patient:     0,
			Doctor:      0,
			Appointment: 0,
		},
	}
}

// Next returns the next identifier for the category. The numeric part is
// padded to three digits and widens past 999.
func (g *Generator) Next(c Category) (string, error) {
	n, ok := g.counters[c]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, string(c))
	}

	n++
	g.counters[c] = n

	return fmt.Sprintf("%s%03d", c, n), nil
}

// Issued reports how many identifiers have been handed out for the category.
func (g *Generator) Issued(c Category) int {
	return g.counters[c]
}

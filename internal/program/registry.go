// Package program holds the static registry mapping calculator program
// identifiers to display labels, categories, and priority tiers. The
// registry is versioned by tax year and loaded explicitly, so category and
// priority for a given program are fixed by configuration and never derived
// from calculator values.
package program

// Category classifies a program for aggregation and display.
type Category string

const (
	CategoryTax          Category = "tax"
	CategoryCredit       Category = "credit"
	CategoryBenefit      Category = "benefit"
	CategoryStateCredit  Category = "state_credit"
	CategoryStateBenefit Category = "state_benefit"
)

// CountsAsTax reports whether amounts in this category add to total tax.
func (c Category) CountsAsTax() bool {
	return c == CategoryTax
}

// CountsAsCredit reports whether amounts in this category add to total
// credits. State credits roll into the same total as federal ones.
func (c Category) CountsAsCredit() bool {
	return c == CategoryCredit || c == CategoryStateCredit
}

// CountsAsBenefit reports whether amounts in this category add to total
// benefits. State benefits roll into the same total as federal ones.
func (c Category) CountsAsBenefit() bool {
	return c == CategoryBenefit || c == CategoryStateBenefit
}

// Priority tiers: tier 1 metrics are always shown by collaborators, tier 2
// on demand. A presentation concern only; the engine never filters on it.
const (
	PriorityPrimary   = 1
	PrioritySecondary = 2
)

// Program is one registry entry.
type Program struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Category Category `json:"category"`
	Priority int      `json:"priority"`
}

// Registry is an immutable, ordered view of the program table for one tax
// year. Construct with NewForYear and pass into components; never share
// mutable state through it.
type Registry struct {
	year     int
	programs []Program
	index    map[string]int
}

// NewForYear loads the registry for the given tax year. Years without a
// dedicated table fall back to the most recent earlier one.
func NewForYear(year int) *Registry {
	table := tableForYear(year)
	r := &Registry{
		year:     year,
		programs: table,
		index:    make(map[string]int, len(table)),
	}
	for i, p := range table {
		r.index[p.ID] = i
	}
	return r
}

// Year is the tax year this registry was loaded for.
func (r *Registry) Year() int { return r.year }

// Programs returns the registry entries in their fixed display order.
func (r *Registry) Programs() []Program {
	out := make([]Program, len(r.programs))
	copy(out, r.programs)
	return out
}

// Len is the number of registered programs.
func (r *Registry) Len() int { return len(r.programs) }

// Lookup returns the entry for a program identifier.
func (r *Registry) Lookup(id string) (Program, bool) {
	i, ok := r.index[id]
	if !ok {
		return Program{}, false
	}
	return r.programs[i], true
}

func tableForYear(year int) []Program {
	best := baseYear
	for y := range tables {
		if y <= year && y > best {
			best = y
		}
	}
	return tables[best]
}

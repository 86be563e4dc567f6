// Package household defines the immutable family model fed into the
// tax-benefit calculator. Households are constructed once per request and
// never mutated; every life-event transform returns a fresh copy.
package household

import (
	"github.com/crossroads/crossroads-api/internal/validation"
)

// FilingStatus is the federal tax filing status of a household.
type FilingStatus string

const (
	Single            FilingStatus = "single"
	MarriedJointly    FilingStatus = "married_jointly"
	MarriedSeparately FilingStatus = "married_separately"
	HeadOfHousehold   FilingStatus = "head_of_household"
)

// Valid reports whether the filing status is one of the recognized values.
func (fs FilingStatus) Valid() bool {
	switch fs {
	case Single, MarriedJointly, MarriedSeparately, HeadOfHousehold:
		return true
	}
	return false
}

// Married reports whether the filing status is a married variant.
func (fs FilingStatus) Married() bool {
	return fs == MarriedJointly || fs == MarriedSeparately
}

// Person is one member of a household. Income streams are annual amounts.
type Person struct {
	Age                      int     `json:"age"`
	EmploymentIncome         float64 `json:"employmentIncome"`
	SelfEmploymentIncome     float64 `json:"selfEmploymentIncome"`
	SocialSecurityRetirement float64 `json:"socialSecurityRetirement"`
	UnemploymentCompensation float64 `json:"unemploymentCompensation"`
	IsPregnant               bool    `json:"isPregnant"`
	HasESI                   bool    `json:"hasESI"`
}

// GrossIncome is the sum of all of the person's income streams.
func (p Person) GrossIncome() float64 {
	return p.EmploymentIncome + p.SelfEmploymentIncome +
		p.SocialSecurityRetirement + p.UnemploymentCompensation
}

// Household is a family unit for one tax year. The Spouse pointer is set
// exactly when the filing status is a married variant. Children holds the
// dependents in a stable order; an aging-out transform may push a member's
// age past 17, in which case per-program eligibility is resolved by the
// calculator, not here.
type Household struct {
	State        string       `json:"state"`
	Year         int          `json:"year"`
	FilingStatus FilingStatus `json:"filingStatus"`
	Primary      Person       `json:"primary"`
	Spouse       *Person      `json:"spouse,omitempty"`
	Children     []Person     `json:"children"`
}

// Params carries the caller-supplied household fields into New. Spouse
// fields are pointers so that "missing" is distinguishable from zero.
type Params struct {
	State        string
	Year         int
	FilingStatus FilingStatus
	Age          int
	Income       float64
	HasESI       bool
	SpouseAge    *int
	SpouseIncome *float64
	SpouseHasESI bool
	ChildAges    []int
}

// DefaultYear is the tax year assumed when the caller does not supply one.
const DefaultYear = 2024

// New validates params and builds a well-formed household. All failures are
// reported together as validation errors naming the offending field.
func New(p Params) (Household, error) {
	var errs validation.Errors

	if !IsValidState(p.State) {
		errs = append(errs, validation.Newf("state", "unrecognized state code %q", p.State))
	}
	if !p.FilingStatus.Valid() {
		errs = append(errs, validation.Newf("filingStatus", "unrecognized filing status %q", p.FilingStatus))
	}
	if p.Age < 18 {
		errs = append(errs, validation.Newf("age", "primary filer must be at least 18, got %d", p.Age))
	}
	if p.Income < 0 {
		errs = append(errs, validation.Newf("income", "income cannot be negative, got %.2f", p.Income))
	}

	married := p.FilingStatus.Married()
	if married {
		if p.SpouseAge == nil {
			errs = append(errs, validation.Newf("spouseAge", "required for filing status %q", p.FilingStatus))
		} else if *p.SpouseAge < 18 {
			errs = append(errs, validation.Newf("spouseAge", "spouse must be at least 18, got %d", *p.SpouseAge))
		}
		if p.SpouseIncome == nil {
			errs = append(errs, validation.Newf("spouseIncome", "required for filing status %q", p.FilingStatus))
		} else if *p.SpouseIncome < 0 {
			errs = append(errs, validation.Newf("spouseIncome", "income cannot be negative, got %.2f", *p.SpouseIncome))
		}
	} else if p.SpouseAge != nil || p.SpouseIncome != nil {
		errs = append(errs, validation.Newf("filingStatus", "spouse fields supplied for non-married filing status %q", p.FilingStatus))
	}

	for i, age := range p.ChildAges {
		if age < 0 || age > 17 {
			errs = append(errs, validation.Newf("childAges", "child %d age must be between 0 and 17, got %d", i, age))
		}
	}

	if err := errs.ErrOrNil(); err != nil {
		return Household{}, err
	}

	year := p.Year
	if year == 0 {
		year = DefaultYear
	}

	h := Household{
		State:        p.State,
		Year:         year,
		FilingStatus: p.FilingStatus,
		Primary: Person{
			Age:              p.Age,
			EmploymentIncome: p.Income,
			HasESI:           p.HasESI,
		},
	}
	if married {
		h.Spouse = &Person{
			Age:              *p.SpouseAge,
			EmploymentIncome: *p.SpouseIncome,
			HasESI:           p.SpouseHasESI,
		}
	}
	for _, age := range p.ChildAges {
		h.Children = append(h.Children, Person{Age: age})
	}
	return h, nil
}

// Clone returns a deep copy. Transforms clone before touching anything so
// the input household is always left intact.
func (h Household) Clone() Household {
	out := h
	if h.Spouse != nil {
		spouse := *h.Spouse
		out.Spouse = &spouse
	}
	if h.Children != nil {
		out.Children = make([]Person, len(h.Children))
		copy(out.Children, h.Children)
	}
	return out
}

// GrossIncome is the combined annual income of every member across all
// streams.
func (h Household) GrossIncome() float64 {
	total := h.Primary.GrossIncome()
	if h.Spouse != nil {
		total += h.Spouse.GrossIncome()
	}
	for _, c := range h.Children {
		total += c.GrossIncome()
	}
	return total
}

// EmploymentIncome is the combined employment income of the adult filers.
func (h Household) EmploymentIncome() float64 {
	total := h.Primary.EmploymentIncome
	if h.Spouse != nil {
		total += h.Spouse.EmploymentIncome
	}
	return total
}

// WithPrimaryIncome returns a copy with the primary filer's employment
// income replaced. Used by income sweeps.
func (h Household) WithPrimaryIncome(income float64) Household {
	out := h.Clone()
	out.Primary.EmploymentIncome = income
	return out
}

// Size is the number of household members.
func (h Household) Size() int {
	n := 1 + len(h.Children)
	if h.Spouse != nil {
		n++
	}
	return n
}

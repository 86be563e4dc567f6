package lifeevent

import (
	"fmt"

	"github.com/crossroads/crossroads-api/internal/household"
	"github.com/crossroads/crossroads-api/internal/validation"
)

// NewChild adds one or more newborns to the household.
type NewChild struct {
	NumBabies int `json:"numBabies"`
}

func (e *NewChild) setDefaults() {
	if e.NumBabies == 0 {
		e.NumBabies = 1
	}
}

func (e *NewChild) Type() string { return TypeNewChild }
func (e *NewChild) Name() string { return "New Child" }

func (e *NewChild) Description() string {
	if e.NumBabies > 1 {
		return fmt.Sprintf("Adding %d new children to the household", e.NumBabies)
	}
	return "Adding a new child to the household"
}

func (e *NewChild) Validate(h household.Household) error {
	var errs validation.Errors
	if e.NumBabies < 1 || e.NumBabies > 3 {
		errs = append(errs, validation.Newf("numBabies", "must be between 1 and 3, got %d", e.NumBabies))
	}
	return errs.ErrOrNil()
}

func (e *NewChild) Apply(h household.Household) household.Household {
	out := h.Clone()
	for i := 0; i < e.NumBabies; i++ {
		out.Children = append(out.Children, household.Person{Age: 0})
	}
	return out
}

// Pregnancy marks the primary filer as pregnant. No demographic change
// happens; the flag unlocks pregnancy-linked eligibility in the calculator
// (several states raise Medicaid income limits during pregnancy).
type Pregnancy struct {
	NumBabies int `json:"numBabies"`
}

func (e *Pregnancy) setDefaults() {
	if e.NumBabies == 0 {
		e.NumBabies = 1
	}
}

func (e *Pregnancy) Type() string { return TypePregnancy }
func (e *Pregnancy) Name() string { return "Pregnancy" }

func (e *Pregnancy) Description() string {
	return "Becoming pregnant (triggers pregnancy-linked coverage eligibility)"
}

func (e *Pregnancy) Validate(h household.Household) error {
	var errs validation.Errors
	if e.NumBabies < 1 {
		errs = append(errs, validation.Newf("numBabies", "must be at least 1, got %d", e.NumBabies))
	}
	if h.Primary.IsPregnant {
		errs = append(errs, validation.Newf("lifeEvent", "primary filer is already pregnant"))
	}
	return errs.ErrOrNil()
}

func (e *Pregnancy) Apply(h household.Household) household.Household {
	out := h.Clone()
	out.Primary.IsPregnant = true
	return out
}

// Marriage merges a single household with an incoming spouse (and the
// spouse's children) into one joint household.
type Marriage struct {
	SpouseAge       int     `json:"spouseAge"`
	SpouseIncome    float64 `json:"spouseIncome"`
	SpouseHasESI    bool    `json:"spouseHasESI"`
	SpouseChildAges []int   `json:"spouseChildAges"`
}

func (e *Marriage) Type() string { return TypeMarriage }
func (e *Marriage) Name() string { return "Marriage" }

func (e *Marriage) Description() string {
	return "Getting married and combining households"
}

func (e *Marriage) Validate(h household.Household) error {
	var errs validation.Errors
	if h.Spouse != nil {
		errs = append(errs, validation.Newf("lifeEvent", "household already has a spouse"))
	}
	if e.SpouseAge < 18 {
		errs = append(errs, validation.Newf("spouseAge", "spouse must be at least 18, got %d", e.SpouseAge))
	}
	if e.SpouseIncome < 0 {
		errs = append(errs, validation.Newf("spouseIncome", "income cannot be negative, got %.2f", e.SpouseIncome))
	}
	for i, age := range e.SpouseChildAges {
		if age < 0 || age > 17 {
			errs = append(errs, validation.Newf("spouseChildAges", "child %d age must be between 0 and 17, got %d", i, age))
		}
	}
	return errs.ErrOrNil()
}

func (e *Marriage) Apply(h household.Household) household.Household {
	out := h.Clone()
	out.FilingStatus = household.MarriedJointly
	out.Spouse = &household.Person{
		Age:              e.SpouseAge,
		EmploymentIncome: e.SpouseIncome,
		HasESI:           e.SpouseHasESI,
	}
	for _, age := range e.SpouseChildAges {
		out.Children = append(out.Children, household.Person{Age: age})
	}
	return out
}

// Divorce splits a joint household back into a single-filer household. The
// first ChildrenStaying children remain; the rest leave with the former
// spouse and are no longer represented here.
type Divorce struct {
	ChildrenStaying int `json:"childrenStaying"`
}

func (e *Divorce) Type() string { return TypeDivorce }
func (e *Divorce) Name() string { return "Divorce" }

func (e *Divorce) Description() string {
	return "Getting divorced and separating households"
}

func (e *Divorce) Validate(h household.Household) error {
	var errs validation.Errors
	if h.Spouse == nil {
		errs = append(errs, validation.Newf("lifeEvent", "household has no spouse to divorce"))
	}
	if e.ChildrenStaying < 0 || e.ChildrenStaying > len(h.Children) {
		errs = append(errs, validation.Newf("childrenStaying", "must be between 0 and %d, got %d", len(h.Children), e.ChildrenStaying))
	}
	return errs.ErrOrNil()
}

func (e *Divorce) Apply(h household.Household) household.Household {
	out := h.Clone()
	out.Spouse = nil
	out.Children = out.Children[:e.ChildrenStaying]
	if e.ChildrenStaying > 0 {
		out.FilingStatus = household.HeadOfHousehold
	} else {
		out.FilingStatus = household.Single
	}
	return out
}

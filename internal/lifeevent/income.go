package lifeevent

import (
	"fmt"

	"github.com/crossroads/crossroads-api/internal/household"
	"github.com/crossroads/crossroads-api/internal/validation"
)

// weeksPerYear annualizes weekly unemployment benefits.
const weeksPerYear = 52

// minRetirementAge is the earliest age Social Security retirement benefits
// can be claimed.
const minRetirementAge = 62

// JobChange overrides the primary filer's employment income, and optionally
// the spouse's.
type JobChange struct {
	NewIncome       *float64 `json:"newIncome"`
	NewSpouseIncome *float64 `json:"newSpouseIncome"`
}

func (e *JobChange) Type() string { return TypeJobChange }
func (e *JobChange) Name() string { return "Job Change" }

func (e *JobChange) Description() string {
	if e.NewIncome != nil {
		return fmt.Sprintf("Changing job to earn $%.0f", *e.NewIncome)
	}
	return "Changing jobs"
}

func (e *JobChange) Validate(h household.Household) error {
	var errs validation.Errors
	if e.NewIncome == nil && e.NewSpouseIncome == nil {
		errs = append(errs, validation.Newf("newIncome", "at least one of newIncome or newSpouseIncome is required"))
	}
	if e.NewIncome != nil && *e.NewIncome < 0 {
		errs = append(errs, validation.Newf("newIncome", "income cannot be negative, got %.2f", *e.NewIncome))
	}
	if e.NewSpouseIncome != nil {
		if *e.NewSpouseIncome < 0 {
			errs = append(errs, validation.Newf("newSpouseIncome", "income cannot be negative, got %.2f", *e.NewSpouseIncome))
		}
		if h.Spouse == nil {
			errs = append(errs, validation.Newf("newSpouseIncome", "household has no spouse"))
		}
	}
	return errs.ErrOrNil()
}

func (e *JobChange) Apply(h household.Household) household.Household {
	out := h.Clone()
	if e.NewIncome != nil {
		out.Primary.EmploymentIncome = *e.NewIncome
	}
	if e.NewSpouseIncome != nil && out.Spouse != nil {
		out.Spouse.EmploymentIncome = *e.NewSpouseIncome
	}
	return out
}

// Unemployment zeroes a filer's employment income and replaces it with
// annualized unemployment compensation as a distinct income stream.
type Unemployment struct {
	WeeklyBenefit float64 `json:"weeklyBenefit"`
	Who           string  `json:"who"`
}

func (e *Unemployment) setDefaults() {
	if e.Who == "" {
		e.Who = WhoPrimary
	}
}

func (e *Unemployment) Type() string { return TypeUnemployment }
func (e *Unemployment) Name() string { return "Unemployment" }

func (e *Unemployment) Description() string {
	return "Losing a job and becoming unemployed"
}

func (e *Unemployment) Validate(h household.Household) error {
	var errs validation.Errors
	if e.WeeklyBenefit < 0 {
		errs = append(errs, validation.Newf("weeklyBenefit", "cannot be negative, got %.2f", e.WeeklyBenefit))
	}
	switch e.Who {
	case WhoPrimary:
		if h.Primary.EmploymentIncome == 0 {
			errs = append(errs, validation.Newf("who", "primary filer has no employment income to lose"))
		}
	case WhoSpouse:
		if h.Spouse == nil {
			errs = append(errs, validation.Newf("who", "household has no spouse"))
		} else if h.Spouse.EmploymentIncome == 0 {
			errs = append(errs, validation.Newf("who", "spouse has no employment income to lose"))
		}
	default:
		errs = append(errs, validation.Newf("who", "must be %q or %q, got %q", WhoPrimary, WhoSpouse, e.Who))
	}
	return errs.ErrOrNil()
}

func (e *Unemployment) Apply(h household.Household) household.Household {
	out := h.Clone()
	annual := e.WeeklyBenefit * weeksPerYear
	switch e.Who {
	case WhoSpouse:
		out.Spouse.EmploymentIncome = 0
		out.Spouse.UnemploymentCompensation = annual
	default:
		out.Primary.EmploymentIncome = 0
		out.Primary.UnemploymentCompensation = annual
	}
	return out
}

// Retirement replaces the primary filer's employment income with Social
// Security retirement benefits, keeping any specified partial employment.
// A filer younger than the minimum claiming age is advanced to it.
type Retirement struct {
	SocialSecurity float64 `json:"socialSecurity"`
	PartialIncome  float64 `json:"partialIncome"`
}

func (e *Retirement) Type() string { return TypeRetirement }
func (e *Retirement) Name() string { return "Retirement" }

func (e *Retirement) Description() string {
	return fmt.Sprintf("Retiring with $%.0f annual Social Security", e.SocialSecurity)
}

func (e *Retirement) Validate(h household.Household) error {
	var errs validation.Errors
	if e.SocialSecurity < 0 {
		errs = append(errs, validation.Newf("socialSecurity", "cannot be negative, got %.2f", e.SocialSecurity))
	}
	if e.PartialIncome < 0 {
		errs = append(errs, validation.Newf("partialIncome", "cannot be negative, got %.2f", e.PartialIncome))
	}
	return errs.ErrOrNil()
}

func (e *Retirement) Apply(h household.Household) household.Household {
	out := h.Clone()
	out.Primary.EmploymentIncome = e.PartialIncome
	out.Primary.SocialSecurityRetirement = e.SocialSecurity
	if out.Primary.Age < minRetirementAge {
		out.Primary.Age = minRetirementAge
	}
	return out
}

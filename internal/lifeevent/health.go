package lifeevent

import (
	"fmt"

	"github.com/crossroads/crossroads-api/internal/household"
	"github.com/crossroads/crossroads-api/internal/validation"
)

// Targets for events that apply to a specific adult filer.
const (
	WhoPrimary = "primary"
	WhoSpouse  = "spouse"
	WhoBoth    = "both"
)

// medicareAge is the Medicare eligibility threshold.
const medicareAge = 65

// Aging-out thresholds. Which programs cut off at each age is resolved by
// the calculator, not by this transform.
const (
	AgingOutDependent18 = 18
	AgingOutTaxCredit19 = 19
	AgingOutInsurance26 = 26
)

// MedicareTransition advances the primary filer to the Medicare eligibility
// age without altering any income stream.
type MedicareTransition struct{}

func (e *MedicareTransition) Type() string { return TypeMedicareTransition }
func (e *MedicareTransition) Name() string { return "Medicare Transition" }

func (e *MedicareTransition) Description() string {
	return "Turning 65 and becoming eligible for Medicare"
}

func (e *MedicareTransition) Validate(h household.Household) error {
	var errs validation.Errors
	if h.Primary.Age >= medicareAge {
		errs = append(errs, validation.Newf("lifeEvent", "primary filer is already %d or older", medicareAge))
	}
	return errs.ErrOrNil()
}

func (e *MedicareTransition) Apply(h household.Household) household.Household {
	out := h.Clone()
	out.Primary.Age = medicareAge
	return out
}

// ChildAgingOut advances one child to a program age threshold to show the
// impact of losing the eligibility tied to it.
type ChildAgingOut struct {
	ChildIndex int `json:"childIndex"`
	Threshold  int `json:"threshold"`
}

func (e *ChildAgingOut) setDefaults() {
	if e.Threshold == 0 {
		e.Threshold = AgingOutDependent18
	}
}

func (e *ChildAgingOut) Type() string { return TypeChildAgingOut }
func (e *ChildAgingOut) Name() string { return "Child Aging Out" }

func (e *ChildAgingOut) Description() string {
	switch e.Threshold {
	case AgingOutInsurance26:
		return fmt.Sprintf("Child turning %d (loses dependent health coverage)", e.Threshold)
	case AgingOutTaxCredit19:
		return fmt.Sprintf("Child turning %d (loses child tax credit eligibility)", e.Threshold)
	default:
		return fmt.Sprintf("Child turning %d (loses dependent status)", e.Threshold)
	}
}

func (e *ChildAgingOut) Validate(h household.Household) error {
	var errs validation.Errors
	switch e.Threshold {
	case AgingOutDependent18, AgingOutTaxCredit19, AgingOutInsurance26:
	default:
		errs = append(errs, validation.Newf("threshold", "must be one of 18, 19, 26, got %d", e.Threshold))
	}
	if e.ChildIndex < 0 || e.ChildIndex >= len(h.Children) {
		errs = append(errs, validation.Newf("childIndex", "household has %d children, got index %d", len(h.Children), e.ChildIndex))
	} else if h.Children[e.ChildIndex].Age >= e.Threshold {
		errs = append(errs, validation.Newf("childIndex", "child is already %d or older", e.Threshold))
	}
	return errs.ErrOrNil()
}

func (e *ChildAgingOut) Apply(h household.Household) household.Household {
	out := h.Clone()
	out.Children[e.ChildIndex].Age = e.Threshold
	return out
}

// LosingESI drops employer-sponsored health insurance for one or both adult
// filers, which can open up marketplace subsidies or Medicaid.
type LosingESI struct {
	Who string `json:"who"`
}

func (e *LosingESI) setDefaults() {
	if e.Who == "" {
		e.Who = WhoPrimary
	}
}

func (e *LosingESI) Type() string { return TypeLosingESI }
func (e *LosingESI) Name() string { return "Losing Health Insurance" }

func (e *LosingESI) Description() string {
	switch e.Who {
	case WhoSpouse:
		return "Spouse losing employer-sponsored health insurance"
	case WhoBoth:
		return "Both filers losing employer-sponsored health insurance"
	default:
		return "Losing employer-sponsored health insurance"
	}
}

func (e *LosingESI) Validate(h household.Household) error {
	var errs validation.Errors
	switch e.Who {
	case WhoPrimary:
		if !h.Primary.HasESI {
			errs = append(errs, validation.Newf("who", "primary filer has no employer-sponsored insurance to lose"))
		}
	case WhoSpouse, WhoBoth:
		if h.Spouse == nil {
			errs = append(errs, validation.Newf("who", "household has no spouse"))
		} else {
			if e.Who == WhoSpouse && !h.Spouse.HasESI {
				errs = append(errs, validation.Newf("who", "spouse has no employer-sponsored insurance to lose"))
			}
			if e.Who == WhoBoth && !h.Primary.HasESI && !h.Spouse.HasESI {
				errs = append(errs, validation.Newf("who", "neither filer has employer-sponsored insurance to lose"))
			}
		}
	default:
		errs = append(errs, validation.Newf("who", "must be %q, %q or %q, got %q", WhoPrimary, WhoSpouse, WhoBoth, e.Who))
	}
	return errs.ErrOrNil()
}

func (e *LosingESI) Apply(h household.Household) household.Household {
	out := h.Clone()
	if e.Who == WhoPrimary || e.Who == WhoBoth {
		out.Primary.HasESI = false
	}
	if (e.Who == WhoSpouse || e.Who == WhoBoth) && out.Spouse != nil {
		out.Spouse.HasESI = false
	}
	return out
}

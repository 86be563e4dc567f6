package lifeevent

import (
	"fmt"

	"github.com/crossroads/crossroads-api/internal/household"
	"github.com/crossroads/crossroads-api/internal/validation"
)

// Move relocates the household to another state, swapping out the state
// tax and benefit landscape.
type Move struct {
	NewState string `json:"newState"`
}

func (e *Move) Type() string { return TypeMove }
func (e *Move) Name() string { return "Move" }

func (e *Move) Description() string {
	return fmt.Sprintf("Moving to %s", e.NewState)
}

func (e *Move) Validate(h household.Household) error {
	var errs validation.Errors
	if !household.IsValidState(e.NewState) {
		errs = append(errs, validation.Newf("newState", "unrecognized state code %q", e.NewState))
	} else if e.NewState == h.State {
		errs = append(errs, validation.Newf("newState", "new state is the same as the current state %q", h.State))
	}
	return errs.ErrOrNil()
}

func (e *Move) Apply(h household.Household) household.Household {
	out := h.Clone()
	out.State = e.NewState
	return out
}

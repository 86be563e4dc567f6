// Package calculator wraps the external tax-benefit calculation engine. The
// engine is an opaque collaborator: it takes a household snapshot for one
// tax year and returns the per-program dollar breakdown. All retry policy
// lives with the caller.
package calculator

import (
	"context"
	"fmt"

	"github.com/crossroads/crossroads-api/internal/household"
)

//go:generate mockgen -source=calculator.go -destination=../mocks/calculator_mock.go -package=mocks

// Breakdown maps program identifiers to annual dollar amounts for one
// household snapshot.
type Breakdown map[string]float64

// Calculator computes the per-program breakdown for a household.
type Calculator interface {
	Compute(ctx context.Context, h household.Household) (Breakdown, error)
}

// Func adapts a plain function to the Calculator interface.
type Func func(ctx context.Context, h household.Household) (Breakdown, error)

// Compute implements Calculator.
func (f Func) Compute(ctx context.Context, h household.Household) (Breakdown, error) {
	return f(ctx, h)
}

// CalculationError means the calculator rejected the input, for example an
// unsupported household, program, or state combination. Rejections are tied
// to the inputs and do not heal on their own.
type CalculationError struct {
	Status int
	Reason string
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("calculation rejected (status %d): %s", e.Status, e.Reason)
}

// TimeoutError means the calculator did not answer in time or was
// temporarily unavailable. Worth retrying with identical inputs.
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("calculator unavailable: %v", e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

package simulation

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/crossroads/crossroads-api/internal/calculator"
	"github.com/crossroads/crossroads-api/internal/household"
	"github.com/crossroads/crossroads-api/internal/lifeevent"
	"github.com/crossroads/crossroads-api/internal/mocks"
	"github.com/crossroads/crossroads-api/internal/program"
	"github.com/crossroads/crossroads-api/internal/validation"
)

func newTestService(calc calculator.Calculator, opts ...Option) *Service {
	return NewService(calc, program.NewForYear(2024), zap.NewNop(), opts...)
}

func TestSimulatePairsResultsBySnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	calc := mocks.NewMockCalculator(ctrl)

	// The before and after households differ only in income, so the stub
	// keys its answer off that to prove results are paired by snapshot and
	// not by completion order.
	calc.EXPECT().Compute(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, h household.Household) (calculator.Breakdown, error) {
			if h.Primary.EmploymentIncome == 30000 {
				return calculator.Breakdown{"income_tax": 1500, "snap": 4000}, nil
			}
			return calculator.Breakdown{"income_tax": 3800, "snap": 0}, nil
		})

	svc := newTestService(calc)
	ev, err := lifeevent.Decode("job_change", []byte(`{"newIncome": 45000}`))
	require.NoError(t, err)

	result, err := svc.Simulate(context.Background(), testFiler(30000), ev)
	require.NoError(t, err)

	assert.Equal(t, 30000.0, result.Before.GrossIncome)
	assert.Equal(t, 45000.0, result.After.GrossIncome)
	assert.Equal(t, 1500.0, result.Before.TotalTax)
	assert.Equal(t, 3800.0, result.After.TotalTax)
	assert.Equal(t, result.Before.GrossIncome-result.Before.TotalTax+result.Before.TotalBenefits+result.Before.TotalCredits, result.Before.NetIncome)
	assert.Equal(t, result.After.GrossIncome-result.After.TotalTax+result.After.TotalBenefits+result.After.TotalCredits, result.After.NetIncome)
}

func TestSimulateNewChildUnlocksDependentCredit(t *testing.T) {
	calc := calculator.Func(func(_ context.Context, h household.Household) (calculator.Breakdown, error) {
		out := calculator.Breakdown{"income_tax": 2000}
		if len(h.Children) > 0 {
			out["ctc"] = 2000
		}
		return out, nil
	})

	svc := newTestService(calc)
	ev, err := lifeevent.Decode("new_child", []byte(`{"numBabies": 1}`))
	require.NoError(t, err)

	h := testFiler(30000)
	h.Children = nil

	result, err := svc.Simulate(context.Background(), h, ev)
	require.NoError(t, err)

	var ctc Metric
	for _, m := range result.Changes {
		if m.Program == "ctc" {
			ctc = m
		}
	}
	assert.Zero(t, ctc.Before)
	assert.Equal(t, 2000.0, ctc.After)
	assert.Equal(t, 2000.0, result.Diff.TotalCredits)
	assert.Equal(t, 2000.0, result.Diff.NetIncome)
}

func TestSimulateValidationSkipsCalculator(t *testing.T) {
	ctrl := gomock.NewController(t)
	calc := mocks.NewMockCalculator(ctrl)
	calc.EXPECT().Compute(gomock.Any(), gomock.Any()).Times(0)

	svc := newTestService(calc)
	ev, err := lifeevent.Decode("move", []byte(`{"newState": "CO"}`))
	require.NoError(t, err)

	// Moving to the state the household already lives in is invalid.
	_, err = svc.Simulate(context.Background(), testFiler(30000), ev)
	require.Error(t, err)
	assert.True(t, validation.IsValidation(err))
}

func TestSimulateRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	calc := calculator.Func(func(_ context.Context, h household.Household) (calculator.Breakdown, error) {
		if calls.Add(1) == 1 {
			return nil, &calculator.TimeoutError{Err: context.DeadlineExceeded}
		}
		return calculator.Breakdown{"income_tax": 1000}, nil
	})

	svc := newTestService(calc)
	ev, err := lifeevent.Decode("move", []byte(`{"newState": "NY"}`))
	require.NoError(t, err)

	result, err := svc.Simulate(context.Background(), testFiler(30000), ev)
	require.NoError(t, err)
	assert.Equal(t, "move", result.Event.Type)
	assert.Equal(t, 1000.0, result.Before.TotalTax)
	assert.GreaterOrEqual(t, calls.Load(), int32(3), "failed call must be retried")
}

func TestSimulateEscalatesAfterRetryBudget(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantPermanent bool
	}{
		{
			name:          "calculator rejection is permanent",
			err:           &calculator.CalculationError{Status: 400, Reason: "unsupported household"},
			wantPermanent: true,
		},
		{
			name:          "timeout stays transient",
			err:           &calculator.TimeoutError{Err: context.DeadlineExceeded},
			wantPermanent: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := calculator.Func(func(_ context.Context, _ household.Household) (calculator.Breakdown, error) {
				return nil, tt.err
			})
			svc := newTestService(calc, WithMaxRetries(0))
			ev, err := lifeevent.Decode("move", []byte(`{"newState": "NY"}`))
			require.NoError(t, err)

			_, err = svc.Simulate(context.Background(), testFiler(30000), ev)
			require.Error(t, err)

			var svcErr *ServiceError
			require.ErrorAs(t, err, &svcErr)
			assert.Equal(t, tt.wantPermanent, svcErr.Permanent)
			assert.ErrorContains(t, svcErr, tt.err.Error())
		})
	}
}

func TestSimulateStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	calc := calculator.Func(func(ctx context.Context, _ household.Household) (calculator.Breakdown, error) {
		calls.Add(1)
		return nil, ctx.Err()
	})

	svc := newTestService(calc)
	ev, err := lifeevent.Decode("move", []byte(`{"newState": "NY"}`))
	require.NoError(t, err)

	_, err = svc.Simulate(ctx, testFiler(30000), ev)
	require.Error(t, err)
	assert.LessOrEqual(t, calls.Load(), int32(2), "canceled context must not be retried")
}

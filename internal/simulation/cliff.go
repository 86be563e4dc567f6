package simulation

import (
	"context"
	"math"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/crossroads/crossroads-api/internal/calculator"
	"github.com/crossroads/crossroads-api/internal/household"
	"github.com/crossroads/crossroads-api/internal/validation"
)

// cliffThreshold is the marginal rate, in percent, above which earning the
// income increment reduced net resources.
const cliffThreshold = 100.0

// causeEpsilon filters float noise out of per-program cliff attribution.
const causeEpsilon = 0.005

// Sweep drives the calculator across an income range and computes net
// income, marginal rates, and cliff attribution. Point calculations run
// concurrently under the service's concurrency cap and are reassembled by
// index, so the returned points are strictly ascending in income no matter
// how the individual calls complete. One failed point fails the whole
// sweep; no partial chart is ever returned.
func (s *Service) Sweep(ctx context.Context, h household.Household, incomeMin, incomeMax float64, numPoints int) (*SweepResult, error) {
	var errs validation.Errors
	if incomeMin < 0 {
		errs = append(errs, validation.Newf("incomeMin", "cannot be negative, got %.2f", incomeMin))
	}
	if incomeMax <= incomeMin {
		errs = append(errs, validation.Newf("incomeMax", "must be greater than incomeMin, got [%.2f, %.2f]", incomeMin, incomeMax))
	}
	if numPoints < 2 {
		errs = append(errs, validation.Newf("numPoints", "must be at least 2, got %d", numPoints))
	}
	if err := errs.ErrOrNil(); err != nil {
		return nil, err
	}

	incomes := spacedIncomes(incomeMin, incomeMax, numPoints)

	s.logger.Info("sweeping income range",
		zap.Float64("income_min", incomeMin),
		zap.Float64("income_max", incomeMax),
		zap.Int("num_points", numPoints),
		zap.String("state", h.State))

	raws := make([]calculator.Breakdown, numPoints)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)
	for i := range incomes {
		i := i
		g.Go(func() error {
			raw, err := s.compute(gctx, h.WithPrimaryIncome(incomes[i]))
			if err != nil {
				return err
			}
			raws[i] = raw
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("sweep failed", zap.Error(err))
		return nil, err
	}

	points := make([]CliffDataPoint, numPoints)
	for i := range incomes {
		snap := s.builder.Snapshot(h.WithPrimaryIncome(incomes[i]), raws[i])
		points[i] = CliffDataPoint{
			Income:        incomes[i],
			NetIncome:     snap.NetIncome,
			TotalTax:      snap.TotalTax,
			TotalBenefits: snap.TotalBenefits,
			TotalCredits:  snap.TotalCredits,
			Breakdown:     s.builder.Breakdown(raws[i]),
		}
	}

	for i := 1; i < numPoints; i++ {
		rate := marginalRate(points[i-1], points[i])
		points[i].MarginalRate = &rate
		if rate > cliffThreshold {
			points[i].IsCliff = true
			points[i].Causes = s.attributeCliff(points[i-1].Breakdown, points[i].Breakdown)
		}
	}

	return &SweepResult{
		Points:        points,
		CurrentIncome: h.EmploymentIncome(),
	}, nil
}

// spacedIncomes generates numPoints equally spaced values across
// [min, max], pinning the endpoints exactly.
func spacedIncomes(min, max float64, numPoints int) []float64 {
	step := (max - min) / float64(numPoints-1)
	incomes := make([]float64, numPoints)
	for i := range incomes {
		incomes[i] = min + step*float64(i)
	}
	incomes[numPoints-1] = max
	return incomes
}

// marginalRate is the percentage of the income increment lost to taxes and
// benefit reductions combined between two adjacent points.
func marginalRate(prev, cur CliffDataPoint) float64 {
	return (1 - (cur.NetIncome-prev.NetIncome)/(cur.Income-prev.Income)) * 100
}

// attributeCliff lists each program's movement across the cliff increment:
// reductions first, largest loss first, then gains informationally.
func (s *Service) attributeCliff(prev, cur map[string]float64) []CliffCause {
	var losses, gains []CliffCause
	for id, after := range cur {
		delta := after - prev[id]
		if math.Abs(delta) < causeEpsilon {
			continue
		}
		p, ok := s.builder.programs.Lookup(id)
		if !ok {
			continue
		}
		cause := CliffCause{Program: id, Label: p.Label, Change: delta}
		if delta < 0 {
			losses = append(losses, cause)
		} else {
			gains = append(gains, cause)
		}
	}
	sort.Slice(losses, func(i, j int) bool {
		if losses[i].Change != losses[j].Change {
			return losses[i].Change < losses[j].Change
		}
		return losses[i].Program < losses[j].Program
	})
	sort.Slice(gains, func(i, j int) bool {
		if gains[i].Change != gains[j].Change {
			return gains[i].Change > gains[j].Change
		}
		return gains[i].Program < gains[j].Program
	})
	return append(losses, gains...)
}

package simulation

import (
	"go.uber.org/zap"

	"github.com/crossroads/crossroads-api/internal/calculator"
	"github.com/crossroads/crossroads-api/internal/household"
	"github.com/crossroads/crossroads-api/internal/lifeevent"
	"github.com/crossroads/crossroads-api/internal/program"
)

// ResultBuilder turns raw calculator breakdowns into categorized results.
// Decoding is defensive: a registry program missing from a breakdown counts
// as zero, and unknown keys are dropped, both with a logged warning. The
// registry is the single source of labels, categories, and priorities.
type ResultBuilder struct {
	programs *program.Registry
	logger   *zap.Logger
}

// NewResultBuilder creates a builder bound to one program registry.
func NewResultBuilder(programs *program.Registry, logger *zap.Logger) *ResultBuilder {
	return &ResultBuilder{programs: programs, logger: logger}
}

// Build assembles the full before/after result for one life event.
func (b *ResultBuilder) Build(ev lifeevent.Event, before, after household.Household, beforeRaw, afterRaw calculator.Breakdown) *SimulationResult {
	beforeSnap := b.Snapshot(before, beforeRaw)
	afterSnap := b.Snapshot(after, afterRaw)

	changes := make([]Metric, len(beforeSnap.Metrics))
	for i, m := range beforeSnap.Metrics {
		afterAmount := afterSnap.Metrics[i].Amount
		changes[i] = Metric{
			Program:  m.Program,
			Label:    m.Label,
			Before:   m.Amount,
			After:    afterAmount,
			Change:   afterAmount - m.Amount,
			Category: m.Category,
			Priority: m.Priority,
		}
	}

	return &SimulationResult{
		Event: EventInfo{
			Type:        ev.Type(),
			Name:        ev.Name(),
			Description: ev.Description(),
		},
		Before:  beforeSnap,
		After:   afterSnap,
		Changes: changes,
		Diff: Diff{
			NetIncome:     afterSnap.NetIncome - beforeSnap.NetIncome,
			TotalTax:      afterSnap.TotalTax - beforeSnap.TotalTax,
			TotalBenefits: afterSnap.TotalBenefits - beforeSnap.TotalBenefits,
			TotalCredits:  afterSnap.TotalCredits - beforeSnap.TotalCredits,
		},
	}
}

// Snapshot computes one household's totals and metrics from a raw
// breakdown. The metric list always covers exactly the registry's program
// set, in registry order.
func (b *ResultBuilder) Snapshot(h household.Household, raw calculator.Breakdown) Snapshot {
	b.warnUnknown(raw)

	gross := h.GrossIncome()
	snap := Snapshot{
		GrossIncome: gross,
		Metrics:     make([]MetricValue, 0, b.programs.Len()),
	}

	for _, p := range b.programs.Programs() {
		amount, ok := raw[p.ID]
		if !ok {
			b.logger.Warn("program missing from calculator response, defaulting to zero",
				zap.String("program", p.ID))
			amount = 0
		}
		snap.Metrics = append(snap.Metrics, MetricValue{
			Program:  p.ID,
			Label:    p.Label,
			Amount:   amount,
			Category: p.Category,
			Priority: p.Priority,
		})
		switch {
		case p.Category.CountsAsTax():
			snap.TotalTax += amount
		case p.Category.CountsAsCredit():
			snap.TotalCredits += amount
		case p.Category.CountsAsBenefit():
			snap.TotalBenefits += amount
		}
	}

	snap.NetIncome = gross - snap.TotalTax + snap.TotalBenefits + snap.TotalCredits
	return snap
}

// Breakdown resolves a raw response against the registry: every registered
// program appears, missing values default to zero.
func (b *ResultBuilder) Breakdown(raw calculator.Breakdown) map[string]float64 {
	out := make(map[string]float64, b.programs.Len())
	for _, p := range b.programs.Programs() {
		out[p.ID] = raw[p.ID]
	}
	return out
}

func (b *ResultBuilder) warnUnknown(raw calculator.Breakdown) {
	for id := range raw {
		if _, ok := b.programs.Lookup(id); !ok {
			b.logger.Warn("calculator returned unregistered program, dropping",
				zap.String("program", id),
				zap.Int("registry_year", b.programs.Year()))
		}
	}
}

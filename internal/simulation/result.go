// Package simulation orchestrates calculator runs for life-event
// comparisons and income sweeps, and turns raw per-program breakdowns into
// categorized, labeled results.
package simulation

import (
	"github.com/crossroads/crossroads-api/internal/program"
)

// MetricValue is one program's amount inside a single snapshot.
type MetricValue struct {
	Program  string           `json:"program"`
	Label    string           `json:"label"`
	Amount   float64          `json:"amount"`
	Category program.Category `json:"category"`
	Priority int              `json:"priority"`
}

// Snapshot is one fully computed household state: gross income, aggregate
// totals, the exact net income identity, and the per-program metrics. The
// invariant netIncome = grossIncome - totalTax + totalBenefits +
// totalCredits holds exactly.
type Snapshot struct {
	GrossIncome   float64       `json:"grossIncome"`
	NetIncome     float64       `json:"netIncome"`
	TotalTax      float64       `json:"totalTax"`
	TotalBenefits float64       `json:"totalBenefits"`
	TotalCredits  float64       `json:"totalCredits"`
	Metrics       []MetricValue `json:"metrics"`
}

// Metric pairs a program's before and after values. Priority tiering is
// carried for collaborators; nothing is dropped here because of it.
type Metric struct {
	Program  string           `json:"program"`
	Label    string           `json:"label"`
	Before   float64          `json:"before"`
	After    float64          `json:"after"`
	Change   float64          `json:"change"`
	Category program.Category `json:"category"`
	Priority int              `json:"priority"`
}

// Diff is the scalar movement between the before and after snapshots.
type Diff struct {
	NetIncome     float64 `json:"netIncome"`
	TotalTax      float64 `json:"totalTax"`
	TotalBenefits float64 `json:"totalBenefits"`
	TotalCredits  float64 `json:"totalCredits"`
}

// EventInfo describes the simulated life event for caller display.
type EventInfo struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SimulationResult is the outcome of one before/after comparison.
type SimulationResult struct {
	Event   EventInfo `json:"event"`
	Before  Snapshot  `json:"before"`
	After   Snapshot  `json:"after"`
	Changes []Metric  `json:"changes"`
	Diff    Diff      `json:"diff"`
}

// CliffCause is one program's signed contribution at a cliff point.
// Negative changes are the benefit or credit reductions that caused the
// cliff; positive changes are reported informationally.
type CliffCause struct {
	Program string  `json:"program"`
	Label   string  `json:"label"`
	Change  float64 `json:"change"`
}

// CliffDataPoint is one income level in a sweep. MarginalRate is nil for
// the first point and a percentage for every later one; a point is a cliff
// when the marginal rate exceeds 100.
type CliffDataPoint struct {
	Income        float64            `json:"income"`
	NetIncome     float64            `json:"netIncome"`
	TotalTax      float64            `json:"totalTax"`
	TotalBenefits float64            `json:"totalBenefits"`
	TotalCredits  float64            `json:"totalCredits"`
	MarginalRate  *float64           `json:"marginalRate,omitempty"`
	IsCliff       bool               `json:"isCliff"`
	Breakdown     map[string]float64 `json:"breakdown"`
	Causes        []CliffCause       `json:"causes,omitempty"`
}

// SweepResult is a full income sweep: exactly the requested number of
// points in strictly ascending income order, plus the reference household's
// actual combined income for caller display.
type SweepResult struct {
	Points        []CliffDataPoint `json:"data"`
	CurrentIncome float64          `json:"currentIncome"`
}

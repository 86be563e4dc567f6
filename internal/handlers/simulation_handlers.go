package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crossroads/crossroads-api/internal/household"
	"github.com/crossroads/crossroads-api/internal/lifeevent"
	"github.com/crossroads/crossroads-api/internal/simulation"
)

// SimulationHandler exposes the simulation engine over HTTP.
type SimulationHandler struct {
	service *simulation.Service
}

// NewSimulationHandler creates a new instance of SimulationHandler
func NewSimulationHandler(service *simulation.Service) *SimulationHandler {
	return &SimulationHandler{service: service}
}

// HouseholdRequest is the wire form of a household.
type HouseholdRequest struct {
	State        string   `json:"state" binding:"required"`
	Year         int      `json:"year"`
	FilingStatus string   `json:"filingStatus" binding:"required"`
	Age          int      `json:"age" binding:"required"`
	Income       float64  `json:"income"`
	HasESI       bool     `json:"hasESI"`
	SpouseAge    *int     `json:"spouseAge"`
	SpouseIncome *float64 `json:"spouseIncome"`
	SpouseHasESI bool     `json:"spouseHasESI"`
	ChildAges    []int    `json:"childAges"`
}

func (r HouseholdRequest) toParams() household.Params {
	return household.Params{
		State:        r.State,
		Year:         r.Year,
		FilingStatus: household.FilingStatus(r.FilingStatus),
		Age:          r.Age,
		Income:       r.Income,
		HasESI:       r.HasESI,
		SpouseAge:    r.SpouseAge,
		SpouseIncome: r.SpouseIncome,
		SpouseHasESI: r.SpouseHasESI,
		ChildAges:    r.ChildAges,
	}
}

// LifeEventRequest is the wire form of a life event.
type LifeEventRequest struct {
	Type   string          `json:"type" binding:"required"`
	Params json.RawMessage `json:"params"`
}

// SimulateRequest is the request body for running a life-event simulation.
type SimulateRequest struct {
	Household HouseholdRequest `json:"household" binding:"required"`
	LifeEvent LifeEventRequest `json:"lifeEvent" binding:"required"`
}

// SweepRequest is the request body for running a benefit-cliff sweep.
type SweepRequest struct {
	Household HouseholdRequest `json:"household" binding:"required"`
	IncomeMin float64          `json:"incomeMin"`
	IncomeMax float64          `json:"incomeMax" binding:"required"`
	NumPoints int              `json:"numPoints" binding:"required"`
}

// EventTypeResponse describes one available life-event variant.
type EventTypeResponse struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Simulate runs a before/after comparison for one household and one life
// event.
func (h *SimulationHandler) Simulate(c *gin.Context) {
	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	hh, err := household.New(req.Household.toParams())
	if err != nil {
		handleEngineError(c, err)
		return
	}

	event, err := lifeevent.Decode(req.LifeEvent.Type, req.LifeEvent.Params)
	if err != nil {
		handleEngineError(c, err)
		return
	}

	result, err := h.service.Simulate(c.Request.Context(), hh, event)
	if err != nil {
		handleEngineError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, result)
}

// Sweep runs an income sweep and returns the cliff chart data.
func (h *SimulationHandler) Sweep(c *gin.Context) {
	var req SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	hh, err := household.New(req.Household.toParams())
	if err != nil {
		handleEngineError(c, err)
		return
	}

	result, err := h.service.Sweep(c.Request.Context(), hh, req.IncomeMin, req.IncomeMax, req.NumPoints)
	if err != nil {
		handleEngineError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, result)
}

// ListEventTypes returns the catalog of supported life-event variants.
func (h *SimulationHandler) ListEventTypes(c *gin.Context) {
	types := lifeevent.Types()
	data := make([]EventTypeResponse, 0, len(types))
	for _, t := range types {
		ev, err := lifeevent.Decode(t, nil)
		if err != nil {
			continue
		}
		data = append(data, EventTypeResponse{
			Type:        ev.Type(),
			Name:        ev.Name(),
			Description: ev.Description(),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   data,
	})
}

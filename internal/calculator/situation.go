package calculator

import (
	"fmt"
	"strconv"

	"github.com/crossroads/crossroads-api/internal/household"
)

// The calculator speaks the PolicyEngine US situation format: every entity
// group lists its members and every variable is keyed by tax year.

type situation struct {
	People     map[string]map[string]any `json:"people"`
	TaxUnits   map[string]memberGroup    `json:"tax_units"`
	Families   map[string]memberGroup    `json:"families"`
	SPMUnits   map[string]memberGroup    `json:"spm_units"`
	Households map[string]map[string]any `json:"households"`
}

type memberGroup struct {
	Members []string `json:"members"`
}

// buildSituation encodes a household into the calculator's situation
// document.
func buildSituation(h household.Household) situation {
	year := strconv.Itoa(h.Year)
	people := make(map[string]map[string]any)
	var members []string

	add := func(p household.Person, role string) {
		id := fmt.Sprintf("person_%d", len(members))
		entry := map[string]any{
			"age":                        yearValue(year, p.Age),
			"employment_income":          yearValue(year, p.EmploymentIncome),
			"self_employment_income":     yearValue(year, p.SelfEmploymentIncome),
			"social_security_retirement": yearValue(year, p.SocialSecurityRetirement),
			"unemployment_compensation":  yearValue(year, p.UnemploymentCompensation),
		}
		if p.IsPregnant {
			entry["is_pregnant"] = yearValue(year, true)
		}
		if p.HasESI {
			entry["is_enrolled_in_esi"] = yearValue(year, true)
		}
		if role != "" {
			entry[role] = yearValue(year, true)
		}
		people[id] = entry
		members = append(members, id)
	}

	add(h.Primary, "is_tax_unit_head")
	if h.Spouse != nil {
		add(*h.Spouse, "is_tax_unit_spouse")
	}
	for _, child := range h.Children {
		add(child, "is_tax_unit_dependent")
	}

	return situation{
		People:   people,
		TaxUnits: map[string]memberGroup{"tax_unit": {Members: members}},
		Families: map[string]memberGroup{"family": {Members: members}},
		SPMUnits: map[string]memberGroup{"spm_unit": {Members: members}},
		Households: map[string]map[string]any{
			"household": {
				"members":    members,
				"state_code": yearValue(year, h.State),
			},
		},
	}
}

func yearValue(year string, v any) map[string]any {
	return map[string]any{year: v}
}

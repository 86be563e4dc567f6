package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossroads/crossroads-api/internal/household"
)

func TestBuildSituation(t *testing.T) {
	h := household.Household{
		State:        "NY",
		Year:         2024,
		FilingStatus: household.MarriedJointly,
		Primary:      household.Person{Age: 35, EmploymentIncome: 50000, HasESI: true},
		Spouse:       &household.Person{Age: 34, SelfEmploymentIncome: 12000, IsPregnant: true},
		Children:     []household.Person{{Age: 3}},
	}

	s := buildSituation(h)

	require.Len(t, s.People, 3)
	members := s.TaxUnits["tax_unit"].Members
	assert.Equal(t, []string{"person_0", "person_1", "person_2"}, members)
	assert.Equal(t, members, s.Families["family"].Members)
	assert.Equal(t, members, s.SPMUnits["spm_unit"].Members)

	primary := s.People["person_0"]
	assert.Equal(t, map[string]any{"2024": 35}, primary["age"])
	assert.Equal(t, map[string]any{"2024": 50000.0}, primary["employment_income"])
	assert.Equal(t, map[string]any{"2024": true}, primary["is_tax_unit_head"])
	assert.Equal(t, map[string]any{"2024": true}, primary["is_enrolled_in_esi"])

	spouse := s.People["person_1"]
	assert.Equal(t, map[string]any{"2024": 12000.0}, spouse["self_employment_income"])
	assert.Equal(t, map[string]any{"2024": true}, spouse["is_tax_unit_spouse"])
	assert.Equal(t, map[string]any{"2024": true}, spouse["is_pregnant"])
	_, hasESI := spouse["is_enrolled_in_esi"]
	assert.False(t, hasESI, "unset flags are omitted, not sent as false")

	child := s.People["person_2"]
	assert.Equal(t, map[string]any{"2024": 3}, child["age"])
	assert.Equal(t, map[string]any{"2024": true}, child["is_tax_unit_dependent"])

	hh := s.Households["household"]
	assert.Equal(t, members, hh["members"])
	assert.Equal(t, map[string]any{"2024": "NY"}, hh["state_code"])
}

func TestBuildSituationSingleFiler(t *testing.T) {
	s := buildSituation(household.Household{
		State:        "CO",
		Year:         2025,
		FilingStatus: household.Single,
		Primary:      household.Person{Age: 28, EmploymentIncome: 30000},
	})

	require.Len(t, s.People, 1)
	primary := s.People["person_0"]
	assert.Equal(t, map[string]any{"2025": 28}, primary["age"])
	_, pregnant := primary["is_pregnant"]
	assert.False(t, pregnant)
	assert.Equal(t, []string{"person_0"}, s.TaxUnits["tax_unit"].Members)
}

package household

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossroads/crossroads-api/internal/validation"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		params     Params
		wantErr    bool
		wantFields []string
	}{
		{
			name: "valid single filer",
			params: Params{
				State:        "CO",
				FilingStatus: Single,
				Age:          30,
				Income:       45000,
			},
		},
		{
			name: "valid married couple with children",
			params: Params{
				State:        "NY",
				FilingStatus: MarriedJointly,
				Age:          35,
				Income:       60000,
				SpouseAge:    intPtr(33),
				SpouseIncome: floatPtr(20000),
				ChildAges:    []int{2, 7},
			},
		},
		{
			name: "unrecognized state",
			params: Params{
				State:        "XX",
				FilingStatus: Single,
				Age:          30,
			},
			wantErr:    true,
			wantFields: []string{"state"},
		},
		{
			name: "unrecognized filing status",
			params: Params{
				State:        "CO",
				FilingStatus: "widowed",
				Age:          30,
			},
			wantErr:    true,
			wantFields: []string{"filingStatus"},
		},
		{
			name: "underage primary filer",
			params: Params{
				State:        "CO",
				FilingStatus: Single,
				Age:          17,
			},
			wantErr:    true,
			wantFields: []string{"age"},
		},
		{
			name: "negative income",
			params: Params{
				State:        "CO",
				FilingStatus: Single,
				Age:          30,
				Income:       -1,
			},
			wantErr:    true,
			wantFields: []string{"income"},
		},
		{
			name: "married without spouse fields",
			params: Params{
				State:        "CO",
				FilingStatus: MarriedJointly,
				Age:          30,
			},
			wantErr:    true,
			wantFields: []string{"spouseAge", "spouseIncome"},
		},
		{
			name: "spouse fields without married status",
			params: Params{
				State:        "CO",
				FilingStatus: Single,
				Age:          30,
				SpouseAge:    intPtr(28),
			},
			wantErr:    true,
			wantFields: []string{"filingStatus"},
		},
		{
			name: "child age out of range",
			params: Params{
				State:        "CO",
				FilingStatus: Single,
				Age:          30,
				ChildAges:    []int{5, 18},
			},
			wantErr:    true,
			wantFields: []string{"childAges"},
		},
		{
			name: "multiple failures reported together",
			params: Params{
				State:        "ZZ",
				FilingStatus: Single,
				Age:          12,
				Income:       -100,
			},
			wantErr:    true,
			wantFields: []string{"state", "age", "income"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := New(tt.params)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.params.State, h.State)
				return
			}
			require.Error(t, err)
			assert.True(t, validation.IsValidation(err))

			var errs validation.Errors
			require.ErrorAs(t, err, &errs)
			var fields []string
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			for _, want := range tt.wantFields {
				assert.Contains(t, fields, want)
			}
		})
	}
}

func TestNewDefaultsYear(t *testing.T) {
	h, err := New(Params{State: "CA", FilingStatus: Single, Age: 40})
	require.NoError(t, err)
	assert.Equal(t, DefaultYear, h.Year)

	h, err = New(Params{State: "CA", FilingStatus: Single, Age: 40, Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, 2025, h.Year)
}

func TestNewBuildsMembers(t *testing.T) {
	h, err := New(Params{
		State:        "MD",
		FilingStatus: MarriedJointly,
		Age:          40,
		Income:       50000,
		HasESI:       true,
		SpouseAge:    intPtr(38),
		SpouseIncome: floatPtr(10000),
		ChildAges:    []int{4},
	})
	require.NoError(t, err)

	assert.Equal(t, 40, h.Primary.Age)
	assert.Equal(t, 50000.0, h.Primary.EmploymentIncome)
	assert.True(t, h.Primary.HasESI)
	require.NotNil(t, h.Spouse)
	assert.Equal(t, 38, h.Spouse.Age)
	assert.Equal(t, 10000.0, h.Spouse.EmploymentIncome)
	require.Len(t, h.Children, 1)
	assert.Equal(t, 4, h.Children[0].Age)
	assert.Equal(t, 3, h.Size())
}

func TestCloneIsDeep(t *testing.T) {
	h, err := New(Params{
		State:        "NJ",
		FilingStatus: MarriedJointly,
		Age:          30,
		Income:       40000,
		SpouseAge:    intPtr(31),
		SpouseIncome: floatPtr(15000),
		ChildAges:    []int{3, 9},
	})
	require.NoError(t, err)

	clone := h.Clone()
	clone.Spouse.EmploymentIncome = 99999
	clone.Children[0].Age = 17
	clone.Primary.EmploymentIncome = 0

	assert.Equal(t, 15000.0, h.Spouse.EmploymentIncome)
	assert.Equal(t, 3, h.Children[0].Age)
	assert.Equal(t, 40000.0, h.Primary.EmploymentIncome)
}

func TestGrossIncomeSumsAllStreams(t *testing.T) {
	h := Household{
		State:        "CO",
		FilingStatus: MarriedJointly,
		Primary: Person{
			Age:                      64,
			EmploymentIncome:         12000,
			SelfEmploymentIncome:     3000,
			SocialSecurityRetirement: 18000,
		},
		Spouse: &Person{
			Age:                      60,
			UnemploymentCompensation: 10400,
		},
		Children: []Person{{Age: 16}},
	}

	assert.Equal(t, 43400.0, h.GrossIncome())
	assert.Equal(t, 12000.0, h.EmploymentIncome())
}

func TestWithPrimaryIncome(t *testing.T) {
	h, err := New(Params{State: "WA", FilingStatus: Single, Age: 25, Income: 20000})
	require.NoError(t, err)

	swapped := h.WithPrimaryIncome(35000)
	assert.Equal(t, 35000.0, swapped.Primary.EmploymentIncome)
	assert.Equal(t, 20000.0, h.Primary.EmploymentIncome)
}

func TestFilingStatus(t *testing.T) {
	assert.True(t, MarriedJointly.Married())
	assert.True(t, MarriedSeparately.Married())
	assert.False(t, Single.Married())
	assert.False(t, HeadOfHousehold.Married())
	assert.False(t, FilingStatus("widowed").Valid())
}

func TestIsValidState(t *testing.T) {
	assert.True(t, IsValidState("CA"))
	assert.True(t, IsValidState("DC"))
	assert.False(t, IsValidState("PR"))
	assert.False(t, IsValidState(""))
	assert.False(t, IsValidState("ca"))
}

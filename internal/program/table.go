package program

// baseYear is the earliest tax year with a program table.
const baseYear = 2024

// tables holds the per-year program metadata. Each year's table is the
// complete list; later years restate it rather than patching the previous
// one, so a year can be revised without touching engine logic.
var tables = map[int][]Program{
	baseYear: table2024,
	2025:     table2025,
}

var table2024 = []Program{
	// Federal taxes
	{ID: "income_tax", Label: "Federal Income Tax", Category: CategoryTax, Priority: PriorityPrimary},
	{ID: "state_income_tax", Label: "State Income Tax", Category: CategoryTax, Priority: PriorityPrimary},
	{ID: "employee_payroll_tax", Label: "Payroll Tax", Category: CategoryTax, Priority: PriorityPrimary},
	{ID: "self_employment_tax", Label: "Self-Employment Tax", Category: CategoryTax, Priority: PrioritySecondary},

	// Food assistance
	{ID: "snap", Label: "SNAP (Food Stamps)", Category: CategoryBenefit, Priority: PriorityPrimary},
	{ID: "free_school_meals", Label: "Free School Meals", Category: CategoryBenefit, Priority: PrioritySecondary},
	{ID: "reduced_price_school_meals", Label: "Reduced Price Meals", Category: CategoryBenefit, Priority: PrioritySecondary},
	{ID: "wic", Label: "WIC", Category: CategoryBenefit, Priority: PriorityPrimary},

	// Cash assistance
	{ID: "tanf", Label: "TANF", Category: CategoryBenefit, Priority: PriorityPrimary},
	{ID: "ssi", Label: "SSI", Category: CategoryBenefit, Priority: PriorityPrimary},
	{ID: "social_security", Label: "Social Security", Category: CategoryBenefit, Priority: PriorityPrimary},

	// Housing
	{ID: "spm_unit_capped_housing_subsidy", Label: "Housing Subsidy", Category: CategoryBenefit, Priority: PriorityPrimary},

	// Healthcare
	{ID: "medicaid", Label: "Medicaid", Category: CategoryBenefit, Priority: PriorityPrimary},
	{ID: "chip", Label: "CHIP", Category: CategoryBenefit, Priority: PriorityPrimary},

	// Energy and utilities
	{ID: "liheap", Label: "LIHEAP (Energy)", Category: CategoryBenefit, Priority: PrioritySecondary},
	{ID: "lifeline", Label: "Lifeline (Phone)", Category: CategoryBenefit, Priority: PrioritySecondary},
	{ID: "acp", Label: "ACP (Broadband)", Category: CategoryBenefit, Priority: PrioritySecondary},

	// Childcare
	{ID: "ccdf", Label: "Childcare Subsidy (CCDF)", Category: CategoryBenefit, Priority: PrioritySecondary},

	// Federal tax credits
	{ID: "earned_income_tax_credit", Label: "Earned Income Tax Credit", Category: CategoryCredit, Priority: PriorityPrimary},
	{ID: "ctc", Label: "Child Tax Credit", Category: CategoryCredit, Priority: PriorityPrimary},
	{ID: "refundable_ctc", Label: "CTC (refundable)", Category: CategoryCredit, Priority: PrioritySecondary},
	{ID: "cdcc", Label: "Child & Dependent Care Credit", Category: CategoryCredit, Priority: PriorityPrimary},
	{ID: "premium_tax_credit", Label: "Premium Tax Credit (ACA)", Category: CategoryCredit, Priority: PriorityPrimary},
	{ID: "savers_credit", Label: "Saver's Credit", Category: CategoryCredit, Priority: PrioritySecondary},
	{ID: "american_opportunity_credit", Label: "American Opportunity Credit", Category: CategoryCredit, Priority: PrioritySecondary},
	{ID: "lifetime_learning_credit", Label: "Lifetime Learning Credit", Category: CategoryCredit, Priority: PrioritySecondary},

	// State aggregates
	{ID: "state_eitc", Label: "State EITC", Category: CategoryStateCredit, Priority: PriorityPrimary},
	{ID: "state_ctc", Label: "State CTC", Category: CategoryStateCredit, Priority: PriorityPrimary},

	// California
	{ID: "ca_eitc", Label: "CalEITC", Category: CategoryStateCredit, Priority: PriorityPrimary},
	{ID: "ca_yctc", Label: "CA Young Child Tax Credit", Category: CategoryStateCredit, Priority: PriorityPrimary},
	{ID: "ca_renter_credit", Label: "CA Renter Credit", Category: CategoryStateCredit, Priority: PrioritySecondary},
	{ID: "ca_tanf", Label: "CalWORKs (CA TANF)", Category: CategoryStateBenefit, Priority: PriorityPrimary},
	{ID: "ca_state_supplement", Label: "CA SSI Supplement", Category: CategoryStateBenefit, Priority: PriorityPrimary},

	// New York
	{ID: "ny_eitc", Label: "NY EITC", Category: CategoryStateCredit, Priority: PriorityPrimary},
	{ID: "ny_ctc", Label: "NY Child Tax Credit", Category: CategoryStateCredit, Priority: PriorityPrimary},
	{ID: "ny_tanf", Label: "NY TANF", Category: CategoryStateBenefit, Priority: PriorityPrimary},

	// Colorado
	{ID: "co_eitc", Label: "CO EITC", Category: CategoryStateCredit, Priority: PriorityPrimary},
	{ID: "co_ctc", Label: "CO Child Tax Credit", Category: CategoryStateCredit, Priority: PriorityPrimary},
	{ID: "co_tanf", Label: "CO TANF", Category: CategoryStateBenefit, Priority: PriorityPrimary},
	{ID: "co_state_supplement", Label: "CO SSI Supplement", Category: CategoryStateBenefit, Priority: PriorityPrimary},
	{ID: "co_ccap_subsidy", Label: "CO Childcare Assistance", Category: CategoryStateBenefit, Priority: PriorityPrimary},
	{ID: "co_family_affordability_credit", Label: "CO Family Affordability Credit", Category: CategoryStateCredit, Priority: PriorityPrimary},

	// Maryland
	{ID: "md_eitc", Label: "MD EITC", Category: CategoryStateCredit, Priority: PriorityPrimary},
	{ID: "md_ctc", Label: "MD Child Tax Credit", Category: CategoryStateCredit, Priority: PriorityPrimary},

	// New Jersey
	{ID: "nj_eitc", Label: "NJ EITC", Category: CategoryStateCredit, Priority: PriorityPrimary},
	{ID: "nj_ctc", Label: "NJ Child Tax Credit", Category: CategoryStateCredit, Priority: PriorityPrimary},

	// Illinois
	{ID: "il_eitc", Label: "IL EITC", Category: CategoryStateCredit, Priority: PriorityPrimary},
	{ID: "il_ctc", Label: "IL Child Tax Credit", Category: CategoryStateCredit, Priority: PriorityPrimary},

	// DC
	{ID: "dc_eitc", Label: "DC EITC", Category: CategoryStateCredit, Priority: PriorityPrimary},
	{ID: "dc_ctc", Label: "DC Child Tax Credit", Category: CategoryStateCredit, Priority: PriorityPrimary},
	{ID: "dc_tanf", Label: "DC TANF", Category: CategoryStateBenefit, Priority: PriorityPrimary},

	// Oregon
	{ID: "or_eitc", Label: "OR EITC", Category: CategoryStateCredit, Priority: PriorityPrimary},
	{ID: "or_ctc", Label: "OR Child Tax Credit", Category: CategoryStateCredit, Priority: PriorityPrimary},

	// New Mexico
	{ID: "nm_eitc", Label: "NM EITC", Category: CategoryStateCredit, Priority: PriorityPrimary},
	{ID: "nm_ctc", Label: "NM Child Tax Credit", Category: CategoryStateCredit, Priority: PriorityPrimary},

	// Massachusetts
	{ID: "ma_eitc", Label: "MA EITC", Category: CategoryStateCredit, Priority: PriorityPrimary},
	{ID: "ma_child_and_family_credit", Label: "MA Child & Family Credit", Category: CategoryStateCredit, Priority: PriorityPrimary},

	// Washington
	{ID: "wa_working_families_tax_credit", Label: "WA Working Families Credit", Category: CategoryStateCredit, Priority: PriorityPrimary},

	// Connecticut
	{ID: "ct_child_tax_rebate", Label: "CT Child Tax Rebate", Category: CategoryStateCredit, Priority: PriorityPrimary},
	{ID: "ct_property_tax_credit", Label: "CT Property Tax Credit", Category: CategoryStateCredit, Priority: PrioritySecondary},

	// Minnesota
	{ID: "mn_child_and_working_families_credits", Label: "MN Working Family Credit", Category: CategoryStateCredit, Priority: PriorityPrimary},

	// Other state EITCs and CTCs
	{ID: "vt_eitc", Label: "VT EITC", Category: CategoryStateCredit, Priority: PriorityPrimary},
	{ID: "vt_ctc", Label: "VT Child Tax Credit", Category: CategoryStateCredit, Priority: PriorityPrimary},
	{ID: "me_eitc", Label: "ME EITC", Category: CategoryStateCredit, Priority: PriorityPrimary},
	{ID: "ri_eitc", Label: "RI EITC", Category: CategoryStateCredit, Priority: PriorityPrimary},
	{ID: "oh_eitc", Label: "OH EITC", Category: CategoryStateCredit, Priority: PriorityPrimary},
	{ID: "ne_eitc", Label: "NE EITC", Category: CategoryStateCredit, Priority: PriorityPrimary},
	{ID: "sc_eitc", Label: "SC EITC", Category: CategoryStateCredit, Priority: PriorityPrimary},
	{ID: "ok_eitc", Label: "OK EITC", Category: CategoryStateCredit, Priority: PriorityPrimary},
	{ID: "hi_eitc", Label: "HI EITC", Category: CategoryStateCredit, Priority: PriorityPrimary},
	{ID: "ut_eitc", Label: "UT EITC", Category: CategoryStateCredit, Priority: PriorityPrimary},
	{ID: "ut_ctc", Label: "UT Child Tax Credit", Category: CategoryStateCredit, Priority: PriorityPrimary},
}

// table2025 carries the 2024 table forward without the Affordable
// Connectivity Program, which stopped accepting claims after 2024.
var table2025 = removeProgram(table2024, "acp")

func removeProgram(table []Program, id string) []Program {
	out := make([]Program, 0, len(table))
	for _, p := range table {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

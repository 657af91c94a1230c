package fixtures

import "github.com/quanamco/payroll-edi/internal/domain/ruleinput"

// ==========================================
// DEFAULT RULE INPUTS
// ==========================================

func earn(code, name string, category ruleinput.EarnCategory) ruleinput.RuleInput {
	return ruleinput.RuleInput{
		Name: name,
		Code: code,
		Input: ruleinput.Input{
			Name:         name,
			TypeConcept:  ruleinput.TypeConceptEarn,
			EarnCategory: category,
		},
	}
}

func deduction(code, name string, category ruleinput.DeductionCategory) ruleinput.RuleInput {
	return ruleinput.RuleInput{
		Name: name,
		Code: code,
		Input: ruleinput.Input{
			Name:              name,
			TypeConcept:       ruleinput.TypeConceptDeduction,
			DeductionCategory: category,
		},
	}
}

// DefaultEarnRuleInputs are the accrued concepts seeded for every company.
// Codes follow the short names used on Colombian payroll slips.
func DefaultEarnRuleInputs() []ruleinput.RuleInput {
	return []ruleinput.RuleInput{
		// Overtime and surcharges (hours)
		earn("HED", "Daytime overtime", ruleinput.EarnDailyOvertime),
		earn("HEN", "Night overtime", ruleinput.EarnOvertimeNightHours),
		earn("RN", "Night surcharge", ruleinput.EarnHoursNightSurcharge),
		earn("HEDDF", "Sunday and holiday daytime overtime", ruleinput.EarnSundayHolidayDailyOvertime),
		earn("RDDF", "Sunday and holiday daytime surcharge", ruleinput.EarnDailySurchargeHoursSundaysHolidays),
		earn("HENDF", "Sunday and holiday night overtime", ruleinput.EarnSundayNightOvertimeHolidays),
		earn("RNDF", "Sunday and holiday night surcharge", ruleinput.EarnSundayHolidaysNightSurchargeHours),

		// Absences (days)
		earn("VAC", "Vacation", ruleinput.EarnVacationCommon),
		earn("INC", "Common disability", ruleinput.EarnIncapacitiesCommon),
		earn("INC_PRO", "Professional disability", ruleinput.EarnIncapacitiesProfessional),
		earn("INC_LAB", "Work disability", ruleinput.EarnIncapacitiesWorking),
		earn("LMP", "Maternity or paternity leave", ruleinput.EarnLicensingsMaternityOrPaternityLeaves),
		earn("LR", "Paid leave", ruleinput.EarnLicensingsPermitOrPaidLicenses),
		earn("LNR", "Unpaid leave", ruleinput.EarnLicensingsSuspensionOrUnpaidLeaves),
		earn("HUELGA", "Legal strike", ruleinput.EarnLegalStrikes),

		// Amounts
		earn("VAC_COMP", "Compensated vacation", ruleinput.EarnVacationCompensated),
		earn("PRIMA", "Service bonus", ruleinput.EarnPrimas),
		earn("CES", "Severance", ruleinput.EarnLayoffs),
		earn("INT_CES", "Severance interest", ruleinput.EarnLayoffsInterest),
		earn("AUX_TRANS", "Transport allowance", ruleinput.EarnTransportsAssistance),
		earn("VIATICO", "Travel allowance", ruleinput.EarnTransportsViatic),
		earn("BONIF", "Bonus", ruleinput.EarnBonuses),
		earn("BONIF_NS", "Non salary bonus", ruleinput.EarnBonusesNonSalary),
		earn("AUX", "Assistance", ruleinput.EarnAssistances),
		earn("COMISION", "Commissions", ruleinput.EarnCommissions),
		earn("DOTACION", "Endowment", ruleinput.EarnEndowment),
		earn("TELETRABAJO", "Telecommuting", ruleinput.EarnTelecommuting),
		earn("INDEM", "Compensation", ruleinput.EarnCompensation),
		earn("REINTEGRO", "Refund", ruleinput.EarnRefund),
		earn("ANTICIPO", "Advance", ruleinput.EarnAdvances),
		earn("OTROS", "Other concepts", ruleinput.EarnOtherConcepts),
	}
}

// DefaultDeductionRuleInputs are the deducted concepts seeded for every company.
func DefaultDeductionRuleInputs() []ruleinput.RuleInput {
	return []ruleinput.RuleInput{
		deduction("SALUD", "Health", ruleinput.DeductionHealth),
		deduction("PENSION", "Pension fund", ruleinput.DeductionPensionFund),
		deduction("FSP", "Pension solidarity fund", ruleinput.DeductionPensionSecurityFund),
		deduction("FSP_SUB", "Pension subsistence fund", ruleinput.DeductionPensionSecurityFundSubsistence),
		deduction("PV", "Voluntary pension", ruleinput.DeductionVoluntaryPension),
		deduction("RTEFTE", "Withholding tax", ruleinput.DeductionWithholdingSource),
		deduction("AFC", "AFC savings", ruleinput.DeductionAfc),
		deduction("COOP", "Cooperative", ruleinput.DeductionCooperative),
		deduction("EMBARGO", "Tax lien", ruleinput.DeductionTaxLien),
		deduction("PLAN_COMP", "Complementary plans", ruleinput.DeductionComplementaryPlans),
		deduction("EDUCACION", "Education", ruleinput.DeductionEducation),
		deduction("REINTEGRO_DED", "Refund", ruleinput.DeductionRefund),
		deduction("DEUDA", "Debt", ruleinput.DeductionDebt),
		deduction("SINDICATO", "Trade union", ruleinput.DeductionTradeUnions),
		deduction("LIBRANZA", "Payroll loan", ruleinput.DeductionLibranzas),
		deduction("ANTICIPO_DED", "Advance", ruleinput.DeductionAdvances),
		deduction("OTRAS_DED", "Other deductions", ruleinput.DeductionOtherDeductions),
	}
}

// DefaultRuleInputs returns the full catalog for companyID.
func DefaultRuleInputs(companyID string) []ruleinput.RuleInput {
	all := append(DefaultEarnRuleInputs(), DefaultDeductionRuleInputs()...)
	for i := range all {
		all[i].CompanyID = companyID
	}
	return all
}

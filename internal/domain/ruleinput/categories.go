package ruleinput

// EarnCategory enum
type EarnCategory string

const (
	EarnBasic                                EarnCategory = "basic"
	EarnVacationCommon                       EarnCategory = "vacation_common"
	EarnVacationCompensated                  EarnCategory = "vacation_compensated"
	EarnPrimas                               EarnCategory = "primas"
	EarnPrimasNonSalary                      EarnCategory = "primas_non_salary"
	EarnLayoffs                              EarnCategory = "layoffs"
	EarnLayoffsInterest                      EarnCategory = "layoffs_interest"
	EarnLicensingsMaternityOrPaternityLeaves EarnCategory = "licensings_maternity_or_paternity_leaves"
	EarnLicensingsPermitOrPaidLicenses       EarnCategory = "licensings_permit_or_paid_licenses"
	EarnLicensingsSuspensionOrUnpaidLeaves   EarnCategory = "licensings_suspension_or_unpaid_leaves"
	EarnEndowment                            EarnCategory = "endowment"
	EarnSustainmentSupport                   EarnCategory = "sustainment_support"
	EarnTelecommuting                        EarnCategory = "telecommuting"
	EarnCompanyWithdrawalBonus               EarnCategory = "company_withdrawal_bonus"
	EarnCompensation                         EarnCategory = "compensation"
	EarnRefund                               EarnCategory = "refund"
	EarnTransportsAssistance                 EarnCategory = "transports_assistance"
	EarnTransportsViatic                     EarnCategory = "transports_viatic"
	EarnTransportsNonSalaryViatic            EarnCategory = "transports_non_salary_viatic"
	EarnDailyOvertime                        EarnCategory = "daily_overtime"
	EarnOvertimeNightHours                   EarnCategory = "overtime_night_hours"
	EarnHoursNightSurcharge                  EarnCategory = "hours_night_surcharge"
	EarnSundayHolidayDailyOvertime           EarnCategory = "sunday_holiday_daily_overtime"
	EarnDailySurchargeHoursSundaysHolidays   EarnCategory = "daily_surcharge_hours_sundays_holidays"
	EarnSundayNightOvertimeHolidays          EarnCategory = "sunday_night_overtime_holidays"
	EarnSundayHolidaysNightSurchargeHours    EarnCategory = "sunday_holidays_night_surcharge_hours"
	EarnIncapacitiesCommon                   EarnCategory = "incapacities_common"
	EarnIncapacitiesProfessional             EarnCategory = "incapacities_professional"
	EarnIncapacitiesWorking                  EarnCategory = "incapacities_working"
	EarnBonuses                              EarnCategory = "bonuses"
	EarnBonusesNonSalary                     EarnCategory = "bonuses_non_salary"
	EarnAssistances                          EarnCategory = "assistances"
	EarnAssistancesNonSalary                 EarnCategory = "assistances_non_salary"
	EarnLegalStrikes                         EarnCategory = "legal_strikes"
	EarnOtherConcepts                        EarnCategory = "other_concepts"
	EarnOtherConceptsNonSalary               EarnCategory = "other_concepts_non_salary"
	EarnCompensationsOrdinary                EarnCategory = "compensations_ordinary"
	EarnCompensationsExtraordinary           EarnCategory = "compensations_extraordinary"
	EarnVouchers                             EarnCategory = "vouchers"
	EarnVouchersNonSalary                    EarnCategory = "vouchers_non_salary"
	EarnVouchersSalaryFood                   EarnCategory = "vouchers_salary_food"
	EarnVouchersNonSalaryFood                EarnCategory = "vouchers_non_salary_food"
	EarnCommissions                          EarnCategory = "commissions"
	EarnThirdPartyPayments                   EarnCategory = "third_party_payments"
	EarnAdvances                             EarnCategory = "advances"
)

var earnCategories = map[EarnCategory]struct{}{
	EarnBasic: {}, EarnVacationCommon: {}, EarnVacationCompensated: {}, EarnPrimas: {},
	EarnPrimasNonSalary: {}, EarnLayoffs: {}, EarnLayoffsInterest: {},
	EarnLicensingsMaternityOrPaternityLeaves: {}, EarnLicensingsPermitOrPaidLicenses: {},
	EarnLicensingsSuspensionOrUnpaidLeaves: {}, EarnEndowment: {}, EarnSustainmentSupport: {},
	EarnTelecommuting: {}, EarnCompanyWithdrawalBonus: {}, EarnCompensation: {}, EarnRefund: {},
	EarnTransportsAssistance: {}, EarnTransportsViatic: {}, EarnTransportsNonSalaryViatic: {},
	EarnDailyOvertime: {}, EarnOvertimeNightHours: {}, EarnHoursNightSurcharge: {},
	EarnSundayHolidayDailyOvertime: {}, EarnDailySurchargeHoursSundaysHolidays: {},
	EarnSundayNightOvertimeHolidays: {}, EarnSundayHolidaysNightSurchargeHours: {},
	EarnIncapacitiesCommon: {}, EarnIncapacitiesProfessional: {}, EarnIncapacitiesWorking: {},
	EarnBonuses: {}, EarnBonusesNonSalary: {}, EarnAssistances: {}, EarnAssistancesNonSalary: {},
	EarnLegalStrikes: {}, EarnOtherConcepts: {}, EarnOtherConceptsNonSalary: {},
	EarnCompensationsOrdinary: {}, EarnCompensationsExtraordinary: {}, EarnVouchers: {},
	EarnVouchersNonSalary: {}, EarnVouchersSalaryFood: {}, EarnVouchersNonSalaryFood: {},
	EarnCommissions: {}, EarnThirdPartyPayments: {}, EarnAdvances: {},
}

func (c EarnCategory) Valid() bool {
	_, ok := earnCategories[c]
	return ok
}

// CountsDays reports categories measured in days of absence.
func (c EarnCategory) CountsDays() bool {
	switch c {
	case EarnVacationCommon,
		EarnLicensingsMaternityOrPaternityLeaves,
		EarnLicensingsPermitOrPaidLicenses,
		EarnLicensingsSuspensionOrUnpaidLeaves,
		EarnIncapacitiesCommon,
		EarnIncapacitiesProfessional,
		EarnIncapacitiesWorking,
		EarnLegalStrikes:
		return true
	}
	return false
}

// CountsHours reports overtime and surcharge categories measured in hours.
func (c EarnCategory) CountsHours() bool {
	switch c {
	case EarnDailyOvertime,
		EarnOvertimeNightHours,
		EarnHoursNightSurcharge,
		EarnSundayHolidayDailyOvertime,
		EarnDailySurchargeHoursSundaysHolidays,
		EarnSundayNightOvertimeHolidays,
		EarnSundayHolidaysNightSurchargeHours:
		return true
	}
	return false
}

// DeductionCategory enum
type DeductionCategory string

const (
	DeductionHealth                         DeductionCategory = "health"
	DeductionPensionFund                    DeductionCategory = "pension_fund"
	DeductionPensionSecurityFund            DeductionCategory = "pension_security_fund"
	DeductionPensionSecurityFundSubsistence DeductionCategory = "pension_security_fund_subsistence"
	DeductionVoluntaryPension               DeductionCategory = "voluntary_pension"
	DeductionWithholdingSource              DeductionCategory = "withholding_source"
	DeductionAfc                            DeductionCategory = "afc"
	DeductionCooperative                    DeductionCategory = "cooperative"
	DeductionTaxLien                        DeductionCategory = "tax_lien"
	DeductionComplementaryPlans             DeductionCategory = "complementary_plans"
	DeductionEducation                      DeductionCategory = "education"
	DeductionRefund                         DeductionCategory = "refund"
	DeductionDebt                           DeductionCategory = "debt"
	DeductionTradeUnions                    DeductionCategory = "trade_unions"
	DeductionSanctionsPublic                DeductionCategory = "sanctions_public"
	DeductionSanctionsPrivate               DeductionCategory = "sanctions_private"
	DeductionLibranzas                      DeductionCategory = "libranzas"
	DeductionThirdPartyPayments             DeductionCategory = "third_party_payments"
	DeductionAdvances                       DeductionCategory = "advances"
	DeductionOtherDeductions                DeductionCategory = "other_deductions"
)

var deductionCategories = map[DeductionCategory]struct{}{
	DeductionHealth: {}, DeductionPensionFund: {}, DeductionPensionSecurityFund: {},
	DeductionPensionSecurityFundSubsistence: {}, DeductionVoluntaryPension: {},
	DeductionWithholdingSource: {}, DeductionAfc: {}, DeductionCooperative: {}, DeductionTaxLien: {},
	DeductionComplementaryPlans: {}, DeductionEducation: {}, DeductionRefund: {}, DeductionDebt: {},
	DeductionTradeUnions: {}, DeductionSanctionsPublic: {}, DeductionSanctionsPrivate: {},
	DeductionLibranzas: {}, DeductionThirdPartyPayments: {}, DeductionAdvances: {},
	DeductionOtherDeductions: {},
}

func (c DeductionCategory) Valid() bool {
	_, ok := deductionCategories[c]
	return ok
}

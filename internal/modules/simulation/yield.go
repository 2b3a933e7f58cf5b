package simulation

import (
	"math"

	"github.com/renix/renix/internal/modules/products"
)

const (
	daysPerYear   = 365
	daysPerMonth  = 30
	monthsPerYear = 12

	// estimatedAnnualInflation is the fixed IPCA estimate combined with
	// the real rate of inflation-linked treasuries. A reference constant,
	// not a caller input.
	estimatedAnnualInflation = 4.5

	// Savings accounts switch to a flat 0.5% monthly rate only when the
	// floating reference rate exceeds this threshold. At exactly 8.5 the
	// 70%-of-reference branch applies.
	savingsRateThreshold   = 8.5
	savingsFlatMonthlyRate = 0.5
	savingsReferenceShare  = 0.70

	// fundPerformanceBenchmark is the percentage gain above which a
	// fund's performance fee becomes payable.
	fundPerformanceBenchmark = 2.0
)

// dailyRate converts a nominal annual percentage rate into its
// daily-compounded equivalent.
func dailyRate(annualPct float64) float64 {
	return math.Pow(1+annualPct/100, 1.0/daysPerYear) - 1
}

// compound applies a per-period rate over n periods.
func compound(principal, periodRate, periods float64) float64 {
	return principal * math.Pow(1+periodRate, periods)
}

// yieldFormula computes the gross accumulated value for one product
// family. Formulas are total: defined for every numeric input, no errors.
type yieldFormula func(chars products.Normalized, principal float64, elapsedDays int, referenceRate float64) float64

// formulas dispatches one implementation per product family. A type
// missing from this table falls back to referenceCompounding, so an
// unrecognized variant degrades to plain reference-rate compounding
// instead of failing.
var formulas = map[products.Type]yieldFormula{
	products.FixedIncomeCDB:          indexedFixedIncome,
	products.FixedIncomeLCI:          indexedFixedIncome,
	products.FixedIncomeLCA:          indexedFixedIncome,
	products.TreasuryFloating:        indexedFixedIncome,
	products.TreasuryInflationLinked: inflationLinkedTreasury,
	products.TreasuryFixedRate:       fixedRateTreasury,
	products.SavingsAccount:          savingsAccount,
	products.FixedIncomeFund:         fund,
	products.MultiStrategyFund:       fund,
	products.Equities:                referenceCompounding,
	products.RealEstateFund:          referenceCompounding,
}

// GrossValue computes the gross accumulated value of a principal held for
// elapsedDays under the given product's formula, before any taxes.
// Administration and performance fees of funds are already deducted here;
// they are pre-tax costs, unlike the taxes computed downstream.
func GrossValue(productType products.Type, chars products.Normalized, principal float64, elapsedDays int, referenceRate float64) float64 {
	formula, ok := formulas[productType]
	if !ok {
		formula = referenceCompounding
	}
	return formula(chars, principal, elapsedDays, referenceRate)
}

// indexedFixedIncome compounds a percentage of the reference indexer's
// daily rate (CDB, LCI, LCA, floating-rate treasury).
func indexedFixedIncome(chars products.Normalized, principal float64, elapsedDays int, referenceRate float64) float64 {
	daily := dailyRate(referenceRate) * chars.PercentOfIndexer / 100
	return compound(principal, daily, float64(elapsedDays))
}

// inflationLinkedTreasury combines the contractual real rate with the
// estimated inflation rate before daily conversion.
func inflationLinkedTreasury(chars products.Normalized, principal float64, elapsedDays int, _ float64) float64 {
	combined := ((1+chars.AnnualRate/100)*(1+estimatedAnnualInflation/100) - 1) * 100
	return compound(principal, dailyRate(combined), float64(elapsedDays))
}

// fixedRateTreasury compounds the contractual annual rate daily, no
// indexer involved.
func fixedRateTreasury(chars products.Normalized, principal float64, elapsedDays int, _ float64) float64 {
	return compound(principal, dailyRate(chars.AnnualRate), float64(elapsedDays))
}

// savingsAccount compounds monthly. When the reference rate exceeds the
// threshold the rate is flat 0.5% a month; otherwise 70% of the reference
// rate divided over twelve months.
func savingsAccount(_ products.Normalized, principal float64, elapsedDays int, referenceRate float64) float64 {
	monthly := savingsFlatMonthlyRate
	if referenceRate <= savingsRateThreshold {
		monthly = referenceRate * savingsReferenceShare / monthsPerYear
	}
	months := float64(elapsedDays) / daysPerMonth
	return compound(principal, monthly/100, months)
}

// fund compounds the fund's stated annual rate, then deducts the
// administration cost on the gain and, above the performance benchmark,
// the performance fee on the excess gain.
func fund(chars products.Normalized, principal float64, elapsedDays int, _ float64) float64 {
	gross := compound(principal, dailyRate(chars.AnnualRate), float64(elapsedDays))
	gain := gross - principal

	gross -= gain * chars.AdminFee / 100

	gainPct := gain / principal * 100
	if gainPct > fundPerformanceBenchmark {
		excess := gain - principal*fundPerformanceBenchmark/100
		gross -= chars.PerformanceFee / 100 * excess
	}

	return gross
}

// referenceCompounding is the default rule: plain compounding at the
// reference daily rate (equities, real-estate funds, unknown variants).
func referenceCompounding(_ products.Normalized, principal float64, elapsedDays int, referenceRate float64) float64 {
	return compound(principal, dailyRate(referenceRate), float64(elapsedDays))
}

// Package simulation implements the investment return and tax computation
// engine: gross yield per product family, regressive transaction and
// income taxes, and the net-return projection assembled from both.
//
// Every function here is deterministic and free of I/O. Malformed input
// (non-positive principal, end date not after start date, unknown product
// tag) is rejected by NewInvestment before it can reach the formulas; the
// formulas themselves are total over well-formed input and never fail.
package simulation

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/renix/renix/internal/modules/products"
	"github.com/renix/renix/internal/modules/rates"
)

// Investment is a validated, fully-resolved investment instance. The
// reference rate is captured from the snapshot at creation time; later
// snapshot changes never retroactively affect a computed result.
type Investment struct {
	ProductType     products.Type
	Characteristics products.Normalized
	Principal       float64
	StartDate       time.Time
	EndDate         time.Time
	ElapsedDays     int     // ceil(EndDate - StartDate) in whole days, always >= 1
	ReferenceRate   float64 // indexer's nominal annual %, immutable once captured
}

// NewInvestment validates caller-supplied data and resolves it into an
// Investment. The elapsed holding period is the ceiling of the date
// difference in whole days, so the strictly-after requirement guarantees
// at least one day and the annualized-return division is always defined.
func NewInvestment(
	productType products.Type,
	chars products.Characteristics,
	principal float64,
	startDate, endDate time.Time,
	snapshot rates.Snapshot,
) (Investment, error) {
	if principal <= 0 {
		return Investment{}, fmt.Errorf("principal must be positive, got %v", principal)
	}
	if !endDate.After(startDate) {
		return Investment{}, fmt.Errorf("end date must be strictly after start date")
	}

	normalized := chars.Normalize(productType)
	elapsedDays := int(math.Ceil(endDate.Sub(startDate).Hours() / 24))

	return Investment{
		ProductType:     productType,
		Characteristics: normalized,
		Principal:       principal,
		StartDate:       startDate,
		EndDate:         endDate,
		ElapsedDays:     elapsedDays,
		ReferenceRate:   snapshot.RateFor(normalized.Indexer),
	}, nil
}

// ComputationResult is the immutable output record of one computation.
// Invariants: 0 <= NetValue <= GrossValue when GrossValue >= Principal,
// NetValue = GrossValue - TransactionTax - IncomeTax, and both tax
// amounts are exactly zero for tax-exempt product types.
//
// All fields carry full float64 precision; rounding happens only at the
// serialization boundary via Rounded.
type ComputationResult struct {
	GrossValue       float64 `json:"gross_value"`
	TransactionTax   float64 `json:"transaction_tax"`
	IncomeTax        float64 `json:"income_tax"`
	NetValue         float64 `json:"net_value"`
	PercentageReturn float64 `json:"percentage_return"`
	AnnualizedReturn float64 `json:"annualized_return"`
	ProjectedValue   float64 `json:"projected_value"`
}

// RoundedResult is a ComputationResult with currency fields rounded to 2
// decimal places for the persistence/report layer. Percentage fields are
// passed through untouched; they are not currency.
type RoundedResult struct {
	GrossValue       float64 `json:"gross_value"`
	TransactionTax   float64 `json:"transaction_tax"`
	IncomeTax        float64 `json:"income_tax"`
	NetValue         float64 `json:"net_value"`
	PercentageReturn float64 `json:"percentage_return"`
	AnnualizedReturn float64 `json:"annualized_return"`
	ProjectedValue   float64 `json:"projected_value"`
}

// Rounded rounds the currency fields to 2 decimal places. Rounding goes
// through shopspring/decimal so 2.675-style values round half-up instead
// of inheriting binary-float truncation.
func (r ComputationResult) Rounded() RoundedResult {
	return RoundedResult{
		GrossValue:       round2(r.GrossValue),
		TransactionTax:   round2(r.TransactionTax),
		IncomeTax:        round2(r.IncomeTax),
		NetValue:         round2(r.NetValue),
		PercentageReturn: r.PercentageReturn,
		AnnualizedReturn: r.AnnualizedReturn,
		ProjectedValue:   round2(r.ProjectedValue),
	}
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Package products defines the investment product taxonomy and the
// per-product characteristics consumed by the simulation engine.
package products

import "fmt"

// Type identifies a product family. The family selects the yield formula
// and the tax treatment applied by the simulation engine.
type Type string

const (
	FixedIncomeCDB          Type = "fixed_income_cdb"
	FixedIncomeLCI          Type = "fixed_income_lci"
	FixedIncomeLCA          Type = "fixed_income_lca"
	TreasuryFloating        Type = "treasury_floating"
	TreasuryInflationLinked Type = "treasury_inflation_linked"
	TreasuryFixedRate       Type = "treasury_fixed_rate"
	SavingsAccount          Type = "savings_account"
	FixedIncomeFund         Type = "fixed_income_fund"
	MultiStrategyFund       Type = "multi_strategy_fund"
	Equities                Type = "equities"
	RealEstateFund          Type = "real_estate_fund"
)

// All lists every known product type.
var All = []Type{
	FixedIncomeCDB,
	FixedIncomeLCI,
	FixedIncomeLCA,
	TreasuryFloating,
	TreasuryInflationLinked,
	TreasuryFixedRate,
	SavingsAccount,
	FixedIncomeFund,
	MultiStrategyFund,
	Equities,
	RealEstateFund,
}

// Parse converts a wire tag into a Type, rejecting unknown tags.
// The engine itself is total over known types; rejection of unknown tags
// happens here, at the validation boundary.
func Parse(tag string) (Type, error) {
	t := Type(tag)
	for _, known := range All {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown product type %q", tag)
}

// IsTaxExempt reports whether the product is exempt from both the
// transaction tax and the income tax, regardless of holding period.
// This is the single capability query consulted by the tax engine, so the
// exemption set cannot drift between the two taxes.
func IsTaxExempt(t Type) bool {
	return t == FixedIncomeLCI || t == FixedIncomeLCA
}

// IsIndexerBased reports whether the product compounds a percentage of a
// floating reference rate rather than its own contractual rate.
func IsIndexerBased(t Type) bool {
	switch t {
	case FixedIncomeCDB, FixedIncomeLCI, FixedIncomeLCA, TreasuryFloating:
		return true
	}
	return false
}

// IsFund reports whether the product carries administration and
// performance fees.
func IsFund(t Type) bool {
	return t == FixedIncomeFund || t == MultiStrategyFund
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

package simulation

import "github.com/renix/renix/internal/modules/products"

// Transaction tax (IOF-equivalent): regressive over the first 30 days of
// holding, applied to realized profit only, never to principal.
const (
	transactionTaxWindowDays = 30
	transactionTaxDailyRate  = 0.0033
)

// Income tax (IR-equivalent) brackets, by total holding duration in days.
const (
	incomeTaxRateShort   = 0.225 // <= 180 days
	incomeTaxRateMid     = 0.20  // 181-360 days
	incomeTaxRateLong    = 0.175 // 361-720 days
	incomeTaxRateLongest = 0.15  // > 720 days
)

// TransactionTaxRate returns the transaction tax rate for the holding
// period: (30 - elapsedDays) * 0.0033, floored at zero. Strictly
// decreasing inside the window, exactly zero from day 30 on.
func TransactionTaxRate(elapsedDays int) float64 {
	remaining := transactionTaxWindowDays - elapsedDays
	if remaining <= 0 {
		return 0
	}
	return float64(remaining) * transactionTaxDailyRate
}

// TransactionTax computes the transaction tax amount on realized profit.
// Exempt products short-circuit to zero before any window logic; losses
// carry no tax.
func TransactionTax(profit float64, elapsedDays int, productType products.Type) float64 {
	if products.IsTaxExempt(productType) {
		return 0
	}
	if profit <= 0 {
		return 0
	}
	return profit * TransactionTaxRate(elapsedDays)
}

// IncomeTaxRate returns the regressive income tax rate for the holding
// period. Exempt products short-circuit to zero before the bracket table.
func IncomeTaxRate(elapsedDays int, productType products.Type) float64 {
	if products.IsTaxExempt(productType) {
		return 0
	}
	switch {
	case elapsedDays <= 180:
		return incomeTaxRateShort
	case elapsedDays <= 360:
		return incomeTaxRateMid
	case elapsedDays <= 720:
		return incomeTaxRateLong
	default:
		return incomeTaxRateLongest
	}
}

// IncomeTax computes the income tax amount on profit net of the
// transaction tax.
func IncomeTax(profitNetOfTransactionTax, rate float64, productType products.Type) float64 {
	if products.IsTaxExempt(productType) {
		return 0
	}
	if profitNetOfTransactionTax <= 0 {
		return 0
	}
	return profitNetOfTransactionTax * rate
}

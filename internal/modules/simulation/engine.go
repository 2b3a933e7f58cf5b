package simulation

import (
	"math"
	"time"

	"github.com/rs/zerolog"
)

// Engine orchestrates the yield calculator and the tax engine into a
// ComputationResult. It holds no state across calls; concurrent Compute
// calls need no coordination.
type Engine struct {
	numWorkers int
	log        zerolog.Logger
}

// NewEngine creates an engine. numWorkers bounds batch parallelism; a
// non-positive value defaults to 10.
func NewEngine(numWorkers int, log zerolog.Logger) *Engine {
	if numWorkers <= 0 {
		numWorkers = 10
	}
	return &Engine{
		numWorkers: numWorkers,
		log:        log.With().Str("component", "simulation_engine").Logger(),
	}
}

// Compute runs one full computation. The deduction order is fixed and
// must not be reordered: gross, then profit, then transaction tax on
// profit, then income tax on profit net of the transaction tax, then net.
// now is the reference instant for the projected-value horizon; passing
// it in keeps the computation deterministic.
func (e *Engine) Compute(inv Investment, now time.Time) ComputationResult {
	gross := GrossValue(inv.ProductType, inv.Characteristics, inv.Principal, inv.ElapsedDays, inv.ReferenceRate)
	profit := gross - inv.Principal

	transactionTax := TransactionTax(profit, inv.ElapsedDays, inv.ProductType)
	incomeTaxRate := IncomeTaxRate(inv.ElapsedDays, inv.ProductType)
	incomeTax := IncomeTax(profit-transactionTax, incomeTaxRate, inv.ProductType)

	net := gross - transactionTax - incomeTax

	percentageReturn := (net - inv.Principal) / inv.Principal * 100
	annualizedReturn := percentageReturn * daysPerYear / float64(inv.ElapsedDays)

	return ComputationResult{
		GrossValue:       gross,
		TransactionTax:   transactionTax,
		IncomeTax:        incomeTax,
		NetValue:         net,
		PercentageReturn: percentageReturn,
		AnnualizedReturn: annualizedReturn,
		ProjectedValue:   projectedValue(inv, gross, net, now),
	}
}

// projectedValue compounds the net value over the days remaining between
// now and the investment's end date, at the effective daily rate realized
// by the gross computation. An investment already past its end date (or a
// degenerate gross) projects to the net value unchanged.
func projectedValue(inv Investment, gross, net float64, now time.Time) float64 {
	remaining := math.Ceil(inv.EndDate.Sub(now).Hours() / 24)
	if remaining <= 0 {
		return net
	}
	if gross <= 0 {
		return net
	}

	daily := math.Pow(gross/inv.Principal, 1/float64(inv.ElapsedDays)) - 1
	return net * math.Pow(1+daily, remaining)
}

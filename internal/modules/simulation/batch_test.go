package simulation

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renix/renix/internal/modules/products"
)

func TestComputeBatch_Empty(t *testing.T) {
	engine := NewEngine(4, zerolog.Nop())
	assert.Empty(t, engine.ComputeBatch(nil, time.Now()))
	assert.Empty(t, engine.ComputeBatch([]Investment{}, time.Now()))
}

func TestComputeBatch_MatchesSequentialCompute(t *testing.T) {
	engine := NewEngine(4, zerolog.Nop())
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	investments := []Investment{
		testInvestment(t, products.FixedIncomeCDB, products.Characteristics{PercentOfIndexer: floatPtr(110)}, 10000, 365),
		testInvestment(t, products.FixedIncomeLCA, products.Characteristics{}, 5000, 180),
		testInvestment(t, products.SavingsAccount, products.Characteristics{}, 2500, 90),
		testInvestment(t, products.TreasuryFixedRate, products.Characteristics{AnnualRate: floatPtr(11.25)}, 8000, 720),
		testInvestment(t, products.MultiStrategyFund, products.Characteristics{AnnualRate: floatPtr(14.0), AdminFee: 2.0, PerformanceFee: 20.0}, 3000, 400),
	}

	batched := engine.ComputeBatch(investments, now)
	require.Len(t, batched, len(investments))

	// Order preserved, bit-identical with sequential computation.
	for i, inv := range investments {
		assert.Equal(t, engine.Compute(inv, now), batched[i], "result %d", i)
	}
}

func TestComputeBatch_MoreWorkersThanJobs(t *testing.T) {
	engine := NewEngine(32, zerolog.Nop())
	now := time.Now()

	investments := []Investment{
		testInvestment(t, products.FixedIncomeCDB, products.Characteristics{}, 1000, 30),
	}

	results := engine.ComputeBatch(investments, now)
	require.Len(t, results, 1)
	assert.Equal(t, engine.Compute(investments[0], now), results[0])
}

func TestSummarize(t *testing.T) {
	investments := []Investment{
		{Principal: 10000},
		{Principal: 30000},
	}
	results := []ComputationResult{
		{GrossValue: 11000, NetValue: 10800, TransactionTax: 50, IncomeTax: 150, AnnualizedReturn: 8.0},
		{GrossValue: 33000, NetValue: 32400, TransactionTax: 0, IncomeTax: 600, AnnualizedReturn: 10.0},
	}

	summary := Summarize(investments, results)

	assert.Equal(t, 2, summary.Count)
	assert.InDelta(t, 40000.0, summary.TotalPrincipal, 1e-9)
	assert.InDelta(t, 44000.0, summary.TotalGross, 1e-9)
	assert.InDelta(t, 43200.0, summary.TotalNet, 1e-9)
	assert.InDelta(t, 800.0, summary.TotalTaxes, 1e-9)

	// Weighted by principal: (10000*8 + 30000*10) / 40000.
	assert.InDelta(t, 9.5, summary.WeightedAnnualizedReturn, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, BatchSummary{}, Summarize(nil, nil))
}

func TestSummarize_MismatchedLengths(t *testing.T) {
	investments := []Investment{{Principal: 100}}
	assert.Equal(t, BatchSummary{}, Summarize(investments, nil))
}

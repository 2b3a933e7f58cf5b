package simulation

import (
	"sync"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// BatchSummary aggregates a batch of computations into portfolio-level
// figures. The annualized return is weighted by principal.
type BatchSummary struct {
	Count                    int     `json:"count"`
	TotalPrincipal           float64 `json:"total_principal"`
	TotalGross               float64 `json:"total_gross"`
	TotalNet                 float64 `json:"total_net"`
	TotalTaxes               float64 `json:"total_taxes"`
	WeightedAnnualizedReturn float64 `json:"weighted_annualized_return"`
}

// ComputeBatch computes many investments against the same instant in
// parallel. Results preserve input order. Every worker reads only its own
// jobs and the shared immutable inputs, so no locking is needed.
func (e *Engine) ComputeBatch(investments []Investment, now time.Time) []ComputationResult {
	numInvestments := len(investments)
	if numInvestments == 0 {
		return []ComputationResult{}
	}

	jobs := make(chan batchJob, numInvestments)
	results := make(chan batchResult, numInvestments)

	numWorkers := e.numWorkers
	if numInvestments < numWorkers {
		numWorkers = numInvestments
	}

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results <- batchResult{
					index:  job.index,
					result: e.Compute(job.investment, now),
				}
			}
		}()
	}

	for idx, inv := range investments {
		jobs <- batchJob{index: idx, investment: inv}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	ordered := make([]ComputationResult, numInvestments)
	for r := range results {
		ordered[r.index] = r.result
	}

	return ordered
}

// batchJob carries one investment and its position in the input slice.
type batchJob struct {
	index      int
	investment Investment
}

// batchResult carries one computation back with its position.
type batchResult struct {
	index  int
	result ComputationResult
}

// Summarize folds per-investment results into a BatchSummary. investments
// and results must be parallel slices as returned by ComputeBatch.
func Summarize(investments []Investment, results []ComputationResult) BatchSummary {
	n := len(results)
	if n == 0 || n != len(investments) {
		return BatchSummary{}
	}

	principals := make([]float64, n)
	grosses := make([]float64, n)
	nets := make([]float64, n)
	taxes := make([]float64, n)
	annualized := make([]float64, n)
	for i, r := range results {
		principals[i] = investments[i].Principal
		grosses[i] = r.GrossValue
		nets[i] = r.NetValue
		taxes[i] = r.TransactionTax + r.IncomeTax
		annualized[i] = r.AnnualizedReturn
	}

	return BatchSummary{
		Count:                    n,
		TotalPrincipal:           floats.Sum(principals),
		TotalGross:               floats.Sum(grosses),
		TotalNet:                 floats.Sum(nets),
		TotalTaxes:               floats.Sum(taxes),
		WeightedAnnualizedReturn: stat.Mean(annualized, principals),
	}
}

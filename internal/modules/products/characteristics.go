package products

// DefaultPercentOfIndexer is used when an indexer-based product does not
// state its own percentage (100 = track the indexer exactly).
const DefaultPercentOfIndexer = 100.0

// Characteristics holds the per-investment parameters supplied by the
// caller. Optional fields are pointers; Normalized resolves them into a
// fully-populated record so the formula code never carries "or default"
// branches. Fields irrelevant to a product's formula branch are carried
// but never consulted.
type Characteristics struct {
	AnnualRate       *float64 `json:"annual_rate,omitempty"`        // Nominal annual %, rate-based products
	Indexer          string   `json:"indexer,omitempty"`            // e.g. "CDI", "SELIC", "IPCA"
	PercentOfIndexer *float64 `json:"percent_of_indexer,omitempty"` // % of the indexer, indexer-based products
	RiskLevel        int      `json:"risk_level,omitempty"`         // 1-5
	LiquidityTier    int      `json:"liquidity_tier,omitempty"`     // 1-5
	Guaranteed       bool     `json:"guaranteed,omitempty"`         // FGC-style principal guarantee, informational
	AdminFee         float64  `json:"admin_fee,omitempty"`          // Annual %, funds only
	PerformanceFee   float64  `json:"performance_fee,omitempty"`    // % above benchmark, funds only
	MinimumAmount    float64  `json:"minimum_amount,omitempty"`
}

// Normalized is a Characteristics record with every optional field
// resolved. The simulation formulas consume only this form.
type Normalized struct {
	AnnualRate       float64 // 0 when absent: a rate-based product without a rate yields zero growth
	Indexer          string
	PercentOfIndexer float64
	RiskLevel        int
	LiquidityTier    int
	Guaranteed       bool
	AdminFee         float64
	PerformanceFee   float64
	MinimumAmount    float64
}

// Normalize resolves optional characteristics into a fully-populated
// record for the given product type. Missing percent-of-indexer defaults
// to 100; a missing annual rate resolves to zero, which compounds to zero
// growth rather than failing.
func (c Characteristics) Normalize(t Type) Normalized {
	n := Normalized{
		Indexer:          c.Indexer,
		PercentOfIndexer: DefaultPercentOfIndexer,
		RiskLevel:        c.RiskLevel,
		LiquidityTier:    c.LiquidityTier,
		Guaranteed:       c.Guaranteed,
		AdminFee:         c.AdminFee,
		PerformanceFee:   c.PerformanceFee,
		MinimumAmount:    c.MinimumAmount,
	}
	if c.AnnualRate != nil {
		n.AnnualRate = *c.AnnualRate
	}
	if c.PercentOfIndexer != nil {
		n.PercentOfIndexer = *c.PercentOfIndexer
	}
	if n.Indexer == "" && IsIndexerBased(t) {
		n.Indexer = "CDI"
	}
	return n
}

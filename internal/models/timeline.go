package models

// TimelineStage is one row of the design-bid-build delivery timeline.
type TimelineStage struct {
	Stage      string
	Duration   string
	Cumulative string
}

// CostBand is one specification level of the cost scenario comparison.
type CostBand struct {
	Scenario    string
	SpecLevel   string
	RangeSAR    string
	OpexProfile string
	Baseline    bool
}

package models

// AlgorithmSummary aggregates every run record sharing one algorithm.
type AlgorithmSummary struct {
	Algorithm Algorithm `json:"algorithm"`

	// Averages are arithmetic means over the bucket's records.
	AvgExecutionTime float64 `json:"avgExecutionTime"`
	AvgMemoryUsage   float64 `json:"avgMemoryUsage"`
	AvgAccuracy      float64 `json:"avgAccuracy"`
	AvgWordAccuracy  float64 `json:"avgWordAccuracy"`

	// Count is the number of records in the bucket, always > 0:
	// empty buckets are omitted rather than emitted with zeros.
	Count int `json:"count"`

	// Sizes are the distinct grid sizes seen for this algorithm,
	// sorted ascending.
	Sizes []int `json:"sizes"`
}

// SizeSummary is the analogous aggregate keyed by grid size.
type SizeSummary struct {
	Size             int     `json:"size"`
	AvgExecutionTime float64 `json:"avgExecutionTime"`
	AvgMemoryUsage   float64 `json:"avgMemoryUsage"`
	AvgAccuracy      float64 `json:"avgAccuracy"`
	AvgWordAccuracy  float64 `json:"avgWordAccuracy"`
	Count            int     `json:"count"`
}

// AlgorithmSizeSummary is the aggregate keyed by (algorithm, size).
type AlgorithmSizeSummary struct {
	Algorithm        Algorithm `json:"algorithm"`
	Size             int       `json:"size"`
	AvgExecutionTime float64   `json:"avgExecutionTime"`
	AvgMemoryUsage   float64   `json:"avgMemoryUsage"`
	AvgAccuracy      float64   `json:"avgAccuracy"`
	AvgWordAccuracy  float64   `json:"avgWordAccuracy"`
	Count            int       `json:"count"`
}

// Ranking classifies algorithm summaries into tolerance-banded leader
// groups per metric, plus a single composite overall winner. Each
// group is non-empty whenever the input was non-empty; a group with
// more than one entry is a tie within tolerance.
type Ranking struct {
	BestAccuracy  []*AlgorithmSummary `json:"bestAccuracy"`
	Fastest       []*AlgorithmSummary `json:"fastest"`
	MostEfficient []*AlgorithmSummary `json:"mostEfficient"`
	OverallBest   *AlgorithmSummary   `json:"overallBest"`
}

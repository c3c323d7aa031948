package model

// Summary holds the counters shown on the console dashboard.
type Summary struct {
	RunsActive          int
	RunsFailed          int
	EvaluationsImproved int
	EvaluationsTotal    int
	DeploymentsHealthy  int
	DeploymentsTotal    int
	AlertsOpen          int
	AlertsCritical      int
	DatasetBytes        uint64
	DatasetCount        int
}

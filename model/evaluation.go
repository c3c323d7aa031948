package model

import (
	"fmt"
	"strings"
	"time"
)

// Evaluation is a benchmark result of a model version on one dataset.
type Evaluation struct {
	ID             string    `json:"id" yaml:"id"`
	Model          string    `json:"model" yaml:"model"`
	Version        string    `json:"version" yaml:"version"`
	Product        Product   `json:"product" yaml:"product"`
	Dataset        string    `json:"dataset" yaml:"dataset"`
	Metric         string    `json:"metric" yaml:"metric"`
	Score          float64   `json:"score" yaml:"score"`
	Baseline       *float64  `json:"baseline" yaml:"baseline"`
	HigherIsBetter bool      `json:"higher_is_better" yaml:"higher_is_better"`
	EvaluatedAt    time.Time `json:"evaluated_at" yaml:"evaluated_at"`
}

func (e *Evaluation) RowID() string { return e.ID }

func (e *Evaluation) SearchText() string {
	return strings.Join([]string{e.Model, e.Version, string(e.Product), e.Dataset, e.Metric}, " ")
}

// Delta returns score minus baseline, or nil without a baseline.
func (e *Evaluation) Delta() *float64 {
	if e.Baseline == nil {
		return nil
	}
	d := e.Score - *e.Baseline
	return &d
}

// Improved reports whether the score beats the baseline in the metric's direction.
func (e *Evaluation) Improved() bool {
	d := e.Delta()
	if d == nil {
		return false
	}
	if e.HigherIsBetter {
		return *d > 0
	}
	return *d < 0
}

func (e *Evaluation) ToDetails() []KeyValuePair {
	baseline := ""
	if e.Baseline != nil {
		baseline = fmt.Sprintf("%.4f", *e.Baseline)
	}
	return []KeyValuePair{
		{Key: "Model", Value: e.Model + " " + e.Version},
		{Key: "Product", Value: string(e.Product)},
		{Key: "Dataset", Value: e.Dataset},
		{Key: "Metric", Value: e.Metric},
		{Key: "Score", Value: fmt.Sprintf("%.4f", e.Score)},
		{Key: "Baseline", Value: baseline},
		{Key: "Evaluated", Value: e.EvaluatedAt.Format(time.RFC3339)},
	}
}

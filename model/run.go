package model

import (
	"fmt"
	"strings"
	"time"
)

type RunStatus string

const (
	RunStatusQueued    RunStatus = "queued"
	RunStatusRunning   RunStatus = "running"
	RunStatusSucceeded RunStatus = "succeeded"
	RunStatusFailed    RunStatus = "failed"
)

// TrainingRun is one model training job as reported by the training cluster.
type TrainingRun struct {
	ID         string     `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	Product    Product    `json:"product" yaml:"product"`
	Model      string     `json:"model" yaml:"model"`
	Status     RunStatus  `json:"status" yaml:"status"`
	Epoch      int        `json:"epoch" yaml:"epoch"`
	Epochs     int        `json:"epochs" yaml:"epochs"`
	Loss       *float64   `json:"loss" yaml:"loss"`
	GPUs       int        `json:"gpus" yaml:"gpus"`
	Owner      string     `json:"owner" yaml:"owner"`
	StartedAt  time.Time  `json:"started_at" yaml:"started_at"`
	FinishedAt *time.Time `json:"finished_at" yaml:"finished_at"`
}

func (r *TrainingRun) RowID() string { return r.ID }

func (r *TrainingRun) SearchText() string {
	return strings.Join([]string{r.Name, string(r.Product), r.Model, string(r.Status), r.Owner}, " ")
}

// Progress returns the completed share of epochs in [0, 1].
func (r *TrainingRun) Progress() float64 {
	if r.Epochs <= 0 {
		return 0
	}
	return min(1, float64(r.Epoch)/float64(r.Epochs))
}

func (r *TrainingRun) ToDetails() []KeyValuePair {
	loss := ""
	if r.Loss != nil {
		loss = fmt.Sprintf("%.4f", *r.Loss)
	}
	finished := ""
	if r.FinishedAt != nil {
		finished = r.FinishedAt.Format(time.RFC3339)
	}
	return []KeyValuePair{
		{Key: "Run", Value: r.Name},
		{Key: "Product", Value: string(r.Product)},
		{Key: "Model", Value: r.Model},
		{Key: "Status", Value: string(r.Status)},
		{Key: "Epoch", Value: fmt.Sprintf("%d / %d", r.Epoch, r.Epochs)},
		{Key: "Loss", Value: loss},
		{Key: "GPUs", Value: fmt.Sprint(r.GPUs)},
		{Key: "Owner", Value: r.Owner},
		{Key: "Started", Value: r.StartedAt.Format(time.RFC3339)},
		{Key: "Finished", Value: finished},
	}
}

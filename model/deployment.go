package model

import (
	"fmt"
	"strings"
	"time"
)

type DeploymentStatus string

const (
	DeploymentHealthy    DeploymentStatus = "healthy"
	DeploymentDegraded   DeploymentStatus = "degraded"
	DeploymentRollingOut DeploymentStatus = "rolling-out"
	DeploymentRolledBack DeploymentStatus = "rolled-back"
)

// Deployment is a model version serving traffic in one environment.
type Deployment struct {
	ID           string           `json:"id" yaml:"id"`
	Model        string           `json:"model" yaml:"model"`
	Version      string           `json:"version" yaml:"version"`
	Product      Product          `json:"product" yaml:"product"`
	Environment  string           `json:"environment" yaml:"environment"`
	Status       DeploymentStatus `json:"status" yaml:"status"`
	TrafficShare float64          `json:"traffic_share" yaml:"traffic_share"`
	LatencyP95Ms float64          `json:"latency_p95_ms" yaml:"latency_p95_ms"`
	ErrorRate    float64          `json:"error_rate" yaml:"error_rate"`
	Replicas     int              `json:"replicas" yaml:"replicas"`
	DeployedAt   time.Time        `json:"deployed_at" yaml:"deployed_at"`
}

func (d *Deployment) RowID() string { return d.ID }

func (d *Deployment) SearchText() string {
	return strings.Join([]string{d.Model, d.Version, string(d.Product), d.Environment, string(d.Status)}, " ")
}

func (d *Deployment) ToDetails() []KeyValuePair {
	return []KeyValuePair{
		{Key: "Model", Value: d.Model + " " + d.Version},
		{Key: "Product", Value: string(d.Product)},
		{Key: "Environment", Value: d.Environment},
		{Key: "Status", Value: string(d.Status)},
		{Key: "Traffic", Value: fmt.Sprintf("%.0f%%", d.TrafficShare*100)},
		{Key: "Latency p95", Value: fmt.Sprintf("%.0f ms", d.LatencyP95Ms)},
		{Key: "Error rate", Value: fmt.Sprintf("%.2f%%", d.ErrorRate*100)},
		{Key: "Replicas", Value: fmt.Sprint(d.Replicas)},
		{Key: "Deployed", Value: d.DeployedAt.Format(time.RFC3339)},
	}
}

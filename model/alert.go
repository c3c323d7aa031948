package model

import (
	"strings"
	"time"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Rank orders severities from most to least urgent.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityWarning:
		return 1
	case SeverityInfo:
		return 2
	default:
		return 3
	}
}

// Alert is a monitoring alert raised against a model or pipeline.
type Alert struct {
	ID             string     `json:"id" yaml:"id"`
	Title          string     `json:"title" yaml:"title"`
	Severity       Severity   `json:"severity" yaml:"severity"`
	Product        Product    `json:"product" yaml:"product"`
	Source         string     `json:"source" yaml:"source"`
	Message        string     `json:"message" yaml:"message"`
	RaisedAt       time.Time  `json:"raised_at" yaml:"raised_at"`
	AcknowledgedBy string     `json:"acknowledged_by" yaml:"acknowledged_by"`
	ResolvedAt     *time.Time `json:"resolved_at" yaml:"resolved_at"`
}

func (a *Alert) RowID() string { return a.ID }

func (a *Alert) SearchText() string {
	return strings.Join([]string{a.Title, string(a.Severity), string(a.Product), a.Source, a.Message, a.AcknowledgedBy}, " ")
}

func (a *Alert) Open() bool {
	return a.ResolvedAt == nil
}

func (a *Alert) ToDetails() []KeyValuePair {
	resolved := ""
	if a.ResolvedAt != nil {
		resolved = a.ResolvedAt.Format(time.RFC3339)
	}
	return []KeyValuePair{
		{Key: "Alert", Value: a.Title},
		{Key: "Severity", Value: string(a.Severity)},
		{Key: "Product", Value: string(a.Product)},
		{Key: "Source", Value: a.Source},
		{Key: "Message", Value: a.Message},
		{Key: "Raised", Value: a.RaisedAt.Format(time.RFC3339)},
		{Key: "Acknowledged by", Value: a.AcknowledgedBy},
		{Key: "Resolved", Value: resolved},
	}
}

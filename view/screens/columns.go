package screens

import (
	"fmt"

	"github.com/aiops-console/console/model"
	"github.com/aiops-console/console/view/components"
	"github.com/aiops-console/console/view/table"

	"github.com/dustin/go-humanize"
)

const numeric = "numeric"

func RunColumns() []table.Column[*model.TrainingRun] {
	return []table.Column[*model.TrainingRun]{
		{Key: "name", Header: "Run", Sortable: true, Value: func(r *model.TrainingRun) any { return r.Name }},
		{Key: "product", Header: "Product", Sortable: true, Value: func(r *model.TrainingRun) any { return r.Product }},
		{
			Key:      "status",
			Header:   "Status",
			Sortable: true,
			Value:    func(r *model.TrainingRun) any { return r.Status },
			Render: func(r *model.TrainingRun) table.Cell {
				return table.Component(components.Badge(string(r.Status), runTone(r.Status)))
			},
		},
		{
			Key:      "epoch",
			Header:   "Epoch",
			Sortable: true,
			Value:    func(r *model.TrainingRun) any { return r.Epoch },
			Render: func(r *model.TrainingRun) table.Cell {
				return table.Component(components.ProgressBar(r.Progress(), fmt.Sprintf("%d / %d", r.Epoch, r.Epochs)))
			},
		},
		{Key: "loss", Header: "Loss", Sortable: true, Class: numeric, Value: func(r *model.TrainingRun) any { return r.Loss }},
		{Key: "gpus", Header: "GPUs", Class: numeric, Value: func(r *model.TrainingRun) any { return r.GPUs }},
		{Key: "owner", Header: "Owner", Value: func(r *model.TrainingRun) any { return r.Owner }},
		{
			Key:      "started",
			Header:   "Started",
			Sortable: true,
			Value:    func(r *model.TrainingRun) any { return r.StartedAt },
			Render:   func(r *model.TrainingRun) table.Cell { return table.Component(components.Since(r.StartedAt)) },
		},
	}
}

func EvaluationColumns() []table.Column[*model.Evaluation] {
	return []table.Column[*model.Evaluation]{
		{Key: "model", Header: "Model", Sortable: true, Value: func(e *model.Evaluation) any { return e.Model + " " + e.Version }},
		{Key: "product", Header: "Product", Value: func(e *model.Evaluation) any { return e.Product }},
		{Key: "dataset", Header: "Dataset", Sortable: true, Value: func(e *model.Evaluation) any { return e.Dataset }},
		{Key: "metric", Header: "Metric", Sortable: true, Value: func(e *model.Evaluation) any { return e.Metric }},
		{Key: "score", Header: "Score", Sortable: true, Class: numeric, Value: func(e *model.Evaluation) any { return e.Score }},
		{Key: "baseline", Header: "Baseline", Sortable: true, Class: numeric, Value: func(e *model.Evaluation) any { return e.Baseline }},
		{
			Key:    "delta",
			Header: "Delta",
			Class:  numeric,
			Value:  func(e *model.Evaluation) any { return e.Delta() },
			Render: func(e *model.Evaluation) table.Cell {
				d := e.Delta()
				if d == nil {
					return table.Text("")
				}
				tone := components.ToneBad
				if e.Improved() {
					tone = components.ToneGood
				}
				return table.Component(components.Badge(fmt.Sprintf("%+.4f", *d), tone))
			},
		},
		{
			Key:    "evaluated",
			Header: "Evaluated",
			Value:  func(e *model.Evaluation) any { return e.EvaluatedAt },
			Render: func(e *model.Evaluation) table.Cell { return table.Component(components.Since(e.EvaluatedAt)) },
		},
	}
}

func DeploymentColumns() []table.Column[*model.Deployment] {
	return []table.Column[*model.Deployment]{
		{Key: "model", Header: "Model", Sortable: true, Value: func(d *model.Deployment) any { return d.Model }},
		{Key: "version", Header: "Version", Sortable: true, Value: func(d *model.Deployment) any { return d.Version }},
		{Key: "environment", Header: "Environment", Sortable: true, Value: func(d *model.Deployment) any { return d.Environment }},
		{
			Key:      "status",
			Header:   "Status",
			Sortable: true,
			Value:    func(d *model.Deployment) any { return d.Status },
			Render: func(d *model.Deployment) table.Cell {
				return table.Component(components.Badge(string(d.Status), deploymentTone(d.Status)))
			},
		},
		{
			Key:      "traffic",
			Header:   "Traffic",
			Sortable: true,
			Class:    numeric,
			Value:    func(d *model.Deployment) any { return d.TrafficShare },
			Render:   func(d *model.Deployment) table.Cell { return table.Text(fmt.Sprintf("%.0f%%", d.TrafficShare*100)) },
		},
		{
			Key:      "latency",
			Header:   "Latency p95",
			Sortable: true,
			Class:    numeric,
			Value:    func(d *model.Deployment) any { return d.LatencyP95Ms },
			Render:   func(d *model.Deployment) table.Cell { return table.Text(fmt.Sprintf("%.0f ms", d.LatencyP95Ms)) },
		},
		{
			Key:    "errors",
			Header: "Error rate",
			Class:  numeric,
			Value:  func(d *model.Deployment) any { return d.ErrorRate },
			Render: func(d *model.Deployment) table.Cell { return table.Text(fmt.Sprintf("%.2f%%", d.ErrorRate*100)) },
		},
		{Key: "replicas", Header: "Replicas", Class: numeric, Value: func(d *model.Deployment) any { return d.Replicas }},
	}
}

func FeatureColumns() []table.Column[*model.Feature] {
	return []table.Column[*model.Feature]{
		{Key: "name", Header: "Feature", Sortable: true, Value: func(f *model.Feature) any { return f.Name }},
		{Key: "source", Header: "Source", Sortable: true, Value: func(f *model.Feature) any { return f.Source }},
		{Key: "type", Header: "Type", Sortable: true, Value: func(f *model.Feature) any { return f.Type }},
		{
			Key:    "stage",
			Header: "Stage",
			Value:  func(f *model.Feature) any { return f.Stage },
			Render: func(f *model.Feature) table.Cell {
				return table.Component(components.Badge(f.Stage, components.ToneInfo))
			},
		},
		{Key: "products", Header: "Products", Value: func(f *model.Feature) any { return f.ProductList() }},
		{Key: "freshness", Header: "Freshness", Sortable: true, Class: numeric, Value: func(f *model.Feature) any { return f.Freshness }},
		{
			Key:      "nullRate",
			Header:   "Null rate",
			Sortable: true,
			Class:    numeric,
			Value:    func(f *model.Feature) any { return f.NullRate },
			Render:   func(f *model.Feature) table.Cell { return table.Text(fmt.Sprintf("%.2f%%", f.NullRate*100)) },
		},
	}
}

func AlertColumns() []table.Column[*model.Alert] {
	return []table.Column[*model.Alert]{
		{
			Key:      "severity",
			Header:   "Severity",
			Sortable: true,
			Value:    func(a *model.Alert) any { return a.Severity },
			Render: func(a *model.Alert) table.Cell {
				return table.Component(components.Badge(string(a.Severity), severityTone(a.Severity)))
			},
		},
		{Key: "title", Header: "Alert", Sortable: true, Value: func(a *model.Alert) any { return a.Title }},
		{Key: "product", Header: "Product", Sortable: true, Value: func(a *model.Alert) any { return a.Product }},
		{Key: "source", Header: "Source", Value: func(a *model.Alert) any { return a.Source }},
		{
			Key:      "raised",
			Header:   "Raised",
			Sortable: true,
			Value:    func(a *model.Alert) any { return a.RaisedAt },
			Render:   func(a *model.Alert) table.Cell { return table.Component(components.Since(a.RaisedAt)) },
		},
		{
			Key:    "state",
			Header: "State",
			Value:  func(a *model.Alert) any { return alertState(a) },
			Render: func(a *model.Alert) table.Cell {
				if a.Open() {
					return table.Component(components.Badge(alertState(a), components.ToneWarn))
				}
				return table.Component(components.Badge(alertState(a), components.ToneNeutral))
			},
		},
	}
}

func ThresholdColumns() []table.Column[*model.ThresholdPoint] {
	return []table.Column[*model.ThresholdPoint]{
		{Key: "model", Header: "Model", Value: func(p *model.ThresholdPoint) any { return p.Model }},
		{Key: "threshold", Header: "Threshold", Sortable: true, Class: numeric, Value: func(p *model.ThresholdPoint) any { return p.Threshold }},
		{Key: "precision", Header: "Precision", Sortable: true, Class: numeric, Value: func(p *model.ThresholdPoint) any { return p.Precision }},
		{Key: "recall", Header: "Recall", Sortable: true, Class: numeric, Value: func(p *model.ThresholdPoint) any { return p.Recall }},
		{Key: "f1", Header: "F1", Sortable: true, Class: numeric, Value: func(p *model.ThresholdPoint) any { return p.F1 }},
		{
			Key:    "selected",
			Header: "Operating point",
			Value:  func(p *model.ThresholdPoint) any { return p.Selected },
			Render: func(p *model.ThresholdPoint) table.Cell {
				if !p.Selected {
					return table.Text("")
				}
				return table.Component(components.Badge("selected", components.ToneGood))
			},
		},
	}
}

func DatasetColumns() []table.Column[*model.Dataset] {
	return []table.Column[*model.Dataset]{
		{Key: "name", Header: "Dataset", Sortable: true, Value: func(d *model.Dataset) any { return d.Name }},
		{Key: "domain", Header: "Domain", Sortable: true, Value: func(d *model.Dataset) any { return d.Domain }},
		{Key: "owner", Header: "Owner", Sortable: true, Value: func(d *model.Dataset) any { return d.Owner }},
		{Key: "format", Header: "Format", Value: func(d *model.Dataset) any { return d.Format }},
		{
			Key:      "rows",
			Header:   "Rows",
			Sortable: true,
			Class:    numeric,
			Value:    func(d *model.Dataset) any { return d.Rows },
			Render:   func(d *model.Dataset) table.Cell { return table.Text(humanize.Comma(d.Rows)) },
		},
		{
			Key:      "size",
			Header:   "Size",
			Sortable: true,
			Class:    numeric,
			Value:    func(d *model.Dataset) any { return d.SizeBytes },
			Render:   func(d *model.Dataset) table.Cell { return table.Text(humanize.Bytes(d.SizeBytes)) },
		},
		{
			Key:      "updated",
			Header:   "Updated",
			Sortable: true,
			Value:    func(d *model.Dataset) any { return d.UpdatedAt },
			Render:   func(d *model.Dataset) table.Cell { return table.Component(components.Since(d.UpdatedAt)) },
		},
	}
}

func ReportColumns() []table.Column[model.File] {
	return []table.Column[model.File]{
		{Key: "name", Header: "Report", Sortable: true, Value: func(f model.File) any { return f.Name }},
		{
			Key:      "size",
			Header:   "Size",
			Sortable: true,
			Class:    numeric,
			Value:    func(f model.File) any { return f.Size },
			Render:   func(f model.File) table.Cell { return table.Text(humanize.Bytes(uint64(max(f.Size, 0)))) },
		},
		{Key: "type", Header: "Type", Sortable: true, Value: func(f model.File) any { return f.MimeType }},
		{
			Key:      "modified",
			Header:   "Modified",
			Sortable: true,
			Value:    func(f model.File) any { return f.ModifiedAt },
			Render:   func(f model.File) table.Cell { return table.Component(components.Since(f.ModifiedAt)) },
		},
	}
}

func runTone(s model.RunStatus) components.Tone {
	switch s {
	case model.RunStatusSucceeded:
		return components.ToneGood
	case model.RunStatusFailed:
		return components.ToneBad
	case model.RunStatusRunning:
		return components.ToneInfo
	default:
		return components.ToneNeutral
	}
}

func deploymentTone(s model.DeploymentStatus) components.Tone {
	switch s {
	case model.DeploymentHealthy:
		return components.ToneGood
	case model.DeploymentDegraded:
		return components.ToneWarn
	case model.DeploymentRolledBack:
		return components.ToneBad
	default:
		return components.ToneInfo
	}
}

func severityTone(s model.Severity) components.Tone {
	switch s {
	case model.SeverityCritical:
		return components.ToneBad
	case model.SeverityWarning:
		return components.ToneWarn
	default:
		return components.ToneInfo
	}
}

func alertState(a *model.Alert) string {
	if a.Open() {
		return "open"
	}
	return "resolved"
}

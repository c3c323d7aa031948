package handler

import (
	"github.com/aiops-console/console/model"
	"github.com/aiops-console/console/view/components"
	"github.com/aiops-console/console/view/screens"
)

func (h *ConsoleHandler) newPages() []Page {
	return []Page{
		&listPage[*model.TrainingRun]{
			name:       "runs",
			title:      "Training runs",
			empty:      "No training runs",
			columns:    screens.RunColumns,
			rows:       fromStore(h.store.SelectAllRuns),
			lookup:     h.store.SelectRun,
			onRow:      detailPopup[*model.TrainingRun]("Training run"),
			exportable: true,
		},
		&listPage[*model.Evaluation]{
			name:       "evaluations",
			title:      "Evaluations",
			empty:      "No evaluations",
			columns:    screens.EvaluationColumns,
			rows:       fromStore(h.store.SelectAllEvaluations),
			lookup:     h.store.SelectEvaluation,
			onRow:      detailPopup[*model.Evaluation]("Evaluation"),
			exportable: true,
		},
		&listPage[*model.Deployment]{
			name:       "deployments",
			title:      "Deployments",
			empty:      "No deployments",
			columns:    screens.DeploymentColumns,
			rows:       fromStore(h.store.SelectAllDeployments),
			lookup:     h.store.SelectDeployment,
			onRow:      detailPopup[*model.Deployment]("Deployment"),
			exportable: true,
		},
		&listPage[*model.Feature]{
			name:       "features",
			title:      "Feature pipeline",
			empty:      "No features",
			columns:    screens.FeatureColumns,
			rows:       fromStore(h.store.SelectAllFeatures),
			lookup:     h.store.SelectFeature,
			onRow:      detailPopup[*model.Feature]("Feature"),
			exportable: true,
		},
		&listPage[*model.Alert]{
			name:       "alerts",
			title:      "Alerts",
			empty:      "No alerts",
			columns:    screens.AlertColumns,
			rows:       fromStore(h.store.SelectAllAlerts),
			lookup:     h.store.SelectAlert,
			onRow:      detailPopup[*model.Alert]("Alert"),
			exportable: true,
		},
		&listPage[*model.ThresholdPoint]{
			name:       "thresholds",
			title:      "Threshold tuning",
			empty:      "No operating points",
			columns:    screens.ThresholdColumns,
			rows:       fromStore(h.store.SelectAllThresholds),
			lookup:     h.store.SelectThreshold,
			exportable: true,
		},
		&listPage[*model.Dataset]{
			name:       "catalog",
			title:      "Data catalog",
			empty:      "No datasets",
			columns:    screens.DatasetColumns,
			rows:       fromStore(h.store.SelectAllDatasets),
			lookup:     h.store.SelectDataset,
			onRow:      detailPopup[*model.Dataset]("Dataset"),
			exportable: true,
		},
		&listPage[model.File]{
			name:    "reports",
			title:   "Reports",
			empty:   "No reports yet, export a table to create one",
			columns: screens.ReportColumns,
			rows:    h.selectReports,
			lookup:  h.selectReport,
			onRow:   h.reportPopup,
			reload:  reloadReportsEvent,
			actions: components.UploadForm("/api/report/upload"),
		},
	}
}

package store

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/aiops-console/console/helper"
	"github.com/aiops-console/console/model"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// fixtureNamespace derives stable ids for fixture records without an explicit id.
var fixtureNamespace = uuid.MustParse("6f1c2a4e-9d0b-4c55-8a8e-3f7b2d1e0c9a")

var (
	ErrNotFound    = errors.New("record not found")
	ErrDuplicateID = errors.New("duplicate record id")
	ErrNilRecord   = errors.New("empty record")
)

// Fixtures is the document layout of a fixture file.
type Fixtures struct {
	Runs        []*model.TrainingRun    `yaml:"runs"`
	Evaluations []*model.Evaluation     `yaml:"evaluations"`
	Deployments []*model.Deployment     `yaml:"deployments"`
	Features    []*model.Feature        `yaml:"features"`
	Alerts      []*model.Alert          `yaml:"alerts"`
	Thresholds  []*model.ThresholdPoint `yaml:"thresholds"`
	Datasets    []*model.Dataset        `yaml:"datasets"`
}

// FixtureStoreFunctions defines the read operations of the console pages.
type FixtureStoreFunctions interface {
	SelectAllRuns(search string) []*model.TrainingRun
	SelectRun(id string) (*model.TrainingRun, error)
	SelectAllEvaluations(search string) []*model.Evaluation
	SelectEvaluation(id string) (*model.Evaluation, error)
	SelectAllDeployments(search string) []*model.Deployment
	SelectDeployment(id string) (*model.Deployment, error)
	SelectAllFeatures(search string) []*model.Feature
	SelectFeature(id string) (*model.Feature, error)
	SelectAllAlerts(search string) []*model.Alert
	SelectAlert(id string) (*model.Alert, error)
	SelectAllThresholds(search string) []*model.ThresholdPoint
	SelectThreshold(id string) (*model.ThresholdPoint, error)
	SelectAllDatasets(search string) []*model.Dataset
	SelectDataset(id string) (*model.Dataset, error)
	Summary() model.Summary
}

// FixtureStore implements FixtureStoreFunctions over in-memory fixtures.
// It is read-only after construction and safe for concurrent use.
type FixtureStore struct {
	logger   *slog.Logger
	fixtures Fixtures
}

// NewFixtureStore parses a YAML fixture document, assigns missing ids and
// checks id uniqueness per record kind.
func NewFixtureStore(data []byte, logger *slog.Logger) (*FixtureStore, error) {
	if logger == nil {
		return nil, helper.NewError("fixture store validation", fmt.Errorf("logger is nil"))
	}

	var fixtures Fixtures
	err := yaml.Unmarshal(data, &fixtures)
	if err != nil {
		return nil, helper.NewError("unmarshal fixtures", err)
	}

	err = checkRecords(&fixtures)
	if err != nil {
		return nil, helper.NewError("validate fixtures", err)
	}

	err = assignIDs(&fixtures)
	if err != nil {
		return nil, err
	}

	logger.Info("Loaded fixtures",
		"runs", len(fixtures.Runs),
		"evaluations", len(fixtures.Evaluations),
		"deployments", len(fixtures.Deployments),
		"features", len(fixtures.Features),
		"alerts", len(fixtures.Alerts),
		"thresholds", len(fixtures.Thresholds),
		"datasets", len(fixtures.Datasets),
	)

	return &FixtureStore{logger: logger, fixtures: fixtures}, nil
}

// NewDefaultFixtureStore loads the embedded fixtures.
func NewDefaultFixtureStore(logger *slog.Logger) (*FixtureStore, error) {
	return NewFixtureStore(defaultFixtures, logger)
}

// NewFixtureStoreFromFile loads fixtures from a YAML file.
func NewFixtureStoreFromFile(path string, logger *slog.Logger) (*FixtureStore, error) {
	// #nosec G304 -- Accepting file path from env variable is intentional and controlled.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, helper.NewError("read fixture file", err)
	}
	return NewFixtureStore(data, logger)
}

func (s *FixtureStore) SelectAllRuns(search string) []*model.TrainingRun {
	return selectAll(s.fixtures.Runs, search)
}

func (s *FixtureStore) SelectRun(id string) (*model.TrainingRun, error) {
	return selectOne(s.fixtures.Runs, "run", id)
}

func (s *FixtureStore) SelectAllEvaluations(search string) []*model.Evaluation {
	return selectAll(s.fixtures.Evaluations, search)
}

func (s *FixtureStore) SelectEvaluation(id string) (*model.Evaluation, error) {
	return selectOne(s.fixtures.Evaluations, "evaluation", id)
}

func (s *FixtureStore) SelectAllDeployments(search string) []*model.Deployment {
	return selectAll(s.fixtures.Deployments, search)
}

func (s *FixtureStore) SelectDeployment(id string) (*model.Deployment, error) {
	return selectOne(s.fixtures.Deployments, "deployment", id)
}

func (s *FixtureStore) SelectAllFeatures(search string) []*model.Feature {
	return selectAll(s.fixtures.Features, search)
}

func (s *FixtureStore) SelectFeature(id string) (*model.Feature, error) {
	return selectOne(s.fixtures.Features, "feature", id)
}

func (s *FixtureStore) SelectAllAlerts(search string) []*model.Alert {
	return selectAll(s.fixtures.Alerts, search)
}

func (s *FixtureStore) SelectAlert(id string) (*model.Alert, error) {
	return selectOne(s.fixtures.Alerts, "alert", id)
}

func (s *FixtureStore) SelectAllThresholds(search string) []*model.ThresholdPoint {
	return selectAll(s.fixtures.Thresholds, search)
}

func (s *FixtureStore) SelectThreshold(id string) (*model.ThresholdPoint, error) {
	return selectOne(s.fixtures.Thresholds, "threshold", id)
}

func (s *FixtureStore) SelectAllDatasets(search string) []*model.Dataset {
	return selectAll(s.fixtures.Datasets, search)
}

func (s *FixtureStore) SelectDataset(id string) (*model.Dataset, error) {
	return selectOne(s.fixtures.Datasets, "dataset", id)
}

// Summary counts the dashboard figures over all fixtures.
func (s *FixtureStore) Summary() model.Summary {
	summary := model.Summary{
		EvaluationsTotal: len(s.fixtures.Evaluations),
		DeploymentsTotal: len(s.fixtures.Deployments),
		DatasetCount:     len(s.fixtures.Datasets),
	}
	for _, r := range s.fixtures.Runs {
		switch r.Status {
		case model.RunStatusRunning, model.RunStatusQueued:
			summary.RunsActive++
		case model.RunStatusFailed:
			summary.RunsFailed++
		}
	}
	for _, e := range s.fixtures.Evaluations {
		if e.Improved() {
			summary.EvaluationsImproved++
		}
	}
	for _, d := range s.fixtures.Deployments {
		if d.Status == model.DeploymentHealthy {
			summary.DeploymentsHealthy++
		}
	}
	for _, a := range s.fixtures.Alerts {
		if !a.Open() {
			continue
		}
		summary.AlertsOpen++
		if a.Severity == model.SeverityCritical {
			summary.AlertsCritical++
		}
	}
	for _, d := range s.fixtures.Datasets {
		summary.DatasetBytes += d.SizeBytes
	}
	return summary
}

type record interface {
	RowID() string
	model.Searchable
}

// selectAll returns the records whose search text contains search, case
// insensitive. The returned slice is a copy; records are shared.
func selectAll[T record](records []T, search string) []T {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return slices.Clone(records)
	}

	matches := []T{}
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.SearchText()), search) {
			matches = append(matches, r)
		}
	}
	return matches
}

func selectOne[T record](records []T, kind string, id string) (T, error) {
	for _, r := range records {
		if r.RowID() == id {
			return r, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
}

// checkRecords rejects list entries that decoded to nil, such as a bare "-".
func checkRecords(f *Fixtures) error {
	return errors.Join(
		checkNotNil(f.Runs, "run"),
		checkNotNil(f.Evaluations, "evaluation"),
		checkNotNil(f.Deployments, "deployment"),
		checkNotNil(f.Features, "feature"),
		checkNotNil(f.Alerts, "alert"),
		checkNotNil(f.Thresholds, "threshold"),
		checkNotNil(f.Datasets, "dataset"),
	)
}

func checkNotNil[T any](records []*T, kind string) error {
	for i, r := range records {
		if r == nil {
			return fmt.Errorf("%w: %s at index %d", ErrNilRecord, kind, i)
		}
	}
	return nil
}

func assignIDs(f *Fixtures) error {
	for _, r := range f.Runs {
		r.ID = stableID(r.ID, "run", r.Name)
	}
	for _, e := range f.Evaluations {
		e.ID = stableID(e.ID, "evaluation", e.Model, e.Version, e.Dataset, e.Metric)
	}
	for _, d := range f.Deployments {
		d.ID = stableID(d.ID, "deployment", d.Model, d.Version, d.Environment)
	}
	for _, ft := range f.Features {
		ft.ID = stableID(ft.ID, "feature", ft.Name)
	}
	for _, a := range f.Alerts {
		a.ID = stableID(a.ID, "alert", a.Title, a.Source, a.RaisedAt.String())
	}
	for _, p := range f.Thresholds {
		p.ID = stableID(p.ID, "threshold", p.Model, fmt.Sprintf("%.4f", p.Threshold))
	}
	for _, d := range f.Datasets {
		d.ID = stableID(d.ID, "dataset", d.Name)
	}

	return errors.Join(
		checkUnique(f.Runs, "run"),
		checkUnique(f.Evaluations, "evaluation"),
		checkUnique(f.Deployments, "deployment"),
		checkUnique(f.Features, "feature"),
		checkUnique(f.Alerts, "alert"),
		checkUnique(f.Thresholds, "threshold"),
		checkUnique(f.Datasets, "dataset"),
	)
}

// stableID keeps an explicit id and otherwise derives a name based UUID
// from the record kind and its natural key.
func stableID(id string, kind string, key ...string) string {
	if id != "" {
		return id
	}
	return uuid.NewSHA1(fixtureNamespace, []byte(kind+"/"+strings.Join(key, "/"))).String()
}

func checkUnique[T record](records []T, kind string) error {
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		if _, ok := seen[r.RowID()]; ok {
			return fmt.Errorf("%w: %s %s", ErrDuplicateID, kind, r.RowID())
		}
		seen[r.RowID()] = struct{}{}
	}
	return nil
}

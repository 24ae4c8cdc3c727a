package export

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// ReportFile is the name of the optional run summary.
const ReportFile = "run_report.yaml"

// Report summarizes one conversion run.
type Report struct {
	RunID           string   `yaml:"run_id"`
	InputDir        string   `yaml:"input_dir"`
	OutputDir       string   `yaml:"output_dir"`
	BrandedLoaded   bool     `yaml:"branded_loaded"`
	Foods           int      `yaml:"foods"`
	FoodsWithValues int      `yaml:"foods_with_values"`
	ColumnsTotal    int      `yaml:"columns_total"`
	ColumnsKept     []string `yaml:"columns_kept"`
	ColumnsDropped  []string `yaml:"columns_dropped"`
	ServingRows     int      `yaml:"serving_rows"`
	ServingsWritten bool     `yaml:"servings_written"`
	Files           []string `yaml:"files"`
}

// WriteReport writes r as YAML to path.
func WriteReport(path string, r *Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return eris.Wrap(err, "report: marshal")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "report: write %s", path)
	}
	return nil
}

// ReadReport loads a report written by WriteReport.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "report: read %s", path)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, eris.Wrap(err, "report: unmarshal")
	}
	return &r, nil
}

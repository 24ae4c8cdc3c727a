// Package pipeline runs the FDC conversion: load, normalize units, filter and
// enrich foods, pivot to a wide table, then rescale to servings and write.
package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/fdc-nutrition/internal/enrich"
	"github.com/sells-group/fdc-nutrition/internal/export"
	"github.com/sells-group/fdc-nutrition/internal/fdc"
	"github.com/sells-group/fdc-nutrition/internal/nutrient"
	"github.com/sells-group/fdc-nutrition/internal/serving"
	"github.com/sells-group/fdc-nutrition/internal/wide"
)

// ErrNoFoods means no food of an allowed data type has nutrient data.
var ErrNoFoods = errors.New("pipeline: no foods found for the valid types")

// Options configures one run.
type Options struct {
	InputDir  string
	OutputDir string
	XLSX      bool // also write foods.xlsx
	Report    bool // also write run_report.yaml
}

// Result summarizes a completed run.
type Result struct {
	RunID           string
	BrandedLoaded   bool
	Foods           int // foods of valid types
	FoodsWithValues int // foods with at least one measurement
	ColumnsTotal    int
	ColumnsKept     []string
	ColumnsDropped  []string
	Per100gRows     int
	ServingRows     int
	ServingsWritten bool
	Files           []string
}

// Run executes every stage in order. The output directory must exist.
func Run(ctx context.Context, opts Options) (*Result, error) {
	res := &Result{RunID: uuid.NewString()}
	log := zap.L().With(zap.String("run_id", res.RunID))

	ds, err := fdc.Load(ctx, opts.InputDir)
	if err != nil {
		return nil, err
	}
	res.BrandedLoaded = ds.HasBranded

	log.Info("preparing nutrient mappings and unit conversions")
	lookup, err := nutrient.BuildLookup(ds.Nutrients)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: nutrient mappings")
	}
	res.ColumnsTotal = len(lookup.Columns())

	foods := enrich.Enrich(ds)
	res.Foods = len(foods)
	if len(foods) == 0 {
		log.Error("no foods found for the valid types", zap.Strings("data_types", enrich.DataTypes))
		return nil, eris.Wrapf(ErrNoFoods, "pipeline: valid types %v", enrich.DataTypes)
	}
	valid := enrich.ValidIDs(foods)

	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "pipeline: context cancelled")
	}

	log.Info("pivoting data and filling missing values", zap.Int("foods", len(foods)))
	all := wide.Build(ds.FoodNutrients, lookup, valid)

	log.Info("checking for sparsely populated nutrient columns")
	table, dropped := all.DropSparse(wide.MaxMissingFraction)
	res.ColumnsKept = table.Columns()
	res.ColumnsDropped = dropped
	res.FoodsWithValues = table.Len()
	if len(dropped) > 0 {
		log.Info("dropping columns with > 50% missing data", zap.Int("dropped", len(dropped)))
	} else {
		log.Info("no sparse columns found, keeping all nutrients")
	}
	log.Info("kept nutrient columns", zap.Int("kept", len(res.ColumnsKept)))

	foodRows := per100gRows(foods, table)
	if len(foodRows) == 0 {
		log.Error("no foods with nutrient data for the valid types")
		return nil, eris.Wrap(ErrNoFoods, "pipeline: empty per-100g table")
	}

	per100gPath := filepath.Join(opts.OutputDir, export.Per100gFile)
	if err := export.WritePer100g(per100gPath, res.ColumnsKept, foodRows); err != nil {
		return nil, eris.Wrap(err, "pipeline: write per-100g")
	}
	res.Per100gRows = len(foodRows)
	res.Files = append(res.Files, per100gPath)
	log.Info("created per-100g table", zap.String("path", per100gPath), zap.Int("foods", len(foodRows)))

	var wb *export.Workbook
	if opts.XLSX {
		wb = export.NewWorkbook()
		if err := wb.AddPer100g(res.ColumnsKept, foodRows); err != nil {
			return nil, eris.Wrap(err, "pipeline: workbook")
		}
	}

	log.Info("processing serving data")
	portions := serving.ValidPortions(ds.Portions, valid)
	if len(portions) == 0 {
		log.Warn("no valid portion data found for the filtered foods, skipping per-serving table")
	} else {
		servingRows := perServingRows(foods, serving.Rescale(serving.BuildServings(portions, ds.MeasureUnits), table))

		perServingPath := filepath.Join(opts.OutputDir, export.PerServingFile)
		if err := export.WritePerServing(perServingPath, res.ColumnsKept, servingRows); err != nil {
			return nil, eris.Wrap(err, "pipeline: write per-serving")
		}
		res.ServingRows = len(servingRows)
		res.ServingsWritten = true
		res.Files = append(res.Files, perServingPath)
		log.Info("created per-serving table", zap.String("path", perServingPath), zap.Int("rows", len(servingRows)))

		if wb != nil {
			if err := wb.AddPerServing(res.ColumnsKept, servingRows); err != nil {
				return nil, eris.Wrap(err, "pipeline: workbook")
			}
		}
	}

	if wb != nil {
		path := filepath.Join(opts.OutputDir, export.WorkbookFile)
		if err := wb.Save(path); err != nil {
			return nil, eris.Wrap(err, "pipeline: save workbook")
		}
		res.Files = append(res.Files, path)
	}

	if opts.Report {
		path := filepath.Join(opts.OutputDir, export.ReportFile)
		res.Files = append(res.Files, path)
		if err := export.WriteReport(path, res.report(opts)); err != nil {
			return nil, eris.Wrap(err, "pipeline: write report")
		}
	}

	log.Info("all done", zap.Strings("files", res.Files))
	return res, nil
}

func (r *Result) report(opts Options) *export.Report {
	return &export.Report{
		RunID:           r.RunID,
		InputDir:        opts.InputDir,
		OutputDir:       opts.OutputDir,
		BrandedLoaded:   r.BrandedLoaded,
		Foods:           r.Foods,
		FoodsWithValues: r.FoodsWithValues,
		ColumnsTotal:    r.ColumnsTotal,
		ColumnsKept:     r.ColumnsKept,
		ColumnsDropped:  r.ColumnsDropped,
		ServingRows:     r.ServingRows,
		ServingsWritten: r.ServingsWritten,
		Files:           r.Files,
	}
}

// EnsureOutputDir creates dir and its parents if absent.
func EnsureOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return eris.Wrapf(err, "pipeline: create output dir %s", dir)
	}
	return nil
}

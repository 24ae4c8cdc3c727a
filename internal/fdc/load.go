// Package fdc loads the relational tables of a USDA FoodData Central CSV export.
package fdc

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Input file names inside an FDC export directory.
const (
	FoodFile         = "food.csv"
	NutrientFile     = "nutrient.csv"
	FoodNutrientFile = "food_nutrient.csv"
	PortionFile      = "food_portion.csv"
	MeasureUnitFile  = "measure_unit.csv"
	CategoryFile     = "food_category.csv"
	BrandedFile      = "branded_food.csv"
)

// RequiredFiles lists the tables a run cannot proceed without, in load order.
var RequiredFiles = []string{
	FoodFile,
	NutrientFile,
	FoodNutrientFile,
	PortionFile,
	MeasureUnitFile,
	CategoryFile,
}

// ErrMissingFile is matched by errors.Is for any *MissingFileError.
var ErrMissingFile = errors.New("fdc: missing required file")

// MissingFileError names the required table that could not be found.
type MissingFileError struct {
	Name string
	Dir  string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("fdc: missing required file %s in %s", e.Name, e.Dir)
}

// Is reports whether target is ErrMissingFile.
func (e *MissingFileError) Is(target error) bool { return target == ErrMissingFile }

// Dataset holds every table of one export in memory.
type Dataset struct {
	Foods         []Food
	Nutrients     []Nutrient
	FoodNutrients []FoodNutrient
	Portions      []Portion
	MeasureUnits  []MeasureUnit
	Categories    []FoodCategory

	// Branded is nil when branded_food.csv is absent.
	Branded    []BrandedFood
	HasBranded bool
}

// Load reads the six required tables and the optional branded table from dir.
// A missing required table aborts with a *MissingFileError; a missing branded
// table is logged and leaves HasBranded false.
func Load(ctx context.Context, dir string) (*Dataset, error) {
	log := zap.L().With(zap.String("dir", dir))
	log.Info("loading data files")

	ds := &Dataset{}
	var err error

	if ds.Foods, err = load[Food](ctx, dir, FoodFile); err != nil {
		return nil, err
	}
	if ds.Nutrients, err = load[Nutrient](ctx, dir, NutrientFile); err != nil {
		return nil, err
	}
	if ds.FoodNutrients, err = load[FoodNutrient](ctx, dir, FoodNutrientFile); err != nil {
		return nil, err
	}
	if ds.Portions, err = load[Portion](ctx, dir, PortionFile); err != nil {
		return nil, err
	}
	if ds.MeasureUnits, err = load[MeasureUnit](ctx, dir, MeasureUnitFile); err != nil {
		return nil, err
	}
	if ds.Categories, err = load[FoodCategory](ctx, dir, CategoryFile); err != nil {
		return nil, err
	}

	branded, err := load[BrandedFood](ctx, dir, BrandedFile)
	switch {
	case errors.Is(err, ErrMissingFile):
		log.Warn("branded_food.csv not found, brand and ingredient info will be blank")
	case err != nil:
		return nil, err
	default:
		ds.Branded = branded
		ds.HasBranded = true
		log.Info("loaded branded_food.csv", zap.Int("rows", len(branded)))
	}

	log.Info("data loading complete",
		zap.Int("foods", len(ds.Foods)),
		zap.Int("nutrients", len(ds.Nutrients)),
		zap.Int("food_nutrients", len(ds.FoodNutrients)),
		zap.Int("portions", len(ds.Portions)),
	)
	return ds, nil
}

func load[T any](ctx context.Context, dir, name string) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "fdc: context cancelled")
	}

	rows, err := ReadTable[T](filepath.Join(dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &MissingFileError{Name: name, Dir: dir}
	}
	if err != nil {
		return nil, eris.Wrapf(err, "fdc: read %s", name)
	}
	zap.L().Debug("loaded table", zap.String("file", name), zap.Int("rows", len(rows)))
	return rows, nil
}

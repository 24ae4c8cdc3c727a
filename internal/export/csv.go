// Package export writes the per-100g and per-serving nutrient tables.
package export

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/sells-group/fdc-nutrition/internal/enrich"
	"github.com/sells-group/fdc-nutrition/internal/serving"
)

// Output file names.
const (
	Per100gFile    = "foods_per_100g.csv"
	PerServingFile = "foods_per_serving.csv"
)

// Leading columns of both outputs.
var (
	foodColumns    = []string{"fdc_id", "description", "category", "ingredients"}
	servingColumns = []string{"serving_description", "serving_size_g"}
)

// FoodRow is one per-100g output row.
type FoodRow struct {
	Food   enrich.Food
	Values []float64
}

// ServingRow is one per-serving output row.
type ServingRow struct {
	Food enrich.Food
	serving.Row
}

// Per100gHeader returns the header of the per-100g table.
func Per100gHeader(nutrients []string) []string {
	h := make([]string, 0, len(foodColumns)+len(nutrients))
	h = append(h, foodColumns...)
	return append(h, nutrients...)
}

// PerServingHeader returns the header of the per-serving table.
func PerServingHeader(nutrients []string) []string {
	h := make([]string, 0, len(foodColumns)+len(servingColumns)+len(nutrients))
	h = append(h, foodColumns...)
	h = append(h, servingColumns...)
	return append(h, nutrients...)
}

func foodCells(f enrich.Food) []string {
	return []string{
		strconv.FormatInt(f.ID, 10),
		f.Description,
		f.Category,
		FormatIngredients(f.Ingredients),
	}
}

func appendValues(row []string, vals []float64) []string {
	for _, v := range vals {
		row = append(row, FormatFloat(v))
	}
	return row
}

// WritePer100g writes rows under the per-100g header.
func WritePer100g(path string, nutrients []string, rows []FoodRow) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, appendValues(foodCells(r.Food), r.Values))
	}
	return writeCSV(path, Per100gHeader(nutrients), records)
}

// WritePerServing writes rows under the per-serving header.
func WritePerServing(path string, nutrients []string, rows []ServingRow) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		rec := foodCells(r.Food)
		rec = append(rec, r.Description, FormatFloat(r.Grams))
		records = append(records, appendValues(rec, r.Values))
	}
	return writeCSV(path, PerServingHeader(nutrients), records)
}

func writeCSV(path string, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "export: create %s", path)
	}
	defer f.Close() //nolint:errcheck

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return eris.Wrap(err, "export: write header")
	}
	if err := w.WriteAll(records); err != nil {
		return eris.Wrap(err, "export: write rows")
	}
	if err := f.Close(); err != nil {
		return eris.Wrapf(err, "export: close %s", path)
	}
	return nil
}

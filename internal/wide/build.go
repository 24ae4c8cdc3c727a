package wide

import (
	"go.uber.org/zap"

	"github.com/sells-group/fdc-nutrition/internal/fdc"
	"github.com/sells-group/fdc-nutrition/internal/nutrient"
)

// IDFilter reports whether a food id belongs to the filtered food set.
type IDFilter interface {
	Has(id int64) bool
}

// Build pivots measurements of valid foods into a table over the lookup's full
// column universe. Amounts are converted to grams. The first measurement of a
// (food, column) pair wins even when its amount is missing. Every valid food
// with at least one measurement gets a row; absent cells hold Sentinel.
func Build(measurements []fdc.FoodNutrient, lookup *nutrient.Lookup, valid IDFilter) *Table {
	columns := lookup.Columns()
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c] = i
	}

	t := NewTable(columns)
	filled := make(map[int64][]bool)

	var kept, duplicates int
	for _, m := range measurements {
		if !m.FdcID.Valid || !valid.Has(m.FdcID.Int64) {
			continue
		}
		id := m.FdcID.Int64
		row, ok := t.rows[id]
		if !ok {
			row = newSentinelRow(len(columns))
			t.rows[id] = row
			t.insertID(id)
			filled[id] = make([]bool, len(columns))
		}
		kept++

		if !m.NutrientID.Valid {
			continue
		}
		col, ok := lookup.Column(m.NutrientID.Int64)
		if !ok {
			continue
		}
		i := index[col]
		if filled[id][i] {
			duplicates++
			continue
		}
		filled[id][i] = true

		if m.Amount.Valid {
			factor, _ := lookup.Factor(m.NutrientID.Int64)
			row[i] = m.Amount.Float64 * factor
		}
	}

	zap.L().Info("pivoted nutrient data",
		zap.Int("measurements", kept),
		zap.Int("duplicates_skipped", duplicates),
		zap.Int("foods", t.Len()),
		zap.Int("columns", len(columns)),
	)
	return t
}

func newSentinelRow(n int) []float64 {
	r := make([]float64, n)
	for i := range r {
		r[i] = Sentinel
	}
	return r
}

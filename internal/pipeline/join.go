package pipeline

import (
	"sort"

	"github.com/sells-group/fdc-nutrition/internal/enrich"
	"github.com/sells-group/fdc-nutrition/internal/export"
	"github.com/sells-group/fdc-nutrition/internal/serving"
	"github.com/sells-group/fdc-nutrition/internal/wide"
)

// per100gRows joins foods with their nutrient rows in food order and sorts by
// description. Foods without a nutrient row are left out.
func per100gRows(foods []enrich.Food, t *wide.Table) []export.FoodRow {
	rows := make([]export.FoodRow, 0, t.Len())
	for _, f := range foods {
		vals, ok := t.Row(f.ID)
		if !ok {
			continue
		}
		rows = append(rows, export.FoodRow{Food: f, Values: vals})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Food.Description < rows[j].Food.Description
	})
	return rows
}

// perServingRows attaches food fields to scaled servings, grouped in food order,
// and sorts by (description, serving description).
func perServingRows(foods []enrich.Food, scaled []serving.Row) []export.ServingRow {
	byFood := make(map[int64][]serving.Row)
	for _, r := range scaled {
		byFood[r.FoodID] = append(byFood[r.FoodID], r)
	}

	rows := make([]export.ServingRow, 0, len(scaled))
	for _, f := range foods {
		for _, r := range byFood[f.ID] {
			rows = append(rows, export.ServingRow{Food: f, Row: r})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Food.Description != rows[j].Food.Description {
			return rows[i].Food.Description < rows[j].Food.Description
		}
		return rows[i].Description < rows[j].Description
	})
	return rows
}

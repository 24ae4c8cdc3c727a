// Package serving derives named servings from food portions and rescales
// per-100g nutrient values to them.
package serving

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/fdc-nutrition/internal/fdc"
	"github.com/sells-group/fdc-nutrition/internal/wide"
)

// Serving is a distinct (food, description, gram weight) triple.
type Serving struct {
	FoodID      int64
	Description string
	Grams       float64
}

// Row is a serving with nutrient values scaled to its gram weight, aligned with
// the columns of the table it was rescaled from.
type Row struct {
	Serving
	Values []float64
}

// ValidPortions keeps portions of valid foods with a positive gram weight.
func ValidPortions(portions []fdc.Portion, valid wide.IDFilter) []fdc.Portion {
	var out []fdc.Portion
	for _, p := range portions {
		if !p.FdcID.Valid || !valid.Has(p.FdcID.Int64) {
			continue
		}
		if !p.GramWeight.Valid || p.GramWeight.Float64 <= 0 {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Describe returns the portion's own description when it has non-blank text,
// otherwise "<amount> <unit name>".
func Describe(p fdc.Portion, unitName string) string {
	if p.PortionDescription.Valid && strings.TrimSpace(p.PortionDescription.String) != "" {
		return p.PortionDescription.String
	}
	if !p.Amount.Valid {
		return unitName
	}
	return strconv.FormatFloat(p.Amount.Float64, 'f', -1, 64) + " " + unitName
}

// BuildServings joins portions to their measure units and deduplicates the
// resulting servings, keeping first-seen order. Portions whose unit id is
// unknown are dropped.
func BuildServings(portions []fdc.Portion, units []fdc.MeasureUnit) []Serving {
	names := make(map[int64]string, len(units))
	for _, u := range units {
		if !u.ID.Valid {
			continue
		}
		if _, ok := names[u.ID.Int64]; !ok {
			names[u.ID.Int64] = u.Name
		}
	}

	seen := make(map[Serving]struct{}, len(portions))
	var out []Serving
	for _, p := range portions {
		if !p.MeasureUnitID.Valid {
			continue
		}
		name, ok := names[p.MeasureUnitID.Int64]
		if !ok {
			continue
		}
		s := Serving{
			FoodID:      p.FdcID.Int64,
			Description: Describe(p, name),
			Grams:       p.GramWeight.Float64,
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	zap.L().Info("found unique servings", zap.Int("servings", len(out)))
	return out
}

// Scale converts a per-100g value to grams of food. Sentinel passes through
// unscaled.
func Scale(v, grams float64) float64 {
	if v == wide.Sentinel {
		return wide.Sentinel
	}
	return v * (grams / 100.0)
}

// Rescale joins servings to the wide table and scales every column. Servings of
// foods without a wide row are dropped; order follows servings.
func Rescale(servings []Serving, t *wide.Table) []Row {
	rows := make([]Row, 0, len(servings))
	for _, s := range servings {
		src, ok := t.Row(s.FoodID)
		if !ok {
			continue
		}
		vals := make([]float64, len(src))
		for i, v := range src {
			vals[i] = Scale(v, s.Grams)
		}
		rows = append(rows, Row{Serving: s, Values: vals})
	}
	return rows
}

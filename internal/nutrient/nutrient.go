// Package nutrient standardizes nutrient units to grams and derives the wide
// table's column names.
package nutrient

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/sells-group/fdc-nutrition/internal/fdc"
)

// StandardUnit is the label of every unit that converts to grams.
const StandardUnit = "G"

// gramFactors maps USDA unit codes to their multiplier to grams.
var gramFactors = map[string]float64{
	"G":  1.0,
	"MG": 0.001,
	"UG": 1e-6,
}

// ConversionFactor returns the multiplier that converts an amount in unit to
// grams. Units outside G, MG and UG are left unconverted (factor 1).
func ConversionFactor(unit string) float64 {
	if f, ok := gramFactors[unit]; ok {
		return f
	}
	return 1.0
}

// DisplayUnit returns the unit label used in column names.
func DisplayUnit(unit string) string {
	if _, ok := gramFactors[unit]; ok {
		return StandardUnit
	}
	return unit
}

// ColumnName builds the "<name> (<unit>)" column for a nutrient.
func ColumnName(name, unit string) string {
	return name + " (" + DisplayUnit(unit) + ")"
}

// ErrColumnCollision is matched by errors.Is for any *CollisionError.
var ErrColumnCollision = errors.New("nutrient: column name collision")

// CollisionError reports two nutrient ids that derive the same column name.
type CollisionError struct {
	Column string
	First  int64
	Second int64
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("nutrient: ids %d and %d both map to column %q", e.First, e.Second, e.Column)
}

// Is reports whether target is ErrColumnCollision.
func (e *CollisionError) Is(target error) bool { return target == ErrColumnCollision }

// Lookup resolves nutrient ids to their column and gram factor.
type Lookup struct {
	columns map[int64]string
	factors map[int64]float64
	all     []string
}

// BuildLookup derives the id mappings and the sorted, deduplicated column
// universe. When a nutrient id repeats, its last row wins. Distinct ids that
// derive the same column name are rejected with a *CollisionError.
func BuildLookup(nutrients []fdc.Nutrient) (*Lookup, error) {
	l := &Lookup{
		columns: make(map[int64]string, len(nutrients)),
		factors: make(map[int64]float64, len(nutrients)),
	}

	seen := make(map[string]struct{}, len(nutrients))
	for _, n := range nutrients {
		if !n.ID.Valid {
			continue
		}
		col := ColumnName(n.Name, n.UnitName)
		l.columns[n.ID.Int64] = col
		l.factors[n.ID.Int64] = ConversionFactor(n.UnitName)
		if _, ok := seen[col]; !ok {
			seen[col] = struct{}{}
			l.all = append(l.all, col)
		}
	}
	sort.Strings(l.all)

	if err := l.checkCollisions(); err != nil {
		return nil, err
	}

	zap.L().Info("prepared nutrient mappings",
		zap.Int("nutrients", len(l.columns)),
		zap.Int("columns", len(l.all)),
	)
	return l, nil
}

func (l *Lookup) checkCollisions() error {
	ids := make([]int64, 0, len(l.columns))
	for id := range l.columns {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	owner := make(map[string]int64, len(ids))
	for _, id := range ids {
		col := l.columns[id]
		if prev, ok := owner[col]; ok {
			return &CollisionError{Column: col, First: prev, Second: id}
		}
		owner[col] = id
	}
	return nil
}

// Column returns the column name for a nutrient id.
func (l *Lookup) Column(id int64) (string, bool) {
	c, ok := l.columns[id]
	return c, ok
}

// Factor returns the gram factor for a nutrient id.
func (l *Lookup) Factor(id int64) (float64, bool) {
	f, ok := l.factors[id]
	return f, ok
}

// Columns returns the full sorted column universe. The slice is shared.
func (l *Lookup) Columns() []string { return l.all }

// Package wide pivots food/nutrient measurements into one row per food and one
// column per standardized nutrient.
package wide

import (
	"sort"

	"github.com/rotisserie/eris"
)

// Sentinel marks a (food, nutrient) pair with no measurement. It is distinct
// from a measured zero.
const Sentinel = -1.0

// MaxMissingFraction is the share of sentinel values above which a column is
// dropped.
const MaxMissingFraction = 0.5

// Table is a dense food x nutrient matrix. Rows are ordered by food id.
type Table struct {
	columns []string
	ids     []int64
	rows    map[int64][]float64
	dirty   bool // ids need sorting
}

// NewTable returns an empty table over columns.
func NewTable(columns []string) *Table {
	return &Table{
		columns: append([]string(nil), columns...),
		rows:    make(map[int64][]float64),
	}
}

// AddRow inserts a row for id. values must match the column count.
func (t *Table) AddRow(id int64, values []float64) error {
	if len(values) != len(t.columns) {
		return eris.Errorf("wide: row %d has %d values, want %d", id, len(values), len(t.columns))
	}
	if _, ok := t.rows[id]; ok {
		return eris.Errorf("wide: duplicate row %d", id)
	}
	t.rows[id] = append([]float64(nil), values...)
	t.insertID(id)
	return nil
}

func (t *Table) insertID(id int64) {
	if n := len(t.ids); n > 0 && t.ids[n-1] > id {
		t.dirty = true
	}
	t.ids = append(t.ids, id)
}

// Columns returns the column names in order.
func (t *Table) Columns() []string { return t.columns }

// IDs returns the food ids in ascending order.
func (t *Table) IDs() []int64 {
	if t.dirty {
		sort.Slice(t.ids, func(i, j int) bool { return t.ids[i] < t.ids[j] })
		t.dirty = false
	}
	return t.ids
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.ids) }

// Row returns the values for id, aligned with Columns.
func (t *Table) Row(id int64) ([]float64, bool) {
	r, ok := t.rows[id]
	return r, ok
}

// Value returns one cell, or Sentinel when the row or column is unknown.
func (t *Table) Value(id int64, column string) float64 {
	r, ok := t.rows[id]
	if !ok {
		return Sentinel
	}
	for i, c := range t.columns {
		if c == column {
			return r[i]
		}
	}
	return Sentinel
}

// MissingCounts returns the number of sentinel cells per column.
func (t *Table) MissingCounts() []int {
	counts := make([]int, len(t.columns))
	for _, r := range t.rows {
		for i, v := range r {
			if v == Sentinel {
				counts[i]++
			}
		}
	}
	return counts
}

// DropSparse returns a copy of t without the columns whose sentinel count
// exceeds maxFraction of the rows, plus the dropped column names. The decision
// is made per column over all rows.
func (t *Table) DropSparse(maxFraction float64) (*Table, []string) {
	threshold := float64(t.Len()) * maxFraction
	counts := t.MissingCounts()

	var keep []int
	var dropped []string
	for i, c := range t.columns {
		if float64(counts[i]) > threshold {
			dropped = append(dropped, c)
			continue
		}
		keep = append(keep, i)
	}

	out := &Table{
		columns: make([]string, len(keep)),
		ids:     append([]int64(nil), t.IDs()...),
		rows:    make(map[int64][]float64, len(t.rows)),
	}
	for j, i := range keep {
		out.columns[j] = t.columns[i]
	}
	for id, r := range t.rows {
		nr := make([]float64, len(keep))
		for j, i := range keep {
			nr[j] = r[i]
		}
		out.rows[id] = nr
	}
	return out, dropped
}

package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/sells-group/fdc-nutrition/internal/wide"
)

// ReadPer100g parses a per-100g file back into a wide table keyed by fdc_id,
// with the nutrient columns that follow the food columns.
func ReadPer100g(path string) (*wide.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "export: open %s", path)
	}
	defer f.Close() //nolint:errcheck

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, eris.Wrap(err, "export: read header")
	}
	if len(header) < len(foodColumns) || header[0] != foodColumns[0] {
		return nil, eris.Errorf("export: %s is not a per-100g table", path)
	}

	nutrients := header[len(foodColumns):]
	t := wide.NewTable(nutrients)
	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrapf(err, "export: read line %d", line)
		}

		id, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return nil, eris.Wrapf(err, "export: line %d fdc_id", line)
		}
		vals := make([]float64, len(nutrients))
		for i, s := range rec[len(foodColumns):] {
			if vals[i], err = strconv.ParseFloat(s, 64); err != nil {
				return nil, eris.Wrapf(err, "export: line %d column %q", line, nutrients[i])
			}
		}
		if err := t.AddRow(id, vals); err != nil {
			return nil, err
		}
	}
	return t, nil
}

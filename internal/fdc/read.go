package fdc

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadTable opens a CSV file with a header row and decodes every record into T
// by csv tag. Columns T does not name are ignored; columns T names but the file
// lacks are left zero.
func ReadTable[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	return DecodeTable[T](f)
}

// DecodeTable decodes CSV from r into T. A leading UTF-8 byte-order mark is
// dropped. Short rows are padded and long rows truncated to the header width.
func DecodeTable[T any](r io.Reader) ([]T, error) {
	utf8 := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	reader := csv.NewReader(utf8)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1 // allow variable fields

	dec, err := csvutil.NewDecoder(&fixedWidthReader{r: reader})
	if err != nil {
		if err == io.EOF {
			return nil, eris.New("csv: missing header row")
		}
		return nil, eris.Wrap(err, "csv: read header")
	}

	var rows []T
	for {
		var v T
		err := dec.Decode(&v)
		if err == io.EOF {
			break
		}
		if err != nil {
			return rows, eris.Wrapf(err, "csv: decode row %d", len(rows)+1)
		}
		rows = append(rows, v)
	}
	return rows, nil
}

// fixedWidthReader forces every record to the width of the first one.
type fixedWidthReader struct {
	r     *csv.Reader
	width int
}

func (f *fixedWidthReader) Read() ([]string, error) {
	record, err := f.r.Read()
	if err != nil {
		return nil, err
	}
	if f.width == 0 {
		f.width = len(record)
		return record, nil
	}
	switch {
	case len(record) < f.width:
		padded := make([]string, f.width)
		copy(padded, record)
		return padded, nil
	case len(record) > f.width:
		return record[:f.width], nil
	}
	return record, nil
}

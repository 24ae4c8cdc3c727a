package fdc

import (
	"math"
	"strconv"
	"strings"
)

// NullInt is an integer field that may be absent or unparseable.
type NullInt struct {
	Int64 int64
	Valid bool
}

// NullFloat is a numeric field that may be absent or unparseable.
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// NullString is a text field that may be absent. An empty CSV field is absent;
// whitespace-only text is present.
type NullString struct {
	String string
	Valid  bool
}

// Int returns a valid NullInt.
func Int(v int64) NullInt { return NullInt{Int64: v, Valid: true} }

// Float returns a valid NullFloat.
func Float(v float64) NullFloat { return NullFloat{Float64: v, Valid: true} }

// String returns a valid NullString.
func String(v string) NullString { return NullString{String: v, Valid: true} }

// ParseNullFloat coerces s to a number. Blank, non-numeric, NaN and infinite
// values are absent.
func ParseNullFloat(s string) NullFloat {
	s = strings.TrimSpace(s)
	if s == "" {
		return NullFloat{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return NullFloat{}
	}
	return Float(v)
}

// ParseNullInt coerces s to an integer identifier. Integral decimal forms such
// as "12.0" are accepted; anything else non-integral is absent.
func ParseNullInt(s string) NullInt {
	s = strings.TrimSpace(s)
	if s == "" {
		return NullInt{}
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(v)
	}
	f := ParseNullFloat(s)
	if !f.Valid || f.Float64 != math.Trunc(f.Float64) || math.Abs(f.Float64) > 1<<53 {
		return NullInt{}
	}
	return Int(int64(f.Float64))
}

// ParseNullString treats an empty field as absent.
func ParseNullString(s string) NullString {
	if s == "" {
		return NullString{}
	}
	return String(s)
}

// OrEmpty returns the string or "" when absent.
func (n NullString) OrEmpty() string {
	if !n.Valid {
		return ""
	}
	return n.String
}

// UnmarshalCSV implements csvutil.Unmarshaler. Coercion never fails the row.
func (n *NullInt) UnmarshalCSV(data []byte) error {
	*n = ParseNullInt(string(data))
	return nil
}

// UnmarshalCSV implements csvutil.Unmarshaler. Coercion never fails the row.
func (n *NullFloat) UnmarshalCSV(data []byte) error {
	*n = ParseNullFloat(string(data))
	return nil
}

// UnmarshalCSV implements csvutil.Unmarshaler.
func (n *NullString) UnmarshalCSV(data []byte) error {
	*n = ParseNullString(string(data))
	return nil
}

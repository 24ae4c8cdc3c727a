package export

import (
	"strconv"
	"strings"
)

// FloatDecimals is the fixed precision of every numeric output cell.
const FloatDecimals = 4

// FormatFloat renders v with FloatDecimals places.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', FloatDecimals, 64)
}

// FormatIngredients serializes a list as a bracketed literal of quoted
// strings: ['water', 'sugar']. Quoting prefers single quotes and switches to
// double quotes when an item holds a single quote but no double quote.
func FormatIngredients(items []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, it := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quoteItem(it))
	}
	b.WriteByte(']')
	return b.String()
}

func quoteItem(s string) string {
	q := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}

	var b strings.Builder
	b.WriteByte(q)
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == rune(q):
			b.WriteByte('\\')
			b.WriteByte(q)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(q)
	return b.String()
}

package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "0.5000", FormatFloat(0.5))
	assert.Equal(t, "-1.0000", FormatFloat(-1))
	assert.Equal(t, "0.0000", FormatFloat(0))
	assert.Equal(t, "0.0000", FormatFloat(2e-6))
	assert.Equal(t, "123.4568", FormatFloat(123.45678))
}

func TestFormatIngredients(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, "[]"},
		{[]string{}, "[]"},
		{[]string{"water"}, "['water']"},
		{[]string{"water", "sugar", "cane", "salt"}, "['water', 'sugar', 'cane', 'salt']"},
		{[]string{"baker's yeast"}, `["baker's yeast"]`},
		{[]string{`it's "fresh"`}, `['it\'s "fresh"']`},
		{[]string{`a\b`}, `['a\\b']`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatIngredients(tt.in))
	}
}

package nutrient

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/fdc-nutrition/internal/fdc"
)

func TestConversionFactor(t *testing.T) {
	assert.Equal(t, 1.0, ConversionFactor("G"))
	assert.Equal(t, 0.001, ConversionFactor("MG"))
	assert.Equal(t, 1e-6, ConversionFactor("UG"))
	assert.Equal(t, 1.0, ConversionFactor("KCAL"))
	assert.Equal(t, 1.0, ConversionFactor("IU"))
	assert.Equal(t, 1.0, ConversionFactor(""))
}

func TestColumnName(t *testing.T) {
	assert.Equal(t, "Protein (G)", ColumnName("Protein", "G"))
	assert.Equal(t, "Calcium, Ca (G)", ColumnName("Calcium, Ca", "MG"))
	assert.Equal(t, "Vitamin D (G)", ColumnName("Vitamin D", "UG"))
	assert.Equal(t, "Energy (KCAL)", ColumnName("Energy", "KCAL"))
	assert.Equal(t, "Vitamin A, IU (IU)", ColumnName("Vitamin A, IU", "IU"))
}

func TestBuildLookup(t *testing.T) {
	l, err := BuildLookup([]fdc.Nutrient{
		{ID: fdc.Int(1008), Name: "Energy", UnitName: "KCAL"},
		{ID: fdc.Int(1087), Name: "Calcium, Ca", UnitName: "MG"},
		{ID: fdc.Int(1003), Name: "Protein", UnitName: "G"},
		{ID: fdc.NullInt{}, Name: "Orphan", UnitName: "G"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Calcium, Ca (G)", "Energy (KCAL)", "Protein (G)"}, l.Columns())

	col, ok := l.Column(1087)
	require.True(t, ok)
	assert.Equal(t, "Calcium, Ca (G)", col)

	f, ok := l.Factor(1087)
	require.True(t, ok)
	assert.Equal(t, 0.001, f)

	f, ok = l.Factor(1008)
	require.True(t, ok)
	assert.Equal(t, 1.0, f)

	_, ok = l.Column(9999)
	assert.False(t, ok)
}

func TestBuildLookup_RepeatedIDLastWins(t *testing.T) {
	l, err := BuildLookup([]fdc.Nutrient{
		{ID: fdc.Int(1), Name: "Old", UnitName: "G"},
		{ID: fdc.Int(1), Name: "New", UnitName: "MG"},
	})
	require.NoError(t, err)

	col, _ := l.Column(1)
	assert.Equal(t, "New (G)", col)
	f, _ := l.Factor(1)
	assert.Equal(t, 0.001, f)
	// The stale name still belongs to the column universe.
	assert.Equal(t, []string{"New (G)", "Old (G)"}, l.Columns())
}

func TestBuildLookup_Collision(t *testing.T) {
	_, err := BuildLookup([]fdc.Nutrient{
		{ID: fdc.Int(2000), Name: "Sugars", UnitName: "G"},
		{ID: fdc.Int(1063), Name: "Sugars", UnitName: "MG"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrColumnCollision))

	var ce *CollisionError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "Sugars (G)", ce.Column)
	assert.Equal(t, int64(1063), ce.First)
	assert.Equal(t, int64(2000), ce.Second)
}

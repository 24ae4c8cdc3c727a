package fdc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTestFile writes content to name inside dir.
func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// writeRequired writes minimal versions of every required table.
func writeRequired(t *testing.T, dir string) {
	t.Helper()
	writeTestFile(t, dir, FoodFile, "fdc_id,data_type,description,food_category_id,publication_date\n1,foundation_food,Apple,9,2020-01-01\n")
	writeTestFile(t, dir, NutrientFile, "id,name,unit_name,nutrient_nbr\n1087,\"Calcium, Ca\",MG,301\n")
	writeTestFile(t, dir, FoodNutrientFile, "id,fdc_id,nutrient_id,amount\n10,1,1087,500\n")
	writeTestFile(t, dir, PortionFile, "id,fdc_id,seq_num,amount,measure_unit_id,portion_description,gram_weight\n5,1,1,1,1000,,50\n")
	writeTestFile(t, dir, MeasureUnitFile, "id,name\n1000,cup\n")
	writeTestFile(t, dir, CategoryFile, "id,code,description\n9,0900,Fruits and Fruit Juices\n")
}

package pipeline

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sells-group/fdc-nutrition/internal/fdc"
)

// writeTestFile writes content to name inside dir.
func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// writeMinimal writes the one-food, one-nutrient, one-portion dataset.
func writeMinimal(t *testing.T, dir string) {
	t.Helper()
	writeTestFile(t, dir, fdc.FoodFile, "fdc_id,data_type,description,food_category_id\n1,foundation_food,Apple,9\n")
	writeTestFile(t, dir, fdc.NutrientFile, "id,name,unit_name\n1087,\"Calcium, Ca\",MG\n")
	writeTestFile(t, dir, fdc.FoodNutrientFile, "id,fdc_id,nutrient_id,amount\n10,1,1087,500\n")
	writeTestFile(t, dir, fdc.PortionFile, "id,fdc_id,amount,measure_unit_id,portion_description,gram_weight\n5,1,1,1000,,50\n")
	writeTestFile(t, dir, fdc.MeasureUnitFile, "id,name\n1000,cup\n")
	writeTestFile(t, dir, fdc.CategoryFile, "id,code,description\n9,0900,Fruits and Fruit Juices\n")
}

// writeRich writes a dataset with several foods, types, units and portions.
func writeRich(t *testing.T, dir string) {
	t.Helper()
	writeTestFile(t, dir, fdc.FoodFile, `fdc_id,data_type,description,food_category_id
1,foundation_food,Apple,9
2,branded_food,Cola,14
3,sr_legacy_food,Butter,1
4,experimental_food,Lab sample,9
5,survey_fndds_food,Beef stew,
6,foundation_food,Water,14
`)
	writeTestFile(t, dir, fdc.NutrientFile, `id,name,unit_name
1003,Protein,G
1087,"Calcium, Ca",MG
1114,Vitamin D,UG
1008,Energy,KCAL
`)
	writeTestFile(t, dir, fdc.FoodNutrientFile, `id,fdc_id,nutrient_id,amount
1,1,1003,0.3
2,1,1087,6
3,1,1008,52
4,2,1003,0
5,2,1087,2
6,2,1008,41
7,3,1003,0.9
8,3,1114,1.5
9,3,1008,717
10,4,1003,99
11,5,1003,11
12,5,1087,14
13,5,1008,95
`)
	writeTestFile(t, dir, fdc.PortionFile, `id,fdc_id,amount,measure_unit_id,portion_description,gram_weight
1,1,1,1000,,182
2,1,1,1000,,182
3,1,1,1001,1 large apple,223
4,2,12,1002,,355
5,3,1,1003,,14.2
6,4,1,1000,,100
7,5,1,1000,,
8,5,1,1000,,0
`)
	writeTestFile(t, dir, fdc.MeasureUnitFile, "id,name\n1000,cup\n1001,undetermined\n1002,fl oz\n1003,tbsp\n")
	writeTestFile(t, dir, fdc.CategoryFile, "id,description\n9,Fruits and Fruit Juices\n14,Beverages\n1,Dairy and Egg Products\n")
}

// readCSV reads every record of path.
func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	recs, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return recs
}

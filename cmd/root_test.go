package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/fdc-nutrition/internal/export"
	"github.com/sells-group/fdc-nutrition/internal/fdc"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "fdc-nutrition <input_dir> <output_dir>", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRootCommand_Flags(t *testing.T) {
	for _, name := range []string{"xlsx", "report"} {
		flag := rootCmd.Flags().Lookup(name)
		require.NotNil(t, flag, "root command should have --%s flag", name)
		assert.Equal(t, "false", flag.DefValue)
	}
}

func TestRootCommand_Args(t *testing.T) {
	assert.Error(t, rootCmd.Args(rootCmd, nil))
	assert.Error(t, rootCmd.Args(rootCmd, []string{"in"}))
	assert.Error(t, rootCmd.Args(rootCmd, []string{"in", "out", "extra"}))
	assert.NoError(t, rootCmd.Args(rootCmd, []string{"in", "out"}))
}

// execute runs the root command from a temp working directory so no
// config.yaml is picked up.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
		flagXLSX, flagReport = false, false
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs(args)
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	return rootCmd.Execute()
}

func writeInputs(t *testing.T, dir string) {
	t.Helper()
	files := map[string]string{
		fdc.FoodFile:         "fdc_id,data_type,description,food_category_id\n1,foundation_food,Apple,9\n",
		fdc.NutrientFile:     "id,name,unit_name\n1087,\"Calcium, Ca\",MG\n",
		fdc.FoodNutrientFile: "id,fdc_id,nutrient_id,amount\n10,1,1087,500\n",
		fdc.PortionFile:      "id,fdc_id,amount,measure_unit_id,portion_description,gram_weight\n5,1,1,1000,,50\n",
		fdc.MeasureUnitFile:  "id,name\n1000,cup\n",
		fdc.CategoryFile:     "id,description\n9,Fruits and Fruit Juices\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func TestExecute_WrongArgCount(t *testing.T) {
	err := execute(t, "only-one")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestExecute_InputNotDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "food.csv")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	err := execute(t, file, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestExecute_CreatesOutputDir(t *testing.T) {
	in := t.TempDir()
	writeInputs(t, in)
	out := filepath.Join(t.TempDir(), "nested", "out")

	require.NoError(t, execute(t, in, out, "--report"))

	for _, name := range []string{export.Per100gFile, export.PerServingFile, export.ReportFile} {
		_, err := os.Stat(filepath.Join(out, name))
		assert.NoError(t, err, name)
	}
	_, err := os.Stat(filepath.Join(out, export.WorkbookFile))
	assert.True(t, os.IsNotExist(err))
}

func TestExecute_MissingRequiredFile(t *testing.T) {
	in := t.TempDir()
	writeInputs(t, in)
	require.NoError(t, os.Remove(filepath.Join(in, fdc.NutrientFile)))

	err := execute(t, in, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), fdc.NutrientFile)
}

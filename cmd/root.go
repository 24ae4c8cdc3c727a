package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/fdc-nutrition/internal/config"
	"github.com/sells-group/fdc-nutrition/internal/pipeline"
)

var cfg *config.Config

var (
	flagXLSX   bool
	flagReport bool
)

var rootCmd = &cobra.Command{
	Use:   "fdc-nutrition <input_dir> <output_dir>",
	Short: "Convert a USDA FoodData Central CSV export into nutrient tables",
	Long: `Reads food.csv, nutrient.csv, food_nutrient.csv, food_portion.csv,
measure_unit.csv, food_category.csv and (optionally) branded_food.csv from
input_dir and writes foods_per_100g.csv and foods_per_serving.csv to
output_dir. Nutrient amounts are standardized to grams; missing values are
written as -1.0; nutrients missing for more than half of the foods are dropped.`,
	Args: cobra.ExactArgs(2),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return eris.Wrap(err, "load config")
		}
		if err := c.Validate(); err != nil {
			return err
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return eris.Wrap(err, "init logger")
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		inputDir, outputDir := args[0], args[1]
		info, err := os.Stat(inputDir)
		if err != nil || !info.IsDir() {
			return eris.Errorf("path not found or is not a directory: %s", inputDir)
		}
		if err := pipeline.EnsureOutputDir(outputDir); err != nil {
			return err
		}

		opts := pipeline.Options{
			InputDir:  inputDir,
			OutputDir: outputDir,
			XLSX:      cfg.Export.XLSX,
			Report:    cfg.Export.Report,
		}
		if cmd.Flags().Changed("xlsx") {
			opts.XLSX = flagXLSX
		}
		if cmd.Flags().Changed("report") {
			opts.Report = flagReport
		}

		res, err := pipeline.Run(cmd.Context(), opts)
		if err != nil {
			zap.L().Error("conversion failed", zap.Error(err))
			return err
		}

		zap.L().Info("conversion complete",
			zap.String("run_id", res.RunID),
			zap.Int("foods", res.Per100gRows),
			zap.Int("servings", res.ServingRows),
			zap.Int("nutrient_columns", len(res.ColumnsKept)),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	rootCmd.Flags().BoolVar(&flagXLSX, "xlsx", false, "also write foods.xlsx with one sheet per table")
	rootCmd.Flags().BoolVar(&flagReport, "report", false, "also write run_report.yaml summarizing the run")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

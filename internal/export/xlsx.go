package export

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// Workbook sheet names.
const (
	Per100gSheet    = "foods_per_100g"
	PerServingSheet = "foods_per_serving"
	WorkbookFile    = "foods.xlsx"
)

const xlsxFloatFormat = "0.0000"

// Workbook collects the output tables as sheets of one XLSX file.
type Workbook struct {
	f *xlsx.File
}

// NewWorkbook returns an empty workbook.
func NewWorkbook() *Workbook {
	return &Workbook{f: xlsx.NewFile()}
}

// AddPer100g adds the per-100g sheet.
func (w *Workbook) AddPer100g(nutrients []string, rows []FoodRow) error {
	sheet, err := w.addSheet(Per100gSheet, Per100gHeader(nutrients))
	if err != nil {
		return err
	}
	for _, r := range rows {
		row := sheet.AddRow()
		addFoodCells(row, r.Food.ID, r.Food.Description, r.Food.Category, FormatIngredients(r.Food.Ingredients))
		addFloatCells(row, r.Values)
	}
	return nil
}

// AddPerServing adds the per-serving sheet.
func (w *Workbook) AddPerServing(nutrients []string, rows []ServingRow) error {
	sheet, err := w.addSheet(PerServingSheet, PerServingHeader(nutrients))
	if err != nil {
		return err
	}
	for _, r := range rows {
		row := sheet.AddRow()
		addFoodCells(row, r.Food.ID, r.Food.Description, r.Food.Category, FormatIngredients(r.Food.Ingredients))
		row.AddCell().SetString(r.Description)
		row.AddCell().SetFloatWithFormat(r.Grams, xlsxFloatFormat)
		addFloatCells(row, r.Values)
	}
	return nil
}

// Save writes the workbook to path.
func (w *Workbook) Save(path string) error {
	if err := w.f.Save(path); err != nil {
		return eris.Wrapf(err, "xlsx: save %s", path)
	}
	return nil
}

func (w *Workbook) addSheet(name string, header []string) (*xlsx.Sheet, error) {
	sheet, err := w.f.AddSheet(name)
	if err != nil {
		return nil, eris.Wrapf(err, "xlsx: add sheet %s", name)
	}
	row := sheet.AddRow()
	for _, h := range header {
		row.AddCell().SetString(h)
	}
	return sheet, nil
}

func addFoodCells(row *xlsx.Row, id int64, description, category, ingredients string) {
	row.AddCell().SetInt64(id)
	row.AddCell().SetString(description)
	row.AddCell().SetString(category)
	row.AddCell().SetString(ingredients)
}

func addFloatCells(row *xlsx.Row, vals []float64) {
	for _, v := range vals {
		row.AddCell().SetFloatWithFormat(v, xlsxFloatFormat)
	}
}

package fdc

// Food is a row of food.csv. FoodCategoryID is kept as raw text; numeric
// coercion happens when categories are joined.
type Food struct {
	FdcID          NullInt    `csv:"fdc_id"`
	Description    NullString `csv:"description"`
	DataType       string     `csv:"data_type"`
	FoodCategoryID string     `csv:"food_category_id"`
}

// Nutrient is a row of nutrient.csv. UnitName holds the USDA unit code
// (G, MG, UG, KCAL, IU, ...).
type Nutrient struct {
	ID       NullInt `csv:"id"`
	Name     string  `csv:"name"`
	UnitName string  `csv:"unit_name"`
}

// FoodNutrient is a row of food_nutrient.csv: one measured amount of one
// nutrient for one food, in the nutrient's own unit.
type FoodNutrient struct {
	FdcID      NullInt   `csv:"fdc_id"`
	NutrientID NullInt   `csv:"nutrient_id"`
	Amount     NullFloat `csv:"amount"`
}

// Portion is a row of food_portion.csv.
type Portion struct {
	FdcID              NullInt    `csv:"fdc_id"`
	MeasureUnitID      NullInt    `csv:"measure_unit_id"`
	GramWeight         NullFloat  `csv:"gram_weight"`
	PortionDescription NullString `csv:"portion_description"`
	Amount             NullFloat  `csv:"amount"`
}

// MeasureUnit is a row of measure_unit.csv.
type MeasureUnit struct {
	ID   NullInt `csv:"id"`
	Name string  `csv:"name"`
}

// FoodCategory is a row of food_category.csv.
type FoodCategory struct {
	ID          NullInt    `csv:"id"`
	Description NullString `csv:"description"`
}

// BrandedFood is a row of branded_food.csv.
type BrandedFood struct {
	FdcID       NullInt    `csv:"fdc_id"`
	BrandOwner  NullString `csv:"brand_owner"`
	BrandName   NullString `csv:"brand_name"`
	Ingredients NullString `csv:"ingredients"`
}

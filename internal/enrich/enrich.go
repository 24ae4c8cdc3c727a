// Package enrich filters foods to the supported data types and attaches
// category labels, brand prefixes and parsed ingredient lists.
package enrich

import (
	"go.uber.org/zap"

	"github.com/sells-group/fdc-nutrition/internal/fdc"
)

// UnknownCategory labels foods without a matching category.
const UnknownCategory = "Unknown"

// DataTypes are the FDC data_type tags kept by FilterFoods.
var DataTypes = []string{
	"foundation_food",
	"sr_legacy_food",
	"survey_fndds_food",
	"branded_food",
}

// Food is a filtered food with its enrichment applied. Description already
// carries the brand prefix.
type Food struct {
	ID          int64
	Description string
	DataType    string
	CategoryID  fdc.NullInt
	Category    string
	BrandPrefix string
	Ingredients []string
}

// IDSet is the set of food ids that survived filtering.
type IDSet map[int64]struct{}

// Has reports whether id is in the set.
func (s IDSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// FilterFoods keeps rows whose data_type is allow-listed and whose fdc_id is
// usable. The first row of a repeated fdc_id wins.
func FilterFoods(foods []fdc.Food) []fdc.Food {
	allowed := make(map[string]struct{}, len(DataTypes))
	for _, dt := range DataTypes {
		allowed[dt] = struct{}{}
	}

	seen := make(map[int64]struct{})
	var out []fdc.Food
	for _, f := range foods {
		if _, ok := allowed[f.DataType]; !ok || !f.FdcID.Valid {
			continue
		}
		if _, dup := seen[f.FdcID.Int64]; dup {
			continue
		}
		seen[f.FdcID.Int64] = struct{}{}
		out = append(out, f)
	}
	return out
}

type brandInfo struct {
	prefix      string
	ingredients []string
}

// Enrich filters ds.Foods and joins categories and, when loaded, brand data.
// Output order follows food.csv.
func Enrich(ds *fdc.Dataset) []Food {
	log := zap.L()
	log.Info("filtering and standardizing food data")

	filtered := FilterFoods(ds.Foods)
	categories := categoryLabels(ds.Categories)

	var brands map[int64]brandInfo
	if ds.HasBranded {
		log.Info("adding brand and ingredient data")
		brands = brandInfos(ds.Branded)
	}

	out := make([]Food, 0, len(filtered))
	for _, f := range filtered {
		food := Food{
			ID:          f.FdcID.Int64,
			Description: f.Description.OrEmpty(),
			DataType:    f.DataType,
			CategoryID:  fdc.ParseNullInt(f.FoodCategoryID),
			Category:    UnknownCategory,
			Ingredients: []string{},
		}
		if food.CategoryID.Valid {
			if label, ok := categories[food.CategoryID.Int64]; ok {
				food.Category = label
			}
		}
		if b, ok := brands[food.ID]; ok {
			food.BrandPrefix = b.prefix
			food.Ingredients = b.ingredients
		}
		food.Description = food.BrandPrefix + food.Description
		out = append(out, food)
	}

	log.Info("found foods of valid types", zap.Int("foods", len(out)))
	return out
}

// ValidIDs returns the ids of the enriched foods.
func ValidIDs(foods []Food) IDSet {
	ids := make(IDSet, len(foods))
	for _, f := range foods {
		ids[f.ID] = struct{}{}
	}
	return ids
}

func categoryLabels(cats []fdc.FoodCategory) map[int64]string {
	m := make(map[int64]string, len(cats))
	for _, c := range cats {
		if !c.ID.Valid || !c.Description.Valid {
			continue
		}
		if _, ok := m[c.ID.Int64]; !ok {
			m[c.ID.Int64] = c.Description.String
		}
	}
	return m
}

func brandInfos(rows []fdc.BrandedFood) map[int64]brandInfo {
	m := make(map[int64]brandInfo, len(rows))
	for _, b := range rows {
		if !b.FdcID.Valid {
			continue
		}
		if _, ok := m[b.FdcID.Int64]; ok {
			continue
		}
		m[b.FdcID.Int64] = brandInfo{
			prefix:      BrandPrefix(b.BrandOwner.OrEmpty(), b.BrandName.OrEmpty()),
			ingredients: ParseIngredients(b.Ingredients.OrEmpty()),
		}
	}
	return m
}

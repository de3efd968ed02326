package model

type Category string

const (
	CategoryMotorcycleTukTuk Category = "motorcycle_tuk_tuk"
	CategorySedanPickupSuv   Category = "sedan_pickup_suv"
	CategoryVan              Category = "van"
	CategoryMinibusBus       Category = "minibus_bus"
	CategoryTruckTrailer     Category = "truck6_truck10_trailer"
	CategoryUnknown          Category = "unknown"
)

// Categories lists the canonical categories in display order. CategoryUnknown
// is deliberately absent: unrecognized classes never appear in per-category
// sums.
var Categories = []Category{
	CategoryMotorcycleTukTuk,
	CategorySedanPickupSuv,
	CategoryVan,
	CategoryMinibusBus,
	CategoryTruckTrailer,
}

var classCategories = map[string]Category{
	"motorcycle":     CategoryMotorcycleTukTuk,
	"tuk-tuk":        CategoryMotorcycleTukTuk,
	"sedan":          CategorySedanPickupSuv,
	"single-pick-up": CategorySedanPickupSuv,
	"pick-up":        CategorySedanPickupSuv,
	"van":            CategoryVan,
	"bus":            CategoryMinibusBus,
	"minibus":        CategoryMinibusBus,
	"trailer":        CategoryTruckTrailer,
	"truck6":         CategoryTruckTrailer,
	"truck10":        CategoryTruckTrailer,
}

// Categorize maps a raw detector class label to its canonical category.
// Labels outside the table come back as CategoryUnknown so that new detector
// classes undercount instead of breaking aggregation.
func Categorize(rawClass string) Category {
	if category, ok := classCategories[rawClass]; ok {
		return category
	}
	return CategoryUnknown
}

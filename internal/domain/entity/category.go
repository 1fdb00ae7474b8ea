package entity

// Category categoría fija de un ítem de cocina. "Other" es el comodín.
type Category string

const (
	CategoryProduce    Category = "Produce"
	CategoryDairy      Category = "Dairy"
	CategoryMeat       Category = "Meat"
	CategorySeafood    Category = "Seafood"
	CategoryDryGoods   Category = "Dry Goods"
	CategorySpices     Category = "Spices"
	CategoryBeverages  Category = "Beverages"
	CategoryFrozen     Category = "Frozen"
	CategoryCondiments Category = "Condiments"
	CategoryOther      Category = "Other"
)

// AllCategories conjunto cerrado de categorías válidas.
var AllCategories = []Category{
	CategoryProduce, CategoryDairy, CategoryMeat, CategorySeafood,
	CategoryDryGoods, CategorySpices, CategoryBeverages, CategoryFrozen,
	CategoryCondiments, CategoryOther,
}

// ParseCategory normaliza un string a Category; valores desconocidos caen en Other.
func ParseCategory(s string) Category {
	for _, c := range AllCategories {
		if string(c) == s {
			return c
		}
	}
	return CategoryOther
}

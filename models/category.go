package models

// Category is a competition division. It constrains how many players a team
// in that division carries.
type Category string

const (
	MensSingles   Category = "Men's Singles"
	WomensSingles Category = "Women's Singles"
	MensDoubles   Category = "Men's Doubles"
	WomensDoubles Category = "Women's Doubles"
	MixedDoubles  Category = "Mixed Doubles"
)

// AllCategories lists every known division in display order.
var AllCategories = []Category{
	MensSingles,
	WomensSingles,
	MensDoubles,
	WomensDoubles,
	MixedDoubles,
}

func (c Category) Valid() bool {
	switch c {
	case MensSingles, WomensSingles, MensDoubles, WomensDoubles, MixedDoubles:
		return true
	}
	return false
}

// Arity returns the number of players a team of this category must have.
// Returns 0 for an unknown category.
func (c Category) Arity() int {
	switch c {
	case MensSingles, WomensSingles:
		return 1
	case MensDoubles, WomensDoubles, MixedDoubles:
		return 2
	}
	return 0
}

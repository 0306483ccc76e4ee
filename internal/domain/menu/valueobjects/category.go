package valueobjects

import "fmt"

type Category string

const (
	CategoryBreakfast Category = "breakfast"
	CategoryLunch     Category = "lunch"
	CategorySnacks    Category = "snacks"
	CategoryBeverages Category = "beverages"
	CategoryOther     Category = "other"
)

var validCategories = map[Category]string{
	CategoryBreakfast: "Breakfast",
	CategoryLunch:     "Lunch",
	CategorySnacks:    "Snacks",
	CategoryBeverages: "Beverages",
	CategoryOther:     "Other",
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	_, ok := validCategories[c]
	return ok
}

func (c Category) DisplayName() string {
	if name, ok := validCategories[c]; ok {
		return name
	}
	return string(c)
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid menu category: %s", s)
	}
	return c, nil
}

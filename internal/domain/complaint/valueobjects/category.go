package valueobjects

import "fmt"

type Category string

const (
	CategoryWater       Category = "water"
	CategoryElectricity Category = "electricity"
	CategoryCleaning    Category = "cleaning"
	CategoryMaintenance Category = "maintenance"
	CategorySecurity    Category = "security"
	CategoryOther       Category = "other"
)

var validCategories = map[Category]string{
	CategoryWater:       "Water Supply",
	CategoryElectricity: "Electricity",
	CategoryCleaning:    "Cleaning",
	CategoryMaintenance: "Maintenance",
	CategorySecurity:    "Security",
	CategoryOther:       "Other",
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	_, ok := validCategories[c]
	return ok
}

// DisplayName returns the label shown on complaint listings.
func (c Category) DisplayName() string {
	if name, ok := validCategories[c]; ok {
		return name
	}
	return string(c)
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid complaint category: %s", s)
	}
	return c, nil
}

package menu

import (
	"math"
	"strings"
	"time"

	"campushub/internal/domain/menu/valueobjects"
	"campushub/internal/shared/calendar"
	"campushub/internal/shared/errors"
)

// Item is a cafeteria menu entry published by an admin for a specific
// calendar day.
type Item struct {
	id          uint
	name        string
	category    valueobjects.Category
	price       float64
	description string
	availableOn time.Time
	imageData   string
	createdBy   string
	createdAt   time.Time
}

// NewItem validates and creates a menu item. availableOn is the calendar day
// the item is served; imageData optionally carries an inline data URL.
func NewItem(name, category string, price float64, description string, availableOn time.Time, imageData, createdBy string) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("Item name is required")
	}

	cat, err := valueobjects.NewCategory(category)
	if err != nil {
		return nil, errors.NewValidationError("Please select a valid category")
	}

	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return nil, errors.NewValidationError("Price must be zero or greater")
	}

	if availableOn.IsZero() {
		return nil, errors.NewValidationError("Availability date is required")
	}

	return &Item{
		name:        name,
		category:    cat,
		price:       price,
		description: strings.TrimSpace(description),
		availableOn: calendar.StartOfDay(availableOn),
		imageData:   imageData,
		createdBy:   createdBy,
		createdAt:   calendar.NowUTC(),
	}, nil
}

// ReconstructItem recreates a menu item from persistent storage.
func ReconstructItem(
	id uint,
	name string,
	category valueobjects.Category,
	price float64,
	description string,
	availableOn time.Time,
	imageData string,
	createdBy string,
	createdAt time.Time,
) *Item {
	return &Item{
		id:          id,
		name:        name,
		category:    category,
		price:       price,
		description: description,
		availableOn: availableOn,
		imageData:   imageData,
		createdBy:   createdBy,
		createdAt:   createdAt,
	}
}

func (i *Item) ID() uint                        { return i.id }
func (i *Item) Name() string                    { return i.name }
func (i *Item) Category() valueobjects.Category { return i.category }
func (i *Item) Price() float64                  { return i.price }
func (i *Item) Description() string             { return i.description }
func (i *Item) AvailableOn() time.Time          { return i.availableOn }
func (i *Item) ImageData() string               { return i.imageData }
func (i *Item) CreatedBy() string               { return i.createdBy }
func (i *Item) CreatedAt() time.Time            { return i.createdAt }

func (i *Item) SetID(id uint) {
	i.id = id
}

// MatchesSearch reports whether the query appears in the item's name or
// description, case-insensitively. An empty query matches everything.
func (i *Item) MatchesSearch(query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(i.name), query) ||
		strings.Contains(strings.ToLower(i.description), query)
}

// IsAvailableToday reports whether the item is served on today's calendar day.
func (i *Item) IsAvailableToday() bool {
	return calendar.IsToday(i.availableOn)
}

// IsAvailableTomorrow reports whether the item is served tomorrow.
func (i *Item) IsAvailableTomorrow() bool {
	return calendar.IsTomorrow(i.availableOn)
}

package models

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"
)

// CategoryGroup classifies how a category behaves in the monthly plan.
//
// swagger:enum CategoryGroup
type CategoryGroup string

const (
	CategoryGroupFixed    CategoryGroup = "FIXED"
	CategoryGroupVariable CategoryGroup = "VARIABLE"
	CategoryGroupSavings  CategoryGroup = "SAVINGS"
	CategoryGroupDebt     CategoryGroup = "DEBT"
)

// Category represents a spending or income category.
//
// The name uniquely identifies a category across the instance. Transactions,
// budgets, weekly budgets and rules all reference categories by ID; the name
// is display metadata.
type Category struct {
	DefaultModel
	Name      string        `gorm:"uniqueIndex"`
	Group     CategoryGroup // How the category behaves in the monthly plan
	Essential bool          // Non-discretionary spending, counts against the daily allowance
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	switch c.Group {
	case CategoryGroupFixed, CategoryGroupVariable, CategoryGroupSavings, CategoryGroupDebt:
	default:
		return ErrCategoryGroupInvalid
	}

	return nil
}

// Returns all categories on this instance for export
func (Category) Export() (json.RawMessage, error) {
	var categories []Category
	err := DB.Unscoped().Where(&Category{}).Find(&categories).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&categories)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}

// defaultCategories is the taxonomy a fresh instance is seeded with.
func defaultCategories() []Category {
	return []Category{
		{Name: "Renta", Group: CategoryGroupFixed, Essential: true},
		{Name: "Servicios", Group: CategoryGroupFixed, Essential: true},
		{Name: "Combustible", Group: CategoryGroupFixed, Essential: true},
		{Name: "Supermercado", Group: CategoryGroupVariable, Essential: true},
		{Name: "Minimarket", Group: CategoryGroupVariable},
		{Name: "Delivery", Group: CategoryGroupVariable},
		{Name: "Transporte (Bolt/Uber)", Group: CategoryGroupVariable},
		{Name: "Suscripciones", Group: CategoryGroupVariable},
		{Name: "Salud", Group: CategoryGroupVariable, Essential: true},
		{Name: "Restaurantes", Group: CategoryGroupVariable},
		{Name: "Entretenimiento", Group: CategoryGroupVariable},
		{Name: "Salario", Group: CategoryGroupFixed, Essential: true},
		{Name: "Freelance", Group: CategoryGroupVariable},
		{Name: "Fondo de Emergencia", Group: CategoryGroupSavings, Essential: true},
		{Name: "Inversión", Group: CategoryGroupSavings},
		{Name: "Tarjeta de Crédito", Group: CategoryGroupDebt, Essential: true},
		{Name: "Préstamo", Group: CategoryGroupDebt, Essential: true},
	}
}

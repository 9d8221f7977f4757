package model

// CategoryType indicates whether a category applies to income, expense, or both.
type CategoryType string

const (
	// CategoryTypeIncome represents categories for income transactions.
	CategoryTypeIncome CategoryType = "income"
	// CategoryTypeExpense represents categories for expense transactions.
	CategoryTypeExpense CategoryType = "expense"
	// CategoryTypeBoth represents categories valid for either direction.
	CategoryTypeBoth CategoryType = "both"
)

// SubCategory is a second-level entry of the category taxonomy.
type SubCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Category is a first-level entry of the category taxonomy. Categories carry
// no ledger side effects; they are used for matching and display only.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Icon          string        `json:"icon"`
	Type          CategoryType  `json:"type"`
	Subcategories []SubCategory `json:"subcategories"`
}

// Subcategory returns the subcategory with the given id, if present.
func (c *Category) Subcategory(id string) (*SubCategory, bool) {
	for i := range c.Subcategories {
		if c.Subcategories[i].ID == id {
			return &c.Subcategories[i], true
		}
	}
	return nil, false
}

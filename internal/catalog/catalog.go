// Package catalog holds the built-in category taxonomy and resolves it
// together with user-defined custom categories.
package catalog

import (
	"fmt"
	"strings"

	"github.com/Jhonatansales/gestao-financeira/internal/common"
	"github.com/Jhonatansales/gestao-financeira/internal/model"
)

// CustomIDPrefix marks user-created categories. A custom category whose id is
// "custom-<default id>" shadows the built-in entry of the same id, which is
// how subcategories get added to built-in categories.
const CustomIDPrefix = "custom-"

// Default returns the built-in category taxonomy. The returned slice is a
// fresh copy; callers may modify it freely.
func Default() []model.Category {
	out := make([]model.Category, len(defaultCategories))
	copy(out, defaultCategories)
	return out
}

// Resolve merges the built-in taxonomy with user-defined categories. Custom
// categories shadowing a built-in one (id "custom-<id>") replace it; the rest
// are appended.
func Resolve(custom []model.Category) []model.Category {
	shadowed := make(map[string]model.Category)
	var extra []model.Category
	for _, c := range custom {
		base := strings.TrimPrefix(c.ID, CustomIDPrefix)
		if base != c.ID && hasDefault(base) {
			shadowed[base] = c
			continue
		}
		extra = append(extra, c)
	}

	merged := make([]model.Category, 0, len(defaultCategories)+len(extra))
	for _, c := range defaultCategories {
		if s, ok := shadowed[c.ID]; ok {
			s.Name = c.Name
			merged = append(merged, s)
			continue
		}
		merged = append(merged, c)
	}
	return append(merged, extra...)
}

// Lookup finds a category by id in the resolved taxonomy.
func Lookup(categories []model.Category, id string) (*model.Category, bool) {
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i], true
		}
	}
	return nil, false
}

// Validate checks that the category id exists and, when a subcategory id is
// given, that it belongs to the category. Unknown ids are rejected at the
// boundary instead of passing through silently.
func Validate(categories []model.Category, categoryID, subcategoryID string) error {
	cat, ok := Lookup(categories, categoryID)
	if !ok {
		// A built-in id stays valid after a custom copy shadows it.
		cat, ok = Lookup(categories, CustomIDPrefix+categoryID)
	}
	if !ok {
		return fmt.Errorf("%w: %s", common.ErrUnknownCategory, categoryID)
	}
	if subcategoryID == "" {
		return nil
	}
	if _, ok := cat.Subcategory(subcategoryID); !ok {
		return fmt.Errorf("%w: %s/%s", common.ErrUnknownCategory, categoryID, subcategoryID)
	}
	return nil
}

func hasDefault(id string) bool {
	for i := range defaultCategories {
		if defaultCategories[i].ID == id {
			return true
		}
	}
	return false
}

package catalog

import (
	"testing"

	"github.com/Jhonatansales/gestao-financeira/internal/common"
	"github.com/Jhonatansales/gestao-financeira/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultReturnsCopy(t *testing.T) {
	first := Default()
	first[0].Name = "mutated"

	second := Default()
	assert.NotEqual(t, "mutated", second[0].Name)
}

func TestResolve(t *testing.T) {
	t.Run("no custom categories returns defaults", func(t *testing.T) {
		resolved := Resolve(nil)
		assert.Len(t, resolved, len(defaultCategories))
	})

	t.Run("custom categories are appended", func(t *testing.T) {
		resolved := Resolve([]model.Category{
			{ID: "custom-abc123", Name: "Hobby", Type: model.CategoryTypeExpense},
		})

		require.Len(t, resolved, len(defaultCategories)+1)
		assert.Equal(t, "custom-abc123", resolved[len(resolved)-1].ID)
	})

	t.Run("shadow replaces the builtin in place", func(t *testing.T) {
		shadow := model.Category{
			ID:   "custom-alimentacao",
			Name: "ignored",
			Type: model.CategoryTypeExpense,
			Subcategories: []model.SubCategory{
				{ID: "sub-1", Name: "Feira"},
			},
		}
		resolved := Resolve([]model.Category{shadow})

		require.Len(t, resolved, len(defaultCategories))
		got, ok := Lookup(resolved, "custom-alimentacao")
		require.True(t, ok)
		assert.Equal(t, "Alimentação", got.Name, "shadow keeps the builtin display name")
		assert.Len(t, got.Subcategories, 1)

		_, ok = Lookup(resolved, "alimentacao")
		assert.False(t, ok, "builtin must be shadowed out")
	})
}

func TestValidate(t *testing.T) {
	resolved := Resolve(nil)

	tests := []struct {
		name        string
		category    string
		subcategory string
		wantErr     bool
	}{
		{"known category", "alimentacao", "", false},
		{"known subcategory", "alimentacao", "supermercado", false},
		{"unknown category", "nope", "", true},
		{"unknown subcategory", "alimentacao", "nope", true},
		{"subcategory of another category", "transporte", "supermercado", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(resolved, tt.category, tt.subcategory)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrUnknownCategory)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("builtin id remains valid after shadowing", func(t *testing.T) {
		shadowed := Resolve([]model.Category{{
			ID:   "custom-alimentacao",
			Type: model.CategoryTypeExpense,
			Subcategories: []model.SubCategory{
				{ID: "supermercado", Name: "Supermercado"},
				{ID: "sub-1", Name: "Feira"},
			},
		}})

		assert.NoError(t, Validate(shadowed, "alimentacao", "supermercado"))
		assert.NoError(t, Validate(shadowed, "custom-alimentacao", "sub-1"))
	})
}

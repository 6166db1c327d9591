package recipes

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ytget/recipe-book/internal/model"
)

// SortLanguage selects the collation used to order recipe names
var SortLanguage = language.English

// SortByName returns a copy of recipes ordered by name using locale-aware
// collation. Recipes with equal names keep their relative order.
func SortByName(recipes []*model.Recipe) []*model.Recipe {
	sorted := slices.Clone(recipes)
	if sorted == nil {
		return []*model.Recipe{}
	}

	collator := collate.New(SortLanguage)
	slices.SortStableFunc(sorted, func(a, b *model.Recipe) int {
		return collator.CompareString(a.Name, b.Name)
	})
	return sorted
}

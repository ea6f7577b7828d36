package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tastetrail/backend/internal/model"
	"github.com/tastetrail/backend/internal/types"
)

// ShoppingListService aggregates ingredients across recipes.
type ShoppingListService struct {
	db *gorm.DB
}

func NewShoppingListService(db *gorm.DB) *ShoppingListService {
	return &ShoppingListService{db: db}
}

// Generate fetches the referenced recipes and buckets their ingredients
// by category. ErrEmptyRecipeList when no ids are given.
func (s *ShoppingListService) Generate(ctx context.Context, recipeIDs []uuid.UUID) (types.ShoppingList, error) {
	if len(recipeIDs) == 0 {
		return nil, ErrEmptyRecipeList
	}

	var recipes []model.Recipe
	if err := s.db.Where("id IN ?", recipeIDs).Find(&recipes).Error; err != nil {
		return nil, err
	}

	// Row order is not stable; aggregation follows the request order so
	// the first-listed recipe contributes the first amount of a merged item.
	byID := make(map[uuid.UUID]model.Recipe, len(recipes))
	for _, r := range recipes {
		byID[r.ID] = r
	}
	ordered := make([]model.Recipe, 0, len(recipes))
	for _, id := range recipeIDs {
		if r, ok := byID[id]; ok {
			ordered = append(ordered, r)
			delete(byID, id)
		}
	}

	return AggregateIngredients(ordered), nil
}

// AggregateIngredients merges the ingredient lists of the given recipes
// into a category-keyed shopping list. Within a category, entries whose
// names match case-insensitively collapse into one item whose amounts
// list carries every source recipe's literal amount string; there is no
// unit parsing or numeric summation. Items keep first-seen order.
func AggregateIngredients(recipes []model.Recipe) types.ShoppingList {
	list := types.ShoppingList{}

	for _, recipe := range recipes {
		for _, ing := range recipe.Ingredients {
			items := list[ing.Category]

			var existing *types.ShoppingListItem
			for _, item := range items {
				if strings.EqualFold(item.Name, ing.Name) {
					existing = item
					break
				}
			}

			if existing != nil {
				existing.Amounts = append(existing.Amounts, ing.Amount)
			} else {
				list[ing.Category] = append(items, &types.ShoppingListItem{
					Name:    ing.Name,
					Amounts: []string{ing.Amount},
				})
			}
		}
	}

	return list
}

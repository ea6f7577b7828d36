package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tastetrail/backend/internal/model"
	"github.com/tastetrail/backend/internal/types"
)

// RecipeService handles catalog and review operations.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// ListRecipes returns catalog entries matching the filter, newest first.
func (s *RecipeService) ListRecipes(ctx context.Context, filter *types.RecipeFilter) ([]model.Recipe, error) {
	query := s.db.Model(&model.Recipe{})

	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if filter.Diet != "" {
		like := "%" + strings.ToLower(filter.Diet) + "%"
		if s.db.Dialector.Name() == "postgres" {
			query = query.Where("LOWER(dietary_tags::text) LIKE ?", like)
		} else {
			query = query.Where("LOWER(dietary_tags) LIKE ?", like)
		}
	}
	if filter.Cuisine != "" {
		like := "%" + strings.ToLower(filter.Cuisine) + "%"
		query = query.Where("LOWER(cuisine) LIKE ?", like)
	}
	if filter.MaxTime > 0 {
		query = query.Where("prep_time <= ?", filter.MaxTime)
	}
	if filter.Difficulty != "" {
		query = query.Where("LOWER(difficulty) = ?", strings.ToLower(filter.Difficulty))
	}

	var recipes []model.Recipe
	if err := query.Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// GetRecipesByIDs fetches the recipes for a set of ids. Unknown ids are
// silently skipped.
func (s *RecipeService) GetRecipesByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Recipe, error) {
	if len(ids) == 0 {
		return []model.Recipe{}, nil
	}
	var recipes []model.Recipe
	if err := s.db.Where("id IN ?", ids).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// CreateRecipe validates ingredient categories and stores the recipe.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	for _, ing := range recipe.Ingredients {
		if err := ing.Validate(); err != nil {
			return nil, err
		}
	}
	if recipe.Difficulty == "" {
		recipe.Difficulty = model.DifficultyEasy
	}
	if err := s.db.Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// UpdateRecipe applies a partial field merge and re-validates.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, req *types.UpdateRecipeRequest) (*model.Recipe, error) {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		recipe.Title = *req.Title
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.Image != nil {
		recipe.ImageURL = *req.Image
	}
	if req.PrepTime != nil {
		recipe.PrepTime = *req.PrepTime
	}
	if req.Servings != nil {
		recipe.Servings = *req.Servings
	}
	if req.Difficulty != nil {
		recipe.Difficulty = *req.Difficulty
	}
	if req.Cuisine != nil {
		recipe.Cuisine = *req.Cuisine
	}
	if req.DietaryTags != nil {
		recipe.DietaryTags = model.JSONBStringArray(*req.DietaryTags)
	}
	if req.Ingredients != nil {
		recipe.Ingredients = model.JSONBIngredients(*req.Ingredients)
	}
	if req.Instructions != nil {
		recipe.Instructions = model.JSONBStringArray(*req.Instructions)
	}
	if req.Calories != nil {
		recipe.Calories = *req.Calories
	}
	if req.Protein != nil {
		recipe.Protein = *req.Protein
	}
	if req.Carbs != nil {
		recipe.Carbs = *req.Carbs
	}
	if req.Fat != nil {
		recipe.Fat = *req.Fat
	}

	for _, ing := range recipe.Ingredients {
		if err := ing.Validate(); err != nil {
			return nil, err
		}
	}

	if err := s.db.Save(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// DeleteRecipe removes a recipe from the catalog.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetRecipe(ctx, id); err != nil {
		return err
	}
	return s.db.Delete(&model.Recipe{}, "id = ?", id).Error
}

// ListReviews returns a recipe's reviews, newest first.
func (s *RecipeService) ListReviews(ctx context.Context, recipeID uuid.UUID) ([]model.Review, error) {
	if _, err := s.GetRecipe(ctx, recipeID); err != nil {
		return nil, err
	}
	var reviews []model.Review
	if err := s.db.Where("recipe_id = ?", recipeID).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// AddReview appends a review and recomputes the recipe's average rating.
// A second review by the same user is rejected. The average is kept as
// an eagerly maintained derived field; it is rederived from the full
// review list on every append.
func (s *RecipeService) AddReview(ctx context.Context, recipeID uuid.UUID, claims *types.TokenClaims, req *types.CreateReviewRequest) (*model.Review, error) {
	recipe, err := s.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	var existing model.Review
	err = s.db.Where("recipe_id = ? AND user_id = ?", recipeID, claims.UserID).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyReviewed
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	review := model.Review{
		RecipeID: recipeID,
		UserID:   claims.UserID,
		UserName: claims.Name,
		Rating:   req.Rating,
		Comment:  req.Comment,
		PhotoURL: req.Photo,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, err
	}

	var reviews []model.Review
	if err := s.db.Where("recipe_id = ?", recipeID).Find(&reviews).Error; err != nil {
		return nil, err
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	recipe.AverageRating = float64(sum) / float64(len(reviews))
	if err := s.db.Model(&model.Recipe{}).Where("id = ?", recipeID).
		Update("average_rating", recipe.AverageRating).Error; err != nil {
		return nil, err
	}

	return &review, nil
}

package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tastetrail/backend/internal/model"
	"github.com/tastetrail/backend/internal/types"
)

// UserService handles profile and saved-recipe operations.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetProfile retrieves a user by id.
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	var user model.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies a partial field merge to the user's profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*model.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.DietaryPreferences != nil {
		user.DietaryPreferences = model.JSONBStringArray(*req.DietaryPreferences)
	}
	if req.Allergies != nil {
		user.Allergies = model.JSONBStringArray(*req.Allergies)
	}
	if req.CuisinePreferences != nil {
		user.CuisinePreferences = model.JSONBStringArray(*req.CuisinePreferences)
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// ToggleSavedRecipe flips membership of a recipe in the user's saved
// list and reports whether the recipe is saved afterwards.
func (s *UserService) ToggleSavedRecipe(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var existing model.SavedRecipe
	err := s.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).First(&existing).Error
	if err == nil {
		if err := s.db.Delete(&existing).Error; err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	saved := model.SavedRecipe{UserID: userID, RecipeID: recipeID}
	if err := s.db.Create(&saved).Error; err != nil {
		return false, err
	}
	return true, nil
}

// SavedRecipeIDs returns the ids of the user's saved recipes, newest first.
func (s *UserService) SavedRecipeIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var saved []model.SavedRecipe
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&saved).Error; err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(saved))
	for i, sr := range saved {
		ids[i] = sr.RecipeID
	}
	return ids, nil
}

// SavedRecipes returns the user's saved recipes, newest save first.
func (s *UserService) SavedRecipes(ctx context.Context, userID uuid.UUID) ([]model.Recipe, error) {
	ids, err := s.SavedRecipeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []model.Recipe{}, nil
	}

	var recipes []model.Recipe
	if err := s.db.Where("id IN ?", ids).Find(&recipes).Error; err != nil {
		return nil, err
	}

	// Preserve the save order
	byID := make(map[uuid.UUID]model.Recipe, len(recipes))
	for _, r := range recipes {
		byID[r.ID] = r
	}
	ordered := make([]model.Recipe, 0, len(recipes))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			ordered = append(ordered, r)
		}
	}
	return ordered, nil
}

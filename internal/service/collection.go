package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tastetrail/backend/internal/model"
	"github.com/tastetrail/backend/internal/types"
)

// CollectionService handles user recipe collections.
type CollectionService struct {
	db *gorm.DB
}

func NewCollectionService(db *gorm.DB) *CollectionService {
	return &CollectionService{db: db}
}

// ListCollections returns the caller's collections, newest first.
func (s *CollectionService) ListCollections(ctx context.Context, userID uuid.UUID) ([]model.Collection, error) {
	var collections []model.Collection
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&collections).Error; err != nil {
		return nil, err
	}
	return collections, nil
}

// GetCollection loads a collection and enforces ownership.
func (s *CollectionService) GetCollection(ctx context.Context, id, userID uuid.UUID) (*model.Collection, error) {
	var collection model.Collection
	if err := s.db.First(&collection, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if collection.UserID != userID {
		return nil, ErrForbidden
	}
	return &collection, nil
}

// CreateCollection stores a new collection owned by the caller.
func (s *CollectionService) CreateCollection(ctx context.Context, userID uuid.UUID, req *types.CreateCollectionRequest) (*model.Collection, error) {
	collection := model.Collection{
		UserID:    userID,
		Name:      req.Name,
		RecipeIDs: model.JSONBStringArray{},
	}
	if err := s.db.Create(&collection).Error; err != nil {
		return nil, err
	}
	return &collection, nil
}

// UpdateCollection renames an owned collection.
func (s *CollectionService) UpdateCollection(ctx context.Context, id, userID uuid.UUID, req *types.UpdateCollectionRequest) (*model.Collection, error) {
	collection, err := s.GetCollection(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	collection.Name = req.Name
	if err := s.db.Save(collection).Error; err != nil {
		return nil, err
	}
	return collection, nil
}

// DeleteCollection removes an owned collection.
func (s *CollectionService) DeleteCollection(ctx context.Context, id, userID uuid.UUID) error {
	collection, err := s.GetCollection(ctx, id, userID)
	if err != nil {
		return err
	}
	return s.db.Delete(collection).Error
}

// AddRecipe appends a recipe id to an owned collection. Adding an id
// that is already present fails with ErrRecipeInCollection.
func (s *CollectionService) AddRecipe(ctx context.Context, id, userID, recipeID uuid.UUID) (*model.Collection, error) {
	collection, err := s.GetCollection(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if !collection.AddRecipe(recipeID) {
		return nil, ErrRecipeInCollection
	}
	if err := s.db.Save(collection).Error; err != nil {
		return nil, err
	}
	return collection, nil
}

// RemoveRecipe filters a recipe id out of an owned collection.
func (s *CollectionService) RemoveRecipe(ctx context.Context, id, userID, recipeID uuid.UUID) (*model.Collection, error) {
	collection, err := s.GetCollection(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	collection.RemoveRecipe(recipeID)
	if err := s.db.Save(collection).Error; err != nil {
		return nil, err
	}
	return collection, nil
}

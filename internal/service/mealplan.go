package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/tastetrail/backend/internal/model"
	"github.com/tastetrail/backend/internal/types"
)

// MealPlanService handles weekly meal plans.
type MealPlanService struct {
	db *gorm.DB
}

func NewMealPlanService(db *gorm.DB) *MealPlanService {
	return &MealPlanService{db: db}
}

// ListMealPlans returns the caller's meal plans, most recent week first.
func (s *MealPlanService) ListMealPlans(ctx context.Context, userID uuid.UUID) ([]model.MealPlan, error) {
	var plans []model.MealPlan
	if err := s.db.Where("user_id = ?", userID).Order("week_start_date DESC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// GetMealPlan loads a meal plan and enforces ownership.
func (s *MealPlanService) GetMealPlan(ctx context.Context, id, userID uuid.UUID) (*model.MealPlan, error) {
	var plan model.MealPlan
	if err := s.db.First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if plan.UserID != userID {
		return nil, ErrForbidden
	}
	return &plan, nil
}

// CreateMealPlan stores a new plan owned by the caller. Slot keys have
// already been validated when the request body was parsed.
func (s *MealPlanService) CreateMealPlan(ctx context.Context, userID uuid.UUID, req *types.CreateMealPlanRequest) (*model.MealPlan, error) {
	plan := model.MealPlan{
		UserID:        userID,
		Name:          req.Name,
		WeekStartDate: datatypes.Date(req.WeekStartDate),
		Meals:         req.Meals,
	}
	if plan.Name == "" {
		plan.Name = "My Meal Plan"
	}
	if plan.Meals == nil {
		plan.Meals = model.MealSlots{}
	}
	if err := s.db.Create(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// UpdateMealPlan applies a partial merge. A non-nil Meals replaces the
// whole slot map, so setting a slot overwrites and omitting one clears.
func (s *MealPlanService) UpdateMealPlan(ctx context.Context, id, userID uuid.UUID, req *types.UpdateMealPlanRequest) (*model.MealPlan, error) {
	plan, err := s.GetMealPlan(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.WeekStartDate != nil {
		plan.WeekStartDate = datatypes.Date(*req.WeekStartDate)
	}
	if req.Meals != nil {
		plan.Meals = *req.Meals
	}

	if err := s.db.Save(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

// DeleteMealPlan removes an owned meal plan.
func (s *MealPlanService) DeleteMealPlan(ctx context.Context, id, userID uuid.UUID) error {
	plan, err := s.GetMealPlan(ctx, id, userID)
	if err != nil {
		return err
	}
	return s.db.Delete(plan).Error
}

package main

import (
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tastetrail/backend/config"
	"github.com/tastetrail/backend/internal/database"
	"github.com/tastetrail/backend/internal/model"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := seedAdmin(db); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	if err := seedRecipes(db); err != nil {
		log.Fatalf("Failed to seed recipes: %v", err)
	}

	log.Println("Seeding complete")
}

func seedAdmin(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin user")
		return nil
	}

	var existing model.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Printf("Admin user %s already exists", email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.User{
		Name:         "Admin",
		Email:        email,
		PasswordHash: string(hashed),
		Role:         model.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("Created admin user %s", email)
	return nil
}

func seedRecipes(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Recipe{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Recipe catalog already has %d entries, skipping", count)
		return nil
	}

	recipes := []model.Recipe{
		{
			Title:       "Vegan Buddha Bowl",
			Description: "A nutritious bowl packed with quinoa, chickpeas, and fresh vegetables",
			ImageURL:    "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400",
			PrepTime:    30,
			Servings:    2,
			Difficulty:  model.DifficultyEasy,
			Cuisine:     "International",
			DietaryTags: model.JSONBStringArray{"vegan", "gluten-free"},
			Ingredients: model.JSONBIngredients{
				{Name: "Quinoa", Amount: "1 cup", Category: "Grains"},
				{Name: "Chickpeas", Amount: "1 can", Category: "Proteins"},
				{Name: "Spinach", Amount: "2 cups", Category: "Vegetables"},
				{Name: "Avocado", Amount: "1", Category: "Vegetables"},
				{Name: "Tahini", Amount: "2 tbsp", Category: "Condiments"},
			},
			Instructions: model.JSONBStringArray{
				"Cook quinoa according to package directions",
				"Roast chickpeas with spices at 400°F for 20 minutes",
				"Arrange quinoa, chickpeas, and fresh vegetables in a bowl",
				"Drizzle with tahini dressing",
			},
			Calories: 450,
			Protein:  15,
			Carbs:    52,
			Fat:      18,
		},
		{
			Title:       "Mediterranean Pasta",
			Description: "Fresh pasta with tomatoes, olives, and feta cheese",
			ImageURL:    "https://images.unsplash.com/photo-1563379926898-05f4575a45d8?w=400",
			PrepTime:    25,
			Servings:    4,
			Difficulty:  model.DifficultyEasy,
			Cuisine:     "Mediterranean",
			DietaryTags: model.JSONBStringArray{"vegetarian"},
			Ingredients: model.JSONBIngredients{
				{Name: "Penne Pasta", Amount: "400g", Category: "Grains"},
				{Name: "Cherry Tomatoes", Amount: "2 cups", Category: "Vegetables"},
				{Name: "Kalamata Olives", Amount: "1/2 cup", Category: "Condiments"},
				{Name: "Feta Cheese", Amount: "200g", Category: "Dairy"},
				{Name: "Olive Oil", Amount: "3 tbsp", Category: "Oils"},
			},
			Instructions: model.JSONBStringArray{
				"Cook pasta until al dente",
				"Halve the tomatoes and pit the olives",
				"Toss pasta with olive oil, tomatoes, and olives",
				"Crumble feta over the top and serve",
			},
			Calories: 520,
			Protein:  18,
			Carbs:    68,
			Fat:      20,
		},
		{
			Title:       "Chicken Tikka Masala",
			Description: "Tender chicken in a rich, spiced tomato cream sauce",
			ImageURL:    "https://images.unsplash.com/photo-1565557623262-b51c2513a641?w=400",
			PrepTime:    45,
			Servings:    4,
			Difficulty:  model.DifficultyMedium,
			Cuisine:     "Indian",
			DietaryTags: model.JSONBStringArray{},
			Ingredients: model.JSONBIngredients{
				{Name: "Chicken Breast", Amount: "600g", Category: "Proteins"},
				{Name: "Basmati Rice", Amount: "2 cups", Category: "Grains"},
				{Name: "Heavy Cream", Amount: "1 cup", Category: "Dairy"},
				{Name: "Garam Masala", Amount: "2 tbsp", Category: "Spices"},
				{Name: "Tomato Puree", Amount: "400g", Category: "Condiments"},
			},
			Instructions: model.JSONBStringArray{
				"Marinate chicken in yogurt and spices for 30 minutes",
				"Grill chicken until charred at the edges",
				"Simmer tomato puree with garam masala and cream",
				"Combine chicken with sauce and serve over rice",
			},
			Calories: 640,
			Protein:  42,
			Carbs:    58,
			Fat:      26,
		},
	}

	if err := db.Create(&recipes).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d recipes", len(recipes))
	return nil
}

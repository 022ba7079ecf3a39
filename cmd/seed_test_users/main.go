package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pageza/healthscan/backend/config"
	"github.com/pageza/healthscan/backend/internal/analysis"
	"github.com/pageza/healthscan/backend/internal/database"
	"github.com/pageza/healthscan/backend/internal/models"
	"github.com/pageza/healthscan/backend/internal/service"
	"github.com/pageza/healthscan/backend/internal/types"
)

const password = "testpassword123"

// products cycled through when backfilling scan history.
var products = []types.ProductExtraction{
	{
		Name:        "Plain Greek Yogurt",
		Ingredients: []string{"Cultured milk", "Live cultures"},
		Nutrition:   &types.NutritionFacts{Calories: 100, TotalFat: 0, Sodium: 60, TotalCarbohydrates: 6, Sugar: 4, Protein: 17, ServingSize: "170g"},
	},
	{
		Name:        "Rolled Oats",
		Ingredients: []string{"Whole grain oats"},
		Nutrition:   &types.NutritionFacts{Calories: 150, TotalFat: 3, SaturatedFat: 0.5, Sodium: 0, TotalCarbohydrates: 27, Sugar: 1, Protein: 5, ServingSize: "40g"},
	},
	{
		Name:        "Salted Potato Chips",
		Ingredients: []string{"Potatoes", "Sunflower oil", "Salt"},
		Nutrition:   &types.NutritionFacts{Calories: 160, TotalFat: 10, SaturatedFat: 1, Sodium: 170, TotalCarbohydrates: 15, Sugar: 0, Protein: 2, ServingSize: "28g"},
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	cookies, err := service.NewSyntheticAnalyzer(0).Analyze(context.Background(), []byte{1})
	if err != nil {
		log.Fatalf("Failed to build sample product: %v", err)
	}

	testUsers := []struct {
		name    string
		email   string
		profile types.ProfileRequest
		days    int
	}{
		{
			name:  "John Doe",
			email: "john.doe@example.com",
			profile: types.ProfileRequest{
				Weight: 82, WeightUnit: types.WeightUnitKilograms,
				HealthConditions: []string{"Diabetes"},
			},
			days: 9,
		},
		{
			name:  "Jane Smith",
			email: "jane.smith@example.com",
			profile: types.ProfileRequest{
				Weight: 140, WeightUnit: types.WeightUnitPounds,
				Allergies:           []string{"Milk", "Wheat"},
				DietaryRestrictions: []string{"Vegan"},
			},
			days: 4,
		},
		{
			name:    "Bob Wilson",
			email:   "bob.wilson@example.com",
			profile: types.ProfileRequest{Weight: 75, WeightUnit: types.WeightUnitKilograms},
			days:    0,
		},
	}

	log.Println("Creating test users with scan history...")

	now := time.Now()
	profiles := service.NewProfileService(db)
	for _, u := range testUsers {
		var existing models.User
		err := db.Where("email = ?", u.email).First(&existing).Error
		if err == nil {
			log.Printf("User %s already exists, skipping...", u.email)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to look up %s: %v", u.email, err)
		}

		user := models.User{Name: u.name, Email: u.email, PasswordHash: string(hashedPassword)}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Failed to create user %s: %v", u.email, err)
			continue
		}

		profile, err := profiles.SaveProfile(context.Background(), user.ID, &u.profile)
		if err != nil {
			log.Printf("Failed to create profile for %s: %v", u.email, err)
			continue
		}

		// One scan per day going back u.days days, with a cookie scan every third day.
		for d := u.days - 1; d >= 0; d-- {
			ext := products[d%len(products)]
			if d%3 == 2 {
				ext = *cookies
			}
			scannedAt := now.Add(-time.Duration(d) * 24 * time.Hour)
			product := analysis.Analyze(uuid.NewString(), ext, profile, "", scannedAt)
			if err := db.Create(models.NewScanRecord(user.ID, "", product)).Error; err != nil {
				log.Printf("Failed to create scan for %s: %v", u.email, err)
			}
		}

		log.Printf("Created user: %s (%s) with %d scans", u.name, u.email, u.days)
	}

	log.Println("Test credentials:")
	log.Println("Email: any of the above emails")
	log.Printf("Password: %s", password)
}

package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"crowdaid-backend/internal/config"
	"crowdaid-backend/internal/database"
	"crowdaid-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Email            string         `yaml:"email"`
	Password         string         `yaml:"password"`
	FirstName        string         `yaml:"first_name"`
	LastName         string         `yaml:"last_name"`
	Phone            string         `yaml:"phone,omitempty"`
	Role             string         `yaml:"role"`
	VolunteerProfile *VolunteerData `yaml:"volunteer_profile,omitempty"`
}

type VolunteerData struct {
	IsVerified      bool     `yaml:"is_verified"`
	Skills          []string `yaml:"skills"`
	Bio             string   `yaml:"bio"`
	Rating          float64  `yaml:"rating"`
	TotalResponses  int      `yaml:"total_responses"`
	SuccessfulHelps int      `yaml:"successful_helps"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	userCreated, profileCreated := 0, 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create user %s: %v", userData.Email, err)
			continue
		}
		if created {
			userCreated++
		}

		if userData.VolunteerProfile == nil {
			continue
		}
		created, err = createVolunteerProfile(db, user, *userData.VolunteerProfile)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create volunteer profile for %s: %v", userData.Email, err)
			continue
		}
		if created {
			profileCreated++
		}
	}

	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))
	log.Printf("📋 Volunteer profiles: %d created", profileCreated)
	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("email = ?", userData.Email).First(&user).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, false, fmt.Errorf("failed to query user: %w", err)
		}

		role := models.UserRole(userData.Role)
		if !role.IsValid() {
			return nil, false, fmt.Errorf("invalid role %q", userData.Role)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(userData.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, false, fmt.Errorf("failed to hash password: %w", err)
		}

		user = models.User{
			Email:        userData.Email,
			PasswordHash: string(hash),
			FirstName:    userData.FirstName,
			LastName:     userData.LastName,
			Phone:        userData.Phone,
			Role:         role,
			IsActive:     true,
		}

		if err := db.Create(&user).Error; err != nil {
			return nil, false, fmt.Errorf("failed to create user: %w", err)
		}
		return &user, true, nil
	}

	return &user, false, nil
}

func createVolunteerProfile(db *gorm.DB, user *models.User, data VolunteerData) (bool, error) {
	var profile models.VolunteerProfile
	err := db.Where("user_id = ?", user.ID).First(&profile).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to query volunteer profile: %w", err)
	}

	skills, _ := json.Marshal(data.Skills)
	profile = models.VolunteerProfile{
		UserID:          user.ID,
		IsVerified:      data.IsVerified,
		Skills:          skills,
		Bio:             data.Bio,
		Rating:          data.Rating,
		TotalResponses:  data.TotalResponses,
		SuccessfulHelps: data.SuccessfulHelps,
	}

	if err := db.Create(&profile).Error; err != nil {
		return false, fmt.Errorf("failed to create volunteer profile: %w", err)
	}
	return true, nil
}

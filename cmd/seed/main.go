package main

import (
	"fmt"
	"log"
	"os"

	"github.com/FreshPress-Cleaning/freshpress-backend/config"
	"github.com/FreshPress-Cleaning/freshpress-backend/models"
	"github.com/FreshPress-Cleaning/freshpress-backend/services"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// starterCatalog is the default service list for a fresh install.
var starterCatalog = []models.CleaningService{
	{Name: "Wash & Fold", Description: "Everyday laundry washed, dried and folded per pound", Price: 2.50, TurnaroundHours: 24},
	{Name: "Dry Cleaning", Description: "Professional dry cleaning for delicate garments", Price: 8.00, TurnaroundHours: 48},
	{Name: "Ironing & Pressing", Description: "Crisp pressing for shirts, trousers and dresses", Price: 4.00, TurnaroundHours: 24},
	{Name: "Bedding & Linens", Description: "Duvets, comforters and linens deep cleaned", Price: 18.00, TurnaroundHours: 72},
	{Name: "Suit Cleaning", Description: "Two-piece suit cleaning and finishing", Price: 15.00, TurnaroundHours: 48},
}

// main creates a super admin account and the starter service catalog
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("FRESHPRESS - Super Admin Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	// Initialize database connections
	config.InitDB()
	log.Println("✓ Connected to database")

	// Get input from user
	email, password, name := getAdminCredentials()

	// Check if admin already exists
	var existingAdmin models.Admin
	if err := config.Gorm.Where("email = ?", email).First(&existingAdmin).Error; err == nil {
		fmt.Printf("❌ Admin with email '%s' already exists\n", email)
		os.Exit(1)
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}
	log.Printf("✓ Email '%s' is available", email)

	// Hash password
	authService := services.GetAdminAuthService()
	passwordHash, err := authService.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	log.Println("✓ Password hashed securely")

	// Create super admin
	superAdmin := models.Admin{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         "super_admin",
		Status:       "active",
	}

	if err := config.Gorm.Create(&superAdmin).Error; err != nil {
		log.Fatalf("Failed to create super admin: %v", err)
	}

	// Seed the starter catalog only if no services exist yet
	var serviceCount int64
	if err := config.Gorm.Model(&models.CleaningService{}).Count(&serviceCount).Error; err != nil {
		log.Fatalf("Failed to count services: %v", err)
	}
	if serviceCount == 0 {
		for i := range starterCatalog {
			starterCatalog[i].IsActive = true
			if err := config.Gorm.Create(&starterCatalog[i]).Error; err != nil {
				log.Fatalf("Failed to seed service '%s': %v", starterCatalog[i].Name, err)
			}
		}
		log.Printf("✓ Seeded %d starter services", len(starterCatalog))
	} else {
		log.Printf("✓ Skipped catalog seed (%d services already present)", serviceCount)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Super Admin Created Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("ID:    %s\n", superAdmin.ID)
	fmt.Printf("Email: %s\n", superAdmin.Email)
	fmt.Printf("Name:  %s\n", superAdmin.Name)
	fmt.Printf("Role:  %s\n", superAdmin.Role)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/admin/login with email and password")
	fmt.Println("3. Use the returned token for authenticated requests")
	fmt.Println()
}

// getAdminCredentials prompts user for admin details
func getAdminCredentials() (email, password, name string) {
	fmt.Println("Enter Super Admin Details:")
	fmt.Println()

	// Email
	for {
		fmt.Print("Email: ")
		fmt.Scanln(&email)
		if email != "" {
			break
		}
		fmt.Println("❌ Email cannot be empty")
	}

	// Name
	for {
		fmt.Print("Name: ")
		fmt.Scanln(&name)
		if name != "" {
			break
		}
		fmt.Println("❌ Name cannot be empty")
	}

	// Password
	for {
		fmt.Print("Password (min 8 characters): ")
		fmt.Scanln(&password)

		authService := services.GetAdminAuthService()
		if !authService.ValidatePassword(password) {
			fmt.Println("❌ Password must be at least 8 characters")
			continue
		}
		break
	}

	// Confirm password
	for {
		fmt.Print("Confirm Password: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm == password {
			break
		}
		fmt.Println("❌ Passwords do not match")
	}

	fmt.Println()
	return email, password, name
}

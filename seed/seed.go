// Package seed loads the demo accounts and a small demo menu.
package seed

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"restaurant-pos/access"
	"restaurant-pos/models"
)

// DemoPassword is shared by every demo account
const DemoPassword = "admin123"

// DemoAccount describes one of the accounts offered on the login page
type DemoAccount struct {
	Role           access.Role `json:"role"`
	Username       string      `json:"username"`
	FullName       string      `json:"full_name"`
	DescriptionKey string      `json:"description_key"`
	Icon           string      `json:"icon"`
}

var demoAccounts = []DemoAccount{
	{Role: access.RoleAdmin, Username: "admin", FullName: "Alice Admin", DescriptionKey: "demo.admin", Icon: "layout-dashboard"},
	{Role: access.RoleManager, Username: "manager1", FullName: "Marc Manager", DescriptionKey: "demo.manager", Icon: "users"},
	{Role: access.RoleServer, Username: "server1", FullName: "Sophie Server", DescriptionKey: "demo.server", Icon: "utensils-crossed"},
	{Role: access.RoleCounter, Username: "counter1", FullName: "Claire Counter", DescriptionKey: "demo.counter", Icon: "credit-card"},
	{Role: access.RoleKitchen, Username: "kitchen1", FullName: "Karim Kitchen", DescriptionKey: "demo.kitchen", Icon: "chef-hat"},
}

// DemoAccounts returns the demo accounts in login-page order
func DemoAccounts() []DemoAccount {
	out := make([]DemoAccount, len(demoAccounts))
	copy(out, demoAccounts)
	return out
}

// FindDemoAccount looks a demo account up by username
func FindDemoAccount(username string) (DemoAccount, bool) {
	for _, a := range demoAccounts {
		if a.Username == username {
			return a, true
		}
	}
	return DemoAccount{}, false
}

var demoProducts = []models.Product{
	{Name: "Burger Classique", Category: "plats", Price: 12.5, IsAvailable: true},
	{Name: "Salade César", Category: "entrées", Price: 9, IsAvailable: true},
	{Name: "Frites Maison", Category: "accompagnements", Price: 4.5, IsAvailable: true},
	{Name: "Tiramisu", Category: "desserts", Price: 6.5, IsAvailable: true},
	{Name: "Limonade", Category: "boissons", Price: 3.5, IsAvailable: true},
}

const demoTableCount = 12

// Run inserts whatever demo data is missing. Running it twice is harmless.
func Run(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		created, err := seedUsers(tx)
		if err != nil {
			return err
		}
		if created > 0 {
			log.Info("seeded demo accounts", zap.Int("count", created))
		}
		if err := seedCatalog(tx); err != nil {
			return err
		}
		return nil
	})
}

func seedUsers(tx *gorm.DB) (int, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash demo password: %w", err)
	}
	created := 0
	for _, a := range demoAccounts {
		var existing models.User
		err := tx.Where("username = ?", a.Username).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, fmt.Errorf("look up %s: %w", a.Username, err)
		}
		user := models.User{
			Username:     a.Username,
			FullName:     a.FullName,
			PasswordHash: string(hash),
			Role:         a.Role,
			Active:       true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return created, fmt.Errorf("create %s: %w", a.Username, err)
		}
		created++
	}
	return created, nil
}

func seedCatalog(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count == 0 {
		products := make([]models.Product, len(demoProducts))
		copy(products, demoProducts)
		if err := tx.Create(&products).Error; err != nil {
			return fmt.Errorf("create demo products: %w", err)
		}
	}

	if err := tx.Model(&models.DiningTable{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count tables: %w", err)
	}
	if count == 0 {
		tables := make([]models.DiningTable, 0, demoTableCount)
		for i := 1; i <= demoTableCount; i++ {
			tables = append(tables, models.DiningTable{Number: fmt.Sprintf("T%d", i), Seats: 4})
		}
		if err := tx.Create(&tables).Error; err != nil {
			return fmt.Errorf("create demo tables: %w", err)
		}
	}
	return nil
}

package database

import (
	"fmt"

	"github.com/yeremiapane/table-order/models"
	"github.com/yeremiapane/table-order/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var defaultCategories = []models.Category{
	{ID: "food", Name: "Main Dishes", Icon: models.IconUtensils},
	{ID: "drinks", Name: "Drinks", Icon: models.IconCoffee},
	{ID: "desserts", Name: "Desserts", Icon: models.IconIceCream},
}

var defaultMenuItems = []models.MenuItem{
	{
		ID:          "1",
		Name:        "Classic Burger",
		Description: "Juicy beef patty with fresh vegetables",
		Price:       12.99,
		Image:       "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?auto=format&fit=crop&w=800&h=600",
		CategoryID:  "food",
		Available:   true,
	},
	{
		ID:          "2",
		Name:        "Caesar Salad",
		Description: "Fresh romaine lettuce with caesar dressing",
		Price:       8.99,
		Image:       "https://images.unsplash.com/photo-1546793665-c74683f339c1?auto=format&fit=crop&w=800&h=600",
		CategoryID:  "food",
		Available:   true,
	},
	{
		ID:          "3",
		Name:        "Cappuccino",
		Description: "Rich espresso with steamed milk foam",
		Price:       4.99,
		Image:       "https://images.unsplash.com/photo-1534778101976-62847782c213?auto=format&fit=crop&w=800&h=600",
		CategoryID:  "drinks",
		Available:   true,
	},
	{
		ID:          "4",
		Name:        "Chocolate Cake",
		Description: "Decadent chocolate layer cake",
		Price:       6.99,
		Image:       "https://images.unsplash.com/photo-1578985545062-69928b1d9587?auto=format&fit=crop&w=800&h=600",
		CategoryID:  "desserts",
		Available:   true,
	},
}

var defaultTables = []models.Table{
	{ID: "1", Number: "1", Capacity: 4, Status: models.TableAvailable},
	{ID: "2", Number: "2", Capacity: 6, Status: models.TableAvailable},
	{ID: "3", Number: "3", Capacity: 2, Status: models.TableAvailable},
	{ID: "4", Number: "4", Capacity: 8, Status: models.TableAvailable},
}

// SeedBootstrapAdmin creates the protected admin if it does not exist yet.
func SeedBootstrapAdmin(db *gorm.DB, username, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash bootstrap password: %w", err)
	}

	admin := models.Admin{
		ID:       models.BootstrapAdminID,
		Username: username,
		Password: string(hashed),
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&admin).Error
}

// SeedDefaults loads the starter menu and tables into an empty database.
func SeedDefaults(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Table{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		categories := append([]models.Category(nil), defaultCategories...)
		if err := tx.Create(&categories).Error; err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
		items := append([]models.MenuItem(nil), defaultMenuItems...)
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("seed menu items: %w", err)
		}
		tables := append([]models.Table(nil), defaultTables...)
		if err := tx.Create(&tables).Error; err != nil {
			return fmt.Errorf("seed tables: %w", err)
		}
		utils.InfoLogger.Printf("Seeded %d categories, %d menu items, %d tables", len(categories), len(items), len(tables))
		return nil
	})
}

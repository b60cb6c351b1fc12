package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/yeremiapane/table-order/kds"
	"github.com/yeremiapane/table-order/models"
	"github.com/yeremiapane/table-order/utils"
	"gorm.io/gorm"
)

type NewMenuItem struct {
	Name        string
	Description string
	Price       float64
	Image       string
	CategoryID  string
	Available   bool
}

// MenuItemUpdate carries only the fields to change.
type MenuItemUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Image       *string
	CategoryID  *string
	Available   *bool
}

type CategoryUpdate struct {
	Name *string
	Icon *models.CategoryIcon
}

// CatalogService owns menu items and categories.
type CatalogService struct {
	store  *Store
	events Publisher
}

func NewCatalogService(store *Store, events Publisher) *CatalogService {
	return &CatalogService{store: store, events: publisherOrNop(events)}
}

func (cs *CatalogService) ListItems(ctx context.Context, categoryID string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	q := cs.store.Read(ctx).Order("created_at asc, id asc")
	if categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (cs *CatalogService) GetItem(ctx context.Context, id string) (*models.MenuItem, error) {
	return findMenuItem(cs.store.Read(ctx), id)
}

func (cs *CatalogService) AddItem(ctx context.Context, in NewMenuItem) (*models.MenuItem, error) {
	item := models.MenuItem{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		CategoryID:  strings.TrimSpace(in.CategoryID),
		Available:   in.Available,
	}
	if err := validateMenuItem(item); err != nil {
		return nil, err
	}

	err := cs.store.Write(ctx, func(tx *gorm.DB) error {
		if _, err := findCategory(tx, item.CategoryID); err != nil {
			return err
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		return nil, err
	}

	cs.events.Publish(kds.EventMenuUpdate, item)
	return &item, nil
}

func (cs *CatalogService) UpdateItem(ctx context.Context, id string, upd MenuItemUpdate) (*models.MenuItem, error) {
	var item *models.MenuItem
	err := cs.store.Write(ctx, func(tx *gorm.DB) error {
		existing, err := findMenuItem(tx, id)
		if err != nil {
			return err
		}

		if upd.Name != nil {
			existing.Name = strings.TrimSpace(*upd.Name)
		}
		if upd.Description != nil {
			existing.Description = *upd.Description
		}
		if upd.Price != nil {
			existing.Price = *upd.Price
		}
		if upd.Image != nil {
			existing.Image = *upd.Image
		}
		if upd.Available != nil {
			existing.Available = *upd.Available
		}
		if upd.CategoryID != nil && strings.TrimSpace(*upd.CategoryID) != existing.CategoryID {
			existing.CategoryID = strings.TrimSpace(*upd.CategoryID)
			if _, err := findCategory(tx, existing.CategoryID); err != nil {
				return err
			}
		}
		if err := validateMenuItem(*existing); err != nil {
			return err
		}

		item = existing
		return tx.Save(existing).Error
	})
	if err != nil {
		return nil, err
	}

	cs.events.Publish(kds.EventMenuUpdate, item)
	return item, nil
}

func (cs *CatalogService) DeleteItem(ctx context.Context, id string) error {
	err := cs.store.Write(ctx, func(tx *gorm.DB) error {
		res := tx.Delete(&models.MenuItem{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrMenuItemNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	cs.events.Publish(kds.EventMenuUpdate, map[string]string{"deleted_item_id": id})
	return nil
}

func (cs *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := cs.store.Read(ctx).Order("created_at asc, id asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (cs *CatalogService) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	return findCategory(cs.store.Read(ctx), id)
}

func (cs *CatalogService) AddCategory(ctx context.Context, name string, icon models.CategoryIcon) (*models.Category, error) {
	category := models.Category{Name: strings.TrimSpace(name), Icon: icon}
	if err := validateCategory(category); err != nil {
		return nil, err
	}

	if err := cs.store.Write(ctx, func(tx *gorm.DB) error {
		return tx.Create(&category).Error
	}); err != nil {
		return nil, err
	}

	cs.events.Publish(kds.EventMenuUpdate, category)
	return &category, nil
}

func (cs *CatalogService) UpdateCategory(ctx context.Context, id string, upd CategoryUpdate) (*models.Category, error) {
	var category *models.Category
	err := cs.store.Write(ctx, func(tx *gorm.DB) error {
		existing, err := findCategory(tx, id)
		if err != nil {
			return err
		}
		if upd.Name != nil {
			existing.Name = strings.TrimSpace(*upd.Name)
		}
		if upd.Icon != nil {
			existing.Icon = *upd.Icon
		}
		if err := validateCategory(*existing); err != nil {
			return err
		}
		category = existing
		return tx.Save(existing).Error
	})
	if err != nil {
		return nil, err
	}

	cs.events.Publish(kds.EventMenuUpdate, category)
	return category, nil
}

// DeleteCategory removes the category only. Items pointing at it keep the
// dangling id and are returned as orphans.
func (cs *CatalogService) DeleteCategory(ctx context.Context, id string) (orphaned int64, err error) {
	err = cs.store.Write(ctx, func(tx *gorm.DB) error {
		res := tx.Delete(&models.Category{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrCategoryNotFound
		}
		return tx.Model(&models.MenuItem{}).Where("category_id = ?", id).Count(&orphaned).Error
	})
	if err != nil {
		return 0, err
	}

	if orphaned > 0 {
		utils.InfoLogger.Printf("Category %s deleted, %d menu items keep a dangling reference", id, orphaned)
	}
	cs.events.Publish(kds.EventMenuUpdate, map[string]string{"deleted_category_id": id})
	return orphaned, nil
}

func validateMenuItem(item models.MenuItem) error {
	if item.Name == "" {
		return ValidationError{Field: "name", Message: "item name is required"}
	}
	if math.IsNaN(item.Price) || math.IsInf(item.Price, 0) || item.Price < 0 {
		return ValidationError{Field: "price", Message: "price must be a non-negative amount"}
	}
	if item.CategoryID == "" {
		return ValidationError{Field: "category", Message: "category is required"}
	}
	return nil
}

func validateCategory(category models.Category) error {
	if category.Name == "" {
		return ValidationError{Field: "name", Message: "category name is required"}
	}
	if _, err := models.ParseCategoryIcon(string(category.Icon)); err != nil {
		return ValidationError{Field: "icon", Message: err.Error()}
	}
	return nil
}

func findMenuItem(db *gorm.DB, id string) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("find menu item %s: %w", id, err)
	}
	return &item, nil
}

func findCategory(db *gorm.DB, id string) (*models.Category, error) {
	var category models.Category
	if err := db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category %s: %w", id, err)
	}
	return &category, nil
}

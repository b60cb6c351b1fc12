package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yeremiapane/table-order/models"
	"github.com/yeremiapane/table-order/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 6

// AuthService checks admin credentials and manages the admin roster.
type AuthService struct {
	store  *Store
	tokens *utils.TokenManager
}

func NewAuthService(store *Store, tokens *utils.TokenManager) *AuthService {
	return &AuthService{store: store, tokens: tokens}
}

// Authenticate reports whether the username/password pair matches an admin.
func (as *AuthService) Authenticate(ctx context.Context, username, password string) bool {
	_, err := as.check(ctx, username, password)
	return err == nil
}

// Login checks the credentials and issues a signed token.
func (as *AuthService) Login(ctx context.Context, username, password string) (string, *models.Admin, error) {
	admin, err := as.check(ctx, username, password)
	if err != nil {
		return "", nil, err
	}
	token, err := as.tokens.Generate(admin.ID, admin.Username)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	utils.InfoLogger.Printf("Login successful for admin: %s", admin.Username)
	return token, admin, nil
}

func (as *AuthService) Logout(token string) {
	as.tokens.Revoke(token)
}

func (as *AuthService) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	var admins []models.Admin
	if err := as.store.Read(ctx).Order("created_at asc, id asc").Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

func (as *AuthService) GetAdmin(ctx context.Context, id string) (*models.Admin, error) {
	var admin models.Admin
	if err := as.store.Read(ctx).First(&admin, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (as *AuthService) AddAdmin(ctx context.Context, username, password string) (*models.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ValidationError{Field: "username", Message: "username is required"}
	}
	if len(password) < minPasswordLength {
		return nil, ValidationError{Field: "password", Message: fmt.Sprintf("password must be at least %d characters", minPasswordLength)}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin := models.Admin{Username: username, Password: string(hashed)}

	err = as.store.Write(ctx, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Admin{}).Where("username = ?", username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateUsername
		}
		return tx.Create(&admin).Error
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("New admin created: %s", admin.Username)
	return &admin, nil
}

// RemoveAdmin deletes an admin. The bootstrap admin is refused.
func (as *AuthService) RemoveAdmin(ctx context.Context, id string) error {
	if id == models.BootstrapAdminID {
		return ErrProtectedAdmin
	}
	return as.store.Write(ctx, func(tx *gorm.DB) error {
		res := tx.Delete(&models.Admin{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAdminNotFound
		}
		return nil
	})
}

func (as *AuthService) check(ctx context.Context, username, password string) (*models.Admin, error) {
	var admin models.Admin
	if err := as.store.Read(ctx).Where("username = ?", strings.TrimSpace(username)).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &admin, nil
}

package db

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-erp/internal/access"
	"github.com/BruksfildServices01/salon-erp/internal/models"
)

// EnsureAdmin creates the first admin account when the users table is empty.
// It does nothing when email or password is blank.
func EnsureAdmin(db *gorm.DB, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hashed),
		Role:         access.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	zap.S().Infow("bootstrap admin created", "email", email)
	return nil
}

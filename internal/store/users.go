package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventhub-dev/eventhub/db"
	"github.com/eventhub-dev/eventhub/internal/apperr"
	"github.com/eventhub-dev/eventhub/internal/models"
	"gorm.io/gorm"
)

// CreateUser inserts a new account. Usernames are globally unique and
// compared case-sensitively.
func CreateUser(ctx context.Context, user *models.User) error {
	conn := db.DB.WithContext(ctx)

	var existing models.User

	err := conn.Where("username = ?", user.Username).First(&existing).Error

	if err == nil {
		return fmt.Errorf("%w: username already exists", apperr.ErrInvalid)
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return translate(err)
	}

	return translate(conn.Create(user).Error)
}

func GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User

	if err := db.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}

	return &user, nil
}

func GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User

	if err := db.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}

	return &user, nil
}

func ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	if err := db.DB.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, translate(err)
	}

	return users, nil
}

// SetUserApproval flips the approval flag on an account.
func SetUserApproval(ctx context.Context, id uint, approved bool) (*models.User, error) {
	user, err := GetUser(ctx, id)

	if err != nil {
		return nil, err
	}

	if err := db.DB.WithContext(ctx).Model(user).Update("is_approved", approved).Error; err != nil {
		return nil, translate(err)
	}

	return user, nil
}

// UpdateUserRole changes an account's role. A super-admin account can
// never be reassigned.
func UpdateUserRole(ctx context.Context, id uint, role models.Role) (*models.User, error) {
	user, err := GetUser(ctx, id)

	if err != nil {
		return nil, err
	}

	if user.Role == models.RoleSuperAdmin {
		return nil, fmt.Errorf("%w: cannot modify super admin", apperr.ErrForbidden)
	}

	if err := db.DB.WithContext(ctx).Model(user).Update("role", role).Error; err != nil {
		return nil, translate(err)
	}

	return user, nil
}

// DeleteUser removes an account together with everything it contributed:
// its reactions, its uploads (and reactions on them), and the events it
// created (media and reactions included). A super-admin account can never
// be deleted.
func DeleteUser(ctx context.Context, id uint) error {
	user, err := GetUser(ctx, id)

	if err != nil {
		return err
	}

	if user.Role == models.RoleSuperAdmin {
		return fmt.Errorf("%w: cannot delete super admin", apperr.ErrForbidden)
	}

	err = db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("user_id = ?", id).Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().
			Where("media_id IN (SELECT id FROM media WHERE uploaded_by_id = ?)", id).
			Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().
			Where("media_id IN (SELECT id FROM media WHERE event_id IN (SELECT id FROM events WHERE created_by_id = ?))", id).
			Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().
			Where("uploaded_by_id = ? OR event_id IN (SELECT id FROM events WHERE created_by_id = ?)", id, id).
			Delete(&models.Media{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("created_by_id = ?", id).Delete(&models.Event{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.User{}, id).Error
	})

	return translate(err)
}

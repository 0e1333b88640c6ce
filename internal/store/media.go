package store

import (
	"context"
	"fmt"

	"github.com/eventhub-dev/eventhub/db"
	"github.com/eventhub-dev/eventhub/internal/apperr"
	"github.com/eventhub-dev/eventhub/internal/models"
	"gorm.io/gorm"
)

// CreateMedia records uploaded file metadata. The parent event must exist.
func CreateMedia(ctx context.Context, media *models.Media) error {
	conn := db.DB.WithContext(ctx)

	var count int64

	if err := conn.Model(&models.Event{}).Where("id = ?", media.EventID).Count(&count).Error; err != nil {
		return translate(err)
	}

	if count == 0 {
		return fmt.Errorf("%w: event does not exist", apperr.ErrInvalid)
	}

	return translate(conn.Create(media).Error)
}

func GetMedia(ctx context.Context, id uint) (*models.Media, error) {
	var media models.Media

	if err := db.DB.WithContext(ctx).First(&media, id).Error; err != nil {
		return nil, translate(err)
	}

	return &media, nil
}

// DeleteMedia removes a media record and its reactions in one transaction.
// The stored blob is the caller's concern.
func DeleteMedia(ctx context.Context, id uint) error {
	var media models.Media

	if err := db.DB.WithContext(ctx).First(&media, id).Error; err != nil {
		return translate(err)
	}

	err := db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("media_id = ?", id).Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.Media{}, id).Error
	})

	return translate(err)
}

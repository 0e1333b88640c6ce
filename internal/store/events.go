package store

import (
	"context"
	"fmt"

	"github.com/eventhub-dev/eventhub/db"
	"github.com/eventhub-dev/eventhub/internal/apperr"
	"github.com/eventhub-dev/eventhub/internal/models"
	"gorm.io/gorm"
)

// ListEvents returns the full catalog with each event's creator, newest
// event date first.
func ListEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event

	err := db.DB.WithContext(ctx).
		Preload("Creator").
		Order("date DESC").
		Find(&events).Error

	if err != nil {
		return nil, translate(err)
	}

	return events, nil
}

// GetEvent returns one event with its media and each media item's
// reactions. An event without media yields an empty media slice.
func GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event

	err := db.DB.WithContext(ctx).
		Preload("Media").
		Preload("Media.Reactions").
		First(&event, id).Error

	if err != nil {
		return nil, translate(err)
	}

	if event.Media == nil {
		event.Media = []models.Media{}
	}
	for i := range event.Media {
		if event.Media[i].Reactions == nil {
			event.Media[i].Reactions = []models.Reaction{}
		}
	}

	return &event, nil
}

// EventExists reports whether an event id is present, without loading the
// record or its associations.
func EventExists(ctx context.Context, id uint) (bool, error) {
	var count int64

	if err := db.DB.WithContext(ctx).Model(&models.Event{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, translate(err)
	}

	return count > 0, nil
}

// CreateEvent inserts an event. The creator must be an existing account.
func CreateEvent(ctx context.Context, event *models.Event) error {
	conn := db.DB.WithContext(ctx)

	var count int64

	if err := conn.Model(&models.User{}).Where("id = ?", event.CreatedByID).Count(&count).Error; err != nil {
		return translate(err)
	}

	if count == 0 {
		return fmt.Errorf("%w: creator does not exist", apperr.ErrInvalid)
	}

	return translate(conn.Create(event).Error)
}

// UpdateEvent applies a partial update. The creator is immutable and is
// never part of updates.
func UpdateEvent(ctx context.Context, id uint, updates map[string]interface{}) (*models.Event, error) {
	var event models.Event

	conn := db.DB.WithContext(ctx)

	if err := conn.First(&event, id).Error; err != nil {
		return nil, translate(err)
	}

	if len(updates) > 0 {
		if err := conn.Model(&event).Updates(updates).Error; err != nil {
			return nil, translate(err)
		}
	}

	return &event, nil
}

// DeleteEvent removes an event and cascades to its media and their
// reactions in one transaction.
func DeleteEvent(ctx context.Context, id uint) error {
	var event models.Event

	if err := db.DB.WithContext(ctx).First(&event, id).Error; err != nil {
		return translate(err)
	}

	err := db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("media_id IN (SELECT id FROM media WHERE event_id = ?)", id).
			Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("event_id = ?", id).Delete(&models.Media{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.Event{}, id).Error
	})

	return translate(err)
}

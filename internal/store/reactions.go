package store

import (
	"context"
	"fmt"

	"github.com/eventhub-dev/eventhub/db"
	"github.com/eventhub-dev/eventhub/internal/apperr"
	"github.com/eventhub-dev/eventhub/internal/models"
	"gorm.io/gorm/clause"
)

// ToggleReaction flips the (media, user) reaction state as one atomic
// conditional write. It attempts an insert that yields on conflict with
// the unique (media_id, user_id) index; zero rows affected means the pair
// was already reacted, so the existing row is deleted instead — whatever
// tag it was stored with.
//
// Returns the created reaction and true, or nil and false when an existing
// reaction was removed. Two racing toggles can never leave more than one
// live row: at most one insert wins the unique index, and the loser's
// delete-by-pair removes at most that row.
func ToggleReaction(ctx context.Context, mediaID, userID uint, reactionType string) (*models.Reaction, bool, error) {
	conn := db.DB.WithContext(ctx)

	var count int64

	if err := conn.Model(&models.Media{}).Where("id = ?", mediaID).Count(&count).Error; err != nil {
		return nil, false, translate(err)
	}

	if count == 0 {
		return nil, false, fmt.Errorf("%w: media does not exist", apperr.ErrInvalid)
	}

	reaction := models.Reaction{
		MediaID:      mediaID,
		UserID:       userID,
		ReactionType: reactionType,
	}

	res := conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "media_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(&reaction)

	if res.Error != nil {
		return nil, false, translate(res.Error)
	}

	if res.RowsAffected > 0 {
		return &reaction, true, nil
	}

	err := conn.Unscoped().
		Where("media_id = ? AND user_id = ?", mediaID, userID).
		Delete(&models.Reaction{}).Error

	if err != nil {
		return nil, false, translate(err)
	}

	return nil, false, nil
}

// ReactionsForMedia lists the live reactions on one media item.
func ReactionsForMedia(ctx context.Context, mediaID uint) ([]models.Reaction, error) {
	var reactions []models.Reaction

	if err := db.DB.WithContext(ctx).Where("media_id = ?", mediaID).Find(&reactions).Error; err != nil {
		return nil, translate(err)
	}

	return reactions, nil
}

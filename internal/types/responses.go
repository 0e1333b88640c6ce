package types

import (
	"time"

	"github.com/eventhub-dev/eventhub/internal/models"
)

// Response shapes returned by the handlers. The password digest is never
// serialized.

type UserResponse struct {
	ID         uint        `json:"id"`
	Username   string      `json:"username"`
	Role       models.Role `json:"role"`
	IsApproved bool        `json:"isApproved"`
	CreatedAt  time.Time   `json:"createdAt"`
}

type ReactionResponse struct {
	ID           uint      `json:"id"`
	MediaID      uint      `json:"mediaId"`
	UserID       uint      `json:"userId"`
	ReactionType string    `json:"reactionType"`
	CreatedAt    time.Time `json:"createdAt"`
}

type MediaResponse struct {
	ID           uint               `json:"id"`
	EventID      uint               `json:"eventId"`
	UploadedByID uint               `json:"uploadedById"`
	URL          string             `json:"url"`
	Type         string             `json:"type"`
	Filename     string             `json:"filename"`
	CreatedAt    time.Time          `json:"createdAt"`
	Reactions    []ReactionResponse `json:"reactions,omitempty"`
}

type EventResponse struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Location    string          `json:"location"`
	CreatedByID uint            `json:"createdById"`
	CreatedAt   time.Time       `json:"createdAt"`
	Creator     *UserResponse   `json:"creator,omitempty"`
	Media       []MediaResponse `json:"media"`
}

func NewUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Username:   user.Username,
		Role:       user.Role,
		IsApproved: user.IsApproved,
		CreatedAt:  user.CreatedAt,
	}
}

func NewReactionResponse(reaction models.Reaction) ReactionResponse {
	return ReactionResponse{
		ID:           reaction.ID,
		MediaID:      reaction.MediaID,
		UserID:       reaction.UserID,
		ReactionType: reaction.ReactionType,
		CreatedAt:    reaction.CreatedAt,
	}
}

func NewMediaResponse(media models.Media) MediaResponse {
	reactions := make([]ReactionResponse, 0, len(media.Reactions))
	for _, reaction := range media.Reactions {
		reactions = append(reactions, NewReactionResponse(reaction))
	}

	return MediaResponse{
		ID:           media.ID,
		EventID:      media.EventID,
		UploadedByID: media.UploadedByID,
		URL:          media.URL,
		Type:         media.Type,
		Filename:     media.Filename,
		CreatedAt:    media.CreatedAt,
		Reactions:    reactions,
	}
}

func NewEventResponse(event models.Event) EventResponse {
	resp := EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date,
		Location:    event.Location,
		CreatedByID: event.CreatedByID,
		CreatedAt:   event.CreatedAt,
		Media:       make([]MediaResponse, 0, len(event.Media)),
	}

	if event.Creator.ID != 0 {
		creator := NewUserResponse(event.Creator)
		resp.Creator = &creator
	}

	for _, media := range event.Media {
		resp.Media = append(resp.Media, NewMediaResponse(media))
	}

	return resp
}

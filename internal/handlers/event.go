package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/eventhub-dev/eventhub/internal/models"
	"github.com/eventhub-dev/eventhub/internal/store"
	"github.com/eventhub-dev/eventhub/internal/types"
	"github.com/eventhub-dev/eventhub/internal/utils"
)

type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Location    string    `json:"location" binding:"required"`
}

// UpdateEventRequest carries a partial update; absent fields stay
// untouched. The creator is immutable.
type UpdateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Location    *string    `json:"location"`
}

func ListEvents(ctx *gin.Context) {
	events, err := store.ListEvents(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.EventResponse, 0, len(events))

	for _, event := range events {
		response = append(response, types.NewEventResponse(event))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetEvent(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")

	if !ok {
		return
	}

	event, err := store.GetEvent(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewEventResponse(*event))
}

func CreateEvent(ctx *gin.Context) {
	var req CreateEventRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Title, description, date and location are required"})
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Title must not be empty", "field": "title"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	event := models.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		CreatedByID: userID,
	}

	if err := store.CreateEvent(ctx.Request.Context(), &event); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.NewEventResponse(event))
}

func UpdateEvent(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")

	if !ok {
		return
	}

	var req UpdateEventRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	updates := make(map[string]interface{})

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Title must not be empty", "field": "title"})
			return
		}
		updates["title"] = *req.Title
	}

	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if req.Date != nil {
		updates["date"] = *req.Date
	}

	if req.Location != nil {
		updates["location"] = *req.Location
	}

	event, err := store.UpdateEvent(ctx.Request.Context(), id, updates)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewEventResponse(*event))
}

func DeleteEvent(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")

	if !ok {
		return
	}

	if err := store.DeleteEvent(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

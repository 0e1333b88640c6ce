package handlers

import (
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/eventhub-dev/eventhub/internal/blob"
	"github.com/eventhub-dev/eventhub/internal/live"
	"github.com/eventhub-dev/eventhub/internal/metrics"
	"github.com/eventhub-dev/eventhub/internal/models"
	"github.com/eventhub-dev/eventhub/internal/store"
	"github.com/eventhub-dev/eventhub/internal/types"
	"github.com/eventhub-dev/eventhub/internal/utils"
)

// Wired up at startup.
var (
	BlobStore     blob.Store
	Feed          *live.Hub
	MaxUploadSize int64 = 25 << 20
	uploadDir     string
)

// ConfigureUploads points the upload handlers at the blob store.
func ConfigureUploads(store *blob.LocalStore, maxSize int64) {
	BlobStore = store
	uploadDir = store.Dir()
	if maxSize > 0 {
		MaxUploadSize = maxSize
	}
}

type ReactRequest struct {
	ReactionType string `json:"reactionType" binding:"required"`
}

// UploadMedia stores the multipart "file" part in the blob store and
// records its metadata against the event. The blob is written first; if
// the metadata insert fails the blob is removed so nothing is orphaned.
func UploadMedia(ctx *gin.Context) {
	eventID, ok := idParam(ctx, "id")

	if !ok {
		return
	}

	exists, err := store.EventExists(ctx.Request.Context(), eventID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	if !exists {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Event does not exist", "field": "eventId"})
		return
	}

	fileHeader, err := ctx.FormFile("file")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded", "field": "file"})
		return
	}

	if fileHeader.Size > MaxUploadSize {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "File too large", "field": "file"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	file, err := fileHeader.Open()

	if err != nil {
		log.Printf("Failed to open uploaded file: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	defer file.Close()

	url, err := BlobStore.Put(ctx.Request.Context(), fileHeader.Filename, file)

	if err != nil {
		log.Printf("Blob store write failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	media := models.Media{
		EventID:      eventID,
		UploadedByID: userID,
		URL:          url,
		Type:         mediaTypeFor(fileHeader.Header.Get("Content-Type")),
		Filename:     fileHeader.Filename,
	}

	if err := store.CreateMedia(ctx.Request.Context(), &media); err != nil {
		if removeErr := BlobStore.Remove(ctx.Request.Context(), url); removeErr != nil {
			log.Printf("Failed to clean up blob after metadata failure: %v", removeErr)
		}
		respondError(ctx, err)
		return
	}

	metrics.UploadsTotal.Inc()
	broadcast(live.Event{Type: "media_created", Payload: gin.H{"eventId": eventID, "mediaId": media.ID}})

	ctx.JSON(http.StatusCreated, types.NewMediaResponse(media))
}

func DeleteMedia(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")

	if !ok {
		return
	}

	media, err := store.GetMedia(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := store.DeleteMedia(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	// Best-effort: losing a stray blob is preferable to failing the delete.
	if err := BlobStore.Remove(ctx.Request.Context(), media.URL); err != nil {
		log.Printf("Failed to remove blob for media %d: %v", id, err)
	}

	ctx.Status(http.StatusNoContent)
}

// ReactToMedia toggles the caller's reaction on a media item: 201 with the
// new reaction when one was created, 204 when the existing one was
// removed — regardless of the tag supplied on removal.
func ReactToMedia(ctx *gin.Context) {
	mediaID, ok := idParam(ctx, "id")

	if !ok {
		return
	}

	var req ReactRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "reactionType is required", "field": "reactionType"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	reaction, created, err := store.ToggleReaction(ctx.Request.Context(), mediaID, userID, req.ReactionType)

	if err != nil {
		respondError(ctx, err)
		return
	}

	metrics.ReactionsToggledTotal.Inc()

	if created {
		broadcast(live.Event{Type: "reaction_added", Payload: gin.H{"mediaId": mediaID, "userId": userID}})
		ctx.JSON(http.StatusCreated, types.NewReactionResponse(*reaction))
		return
	}

	broadcast(live.Event{Type: "reaction_removed", Payload: gin.H{"mediaId": mediaID, "userId": userID}})
	ctx.Status(http.StatusNoContent)
}

// ServeUpload returns a stored blob. Only plain file names are accepted;
// anything that looks like a path is a 404.
func ServeUpload(ctx *gin.Context) {
	name := ctx.Param("name")

	if name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	ctx.File(filepath.Join(uploadDir, name))
}

// LiveFeed upgrades to the websocket gallery feed.
func LiveFeed(ctx *gin.Context) {
	if Feed == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Live feed unavailable"})
		return
	}

	Feed.HandleConnection(ctx)
}

func broadcast(event live.Event) {
	if Feed != nil {
		Feed.Broadcast(event)
	}
}

func mediaTypeFor(contentType string) string {
	if strings.HasPrefix(contentType, "video/") {
		return models.MediaTypeVideo
	}
	return models.MediaTypeImage
}

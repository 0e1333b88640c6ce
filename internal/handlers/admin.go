package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/eventhub-dev/eventhub/internal/models"
	"github.com/eventhub-dev/eventhub/internal/store"
	"github.com/eventhub-dev/eventhub/internal/types"
)

type ApproveUserRequest struct {
	IsApproved *bool `json:"isApproved" binding:"required"`
}

// UpdateRoleRequest only admits the roles this path may grant. Admin and
// super-admin can never be handed out here.
type UpdateRoleRequest struct {
	Role models.Role `json:"role" binding:"required,oneof=user co-admin"`
}

func ListUsers(ctx *gin.Context) {
	users, err := store.ListUsers(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.UserResponse, 0, len(users))

	for _, user := range users {
		response = append(response, types.NewUserResponse(user))
	}

	ctx.JSON(http.StatusOK, response)
}

func ApproveUser(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")

	if !ok {
		return
	}

	var req ApproveUserRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "field": "isApproved"})
		return
	}

	user, err := store.SetUserApproval(ctx.Request.Context(), id, *req.IsApproved)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewUserResponse(*user))
}

func UpdateUserRole(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")

	if !ok {
		return
	}

	var req UpdateRoleRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Role must be one of: user, co-admin", "field": "role"})
		return
	}

	user, err := store.UpdateUserRole(ctx.Request.Context(), id, req.Role)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewUserResponse(*user))
}

func DeleteUser(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")

	if !ok {
		return
	}

	if err := store.DeleteUser(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// idParam parses a positive integer path parameter or writes a 400.
func idParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)

	id, err := strconv.ParseUint(raw, 10, 32)

	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id", "field": name})
		return 0, false
	}

	return uint(id), true
}

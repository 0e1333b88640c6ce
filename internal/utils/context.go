package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/eventhub-dev/eventhub/internal/middleware"
	"github.com/eventhub-dev/eventhub/internal/types"
)

func GetCurrentUser(ctx *gin.Context) (middleware.Identity, error) {
	value, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return middleware.Identity{}, fmt.Errorf("user not authenticated")
	}

	identity, ok := value.(middleware.Identity)

	if !ok {
		return middleware.Identity{}, fmt.Errorf("invalid identity type in context")
	}

	return identity, nil
}

func GetCurrentUserID(ctx *gin.Context) (uint, error) {
	identity, err := GetCurrentUser(ctx)

	if err != nil {
		return 0, err
	}

	return identity.ID, nil
}

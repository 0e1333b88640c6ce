package router

import (
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/eventhub-dev/eventhub/internal/handlers"
	"github.com/eventhub-dev/eventhub/internal/metrics"
	"github.com/eventhub-dev/eventhub/internal/middleware"
	"github.com/eventhub-dev/eventhub/internal/types"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(requestCounter())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		// Public
		api.POST("/register", handlers.Register)
		api.POST("/login", handlers.Login)

		// Authorized: authenticated AND effectively approved
		authorized := api.Group("", middleware.AuthMiddleware(), middleware.RequireApproved())
		{
			authorized.POST("/logout", handlers.Logout)
			authorized.GET("/user", handlers.Me)

			authorized.GET("/events", handlers.ListEvents)
			authorized.GET("/events/:id", handlers.GetEvent)
			authorized.POST("/events/:id/media", handlers.UploadMedia)
			authorized.POST("/media/:id/react", handlers.ReactToMedia)

			authorized.GET("/ws", handlers.LiveFeed)
		}

		// AdminGate: Authorized + admin-tier role
		admin := api.Group("", middleware.AuthMiddleware(), middleware.RequireApproved(), middleware.RequireAdmin())
		{
			admin.GET("/admin/users", handlers.ListUsers)
			admin.PATCH("/admin/users/:id/approve", handlers.ApproveUser)
			admin.DELETE("/admin/users/:id", handlers.DeleteUser)

			admin.POST("/events", handlers.CreateEvent)
			admin.PATCH("/events/:id", handlers.UpdateEvent)
			admin.DELETE("/events/:id", handlers.DeleteEvent)

			admin.DELETE("/media/:id", handlers.DeleteMedia)
		}

		// SuperAdminGate
		superAdmin := api.Group("", middleware.AuthMiddleware(), middleware.RequireApproved(), middleware.RequireSuperAdmin())
		{
			superAdmin.PATCH("/admin/users/:id/role", handlers.UpdateUserRole)
		}
	}

	// Uploaded blobs sit behind the Authorized gate like everything else.
	r.GET("/uploads/:name", middleware.AuthMiddleware(), middleware.RequireApproved(), handlers.ServeUpload)

	return r
}

func requestCounter() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()
		metrics.RequestsTotal.WithLabelValues(ctx.Request.Method, strconv.Itoa(ctx.Writer.Status())).Inc()
	}
}

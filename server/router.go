package server

import (
	"net/http"
	"time"

	"vespa-academy/domain/repository"
	httpHandler "vespa-academy/interfaces/http"
	"vespa-academy/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	catalogHandler httpHandler.ICatalogHandler,
	enquiryHandler httpHandler.IEnquiryHandler,
	userHandler httpHandler.IUserHandler,
	adminVideoHandler httpHandler.IAdminVideoHandler,
	adminCatalogHandler httpHandler.IAdminCatalogHandler,
	userRepository repository.IUser,
	allowOrigins []string,
	secretKey string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:5000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public surface
	router.GET("/", catalogHandler.Home)
	router.GET("/search", catalogHandler.Search)
	router.POST("/submit", enquiryHandler.Submit)
	router.POST("/like_video/:id", catalogHandler.LikeVideo)
	router.POST("/admin/login", userHandler.Login)

	router.POST("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Admin surface
	admin := router.Group("api/admin")
	admin.Use(middleware.Auth(userRepository, secretKey))
	{
		admin.POST("/videos", adminVideoHandler.AddVideo)
		admin.PUT("/videos/:id", adminVideoHandler.EditVideo)
		admin.DELETE("/videos/:id", adminVideoHandler.DeleteVideo)

		admin.POST("/categories", adminCatalogHandler.CreateCategory)
		admin.PUT("/categories/:key", adminCatalogHandler.UpdateCategory)
		admin.DELETE("/categories/:key", adminCatalogHandler.DeleteCategory)

		admin.POST("/series", adminCatalogHandler.CreateSeries)
		admin.PUT("/series/:key", adminCatalogHandler.UpdateSeries)
		admin.DELETE("/series/:key", adminCatalogHandler.DeleteSeries)
		admin.POST("/series/:key/feature", adminCatalogHandler.FeatureSeries)
	}

	return router
}

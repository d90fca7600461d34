package routes

import (
	"net/http"
	"time"

	"joino/handlers"
	"joino/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterFeedRoutes registers the feed endpoints.
func RegisterFeedRoutes(r *gin.Engine, fh *handlers.FeedHandler) {
	api := r.Group("/api")
	{
		// Public: the tags bar renders before sign-in.
		api.GET("/tags", fh.GetTagsHandler)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware())
		protected.GET("/feed", fh.GetFeedHandler)
		protected.GET("/events/:id/occurrences", fh.GetOccurrencesHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Joino"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, fh *handlers.FeedHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterFeedRoutes(r, fh)
}

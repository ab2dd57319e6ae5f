package routes

import (
	"time"

	"goroute/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, h *handlers.ChatHandler) {
	r.GET("/health", h.HealthCheck)
}

// RegisterChatRoutes sets up the conversation and lookup endpoints.
func RegisterChatRoutes(r *gin.Engine, h *handlers.ChatHandler) {
	api := r.Group("/api")
	{
		api.POST("/chat/:userID/events", h.PostEvent)
		api.GET("/hotels/:city", h.GetHotels)
		api.GET("/quote", h.GetQuote)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *handlers.ChatHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterHealthRoute(r, h)
	RegisterChatRoutes(r, h)
}

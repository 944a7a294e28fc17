package v1

import (
	"github.com/gin-gonic/gin"

	"messaging-server/internal/interfaces/httpserver/handlers"
)

func registerConversationRoutes(router gin.IRoutes, handler *handlers.ConversationHandler) {
	router.POST("/conversations", handler.Create)
	router.GET("/conversations", handler.List)
	// Alias kept for clients that poll the inbox.
	router.GET("/conversations/recent", handler.List)
	router.GET("/conversations/:conversation_id", handler.Get)
}

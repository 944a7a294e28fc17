package v1

import (
	"github.com/gin-gonic/gin"

	"messaging-server/internal/interfaces/httpserver/handlers"
)

func registerMessageRoutes(router gin.IRoutes, handler *handlers.MessageHandler) {
	// Message routes nested under conversations
	router.GET("/conversations/:conversation_id/messages", handler.List)
	router.POST("/conversations/:conversation_id/messages", handler.Send)
	router.PUT("/conversations/:conversation_id/messages/:message_uuid", handler.Edit)
	router.DELETE("/conversations/:conversation_id/messages/:message_uuid", handler.Delete)
}

package v1

import (
	"github.com/gin-gonic/gin"

	"messaging-server/internal/interfaces/httpserver/handlers"
)

func registerContactRoutes(router gin.IRoutes, handler *handlers.ContactHandler) {
	router.GET("/contacts", handler.List)
	router.POST("/contacts", handler.Add)
}

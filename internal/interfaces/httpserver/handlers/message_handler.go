package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"messaging-server/internal/domain/message"
	"messaging-server/internal/infrastructure/auth"
	"messaging-server/internal/infrastructure/metrics"
	"messaging-server/internal/infrastructure/observability"
	"messaging-server/internal/interfaces/httpserver/requests"
	"messaging-server/internal/interfaces/httpserver/responses"
	"messaging-server/internal/utils/platformerrors"
)

// MessageService is the slice of the message domain the HTTP layer needs.
type MessageService interface {
	List(ctx context.Context, userID, conversationID uint, authorID *uint) ([]*message.Message, error)
	Send(ctx context.Context, userID, conversationID uint, input message.SendInput) (*message.Message, error)
	Edit(ctx context.Context, userID, conversationID uint, messageUUID string, input message.EditInput) (*message.Message, error)
	Delete(ctx context.Context, userID, conversationID uint, messageUUID string) (*message.Message, error)
}

// MessageHandler exposes HTTP entrypoints for messages within a conversation.
type MessageHandler struct {
	service MessageService
	log     zerolog.Logger
}

// NewMessageHandler constructs the handler.
func NewMessageHandler(service MessageService, log zerolog.Logger) *MessageHandler {
	return &MessageHandler{
		service: service,
		log:     log.With().Str("handler", "message").Logger(),
	}
}

// List handles GET /v1/conversations/:conversation_id/messages
func (h *MessageHandler) List(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "missing user identity", "msg-handler-identity")
		return
	}

	conversationID, ok := conversationIDParam(c)
	if !ok {
		return
	}

	var query requests.ListMessagesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid query parameters", "msg-handler-query")
		return
	}

	messages, err := h.service.List(c.Request.Context(), userID, conversationID, query.AuthorID)
	if err != nil {
		responses.HandleError(c, err, "failed to list messages")
		return
	}

	c.JSON(http.StatusOK, responses.MessageListFromDomain(messages))
}

// Send handles POST /v1/conversations/:conversation_id/messages
func (h *MessageHandler) Send(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "missing user identity", "msg-handler-identity")
		return
	}

	conversationID, ok := conversationIDParam(c)
	if !ok {
		return
	}

	var req requests.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body", "msg-handler-bind")
		return
	}

	ctx, span := observability.StartMessageSpan(c.Request.Context(), "send", "", conversationID, userID)
	defer span.End()

	msg, err := h.service.Send(ctx, userID, conversationID, message.SendInput{
		Content: *req.Content,
		Files:   requests.Filepaths(req.Files),
		Images:  requests.Filepaths(req.Images),
	})
	if err != nil {
		observability.RecordError(span, err)
		responses.HandleError(c, err, "failed to send message")
		return
	}

	metrics.MessagesSentTotal.Inc()
	metrics.AttachmentsStoredTotal.WithLabelValues("file").Add(float64(len(req.Files)))
	metrics.AttachmentsStoredTotal.WithLabelValues("image").Add(float64(len(req.Images)))
	h.log.Info().Str("message_uuid", msg.UUID).Uint("conversation_id", conversationID).Msg("message sent")
	c.JSON(http.StatusCreated, responses.MessageFromDomain(msg))
}

// Edit handles PUT /v1/conversations/:conversation_id/messages/:message_uuid
func (h *MessageHandler) Edit(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "missing user identity", "msg-handler-identity")
		return
	}

	conversationID, ok := conversationIDParam(c)
	if !ok {
		return
	}
	messageUUID := c.Param("message_uuid")

	var req requests.EditMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body", "msg-handler-bind")
		return
	}

	ctx, span := observability.StartMessageSpan(c.Request.Context(), "edit", messageUUID, conversationID, userID)
	defer span.End()

	msg, err := h.service.Edit(ctx, userID, conversationID, messageUUID, message.EditInput{
		Content: *req.Content,
		Delta:   deltaFromRequest(req),
	})
	if err != nil {
		observability.RecordError(span, err)
		responses.HandleError(c, err, "failed to edit message")
		return
	}

	metrics.MessagesEditedTotal.Inc()
	c.JSON(http.StatusOK, responses.MessageFromDomain(msg))
}

// Delete handles DELETE /v1/conversations/:conversation_id/messages/:message_uuid
func (h *MessageHandler) Delete(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "missing user identity", "msg-handler-identity")
		return
	}

	conversationID, ok := conversationIDParam(c)
	if !ok {
		return
	}
	messageUUID := c.Param("message_uuid")

	ctx, span := observability.StartMessageSpan(c.Request.Context(), "delete", messageUUID, conversationID, userID)
	defer span.End()

	msg, err := h.service.Delete(ctx, userID, conversationID, messageUUID)
	if err != nil {
		observability.RecordError(span, err)
		responses.HandleError(c, err, "failed to delete message")
		return
	}

	metrics.MessagesDeletedTotal.Inc()
	c.JSON(http.StatusOK, responses.MessageFromDomain(msg))
}

func deltaFromRequest(req requests.EditMessageRequest) message.AttachmentDelta {
	var delta message.AttachmentDelta
	if req.Files != nil {
		delta.FilesAdd = requests.Filepaths(req.Files.Add)
		delta.FileIDsDelete = req.Files.Delete
	}
	if req.Images != nil {
		delta.ImagesAdd = requests.Filepaths(req.Images.Add)
		delta.ImageIDsDelete = req.Images.Delete
	}
	return delta
}

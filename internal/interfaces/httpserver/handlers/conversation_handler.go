package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"messaging-server/internal/domain/conversation"
	"messaging-server/internal/infrastructure/auth"
	"messaging-server/internal/infrastructure/metrics"
	"messaging-server/internal/infrastructure/observability"
	"messaging-server/internal/interfaces/httpserver/requests"
	"messaging-server/internal/interfaces/httpserver/responses"
	"messaging-server/internal/utils/platformerrors"
)

// ConversationService is the slice of the conversation domain the HTTP layer
// needs.
type ConversationService interface {
	Create(ctx context.Context, userID uint, participantIDs []uint) (*conversation.Conversation, error)
	Get(ctx context.Context, userID, conversationID uint) (*conversation.Conversation, error)
	List(ctx context.Context, userID uint, descending bool) ([]*conversation.Conversation, error)
}

// ConversationHandler exposes HTTP entrypoints for conversations.
type ConversationHandler struct {
	service ConversationService
	log     zerolog.Logger
}

// NewConversationHandler constructs the handler.
func NewConversationHandler(service ConversationService, log zerolog.Logger) *ConversationHandler {
	return &ConversationHandler{
		service: service,
		log:     log.With().Str("handler", "conversation").Logger(),
	}
}

// Create handles POST /v1/conversations
func (h *ConversationHandler) Create(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "missing user identity", "conv-handler-identity")
		return
	}

	var req requests.CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body", "conv-handler-bind")
		return
	}

	ctx, span := observability.StartConversationSpan(c.Request.Context(), "create", 0, userID)
	defer span.End()

	conv, err := h.service.Create(ctx, userID, req.ParticipantIDs)
	if err != nil {
		observability.RecordError(span, err)
		responses.HandleError(c, err, "failed to create conversation")
		return
	}

	metrics.ConversationsCreatedTotal.Inc()
	h.log.Info().Uint("conversation_id", conv.ID).Uint("user_id", userID).Msg("conversation created")
	c.JSON(http.StatusCreated, responses.ConversationFromDomain(conv))
}

// List handles GET /v1/conversations and GET /v1/conversations/recent
func (h *ConversationHandler) List(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "missing user identity", "conv-handler-identity")
		return
	}

	var query requests.ListConversationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid query parameters", "conv-handler-query")
		return
	}

	conversations, err := h.service.List(c.Request.Context(), userID, query.Descending())
	if err != nil {
		responses.HandleError(c, err, "failed to list conversations")
		return
	}

	c.JSON(http.StatusOK, responses.ConversationListFromDomain(conversations))
}

// Get handles GET /v1/conversations/:conversation_id
func (h *ConversationHandler) Get(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "missing user identity", "conv-handler-identity")
		return
	}

	conversationID, ok := conversationIDParam(c)
	if !ok {
		return
	}

	conv, err := h.service.Get(c.Request.Context(), userID, conversationID)
	if err != nil {
		responses.HandleError(c, err, "failed to get conversation")
		return
	}

	c.JSON(http.StatusOK, responses.ConversationFromDomain(conv))
}

// conversationIDParam parses the :conversation_id path parameter and writes
// the error response itself when it is malformed.
func conversationIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("conversation_id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid conversation id", "conv-handler-id")
		return 0, false
	}
	return uint(id), true
}

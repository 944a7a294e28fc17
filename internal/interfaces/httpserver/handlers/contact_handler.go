package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"messaging-server/internal/domain/contact"
	"messaging-server/internal/infrastructure/auth"
	"messaging-server/internal/interfaces/httpserver/requests"
	"messaging-server/internal/interfaces/httpserver/responses"
	"messaging-server/internal/utils/platformerrors"
)

// ContactService is the slice of the contact domain the HTTP layer needs.
type ContactService interface {
	Add(ctx context.Context, ownerID, subjectID uint) (*contact.Contact, error)
	List(ctx context.Context, ownerID uint) ([]*contact.Contact, error)
}

// ContactHandler exposes HTTP entrypoints for the contact directory.
type ContactHandler struct {
	service ContactService
	log     zerolog.Logger
}

// NewContactHandler constructs the handler.
func NewContactHandler(service ContactService, log zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		log:     log.With().Str("handler", "contact").Logger(),
	}
}

// Add handles POST /v1/contacts
func (h *ContactHandler) Add(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "missing user identity", "contact-handler-identity")
		return
	}

	var req requests.AddContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body", "contact-handler-bind")
		return
	}

	entry, err := h.service.Add(c.Request.Context(), userID, req.SubjectID)
	if err != nil {
		responses.HandleError(c, err, "failed to add contact")
		return
	}

	c.JSON(http.StatusCreated, responses.ContactFromDomain(entry))
}

// List handles GET /v1/contacts
func (h *ContactHandler) List(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "missing user identity", "contact-handler-identity")
		return
	}

	contacts, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		responses.HandleError(c, err, "failed to list contacts")
		return
	}

	c.JSON(http.StatusOK, responses.ContactListFromDomain(contacts))
}

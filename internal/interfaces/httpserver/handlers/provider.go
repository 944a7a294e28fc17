package handlers

import (
	"github.com/rs/zerolog"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Conversation *ConversationHandler
	Message      *MessageHandler
	Contact      *ContactHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(
	conversationService ConversationService,
	messageService MessageService,
	contactService ContactService,
	log zerolog.Logger,
) *Provider {
	return &Provider{
		Conversation: NewConversationHandler(conversationService, log),
		Message:      NewMessageHandler(messageService, log),
		Contact:      NewContactHandler(contactService, log),
	}
}

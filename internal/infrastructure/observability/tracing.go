package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "messaging-server/api"
)

// GetTracer returns the tracer for the messaging service.
func GetTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// ConversationAttributes returns common attributes for conversation spans.
func ConversationAttributes(conversationID, userID uint) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("conversation.id", int(conversationID)),
		attribute.Int("user.id", int(userID)),
	}
}

// MessageAttributes returns common attributes for message spans.
func MessageAttributes(messageUUID string, conversationID, authorID uint) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("message.uuid", messageUUID),
		attribute.Int("message.conversation_id", int(conversationID)),
		attribute.Int("message.author_id", int(authorID)),
	}
}

// StartConversationSpan starts a span for a conversation operation.
func StartConversationSpan(ctx context.Context, operation string, conversationID, userID uint) (context.Context, trace.Span) {
	ctx, span := GetTracer().Start(ctx, "conversation."+operation,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(ConversationAttributes(conversationID, userID)...),
	)
	return ctx, span
}

// StartMessageSpan starts a span for a message operation.
func StartMessageSpan(ctx context.Context, operation, messageUUID string, conversationID, authorID uint) (context.Context, trace.Span) {
	ctx, span := GetTracer().Start(ctx, "message."+operation,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(MessageAttributes(messageUUID, conversationID, authorID)...),
	)
	return ctx, span
}

// RecordError records an error on a span.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

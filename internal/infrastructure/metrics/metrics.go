package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Messaging-API Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "messaging",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "messaging",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	// Message lifecycle counters
	MessagesSentTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "messaging",
			Subsystem: "api",
			Name:      "messages_sent_total",
			Help:      "Total messages created",
		},
	)

	MessagesEditedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "messaging",
			Subsystem: "api",
			Name:      "messages_edited_total",
			Help:      "Total message edits applied",
		},
	)

	MessagesDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "messaging",
			Subsystem: "api",
			Name:      "messages_deleted_total",
			Help:      "Total messages soft-deleted",
		},
	)

	// Conversation counters
	ConversationsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "messaging",
			Subsystem: "api",
			Name:      "conversations_created_total",
			Help:      "Total conversations created",
		},
	)

	// Attachment counter by kind (file or image)
	AttachmentsStoredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "messaging",
			Subsystem: "api",
			Name:      "attachments_stored_total",
			Help:      "Total attachment rows written",
		},
		[]string{"kind"},
	)
)

package requests

// CreateConversationRequest opens a conversation between the caller and the
// listed users. The caller is always included, whether or not it lists
// itself.
type CreateConversationRequest struct {
	ParticipantIDs []uint `json:"participant_ids" binding:"required,min=1,dive,min=1"`
}

// ListConversationsQuery controls inbox ordering.
type ListConversationsQuery struct {
	Order string `form:"order" binding:"omitempty,oneof=asc desc"`
}

// Descending reports whether newest conversations come first. Descending is
// the default.
func (q ListConversationsQuery) Descending() bool {
	return q.Order != "asc"
}

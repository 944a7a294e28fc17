package requests

// AddContactRequest records another user in the caller's contact directory.
type AddContactRequest struct {
	SubjectID uint `json:"subject_id" binding:"required,min=1"`
}

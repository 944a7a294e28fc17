package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"messaging-server/internal/domain/message"
	"messaging-server/internal/infrastructure/auth"
	"messaging-server/internal/interfaces/httpserver/handlers"
	"messaging-server/internal/utils/platformerrors"
)

// MockMessageService is a mock implementation of the message service slice
// used by the handlers.
type MockMessageService struct {
	ListFunc   func(ctx context.Context, userID, conversationID uint, authorID *uint) ([]*message.Message, error)
	SendFunc   func(ctx context.Context, userID, conversationID uint, input message.SendInput) (*message.Message, error)
	EditFunc   func(ctx context.Context, userID, conversationID uint, messageUUID string, input message.EditInput) (*message.Message, error)
	DeleteFunc func(ctx context.Context, userID, conversationID uint, messageUUID string) (*message.Message, error)
}

func (m *MockMessageService) List(ctx context.Context, userID, conversationID uint, authorID *uint) ([]*message.Message, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, conversationID, authorID)
	}
	return nil, nil
}

func (m *MockMessageService) Send(ctx context.Context, userID, conversationID uint, input message.SendInput) (*message.Message, error) {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, userID, conversationID, input)
	}
	return nil, nil
}

func (m *MockMessageService) Edit(ctx context.Context, userID, conversationID uint, messageUUID string, input message.EditInput) (*message.Message, error) {
	if m.EditFunc != nil {
		return m.EditFunc(ctx, userID, conversationID, messageUUID, input)
	}
	return nil, nil
}

func (m *MockMessageService) Delete(ctx context.Context, userID, conversationID uint, messageUUID string) (*message.Message, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, conversationID, messageUUID)
	}
	return nil, nil
}

func setupMessageTestRouter(handler *handlers.MessageHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(auth.NewIdentity(zerolog.Nop()).Middleware())
	v1 := r.Group("/v1/conversations/:conversation_id/messages")
	{
		v1.GET("", handler.List)
		v1.POST("", handler.Send)
		v1.PUT("/:message_uuid", handler.Edit)
		v1.DELETE("/:message_uuid", handler.Delete)
	}
	return r
}

func TestMessageHandler_Send(t *testing.T) {
	var gotInput message.SendInput
	mockService := &MockMessageService{
		SendFunc: func(ctx context.Context, userID, conversationID uint, input message.SendInput) (*message.Message, error) {
			gotInput = input
			return &message.Message{
				UUID:           "msg-uuid-1",
				ConversationID: conversationID,
				AuthorID:       userID,
				Content:        input.Content,
				SendAt:         time.Now(),
			}, nil
		},
	}

	handler := handlers.NewMessageHandler(mockService, zerolog.Nop())
	router := setupMessageTestRouter(handler)

	body := bytes.NewBufferString(`{"content": "hello", "files": [{"filepath": "/files/a.pdf"}], "images": []}`)
	req, _ := http.NewRequest("POST", "/v1/conversations/42/messages", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User", "9")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if gotInput.Content != "hello" {
		t.Errorf("Expected content 'hello', got %q", gotInput.Content)
	}
	if len(gotInput.Files) != 1 || gotInput.Files[0] != "/files/a.pdf" {
		t.Errorf("Expected one file '/files/a.pdf', got %v", gotInput.Files)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["uuid"] != "msg-uuid-1" {
		t.Errorf("Expected uuid 'msg-uuid-1', got %v", response["uuid"])
	}
}

func TestMessageHandler_SendAllowsEmptyContent(t *testing.T) {
	mockService := &MockMessageService{
		SendFunc: func(ctx context.Context, userID, conversationID uint, input message.SendInput) (*message.Message, error) {
			return &message.Message{UUID: "msg-uuid-2", Content: input.Content}, nil
		},
	}

	handler := handlers.NewMessageHandler(mockService, zerolog.Nop())
	router := setupMessageTestRouter(handler)

	body := bytes.NewBufferString(`{"content": "", "images": [{"filepath": "/images/cat.png"}]}`)
	req, _ := http.NewRequest("POST", "/v1/conversations/42/messages", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User", "9")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201 for attachment-only message, got %d: %s", w.Code, w.Body.String())
	}
}

func TestMessageHandler_SendRejectsMissingContent(t *testing.T) {
	handler := handlers.NewMessageHandler(&MockMessageService{}, zerolog.Nop())
	router := setupMessageTestRouter(handler)

	body := bytes.NewBufferString(`{"files": []}`)
	req, _ := http.NewRequest("POST", "/v1/conversations/42/messages", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User", "9")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 without content field, got %d", w.Code)
	}
}

func TestMessageHandler_ListWithAuthorFilter(t *testing.T) {
	var gotAuthor *uint
	mockService := &MockMessageService{
		ListFunc: func(ctx context.Context, userID, conversationID uint, authorID *uint) ([]*message.Message, error) {
			gotAuthor = authorID
			return []*message.Message{{UUID: "m1"}, {UUID: "m2"}}, nil
		},
	}

	handler := handlers.NewMessageHandler(mockService, zerolog.Nop())
	router := setupMessageTestRouter(handler)

	req, _ := http.NewRequest("GET", "/v1/conversations/42/messages?author_id=3", nil)
	req.Header.Set("X-User", "9")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if gotAuthor == nil || *gotAuthor != 3 {
		t.Errorf("Expected author filter 3, got %v", gotAuthor)
	}
}

func TestMessageHandler_Edit(t *testing.T) {
	var gotInput message.EditInput
	editedAt := time.Now()
	mockService := &MockMessageService{
		EditFunc: func(ctx context.Context, userID, conversationID uint, messageUUID string, input message.EditInput) (*message.Message, error) {
			gotInput = input
			return &message.Message{
				UUID:     messageUUID,
				Content:  input.Content,
				EditedAt: &editedAt,
			}, nil
		},
	}

	handler := handlers.NewMessageHandler(mockService, zerolog.Nop())
	router := setupMessageTestRouter(handler)

	body := bytes.NewBufferString(`{
		"content": "updated",
		"files": {"add": [{"filepath": "/files/new.txt"}], "delete": [11]},
		"images": {"delete": [7, 8]}
	}`)
	req, _ := http.NewRequest("PUT", "/v1/conversations/42/messages/msg-uuid-1", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User", "9")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotInput.Content != "updated" {
		t.Errorf("Expected content 'updated', got %q", gotInput.Content)
	}
	if len(gotInput.Delta.FilesAdd) != 1 || gotInput.Delta.FilesAdd[0] != "/files/new.txt" {
		t.Errorf("Expected file add '/files/new.txt', got %v", gotInput.Delta.FilesAdd)
	}
	if len(gotInput.Delta.FileIDsDelete) != 1 || gotInput.Delta.FileIDsDelete[0] != 11 {
		t.Errorf("Expected file delete [11], got %v", gotInput.Delta.FileIDsDelete)
	}
	if len(gotInput.Delta.ImageIDsDelete) != 2 {
		t.Errorf("Expected two image deletes, got %v", gotInput.Delta.ImageIDsDelete)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["edited_at"] == nil {
		t.Error("Expected edited_at in response")
	}
}

func TestMessageHandler_EditNotFound(t *testing.T) {
	mockService := &MockMessageService{
		EditFunc: func(ctx context.Context, userID, conversationID uint, messageUUID string, input message.EditInput) (*message.Message, error) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
				platformerrors.ErrorTypeNotFound, "message not found", nil, "msg-author-mismatch")
		},
	}

	handler := handlers.NewMessageHandler(mockService, zerolog.Nop())
	router := setupMessageTestRouter(handler)

	body := bytes.NewBufferString(`{"content": "updated"}`)
	req, _ := http.NewRequest("PUT", "/v1/conversations/42/messages/msg-uuid-1", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User", "9")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestMessageHandler_Delete(t *testing.T) {
	deletedAt := time.Now()
	mockService := &MockMessageService{
		DeleteFunc: func(ctx context.Context, userID, conversationID uint, messageUUID string) (*message.Message, error) {
			return &message.Message{UUID: messageUUID, DeletedAt: &deletedAt}, nil
		},
	}

	handler := handlers.NewMessageHandler(mockService, zerolog.Nop())
	router := setupMessageTestRouter(handler)

	req, _ := http.NewRequest("DELETE", "/v1/conversations/42/messages/msg-uuid-1", nil)
	req.Header.Set("X-User", "9")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["deleted_at"] == nil {
		t.Error("Expected deleted_at in response")
	}
}

package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"messaging-server/internal/domain/conversation"
	"messaging-server/internal/infrastructure/auth"
	"messaging-server/internal/interfaces/httpserver/handlers"
	"messaging-server/internal/utils/platformerrors"
)

// MockConversationService is a mock implementation of the conversation
// service slice used by the handlers.
type MockConversationService struct {
	CreateFunc func(ctx context.Context, userID uint, participantIDs []uint) (*conversation.Conversation, error)
	GetFunc    func(ctx context.Context, userID, conversationID uint) (*conversation.Conversation, error)
	ListFunc   func(ctx context.Context, userID uint, descending bool) ([]*conversation.Conversation, error)
}

func (m *MockConversationService) Create(ctx context.Context, userID uint, participantIDs []uint) (*conversation.Conversation, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, participantIDs)
	}
	return nil, nil
}

func (m *MockConversationService) Get(ctx context.Context, userID, conversationID uint) (*conversation.Conversation, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID, conversationID)
	}
	return nil, nil
}

func (m *MockConversationService) List(ctx context.Context, userID uint, descending bool) ([]*conversation.Conversation, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, descending)
	}
	return nil, nil
}

func setupConversationTestRouter(handler *handlers.ConversationHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(auth.NewIdentity(zerolog.Nop()).Middleware())
	v1 := r.Group("/v1")
	{
		v1.POST("/conversations", handler.Create)
		v1.GET("/conversations", handler.List)
		v1.GET("/conversations/recent", handler.List)
		v1.GET("/conversations/:conversation_id", handler.Get)
	}
	return r
}

func TestConversationHandler_Create(t *testing.T) {
	var gotUserID uint
	mockService := &MockConversationService{
		CreateFunc: func(ctx context.Context, userID uint, participantIDs []uint) (*conversation.Conversation, error) {
			gotUserID = userID
			return &conversation.Conversation{
				ID: 12,
				Participants: []conversation.Participant{
					{ID: 1, ConversationID: 12, UserID: userID},
					{ID: 2, ConversationID: 12, UserID: participantIDs[0]},
				},
			}, nil
		},
	}

	handler := handlers.NewConversationHandler(mockService, zerolog.Nop())
	router := setupConversationTestRouter(handler)

	body := bytes.NewBufferString(`{"participant_ids": [2]}`)
	req, _ := http.NewRequest("POST", "/v1/conversations", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User", "1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if gotUserID != 1 {
		t.Errorf("Expected caller id 1, got %d", gotUserID)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["id"] != float64(12) {
		t.Errorf("Expected conversation id 12, got %v", response["id"])
	}
}

func TestConversationHandler_CreateRequiresIdentity(t *testing.T) {
	handler := handlers.NewConversationHandler(&MockConversationService{}, zerolog.Nop())
	router := setupConversationTestRouter(handler)

	body := bytes.NewBufferString(`{"participant_ids": [2]}`)
	req, _ := http.NewRequest("POST", "/v1/conversations", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 without X-User, got %d", w.Code)
	}
}

func TestConversationHandler_CreateRejectsMalformedIdentity(t *testing.T) {
	handler := handlers.NewConversationHandler(&MockConversationService{}, zerolog.Nop())
	router := setupConversationTestRouter(handler)

	body := bytes.NewBufferString(`{"participant_ids": [2]}`)
	req, _ := http.NewRequest("POST", "/v1/conversations", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User", "not-a-number")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for malformed X-User, got %d", w.Code)
	}
}

func TestConversationHandler_List(t *testing.T) {
	var gotDescending bool
	mockService := &MockConversationService{
		ListFunc: func(ctx context.Context, userID uint, descending bool) ([]*conversation.Conversation, error) {
			gotDescending = descending
			return []*conversation.Conversation{{ID: 3}, {ID: 2}}, nil
		},
	}

	handler := handlers.NewConversationHandler(mockService, zerolog.Nop())
	router := setupConversationTestRouter(handler)

	req, _ := http.NewRequest("GET", "/v1/conversations/recent", nil)
	req.Header.Set("X-User", "1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !gotDescending {
		t.Error("Expected newest-first ordering by default")
	}

	var response struct {
		Data []map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(response.Data) != 2 {
		t.Errorf("Expected 2 conversations, got %d", len(response.Data))
	}
}

func TestConversationHandler_ListAscending(t *testing.T) {
	var gotDescending bool
	mockService := &MockConversationService{
		ListFunc: func(ctx context.Context, userID uint, descending bool) ([]*conversation.Conversation, error) {
			gotDescending = descending
			return nil, nil
		},
	}

	handler := handlers.NewConversationHandler(mockService, zerolog.Nop())
	router := setupConversationTestRouter(handler)

	req, _ := http.NewRequest("GET", "/v1/conversations?order=asc", nil)
	req.Header.Set("X-User", "1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if gotDescending {
		t.Error("Expected ascending order when order=asc")
	}
}

func TestConversationHandler_GetNotFound(t *testing.T) {
	mockService := &MockConversationService{
		GetFunc: func(ctx context.Context, userID, conversationID uint) (*conversation.Conversation, error) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
				platformerrors.ErrorTypeNotFound, "conversation not found", nil, "conv-not-found")
		},
	}

	handler := handlers.NewConversationHandler(mockService, zerolog.Nop())
	router := setupConversationTestRouter(handler)

	req, _ := http.NewRequest("GET", "/v1/conversations/42", nil)
	req.Header.Set("X-User", "1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestConversationHandler_GetRejectsBadID(t *testing.T) {
	handler := handlers.NewConversationHandler(&MockConversationService{}, zerolog.Nop())
	router := setupConversationTestRouter(handler)

	req, _ := http.NewRequest("GET", "/v1/conversations/abc", nil)
	req.Header.Set("X-User", "1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

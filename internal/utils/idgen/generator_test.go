package idgen

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewMessageUUID(t *testing.T) {
	id := NewMessageUUID()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("NewMessageUUID() produced unparseable value %q: %v", id, err)
	}

	if NewMessageUUID() == id {
		t.Error("consecutive message UUIDs should differ")
	}
}

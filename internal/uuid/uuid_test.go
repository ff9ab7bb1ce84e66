package uuid

import (
	"testing"

	googleuuid "github.com/google/uuid"
)

func TestNew(t *testing.T) {
	id := New()
	if !IsValid(id) {
		t.Fatalf("expected valid UUID, got %q", id)
	}
	parsed := googleuuid.MustParse(id)
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
	if New() == id {
		t.Error("expected distinct IDs")
	}
}

func TestIsValid(t *testing.T) {
	if IsValid("not-a-uuid") {
		t.Error("expected invalid")
	}
}

package session

import (
	"os"
	"path/filepath"
	"testing"

	"taskboard/internal/model"
)

func TestStoreRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	if got := store.Get(); got != nil {
		t.Fatalf("Get() on empty store = %+v, want nil", got)
	}
	if store.IsAuthenticated() {
		t.Fatal("IsAuthenticated() on empty store = true")
	}

	sess := &model.Session{
		Token: "tok-123",
		User:  model.SessionUser{ID: 7, Name: "Ann", Email: "ann@example.com"},
	}
	if err := store.Set(sess); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got := store.Get()
	if got == nil {
		t.Fatal("Get() after Set() = nil")
	}
	if got.Token != "tok-123" {
		t.Errorf("Token = %q, want %q", got.Token, "tok-123")
	}
	if got.User.ID != 7 || got.User.Email != "ann@example.com" {
		t.Errorf("User = %+v, want id 7 / ann@example.com", got.User)
	}
	if store.Token() != "tok-123" {
		t.Errorf("Token() = %q, want %q", store.Token(), "tok-123")
	}
	if !store.IsAuthenticated() {
		t.Error("IsAuthenticated() = false after Set()")
	}
}

func TestStoreClear(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	// Clearing when nothing is stored must not fail.
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() on empty store error = %v", err)
	}

	if err := store.Set(&model.Session{Token: "tok"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if got := store.Get(); got != nil {
		t.Fatalf("Get() after Clear() = %+v, want nil", got)
	}
}

func TestStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, fileName), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	if got := store.Get(); got != nil {
		t.Fatalf("Get() on corrupt file = %+v, want nil", got)
	}
	if store.IsAuthenticated() {
		t.Error("IsAuthenticated() on corrupt file = true")
	}
}

func TestStoreCreatesStateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	if _, err := NewStore(dir); err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("state dir not created: %v", err)
	}
}

package session

import (
	"testing"

	"shortlink-dashboard/model"
)

func TestFileStorage_CredentialRoundTrip(t *testing.T) {
	storage, err := NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStorage() error = %v", err)
	}

	token, err := storage.Credential()
	if err != nil {
		t.Fatalf("Credential() error = %v", err)
	}
	if token != "" {
		t.Errorf("Credential() on empty storage = %q, want empty", token)
	}

	if err := storage.SaveCredential("T1"); err != nil {
		t.Fatalf("SaveCredential() error = %v", err)
	}
	token, err = storage.Credential()
	if err != nil {
		t.Fatalf("Credential() error = %v", err)
	}
	if token != "T1" {
		t.Errorf("Credential() = %q, want T1", token)
	}
}

func TestFileStorage_IdentityRoundTrip(t *testing.T) {
	storage, err := NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStorage() error = %v", err)
	}

	identity, err := storage.Identity()
	if err != nil {
		t.Fatalf("Identity() error = %v", err)
	}
	if identity != nil {
		t.Errorf("Identity() on empty storage = %+v, want nil", identity)
	}

	want := model.Identity{ID: 1, Email: "a@x.com", Name: "a"}
	if err := storage.SaveIdentity(want); err != nil {
		t.Fatalf("SaveIdentity() error = %v", err)
	}
	identity, err = storage.Identity()
	if err != nil {
		t.Fatalf("Identity() error = %v", err)
	}
	if identity == nil || *identity != want {
		t.Errorf("Identity() = %+v, want %+v", identity, want)
	}
}

func TestFileStorage_ClearIsIdempotent(t *testing.T) {
	storage, err := NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStorage() error = %v", err)
	}

	if err := storage.SaveCredential("T1"); err != nil {
		t.Fatalf("SaveCredential() error = %v", err)
	}
	if err := storage.SaveIdentity(model.Identity{ID: 1, Email: "a@x.com", Name: "a"}); err != nil {
		t.Fatalf("SaveIdentity() error = %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := storage.Clear(); err != nil {
			t.Fatalf("Clear() #%d error = %v", i+1, err)
		}
	}

	token, _ := storage.Credential()
	identity, _ := storage.Identity()
	if token != "" || identity != nil {
		t.Errorf("storage not cleared: token=%q identity=%+v", token, identity)
	}
}

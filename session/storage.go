package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"shortlink-dashboard/model"
)

const (
	credentialFile = "token"
	identityFile   = "identity.json"
)

// Storage persists the Credential and the cached Identity between runs. It is
// the client-side analogue of the browser's local storage: no expiry is
// enforced here, staleness is only caught by token introspection.
type Storage interface {
	// Credential returns the stored bearer token, or "" when absent.
	Credential() (string, error)
	SaveCredential(token string) error
	// Identity returns the cached identity, or nil when absent.
	Identity() (*model.Identity, error)
	SaveIdentity(identity model.Identity) error
	// Clear removes both records. Idempotent.
	Clear() error
}

// FileStorage keeps the credential and cached identity as files under a state
// directory (one record per file, owner-only permissions).
type FileStorage struct {
	dir string
}

// NewFileStorage creates the state directory if needed and returns a storage
// backed by it.
func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) Credential() (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, credentialFile))
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileStorage) SaveCredential(token string) error {
	return os.WriteFile(filepath.Join(s.dir, credentialFile), []byte(token+"\n"), 0o600)
}

func (s *FileStorage) Identity() (*model.Identity, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, identityFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var identity model.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		// A corrupt cache behaves like no cache.
		return nil, nil
	}
	return &identity, nil
}

func (s *FileStorage) SaveIdentity(identity model.Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, identityFile), data, 0o600)
}

func (s *FileStorage) Clear() error {
	var firstErr error
	for _, name := range []string{credentialFile, identityFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

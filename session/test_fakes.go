package session

import (
	"context"

	"shortlink-dashboard/model"
)

// FakeAuthAPI is a test-only fake implementing AuthAPI. Responses and errors
// are injected through its fields; calls are counted for assertions.
type FakeAuthAPI struct {
	RegisterResp model.RegisterResponse
	RegisterErr  error
	LoginResp    model.LoginResponse
	LoginErr     error
	IntroResp    model.IntrospectResponse
	IntroErr     error

	RegisterCalls int
	LoginCalls    int
	IntroCalls    int
}

func (f *FakeAuthAPI) Register(ctx context.Context, req model.RegisterRequest) (model.RegisterResponse, error) {
	f.RegisterCalls++
	return f.RegisterResp, f.RegisterErr
}

func (f *FakeAuthAPI) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	f.LoginCalls++
	return f.LoginResp, f.LoginErr
}

func (f *FakeAuthAPI) IntrospectToken(ctx context.Context) (model.IntrospectResponse, error) {
	f.IntroCalls++
	return f.IntroResp, f.IntroErr
}

// FakeStorage is an in-memory Storage with injectable errors.
type FakeStorage struct {
	Token string
	User  *model.Identity

	CredentialErr error
	SaveErr       error
	ClearErr      error
}

func (f *FakeStorage) Credential() (string, error) {
	if f.CredentialErr != nil {
		return "", f.CredentialErr
	}
	return f.Token, nil
}

func (f *FakeStorage) SaveCredential(token string) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.Token = token
	return nil
}

func (f *FakeStorage) Identity() (*model.Identity, error) {
	return f.User, nil
}

func (f *FakeStorage) SaveIdentity(identity model.Identity) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.User = &identity
	return nil
}

func (f *FakeStorage) Clear() error {
	f.Token = ""
	f.User = nil
	return f.ClearErr
}

// FakeSink records credential changes pushed by the manager.
type FakeSink struct {
	Current    string
	SetCalls   int
	ClearCalls int
}

func (f *FakeSink) SetToken(token string) {
	f.Current = token
	f.SetCalls++
}

func (f *FakeSink) ClearToken() {
	f.Current = ""
	f.ClearCalls++
}

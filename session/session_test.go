package session

import (
	"context"
	"errors"
	"testing"

	"shortlink-dashboard/model"
)

// change records one observed state transition.
type change struct {
	state    State
	identity *model.Identity
}

func newTestManager(api *FakeAuthAPI, storage *FakeStorage) (*Manager, *FakeSink, *[]change) {
	sink := &FakeSink{}
	manager := NewManager(api, sink, storage)
	changes := &[]change{}
	manager.OnChange(func(state State, identity *model.Identity) {
		*changes = append(*changes, change{state, identity})
	})
	return manager, sink, changes
}

func TestRestore_NoStoredCredential(t *testing.T) {
	api := &FakeAuthAPI{}
	manager, _, _ := newTestManager(api, &FakeStorage{})

	identity, err := manager.Restore(context.Background())
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if identity != nil {
		t.Errorf("Restore() identity = %+v, want nil", identity)
	}
	if manager.State() != StateUnauthenticated {
		t.Errorf("State() = %v, want unauthenticated", manager.State())
	}
	if api.IntroCalls != 0 {
		t.Errorf("introspection called %d times with no credential, want 0", api.IntroCalls)
	}
}

// The worked scenario: stored credential T1, cached identity {1, a@x.com},
// introspection confirms {1, a@x.com}. The cached identity is displayed
// first, then the session converges to the server-confirmed identity with
// the name derived from the email local-part.
func TestRestore_OptimisticThenConfirmed(t *testing.T) {
	cached := model.Identity{ID: 1, Email: "a@x.com", Name: "a"}
	api := &FakeAuthAPI{
		IntroResp: model.IntrospectResponse{UserID: 1, UserEmail: "a@x.com"},
	}
	storage := &FakeStorage{Token: "T1", User: &cached}
	manager, sink, changes := newTestManager(api, storage)

	identity, err := manager.Restore(context.Background())
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if identity == nil || identity.ID != 1 || identity.Email != "a@x.com" || identity.Name != "a" {
		t.Fatalf("Restore() identity = %+v, want {1 a@x.com a}", identity)
	}
	if manager.State() != StateAuthenticated {
		t.Errorf("State() = %v, want authenticated", manager.State())
	}
	if sink.Current != "T1" {
		t.Errorf("sink token = %q, want T1", sink.Current)
	}

	// The optimistic display always precedes the confirmed overwrite.
	got := *changes
	if len(got) != 2 {
		t.Fatalf("observed %d transitions, want 2: %+v", len(got), got)
	}
	if got[0].state != StateOptimistic || got[0].identity == nil || got[0].identity.Email != "a@x.com" {
		t.Errorf("first transition = %+v, want optimistic cached identity", got[0])
	}
	if got[1].state != StateAuthenticated {
		t.Errorf("second transition = %+v, want authenticated", got[1])
	}
}

func TestRestore_NoCachedIdentitySkipsOptimistic(t *testing.T) {
	api := &FakeAuthAPI{
		IntroResp: model.IntrospectResponse{UserID: 2, UserEmail: "b@y.org"},
	}
	storage := &FakeStorage{Token: "T2"}
	manager, _, changes := newTestManager(api, storage)

	identity, err := manager.Restore(context.Background())
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if identity == nil || identity.Name != "b" {
		t.Fatalf("Restore() identity = %+v, want derived name b", identity)
	}

	got := *changes
	if len(got) != 1 || got[0].state != StateAuthenticated {
		t.Errorf("transitions = %+v, want single authenticated", got)
	}
	if storage.User == nil || storage.User.Email != "b@y.org" {
		t.Errorf("confirmed identity not cached: %+v", storage.User)
	}
}

func TestRestore_RevalidationFailureEndsSession(t *testing.T) {
	tests := []struct {
		name   string
		cached *model.Identity
	}{
		{name: "with cached identity", cached: &model.Identity{ID: 1, Email: "a@x.com", Name: "a"}},
		{name: "without cached identity", cached: nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			api := &FakeAuthAPI{IntroErr: errors.New("Invalid or expired token")}
			storage := &FakeStorage{Token: "bad", User: test.cached}
			manager, sink, _ := newTestManager(api, storage)

			identity, err := manager.Restore(context.Background())
			if err != nil {
				t.Fatalf("Restore() error = %v, revalidation failures are handled internally", err)
			}
			if identity != nil {
				t.Errorf("Restore() identity = %+v, want nil", identity)
			}
			if manager.State() != StateUnauthenticated {
				t.Errorf("State() = %v, want unauthenticated", manager.State())
			}
			if storage.Token != "" || storage.User != nil {
				t.Errorf("stored state not cleared: token=%q user=%+v", storage.Token, storage.User)
			}
			if sink.ClearCalls == 0 {
				t.Error("bearer token was not cleared")
			}
		})
	}
}

func TestRestore_LoadingPhaseRunsOnce(t *testing.T) {
	api := &FakeAuthAPI{
		IntroResp: model.IntrospectResponse{UserID: 1, UserEmail: "a@x.com"},
	}
	manager, _, _ := newTestManager(api, &FakeStorage{Token: "T1"})

	ctx := context.Background()
	if _, err := manager.Restore(ctx); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	identity, err := manager.Restore(ctx)
	if err != nil {
		t.Fatalf("second Restore() error = %v", err)
	}
	if identity == nil || identity.ID != 1 {
		t.Errorf("second Restore() identity = %+v", identity)
	}
	if api.IntroCalls != 1 {
		t.Errorf("introspection called %d times, want 1", api.IntroCalls)
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		loginErr error
		wantErr  bool
	}{
		{name: "success", wantErr: false},
		{name: "invalid credentials", loginErr: errors.New("Invalid credentials"), wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			api := &FakeAuthAPI{
				LoginResp: model.LoginResponse{
					Token: "T9",
					User:  model.UserPayload{ID: 3, Email: "c@z.io"},
				},
				LoginErr: test.loginErr,
			}
			storage := &FakeStorage{}
			manager, sink, _ := newTestManager(api, storage)

			identity, err := manager.Login(context.Background(), "c@z.io", "hunter22")
			if (err != nil) != test.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, test.wantErr)
			}
			if test.wantErr {
				if err.Error() != "Invalid credentials" {
					t.Errorf("Login() error = %q, want backend message verbatim", err)
				}
				if manager.State() == StateAuthenticated {
					t.Error("State() = authenticated after failed login")
				}
				return
			}
			if identity == nil || identity.Name != "c" {
				t.Errorf("Login() identity = %+v, want derived name c", identity)
			}
			if storage.Token != "T9" || sink.Current != "T9" {
				t.Errorf("credential not propagated: storage=%q sink=%q", storage.Token, sink.Current)
			}
			if manager.State() != StateAuthenticated {
				t.Errorf("State() = %v, want authenticated", manager.State())
			}
		})
	}
}

func TestRegister_FollowsUpWithLogin(t *testing.T) {
	api := &FakeAuthAPI{
		RegisterResp: model.RegisterResponse{User: model.UserPayload{ID: 4, Email: "d@w.dev"}},
		LoginResp: model.LoginResponse{
			Token: "T4",
			User:  model.UserPayload{ID: 4, Email: "d@w.dev"},
		},
	}
	storage := &FakeStorage{}
	manager, _, _ := newTestManager(api, storage)

	identity, err := manager.Register(context.Background(), "d@w.dev", "hunter22", "")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if identity == nil || identity.Name != "d" {
		t.Errorf("Register() identity = %+v, want derived name d", identity)
	}
	if api.RegisterCalls != 1 || api.LoginCalls != 1 {
		t.Errorf("calls = register %d, login %d; want 1 and 1", api.RegisterCalls, api.LoginCalls)
	}
	if storage.Token != "T4" {
		t.Errorf("credential not stored: %q", storage.Token)
	}
}

func TestRegister_RejectedByBackend(t *testing.T) {
	api := &FakeAuthAPI{RegisterErr: errors.New("User already exists")}
	manager, _, _ := newTestManager(api, &FakeStorage{})

	if _, err := manager.Register(context.Background(), "d@w.dev", "hunter22", ""); err == nil {
		t.Fatal("Register() expected error")
	}
	if api.LoginCalls != 0 {
		t.Errorf("login attempted after failed registration")
	}
}

func TestLogout_Idempotent(t *testing.T) {
	api := &FakeAuthAPI{
		LoginResp: model.LoginResponse{Token: "T1", User: model.UserPayload{ID: 1, Email: "a@x.com"}},
	}
	storage := &FakeStorage{}
	manager, sink, _ := newTestManager(api, storage)

	if _, err := manager.Login(context.Background(), "a@x.com", "pw"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	manager.Logout()
	manager.Logout()

	if manager.State() != StateUnauthenticated {
		t.Errorf("State() = %v, want unauthenticated", manager.State())
	}
	if manager.Identity() != nil {
		t.Errorf("Identity() = %+v, want nil", manager.Identity())
	}
	if storage.Token != "" || storage.User != nil {
		t.Errorf("stored state not cleared: token=%q user=%+v", storage.Token, storage.User)
	}
	if sink.Current != "" {
		t.Errorf("sink token = %q, want cleared", sink.Current)
	}
}

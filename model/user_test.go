package model

import "testing"

func TestDeriveName(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		givenName string
		want      string
	}{
		{name: "derives local-part", email: "a@x.com", want: "a"},
		{name: "backend name wins", email: "a@x.com", givenName: "Alice", want: "Alice"},
		{name: "multi-character local-part", email: "dev.team@example.org", want: "dev.team"},
		{name: "no at sign falls back to whole string", email: "not-an-email", want: "not-an-email"},
		{name: "leading at sign falls back to whole string", email: "@x.com", want: "@x.com"},
		{name: "empty email", email: "", want: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := DeriveName(test.email, test.givenName); got != test.want {
				t.Errorf("DeriveName(%q, %q) = %q, want %q", test.email, test.givenName, got, test.want)
			}
		})
	}
}

func TestIntrospectResponse_Identity(t *testing.T) {
	resp := IntrospectResponse{UserID: 7, UserEmail: "ops@corp.io"}

	got := resp.Identity()
	want := Identity{ID: 7, Email: "ops@corp.io", Name: "ops"}
	if got != want {
		t.Errorf("Identity() = %+v, want %+v", got, want)
	}
}

package view

import (
	"errors"
	"testing"
)

func TestController_StartsOnCollection(t *testing.T) {
	c := NewController(func() bool { return false })
	if c.Active() != ViewCollection {
		t.Errorf("Active() = %v, want collection", c.Active())
	}
}

func TestController_AnalyticsGatedOnSnapshot(t *testing.T) {
	hasSnapshot := false
	c := NewController(func() bool { return hasSnapshot })

	if err := c.SwitchTo(ViewAnalytics); !errors.Is(err, ErrAnalyticsUnavailable) {
		t.Fatalf("SwitchTo(analytics) error = %v, want ErrAnalyticsUnavailable", err)
	}
	if c.Active() != ViewCollection {
		t.Errorf("rejected switch changed the active view to %v", c.Active())
	}

	hasSnapshot = true
	if err := c.SwitchTo(ViewAnalytics); err != nil {
		t.Fatalf("SwitchTo(analytics) error = %v", err)
	}
	if c.Active() != ViewAnalytics {
		t.Errorf("Active() = %v, want analytics", c.Active())
	}
}

func TestController_SwitchBetweenViews(t *testing.T) {
	c := NewController(func() bool { return true })

	transitions := []View{ViewCreate, ViewCollection, ViewAnalytics, ViewCreate}
	for _, v := range transitions {
		if err := c.SwitchTo(v); err != nil {
			t.Fatalf("SwitchTo(%v) error = %v", v, err)
		}
		if c.Active() != v {
			t.Errorf("Active() = %v, want %v", c.Active(), v)
		}
	}
}

func TestView_String(t *testing.T) {
	tests := []struct {
		view View
		want string
	}{
		{ViewCollection, "links"},
		{ViewCreate, "create"},
		{ViewAnalytics, "analytics"},
	}
	for _, test := range tests {
		if got := test.view.String(); got != test.want {
			t.Errorf("%d.String() = %q, want %q", test.view, got, test.want)
		}
	}
}

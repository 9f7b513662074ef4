package store

import (
	"context"
	"sync"

	"shortlink-dashboard/model"
)

// FakeLinkAPI is a test-only fake implementing LinkAPI. Fixed responses and
// errors are injected through fields; StatsFunc, when set, lets a test
// control per-code responses and completion order.
type FakeLinkAPI struct {
	ListResp    model.URLListResponse
	ListErr     error
	ShortenErr  error
	StatsResp   model.StatsResponse
	StatsErr    error
	StatsFunc   func(ctx context.Context, shortCode string) (model.StatsResponse, error)
	ShortenFunc func(ctx context.Context, req model.ShortenRequest) (model.ShortenResponse, error)

	mu           sync.Mutex
	ListCalls    int
	ShortenCalls int
	StatsCalls   int
}

func (f *FakeLinkAPI) ListURLs(ctx context.Context) (model.URLListResponse, error) {
	f.mu.Lock()
	f.ListCalls++
	f.mu.Unlock()
	return f.ListResp, f.ListErr
}

func (f *FakeLinkAPI) Shorten(ctx context.Context, req model.ShortenRequest) (model.ShortenResponse, error) {
	f.mu.Lock()
	f.ShortenCalls++
	f.mu.Unlock()
	if f.ShortenFunc != nil {
		return f.ShortenFunc(ctx, req)
	}
	if f.ShortenErr != nil {
		return model.ShortenResponse{}, f.ShortenErr
	}
	// Echo the request the way the backend does.
	return model.ShortenResponse{
		ShortCode:   req.CustomShort,
		CustomShort: req.CustomShort,
		OriginalURL: req.URL,
		URL:         req.URL,
		ExpiryHours: req.ExpiryHours,
	}, nil
}

func (f *FakeLinkAPI) Stats(ctx context.Context, shortCode string) (model.StatsResponse, error) {
	f.mu.Lock()
	f.StatsCalls++
	f.mu.Unlock()
	if f.StatsFunc != nil {
		return f.StatsFunc(ctx, shortCode)
	}
	return f.StatsResp, f.StatsErr
}

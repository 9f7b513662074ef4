package store

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"shortlink-dashboard/model"
	"shortlink-dashboard/utils"
)

// FetchState describes the analytics fetch lifecycle for one short code.
// States are tracked per code so overlapping fetches for different links do
// not clobber each other's loading indicators.
type FetchState int

const (
	FetchIdle FetchState = iota
	FetchLoading
	FetchSucceeded
	FetchFailed
)

func (s FetchState) String() string {
	switch s {
	case FetchLoading:
		return "loading"
	case FetchSucceeded:
		return "succeeded"
	case FetchFailed:
		return "failed"
	default:
		return "idle"
	}
}

// LinkAPI is the slice of the gateway client the store needs.
type LinkAPI interface {
	ListURLs(ctx context.Context) (model.URLListResponse, error)
	Shorten(ctx context.Context, req model.ShortenRequest) (model.ShortenResponse, error)
	Stats(ctx context.Context, shortCode string) (model.StatsResponse, error)
}

// Store owns the in-memory view of the user's short links and the per-link
// analytics fetch state. Mutations are all-or-nothing per operation; no error
// path leaves the collection partially updated.
type Store struct {
	api LinkAPI

	mu         sync.Mutex
	links      []model.ShortLink
	snapshot   *model.AnalyticsSnapshot
	fetch      map[string]FetchState
	lastReq    map[string]uint64 // newest request sequence issued per code
	seq        uint64            // monotonically increasing request counter
	appliedSeq uint64            // sequence of the snapshot currently displayed
}

// New creates an empty store backed by the given gateway.
func New(api LinkAPI) *Store {
	return &Store{
		api:     api,
		fetch:   make(map[string]FetchState),
		lastReq: make(map[string]uint64),
	}
}

// Links returns the collection, newest first.
func (s *Store) Links() []model.ShortLink {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ShortLink, len(s.links))
	copy(out, s.links)
	return out
}

// Snapshot returns the currently displayed analytics snapshot, or nil when
// none has been loaded.
func (s *Store) Snapshot() *model.AnalyticsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return nil
	}
	snapshot := *s.snapshot
	return &snapshot
}

// HasSnapshot reports whether an analytics snapshot has been loaded.
func (s *Store) HasSnapshot() bool {
	return s.Snapshot() != nil
}

// AnalyticsState returns the fetch state for one short code.
func (s *Store) AnalyticsState(shortCode string) FetchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetch[shortCode]
}

// LoadCollection fetches the full set of the user's links and replaces the
// collection wholesale. On any failure the collection is left empty and the
// error returned; deciding whether an auth failure should end the session is
// the caller's call.
func (s *Store) LoadCollection(ctx context.Context) ([]model.ShortLink, error) {
	resp, err := s.api.ListURLs(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.links = nil
		return nil, err
	}

	s.links = make([]model.ShortLink, len(resp.URLs))
	copy(s.links, resp.URLs)
	log.Debug().Int("count", len(s.links)).Msg("Link collection loaded")

	out := make([]model.ShortLink, len(s.links))
	copy(out, s.links)
	return out, nil
}

// CreateLink submits a shortening request. A blank URL is rejected before any
// network call. On success the new link is prepended to the collection and the
// prepend is visible before CreateLink returns; existing entries are never
// replaced or reordered. On failure the collection is untouched and the
// backend's message is returned verbatim.
func (s *Store) CreateLink(ctx context.Context, req model.ShortenRequest) (model.ShortLink, error) {
	if strings.TrimSpace(req.URL) == "" {
		return model.ShortLink{}, utils.ErrEmptyURL
	}

	resp, err := s.api.Shorten(ctx, req)
	if err != nil {
		return model.ShortLink{}, err
	}

	link := resp.Link()
	s.mu.Lock()
	s.links = append([]model.ShortLink{link}, s.links...)
	s.mu.Unlock()

	log.Info().Str("short_code", link.ShortCode).Str("url", link.OriginalURL).Msg("Short link created")
	return link, nil
}

// LoadAnalytics fetches the click statistics for one short code and, if the
// response is still current, installs it as the displayed snapshot.
//
// Supersession is decided by request order, not arrival order: a response is
// applied only when it belongs to the newest request issued for its code and
// is newer than the snapshot currently displayed. A discarded stale response
// returns (nil, nil) and touches neither the displayed snapshot nor another
// request's fetch state. A failed fetch marks only its own code failed and
// leaves any previously displayed snapshot intact.
func (s *Store) LoadAnalytics(ctx context.Context, shortCode string) (*model.AnalyticsSnapshot, error) {
	s.mu.Lock()
	s.seq++
	token := s.seq
	s.lastReq[shortCode] = token
	s.fetch[shortCode] = FetchLoading
	s.mu.Unlock()

	resp, err := s.api.Stats(ctx, shortCode)

	s.mu.Lock()
	defer s.mu.Unlock()

	superseded := s.lastReq[shortCode] != token
	if err != nil {
		if !superseded {
			s.fetch[shortCode] = FetchFailed
		}
		return nil, err
	}
	if superseded {
		log.Debug().Str("short_code", shortCode).Uint64("request", token).Msg("Discarding superseded analytics response")
		return nil, nil
	}

	s.fetch[shortCode] = FetchSucceeded
	if token <= s.appliedSeq {
		// A snapshot from a more recent request is already displayed.
		log.Debug().Str("short_code", shortCode).Uint64("request", token).Msg("Discarding stale analytics response")
		return nil, nil
	}

	snapshot := resp.Snapshot()
	s.snapshot = &snapshot
	s.appliedSeq = token

	out := snapshot
	return &out, nil
}

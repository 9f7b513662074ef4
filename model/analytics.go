package model

// AnalyticsSnapshot represents a point-in-time read of one short link's click
// statistics. It is replaced wholesale on each successful fetch, never merged.
type AnalyticsSnapshot struct {
	ShortCode    string         `json:"short_code"`
	Link         ShortLink      `json:"url"`
	TotalClicks  int64          `json:"total_clicks"`
	ClicksByDate []DateCount    `json:"clicks_by_date"`
	TopCountries []CountryCount `json:"top_countries"`
	DeviceStats  []DeviceCount  `json:"device_stats"`
}

// DateCount is one point of the clicks-over-time series
type DateCount struct {
	Date  string `json:"date"` // "YYYY-MM-DD"
	Count int64  `json:"count"`
}

// CountryCount is one row of the top-countries breakdown
type CountryCount struct {
	Country string `json:"country"`
	Count   int64  `json:"count"`
}

// DeviceCount is one row of the device-type breakdown
type DeviceCount struct {
	DeviceType string `json:"device_type"`
	Count      int64  `json:"count"`
}

// StatsResponse is the wire shape of GET /stats/{short_code}
type StatsResponse struct {
	URL   ShortLink  `json:"url"`
	Stats StatsBlock `json:"stats"`
}

// StatsBlock holds the aggregated counters inside a stats response
type StatsBlock struct {
	TotalClicks  int64          `json:"total_clicks"`
	ClicksByDate []DateCount    `json:"clicks_by_date"`
	TopCountries []CountryCount `json:"top_countries"`
	DeviceStats  []DeviceCount  `json:"device_stats"`
}

// Snapshot converts a stats response into the displayed AnalyticsSnapshot.
func (r StatsResponse) Snapshot() AnalyticsSnapshot {
	return AnalyticsSnapshot{
		ShortCode:    r.URL.ShortCode,
		Link:         r.URL,
		TotalClicks:  r.Stats.TotalClicks,
		ClicksByDate: r.Stats.ClicksByDate,
		TopCountries: r.Stats.TopCountries,
		DeviceStats:  r.Stats.DeviceStats,
	}
}

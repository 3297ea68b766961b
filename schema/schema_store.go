package schema

import "time"

// CacheStatus contains status information about the cache store.
type CacheStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int       `json:"total_entries"`
	LiveEntries     int       `json:"live_entries"` // entries whose TTL has not elapsed
	LastEntryTime   time.Time `json:"last_entry_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
}

// HistoryStatus contains status information about the scan history store.
type HistoryStatus struct {
	Backend    string    `json:"backend"`
	Connected  bool      `json:"connected"`
	TotalScans int       `json:"total_scans"`
	LastScan   time.Time `json:"last_scan"`
}

// ScanRun summarizes one recorded project scan.
type ScanRun struct {
	ScanID         int64     `json:"scan_id"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	TotalPackages  int       `json:"total_packages"`
	AggregateScore float64   `json:"aggregate_score"`
}

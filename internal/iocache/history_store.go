package iocache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/huangsam/trustspot/internal/contract"
	"github.com/huangsam/trustspot/schema"
)

// HistoryStoreImpl records project scan runs in a SQL backend.
// Scan IDs are generated by the application (unix nanos) so the schema
// stays portable across sqlite, mysql and postgres.
type HistoryStoreImpl struct {
	db      *sql.DB
	backend schema.StoreBackend
}

var _ contract.HistoryStore = &HistoryStoreImpl{} // Compile-time check

// NewHistoryStore initializes a history store and runs its migrations.
func NewHistoryStore(backend schema.StoreBackend, connStr string) (contract.HistoryStore, error) {
	if backend == schema.NoneBackend {
		return &HistoryStoreImpl{backend: backend}, nil
	}

	db, driverName, err := openHistoryDB(backend, connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s history database: %w", backend, err)
	}

	if err := migrateHistory(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate history schema (%s): %w", driverName, err)
	}

	return &HistoryStoreImpl{db: db, backend: backend}, nil
}

// openHistoryDB opens the database handle for the configured backend.
func openHistoryDB(backend schema.StoreBackend, connStr string) (*sql.DB, string, error) {
	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetHistoryDBFilePath()
		}
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open SQLite history database at %q: %w", dbPath, err)
		}
		db.SetMaxOpenConns(1)
		return db, "sqlite", nil

	case schema.MySQLBackend:
		db, err := sql.Open("mysql", connStr)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open MySQL history database: %w", err)
		}
		return db, "mysql", nil

	case schema.PostgreSQLBackend:
		db, err := sql.Open("pgx", connStr)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open PostgreSQL history database: %w", err)
		}
		return db, "pgx", nil

	default:
		return nil, "", fmt.Errorf("unsupported history backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}
}

// BeginScan implements the HistoryStore interface.
func (hs *HistoryStoreImpl) BeginScan(startTime time.Time, configParams map[string]any) (int64, error) {
	if hs.db == nil {
		return 0, nil
	}

	params, err := json.Marshal(configParams)
	if err != nil {
		params = []byte("{}")
	}

	scanID := time.Now().UnixNano()
	query := hs.rebind(`INSERT INTO trustspot_scan_runs (scan_id, start_time, total_packages, aggregate_score, config_params) VALUES (?, ?, 0, 0, ?)`)
	if _, err := hs.db.Exec(query, scanID, startTime.Unix(), string(params)); err != nil {
		return 0, err
	}
	return scanID, nil
}

// EndScan implements the HistoryStore interface.
func (hs *HistoryStoreImpl) EndScan(scanID int64, endTime time.Time, totalPackages int, aggregateScore float64) error {
	if hs.db == nil {
		return nil
	}
	query := hs.rebind(`UPDATE trustspot_scan_runs SET end_time = ?, total_packages = ?, aggregate_score = ? WHERE scan_id = ?`)
	_, err := hs.db.Exec(query, endTime.Unix(), totalPackages, aggregateScore, scanID)
	return err
}

// RecordPackageScore implements the HistoryStore interface.
func (hs *HistoryStoreImpl) RecordPackageScore(scanID int64, name, version string, trustScore float64, isZombie, isTyposquat bool) error {
	if hs.db == nil {
		return nil
	}
	query := hs.rebind(`INSERT INTO trustspot_package_scores (scan_id, package_name, package_version, trust_score, is_zombie, is_typosquat) VALUES (?, ?, ?, ?, ?, ?)`)
	_, err := hs.db.Exec(query, scanID, name, version, trustScore, isZombie, isTyposquat)
	return err
}

// RecentScans implements the HistoryStore interface.
func (hs *HistoryStoreImpl) RecentScans(limit int) ([]schema.ScanRun, error) {
	if hs.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}

	query := hs.rebind(`SELECT scan_id, start_time, end_time, total_packages, aggregate_score
		FROM trustspot_scan_runs ORDER BY start_time DESC LIMIT ?`)
	rows, err := hs.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var runs []schema.ScanRun
	for rows.Next() {
		var run schema.ScanRun
		var start int64
		var end sql.NullInt64
		var packages sql.NullInt64
		var aggregate sql.NullFloat64
		if err := rows.Scan(&run.ScanID, &start, &end, &packages, &aggregate); err != nil {
			return nil, err
		}
		run.StartTime = time.Unix(start, 0)
		if end.Valid {
			run.EndTime = time.Unix(end.Int64, 0)
		}
		run.TotalPackages = int(packages.Int64)
		run.AggregateScore = aggregate.Float64
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetStatus implements the HistoryStore interface.
func (hs *HistoryStoreImpl) GetStatus() (schema.HistoryStatus, error) {
	status := schema.HistoryStatus{
		Backend:   string(hs.backend),
		Connected: hs.db != nil,
	}
	if hs.db == nil {
		return status, nil
	}

	row := hs.db.QueryRow(`SELECT COUNT(*) FROM trustspot_scan_runs`)
	if err := row.Scan(&status.TotalScans); err != nil {
		return status, fmt.Errorf("failed to count scan runs: %w", err)
	}
	if status.TotalScans == 0 {
		return status, nil
	}

	var lastTs sql.NullInt64
	row = hs.db.QueryRow(`SELECT MAX(start_time) FROM trustspot_scan_runs`)
	if err := row.Scan(&lastTs); err != nil {
		return status, fmt.Errorf("failed to get last scan time: %w", err)
	}
	if lastTs.Valid {
		status.LastScan = time.Unix(lastTs.Int64, 0)
	}
	return status, nil
}

// Close implements the HistoryStore interface.
func (hs *HistoryStoreImpl) Close() error {
	if hs.db != nil {
		return hs.db.Close()
	}
	return nil
}

// rebind rewrites '?' placeholders to '$N' for postgres.
func (hs *HistoryStoreImpl) rebind(query string) string {
	if hs.backend != schema.PostgreSQLBackend {
		return query
	}
	out := make([]byte, 0, len(query)+8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			out = append(out, fmt.Sprintf("$%d", n)...)
			continue
		}
		out = append(out, query[i])
	}
	return string(out)
}

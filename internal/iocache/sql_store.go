package iocache

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"

	_ "github.com/go-sql-driver/mysql"   // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib"   // PostgreSQL driver
	_ "modernc.org/sqlite"               // SQLite driver

	"github.com/huangsam/trustspot/internal/contract"
	"github.com/huangsam/trustspot/schema"
)

// tableNamePattern restricts table names to safe identifiers.
var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLStoreImpl handles durable cache storage using various database backends.
type SQLStoreImpl struct {
	db         *sql.DB
	tableName  string
	backend    schema.StoreBackend
	driverName string
}

var _ contract.CacheStore = &SQLStoreImpl{} // Compile-time check

// NewSQLStore initializes and returns a new SQL-backed CacheStore.
func NewSQLStore(tableName string, backend schema.StoreBackend, connStr string) (contract.CacheStore, error) {
	if !tableNamePattern.MatchString(tableName) {
		return nil, fmt.Errorf("invalid table name %q", tableName)
	}

	var db *sql.DB
	var err error
	var driverName string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetCacheDBFilePath()
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite cache at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		driverName = "mysql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL cache: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=mysecretpassword dbname=postgres
		driverName = "pgx"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL cache: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled caching
		return &SQLStoreImpl{tableName: tableName, backend: backend}, nil

	default:
		return nil, fmt.Errorf("unsupported SQL cache backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	if _, err := db.Exec(getCreateTableQuery(tableName, backend)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	return &SQLStoreImpl{
		db:         db,
		tableName:  tableName,
		backend:    backend,
		driverName: driverName,
	}, nil
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
func getCreateTableQuery(tableName string, backend schema.StoreBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				cache_key VARCHAR(255) PRIMARY KEY,
				cache_value BLOB NOT NULL,
				created_at BIGINT NOT NULL,
				ttl_seconds BIGINT NOT NULL
			);
		`, tableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				cache_key TEXT PRIMARY KEY,
				cache_value BYTEA NOT NULL,
				created_at BIGINT NOT NULL,
				ttl_seconds BIGINT NOT NULL
			);
		`, tableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				cache_key TEXT PRIMARY KEY,
				cache_value BLOB NOT NULL,
				created_at INTEGER NOT NULL,
				ttl_seconds INTEGER NOT NULL
			);
		`, tableName)
	}
}

// Get implements the CacheStore interface.
func (ss *SQLStoreImpl) Get(key string) ([]byte, int64, int64, error) {
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return nil, 0, 0, contract.ErrCacheMiss
	}

	var value []byte
	var createdAt, ttlSeconds int64

	query := fmt.Sprintf(`SELECT cache_value, created_at, ttl_seconds FROM %s WHERE cache_key = %s`, ss.tableName, ss.getPlaceholder(1))
	row := ss.db.QueryRow(query, key)

	if err := row.Scan(&value, &createdAt, &ttlSeconds); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, 0, contract.ErrCacheMiss
		}
		return nil, 0, 0, err
	}
	return value, createdAt, ttlSeconds, nil
}

// Set implements the CacheStore interface.
func (ss *SQLStoreImpl) Set(key string, value []byte, createdAt int64, ttlSeconds int64) error {
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return nil
	}
	_, err := ss.db.Exec(ss.getUpsertQuery(), key, value, createdAt, ttlSeconds)
	return err
}

// Delete implements the CacheStore interface.
func (ss *SQLStoreImpl) Delete(key string) error {
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return nil
	}
	query := fmt.Sprintf(`DELETE FROM %s WHERE cache_key = %s`, ss.tableName, ss.getPlaceholder(1))
	_, err := ss.db.Exec(query, key)
	return err
}

// Keys implements the CacheStore interface.
func (ss *SQLStoreImpl) Keys() ([]string, error) {
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return nil, nil
	}

	rows, err := ss.db.Query(fmt.Sprintf(`SELECT cache_key FROM %s`, ss.tableName))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// Clear implements the CacheStore interface.
func (ss *SQLStoreImpl) Clear() error {
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return nil
	}
	_, err := ss.db.Exec(fmt.Sprintf(`DELETE FROM %s`, ss.tableName))
	return err
}

// getPlaceholder returns the parameter placeholder for the backend.
func (ss *SQLStoreImpl) getPlaceholder(n int) string {
	switch ss.backend {
	case schema.PostgreSQLBackend:
		return fmt.Sprintf("$%d", n)
	default: // SQLite and MySQL
		return "?"
	}
}

// getUpsertQuery returns the UPSERT query for the backend.
func (ss *SQLStoreImpl) getUpsertQuery() string {
	switch ss.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (cache_key, cache_value, created_at, ttl_seconds) VALUES (?, ?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE cache_value = new.cache_value, created_at = new.created_at, ttl_seconds = new.ttl_seconds`, ss.tableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (cache_key, cache_value, created_at, ttl_seconds) VALUES ($1, $2, $3, $4)
			ON CONFLICT (cache_key) DO UPDATE SET cache_value = EXCLUDED.cache_value, created_at = EXCLUDED.created_at, ttl_seconds = EXCLUDED.ttl_seconds`, ss.tableName)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (cache_key, cache_value, created_at, ttl_seconds) VALUES (?, ?, ?, ?)`, ss.tableName)
	}
}

// Close implements the CacheStore interface.
func (ss *SQLStoreImpl) Close() error {
	if ss.db != nil {
		return ss.db.Close()
	}
	return nil
}

// GetStatus implements the CacheStore interface.
func (ss *SQLStoreImpl) GetStatus() (schema.CacheStatus, error) {
	status := schema.CacheStatus{
		Backend:   string(ss.backend),
		Connected: ss.db != nil,
	}

	if ss.backend == schema.NoneBackend || ss.db == nil {
		return status, nil
	}

	row := ss.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", ss.tableName))
	if err := row.Scan(&status.TotalEntries); err != nil {
		return status, fmt.Errorf("failed to get total entries: %w", err)
	}
	if status.TotalEntries == 0 {
		return status, nil
	}

	var lastTs, oldestTs int64
	row = ss.db.QueryRow(fmt.Sprintf("SELECT MAX(created_at), MIN(created_at) FROM %s", ss.tableName))
	if err := row.Scan(&lastTs, &oldestTs); err != nil {
		return status, fmt.Errorf("failed to get entry times: %w", err)
	}
	status.LastEntryTime = time.Unix(lastTs, 0)
	status.OldestEntryTime = time.Unix(oldestTs, 0)

	return status, nil
}

package offline

import (
	"database/sql"
	"sync"
	"time"
)

// Entry is one cached response.
type Entry struct {
	Status      int
	ContentType string
	Body        []byte
	StoredAt    time.Time
}

// BucketStore persists cached responses in named buckets. Buckets carry the
// cache version in their name; activation deletes every bucket whose name is
// not part of the current version set.
type BucketStore interface {
	Buckets() ([]string, error)
	Get(bucket, key string) (Entry, bool, error)
	Put(bucket, key string, entry Entry) error
	DeleteBucket(bucket string) error
}

// MemoryStore is an in-process BucketStore. It backs tests and deployments
// that do not need the cache to survive a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	buckets map[string]map[string]Entry
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{buckets: make(map[string]map[string]Entry)}
}

func (s *MemoryStore) Buckets() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.buckets))
	for name := range s.buckets {
		names = append(names, name)
	}
	return names, nil
}

func (s *MemoryStore) Get(bucket, key string) (Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries, ok := s.buckets[bucket]
	if !ok {
		return Entry{}, false, nil
	}
	entry, ok := entries[key]
	return entry, ok, nil
}

func (s *MemoryStore) Put(bucket, key string, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buckets[bucket] == nil {
		s.buckets[bucket] = make(map[string]Entry)
	}
	s.buckets[bucket][key] = entry
	return nil
}

func (s *MemoryStore) DeleteBucket(bucket string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.buckets, bucket)
	return nil
}

// SQLStore is a BucketStore backed by the cache_entries table, so cached
// responses survive process restarts.
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore creates a SQLStore over an already-migrated database.
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Buckets() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT bucket FROM cache_entries")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *SQLStore) Get(bucket, key string) (Entry, bool, error) {
	var entry Entry
	row := s.db.QueryRow(
		"SELECT status, content_type, body, stored_at FROM cache_entries WHERE bucket = ? AND request_key = ?",
		bucket, key)
	err := row.Scan(&entry.Status, &entry.ContentType, &entry.Body, &entry.StoredAt)
	if err == sql.ErrNoRows {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, err
	}
	return entry, true, nil
}

func (s *SQLStore) Put(bucket, key string, entry Entry) error {
	_, err := s.db.Exec(`
		INSERT INTO cache_entries (bucket, request_key, status, content_type, body, stored_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (bucket, request_key) DO UPDATE SET
			status = excluded.status,
			content_type = excluded.content_type,
			body = excluded.body,
			stored_at = excluded.stored_at`,
		bucket, key, entry.Status, entry.ContentType, entry.Body, entry.StoredAt)
	return err
}

func (s *SQLStore) DeleteBucket(bucket string) error {
	_, err := s.db.Exec("DELETE FROM cache_entries WHERE bucket = ?", bucket)
	return err
}

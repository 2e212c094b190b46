package ports

// BaselineStore persists metric snapshots so later runs can diff against them.
// The backing store (bbolt) is transactional: a crash mid-write must not
// corrupt previously committed data.
type BaselineStore interface {
	// SaveBaseline overwrites the snapshot stored under name.
	SaveBaseline(name string, files map[string][]byte) error

	// LoadBaseline returns the snapshot stored under name, keyed by file
	// path. Returns nil, nil if no snapshot exists.
	LoadBaseline(name string) (map[string][]byte, error)

	// DeleteBaseline removes a snapshot. Idempotent.
	DeleteBaseline(name string) error

	Close() error
}

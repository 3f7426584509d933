package history

import "fmt"

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Backends lists the supported store kinds.
func Backends() []string { return []string{BackendMemory, BackendSQLite} }

// ValidBackend reports whether kind names a supported store.
func ValidBackend(kind string) bool {
	switch kind {
	case BackendMemory, BackendSQLite:
		return true
	}
	return false
}

// NewStore returns an uninitialised store of the given kind.
func NewStore(kind, sqlitePath string) (Store, error) {
	switch kind {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendSQLite:
		return NewSQLiteStore(sqlitePath), nil
	default:
		return nil, fmt.Errorf("unsupported history backend: %s", kind)
	}
}

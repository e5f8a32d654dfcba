package storage

import "log/slog"

// Open returns the KV for the named backend. An unknown name or a backend
// that fails to open degrades to the in-memory store so a storage outage
// never blocks taking orders; the session just loses durability.
func Open(backend, sqlitePath, redisURL string, log *slog.Logger) KV {
	if log == nil {
		log = slog.Default()
	}

	switch backend {
	case "sqlite":
		kv, err := NewSQLite(sqlitePath)
		if err != nil {
			log.Warn("failed to open sqlite storage, using in-memory", "path", sqlitePath, "error", err)
			return NewMemory()
		}
		return kv
	case "redis":
		kv, err := NewRedis(redisURL)
		if err != nil {
			log.Warn("failed to connect to redis storage, using in-memory", "error", err)
			return NewMemory()
		}
		return kv
	case "memory":
		return NewMemory()
	default:
		log.Warn("unknown storage backend, using in-memory", "backend", backend)
		return NewMemory()
	}
}

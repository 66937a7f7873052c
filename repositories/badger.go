package repositories

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// OpenBadger opens the local cache at path. An empty path keeps everything in memory,
// which loses the offline members on restart.
func OpenBadger(path string, log *slog.Logger) (*badger.DB, error) {
	options := badger.DefaultOptions(path).WithLoggingLevel(badger.ERROR)
	if path == "" {
		log.Warn("No cache path configured, offline members will not survive a restart")
		options = badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR)
	}
	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("opening badger at %q: %w", path, err)
	}
	return db, nil
}

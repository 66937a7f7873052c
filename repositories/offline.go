package repositories

import (
	"chat-view/domain"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const offlinePrefix = "offline:"

// OfflineRepository persists the recently-offline members so a restart keeps them.
// Each member is stored under "offline:{name}" with a badger TTL equal to the time
// it has left in the retention window.
type OfflineRepository struct {
	db        *badger.DB
	log       *slog.Logger
	retention time.Duration
	now       func() time.Time
}

func NewOfflineRepository(db *badger.DB, log *slog.Logger, retention time.Duration) OfflineRepository {
	if retention <= 0 {
		retention = domain.OfflineRetention
	}
	return OfflineRepository{db: db, log: log, retention: retention, now: time.Now}
}

// DiskOfflineRecord is the persisted value: {lastSeen, status, externalRef}.
type DiskOfflineRecord struct {
	LastSeen    int64  `json:"lastSeen"`
	Status      string `json:"status"`
	ExternalRef string `json:"externalRef,omitempty"`
}

// Save replaces the whole persisted set with records in a single transaction.
// Records already past the retention window are not written.
func (o OfflineRepository) Save(_ context.Context, records []domain.OfflineMemberRecord) error {
	now := o.now()
	return o.db.Update(func(txn *badger.Txn) error {
		stale, err := keysWithPrefix(txn, offlinePrefix)
		if err != nil {
			return err
		}
		for _, key := range stale {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		for _, r := range records {
			ttl := o.retention - now.Sub(r.LastSeen)
			if r.Name == "" || ttl <= 0 {
				continue
			}
			bytes, err := json.Marshal(fromOfflineRecord(r))
			if err != nil {
				return err
			}
			entry := badger.NewEntry([]byte(offlinePrefix+r.Name), bytes).WithTTL(ttl)
			if err := txn.SetEntry(entry); err != nil {
				return err
			}
		}
		return nil
	})
}

// Load returns every persisted member still inside the retention window.
// An unreadable entry is skipped and logged rather than failing the whole load.
func (o OfflineRepository) Load(_ context.Context) ([]domain.OfflineMemberRecord, error) {
	now := o.now()
	var records []domain.OfflineMemberRecord
	err := o.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(offlinePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			name := strings.TrimPrefix(string(item.Key()), offlinePrefix)
			err := item.Value(func(value []byte) error {
				var disk DiskOfflineRecord
				if err := json.Unmarshal(value, &disk); err != nil {
					o.log.Warn(fmt.Sprintf("Skipping unreadable offline record %q", name), "error", err)
					return nil
				}
				record := toOfflineRecord(name, disk)
				if record.Expired(now, o.retention) {
					return nil
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func keysWithPrefix(txn *badger.Txn, prefix string) ([][]byte, error) {
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	it := txn.NewIterator(options)
	defer it.Close()

	var keys [][]byte
	p := []byte(prefix)
	for it.Seek(p); it.ValidForPrefix(p); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	return keys, nil
}

func fromOfflineRecord(r domain.OfflineMemberRecord) DiskOfflineRecord {
	disk := DiskOfflineRecord{
		LastSeen: r.LastSeen.Unix(),
		Status:   string(r.Kind),
	}
	if r.ExternalRef != nil {
		disk.ExternalRef = r.ExternalRef.String()
	}
	return disk
}

func toOfflineRecord(name string, disk DiskOfflineRecord) domain.OfflineMemberRecord {
	kind := domain.KindOffline
	if disk.Status == string(domain.KindBot) {
		kind = domain.KindBot
	}
	record := domain.OfflineMemberRecord{
		Name:     name,
		LastSeen: time.Unix(disk.LastSeen, 0).UTC(),
		Kind:     kind,
	}
	if parsed, err := uuid.Parse(disk.ExternalRef); err == nil {
		record.ExternalRef = lo.ToPtr(parsed)
	}
	return record
}

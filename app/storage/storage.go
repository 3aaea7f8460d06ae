package storage

// Keys of the independently persisted state blobs. Each blob is written
// through on its own change; there is no cross-key transaction.
const (
	KeySettings        = "settings"
	KeyCellData        = "cell_data"
	KeyWeekAnchor      = "week_anchor"
	KeySelectedDate    = "selected_date"
	KeyDeletedSubjects = "deleted_subjects"
)

// Store persists named JSON text blobs. Get reports ok=false when the key
// has never been written; callers fall back to a per-key default for both
// missing and unparseable values.
type Store interface {
	Get(key string) (value []byte, ok bool, err error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}

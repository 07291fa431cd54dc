package redis

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Longhorn-Developers/UT-Dining-sub000/db"
)

const LAST_QUERY_TIME_KEY_V1 = "last_query_time_v1"
const SETTINGS_KEY_FORMAT_V1 = "settings_v1:%s"
const NOTIFICATIONS_VISITED_KEY_V1 = "notifications_visited_v1"

// Settings names persisted through SetSetting.
const SETTING_DARK_MODE = "dark_mode"
const SETTING_COLLOQUIAL_NAMES = "use_colloquial_names"

// AppStateDAO handles the persisted app state: the sync watermark, user
// settings, and the notification last-visited timestamp. The watermark is
// mutated only by the sync orchestrator.
type AppStateDAO struct {
	client db.KVClient
}

// NewAppStateDAO initializes an AppStateDAO with the KV client.
func NewAppStateDAO(client db.KVClient) *AppStateDAO {
	return &AppStateDAO{client: client}
}

// GetLastSyncTime returns the watermark, with ok=false when the cache has
// never been synced.
func (dao *AppStateDAO) GetLastSyncTime() (time.Time, bool, error) {
	raw, err := dao.client.Get(LAST_QUERY_TIME_KEY_V1)
	if errors.Is(err, db.ErrKeyNotFound) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to get sync watermark: %w", err)
	}
	unix, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("malformed sync watermark %q: %w", raw, err)
	}
	return time.Unix(unix, 0), true, nil
}

// SetLastSyncTime records a successful sync completion instant.
func (dao *AppStateDAO) SetLastSyncTime(t time.Time) error {
	if err := dao.client.Set(LAST_QUERY_TIME_KEY_V1, strconv.FormatInt(t.Unix(), 10)); err != nil {
		return fmt.Errorf("failed to set sync watermark: %w", err)
	}
	return nil
}

// ClearLastSyncTime drops the watermark, forcing the next cadence check to
// treat the cache as never synced.
func (dao *AppStateDAO) ClearLastSyncTime() error {
	return dao.client.Del(LAST_QUERY_TIME_KEY_V1)
}

// GetBoolSetting reads a boolean setting, defaulting to false when unset.
func (dao *AppStateDAO) GetBoolSetting(name string) (bool, error) {
	raw, err := dao.client.Get(fmt.Sprintf(SETTINGS_KEY_FORMAT_V1, name))
	if errors.Is(err, db.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get setting %s: %w", name, err)
	}
	return raw == "true", nil
}

// SetBoolSetting persists a boolean setting.
func (dao *AppStateDAO) SetBoolSetting(name string, value bool) error {
	if err := dao.client.Set(fmt.Sprintf(SETTINGS_KEY_FORMAT_V1, name), strconv.FormatBool(value)); err != nil {
		return fmt.Errorf("failed to set setting %s: %w", name, err)
	}
	return nil
}

// GetNotificationsVisited returns when the user last opened the
// notifications view, ok=false when they never have.
func (dao *AppStateDAO) GetNotificationsVisited() (time.Time, bool, error) {
	raw, err := dao.client.Get(NOTIFICATIONS_VISITED_KEY_V1)
	if errors.Is(err, db.ErrKeyNotFound) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to get notifications visit: %w", err)
	}
	unix, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("malformed notifications visit %q: %w", raw, err)
	}
	return time.Unix(unix, 0), true, nil
}

// SetNotificationsVisited records a notifications view open.
func (dao *AppStateDAO) SetNotificationsVisited(t time.Time) error {
	if err := dao.client.Set(NOTIFICATIONS_VISITED_KEY_V1, strconv.FormatInt(t.Unix(), 10)); err != nil {
		return fmt.Errorf("failed to set notifications visit: %w", err)
	}
	return nil
}

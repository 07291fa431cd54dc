package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Service timezone. Menu dates are keyed in campus time, never device time.
const SERVICE_TIMEZONE = "America/Chicago"

// Sync cadence config
const SYNC_QUIET_PERIOD_HOURS = 6
const SYNC_ROLLOVER_WINDOW_START_MINUTES = 60 // 01:00 campus time
const SYNC_ROLLOVER_WINDOW_END_MINUTES = 70   // 01:10 campus time
const SYNC_PERIODIC_JOB_SCHEDULE_MINUTES = 60
const MANUAL_REFRESH_TIMEOUT_SECONDS = 10

// Chunking config.
// Remote reads: the table API rejects IN-lists past ~1000 ids.
// Local writes: sqlite caps bound parameters per statement at 999, so each
// table's batch size is 999 / column count, rounded down.
const REMOTE_IN_LIST_MAX = 1000
const INSERT_BATCH_LOCATION = 45
const INSERT_BATCH_MENU = 200
const INSERT_BATCH_MENU_CATEGORY = 300
const INSERT_BATCH_FOOD_ITEM = 200
const INSERT_BATCH_NUTRITION = 90
const INSERT_BATCH_ALLERGENS = 70

// Redis Config
const REDIS_DB_ADDRESS_DEFAULT = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Local cache store
const SQLITE_PATH_DEFAULT = "./dining_cache.db"

// Remote table API
const DINING_API_ENDPOINT_BASE_DEFAULT = "https://dining-api.utexas.example/rest/v1"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const LOCATIONS_RESOURCE = "locations.json"
const LOCATION_TYPES_RESOURCE = "location_types.json"
const MENUS_RESOURCE = "menus.json"
const MENU_CATEGORIES_RESOURCE = "menu_categories.json"
const FOOD_ITEMS_RESOURCE = "food_items.json"
const NUTRITION_RESOURCE = "nutrition.json"
const ALLERGENS_RESOURCE = "allergens.json"
const APP_INFO_RESOURCE = "app_info.json"
const NOTIFICATIONS_RESOURCE = "notifications.json"

func init() {
	// Missing .env is fine; the defaults below cover local runs.
	_ = godotenv.Load()
}

// RedisAddress returns the redis address, honoring the REDIS_ADDRESS override.
func RedisAddress() string {
	if addr := os.Getenv("REDIS_ADDRESS"); addr != "" {
		return addr
	}
	return REDIS_DB_ADDRESS_DEFAULT
}

// SQLitePath returns the on-device cache path, honoring SQLITE_PATH.
func SQLitePath() string {
	if p := os.Getenv("SQLITE_PATH"); p != "" {
		return p
	}
	return SQLITE_PATH_DEFAULT
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}

// DiningAPIBase returns the remote table API base URL, honoring DINING_API_BASE.
func DiningAPIBase() string {
	if base := os.Getenv("DINING_API_BASE"); base != "" {
		return base
	}
	return DINING_API_ENDPOINT_BASE_DEFAULT
}

// DiningAPIKey returns the table API key from the environment. Empty means
// the upstream is open (the mock path never needs one).
func DiningAPIKey() string {
	return os.Getenv("DINING_API_KEY")
}

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// schema is the on-device cache layout. The mirror tables (location through
// allergens) are wiped and rebuilt on every successful sync; favorite and
// meal_plan_item are user-owned and never touched by sync.
const schema = `
CREATE TABLE IF NOT EXISTS location (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	colloquial_name TEXT,
	address TEXT,
	description TEXT,
	type_id INTEGER,
	has_menus INTEGER NOT NULL DEFAULT 0,
	latitude REAL,
	longitude REAL,
	apple_maps_link TEXT,
	google_maps_link TEXT,
	service_hours TEXT,
	meal_times TEXT
);
CREATE TABLE IF NOT EXISTS location_type (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS menu (
	id INTEGER PRIMARY KEY,
	location_id TEXT NOT NULL,
	name TEXT NOT NULL,
	date TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS menu_category (
	id INTEGER PRIMARY KEY,
	menu_id INTEGER NOT NULL,
	title TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS food_item (
	id INTEGER PRIMARY KEY,
	category_id INTEGER NOT NULL,
	name TEXT NOT NULL,
	link TEXT
);
CREATE TABLE IF NOT EXISTS nutrition (
	id INTEGER PRIMARY KEY,
	food_item_id INTEGER NOT NULL,
	serving_size TEXT,
	calories TEXT,
	protein TEXT,
	total_carbohydrates TEXT,
	total_fat TEXT,
	sodium TEXT,
	sugars TEXT
);
CREATE TABLE IF NOT EXISTS allergens (
	id INTEGER PRIMARY KEY,
	food_item_id INTEGER NOT NULL,
	beef INTEGER, egg INTEGER, fish INTEGER, milk INTEGER,
	peanuts INTEGER, pork INTEGER, shellfish INTEGER, soy INTEGER,
	tree_nuts INTEGER, wheat INTEGER, sesame INTEGER
);
CREATE TABLE IF NOT EXISTS app_info (
	id INTEGER PRIMARY KEY,
	min_version TEXT,
	banner TEXT,
	updated_at TEXT
);
CREATE TABLE IF NOT EXISTS notification (
	id INTEGER PRIMARY KEY,
	title TEXT NOT NULL,
	body TEXT,
	created_at TEXT
);
CREATE TABLE IF NOT EXISTS favorite (
	id TEXT PRIMARY KEY,
	location_name TEXT NOT NULL,
	menu_name TEXT NOT NULL,
	category_name TEXT NOT NULL,
	item_name TEXT NOT NULL,
	date_added TEXT NOT NULL,
	calories TEXT,
	protein TEXT,
	total_carbohydrates TEXT,
	total_fat TEXT,
	allergen_list TEXT
);
CREATE TABLE IF NOT EXISTS meal_plan_item (
	id TEXT PRIMARY KEY,
	location_name TEXT NOT NULL,
	menu_name TEXT NOT NULL,
	category_name TEXT NOT NULL,
	item_name TEXT NOT NULL,
	date_added TEXT NOT NULL,
	calories TEXT,
	protein TEXT,
	total_carbohydrates TEXT,
	total_fat TEXT,
	allergen_list TEXT
);
CREATE INDEX IF NOT EXISTS idx_menu_location_date ON menu(location_id, date);
CREATE INDEX IF NOT EXISTS idx_menu_category_menu ON menu_category(menu_id);
CREATE INDEX IF NOT EXISTS idx_food_item_category ON food_item(category_id);
CREATE INDEX IF NOT EXISTS idx_nutrition_food_item ON nutrition(food_item_id);
CREATE INDEX IF NOT EXISTS idx_allergens_food_item ON allergens(food_item_id);
`

// OpenSQLite opens (or creates) the on-device cache and applies the schema.
func OpenSQLite(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite cache at %q: %w", path, err)
	}
	// The delete-then-insert replacement relies on one writer at a time.
	conn.SetMaxOpenConns(1)
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to apply cache schema: %w", err)
	}
	return conn, nil
}

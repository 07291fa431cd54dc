package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/Longhorn-Developers/UT-Dining-sub000/config"
	"github.com/Longhorn-Developers/UT-Dining-sub000/models"
	"github.com/Longhorn-Developers/UT-Dining-sub000/models/menu"
	"github.com/Longhorn-Developers/UT-Dining-sub000/util"
)

// mirrorTables are wiped before every replacement, children first so a
// partially applied delete never strands child rows.
var mirrorTables = []string{
	"allergens", "nutrition", "food_item", "menu_category", "menu",
	"location_type", "location", "app_info", "notification",
}

// CacheDAO is the read/write surface over the on-device relational mirror.
// Reads are point lookups and joins; the only writer of the mirror tables is
// the sync orchestrator through ReplaceAll.
type CacheDAO struct {
	db *sql.DB
}

// NewCacheDAO initializes a CacheDAO over an opened sqlite handle.
func NewCacheDAO(db *sql.DB) *CacheDAO {
	return &CacheDAO{db: db}
}

// DB exposes the underlying handle for sibling DAOs sharing the store.
func (dao *CacheDAO) DB() *sql.DB {
	return dao.db
}

// ReplaceAll swaps the entire mirror for the snapshot in one transaction:
// delete-all then chunked bulk inserts. There is no incremental diffing; a
// committed transaction is the only way readers observe new data.
func (dao *CacheDAO) ReplaceAll(ctx context.Context, snap *models.SyncSnapshot) error {
	tx, err := dao.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin replace transaction: %w", err)
	}
	// Defer a rollback in case anything fails.
	defer func() {
		_ = tx.Rollback()
	}()

	for _, table := range mirrorTables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}

	if err := dao.insertLocations(ctx, tx, snap.Locations); err != nil {
		return err
	}
	if err := dao.insertLocationTypes(ctx, tx, snap.LocationTypes); err != nil {
		return err
	}
	if err := dao.insertMenus(ctx, tx, snap.Menus); err != nil {
		return err
	}
	if err := dao.insertCategories(ctx, tx, snap.Categories); err != nil {
		return err
	}
	if err := dao.insertFoodItems(ctx, tx, snap.FoodItems); err != nil {
		return err
	}
	if err := dao.insertNutrition(ctx, tx, snap.Nutrition); err != nil {
		return err
	}
	if err := dao.insertAllergens(ctx, tx, snap.Allergens); err != nil {
		return err
	}
	if err := dao.insertAppInfo(ctx, tx, snap.AppInfo); err != nil {
		return err
	}
	if err := dao.insertNotifications(ctx, tx, snap.Notifications); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cache replacement: %w", err)
	}
	log.Printf("[CacheDAO] Replaced mirror: %d locations, %d menus, %d categories, %d items",
		len(snap.Locations), len(snap.Menus), len(snap.Categories), len(snap.FoodItems))
	return nil
}

// execBatches runs one multi-row INSERT per chunk of rows.
func execBatches(ctx context.Context, tx *sql.Tx, table string, columns []string, rows [][]interface{}, batchSize int) error {
	if len(rows) == 0 {
		return nil
	}
	rowPlaceholder := "(" + strings.TrimSuffix(strings.Repeat("?,", len(columns)), ",") + ")"
	prefix := fmt.Sprintf("INSERT INTO %s (%s) VALUES ", table, strings.Join(columns, ", "))

	for _, batch := range util.Chunk(rows, batchSize) {
		placeholders := make([]string, len(batch))
		args := make([]interface{}, 0, len(batch)*len(columns))
		for i, row := range batch {
			placeholders[i] = rowPlaceholder
			args = append(args, row...)
		}
		if _, err := tx.ExecContext(ctx, prefix+strings.Join(placeholders, ", "), args...); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}
	return nil
}

func (dao *CacheDAO) insertLocations(ctx context.Context, tx *sql.Tx, locations []models.Location) error {
	columns := []string{
		"id", "name", "colloquial_name", "address", "description", "type_id",
		"has_menus", "latitude", "longitude", "apple_maps_link",
		"google_maps_link", "service_hours", "meal_times",
	}
	rows := make([][]interface{}, len(locations))
	for i, l := range locations {
		rows[i] = []interface{}{
			l.ID, l.Name, l.ColloquialName, l.Address, l.Description, l.TypeID,
			l.HasMenus, l.Latitude, l.Longitude, l.AppleMapsLink,
			l.GoogleMapsLink, l.ServiceHours, l.MealTimes,
		}
	}
	return execBatches(ctx, tx, "location", columns, rows, config.INSERT_BATCH_LOCATION)
}

func (dao *CacheDAO) insertLocationTypes(ctx context.Context, tx *sql.Tx, types []models.LocationType) error {
	rows := make([][]interface{}, len(types))
	for i, t := range types {
		rows[i] = []interface{}{t.ID, t.Name}
	}
	return execBatches(ctx, tx, "location_type", []string{"id", "name"}, rows, config.INSERT_BATCH_MENU)
}

func (dao *CacheDAO) insertMenus(ctx context.Context, tx *sql.Tx, menus []menu.Menu) error {
	rows := make([][]interface{}, len(menus))
	for i, m := range menus {
		rows[i] = []interface{}{m.ID, m.LocationID, m.Name, m.Date}
	}
	return execBatches(ctx, tx, "menu", []string{"id", "location_id", "name", "date"}, rows, config.INSERT_BATCH_MENU)
}

func (dao *CacheDAO) insertCategories(ctx context.Context, tx *sql.Tx, categories []menu.MenuCategory) error {
	rows := make([][]interface{}, len(categories))
	for i, c := range categories {
		rows[i] = []interface{}{c.ID, c.MenuID, c.Title}
	}
	return execBatches(ctx, tx, "menu_category", []string{"id", "menu_id", "title"}, rows, config.INSERT_BATCH_MENU_CATEGORY)
}

func (dao *CacheDAO) insertFoodItems(ctx context.Context, tx *sql.Tx, items []menu.FoodItem) error {
	rows := make([][]interface{}, len(items))
	for i, fi := range items {
		rows[i] = []interface{}{fi.ID, fi.CategoryID, fi.Name, fi.Link}
	}
	return execBatches(ctx, tx, "food_item", []string{"id", "category_id", "name", "link"}, rows, config.INSERT_BATCH_FOOD_ITEM)
}

func (dao *CacheDAO) insertNutrition(ctx context.Context, tx *sql.Tx, nutrition []menu.Nutrition) error {
	columns := []string{
		"id", "food_item_id", "serving_size", "calories", "protein",
		"total_carbohydrates", "total_fat", "sodium", "sugars",
	}
	rows := make([][]interface{}, len(nutrition))
	for i, n := range nutrition {
		rows[i] = []interface{}{
			n.ID, n.FoodItemID, n.ServingSize, n.Calories, n.Protein,
			n.TotalCarbohydrates, n.TotalFat, n.Sodium, n.Sugars,
		}
	}
	return execBatches(ctx, tx, "nutrition", columns, rows, config.INSERT_BATCH_NUTRITION)
}

func (dao *CacheDAO) insertAllergens(ctx context.Context, tx *sql.Tx, allergens []menu.Allergens) error {
	columns := []string{
		"id", "food_item_id", "beef", "egg", "fish", "milk", "peanuts",
		"pork", "shellfish", "soy", "tree_nuts", "wheat", "sesame",
	}
	rows := make([][]interface{}, len(allergens))
	for i, a := range allergens {
		rows[i] = []interface{}{
			a.ID, a.FoodItemID, a.Beef, a.Egg, a.Fish, a.Milk, a.Peanuts,
			a.Pork, a.Shellfish, a.Soy, a.TreeNuts, a.Wheat, a.Sesame,
		}
	}
	return execBatches(ctx, tx, "allergens", columns, rows, config.INSERT_BATCH_ALLERGENS)
}

func (dao *CacheDAO) insertAppInfo(ctx context.Context, tx *sql.Tx, info []models.AppInfo) error {
	rows := make([][]interface{}, len(info))
	for i, a := range info {
		rows[i] = []interface{}{a.ID, a.MinVersion, a.Banner, a.UpdatedAt}
	}
	return execBatches(ctx, tx, "app_info", []string{"id", "min_version", "banner", "updated_at"}, rows, config.INSERT_BATCH_MENU)
}

func (dao *CacheDAO) insertNotifications(ctx context.Context, tx *sql.Tx, notifications []models.Notification) error {
	rows := make([][]interface{}, len(notifications))
	for i, n := range notifications {
		rows[i] = []interface{}{n.ID, n.Title, n.Body, n.CreatedAt}
	}
	return execBatches(ctx, tx, "notification", []string{"id", "title", "body", "created_at"}, rows, config.INSERT_BATCH_MENU)
}

// GetMenuNames returns the menu names offered by a location on a date.
// No matching rows is an empty slice, not an error.
func (dao *CacheDAO) GetMenuNames(locationName, date string) ([]string, error) {
	rows, err := dao.db.Query(`
		SELECT m.name
		FROM menu m
		JOIN location l ON l.id = m.location_id
		WHERE l.name = ? AND m.date = ?
		ORDER BY m.id`, locationName, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu names: %w", err)
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

// GetMenuData returns the fully nested menu for one location, menu name and
// date, or nil when no such menu exists in the cache.
func (dao *CacheDAO) GetMenuData(locationName, menuName, date string) (*menu.StructuredLocation, error) {
	rows, err := dao.db.Query(`
		SELECT l.colloquial_name, mc.title, fi.name, fi.link,
			n.id, n.food_item_id, n.serving_size, n.calories, n.protein,
			n.total_carbohydrates, n.total_fat, n.sodium, n.sugars,
			a.id, a.food_item_id, a.beef, a.egg, a.fish, a.milk, a.peanuts,
			a.pork, a.shellfish, a.soy, a.tree_nuts, a.wheat, a.sesame
		FROM location l
		JOIN menu m ON m.location_id = l.id
		JOIN menu_category mc ON mc.menu_id = m.id
		JOIN food_item fi ON fi.category_id = mc.id
		LEFT JOIN nutrition n ON n.food_item_id = fi.id
		LEFT JOIN allergens a ON a.food_item_id = fi.id
		WHERE l.name = ? AND m.name = ? AND m.date = ?
		ORDER BY mc.id, fi.id`, locationName, menuName, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu data: %w", err)
	}
	defer rows.Close()

	result := &menu.StructuredLocation{
		LocationName: locationName,
		MenuName:     menuName,
		Date:         date,
		Categories:   []menu.StructuredCategory{},
	}
	found := false

	for rows.Next() {
		var colloquial sql.NullString
		var categoryTitle string
		item, err := scanStructuredItem(rows, &colloquial, &categoryTitle)
		if err != nil {
			return nil, err
		}
		found = true
		result.ColloquialName = colloquial.String

		if n := len(result.Categories); n == 0 || result.Categories[n-1].Title != categoryTitle {
			result.Categories = append(result.Categories, menu.StructuredCategory{Title: categoryTitle})
		}
		last := &result.Categories[len(result.Categories)-1]
		last.Items = append(last.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return result, nil
}

// GetFoodItem looks up a single item by its display identity
// (location, menu, category, name), taking the most recent menu date.
// Returns nil when no row matches.
func (dao *CacheDAO) GetFoodItem(locationName, menuName, categoryName, itemName string) (*menu.StructuredItem, error) {
	row := dao.db.QueryRow(`
		SELECT l.colloquial_name, mc.title, fi.name, fi.link,
			n.id, n.food_item_id, n.serving_size, n.calories, n.protein,
			n.total_carbohydrates, n.total_fat, n.sodium, n.sugars,
			a.id, a.food_item_id, a.beef, a.egg, a.fish, a.milk, a.peanuts,
			a.pork, a.shellfish, a.soy, a.tree_nuts, a.wheat, a.sesame
		FROM location l
		JOIN menu m ON m.location_id = l.id
		JOIN menu_category mc ON mc.menu_id = m.id
		JOIN food_item fi ON fi.category_id = mc.id
		LEFT JOIN nutrition n ON n.food_item_id = fi.id
		LEFT JOIN allergens a ON a.food_item_id = fi.id
		WHERE l.name = ? AND m.name = ? AND mc.title = ? AND fi.name = ?
		ORDER BY m.date DESC
		LIMIT 1`, locationName, menuName, categoryName, itemName)

	var colloquial sql.NullString
	var categoryTitle string
	item, err := scanStructuredItem(row, &colloquial, &categoryTitle)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query food item: %w", err)
	}
	return &item, nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStructuredItem(row rowScanner, colloquial *sql.NullString, categoryTitle *string) (menu.StructuredItem, error) {
	var item menu.StructuredItem
	var link sql.NullString

	var nID, nFoodItemID sql.NullInt64
	var servingSize, calories, protein, carbs, fat, sodium, sugars sql.NullString

	var aID, aFoodItemID sql.NullInt64
	var beef, egg, fish, milk, peanuts, pork, shellfish, soy, treeNuts, wheat, sesame sql.NullBool

	err := row.Scan(colloquial, categoryTitle, &item.Name, &link,
		&nID, &nFoodItemID, &servingSize, &calories, &protein,
		&carbs, &fat, &sodium, &sugars,
		&aID, &aFoodItemID, &beef, &egg, &fish, &milk, &peanuts,
		&pork, &shellfish, &soy, &treeNuts, &wheat, &sesame)
	if err != nil {
		return item, err
	}

	item.Link = link.String
	if nID.Valid {
		item.Nutrition = &menu.Nutrition{
			ID:                 nID.Int64,
			FoodItemID:         nFoodItemID.Int64,
			ServingSize:        servingSize.String,
			Calories:           calories.String,
			Protein:            protein.String,
			TotalCarbohydrates: carbs.String,
			TotalFat:           fat.String,
			Sodium:             sodium.String,
			Sugars:             sugars.String,
		}
	}
	if aID.Valid {
		item.Allergens = &menu.Allergens{
			ID:         aID.Int64,
			FoodItemID: aFoodItemID.Int64,
			Beef:       beef.Bool,
			Egg:        egg.Bool,
			Fish:       fish.Bool,
			Milk:       milk.Bool,
			Peanuts:    peanuts.Bool,
			Pork:       pork.Bool,
			Shellfish:  shellfish.Bool,
			Soy:        soy.Bool,
			TreeNuts:   treeNuts.Bool,
			Wheat:      wheat.Bool,
			Sesame:     sesame.Bool,
		}
	}
	return item, nil
}

// GetLocation returns the raw location row by name, or nil when absent.
func (dao *CacheDAO) GetLocation(name string) (*models.Location, error) {
	row := dao.db.QueryRow(`
		SELECT id, name, colloquial_name, address, description, type_id,
			has_menus, latitude, longitude, apple_maps_link, google_maps_link,
			service_hours, meal_times
		FROM location WHERE name = ?`, name)
	loc, err := scanLocation(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query location: %w", err)
	}
	return loc, nil
}

// GetLocationDetails returns a location joined with its type name, or nil
// when absent. Used both directly and as the fallback when the joined menu
// query cannot serve.
func (dao *CacheDAO) GetLocationDetails(name string) (*models.LocationWithType, error) {
	row := dao.db.QueryRow(`
		SELECT l.id, l.name, l.colloquial_name, l.address, l.description,
			l.type_id, l.has_menus, l.latitude, l.longitude,
			l.apple_maps_link, l.google_maps_link, l.service_hours,
			l.meal_times, COALESCE(lt.name, '')
		FROM location l
		LEFT JOIN location_type lt ON lt.id = l.type_id
		WHERE l.name = ?`, name)

	var out models.LocationWithType
	loc, err := scanLocationInto(row, &out.TypeName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query location details: %w", err)
	}
	out.Location = *loc
	return &out, nil
}

// GetAllLocationsWithCoordinates returns the map-pin summary for every
// cached location.
func (dao *CacheDAO) GetAllLocationsWithCoordinates() ([]models.LocationSummary, error) {
	rows, err := dao.db.Query(`
		SELECT l.name, l.colloquial_name, COALESCE(lt.name, ''),
			l.latitude, l.longitude
		FROM location l
		LEFT JOIN location_type lt ON lt.id = l.type_id
		ORDER BY l.name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query location summaries: %w", err)
	}
	defer rows.Close()

	var out []models.LocationSummary
	for rows.Next() {
		var s models.LocationSummary
		var colloquial sql.NullString
		if err := rows.Scan(&s.Name, &colloquial, &s.TypeName, &s.Latitude, &s.Longitude); err != nil {
			return nil, err
		}
		s.ColloquialName = colloquial.String
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetAllLocations returns every raw location row.
func (dao *CacheDAO) GetAllLocations() ([]models.Location, error) {
	rows, err := dao.db.Query(`
		SELECT id, name, colloquial_name, address, description, type_id,
			has_menus, latitude, longitude, apple_maps_link, google_maps_link,
			service_hours, meal_times
		FROM location ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	var out []models.Location
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *loc)
	}
	return out, rows.Err()
}

// GetAppInfo returns the most recently updated app metadata row, or nil when
// the cache has never been populated.
func (dao *CacheDAO) GetAppInfo() (*models.AppInfo, error) {
	row := dao.db.QueryRow(`
		SELECT id, min_version, banner, updated_at
		FROM app_info ORDER BY updated_at DESC, id DESC LIMIT 1`)

	var a models.AppInfo
	var minVersion, banner, updatedAt sql.NullString
	err := row.Scan(&a.ID, &minVersion, &banner, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query app info: %w", err)
	}
	a.MinVersion = minVersion.String
	a.Banner = banner.String
	a.UpdatedAt = updatedAt.String
	return &a, nil
}

// GetNotifications returns cached announcements, newest first.
func (dao *CacheDAO) GetNotifications() ([]models.Notification, error) {
	rows, err := dao.db.Query(`
		SELECT id, title, body, created_at
		FROM notification ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var out []models.Notification
	for rows.Next() {
		var n models.Notification
		var body, createdAt sql.NullString
		if err := rows.Scan(&n.ID, &n.Title, &body, &createdAt); err != nil {
			return nil, err
		}
		n.Body = body.String
		n.CreatedAt = createdAt.String
		out = append(out, n)
	}
	return out, rows.Err()
}

func scanLocation(row rowScanner) (*models.Location, error) {
	return scanLocationInto(row, nil)
}

func scanLocationInto(row rowScanner, typeName *string) (*models.Location, error) {
	var l models.Location
	var colloquial, address, description, appleLink, googleLink, serviceHours, mealTimes sql.NullString
	var typeID sql.NullInt64
	var lat, lon sql.NullFloat64

	dest := []interface{}{
		&l.ID, &l.Name, &colloquial, &address, &description, &typeID,
		&l.HasMenus, &lat, &lon, &appleLink, &googleLink, &serviceHours, &mealTimes,
	}
	if typeName != nil {
		dest = append(dest, typeName)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	l.ColloquialName = colloquial.String
	l.Address = address.String
	l.Description = description.String
	l.TypeID = typeID.Int64
	l.Latitude = lat.Float64
	l.Longitude = lon.Float64
	l.AppleMapsLink = appleLink.String
	l.GoogleMapsLink = googleLink.String
	l.ServiceHours = serviceHours.String
	l.MealTimes = mealTimes.String
	return &l, nil
}

package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Longhorn-Developers/UT-Dining-sub000/dao/redis"
	"github.com/Longhorn-Developers/UT-Dining-sub000/dao/sqlite"
	"github.com/Longhorn-Developers/UT-Dining-sub000/db"
	"github.com/Longhorn-Developers/UT-Dining-sub000/models"
	"github.com/Longhorn-Developers/UT-Dining-sub000/models/menu"
	"github.com/Longhorn-Developers/UT-Dining-sub000/util"
)

// apiStub is an in-memory DiningAPI that records call counts per table and
// can be told to fail a given table.
type apiStub struct {
	mu    sync.Mutex
	calls map[string]int
	errs  map[string]error

	locations     []models.Location
	locationTypes []models.LocationType
	menus         []menu.Menu
	categories    []menu.MenuCategory
	foodItems     []menu.FoodItem
	nutrition     []menu.Nutrition
	allergens     []menu.Allergens
	appInfo       []models.AppInfo
	notifications []models.Notification
}

func newAPIStub() *apiStub {
	return &apiStub{
		calls: make(map[string]int),
		errs:  make(map[string]error),
	}
}

func (a *apiStub) record(ctx context.Context, table string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls[table]++
	return a.errs[table]
}

func (a *apiStub) callCount(table string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls[table]
}

func (a *apiStub) SetCredentials(apiKey string) {}

func (a *apiStub) GetLocations(ctx context.Context) ([]models.Location, error) {
	if err := a.record(ctx, "location"); err != nil {
		return nil, err
	}
	return a.locations, nil
}

func (a *apiStub) GetLocationTypes(ctx context.Context) ([]models.LocationType, error) {
	if err := a.record(ctx, "location_type"); err != nil {
		return nil, err
	}
	return a.locationTypes, nil
}

func (a *apiStub) GetMenus(ctx context.Context, date string) ([]menu.Menu, error) {
	if err := a.record(ctx, "menu"); err != nil {
		return nil, err
	}
	var out []menu.Menu
	for _, m := range a.menus {
		if m.Date == date {
			out = append(out, m)
		}
	}
	return out, nil
}

func (a *apiStub) GetMenuCategories(ctx context.Context, menuIDs []int64) ([]menu.MenuCategory, error) {
	if err := a.record(ctx, "menu_category"); err != nil {
		return nil, err
	}
	return a.categories, nil
}

func (a *apiStub) GetFoodItems(ctx context.Context, categoryIDs []int64) ([]menu.FoodItem, error) {
	if err := a.record(ctx, "food_item"); err != nil {
		return nil, err
	}
	return a.foodItems, nil
}

func (a *apiStub) GetNutrition(ctx context.Context, foodItemIDs []int64) ([]menu.Nutrition, error) {
	if err := a.record(ctx, "nutrition"); err != nil {
		return nil, err
	}
	return a.nutrition, nil
}

func (a *apiStub) GetAllergens(ctx context.Context, foodItemIDs []int64) ([]menu.Allergens, error) {
	if err := a.record(ctx, "allergens"); err != nil {
		return nil, err
	}
	return a.allergens, nil
}

func (a *apiStub) GetAppInfo(ctx context.Context) ([]models.AppInfo, error) {
	if err := a.record(ctx, "app_information"); err != nil {
		return nil, err
	}
	return a.appInfo, nil
}

func (a *apiStub) GetNotifications(ctx context.Context) ([]models.Notification, error) {
	if err := a.record(ctx, "notifications"); err != nil {
		return nil, err
	}
	return a.notifications, nil
}

// campusTime builds an instant with the given wall clock in service time.
func campusTime(day, hour, minute int) time.Time {
	return time.Date(2025, time.January, day, hour, minute, 0, 0, util.ServiceLocation())
}

type syncFixture struct {
	stub  *apiStub
	cache *sqlite.CacheDAO
	state *redis.AppStateDAO
	sync  *SyncService
}

// newSyncFixture wires a SyncService over an in-memory cache and KV store.
// The clock is fixed at noon on Monday 2025-01-06 unless overridden.
func newSyncFixture(t *testing.T, stub *apiStub, instant time.Time) *syncFixture {
	t.Helper()
	conn, err := db.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("Expected in-memory cache to open, got %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	cache := sqlite.NewCacheDAO(conn)
	state := redis.NewAppStateDAO(db.NewMockKVClient(context.Background()))
	clock := &util.FixedClock{Instant: instant}
	return &syncFixture{
		stub:  stub,
		cache: cache,
		state: state,
		sync:  NewSyncService(stub, cache, state, clock),
	}
}

// seededStub returns a stub holding one location with a full menu cascade
// dated Monday 2025-01-06.
func seededStub() *apiStub {
	stub := newAPIStub()
	stub.locations = []models.Location{
		{ID: "loc-j2", Name: "J2 Dining", TypeID: 1, HasMenus: true},
	}
	stub.locationTypes = []models.LocationType{{ID: 1, Name: "Dining Hall"}}
	stub.menus = []menu.Menu{{ID: 101, LocationID: "loc-j2", Name: "Lunch", Date: "2025-01-06"}}
	stub.categories = []menu.MenuCategory{{ID: 201, MenuID: 101, Title: "Entrees"}}
	stub.foodItems = []menu.FoodItem{{ID: 301, CategoryID: 201, Name: "Tacos"}}
	stub.nutrition = []menu.Nutrition{{ID: 401, FoodItemID: 301, Calories: "640"}}
	stub.allergens = []menu.Allergens{{ID: 501, FoodItemID: 301, Beef: true}}
	stub.appInfo = []models.AppInfo{{ID: 1, MinVersion: "2.3.0"}}
	stub.notifications = []models.Notification{{ID: 601, Title: "J2 closes early Friday"}}
	return stub
}

func TestSyncService_Sync_PopulatesCacheAndWatermark(t *testing.T) {
	instant := campusTime(6, 12, 0)
	f := newSyncFixture(t, seededStub(), instant)

	if err := f.sync.Sync(context.Background(), false); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	names, err := f.cache.GetMenuNames("J2 Dining", "2025-01-06")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(names) != 1 || names[0] != "Lunch" {
		t.Errorf("Expected [Lunch], got %v", names)
	}

	item, err := f.cache.GetFoodItem("J2 Dining", "Lunch", "Entrees", "Tacos")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if item == nil || item.Nutrition == nil || item.Nutrition.Calories != "640" {
		t.Errorf("Expected the cascade to land, got %+v", item)
	}

	info, err := f.cache.GetAppInfo()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if info == nil || info.MinVersion != "2.3.0" {
		t.Errorf("Expected app info to land, got %+v", info)
	}
	notifications, err := f.cache.GetNotifications()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(notifications) != 1 || notifications[0].Title != "J2 closes early Friday" {
		t.Errorf("Expected notifications to land, got %+v", notifications)
	}

	last, ok, err := f.state.GetLastSyncTime()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !ok {
		t.Fatal("Expected the watermark to be set")
	}
	if !last.Equal(instant.Truncate(time.Second)) {
		t.Errorf("Expected watermark %v, got %v", instant, last)
	}
}

func TestSyncService_Sync_NoMenusShortCircuits(t *testing.T) {
	stub := seededStub()
	stub.menus = nil
	f := newSyncFixture(t, stub, campusTime(6, 12, 0))

	if err := f.sync.Sync(context.Background(), false); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Base tables landed, no child fetch was attempted.
	loc, err := f.cache.GetLocation("J2 Dining")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if loc == nil {
		t.Error("Expected the location to be cached")
	}
	if got := f.stub.callCount("menu_category"); got != 0 {
		t.Errorf("Expected no category fetch, got %d", got)
	}

	// A menu-less day is still a successful sync.
	if _, ok, _ := f.state.GetLastSyncTime(); !ok {
		t.Error("Expected the watermark to advance")
	}
}

func TestSyncService_Sync_FetchFailureKeepsCacheAndWatermark(t *testing.T) {
	stub := seededStub()
	f := newSyncFixture(t, stub, campusTime(6, 12, 0))
	if err := f.sync.Sync(context.Background(), false); err != nil {
		t.Fatalf("Expected the first sync to succeed, got %v", err)
	}
	before, _, err := f.state.GetLastSyncTime()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// A later forced refresh fails mid-cascade.
	stub.errs["food_item"] = errors.New("upstream down")
	later := NewSyncService(stub, f.cache, f.state, &util.FixedClock{Instant: campusTime(6, 20, 0)})
	if err := later.Sync(context.Background(), true); err == nil {
		t.Fatal("Expected the failed refresh to return an error")
	}

	// Cache still serves the previous snapshot.
	item, err := f.cache.GetFoodItem("J2 Dining", "Lunch", "Entrees", "Tacos")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if item == nil {
		t.Error("Expected the cached item to survive the failed refresh")
	}

	// Watermark did not move.
	after, ok, err := f.state.GetLastSyncTime()
	if err != nil || !ok {
		t.Fatalf("Expected the watermark to still exist, got ok=%v err=%v", ok, err)
	}
	if !after.Equal(before) {
		t.Errorf("Expected watermark %v, got %v", before, after)
	}
}

func TestSyncService_Sync_NotDueServesCache(t *testing.T) {
	stub := seededStub()
	f := newSyncFixture(t, stub, campusTime(6, 12, 0))
	if err := f.sync.Sync(context.Background(), false); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Three hours later the quiet period has not elapsed.
	soon := NewSyncService(stub, f.cache, f.state, &util.FixedClock{Instant: campusTime(6, 15, 0)})
	if err := soon.Sync(context.Background(), false); err != nil {
		t.Fatalf("Expected a skipped refresh to be nil, got %v", err)
	}
	if got := stub.callCount("location"); got != 1 {
		t.Errorf("Expected no second fetch, got %d location calls", got)
	}

	// Seven hours later it has.
	stale := NewSyncService(stub, f.cache, f.state, &util.FixedClock{Instant: campusTime(6, 19, 30)})
	if err := stale.Sync(context.Background(), false); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got := stub.callCount("location"); got != 2 {
		t.Errorf("Expected a second fetch, got %d location calls", got)
	}
}

func TestSyncService_Sync_CancelledContext(t *testing.T) {
	f := newSyncFixture(t, seededStub(), campusTime(6, 12, 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := f.sync.Sync(ctx, true); err == nil {
		t.Fatal("Expected a cancelled refresh to return an error")
	}
	if _, ok, _ := f.state.GetLastSyncTime(); ok {
		t.Error("Expected no watermark after a cancelled refresh")
	}
}

func TestSyncService_ShouldSync(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		lastSync time.Time // zero means never synced
		force    bool
		want     bool
	}{
		{"Never synced", campusTime(6, 12, 0), time.Time{}, false, true},
		{"Quiet period not elapsed", campusTime(6, 12, 0), campusTime(6, 9, 0), false, false},
		{"Quiet period elapsed", campusTime(6, 12, 0), campusTime(6, 5, 30), false, true},
		{"Forced inside quiet period", campusTime(6, 12, 0), campusTime(6, 11, 0), true, true},
		{"Rollover window suppresses", campusTime(6, 1, 5), time.Time{}, false, false},
		{"Rollover window suppresses even forced", campusTime(6, 1, 5), campusTime(5, 1, 0), true, false},
		{"Just before the window", campusTime(6, 0, 59), time.Time{}, false, true},
		{"Just after the window", campusTime(6, 1, 10), time.Time{}, false, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newSyncFixture(t, newAPIStub(), test.now)
			if !test.lastSync.IsZero() {
				if err := f.state.SetLastSyncTime(test.lastSync); err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
			}
			if got := f.sync.ShouldSync(test.force); got != test.want {
				t.Errorf("ShouldSync(force=%v) at %v = %v, want %v", test.force, test.now, got, test.want)
			}
		})
	}
}

func TestSyncService_TimeSinceLastSync(t *testing.T) {
	f := newSyncFixture(t, newAPIStub(), campusTime(6, 12, 0))

	_, ok, err := f.sync.TimeSinceLastSync()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ok {
		t.Fatal("Expected ok=false before the first sync")
	}

	if err := f.state.SetLastSyncTime(campusTime(6, 10, 0)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	elapsed, ok, err := f.sync.TimeSinceLastSync()
	if err != nil || !ok {
		t.Fatalf("Expected a staleness reading, got ok=%v err=%v", ok, err)
	}
	if elapsed != 2*time.Hour {
		t.Errorf("Expected 2h staleness, got %v", elapsed)
	}
}

func TestFetchChunked(t *testing.T) {
	ids := make([]int64, 250)
	for i := range ids {
		ids[i] = int64(i)
	}

	var mu sync.Mutex
	calls := 0
	fetch := func(ctx context.Context, chunk []int64) ([]int64, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		if len(chunk) > 100 {
			t.Errorf("Chunk exceeds the in-list cap: %d ids", len(chunk))
		}
		return chunk, nil
	}

	rows, err := fetchChunked(context.Background(), "food_item", ids, 100, fetch)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(rows) != 250 {
		t.Errorf("Expected 250 rows, got %d", len(rows))
	}
	if calls != 3 {
		t.Errorf("Expected 3 chunk fetches, got %d", calls)
	}
	// Chunk results land in request order.
	for i, v := range rows {
		if v != int64(i) {
			t.Fatalf("Order not preserved at index %d: got %d", i, v)
		}
	}
}

func TestFetchChunked_OneFailingChunkFailsAll(t *testing.T) {
	ids := make([]int64, 30)
	fetch := func(ctx context.Context, chunk []int64) ([]int64, error) {
		return nil, errors.New("boom")
	}

	if _, err := fetchChunked(context.Background(), "nutrition", ids, 10, fetch); err == nil {
		t.Fatal("Expected an error when a chunk fails")
	}
}

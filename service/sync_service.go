package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Longhorn-Developers/UT-Dining-sub000/api/dining"
	"github.com/Longhorn-Developers/UT-Dining-sub000/config"
	redisdao "github.com/Longhorn-Developers/UT-Dining-sub000/dao/redis"
	"github.com/Longhorn-Developers/UT-Dining-sub000/dao/sqlite"
	"github.com/Longhorn-Developers/UT-Dining-sub000/models"
	"github.com/Longhorn-Developers/UT-Dining-sub000/util"
)

// SyncService refreshes the local cache from the remote table API. A
// refresh either lands completely (fetch everything, replace the mirror in
// one transaction, advance the watermark) or leaves cache and watermark
// untouched.
type SyncService struct {
	diningAPI dining.DiningAPI
	cache     *sqlite.CacheDAO
	state     *redisdao.AppStateDAO
	clock     util.Clock
}

// NewSyncService constructs a SyncService with its dependencies.
func NewSyncService(
	diningAPI dining.DiningAPI,
	cache *sqlite.CacheDAO,
	state *redisdao.AppStateDAO,
	clock util.Clock,
) *SyncService {
	return &SyncService{
		diningAPI: diningAPI,
		cache:     cache,
		state:     state,
		clock:     clock,
	}
}

// inRolloverWindow reports whether now falls in the early-morning window
// where the upstream data job rebuilds its tables. Refreshing then races
// the rebuild, so all refreshes are suppressed, forced ones included.
func inRolloverWindow(now time.Time) bool {
	m := now.Hour()*60 + now.Minute()
	return m >= config.SYNC_ROLLOVER_WINDOW_START_MINUTES && m < config.SYNC_ROLLOVER_WINDOW_END_MINUTES
}

// ShouldSync decides whether a refresh is due: forced, never synced, or
// quiet period elapsed, unless the rollover window suppresses it.
func (s *SyncService) ShouldSync(force bool) bool {
	now := s.clock.Now().In(util.ServiceLocation())
	if inRolloverWindow(now) {
		log.Println("[SyncService] Inside the rollover maintenance window, suppressing refresh.")
		return false
	}
	if force {
		return true
	}
	last, ok, err := s.state.GetLastSyncTime()
	if err != nil {
		log.Printf("[SyncService] Could not read watermark, refreshing anyway: %v", err)
		return true
	}
	if !ok {
		return true
	}
	return now.Sub(last) > config.SYNC_QUIET_PERIOD_HOURS*time.Hour
}

// Sync performs one refresh cycle. The context is honored throughout, so a
// caller abandoning the refresh (manual-refresh timeout) cancels the
// in-flight fetches instead of letting them write later.
func (s *SyncService) Sync(ctx context.Context, force bool) error {
	if !s.ShouldSync(force) {
		log.Println("[SyncService] Refresh not due; serving cached data.")
		return nil
	}

	snap, err := s.fetchSnapshot(ctx)
	if err != nil {
		log.Printf("[SyncService] Fetch failed, keeping cache and watermark: %v", err)
		return err
	}

	if err := s.cache.ReplaceAll(ctx, snap); err != nil {
		log.Printf("[SyncService] Cache replacement failed: %v", err)
		return err
	}
	if err := s.state.SetLastSyncTime(s.clock.Now()); err != nil {
		log.Printf("[SyncService] Could not advance watermark: %v", err)
		return err
	}
	log.Println("[SyncService] Refresh completed successfully.")
	return nil
}

// fetchSnapshot pulls the full remote dataset: one parallel batch for the
// base tables, then the id-driven child cascade. Each cascade stage
// short-circuits to a well-formed partial snapshot when it comes back
// empty (no menus published yet, a menu with no categories, ...).
func (s *SyncService) fetchSnapshot(ctx context.Context) (*models.SyncSnapshot, error) {
	snap := &models.SyncSnapshot{}
	today := util.Today(s.clock)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.diningAPI.GetLocations(gctx)
		if err != nil {
			return fmt.Errorf("location: %w", err)
		}
		snap.Locations = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.diningAPI.GetLocationTypes(gctx)
		if err != nil {
			return fmt.Errorf("location_type: %w", err)
		}
		snap.LocationTypes = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.diningAPI.GetMenus(gctx, today)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		snap.Menus = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.diningAPI.GetAppInfo(gctx)
		if err != nil {
			return fmt.Errorf("app_information: %w", err)
		}
		snap.AppInfo = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.diningAPI.GetNotifications(gctx)
		if err != nil {
			return fmt.Errorf("notifications: %w", err)
		}
		snap.Notifications = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(snap.Menus) == 0 {
		log.Printf("[SyncService] No menus published for %s; persisting base tables only.", today)
		return snap, nil
	}

	menuIDs := make([]int64, len(snap.Menus))
	for i, m := range snap.Menus {
		menuIDs[i] = m.ID
	}
	categories, err := fetchChunked(ctx, "menu_category", menuIDs, config.REMOTE_IN_LIST_MAX, s.diningAPI.GetMenuCategories)
	if err != nil {
		return nil, err
	}
	snap.Categories = categories
	if len(categories) == 0 {
		return snap, nil
	}

	categoryIDs := make([]int64, len(categories))
	for i, c := range categories {
		categoryIDs[i] = c.ID
	}
	foodItems, err := fetchChunked(ctx, "food_item", categoryIDs, config.REMOTE_IN_LIST_MAX, s.diningAPI.GetFoodItems)
	if err != nil {
		return nil, err
	}
	snap.FoodItems = foodItems
	if len(foodItems) == 0 {
		return snap, nil
	}

	foodItemIDs := make([]int64, len(foodItems))
	for i, fi := range foodItems {
		foodItemIDs[i] = fi.ID
	}
	g2, gctx2 := errgroup.WithContext(ctx)
	g2.Go(func() error {
		rows, err := fetchChunked(gctx2, "nutrition", foodItemIDs, config.REMOTE_IN_LIST_MAX, s.diningAPI.GetNutrition)
		if err != nil {
			return err
		}
		snap.Nutrition = rows
		return nil
	})
	g2.Go(func() error {
		rows, err := fetchChunked(gctx2, "allergens", foodItemIDs, config.REMOTE_IN_LIST_MAX, s.diningAPI.GetAllergens)
		if err != nil {
			return err
		}
		snap.Allergens = rows
		return nil
	})
	if err := g2.Wait(); err != nil {
		return nil, err
	}

	return snap, nil
}

// fetchChunked splits an id list into IN-list-sized batches and fetches
// them concurrently. One failing chunk fails the whole phase; the error
// names the table for the logs.
func fetchChunked[T any](ctx context.Context, table string, ids []int64, chunkSize int, fetch func(context.Context, []int64) ([]T, error)) ([]T, error) {
	chunks := util.Chunk(ids, chunkSize)
	results := make([][]T, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			rows, err := fetch(gctx, chunk)
			if err != nil {
				return fmt.Errorf("%s: %w", table, err)
			}
			results[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []T
	for _, rows := range results {
		out = append(out, rows...)
	}
	return out, nil
}

// TimeSinceLastSync reports how stale the cache is; ok=false before the
// first successful sync.
func (s *SyncService) TimeSinceLastSync() (time.Duration, bool, error) {
	last, ok, err := s.state.GetLastSyncTime()
	if err != nil || !ok {
		return 0, ok, err
	}
	return s.clock.Now().Sub(last), true, nil
}

// StartPeriodicJob launches the background refresh loop at the given interval.
func (s *SyncService) StartPeriodicJob(interval time.Duration) {
	go s.startPeriodicJob(interval)
}

func (s *SyncService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[SyncService] Running periodic dining refresh job.")
		if err := s.Sync(context.Background(), false); err != nil {
			log.Printf("[SyncService] Periodic refresh returned error: %v", err)
		}
	}
}

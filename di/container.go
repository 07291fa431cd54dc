package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"github.com/Longhorn-Developers/UT-Dining-sub000/api"
	"github.com/Longhorn-Developers/UT-Dining-sub000/api/dining"
	"github.com/Longhorn-Developers/UT-Dining-sub000/config"
	redisdao "github.com/Longhorn-Developers/UT-Dining-sub000/dao/redis"
	"github.com/Longhorn-Developers/UT-Dining-sub000/dao/sqlite"
	"github.com/Longhorn-Developers/UT-Dining-sub000/db"
	"github.com/Longhorn-Developers/UT-Dining-sub000/server"
	"github.com/Longhorn-Developers/UT-Dining-sub000/server/handlers"
	services "github.com/Longhorn-Developers/UT-Dining-sub000/service"
	"github.com/Longhorn-Developers/UT-Dining-sub000/util"
)

// Container holds all application dependencies.
type Container struct {
	KVClient         db.KVClient
	AppStateDao      *redisdao.AppStateDAO
	CacheDao         *sqlite.CacheDAO
	FavoritesDao     *sqlite.FavoritesDAO
	DiningAPI        dining.DiningAPI
	Clock            util.Clock
	MenuService      *services.MenuService
	StatusService    *services.StatusService
	UserService      *services.UserService
	SyncService      *services.SyncService
	LocationHandler  *handlers.LocationHandler
	MenuHandler      *handlers.MenuHandler
	SyncHandler      *handlers.SyncHandler
	UserHandler      *handlers.UserHandler
	MuxRouter        *mux.Router
	Router           *server.Router
	DiningHttpServer *server.DiningHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// App-state KV store: the real redis in prod, in-memory otherwise.
	var kvClient db.KVClient
	if env != "prod" {
		kvClient = db.NewMockKVClient(ctx)
		log.Printf("Using in-memory app-state store")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.RedisAddress(),
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		kvClient = db.NewRedisKVClient(ctx, redisInternalClient)
		if err := kvClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
	}

	appStateDao := redisdao.NewAppStateDAO(kvClient)

	// Local relational cache
	sqliteDB, err := db.OpenSQLite(config.SQLitePath())
	if err != nil {
		panic(fmt.Sprintf("Failed to open local cache: %v", err))
	}
	cacheDao := sqlite.NewCacheDAO(sqliteDB)
	favoritesDao := sqlite.NewFavoritesDAO(sqliteDB)

	// Remote table API - fixture-backed mock outside prod
	var diningAPI dining.DiningAPI
	if env != "prod" {
		diningAPI = dining.NewDiningApiClientMock()
		log.Printf("Using mock dining api")
	} else {
		log.Printf("Using prod dining api")
		httpClient := api.NewHTTPClient(config.DiningAPIBase())
		client := dining.NewDiningApiClient(httpClient)
		client.SetCredentials(config.DiningAPIKey())
		diningAPI = client
	}

	clock := util.NewServiceClock()

	// Service layer
	menuService := services.NewMenuService(cacheDao, appStateDao, clock)
	statusService := services.NewStatusService(cacheDao, clock)
	userService := services.NewUserService(favoritesDao, cacheDao, appStateDao, clock)
	syncService := services.NewSyncService(diningAPI, cacheDao, appStateDao, clock)

	// Handlers
	locationHandler := handlers.NewLocationHandler(menuService, statusService)
	menuHandler := handlers.NewMenuHandler(menuService)
	syncHandler := handlers.NewSyncHandler(syncService)
	userHandler := handlers.NewUserHandler(userService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(locationHandler, menuHandler, syncHandler, userHandler, muxRouter)

	// initialize dining server
	diningHttpServer := server.NewDiningHttpServer(router, muxRouter)

	return &Container{
		KVClient:         kvClient,
		AppStateDao:      appStateDao,
		CacheDao:         cacheDao,
		FavoritesDao:     favoritesDao,
		DiningAPI:        diningAPI,
		Clock:            clock,
		MenuService:      menuService,
		StatusService:    statusService,
		UserService:      userService,
		SyncService:      syncService,
		LocationHandler:  locationHandler,
		MenuHandler:      menuHandler,
		SyncHandler:      syncHandler,
		UserHandler:      userHandler,
		MuxRouter:        muxRouter,
		Router:           router,
		DiningHttpServer: diningHttpServer,
	}
}

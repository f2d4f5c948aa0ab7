package di

import (
	"campus-llm/backend/ai"
	"campus-llm/backend/internal/service"
	"campus-llm/backend/internal/store"
	"campus-llm/backend/pkg/cache"
	"campus-llm/backend/pkg/config"
	"campus-llm/backend/pkg/logger"

	"gorm.io/gorm"
)

// Container holds all the dependencies for the application
type Container struct {
	DB                 *gorm.DB
	Logger             *logger.Logger
	Store              *store.MemoryStore
	Cache              *cache.Cache
	Gateway            *ai.Gateway
	UserService        *service.UserService
	EventService       *service.EventService
	PrizeService       *service.PrizeService
	LeaderboardService *service.LeaderboardService
	WaitlistService    *service.WaitlistService
}

// New creates a new dependency injection container. db may be nil, in
// which case the waitlist runs on the in-memory store alongside the
// other collections.
func New(cfg *config.Config, db *gorm.DB, log *logger.Logger) *Container {
	if log == nil {
		log = logger.New(logger.DefaultConfig())
	}

	memory := store.NewMemoryStore()

	// The waitlist is the one persisted collection: it outlives the
	// seeded demo records when a database is configured.
	var waitlist store.WaitlistStore = memory
	if db != nil {
		waitlist = store.NewWaitlistDB(db)
	}

	readCache := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.TTL)

	gateway := ai.NewGateway(ai.GatewayConfig{
		Endpoint: cfg.Llama.Endpoint,
		APIKey:   cfg.Llama.APIKey,
		Timeout:  cfg.Llama.Timeout,
	}, log)

	return &Container{
		DB:                 db,
		Logger:             log,
		Store:              memory,
		Cache:              readCache,
		Gateway:            gateway,
		UserService:        service.NewUserService(memory, readCache),
		EventService:       service.NewEventService(memory, readCache),
		PrizeService:       service.NewPrizeService(memory, readCache),
		LeaderboardService: service.NewLeaderboardService(memory, readCache),
		WaitlistService:    service.NewWaitlistService(waitlist),
	}
}

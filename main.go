package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Jordan10001/soramatcha-admin/configs"
	"github.com/Jordan10001/soramatcha-admin/pkg/changes"
	"github.com/Jordan10001/soramatcha-admin/pkg/sessionstore"
	"github.com/Jordan10001/soramatcha-admin/repository"
	"github.com/Jordan10001/soramatcha-admin/routes"
	"github.com/Jordan10001/soramatcha-admin/services"
	"github.com/Jordan10001/soramatcha-admin/storage"
	"github.com/Jordan10001/soramatcha-admin/ws"
)

func main() {
	cfg := configs.LoadConfig()

	// Row gateway. Missing config degrades to "not configured" answers
	// instead of refusing to boot.
	db, err := configs.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if db == nil {
		log.Println("DB_SOURCE not set: running without the row gateway")
	} else {
		if err := configs.SetupDatabase(db); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		if err := configs.SeedAdmin(db, cfg); err != nil {
			log.Fatalf("seed admin: %v", err)
		}
	}

	// Object gateway.
	var store storage.ObjectStore = storage.Unconfigured{}
	if cfg.StorageConfigured() {
		minioStore, err := storage.NewMinioStore(cfg)
		if err != nil {
			log.Fatalf("minio: %v", err)
		}
		if err := minioStore.EnsureBuckets(context.Background()); err != nil {
			log.Fatalf("minio buckets: %v", err)
		}
		store = minioStore
	} else {
		log.Println("MinIO not configured: image operations will report not configured")
	}

	// Session store: Redis when configured, single-process memory otherwise.
	var sessions sessionstore.Store = sessionstore.NewMemoryStore()
	if cfg.Redis.Addr != "" {
		redisStore, err := sessionstore.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		sessions = redisStore
	}

	bus := changes.NewBus()
	defer bus.Close()

	var (
		categoryRepo *repository.CategoryRepository
		menuRepo     *repository.MenuRepository
		eventRepo    *repository.EventRepository
		adminRepo    *repository.AdminRepository
	)
	if db != nil {
		categoryRepo = repository.NewCategoryRepository(db)
		menuRepo = repository.NewMenuRepository(db)
		eventRepo = repository.NewEventRepository(db)
		adminRepo = repository.NewAdminRepository(db)
	}

	hub := ws.NewChangeHub(bus)
	go hub.Run()

	svc := routes.Services{
		Auth:       services.NewAuthService(adminRepo, sessions, cfg.JWTSecret, cfg.JWTTTL),
		Categories: services.NewCategoryService(categoryRepo, menuRepo, store, bus),
		Menus:      services.NewMenuService(menuRepo, store, bus),
		Events:     services.NewEventService(eventRepo, store, bus),
		Uploads:    services.NewUploadService(store),
		ChangeHub:  hub,
	}

	r := gin.Default()
	routes.RegisterRoutes(r, cfg, svc)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/scholarstream/api/internal/config"
	"github.com/scholarstream/api/internal/database"
	"github.com/scholarstream/api/internal/handler"
	"github.com/scholarstream/api/internal/middleware"
	"github.com/scholarstream/api/internal/queue"
	"github.com/scholarstream/api/internal/repository"
	"github.com/scholarstream/api/internal/role"
	"github.com/scholarstream/api/internal/router"
)

func main() {
	// .env is a dev convenience; absence is fine in prod.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; role cache, response cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	scholarships := repository.NewScholarshipRepo(db)
	applications := repository.NewApplicationRepo(db)
	reviews := repository.NewReviewRepo(db)
	stats := repository.NewStatsRepo(db)

	roles := role.NewResolver(users, rdb, cfg.RoleCacheTTL)

	// Audit consumer tails role.changed and application.submitted.
	go func() {
		if err := queue.StartAuditConsumer(); err != nil {
			log.Printf("audit consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	jwtAuth := middleware.JWTAuth(cfg.JWTSecret)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens, roles), jwtAuth)
	router.RegisterPublic(e, handler.NewCatalogHandler(scholarships),
		middleware.RateLimit(config.LoadRateLimitConfig(), rdb),
		middleware.ResponseCache(config.LoadCacheConfig(), rdb),
	)
	router.Dashboard{
		JWTAuth:  jwtAuth,
		Roles:    roles,
		Nav:      handler.NewNavHandler(roles),
		Students: handler.NewStudentHandler(scholarships, applications, reviews),
		Mods:     handler.NewModeratorHandler(applications, reviews),
		Users:    handler.NewAdminUserHandler(users, tokens, roles),
		Catalog:  handler.NewScholarshipAdminHandler(scholarships),
		Stats:    handler.NewAdminStatsHandler(stats),
	}.Register(e)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

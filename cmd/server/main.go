package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/cycy2xxx/vulnerable-app/internal/config"
	"github.com/cycy2xxx/vulnerable-app/internal/database"
	"github.com/cycy2xxx/vulnerable-app/internal/handler"
	"github.com/cycy2xxx/vulnerable-app/internal/middleware"
	"github.com/cycy2xxx/vulnerable-app/internal/queue"
	"github.com/cycy2xxx/vulnerable-app/internal/repository"
	"github.com/cycy2xxx/vulnerable-app/internal/router"
	"github.com/cycy2xxx/vulnerable-app/internal/session"
)

func main() {
	_ = godotenv.Load() // .env is optional; defaults cover everything
	cfg := config.Load()

	store := database.New(cfg.DBPath)
	if err := store.Init(context.Background()); err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Session store: in-process by default, Redis when configured and
	// reachable, silently back to in-process when it is not.
	var sessions session.Store = session.NewMemoryStore()
	if cfg.UseRedis {
		if client := config.NewRedisClient(); client != nil {
			sessions = session.NewRedisStore(client)
			log.Print("sessions: using redis backend")
		} else {
			log.Print("sessions: redis unreachable, using memory backend")
		}
	}

	// Attack telemetry is optional; without a broker the publisher is
	// nil and the consumer never starts.
	pub := queue.NewPublisher(cfg.AMQPURL)
	if cfg.AMQPURL != "" {
		go queue.StartSecurityConsumer(cfg.AMQPURL)
	}

	users := repository.NewUserRepo(store)
	posts := repository.NewPostRepo(store)
	unsafe := repository.NewUnsafeUserQuery(store)

	e := echo.New()
	e.Debug = cfg.Debug // verbose error responses, part of the exercise
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(middleware.WithSession(sessions))
	e.Use(middleware.AuditTrail(pub))

	router.RegisterRoutes(e, router.Handlers{
		Home:      handler.NewHomeHandler(store, sessions),
		Auth:      handler.NewAuthHandler(users, sessions),
		XSS:       &handler.XSSHandler{},
		SQLi:      handler.NewSQLiHandler(unsafe),
		CSRF:      handler.NewCSRFHandler(sessions),
		WeakAuth:  handler.NewWeakAuthHandler(users, sessions),
		Exposure:  handler.NewExposureHandler(users),
		Cmdi:      &handler.CmdiHandler{},
		Misconfig: handler.NewMisconfigHandler(cfg),
		Traversal: handler.NewTraversalHandler(cfg),
		Access:    handler.NewAccessHandler(users, posts),
		Redirect:  &handler.RedirectHandler{},
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, debug=%v); intentionally vulnerable, keep off public networks", addr, cfg.Env, cfg.Debug)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

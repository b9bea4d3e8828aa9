package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Abubakar-88/jugjiggasha/internal/api"
	"github.com/Abubakar-88/jugjiggasha/internal/api/handlers"
	"github.com/Abubakar-88/jugjiggasha/internal/apiclient"
	"github.com/Abubakar-88/jugjiggasha/internal/config"
	"github.com/Abubakar-88/jugjiggasha/internal/database"
	"github.com/Abubakar-88/jugjiggasha/internal/logger"
	"github.com/Abubakar-88/jugjiggasha/internal/notify"
	"github.com/Abubakar-88/jugjiggasha/internal/offline"
	"github.com/Abubakar-88/jugjiggasha/internal/services"
	"github.com/Abubakar-88/jugjiggasha/internal/websocket"
	"github.com/Abubakar-88/jugjiggasha/internal/zakat"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.Timezone).Msg("Failed to load timezone")
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Set up the offline cache engine over durable storage
	engine := offline.NewEngine(offline.NewSQLStore(db), cfg.CacheVersion)
	engine.Install()
	fallback, err := handlers.OfflineDocument()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load offline fallback document")
	}
	if err := engine.Precache(offline.OfflineFallbackKey, fallback); err != nil {
		log.Error().Err(err).Msg("Failed to precache offline fallback document")
	}
	if err := engine.Activate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to activate cache engine")
	}

	// Set up WebSocket Hub
	hub := websocket.NewHub()
	go hub.Run()

	// Set up the upstream API client
	upstream := apiclient.New(cfg.UpstreamAPIURL, cfg.APICacheTTL)

	// Set up services
	eventService := services.NewEventService(db)
	adminService := services.NewAdminService(db)
	scheduleService := services.NewScheduleService(db)
	questionService := services.NewQuestionService(upstream, engine, eventService)
	categoryService := services.NewCategoryService(upstream, engine, eventService)

	if email, password := os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD"); email != "" && password != "" {
		username := os.Getenv("ADMIN_USERNAME")
		if username == "" {
			username = "admin"
		}
		if err := adminService.EnsureDefaultAdmin(username, email, password); err != nil {
			log.Error().Err(err).Msg("Failed to ensure default admin account")
		}
	}

	// Set up notifications: durable weekly reminder plus on-demand delivery
	notifier := notify.NewNotifier(hub, eventService)
	if _, err := scheduleService.EnsureWeeklyReminder(cfg.NotifySchedule, location); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure weekly reminder schedule")
	}
	scheduler := notify.NewScheduler(scheduleService, notifier, location)
	go scheduler.Run()

	// Set up the market price simulation
	prices := zakat.NewSimulatedPriceSource()
	priceTicker := zakat.NewTicker(prices, 2*time.Minute)
	go priceTicker.Run()

	// Set up router
	router := api.NewRouter(api.RouterDeps{
		Hub:             hub,
		Engine:          engine,
		Notifier:        notifier,
		Prices:          prices,
		QuestionService: questionService,
		CategoryService: categoryService,
		AdminService:    adminService,
		EventService:    eventService,
		ScheduleService: scheduleService,
		AllowedOrigin:   cfg.AllowedOrigin,
	})

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	scheduler.Stop()
	priceTicker.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}

package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Abubakar-88/jugjiggasha/internal/api/handlers"
	"github.com/Abubakar-88/jugjiggasha/internal/auth"
	"github.com/Abubakar-88/jugjiggasha/internal/notify"
	"github.com/Abubakar-88/jugjiggasha/internal/offline"
	"github.com/Abubakar-88/jugjiggasha/internal/services"
	"github.com/Abubakar-88/jugjiggasha/internal/websocket"
	"github.com/Abubakar-88/jugjiggasha/internal/zakat"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Hub             *websocket.Hub
	Engine          *offline.Engine
	Notifier        notify.NotifierProvider
	Prices          zakat.PriceSource
	QuestionService services.QuestionServiceProvider
	CategoryService services.CategoryServiceProvider
	AdminService    services.AdminServiceProvider
	EventService    services.EventServiceProvider
	ScheduleService services.ScheduleServiceProvider
	AllowedOrigin   string
}

// NewRouter creates and configures a new Chi router.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "X-Offline-Cache"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	questionHandler := handlers.NewQuestionHandler(deps.QuestionService)
	categoryHandler := handlers.NewCategoryHandler(deps.CategoryService)
	zakatHandler := handlers.NewZakatHandler(deps.Prices)
	notificationHandler := handlers.NewNotificationHandler(deps.Notifier, deps.Engine, deps.ScheduleService)
	adminHandler := handlers.NewAdminHandler(deps.AdminService, deps.EventService)
	pwaHandler := handlers.NewPWAHandler(deps.Engine)
	wsHandler := handlers.NewWebSocketHandler(deps.Hub, deps.Notifier, deps.Engine)

	// PWA shell assets
	r.Get("/manifest.json", pwaHandler.Manifest)
	r.Get("/sw.js", pwaHandler.ServiceWorker)
	r.Get("/offline.html", pwaHandler.Offline)

	// API versioning
	r.Route("/api/v1", func(r chi.Router) {
		// WebSocket connection endpoint
		r.Get("/ws", wsHandler.Serve)

		r.Route("/questions", func(r chi.Router) {
			r.Get("/", questionHandler.GetAll)
			r.Post("/", questionHandler.Submit)
			r.Get("/search", questionHandler.Search)
			r.Get("/answered", questionHandler.Answered)
			r.Get("/unanswered", questionHandler.Unanswered)
			r.Get("/category/{id}", questionHandler.ByCategory)
			r.Get("/{id}", questionHandler.Get)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", categoryHandler.GetAll)
			r.Get("/{id}", categoryHandler.Get)
		})

		r.Route("/zakat", func(r chi.Router) {
			r.Post("/calculate", zakatHandler.Calculate)
			r.Get("/prices", zakatHandler.Prices)
			r.Post("/prices/refresh", zakatHandler.RefreshPrices)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Post("/message", notificationHandler.Message)
			r.Post("/push", notificationHandler.Push)
			r.Get("/schedule", notificationHandler.Schedule)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", adminHandler.Login)

			// Everything else under /admin requires a valid token.
			r.Group(func(r chi.Router) {
				r.Use(auth.JWTMiddleware())

				r.Get("/me", adminHandler.GetMe)
				r.Post("/logout", adminHandler.Logout)
				r.Get("/events", adminHandler.Events)

				r.Route("/questions", func(r chi.Router) {
					r.Get("/", questionHandler.AdminList)
					r.Route("/{id}", func(r chi.Router) {
						r.Put("/", questionHandler.Update)
						r.Delete("/", questionHandler.Delete)
						r.Post("/answer", questionHandler.Answer)
					})
				})

				r.Route("/categories", func(r chi.Router) {
					r.Post("/", categoryHandler.Create)
					r.Route("/{id}", func(r chi.Router) {
						r.Put("/", categoryHandler.Update)
						r.Delete("/", categoryHandler.Delete)
					})
				})
			})
		})
	})

	return r
}

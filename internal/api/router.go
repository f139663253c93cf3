package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/avaldivia/childbot-be/internal/api/handlers"
	"github.com/avaldivia/childbot-be/internal/auth"
	"github.com/avaldivia/childbot-be/internal/config"
	"github.com/avaldivia/childbot-be/internal/monitoring"
	"github.com/avaldivia/childbot-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	cfg *config.Config,
	tokens *auth.TokenService,
	userService services.UserServiceProvider,
	chatService services.ChatServiceProvider,
	eventService services.EventServiceProvider,
	monitor *monitoring.HealthMonitor,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authHandler := handlers.NewAuthHandler(userService, tokens)
	userHandler := handlers.NewUserHandler(userService)
	chatHandler := handlers.NewChatHandler(chatService)
	eventHandler := handlers.NewEventHandler(eventService)

	// Public endpoints
	r.Get("/test", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message": "Backend is running"}`))
	})
	r.Get("/status", handlers.StatusHandler(monitor))
	r.Post("/login", authHandler.Login)

	// Protected endpoints, all behind the bearer-token guard
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(tokens))

		r.Post("/chat", chatHandler.Chat)
		r.Get("/user", userHandler.GetMe)
		r.Put("/user/palette", userHandler.UpdatePalette)
		r.Get("/events", eventHandler.GetRecent)
	})

	return r
}

// requestLogger logs each request through zerolog.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

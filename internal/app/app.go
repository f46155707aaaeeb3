package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/handler"
	"github.com/mergington/activities/internal/middleware"
	"github.com/mergington/activities/internal/service"
	"github.com/mergington/activities/internal/store"
)

// App holds the application and all its dependencies
type App struct {
	config     *config.Config
	server     *http.Server
	logger     *slog.Logger
	activities *store.ActivityStore
	teachers   *store.TeacherDirectory
	sessions   *store.SessionStore
}

// New creates a new application instance with freshly seeded stores
func New(cfg *config.Config) (*App, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := &App{
		config:     cfg,
		logger:     logger,
		activities: store.NewActivityStore(),
		teachers:   store.NewTeacherDirectory(),
		sessions:   store.NewSessionStore(cfg.Session.GetTTL()),
	}

	return app, nil
}

// Initialize loads the teacher directory and sets up the HTTP server
func (a *App) Initialize(ctx context.Context) error {
	// A missing or malformed teachers file is not fatal: the server starts
	// with an empty directory and no teacher can log in.
	if err := a.teachers.Load(a.config.Assets.TeachersFile); err != nil {
		a.logger.Warn("Failed to load teachers file, continuing with empty directory",
			"path", a.config.Assets.TeachersFile, "error", err)
	} else {
		a.logger.Info("Loaded teacher directory",
			"path", a.config.Assets.TeachersFile, "teachers", a.teachers.Len())
	}

	a.setupServer()

	a.logger.Info("Application initialized successfully")
	return nil
}

// setupServer initializes the HTTP router and handlers
func (a *App) setupServer() {
	addr := fmt.Sprintf("%s:%s", a.config.Server.Host, a.config.Server.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      a.router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("HTTP server configured", "addr", addr)
}

// router wires stores, services, and handlers into the chi router
func (a *App) router() http.Handler {
	// Service layer (business logic)
	activityService := service.NewActivityService(a.activities)
	authService := service.NewAuthService(a.teachers, a.sessions)

	// HTTP handlers
	activityHandler := handler.NewActivityHandler(activityService)
	authHandler := handler.NewAuthHandler(authService)

	// Session token guard for roster mutations
	requireTeacher := middleware.RequireTeacher(authService)

	r := chi.NewRouter()

	// Global middleware (applied to every request)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Front-end entry point and static assets
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
	})
	r.Handle("/static/*", http.StripPrefix("/static/",
		http.FileServer(http.Dir(a.config.Assets.StaticDir))))

	// Health check for monitoring
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			a.logger.Error("Failed to write health check response", "error", err)
		}
	})

	// Public endpoints (no authentication)
	r.Get("/activities", activityHandler.List)
	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
	})

	// Protected endpoints (require an admin session token)
	r.Group(func(r chi.Router) {
		r.Use(requireTeacher)

		r.Post("/activities/{name}/signup", activityHandler.Signup)
		r.Delete("/activities/{name}/unregister", activityHandler.Unregister)
	})

	return r
}

// Run starts the HTTP server
func (a *App) Run() error {
	a.logger.Info("Starting HTTP server", "addr", a.server.Addr)
	return a.server.ListenAndServe()
}

// Shutdown stops the application gracefully
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application")

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	a.logger.Info("Application stopped gracefully")
	return nil
}

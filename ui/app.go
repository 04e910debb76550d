package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"gocoach/ports"
)

//go:embed templates/*.html
var embeddedFiles embed.FS

// App represents the UI application
type App struct {
	router    *chi.Mux
	evaluator ports.StrategyEvaluator
	templates *template.Template
	logger    *zap.Logger
}

// Config holds UI application configuration
type Config struct {
	Evaluator ports.StrategyEvaluator
	Logger    *zap.Logger
}

// NewApp creates a new UI application
func NewApp(config Config) (*App, error) {
	if config.Evaluator == nil {
		return nil, fmt.Errorf("evaluator is required")
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	templates, err := template.New("").ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:    chi.NewRouter(),
		evaluator: config.Evaluator,
		templates: templates,
		logger:    logger,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleDecide)
}

// ServeHTTP lets the app be mounted or tested as a plain handler
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// renderTemplate executes a template into the response
func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, templateName, data); err != nil {
		a.logger.Error("Template error", zap.String("template", templateName), zap.Error(err))
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}

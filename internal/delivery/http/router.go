package http

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "mergingtonactivities/docs"
	"mergingtonactivities/internal/delivery/http/controllers"
	"mergingtonactivities/internal/delivery/http/middleware"
	"mergingtonactivities/internal/delivery/http/web"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(activityController *controllers.ActivityController) *http.ServeMux {
	mux := http.NewServeMux()

	// API Routes
	mux.HandleFunc("GET /activities", activityController.ListActivities)
	mux.HandleFunc("POST /activities/{name}/signup", activityController.Signup)
	mux.HandleFunc("DELETE /activities/{name}/signup", activityController.Unregister)

	// Front end
	mux.Handle("GET /{$}", http.RedirectHandler("/static/index.html", http.StatusTemporaryRedirect))
	mux.Handle("GET /static/", http.StripPrefix("/static/", web.Handler()))

	// Operations
	mux.HandleFunc("GET /healthz", controllers.HealthCheck)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router with panic recovery, request logging and CORS.
func NewHandler(logger *slog.Logger, allowedOrigins []string, mux *http.ServeMux) http.Handler {
	return middleware.Recover(logger,
		middleware.LoggingMiddleware(logger,
			middleware.CORS(allowedOrigins, mux)))
}

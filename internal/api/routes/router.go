package routes

import (
	"net/http"

	"github.com/stardental/clinic-backend/internal/api/handlers"
	"github.com/stardental/clinic-backend/internal/api/middleware"
	"github.com/stardental/clinic-backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	appointmentHandler *handlers.AppointmentHandler
	blogHandler        *handlers.BlogHandler
	testimonialHandler *handlers.TestimonialHandler
	contactHandler     *handlers.ContactHandler
	authHandler        *handlers.AuthHandler
	dashboardHandler   *handlers.DashboardHandler
	sseHandler         *handlers.SSEHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
	jwtSecret       string
	allowedOrigins  []string
}

// NewRouter creates a new router
func NewRouter(
	appointmentHandler *handlers.AppointmentHandler,
	blogHandler *handlers.BlogHandler,
	testimonialHandler *handlers.TestimonialHandler,
	contactHandler *handlers.ContactHandler,
	authHandler *handlers.AuthHandler,
	dashboardHandler *handlers.DashboardHandler,
	sseHandler *handlers.SSEHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
	jwtSecret string,
	allowedOrigins []string,
) *Router {
	return &Router{
		mux:                http.NewServeMux(),
		appointmentHandler: appointmentHandler,
		blogHandler:        blogHandler,
		testimonialHandler: testimonialHandler,
		contactHandler:     contactHandler,
		authHandler:        authHandler,
		dashboardHandler:   dashboardHandler,
		sseHandler:         sseHandler,
		cacheMiddleware:    cacheMiddleware,
		metrics:            metrics,
		jwtSecret:          jwtSecret,
		allowedOrigins:     allowedOrigins,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Public endpoints
	r.mux.HandleFunc("GET /api/blog", r.blogHandler.List)
	r.mux.HandleFunc("GET /api/blog/recent", r.blogHandler.ListRecent)
	r.mux.HandleFunc("GET /api/blog/{id}", r.blogHandler.Get)
	r.mux.HandleFunc("GET /api/testimonials", r.testimonialHandler.ListPublic)
	r.mux.HandleFunc("POST /api/appointments", r.appointmentHandler.Book)
	r.mux.HandleFunc("POST /api/contact", r.contactHandler.Submit)
	r.mux.HandleFunc("POST /api/auth/login", r.authHandler.Login)

	// Admin endpoints, guarded by the JWT middleware
	admin := http.NewServeMux()
	admin.HandleFunc("GET /api/admin/appointments", r.appointmentHandler.List)
	admin.HandleFunc("GET /api/admin/appointments/{id}", r.appointmentHandler.Get)
	admin.HandleFunc("PATCH /api/admin/appointments/{id}/status", r.appointmentHandler.UpdateStatus)
	admin.HandleFunc("POST /api/admin/blog", r.blogHandler.Create)
	admin.HandleFunc("PUT /api/admin/blog/{id}", r.blogHandler.Update)
	admin.HandleFunc("DELETE /api/admin/blog/{id}", r.blogHandler.Delete)
	admin.HandleFunc("GET /api/admin/testimonials", r.testimonialHandler.ListAdmin)
	admin.HandleFunc("POST /api/admin/testimonials", r.testimonialHandler.Create)
	admin.HandleFunc("PUT /api/admin/testimonials/{id}", r.testimonialHandler.Update)
	admin.HandleFunc("DELETE /api/admin/testimonials/{id}", r.testimonialHandler.Delete)
	admin.HandleFunc("GET /api/admin/dashboard", r.dashboardHandler.Overview)
	if r.sseHandler != nil {
		admin.HandleFunc("GET /api/admin/stream/appointments", r.sseHandler.StreamAppointments)
	}
	r.mux.Handle("/api/admin/", middleware.AuthMiddleware(r.jwtSecret)(admin))

	// Apply middleware in reverse order (last middleware wraps first)
	// CORS must be outermost so cached responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}

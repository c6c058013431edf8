package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"editfolio.dev/internal/middleware"
	"editfolio.dev/internal/services"
	"editfolio.dev/internal/views"
)

// Options carries the dependencies of the router
type Options struct {
	Content services.SiteProvider
	// Visits records page views; nil disables tracking.
	Visits *middleware.VisitTracker
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(opts Options) (http.Handler, error) {
	renderer, err := views.New()
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	if opts.Visits != nil {
		r.Use(opts.Visits.Handler)
	}

	// Initialize services
	projectService := services.NewProjectService(opts.Content)
	testimonialService := services.NewTestimonialService(opts.Content)
	profileService := services.NewProfileService(opts.Content)
	inquiryService := services.NewInquiryService(opts.Content)

	// Initialize handlers
	pageHandler := NewPageHandler(renderer, projectService, testimonialService, profileService, inquiryService)
	projectHandler := NewProjectHandler(projectService)
	siteHandler := NewSiteHandler(testimonialService, profileService, inquiryService)

	// Pages
	r.Get("/", pageHandler.Home)
	r.Get("/projects/{id}", pageHandler.Project)
	r.Get("/order", pageHandler.Order)
	r.Post("/order", pageHandler.SubmitOrder)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)
		r.Get("/testimonials", siteHandler.ListTestimonials)
		r.Get("/profile", siteHandler.GetProfile)
		r.Post("/inquiries", siteHandler.CreateInquiry)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	fileServer := http.FileServer(http.FS(views.Static()))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	return r, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logrus.WithError(err).Error("Error encoding JSON")
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

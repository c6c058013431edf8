package handlers

import (
	"encoding/json"
	"net/http"

	"editfolio.dev/internal/services"
)

// SiteHandler serves the non-project content and the inquiry API
type SiteHandler struct {
	testimonialService *services.TestimonialService
	profileService     *services.ProfileService
	inquiryService     *services.InquiryService
}

// NewSiteHandler creates a new SiteHandler
func NewSiteHandler(ts *services.TestimonialService, ps *services.ProfileService, is *services.InquiryService) *SiteHandler {
	return &SiteHandler{
		testimonialService: ts,
		profileService:     ps,
		inquiryService:     is,
	}
}

// ListTestimonials handles GET /api/testimonials
func (h *SiteHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.testimonialService.GetAll())
}

// GetProfile handles GET /api/profile
func (h *SiteHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.profileService.Hero())
}

// CreateInquiry handles POST /api/inquiries
func (h *SiteHandler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string `json:"name"`
		BusinessName string `json:"businessName"`
		Budget       string `json:"budget"`
		Description  string `json:"description"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inq := services.NewInquiry(req.Name, req.BusinessName, req.Budget, req.Description)
	link, err := h.inquiryService.Link(inq)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"url": link})
}

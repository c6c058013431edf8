package services

import (
	"github.com/samber/lo"

	"editfolio.dev/internal/media"
	"editfolio.dev/internal/models"
)

// TestimonialView is a testimonial with a displayable avatar
type TestimonialView struct {
	models.Testimonial
	AvatarURL      string `json:"avatar_url"`
	AvatarFallback string `json:"avatar_fallback"`
}

// TestimonialService handles testimonial-related operations
type TestimonialService struct {
	content SiteProvider
}

// NewTestimonialService creates a new TestimonialService
func NewTestimonialService(content SiteProvider) *TestimonialService {
	return &TestimonialService{content: content}
}

// GetAll returns every testimonial with its avatar resolved
func (s *TestimonialService) GetAll() []TestimonialView {
	return lo.Map(s.content.Site().Testimonials, func(t models.Testimonial, _ int) TestimonialView {
		return TestimonialView{
			Testimonial:    t,
			AvatarURL:      media.ImageURL(t.Avatar, media.AvatarWidth),
			AvatarFallback: media.AvatarFallback(t.Name),
		}
	})
}

// Carousel returns the testimonials twice in a row so the scrolling track can
// wrap around without a visible seam.
func (s *TestimonialService) Carousel() []TestimonialView {
	all := s.GetAll()
	return append(all, all...)
}

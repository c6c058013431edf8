package services

import (
	"time"

	"editfolio.dev/internal/media"
	"editfolio.dev/internal/models"
)

// Hero is the data behind the hero section and footer
type Hero struct {
	models.Profile
	HeroImageURL string        `json:"hero_image_url"`
	Social       []models.Link `json:"social"`
	Year         int           `json:"year"`
}

// ProfileService handles the personal details
type ProfileService struct {
	content SiteProvider
	now     func() time.Time
}

// NewProfileService creates a new ProfileService
func NewProfileService(content SiteProvider) *ProfileService {
	return &ProfileService{content: content, now: time.Now}
}

// Hero returns the profile with its hero image resolved
func (s *ProfileService) Hero() Hero {
	site := s.content.Site()
	return Hero{
		Profile:      site.Profile,
		HeroImageURL: media.ImageURL(site.Profile.HeroImage, media.HeroWidth),
		Social:       site.Social.Links(),
		Year:         s.now().Year(),
	}
}

package models

// Site is the root of the content file
type Site struct {
	Profile      Profile       `json:"profile" yaml:"profile" jsonschema:"required"`
	Contact      Contact       `json:"contact" yaml:"contact" jsonschema:"required"`
	Social       Social        `json:"social" yaml:"social"`
	Projects     []Project     `json:"projects" yaml:"projects"`
	Testimonials []Testimonial `json:"testimonials" yaml:"testimonials"`
}

// Profile holds the personal details shown in the hero section
type Profile struct {
	Name         string `json:"name" yaml:"name" jsonschema:"required"`
	Role         string `json:"role" yaml:"role"`
	Introduction string `json:"introduction" yaml:"introduction"`
	HeroImage    string `json:"hero_image" yaml:"hero_image"`
	Availability string `json:"availability" yaml:"availability"`
}

// Contact holds the messaging number and the budget brackets offered by the order form
type Contact struct {
	WhatsApp string   `json:"whatsapp" yaml:"whatsapp" jsonschema:"required,description=Country code and number; any non-digit characters are ignored"`
	Budgets  []string `json:"budgets,omitempty" yaml:"budgets"`
}

// Social holds optional profile links. Empty values are not rendered.
type Social struct {
	YouTube   string `json:"youtube,omitempty" yaml:"youtube"`
	Instagram string `json:"instagram,omitempty" yaml:"instagram"`
	Facebook  string `json:"facebook,omitempty" yaml:"facebook"`
	TikTok    string `json:"tiktok,omitempty" yaml:"tiktok"`
	LinkedIn  string `json:"linkedin,omitempty" yaml:"linkedin"`
	Email     string `json:"email,omitempty" yaml:"email"`
}

// Link is a rendered social link
type Link struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Links returns the non-empty social links in display order
func (s Social) Links() []Link {
	var links []Link
	add := func(name, url string) {
		if url != "" {
			links = append(links, Link{Name: name, URL: url})
		}
	}
	add("YouTube", s.YouTube)
	add("Instagram", s.Instagram)
	add("Facebook", s.Facebook)
	add("TikTok", s.TikTok)
	add("LinkedIn", s.LinkedIn)
	if s.Email != "" {
		add("Email", "mailto:"+s.Email)
	}
	return links
}

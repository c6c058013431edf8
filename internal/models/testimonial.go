package models

// Testimonial is a client quote shown in the carousel
type Testimonial struct {
	ID      int    `json:"id" yaml:"id" jsonschema:"required"`
	Name    string `json:"name" yaml:"name" jsonschema:"required"`
	Role    string `json:"role" yaml:"role"`
	Company string `json:"company" yaml:"company"`
	Content string `json:"content" yaml:"content"`
	Avatar  string `json:"avatar" yaml:"avatar"`
}

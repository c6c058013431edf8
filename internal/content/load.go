// Package content loads the static site configuration: profile, contact
// details, projects and testimonials.
package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"editfolio.dev/internal/models"
)

// DefaultBudgets are offered by the order form when the content file lists none
var DefaultBudgets = []string{
	"$500 - $1,000",
	"$1,000 - $5,000",
	"$5,000 - $10,000",
	"$10,000+",
}

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid content")

// Load reads and validates the content file
func Load(fs afero.Fs, path string) (*models.Site, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return site, nil
}

// Parse decodes and validates content from YAML
func Parse(data []byte) (*models.Site, error) {
	var site models.Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, err
	}

	applyDefaults(&site)
	if err := Validate(&site); err != nil {
		return nil, err
	}
	return &site, nil
}

func applyDefaults(site *models.Site) {
	if len(site.Contact.Budgets) == 0 {
		site.Contact.Budgets = append([]string(nil), DefaultBudgets...)
	}
	for i := range site.Projects {
		if site.Projects[i].Type == "" {
			site.Projects[i].Type = models.DeclaredImage
		}
	}
}

// Validate checks the invariants the rest of the site relies on
func Validate(site *models.Site) error {
	var problems []string

	if strings.TrimSpace(site.Profile.Name) == "" {
		problems = append(problems, "profile.name is required")
	}
	if !strings.ContainsAny(site.Contact.WhatsApp, "0123456789") {
		problems = append(problems, "contact.whatsapp must contain a phone number")
	}

	projectIDs := lo.Map(site.Projects, func(p models.Project, _ int) int { return p.ID })
	for _, id := range lo.FindDuplicates(projectIDs) {
		problems = append(problems, fmt.Sprintf("duplicate project id %d", id))
	}
	for _, p := range site.Projects {
		if strings.TrimSpace(p.Src) == "" {
			problems = append(problems, fmt.Sprintf("project %d has no src", p.ID))
		}
		if !p.Type.IsVideo() && !strings.EqualFold(strings.TrimSpace(string(p.Type)), string(models.DeclaredImage)) {
			problems = append(problems, fmt.Sprintf("project %d has unknown type %q", p.ID, p.Type))
		}
	}

	testimonialIDs := lo.Map(site.Testimonials, func(t models.Testimonial, _ int) int { return t.ID })
	for _, id := range lo.FindDuplicates(testimonialIDs) {
		problems = append(problems, fmt.Sprintf("duplicate testimonial id %d", id))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

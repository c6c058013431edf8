package services

import (
	"errors"
	"fmt"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"

	"editfolio.dev/internal/media"
	"editfolio.dev/internal/models"
)

// ErrProjectNotFound is returned for ids missing from the content
var ErrProjectNotFound = errors.New("project not found")

// SiteProvider supplies the current site content
type SiteProvider interface {
	Site() *models.Site
}

// ProjectView is a project together with its resolved media
type ProjectView struct {
	models.Project
	Media   media.Source `json:"media"`
	IsVideo bool         `json:"is_video"`
}

// ProjectService handles project-related operations
type ProjectService struct {
	content SiteProvider
}

// NewProjectService creates a new ProjectService
func NewProjectService(content SiteProvider) *ProjectService {
	return &ProjectService{content: content}
}

// GetAll returns all projects
func (s *ProjectService) GetAll() []models.Project {
	return s.content.Site().Projects
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id int) (*models.Project, error) {
	projects := s.content.Site().Projects
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrProjectNotFound, id)
}

// View resolves the media of a single project
func View(p models.Project) ProjectView {
	src := media.Resolve(p.Src, p.Type)
	return ProjectView{
		Project: p,
		Media:   src,
		IsVideo: src.Kind.IsVideo(),
	}
}

// Views returns every project with its media resolved, in content order
func (s *ProjectService) Views() []ProjectView {
	return lo.Map(s.GetAll(), func(p models.Project, _ int) ProjectView { return View(p) })
}

// Search returns the projects whose title or category fuzzily matches query.
// An empty query returns everything.
func (s *ProjectService) Search(query string) []ProjectView {
	if query == "" {
		return s.Views()
	}
	return lo.Filter(s.Views(), func(v ProjectView, _ int) bool {
		return fuzzy.MatchNormalizedFold(query, v.Title) || fuzzy.MatchNormalizedFold(query, v.Category)
	})
}

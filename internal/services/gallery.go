package services

import "github.com/samber/mo"

// Gallery is the portfolio grid plus the modal state: at most one selected
// project. A fresh selection always starts in the loading state; the page
// clears it once the player reports it has loaded.
type Gallery struct {
	Items    []ProjectView
	Selected *ProjectView
	Loading  bool
}

// ModalOpen reports whether a project is selected
func (g Gallery) ModalOpen() bool {
	return g.Selected != nil
}

// Gallery builds the gallery with an optional selection. An unknown id yields
// the gallery with no selection and ErrProjectNotFound.
func (s *ProjectService) Gallery(selected mo.Option[int]) (Gallery, error) {
	g := Gallery{Items: s.Views()}

	id, ok := selected.Get()
	if !ok {
		return g, nil
	}

	p, err := s.GetByID(id)
	if err != nil {
		return g, err
	}
	v := View(*p)
	g.Selected = &v
	g.Loading = true
	return g, nil
}

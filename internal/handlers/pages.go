package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"

	"editfolio.dev/internal/services"
	"editfolio.dev/internal/views"
)

// PageHandler renders the HTML pages
type PageHandler struct {
	renderer           *views.Renderer
	projectService     *services.ProjectService
	testimonialService *services.TestimonialService
	profileService     *services.ProfileService
	inquiryService     *services.InquiryService
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(
	renderer *views.Renderer,
	projects *services.ProjectService,
	testimonials *services.TestimonialService,
	profile *services.ProfileService,
	inquiries *services.InquiryService,
) *PageHandler {
	return &PageHandler{
		renderer:           renderer,
		projectService:     projects,
		testimonialService: testimonials,
		profileService:     profile,
		inquiryService:     inquiries,
	}
}

// Home handles GET / and GET /?project={id}
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.home(w, r, r.URL.Query().Get("project"))
}

// Project handles GET /projects/{id}, the home page with the modal open
func (h *PageHandler) Project(w http.ResponseWriter, r *http.Request) {
	h.home(w, r, chi.URLParam(r, "id"))
}

func (h *PageHandler) home(w http.ResponseWriter, r *http.Request, rawID string) {
	status := http.StatusOK
	selected := mo.None[int]()
	if rawID != "" {
		id, err := strconv.Atoi(rawID)
		if err != nil {
			status = http.StatusNotFound
		} else {
			selected = mo.Some(id)
		}
	}

	gallery, err := h.projectService.Gallery(selected)
	if errors.Is(err, services.ErrProjectNotFound) {
		status = http.StatusNotFound
	}

	h.render(w, r, status, views.HomePage, views.Home{
		Hero:         h.profileService.Hero(),
		Gallery:      gallery,
		Testimonials: h.testimonialService.Carousel(),
	})
}

// Order handles GET /order
func (h *PageHandler) Order(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, views.OrderPage, h.orderPage(views.OrderForm{}, ""))
}

// SubmitOrder handles POST /order. A complete form redirects to the messaging
// deep link; an incomplete one is rendered again with the entered values.
func (h *PageHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, views.OrderPage, h.orderPage(views.OrderForm{}, "Invalid form submission"))
		return
	}

	form := views.OrderForm{
		Name:         r.PostForm.Get("name"),
		BusinessName: r.PostForm.Get("businessName"),
		Budget:       r.PostForm.Get("budget"),
		Description:  r.PostForm.Get("description"),
	}

	inq := services.NewInquiry(form.Name, form.BusinessName, form.Budget, form.Description)
	link, err := h.inquiryService.Link(inq)
	if err != nil {
		var fe *services.FieldError
		message := "Please fill in every required field"
		if errors.As(err, &fe) {
			message = "Please fill in the " + fe.Field + " field"
		}
		h.render(w, r, http.StatusUnprocessableEntity, views.OrderPage, h.orderPage(form, message))
		return
	}

	http.Redirect(w, r, link, http.StatusSeeOther)
}

func (h *PageHandler) orderPage(form views.OrderForm, message string) views.Order {
	return views.Order{
		Hero:    h.profileService.Hero(),
		Budgets: h.inquiryService.Budgets(),
		Form:    form,
		Error:   message,
	}
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page, data); err != nil {
		logrus.WithError(err).WithField("path", r.URL.Path).Error("Failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logrus.WithError(err).Debug("Failed to write page")
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	. "github.com/smartystreets/goconvey/convey"

	"editfolio.dev/internal/content"
	"editfolio.dev/internal/middleware"
	"editfolio.dev/internal/models"
)

func testSite() *models.Site {
	return &models.Site{
		Profile: models.Profile{
			Name:         "Alex Rivera",
			Role:         "Video Editor",
			Introduction: "Cuts with rhythm.",
			HeroImage:    "https://drive.google.com/file/d/HERO1/view",
			Availability: "Available for freelance",
		},
		Contact: models.Contact{WhatsApp: "+20 10 2800-8637", Budgets: content.DefaultBudgets},
		Social:  models.Social{Instagram: "https://instagram.com/alex"},
		Projects: []models.Project{
			{ID: 1, Title: "Podcast short", Category: "Video Editing", Src: "https://dai.ly/x9v7kru", Type: models.DeclaredVideo},
			{ID: 2, Title: "Brand promo", Category: "Commercial", Src: "https://youtu.be/dQw4w9WgXcQ", Type: models.DeclaredImage},
			{ID: 3, Title: "Poster", Category: "Design", Src: "https://picsum.photos/800/600", Type: models.DeclaredImage},
			{ID: 4, Title: "Showreel", Category: "Reel", Src: "https://cdn.example.com/reel.mp4", Type: models.DeclaredVideo},
		},
		Testimonials: []models.Testimonial{
			{ID: 1, Name: "Mostafa", Content: "Great pacing.", Avatar: "https://picsum.photos/100/100"},
			{ID: 2, Name: "Ashwaq", Content: "Fast turnaround."},
		},
	}
}

type visitRecorder struct {
	paths chan string
}

func (v *visitRecorder) Record(_ context.Context, _, _, path string) error {
	v.paths <- path
	return nil
}

func newRouter(visits *visitRecorder) http.Handler {
	opts := Options{Content: content.NewStaticStore(testSite())}
	if visits != nil {
		opts.Visits = middleware.NewVisitTracker(visits)
	}
	h, err := SetupRoutes(opts)
	So(err, ShouldBeNil)
	return h
}

func do(h http.Handler, method, target string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	switch {
	case method == http.MethodPost && strings.HasPrefix(target, "/api/"):
		req.Header.Set("Content-Type", "application/json")
	case method == http.MethodPost:
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func document(rec *httptest.ResponseRecorder) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	So(err, ShouldBeNil)
	return doc
}

func TestHomePage(t *testing.T) {
	Convey("Home page", t, func() {
		h := newRouter(nil)

		Convey("Renders the gallery without a modal", func() {
			rec := do(h, http.MethodGet, "/", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Header().Get("Content-Type"), ShouldStartWith, "text/html")

			doc := document(rec)
			So(doc.Find("#project-modal").Length(), ShouldEqual, 0)
			So(doc.Find(".card").Length(), ShouldEqual, 4)
			So(doc.Find("h1").First().Text(), ShouldEqual, "Alex Rivera")

			href, _ := doc.Find(`.card[data-project-id="2"]`).Attr("href")
			So(href, ShouldEqual, "/projects/2")
		})

		Convey("Cards pick their preview by media kind", func() {
			doc := document(do(h, http.MethodGet, "/", ""))

			yt := doc.Find(`.card[data-project-id="2"] img`)
			src, _ := yt.Attr("src")
			So(src, ShouldEqual, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg")
			onerror, _ := yt.Attr("onerror")
			So(onerror, ShouldContainSubstring, "hqdefault.jpg")

			So(doc.Find(`.card[data-project-id="4"] video`).Length(), ShouldEqual, 1)
			So(doc.Find(`.card[data-project-id="3"] img`).Length(), ShouldEqual, 1)
		})

		Convey("Testimonials loop twice and the footer credits the owner", func() {
			doc := document(do(h, http.MethodGet, "/", ""))
			So(doc.Find(".testimonial").Length(), ShouldEqual, 4)

			onerror, _ := doc.Find(`.testimonial[data-testimonial-id="1"] img`).First().Attr("onerror")
			So(onerror, ShouldContainSubstring, "ui-avatars.com")

			footer := doc.Find("footer").Text()
			So(footer, ShouldContainSubstring, "Alex Rivera. All rights reserved.")
			So(doc.Find(`footer a[href="https://instagram.com/alex"]`).Length(), ShouldEqual, 1)
		})
	})
}

func TestProjectModal(t *testing.T) {
	Convey("Project modal", t, func() {
		h := newRouter(nil)

		Convey("Selecting a project renders exactly one modal for it", func() {
			rec := do(h, http.MethodGet, "/projects/1", "")
			So(rec.Code, ShouldEqual, http.StatusOK)

			doc := document(rec)
			modal := doc.Find("#project-modal")
			So(modal.Length(), ShouldEqual, 1)
			So(modal.AttrOr("data-project-id", ""), ShouldEqual, "1")
			So(modal.Find("h3").Text(), ShouldEqual, "Podcast short")

			src, _ := modal.Find("iframe").Attr("src")
			So(src, ShouldEqual, "https://www.dailymotion.com/embed/video/x9v7kru?autoplay=1")

			So(modal.Find(".modal-media").AttrOr("data-loading", ""), ShouldEqual, "true")
			So(modal.Find(".spinner").Length(), ShouldEqual, 1)

			link := modal.Find("a.external")
			So(link.Text(), ShouldEqual, "Watch on Dailymotion")
			So(link.AttrOr("target", ""), ShouldEqual, "_blank")
		})

		Convey("Close control and background return home; the content area does not", func() {
			modal := document(do(h, http.MethodGet, "/projects/1", "")).Find("#project-modal")
			So(modal.Find(".modal-backdrop").AttrOr("href", ""), ShouldEqual, "/")
			So(modal.Find(".modal-close").AttrOr("href", ""), ShouldEqual, "/")
			So(modal.Find(".modal-backdrop .modal-content").Length(), ShouldEqual, 0)
			So(modal.Find(`.modal-media a[href="/"]`).Length(), ShouldEqual, 0)
		})

		Convey("The query form selects the same way", func() {
			modal := document(do(h, http.MethodGet, "/?project=2", "")).Find("#project-modal")
			So(modal.Length(), ShouldEqual, 1)
			src, _ := modal.Find("iframe").Attr("src")
			So(src, ShouldStartWith, "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ")
		})

		Convey("Direct media render native elements", func() {
			modal := document(do(h, http.MethodGet, "/projects/4", "")).Find("#project-modal")
			So(modal.Find("video source").AttrOr("type", ""), ShouldEqual, "video/mp4")
			So(modal.Find("iframe").Length(), ShouldEqual, 0)

			modal = document(do(h, http.MethodGet, "/projects/3", "")).Find("#project-modal")
			So(modal.Find(".modal-media img").AttrOr("src", ""), ShouldEqual, "https://picsum.photos/800/600")
			So(modal.Find(".spinner").Length(), ShouldEqual, 0)
			So(modal.Find("a.external").Text(), ShouldEqual, "Open Link")
		})

		Convey("Unknown or malformed ids render the gallery without a modal", func() {
			for _, target := range []string{"/projects/99", "/projects/abc", "/?project=99"} {
				rec := do(h, http.MethodGet, target, "")
				So(rec.Code, ShouldEqual, http.StatusNotFound)
				doc := document(rec)
				So(doc.Find("#project-modal").Length(), ShouldEqual, 0)
				So(doc.Find(".card").Length(), ShouldEqual, 4)
			}
		})
	})
}

func TestOrderPage(t *testing.T) {
	Convey("Order page", t, func() {
		h := newRouter(nil)

		Convey("The form offers every budget bracket and opens a new tab", func() {
			rec := do(h, http.MethodGet, "/order", "")
			So(rec.Code, ShouldEqual, http.StatusOK)

			form := document(rec).Find("#order-form")
			So(form.AttrOr("method", ""), ShouldEqual, "post")
			So(form.AttrOr("target", ""), ShouldEqual, "_blank")
			So(form.Find("select[name=budget] option").Length(), ShouldEqual, len(content.DefaultBudgets)+1)
			_, disabled := form.Find("select[name=budget] option").First().Attr("disabled")
			So(disabled, ShouldBeTrue)
		})

		Convey("A complete form redirects to the messaging deep link", func() {
			form := url.Values{
				"name":         {"Jane Doe"},
				"businessName": {""},
				"budget":       {"$10,000+"},
				"description":  {"A wedding film"},
			}
			rec := do(h, http.MethodPost, "/order", form.Encode())
			So(rec.Code, ShouldEqual, http.StatusSeeOther)

			location := rec.Header().Get("Location")
			So(location, ShouldStartWith, "https://wa.me/201028008637?text=")
			So(location, ShouldContainSubstring, "Jane%20Doe")
			So(location, ShouldContainSubstring, "N%2FA")
			So(location, ShouldContainSubstring, "%2410%2C000%2B")
		})

		Convey("A missing field re-renders the form with the entered values", func() {
			form := url.Values{"name": {"Jane"}, "description": {"Reels"}}
			rec := do(h, http.MethodPost, "/order", form.Encode())
			So(rec.Code, ShouldEqual, http.StatusUnprocessableEntity)

			doc := document(rec)
			So(doc.Find(".form-error").Text(), ShouldContainSubstring, "budget")
			So(doc.Find("input[name=name]").AttrOr("value", ""), ShouldEqual, "Jane")
			So(doc.Find("textarea[name=description]").Text(), ShouldEqual, "Reels")
		})
	})
}

func TestAPI(t *testing.T) {
	Convey("API", t, func() {
		h := newRouter(nil)

		Convey("Projects are listed with resolved media", func() {
			rec := do(h, http.MethodGet, "/api/projects", "")
			So(rec.Code, ShouldEqual, http.StatusOK)

			var projects []map[string]any
			So(json.Unmarshal(rec.Body.Bytes(), &projects), ShouldBeNil)
			So(projects, ShouldHaveLength, 4)
			So(projects[0]["media"].(map[string]any)["kind"], ShouldEqual, "dailymotion")
		})

		Convey("Projects can be searched", func() {
			var projects []map[string]any
			So(json.Unmarshal(do(h, http.MethodGet, "/api/projects?q=promo", "").Body.Bytes(), &projects), ShouldBeNil)
			So(projects, ShouldHaveLength, 1)
			So(projects[0]["title"], ShouldEqual, "Brand promo")
		})

		Convey("A single project resolves its media", func() {
			rec := do(h, http.MethodGet, "/api/projects/2", "")
			So(rec.Code, ShouldEqual, http.StatusOK)

			var project map[string]any
			So(json.Unmarshal(rec.Body.Bytes(), &project), ShouldBeNil)
			So(project["is_video"], ShouldBeTrue)
			So(project["media"].(map[string]any)["id"], ShouldEqual, "dQw4w9WgXcQ")
		})

		Convey("Bad and unknown project ids are rejected", func() {
			So(do(h, http.MethodGet, "/api/projects/abc", "").Code, ShouldEqual, http.StatusBadRequest)

			rec := do(h, http.MethodGet, "/api/projects/99", "")
			So(rec.Code, ShouldEqual, http.StatusNotFound)
			So(rec.Body.String(), ShouldContainSubstring, "Project not found")
		})

		Convey("Testimonials and profile", func() {
			var testimonials []map[string]any
			So(json.Unmarshal(do(h, http.MethodGet, "/api/testimonials", "").Body.Bytes(), &testimonials), ShouldBeNil)
			So(testimonials, ShouldHaveLength, 2)

			var profile map[string]any
			So(json.Unmarshal(do(h, http.MethodGet, "/api/profile", "").Body.Bytes(), &profile), ShouldBeNil)
			So(profile["name"], ShouldEqual, "Alex Rivera")
			So(profile["hero_image_url"], ShouldEqual, "https://drive.google.com/thumbnail?id=HERO1&sz=w1000")
		})

		Convey("Inquiries return the deep link", func() {
			rec := do(h, http.MethodPost, "/api/inquiries",
				`{"name":"Jane","businessName":"Acme","budget":"$500 - $1,000","description":"Promo"}`)
			So(rec.Code, ShouldEqual, http.StatusOK)

			var body map[string]string
			So(json.Unmarshal(rec.Body.Bytes(), &body), ShouldBeNil)
			So(body["url"], ShouldStartWith, "https://wa.me/201028008637?text=")
			So(body["url"], ShouldContainSubstring, "Acme")
		})

		Convey("Incomplete or malformed inquiries are rejected", func() {
			So(do(h, http.MethodPost, "/api/inquiries", `{"name":"Jane"}`).Code, ShouldEqual, http.StatusUnprocessableEntity)
			So(do(h, http.MethodPost, "/api/inquiries", `{`).Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("Health and static assets", func() {
			rec := do(h, http.MethodGet, "/api/health", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, `"ok"`)

			rec = do(h, http.MethodGet, "/static/site.css", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, ".modal")
		})
	})
}

func TestVisitTracking(t *testing.T) {
	Convey("Visit tracking", t, func() {
		visits := &visitRecorder{paths: make(chan string, 4)}
		h := newRouter(visits)

		do(h, http.MethodGet, "/api/health", "")
		do(h, http.MethodGet, "/projects/2", "")

		select {
		case path := <-visits.paths:
			So(path, ShouldEqual, "/projects/2")
		case <-time.After(2 * time.Second):
			So("no visit recorded", ShouldBeEmpty)
		}
		So(visits.paths, ShouldBeEmpty)
	})
}

package views

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"editfolio.dev/internal/models"
	"editfolio.dev/internal/services"
)

func TestRenderer(t *testing.T) {
	Convey("Renderer", t, func() {
		r, err := New()
		So(err, ShouldBeNil)

		Convey("Renders the order page with a preselected budget", func() {
			var buf bytes.Buffer
			err := r.Render(&buf, OrderPage, Order{
				Hero:    services.Hero{Year: 2026},
				Budgets: []string{"$500 - $1,000", "$10,000+"},
				Form:    OrderForm{Budget: "$10,000+"},
			})
			So(err, ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, ` selected>$10,000`)
			So(buf.String(), ShouldNotContainSubstring, "disabled selected")
			So(buf.String(), ShouldContainSubstring, "&copy; 2026")
		})

		Convey("Gallery cards pick their element from the media kind", func() {
			item := func(id int, src string, declared models.DeclaredKind) services.ProjectView {
				return services.View(models.Project{ID: id, Title: "p", Src: src, Type: declared})
			}
			var buf bytes.Buffer
			err := r.Render(&buf, HomePage, Home{
				Gallery: services.Gallery{Items: []services.ProjectView{
					item(1, "https://cdn.example.com/reel.mp4", models.DeclaredVideo),
					item(2, "https://cdn.example.com/still.mp4", models.DeclaredImage),
				}},
			})
			So(err, ShouldBeNil)
			So(strings.Count(buf.String(), "<video "), ShouldEqual, 1)
			So(buf.String(), ShouldContainSubstring, `<img src="https://cdn.example.com/still.mp4"`)
		})

		Convey("Unknown pages are an error", func() {
			So(r.Render(&bytes.Buffer{}, "missing.html", nil), ShouldNotBeNil)
		})
	})
}

func TestStatic(t *testing.T) {
	Convey("Static assets are embedded", t, func() {
		data, err := fs.ReadFile(Static(), "site.css")
		So(err, ShouldBeNil)
		So(string(data), ShouldContainSubstring, ".modal-backdrop")
	})
}

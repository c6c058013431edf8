// Package media decides how a portfolio URL is embedded: which thumbnail to
// show in the gallery, which player to open in the modal, and what to fall back
// to when a remote asset does not load.
package media

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	"editfolio.dev/internal/models"
)

// Kind is the resolved media kind of a URL
type Kind int

const (
	DirectImage Kind = iota
	DirectVideo
	YouTube
	Dailymotion
	GoogleDrive
)

func (k Kind) String() string {
	switch k {
	case DirectImage:
		return "image"
	case DirectVideo:
		return "video"
	case YouTube:
		return "youtube"
	case Dailymotion:
		return "dailymotion"
	case GoogleDrive:
		return "drive"
	default:
		return "unknown"
	}
}

// MarshalText lets Kind appear by name in JSON
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IsVideo reports whether the kind plays in a player rather than an <img>
func (k Kind) IsVideo() bool {
	return k != DirectImage
}

// IsDirectVideo reports whether the kind plays in a native <video> element
func (k Kind) IsDirectVideo() bool {
	return k == DirectVideo
}

// IsEmbed reports whether the kind plays in a third-party iframe
func (k Kind) IsEmbed() bool {
	return k == YouTube || k == Dailymotion || k == GoogleDrive
}

// Source is the outcome of resolving a URL
type Source struct {
	Kind Kind   `json:"kind"`
	ID   string `json:"id,omitempty"`
	URL  string `json:"url"`

	// Thumbnail is empty for direct video, whose <video> element is its own preview.
	Thumbnail string `json:"thumbnail,omitempty"`
	// FallbackThumbnail replaces Thumbnail when it fails to load. When empty the
	// broken thumbnail is hidden instead.
	FallbackThumbnail string `json:"fallback_thumbnail,omitempty"`
	Player            string `json:"player"`
	MIMEType          string `json:"mime_type,omitempty"`
	Label             string `json:"label"`
}

const (
	driveGalleryWidth = 800
	linkLabel         = "Open Link"
)

type rule struct {
	kind    Kind
	pattern *regexp.Regexp
	group   int
	accept  func(id string) bool
	derive  func(id string, s *Source)
}

// Rules are evaluated in order and the first accepted match wins.
//
// The YouTube pattern is anchored with a greedy prefix, so the last marker in
// the URL is the one that gets captured; its group stops at the query or
// fragment and must be exactly eleven characters.
var rules = []rule{
	{
		kind:    YouTube,
		pattern: regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=|shorts/|live/)([^#&?]*).*`),
		group:   2,
		accept:  func(id string) bool { return len(id) == 11 },
		derive: func(id string, s *Source) {
			s.Thumbnail = "https://img.youtube.com/vi/" + id + "/maxresdefault.jpg"
			s.FallbackThumbnail = "https://img.youtube.com/vi/" + id + "/hqdefault.jpg"
			s.Player = "https://www.youtube-nocookie.com/embed/" + id + "?autoplay=1&playsinline=1&rel=0"
			s.Label = "Watch on YouTube"
		},
	},
	{
		kind:    Dailymotion,
		pattern: regexp.MustCompile(`(?:dailymotion\.com/video/|dai\.ly/)([a-zA-Z0-9]+)`),
		group:   1,
		derive: func(id string, s *Source) {
			s.Thumbnail = "https://www.dailymotion.com/thumbnail/video/" + id
			s.Player = "https://www.dailymotion.com/embed/video/" + id + "?autoplay=1"
			s.Label = "Watch on Dailymotion"
		},
	},
	{
		kind:    GoogleDrive,
		pattern: drivePattern,
		group:   1,
		derive: func(id string, s *Source) {
			s.Thumbnail = DriveThumbnail(id, driveGalleryWidth)
			s.Player = "https://drive.google.com/file/d/" + id + "/preview"
			s.Label = "Watch on Drive"
		},
	},
}

var drivePattern = regexp.MustCompile(`(?:file/d/|id=|open\?id=|uc\?id=)([a-zA-Z0-9_-]+)`)

// Detect classifies a URL by host pattern only. ok is false when no video host
// pattern matches.
func Detect(raw string) (kind Kind, id string, ok bool) {
	if raw == "" {
		return DirectImage, "", false
	}
	for _, r := range rules {
		m := r.pattern.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		id := m[r.group]
		if r.accept != nil && !r.accept(id) {
			continue
		}
		return r.kind, id, true
	}
	return DirectImage, "", false
}

// Resolve picks the embed strategy for a URL. Host patterns take precedence
// over the declared kind; an unmatched URL plays as a direct video only when
// it is declared video, and is an image otherwise.
func Resolve(raw string, declared models.DeclaredKind) Source {
	raw = strings.TrimSpace(raw)
	s := Source{URL: raw, Label: linkLabel}

	if kind, id, ok := Detect(raw); ok {
		s.Kind = kind
		s.ID = id
		for _, r := range rules {
			if r.kind == kind {
				r.derive(id, &s)
				break
			}
		}
		return s
	}

	if declared.IsVideo() {
		s.Kind = DirectVideo
		s.Player = raw
		s.MIMEType = VideoMIMEType(raw)
		return s
	}

	s.Kind = DirectImage
	s.Thumbnail = raw
	s.Player = raw
	return s
}

// DriveThumbnail returns the Drive thumbnail endpoint for a file id
func DriveThumbnail(id string, width int) string {
	return fmt.Sprintf("https://drive.google.com/thumbnail?id=%s&sz=w%d", id, width)
}

var videoExtensions = map[string]string{
	".mp4": "video/mp4", ".m4v": "video/mp4", ".webm": "video/webm",
	".ogv": "video/ogg", ".mov": "video/quicktime", ".avi": "video/x-msvideo",
	".wmv": "video/x-ms-wmv", ".flv": "video/x-flv", ".mkv": "video/x-matroska",
	".3gp": "video/3gpp",
}

// VideoMIMEType returns the MIME type for a URL whose path ends in a known
// video extension, or "" otherwise. Query and fragment are ignored.
func VideoMIMEType(raw string) string {
	p := raw
	if u, err := url.Parse(raw); err == nil {
		p = u.Path
	}
	return videoExtensions[strings.ToLower(path.Ext(p))]
}

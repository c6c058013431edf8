package media

import "net/url"

const (
	HeroWidth   = 1000
	AvatarWidth = 200
)

// ImageURL turns a pasted image link into something an <img> can load.
// Drive sharing links become Drive thumbnails at the given width; anything
// else is returned unchanged.
func ImageURL(raw string, width int) string {
	if m := drivePattern.FindStringSubmatch(raw); m != nil {
		return DriveThumbnail(m[1], width)
	}
	return raw
}

// AvatarFallback is the generated placeholder shown when an avatar fails to load
func AvatarFallback(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random"
}

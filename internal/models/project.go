package models

import "strings"

// DeclaredKind is the media kind written in the content file.
// It is advisory only: the resolver re-derives the real kind from the URL.
type DeclaredKind string

const (
	DeclaredImage DeclaredKind = "image"
	DeclaredVideo DeclaredKind = "video"
)

// IsVideo reports whether the declared kind is video, ignoring case
func (k DeclaredKind) IsVideo() bool {
	return strings.EqualFold(strings.TrimSpace(string(k)), string(DeclaredVideo))
}

// Project represents a portfolio project
type Project struct {
	ID       int          `json:"id" yaml:"id" jsonschema:"required"`
	Title    string       `json:"title" yaml:"title" jsonschema:"required"`
	Category string       `json:"category" yaml:"category"`
	Src      string       `json:"src" yaml:"src" jsonschema:"required,description=Image, video file, YouTube, Dailymotion or Google Drive URL"`
	Type     DeclaredKind `json:"type" yaml:"type" jsonschema:"enum=image,enum=video"`
}

// Package model defines the data types shared by the content store, the
// navigator and the view layer.
package model

import "strings"

// Markdown is opaque marked-up prose (CommonMark). Only renderers interpret it.
type Markdown string

// String returns the raw markup.
func (m Markdown) String() string {
	return string(m)
}

// IsEmpty reports whether the markup holds only whitespace.
func (m Markdown) IsEmpty() bool {
	return strings.TrimSpace(string(m)) == ""
}

// Icon is a symbolic glyph reference such as "cpu" or "monitor".
// The view layer decides what it looks like.
type Icon string

// Link is an external reference shown alongside a collection.
type Link struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

// TutorialRecord is one lesson.
type TutorialRecord struct {
	Title       string   `yaml:"title" json:"title"`
	Icon        Icon     `yaml:"icon,omitempty" json:"icon,omitempty"`
	Description Markdown `yaml:"description,omitempty" json:"description,omitempty"`
	Code        string   `yaml:"code,omitempty" json:"code,omitempty"` // Displayed verbatim
	Explanation Markdown `yaml:"explanation,omitempty" json:"explanation,omitempty"`
}

// CodeLines returns the number of lines in the code sample.
func (r TutorialRecord) CodeLines() int {
	if r.Code == "" {
		return 0
	}
	return strings.Count(r.Code, "\n") + 1
}

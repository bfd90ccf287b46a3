package export

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/vanderheijden86/picbook/pkg/content"
)

// TOCEntry is one line of the machine-readable table of contents.
type TOCEntry struct {
	Index int    `json:"index"` // 1-based, matches `picbook show N`
	Title string `json:"title"`
	Icon  string `json:"icon,omitempty"`
	Lines int    `json:"lines"` // Code sample line count
}

// TOC is the JSON document written by WriteJSON.
type TOC struct {
	Title     string     `json:"title,omitempty"`
	Author    string     `json:"author,omitempty"`
	Tutorials []TOCEntry `json:"tutorials"`
}

// BuildTOC collects the table of contents for store.
func BuildTOC(store *content.Store) TOC {
	meta := store.Meta()
	toc := TOC{
		Title:     meta.Title,
		Author:    meta.Author,
		Tutorials: make([]TOCEntry, 0, store.Len()),
	}
	for i, r := range store.All() {
		toc.Tutorials = append(toc.Tutorials, TOCEntry{
			Index: i + 1,
			Title: r.Title,
			Icon:  string(r.Icon),
			Lines: r.CodeLines(),
		})
	}
	return toc
}

// WriteJSON writes the table of contents as indented JSON.
func WriteJSON(w io.Writer, store *content.Store) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(BuildTOC(store)); err != nil {
		return fmt.Errorf("encoding toc: %w", err)
	}
	return nil
}

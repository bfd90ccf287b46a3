// Package content holds the ordered, read-only collection of tutorials.
//
// A Store is built once at startup, either from the built-in lessons
// (Builtin) or from a YAML content file (LoadFile), and never changes
// afterwards. Navigation lives in package nav; the store does not clamp.
package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vanderheijden86/picbook/pkg/model"
)

// ErrMissingTitle is returned when a record has an empty title.
var ErrMissingTitle = errors.New("tutorial has no title")

// Meta describes the collection as a whole (navbar content).
type Meta struct {
	Title  string       `yaml:"title,omitempty" json:"title,omitempty"`
	Author string       `yaml:"author,omitempty" json:"author,omitempty"`
	Links  []model.Link `yaml:"links,omitempty" json:"links,omitempty"`
}

// PrimaryLink returns the first link, if any.
func (m Meta) PrimaryLink() (model.Link, bool) {
	if len(m.Links) == 0 {
		return model.Link{}, false
	}
	return m.Links[0], true
}

// Store is an immutable ordered sequence of tutorial records.
type Store struct {
	meta    Meta
	records []model.TutorialRecord
}

// New validates records and copies them into a new Store.
// An empty slice is a configuration error and returns ErrEmptyCollection.
func New(meta Meta, records []model.TutorialRecord) (*Store, error) {
	if len(records) == 0 {
		return nil, model.ErrEmptyCollection
	}
	for i, r := range records {
		if strings.TrimSpace(r.Title) == "" {
			return nil, fmt.Errorf("tutorial %d: %w", i+1, ErrMissingTitle)
		}
	}

	s := &Store{
		meta:    meta,
		records: make([]model.TutorialRecord, len(records)),
	}
	copy(s.records, records)
	s.meta.Links = append([]model.Link(nil), meta.Links...)
	return s, nil
}

// Get returns the record at index. Out-of-range indices return an error
// matching model.ErrOutOfRange.
func (s *Store) Get(index int) (model.TutorialRecord, error) {
	if err := model.CheckIndex(index, len(s.records)); err != nil {
		return model.TutorialRecord{}, err
	}
	return s.records[index], nil
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Meta returns the collection metadata.
func (s *Store) Meta() Meta {
	m := s.meta
	m.Links = append([]model.Link(nil), s.meta.Links...)
	return m
}

// Titles returns every title in order.
func (s *Store) Titles() []string {
	titles := make([]string, len(s.records))
	for i, r := range s.records {
		titles[i] = r.Title
	}
	return titles
}

// All returns a copy of every record in order.
func (s *Store) All() []model.TutorialRecord {
	out := make([]model.TutorialRecord, len(s.records))
	copy(out, s.records)
	return out
}

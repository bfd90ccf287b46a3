package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vanderheijden86/picbook/pkg/model"
)

const sampleYAML = `
title: AVR Basics
author: Someone
links:
  - label: Datasheet
    url: https://example.com/avr.pdf
tutorials:
  - title: Blink
    icon: cpu
    description: |
      Toggle **PB5**.
    code: |-
      ldi r16, 0xFF
        out DDRB, r16
    explanation: Sets the port as output.
  - title: Timers
    icon: clock
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	wantMeta := Meta{
		Title:  "AVR Basics",
		Author: "Someone",
		Links:  []model.Link{{Label: "Datasheet", URL: "https://example.com/avr.pdf"}},
	}
	if diff := cmp.Diff(wantMeta, s.Meta()); diff != "" {
		t.Errorf("meta mismatch (-want +got):\n%s", diff)
	}

	first, _ := s.Get(0)
	want := model.TutorialRecord{
		Title:       "Blink",
		Icon:        "cpu",
		Description: "Toggle **PB5**.\n",
		Code:        "ldi r16, 0xFF\n  out DDRB, r16",
		Explanation: "Sets the port as output.",
	}
	if diff := cmp.Diff(want, first); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}

	second, _ := s.Get(1)
	if second.Code != "" || !second.Description.IsEmpty() {
		t.Errorf("optional fields should stay empty, got %+v", second)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		target error
	}{
		{"no tutorials", "title: x\n", model.ErrEmptyCollection},
		{"empty list", "tutorials: []\n", model.ErrEmptyCollection},
		{"missing title", "tutorials:\n  - icon: cpu\n", ErrMissingTitle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, tt.target) {
				t.Errorf("Parse error = %v, want %v", err, tt.target)
			}
		})
	}

	if _, err := Parse([]byte("{{invalid yaml")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tutorials.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, []byte("title: nothing\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(empty); !errors.Is(err, model.ErrEmptyCollection) {
		t.Errorf("expected ErrEmptyCollection through LoadFile, got %v", err)
	}
}

func TestMarshalBuiltinRoundTrip(t *testing.T) {
	orig := Builtin()

	data, err := Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal(builtin)): %v", err)
	}

	if diff := cmp.Diff(orig.All(), back.All()); diff != "" {
		t.Errorf("round trip changed records (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(orig.Meta(), back.Meta()); diff != "" {
		t.Errorf("round trip changed meta (-want +got):\n%s", diff)
	}
}

package content

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vanderheijden86/picbook/pkg/debug"
	"github.com/vanderheijden86/picbook/pkg/model"
)

// fileFormat is the on-disk layout of a content file:
//
//	title: PIC Assembly
//	author: Martin Carballo
//	links:
//	  - label: PIC16F877 Datasheet
//	    url: https://example.com/datasheet.pdf
//	tutorials:
//	  - title: Blinking an LED
//	    icon: cpu
//	    description: |
//	      Markdown text.
//	    code: |
//	      goto Main
//	    explanation: |
//	      More markdown.
type fileFormat struct {
	Meta      `yaml:",inline"`
	Tutorials []model.TutorialRecord `yaml:"tutorials"`
}

// Parse builds a Store from YAML content.
func Parse(data []byte) (*Store, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}
	return New(f.Meta, f.Tutorials)
}

// LoadFile reads a YAML content file from path.
func LoadFile(path string) (*Store, error) {
	start := time.Now()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	debug.LogTiming("content.LoadFile", time.Since(start))
	debug.Log("loaded %d tutorials from %s", s.Len(), path)
	return s, nil
}

// Marshal encodes a Store in the content file format.
func Marshal(s *Store) ([]byte, error) {
	data, err := yaml.Marshal(fileFormat{Meta: s.Meta(), Tutorials: s.All()})
	if err != nil {
		return nil, fmt.Errorf("marshaling content: %w", err)
	}
	return data, nil
}

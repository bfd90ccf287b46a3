package export

import (
	"bytes"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/vanderheijden86/picbook/pkg/content"
)

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, content.Builtin()); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var got TOC
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	if got.Title != "PIC Assembly" || got.Author != "Martin Carballo" {
		t.Errorf("unexpected header %q / %q", got.Title, got.Author)
	}
	if len(got.Tutorials) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(got.Tutorials))
	}

	want := TOCEntry{Index: 1, Title: "Introduction to PIC Assembly", Icon: "cpu", Lines: 34}
	if diff := cmp.Diff(want, got.Tutorials[0]); diff != "" {
		t.Errorf("first entry mismatch (-want +got):\n%s", diff)
	}
	for i, e := range got.Tutorials {
		if e.Index != i+1 {
			t.Errorf("entry %d has index %d", i, e.Index)
		}
	}
}

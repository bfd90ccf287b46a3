package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/vanderheijden86/picbook/pkg/config"
	"github.com/vanderheijden86/picbook/pkg/debug"
	"github.com/vanderheijden86/picbook/pkg/export"
	"github.com/vanderheijden86/picbook/pkg/model"
	"github.com/vanderheijden86/picbook/pkg/version"
)

func runPicbook(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return execPicbook(t, args...)
}

// execPicbook runs the command tree without touching the environment.
func execPicbook(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := runPicbook(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(out) != "picbook "+version.Version {
		t.Errorf("unexpected version output %q", out)
	}
}

func TestListCommand(t *testing.T) {
	out, err := runPicbook(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 entries, got %d:\n%s", len(lines), out)
	}
	if lines[0] != "* 1. Introduction to PIC Assembly (34 lines)" {
		t.Errorf("unexpected first entry %q", lines[0])
	}
	if !strings.HasPrefix(lines[3], "  4. ") {
		t.Errorf("unexpected last entry %q", lines[3])
	}
}

func TestListCommandMarksStart(t *testing.T) {
	out, err := runPicbook(t, "--start", "2", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "\n* 2. ") {
		t.Errorf("expected lesson 2 marked:\n%s", out)
	}
}

func TestListCommandJSON(t *testing.T) {
	out, err := runPicbook(t, "list", "--json")
	if err != nil {
		t.Fatalf("list --json: %v", err)
	}

	var toc export.TOC
	if err := json.Unmarshal([]byte(out), &toc); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if toc.Title != "PIC Assembly" || len(toc.Tutorials) != 4 {
		t.Errorf("unexpected TOC %+v", toc)
	}
}

func TestShowCommand(t *testing.T) {
	out, err := runPicbook(t, "show", "2")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.HasPrefix(out, "*Lesson 2 of 4*") {
		t.Errorf("expected lesson header, got %q", firstLine(out))
	}
	if !strings.Contains(out, "```asm\n    PROCESSOR 16F877\n") {
		t.Error("expected fenced code sample with indentation kept")
	}
}

func TestShowCommandOutOfRange(t *testing.T) {
	for _, arg := range []string{"0", "9"} {
		_, err := runPicbook(t, "show", arg)
		if !errors.Is(err, model.ErrOutOfRange) {
			t.Errorf("show %s: expected ErrOutOfRange, got %v", arg, err)
		}
	}

	if _, err := runPicbook(t, "show", "two"); err == nil {
		t.Error("expected error for non-numeric lesson")
	}
}

func TestRootPrintsLessonWhenPiped(t *testing.T) {
	out, err := runPicbook(t, "--start", "3")
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	if !strings.HasPrefix(out, "*Lesson 3 of 4*") {
		t.Errorf("expected lesson 3, got %q", firstLine(out))
	}
}

func TestStartOutOfRange(t *testing.T) {
	_, err := runPicbook(t, "--start", "5")
	if !errors.Is(err, model.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if err.Error() != "--start: no lesson 5 (have 4)" {
		t.Errorf("unexpected message %q", err)
	}

	var rangeErr *model.OutOfRangeError
	if !errors.As(err, &rangeErr) || rangeErr.Index != 4 || rangeErr.Length != 4 {
		t.Errorf("expected wrapped OutOfRangeError{4, 4}, got %v", rangeErr)
	}
}

func TestLessonNumbersReportedOneBased(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--start", "0"}, "--start: no lesson 0 (have 4)"},
		{[]string{"show", "0"}, "show: no lesson 0 (have 4)"},
		{[]string{"show", "7"}, "show: no lesson 7 (have 4)"},
	}

	for _, tt := range tests {
		_, err := runPicbook(t, tt.args...)
		if err == nil {
			t.Errorf("%v: expected error", tt.args)
			continue
		}
		if err.Error() != tt.want {
			t.Errorf("%v: got %q, want %q", tt.args, err, tt.want)
		}
		if !errors.Is(err, model.ErrOutOfRange) {
			t.Errorf("%v: expected ErrOutOfRange in chain", tt.args)
		}
	}
}

func TestConfigInit(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	want := filepath.Join(xdg, "picbook", "config.yaml")

	out, err := execPicbook(t, "config", "path")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if strings.TrimSpace(out) != want {
		t.Errorf("config path = %q, want %q", out, want)
	}

	out, err = execPicbook(t, "config", "init")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if strings.TrimSpace(out) != "wrote "+want {
		t.Errorf("unexpected output %q", out)
	}

	cfg, err := config.LoadFrom(want)
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if !cfg.TOCVisible() || cfg.UI.MarkdownStyle != "auto" {
		t.Errorf("unexpected config %+v", cfg)
	}

	if _, err := execPicbook(t, "config", "init"); err == nil {
		t.Error("expected init to refuse overwriting")
	}
	if _, err := execPicbook(t, "config", "init", "--force"); err != nil {
		t.Errorf("init --force: %v", err)
	}
}

func TestConfigInitExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "picbook.yaml")

	if _, err := runPicbook(t, "--config", path, "config", "init"); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}

	// The written file is accepted by every command
	if _, err := runPicbook(t, "--config", path, "list"); err != nil {
		t.Errorf("list with written config: %v", err)
	}
}

func TestExportFormats(t *testing.T) {
	md, err := runPicbook(t, "export")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasPrefix(md, "# PIC Assembly") {
		t.Errorf("unexpected markdown start %q", firstLine(md))
	}

	js, err := runPicbook(t, "export", "--format", "json")
	if err != nil {
		t.Fatalf("export json: %v", err)
	}
	if !json.Valid([]byte(js)) {
		t.Error("expected valid JSON")
	}

	if _, err := runPicbook(t, "export", "--format", "pdf"); err == nil {
		t.Error("expected unknown format error")
	}
}

func TestExportYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pic.yaml")

	if _, err := runPicbook(t, "export", "-f", "yaml", "-o", path); err != nil {
		t.Fatalf("export yaml: %v", err)
	}

	want, err := runPicbook(t, "show", "--raw", "3")
	if err != nil {
		t.Fatal(err)
	}
	got, err := runPicbook(t, "--content", path, "show", "--raw", "3")
	if err != nil {
		t.Fatalf("show from exported file: %v", err)
	}
	if got != want {
		t.Error("lesson loaded from exported YAML differs from built-in")
	}
}

func TestExportMarkdownToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pic.md")

	out, err := runPicbook(t, "export", "-o", path)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if out != "" {
		t.Errorf("expected nothing on stdout, got %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "## Contents") {
		t.Error("expected table of contents in file")
	}
}

func TestContentFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := runPicbook(t, "--content", filepath.Join(dir, "missing.yaml"), "list"); err == nil {
		t.Error("expected error for missing content file")
	}

	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, []byte("title: Nothing\ntutorials: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := runPicbook(t, "--content", empty, "list"); !errors.Is(err, model.ErrEmptyCollection) {
		t.Errorf("expected ErrEmptyCollection, got %v", err)
	}
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()

	custom := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(custom, []byte("title: Custom\ntutorials:\n  - title: Only One\n    code: \"    NOP\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfg, []byte("content_path: "+custom+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runPicbook(t, "--config", cfg, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if strings.TrimSpace(out) != "* 1. Only One (1 lines)" {
		t.Errorf("unexpected list %q", out)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ui:\n  markdown_style: neon\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := runPicbook(t, "--config", bad, "list"); err == nil {
		t.Error("expected invalid markdown_style to fail")
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

func TestExecuteExitCodes(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out, errOut bytes.Buffer
	if code := execute([]string{"version"}, &out, &errOut); code != 0 {
		t.Errorf("version: exit %d", code)
	}

	errOut.Reset()
	if code := execute([]string{"show", "9"}, &out, &errOut); code != 1 {
		t.Errorf("show 9: exit %d, want 1", code)
	}
	if !strings.Contains(errOut.String(), "no lesson 9 (have 4)") {
		t.Errorf("expected error on stderr, got %q", errOut.String())
	}
}

func TestExecuteFlushesDebugLogOnError(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	logPath := filepath.Join(t.TempDir(), "debug.log")
	t.Setenv("PICBOOK_DEBUG_FILE", logPath)
	t.Cleanup(func() { debug.SetEnabled(false) })

	if code := execute([]string{"--debug", "--start", "0"}, io.Discard, io.Discard); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read debug log: %v", err)
	}
	if !strings.Contains(string(data), "config") {
		t.Errorf("expected config dump in debug log, got %q", data)
	}
}

package export

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/vanderheijden86/picbook/pkg/content"
	"github.com/vanderheijden86/picbook/pkg/model"
)

// Package-level compiled regexes (avoid recompilation per call)
var (
	slugNonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9]+`)
	backtickRunRegex         = regexp.MustCompile("`{3,}")
)

// CodeLanguage is the info string used on exported code fences.
const CodeLanguage = "asm"

// GenerateMarkdown renders the whole collection as a single Markdown document:
// title, author, links, a table of contents, then every lesson in order.
func GenerateMarkdown(store *content.Store) string {
	var sb strings.Builder
	meta := store.Meta()

	title := meta.Title
	if title == "" {
		title = "Tutorials"
	}
	sb.WriteString(fmt.Sprintf("# %s\n\n", title))
	if meta.Author != "" {
		sb.WriteString(fmt.Sprintf("*by %s*\n\n", meta.Author))
	}
	for _, l := range meta.Links {
		sb.WriteString(fmt.Sprintf("- [%s](%s)\n", l.Label, l.URL))
	}
	if len(meta.Links) > 0 {
		sb.WriteString("\n")
	}

	records := store.All()

	// Precompute stable, unique slugs for TOC anchors and headings.
	slugCounts := make(map[string]int, len(records))
	slugs := make([]string, len(records))
	for i, r := range records {
		slugs[i] = uniqueSlug(createSlug(r.Title), slugCounts)
	}

	sb.WriteString("## Contents\n\n")
	for i, r := range records {
		sb.WriteString(fmt.Sprintf("%d. [%s](#%s)\n", i+1, r.Title, slugs[i]))
	}
	sb.WriteString("\n---\n\n")

	for i, r := range records {
		sb.WriteString(fmt.Sprintf("<a id=\"%s\"></a>\n\n", slugs[i]))
		writeLesson(&sb, r, "##")
		sb.WriteString("---\n\n")
	}

	return sb.String()
}

// LessonMarkdown renders a single lesson, with its position, as Markdown.
func LessonMarkdown(r model.TutorialRecord, index, total int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*Lesson %d of %d*\n\n", index+1, total))
	writeLesson(&sb, r, "#")
	return sb.String()
}

func writeLesson(sb *strings.Builder, r model.TutorialRecord, heading string) {
	sb.WriteString(fmt.Sprintf("%s %s %s\n\n", heading, iconEmoji(r.Icon), r.Title))

	if !r.Description.IsEmpty() {
		sb.WriteString(strings.TrimRight(r.Description.String(), "\n") + "\n\n")
	}

	if r.Code != "" {
		sb.WriteString(heading + "# Example Code:\n\n")
		sb.WriteString(CodeFence(r.Code, CodeLanguage))
		sb.WriteString("\n")
	}

	if !r.Explanation.IsEmpty() {
		sb.WriteString(strings.TrimRight(r.Explanation.String(), "\n") + "\n\n")
	}
}

// CodeFence wraps code in a fenced block without altering it. The fence is
// made longer than any backtick run inside the code.
func CodeFence(code, lang string) string {
	fence := "```"
	for _, run := range backtickRunRegex.FindAllString(code, -1) {
		if len(run) >= len(fence) {
			fence = strings.Repeat("`", len(run)+1)
		}
	}

	var sb strings.Builder
	sb.WriteString(fence + lang + "\n")
	sb.WriteString(code)
	if !strings.HasSuffix(code, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString(fence + "\n")
	return sb.String()
}

// SaveMarkdownToFile writes GenerateMarkdown output to filename.
func SaveMarkdownToFile(store *content.Store, filename string) error {
	if err := os.WriteFile(filename, []byte(GenerateMarkdown(store)), 0o644); err != nil {
		return fmt.Errorf("writing markdown: %w", err)
	}
	return nil
}

func uniqueSlug(base string, counts map[string]int) string {
	if base == "" {
		base = "section"
	}
	if count, ok := counts[base]; ok {
		count++
		counts[base] = count
		return fmt.Sprintf("%s-%d", base, count)
	}
	counts[base] = 0
	return base
}

// createSlug creates a URL-friendly slug from heading text.
func createSlug(text string) string {
	slug := strings.ToLower(text)
	slug = slugNonAlphanumericRegex.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	return slug
}

func iconEmoji(icon model.Icon) string {
	switch icon {
	case "cpu":
		return "🔲"
	case "monitor":
		return "🖥️"
	case "rotate-cw":
		return "🔄"
	case "settings":
		return "⚙️"
	default:
		return "📘"
	}
}

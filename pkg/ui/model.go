// Package ui is the Bubble Tea view layer for picbook.
//
// The Model renders whatever record the Navigator points at and turns key
// presses into Advance, Retreat and Select calls. It holds no navigation
// state of its own.
package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/picbook/pkg/content"
	"github.com/vanderheijden86/picbook/pkg/debug"
	"github.com/vanderheijden86/picbook/pkg/model"
	"github.com/vanderheijden86/picbook/pkg/nav"
)

// focusArea tracks which pane receives keys.
type focusArea int

const (
	focusContent focusArea = iota
	focusTOC
)

// codeScrollStep is how many columns [ and ] pan the lesson pane.
const codeScrollStep = 8

// Options are view preferences, usually taken from config.Config.
type Options struct {
	ShowTOC       bool
	LineNumbers   bool
	MarkdownStyle string
}

// DefaultOptions mirrors config.DefaultConfig.
func DefaultOptions() Options {
	return Options{ShowTOC: true, MarkdownStyle: "auto"}
}

// Model is the top-level Bubble Tea model.
type Model struct {
	store *content.Store
	nav   *nav.Navigator
	theme Theme

	markdown *MarkdownRenderer
	viewport viewport.Model

	width  int
	height int

	tocVisible  bool
	focus       focusArea
	tocCursor   int
	tocOffset   int // First sidebar row shown
	lineNumbers bool

	viewed    map[int]bool // Indices shown this session
	rendered  int          // Index whose body is loaded in the viewport, -1 if none
	renderedW int          // Width the body was rendered at

	statusMsg     string
	statusIsError bool

	// Side effects, swappable in tests
	copyToClipboard func(string) error
	openURL         func(string) error
}

// NewModel wires a store and the navigator that indexes it into a view.
// The navigator is shared, not copied: the composition root keeps
// ownership and may read it after the program exits.
func NewModel(store *content.Store, navigator *nav.Navigator, theme Theme, opts Options) Model {
	m := Model{
		store:           store,
		nav:             navigator,
		theme:           theme,
		width:           defaultWidth,
		height:          defaultHeight,
		tocVisible:      opts.ShowTOC,
		focus:           focusContent,
		tocCursor:       navigator.Current(),
		lineNumbers:     opts.LineNumbers,
		viewed:          make(map[int]bool),
		rendered:        -1,
		copyToClipboard: writeClipboard,
		openURL:         openInBrowser,
	}
	m.markdown = NewMarkdownRendererWithTheme(m.proseWidth(), opts.MarkdownStyle, theme)
	m.viewport = viewport.New(m.mainWidth(), m.bodyHeight())
	m.viewport.SetHorizontalStep(codeScrollStep)
	m.syncPage()
	m.ensureTOCVisible()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		m.setStatus("", false)
		cmd := m.handleKey(msg)
		m.ensureTOCVisible()
		return m, cmd
	}
	return m, nil
}

// handleKey dispatches global keys, then hands the rest to the focused pane.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit

	case "esc":
		if m.focus == focusTOC {
			m.focus = focusContent
			return nil
		}
		return tea.Quit

	case "t":
		// Toggle TOC and switch focus
		m.tocVisible = !m.tocVisible
		if m.tocVisible {
			m.focus = focusTOC
			m.tocCursor = m.nav.Current()
		} else {
			m.focus = focusContent
		}
		m.resize()
		return nil

	case "tab":
		if m.tocVisible {
			if m.focus == focusContent {
				m.focus = focusTOC
				m.tocCursor = m.nav.Current()
			} else {
				m.focus = focusContent
			}
		} else {
			// Without a TOC, tab advances
			m.nav.Advance()
			m.syncPage()
		}
		return nil

	case "y":
		m.copyCode()
		return nil

	case "o":
		m.openLink()
		return nil
	}

	if m.focus == focusTOC && m.tocVisible {
		m.handleTOCKeys(msg)
	} else {
		m.handleContentKeys(msg)
	}
	m.syncPage()
	return nil
}

// handleContentKeys handles keys when the lesson pane has focus.
func (m *Model) handleContentKeys(msg tea.KeyMsg) {
	switch msg.String() {
	// Lesson navigation
	case "right", "l", "n", " ":
		m.nav.Advance()
	case "left", "h", "p", "shift+tab":
		m.nav.Retreat()

	// Content scrolling
	case "j", "down":
		m.viewport.LineDown(1)
	case "k", "up":
		m.viewport.LineUp(1)
	case "ctrl+d", "pgdown":
		m.viewport.HalfViewDown()
	case "ctrl+u", "pgup":
		m.viewport.HalfViewUp()
	case "g", "home":
		m.viewport.GotoTop()
	case "G", "end":
		m.viewport.GotoBottom()

	// Sideways panning for code lines wider than the pane
	case "shift+right", "]":
		m.viewport.ScrollRight(codeScrollStep)
	case "shift+left", "[":
		m.viewport.ScrollLeft(codeScrollStep)

	// Jump to lesson by number (1-9)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.selectIndex(int(msg.String()[0]-'0') - 1)
	}
}

// handleTOCKeys handles keys when the sidebar has focus.
func (m *Model) handleTOCKeys(msg tea.KeyMsg) {
	last := m.store.Len() - 1

	switch msg.String() {
	case "j", "down":
		if m.tocCursor < last {
			m.tocCursor++
		}
	case "k", "up":
		if m.tocCursor > 0 {
			m.tocCursor--
		}
	case "g", "home":
		m.tocCursor = 0
	case "G", "end":
		m.tocCursor = last
	case "enter", " ":
		if m.selectIndex(m.tocCursor) {
			m.focus = focusContent
		}
	case "l", "right":
		m.focus = focusContent
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.tocCursor = int(msg.String()[0]-'0') - 1
		if m.selectIndex(m.tocCursor) {
			m.focus = focusContent
		} else {
			m.tocCursor = m.nav.Current()
		}
	}
}

// selectIndex forwards to Navigator.Select and reports failures in the
// status line. The index is left unchanged on error.
func (m *Model) selectIndex(index int) bool {
	if err := m.nav.Select(index); err != nil {
		debug.Log("select %d rejected: %v", index, err)
		if errors.Is(err, model.ErrOutOfRange) {
			m.setStatus(fmt.Sprintf("No lesson %d (have %d)", index+1, m.store.Len()), true)
		} else {
			m.setStatus(err.Error(), true)
		}
		return false
	}
	return true
}

// syncPage reloads the viewport when the navigator moved.
func (m *Model) syncPage() {
	current := m.nav.Current()
	if current == m.rendered && m.renderedW == m.viewport.Width {
		return
	}

	record, err := m.store.Get(current)
	if err != nil {
		// Store and navigator were built from different collections.
		m.setStatus(err.Error(), true)
		return
	}

	pageChanged := current != m.rendered
	m.viewport.SetContent(m.renderLesson(record))
	m.rendered = current
	m.renderedW = m.viewport.Width
	m.viewed[current] = true

	if pageChanged {
		m.viewport.GotoTop()
		m.viewport.SetXOffset(0)
		m.tocCursor = current
		debug.Log("showing lesson %d/%d %q", current+1, m.store.Len(), record.Title)
	}
}

func (m *Model) setStatus(msg string, isError bool) {
	m.statusMsg = msg
	m.statusIsError = isError
}

// SetSize sets the terminal dimensions and re-lays out every pane.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.resize()
}

func (m *Model) resize() {
	m.viewport.Width = m.mainWidth()
	m.viewport.Height = m.bodyHeight()
	debug.LogIf(m.width < m.sidebarOuterWidth()+minMainWidth, "terminal %dx%d too narrow, lesson pane clamped to %d", m.width, m.height, m.viewport.Width)
	m.markdown.SetWidth(m.proseWidth())
	m.syncPage()
	m.ensureTOCVisible()
}

// tocRows is how many titles fit in the sidebar below its header.
func (m Model) tocRows() int {
	return max(1, m.bodyHeight()-2-2) // border + header
}

// ensureTOCVisible scrolls the sidebar so the highlighted entry (the cursor
// when the sidebar has focus, else the current lesson) stays on screen.
func (m *Model) ensureTOCVisible() {
	target := m.nav.Current()
	if m.focus == focusTOC {
		target = m.tocCursor
	}

	rows := m.tocRows()
	if target < m.tocOffset {
		m.tocOffset = target
	}
	if target >= m.tocOffset+rows {
		m.tocOffset = target - rows + 1
	}
	m.tocOffset = max(0, min(m.tocOffset, m.store.Len()-rows))
}

func (m Model) sidebarOuterWidth() int {
	if !m.tocVisible {
		return 0
	}
	return sidebarWidth
}

func (m Model) mainWidth() int {
	w := m.width - m.sidebarOuterWidth()
	if m.tocVisible {
		w-- // gap
	}
	if w < minMainWidth {
		w = minMainWidth
	}
	return w
}

func (m Model) proseWidth() int {
	return m.mainWidth() - SpaceSM
}

func (m Model) bodyHeight() int {
	h := m.height - navbarHeight - footerHeight
	if h < minBodyHeight {
		h = minBodyHeight
	}
	return h
}

// Current returns the index being displayed.
func (m Model) Current() int {
	return m.nav.Current()
}

// Viewed reports whether the lesson at index was shown this session.
func (m Model) Viewed(index int) bool {
	return m.viewed[index]
}

// TOCVisible reports whether the sidebar is open.
func (m Model) TOCVisible() bool {
	return m.tocVisible
}

// Status returns the current status line and whether it is an error.
func (m Model) Status() (string, bool) {
	return m.statusMsg, m.statusIsError
}

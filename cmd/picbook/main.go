// Command picbook is a terminal browser for short programming tutorials.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vanderheijden86/picbook/pkg/config"
	"github.com/vanderheijden86/picbook/pkg/content"
	"github.com/vanderheijden86/picbook/pkg/debug"
	"github.com/vanderheijden86/picbook/pkg/export"
	"github.com/vanderheijden86/picbook/pkg/nav"
	"github.com/vanderheijden86/picbook/pkg/ui"
)

// options holds the persistent flags shared by every command.
type options struct {
	configPath  string
	contentPath string
	start       int
	debug       bool
}

// session is what the composition root builds before any command runs.
type session struct {
	cfg   config.Config
	store *content.Store
	nav   *nav.Navigator
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command tree and returns the process exit code. Logs are
// flushed before it returns, so callers may os.Exit right away.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	debug.Sync()
	if err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "picbook",
		Short: "Browse PIC assembly tutorials in the terminal",
		Long: `picbook shows an ordered set of tutorials, one at a time, with a
table of contents, rendered explanations and copyable code samples.

Keys: ←/→ (or h/l, n/p) change lesson, 1-9 jump, j/k scroll, t toggles the
contents sidebar, y copies the code sample, o opens the reference link.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.debug {
				debug.SetEnabled(true)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !isTerminal(out) {
				// Piped: print the starting lesson instead of taking over the screen.
				return printLesson(out, s, s.nav.Current(), false)
			}
			return runTUI(s)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/picbook/config.yaml)")
	flags.StringVar(&opts.contentPath, "content", "", "YAML tutorial file (overrides content_path; default: built-in PIC tutorials)")
	flags.IntVar(&opts.start, "start", 1, "Lesson to open first (1-based)")
	flags.BoolVar(&opts.debug, "debug", false, "Write debug logs (to $PICBOOK_DEBUG_FILE or stderr)")

	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newShowCmd(opts))
	rootCmd.AddCommand(newExportCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// open loads config and content and positions a navigator on --start.
func (o *options) open() (*session, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	debug.Dump("config", cfg)

	path := cfg.ContentPath
	if o.contentPath != "" {
		path = config.ExpandHome(o.contentPath)
	}

	var store *content.Store
	if path == "" {
		store = content.Builtin()
	} else {
		store, err = content.LoadFile(path)
		if err != nil {
			return nil, err
		}
	}

	n, err := nav.New(store.Len())
	if err != nil {
		return nil, err
	}
	if err := selectLesson(n, o.start, "--start"); err != nil {
		return nil, err
	}

	debug.Log("opened %d tutorials from %q, starting at %d", store.Len(), path, n.Current())
	return &session{cfg: cfg, store: store, nav: n}, nil
}

// lessonNumberError reports a bad 1-based lesson number in the user's terms.
// It unwraps to the navigator's *model.OutOfRangeError.
type lessonNumberError struct {
	source string
	number int
	total  int
	err    error
}

func (e *lessonNumberError) Error() string {
	return fmt.Sprintf("%s: no lesson %d (have %d)", e.source, e.number, e.total)
}

func (e *lessonNumberError) Unwrap() error {
	return e.err
}

// selectLesson moves n to the 1-based lesson number.
func selectLesson(n *nav.Navigator, number int, source string) error {
	if err := n.Select(number - 1); err != nil {
		return &lessonNumberError{source: source, number: number, total: n.Len(), err: err}
	}
	return nil
}

func (o *options) loadConfig() (config.Config, error) {
	if o.configPath != "" {
		return config.LoadFrom(o.resolvedConfigPath())
	}
	return config.Load()
}

// resolvedConfigPath is --config with ~ expanded, else the XDG location.
func (o *options) resolvedConfigPath() string {
	if o.configPath != "" {
		return config.ExpandHome(o.configPath)
	}
	return config.ConfigPath()
}

func runTUI(s *session) error {
	defer debug.LogEnterExit("runTUI")()

	theme := ui.DefaultTheme(lipgloss.NewRenderer(os.Stdout))
	m := ui.NewModel(s.store, s.nav, theme, ui.Options{
		ShowTOC:       s.cfg.TOCVisible(),
		LineNumbers:   s.cfg.UI.LineNumbers,
		MarkdownStyle: s.cfg.UI.MarkdownStyle,
	})

	if err := runTUIProgram(m, tuiOptionsFromEnv()); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	debug.Log("exited on lesson %d/%d", s.nav.Current()+1, s.nav.Len())
	return nil
}

// printLesson writes lesson index as Markdown, rendered when pretty is set.
func printLesson(w io.Writer, s *session, index int, pretty bool) error {
	rec, err := s.store.Get(index)
	if err != nil {
		return err
	}
	md := export.LessonMarkdown(rec, index, s.store.Len())
	if pretty {
		md = renderForTerminal(md, s.cfg.UI.MarkdownStyle, terminalWidth(w))
	}
	_, err = io.WriteString(w, md)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}

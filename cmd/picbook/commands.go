package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/vanderheijden86/picbook/pkg/config"
	"github.com/vanderheijden86/picbook/pkg/content"
	"github.com/vanderheijden86/picbook/pkg/debug"
	"github.com/vanderheijden86/picbook/pkg/export"
	"github.com/vanderheijden86/picbook/pkg/version"
)

func newListCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the table of contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return export.WriteJSON(out, s.store)
			}

			for _, e := range export.BuildTOC(s.store).Tutorials {
				marker := " "
				if e.Index-1 == s.nav.Current() {
					marker = "*"
				}
				fmt.Fprintf(out, "%s%2d. %s (%d lines)\n", marker, e.Index, e.Title, e.Lines)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON")
	return cmd
}

func newShowCmd(opts *options) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show [N]",
		Short: "Print one lesson as Markdown (default: --start)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open()
			if err != nil {
				return err
			}

			index := s.nav.Current()
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("lesson number %q: %w", args[0], err)
				}
				if err := selectLesson(s.nav, n, "show"); err != nil {
					return err
				}
				index = s.nav.Current()
			}

			out := cmd.OutOrStdout()
			return printLesson(out, s, index, !raw && isTerminal(out))
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print Markdown source even on a terminal")
	return cmd
}

func newExportCmd(opts *options) *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the whole collection",
		Long: `Export the whole collection.

Formats:
  markdown  one document with a linked table of contents (default)
  json      table of contents only
  yaml      a content file that --content can load back`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open()
			if err != nil {
				return err
			}

			var data []byte
			switch strings.ToLower(format) {
			case "markdown", "md":
				if output != "" {
					return export.SaveMarkdownToFile(s.store, output)
				}
				data = []byte(export.GenerateMarkdown(s.store))
			case "json":
				var sb strings.Builder
				if err := export.WriteJSON(&sb, s.store); err != nil {
					return err
				}
				data = []byte(sb.String())
			case "yaml", "yml":
				data, err = content.Marshal(s.store)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format %q (want markdown, json or yaml)", format)
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			debug.Log("exported %d tutorials to %s", s.store.Len(), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().StringVarP(&format, "format", "f", "markdown", "markdown, json or yaml")
	return cmd
}

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.resolvedConfigPath()
			if path == "" {
				return fmt.Errorf("cannot determine config directory")
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config %s already exists (use --force to overwrite)", path)
			}

			cfg := config.DefaultConfig()
			showTOC := true
			cfg.UI.ShowTOC = &showTOC

			var err error
			if opts.configPath == "" {
				err = config.Save(cfg)
			} else {
				err = config.SaveTo(cfg, path)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), opts.resolvedConfigPath())
		},
	}

	cmd.AddCommand(initCmd, pathCmd)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "picbook %s\n", version.Version)
		},
	}
}

// renderForTerminal renders md with glamour, falling back to the source
// on any renderer error.
func renderForTerminal(md, style string, width int) string {
	styleOpt := glamour.WithStandardStyle(style)
	if style == "" || style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}

	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		debug.Log("glamour style %q: %v", style, err)
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		debug.Log("glamour render: %v", err)
		return md
	}
	return out
}

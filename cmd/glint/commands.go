package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/glint/pkg/console"
	"github.com/arthur-debert/glint/pkg/live"
	"github.com/arthur-debert/glint/pkg/markdown"
	"github.com/arthur-debert/glint/pkg/markup"
	"github.com/arthur-debert/glint/pkg/panel"
	"github.com/arthur-debert/glint/pkg/progress"
	"github.com/arthur-debert/glint/pkg/rule"
	"github.com/arthur-debert/glint/pkg/syntax"
	"github.com/arthur-debert/glint/pkg/table"
	"github.com/arthur-debert/glint/pkg/text"
	"github.com/arthur-debert/glint/pkg/theme"
)

func newMarkdownCmd() *cobra.Command {
	var codeTheme string
	cmd := &cobra.Command{
		Use:   "md FILE",
		Short: "Render a markdown file to the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			doc := markdown.New(string(data)).CodeTheme(codeTheme)
			return newConsole(os.Stdout).Print(doc)
		},
	}
	cmd.Flags().StringVar(&codeTheme, "code-theme", syntax.DefaultTheme, "Chroma style for fenced code blocks")
	return cmd
}

func newCodeCmd() *cobra.Command {
	var lang, codeTheme string
	cmd := &cobra.Command{
		Use:   "code FILE",
		Short: "Render a source file with syntax highlighting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if lang == "" {
				lang = strings.TrimPrefix(filepath.Ext(args[0]), ".")
			}
			code := syntax.New(string(data), lang).Theme(codeTheme)
			return newConsole(os.Stdout).Print(code)
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "", "Language (defaults to the file extension)")
	cmd.Flags().StringVar(&codeTheme, "theme", syntax.DefaultTheme, "Chroma style name")
	return cmd
}

func newMarkupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "markup TEXT",
		Short: "Render tagged markup, resolving tags against the theme",
		Long: `Render markup like "<heading>Title</heading> <error>failed</error>".
Tags resolve against the user theme first, then as style specifications
with dashes for spaces (<bold-red>).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := theme.Load()
			if err != nil {
				return err
			}
			txt, err := markup.Parse(args[0], th.Resolve)
			if err != nil {
				return err
			}
			return newConsole(os.Stdout).Print(txt)
		},
	}
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Show the rendering building blocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newConsole(os.Stdout)
			th, err := theme.Load()
			if err != nil {
				return err
			}

			heading, err := th.Get("heading")
			if err != nil {
				return err
			}
			if err := c.Print(rule.New().Title("glint demo").Style(heading)); err != nil {
				return err
			}

			body, err := markup.Parse(
				"Styled text with <bold>bold</bold>, <italic>italic</italic> and <bold-red>color</bold-red>.",
				th.Resolve,
			)
			if err != nil {
				return err
			}
			if err := c.Print(panel.New(body).Title("markup")); err != nil {
				return err
			}

			tbl := table.New(
				table.Column{Header: "widget"},
				table.Column{Header: "package"},
			).
				AddRow("styled text", "pkg/text").
				AddRow("panels", "pkg/panel").
				AddRow("tables", "pkg/table").
				AddRow("progress", "pkg/progress")
			if err := c.Print(tbl); err != nil {
				return err
			}

			code := "func main() {\n\tfmt.Println(\"hello\")\n}"
			if err := c.Print(panel.New(syntax.New(code, "go")).Title("code")); err != nil {
				return err
			}

			return demoProgress(c)
		},
	}
}

// demoProgress drives a short fake workload through a live session.
func demoProgress(c *console.Console) error {
	tr := progress.NewTracker()
	first := tr.Add("rendering", 20)
	second := tr.Add("flushing", 10)

	err := tr.Run(c, func(tr *progress.Tracker) error {
		for i := 0; i < 20; i++ {
			tr.Advance(first, 1)
			if i%2 == 0 {
				tr.Advance(second, 1)
			}
			time.Sleep(40 * time.Millisecond)
		}
		return nil
	}, live.WithInterval(50*time.Millisecond))
	if err != nil {
		return err
	}

	return c.Print(text.New("done."))
}

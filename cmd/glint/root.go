package main

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/glint/internal/version"
	"github.com/arthur-debert/glint/pkg/console"
	"github.com/arthur-debert/glint/pkg/logging"
)

var (
	verbosity int
	width     int
	noColor   bool
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "glint",
		Short: "A terminal rendering toolkit",
		Long: `glint renders markdown, highlighted source code, and styled markup
to the terminal, degrading colors to what the terminal supports.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().IntVar(&width, "width", 0, "Override the detected terminal width")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colors and styling")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newMarkdownCmd())
	rootCmd.AddCommand(newCodeCmd())
	rootCmd.AddCommand(newMarkupCmd())
	rootCmd.AddCommand(newDemoCmd())
	return rootCmd
}

// newConsole builds the output console honoring the global flags.
func newConsole(out io.Writer) *console.Console {
	var opts []console.Option
	if width > 0 {
		opts = append(opts, console.WithWidth(width))
	}
	if noColor {
		opts = append(opts, console.WithProfile(termenv.Ascii))
	}
	return console.New(out, opts...)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("glint version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

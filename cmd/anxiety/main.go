// A command line tool to find drift between duplicated quotes in documents
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alex-bochkarev/anxiety"
)

func init() {
	rootCmd.PersistentPreRunE = setup
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootCmd.color, "color", rootCmd.color,
		"Colorize output (auto|on|off)")
	flags.BoolVarP(&rootCmd.verbose, "verbose", "v", rootCmd.verbose,
		"Log informational messages, not only warnings")
	flags.StringVarP(&rootCmd.config, "config", "c", "",
		"Read settings from TOML file")
}

var rootCmd = struct {
	cobra.Command
	color   string
	verbose bool
	config  string
}{
	Command: cobra.Command{
		Use:           "anxiety",
		Short:         "Find drift between copies of quoted text in documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	},
	color: "auto",
}

func setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelWarn
	if rootCmd.verbose {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(
		cmd.ErrOrStderr(),
		&slog.HandlerOptions{Level: level},
	)))
	switch rootCmd.color {
	case "auto":
		color.NoColor = !isTerminal(os.Stdout)
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color value '%s'", rootCmd.color)
	}
	return nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func loadConfig() (anxiety.Config, error) {
	if rootCmd.config == "" {
		return anxiety.DefaultConfig(), nil
	}
	return anxiety.LoadConfig(rootCmd.config)
}

// scan runs the scanning phase over all files matching patterns.
func scan(cfg anxiety.Config, patterns []string) (*anxiety.Store, error) {
	sc, err := anxiety.NewScanner(cfg, slog.Default())
	if err != nil {
		return nil, err
	}
	for _, file := range anxiety.ExpandPatterns(patterns) {
		if err := sc.ScanFile(file); err != nil {
			return nil, err
		}
	}
	return sc.Finish(), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/alex-bochkarev/anxiety"
)

func init() {
	compareCmd.RunE = compareFiles
	compareCmd.Flags().StringVarP(&compareCmd.granularity,
		"granularity", "g", "",
		"Diff on chars, words or lines (overrides config)")
	rootCmd.AddCommand(&compareCmd.Command)
}

var compareCmd = struct {
	cobra.Command
	granularity string
}{
	Command: cobra.Command{
		Use:   "compare FILE|GLOB...",
		Short: "Compare all quotes against their canonical instance",
		Args:  cobra.MinimumNArgs(1),
	},
}

func compareFiles(cmd *cobra.Command, patterns []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if compareCmd.granularity != "" {
		cfg.Granularity = compareCmd.granularity
	}
	store, err := scan(cfg, patterns)
	if err != nil {
		return err
	}
	cmpr, err := newCompare(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	n := cmpr.Store(store)
	slog.Info("comparison done", "quotes", store.Len(), "differing", n)
	return nil
}

func newCompare(cfg anxiety.Config, out io.Writer) (*anxiety.Compare, error) {
	g, err := anxiety.ParseGranularity(cfg.Granularity)
	if err != nil {
		return nil, err
	}
	width := cfg.Width
	if width == 0 {
		width = anxiety.DefaultWidth
	}
	return &anxiety.Compare{
		DiffBlock: anxiety.DiffBlock{
			Width:       cfg.Width,
			Granularity: g,
			Styles:      anxiety.DefaultStyles(),
		},
		OnDiff: func(c *anxiety.Comparison) bool {
			fmt.Fprintf(out, "Comparing '%s' from %s vs %s...",
				c.Name,
				c.Instance.File,
				c.Canonical.File,
			)
			if c.Different {
				fmt.Fprintln(out)
				fmt.Fprintln(out, ansi.Wrap(c.Block, width, ""))
			} else {
				fmt.Fprintln(out, "(no differences)")
			}
			return false
		},
		Log: slog.Default(),
	}, nil
}

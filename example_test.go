package anxiety

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

func ExampleCompare() {
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	sc, err := NewScanner(DefaultConfig(), quiet)
	if err != nil {
		fmt.Println(err)
		return
	}
	inputs := []struct{ name, text string }{
		{"a.tex", "% begin quote greet\nHello   world!\n% end quote\n"},
		{"b.tex", "intro\n% begin quote greet\nHello, world!\n% end quote greet\n"},
	}
	for _, in := range inputs {
		if err := sc.ScanReader(in.name, strings.NewReader(in.text)); err != nil {
			fmt.Println(err)
			return
		}
	}
	cmpr := Compare{
		Log: quiet,
		OnDiff: func(c *Comparison) bool {
			fmt.Printf("Comparing '%s' from %s vs %s...\n", c.Name, c.Instance.File, c.Canonical.File)
			for _, l := range strings.Split(c.Block, "\n") {
				if l != "" {
					fmt.Println(l)
				}
			}
			return false
		},
	}
	fmt.Println(cmpr.Store(sc.Finish()), "differing")
	// Output:
	// Comparing 'greet' from b.tex vs a.tex...
	// === [begin of greet] =================================================
	// Locations: b.tex:2 (vs a.tex:1)
	// Hello, world!
	// === [end of greet] ===================================================
	// 1 differing
}

func ExampleScanner_ScanLine() {
	var sc Scanner
	lines := []string{
		"% begin quote Q1",
		"hello",
		"% end quote Q1",
		"% end quote Q1",
	}
	for i, l := range lines {
		if err := sc.ScanLine(l, "doc.tex", i+1); err != nil {
			fmt.Println(err)
		}
	}
	r := sc.Store().Regions("q1")[0]
	fmt.Printf("%s %d-%d %q\n", r.Name, r.Start, r.End, r.Text)
	// Output:
	// doc.tex:4: 'q1': region is not open
	// q1 1-3 "hello\n"
}

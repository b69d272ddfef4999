// Package anxsting supports checking quotes in documents from your Go tests.
//
// Example checks that all copies of each quote in the LaTeX sources of a
// project's documentation are the same:
//
//	func TestQuotes(t *testing.T) {
//		anxsting.Consistent(t, "doc/*.tex")
//	}
package anxsting

import (
	"log/slog"
	"os"
	"regexp"
	"testing"

	"github.com/alex-bochkarev/anxiety"
)

// When this environment variable is set to a regexp and the name of the
// current test matches, differences are only logged and do not fail the test.
// E.g.
//
//	ANXSTING_TOLERATE=TestQuotes go test .
const TolerateEnv = "ANXSTING_TOLERATE"

// Consistent fails t if a quote in the files matching patterns differs from
// its canonical instance.
func Consistent(t testing.TB, patterns ...string) error {
	t.Helper()
	return defaultConfig.Consistent(t, patterns...)
}

type Config struct {
	anxiety.Config
	// Stop after this many differing quotes. 0 means report all.
	DiffLimit int
	// Call t.Fatal instead of t.Error
	Fatal bool
}

var defaultConfig = Config{
	Config:    anxiety.DefaultConfig(),
	DiffLimit: 0,
	Fatal:     false,
}

// Consistent scans all files matching patterns and reports each differing
// quote to t. The returned error is a scanning error or an anxiety.DiffCount.
func (cfg Config) Consistent(t testing.TB, patterns ...string) error {
	t.Helper()
	log := slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	sc, err := anxiety.NewScanner(cfg.Config, log)
	if err != nil {
		t.Fatal(err)
		return err
	}
	for _, file := range anxiety.ExpandPatterns(patterns) {
		if err = sc.ScanFile(file); err != nil {
			cfg.fail(t, err)
			return err
		}
	}
	tolerate := tolerateTest(t)
	cmpr := anxiety.Compare{
		DiffBlock: anxiety.DiffBlock{Width: cfg.Width},
		Log:       log,
	}
	cmpr.DiffBlock.Granularity, err = anxiety.ParseGranularity(cfg.Granularity)
	if err != nil {
		t.Fatal(err)
		return err
	}
	cmpr.OnDiff = DiffReport(t, tolerate, cfg.DiffLimit)
	if n := cmpr.Store(sc.Finish()); n > 0 {
		err = anxiety.DiffCount(n)
		if !tolerate {
			cfg.fail(t, err)
		}
		return err
	}
	return nil
}

func (cfg Config) fail(t testing.TB, err error) {
	t.Helper()
	if cfg.Fatal {
		t.Fatal(err)
	} else {
		t.Error(err)
	}
}

func tolerateTest(t testing.TB) bool {
	tol := os.Getenv(TolerateEnv)
	if tol == "" {
		return false
	}
	r, err := regexp.Compile(tol)
	if err != nil {
		t.Logf("anxsting: invalid regexp '%s' in %s, not tolerating: %s", tol, TolerateEnv, err)
		return false
	}
	return r.MatchString(t.Name())
}

// DiffReport returns an OnDiffFunc that logs each differing quote to t. When
// limit > 0 comparison is aborted after limit differences.
func DiffReport(t testing.TB, logOnly bool, limit int) anxiety.OnDiffFunc {
	count := 0
	return func(c *anxiety.Comparison) bool {
		if !c.Different {
			return false
		}
		count++
		if logOnly {
			t.Logf("quote '%s' differs:\n%s", c.Name, c.Block)
		} else {
			t.Errorf("quote '%s' differs:\n%s", c.Name, c.Block)
		}
		return limit > 0 && count >= limit
	}
}

type testWriter struct{ t testing.TB }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

package anxiety

import (
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Scanner extracts regions from input lines. All lines of all inputs of one
// run go through the same Scanner in input order. Regions may span files
// because the open/close state is kept per Scanner, not per file. A Scanner
// must not be used concurrently.
//
// The zero value scans with DefaultConfig. A nil Pre or Post gets the
// default pipeline, use an empty Pipeline to skip normalization.
type Scanner struct {
	Syntax Syntax
	// Applied to each raw line before it is scanned.
	Pre Normalizer
	// Applied once to a region's text when the region is closed.
	Post Normalizer
	Log  *slog.Logger

	store  *Store
	status map[string]RegionStatus
	open   int
}

// NewScanner creates a scanner for one run from cfg. If log is nil
// slog.Default() is used.
func NewScanner(cfg Config, log *slog.Logger) (*Scanner, error) {
	pre, err := PipelineByNames(cfg.Preprocess)
	if err != nil {
		return nil, err
	}
	post, err := PipelineByNames(cfg.Postprocess)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	return &Scanner{
		Syntax: cfg.Syntax,
		Pre:    pre,
		Post:   post,
		Log:    log,
	}, nil
}

func (sc *Scanner) init() {
	if sc.store == nil {
		sc.store = NewStore()
		sc.status = make(map[string]RegionStatus)
	}
	if sc.Log == nil {
		sc.Log = slog.Default()
	}
	if sc.Syntax == (Syntax{}) {
		sc.Syntax = DefaultSyntax()
	}
	if sc.Pre == nil || sc.Post == nil {
		def := DefaultConfig()
		if sc.Pre == nil {
			sc.Pre, _ = PipelineByNames(def.Preprocess)
		}
		if sc.Post == nil {
			sc.Post, _ = PipelineByNames(def.Postprocess)
		}
	}
}

// Store returns the regions collected so far.
func (sc *Scanner) Store() *Store {
	sc.init()
	return sc.store
}

// Status returns the state of the most recent instance of region name.
func (sc *Scanner) Status(name string) RegionStatus { return sc.status[name] }

// OpenCount returns the number of currently open regions.
func (sc *Scanner) OpenCount() int { return sc.open }

// OpenNames returns the names of all open regions in order of discovery.
func (sc *Scanner) OpenNames() (names []string) {
	sc.init()
	for _, nm := range sc.store.Names() {
		if sc.status[nm] == StatusOpen {
			names = append(names, nm)
		}
	}
	return names
}

// ScanLine processes one input line. line is the 1-based line number of raw
// in file. Returned errors are fatal and wrap one of the Err* kinds. Lines
// that are not valid UTF-8 are rejected with ErrInvalidUTF8.
func (sc *Scanner) ScanLine(raw, file string, line int) error {
	sc.init()
	if !utf8.ValidString(raw) {
		return &LineError{File: file, Line: line, err: ErrInvalidUTF8}
	}
	text := sc.Pre.Normalize(raw)
	if tail, ok := cutDirective(text, sc.Syntax.OpenDirective); ok {
		return sc.openRegion(tail, file, line)
	}
	if tail, ok := cutDirective(text, sc.Syntax.CloseDirective); ok {
		return sc.closeRegion(tail, file, line)
	}
	for _, nm := range sc.store.Names() {
		if sc.status[nm] == StatusOpen {
			r := sc.store.Last(nm)
			r.Text += text + "\n"
		}
	}
	return nil
}

func (sc *Scanner) openRegion(tail, file string, line int) error {
	name := sc.regionName(tail)
	if name == "" {
		sc.Log.Warn("ignoring open directive without region name",
			"file", file, "line", line)
		return nil
	}
	if sc.status[name] == StatusOpen {
		return &LineError{File: file, Line: line, Name: name, err: ErrDuplicateOpen}
	}
	r := &Region{Name: name, File: file, Start: line}
	sc.store.add(r)
	sc.status[name] = StatusOpen
	sc.open++
	if m := sc.Syntax.CanonicalMarker; m != "" && strings.Contains(tail, m) {
		if prev := sc.store.SetCanonical(r); prev != nil {
			sc.Log.Warn("conflicting canonical markers, using the later one",
				"region", name,
				"previous", location(prev.File, prev.Start),
				"current", location(file, line))
		} else {
			sc.Log.Info("marked canonical", "region", name, "file", file, "line", line)
		}
	}
	return nil
}

func (sc *Scanner) closeRegion(tail, file string, line int) error {
	name := sc.regionName(tail)
	if name == "" && sc.open == 1 {
		if open := sc.OpenNames(); len(open) == 1 {
			name = open[0]
			sc.Log.Info("closing the only open region",
				"region", name, "file", file, "line", line)
		}
	}
	if name == "" {
		if sc.open > 1 {
			return &LineError{
				File: file, Line: line,
				Open: sc.OpenNames(),
				err:  ErrAmbiguousClose,
			}
		}
		sc.Log.Warn("ignoring close directive without region name, no region is open",
			"file", file, "line", line)
		return nil
	}
	if !sc.store.Has(name) {
		return &LineError{File: file, Line: line, Name: name, err: ErrUnknownRegion}
	}
	if sc.status[name] != StatusOpen {
		return &LineError{File: file, Line: line, Name: name, err: ErrNotOpen}
	}
	r := sc.store.Last(name)
	r.End = line
	sc.status[name] = StatusClosed
	sc.open--
	r.Text = sc.Post.Normalize(r.Text)
	return nil
}

// regionName extracts the region name from the tail of a directive line.
func (sc *Scanner) regionName(tail string) string {
	for _, c := range sc.Syntax.IgnoredChars {
		tail = strings.ReplaceAll(tail, string(c), "")
	}
	return strings.ToLower(strings.TrimSpace(tail))
}

// ScanReader scans all lines from rd. name is used as the file name of the
// regions found in rd. An input without any line is an ErrEmptyFile. Mixed
// line terminators are reported as warning.
func (sc *Scanner) ScanReader(name string, rd io.Reader) error {
	sc.init()
	n, le, err := ReadLines(rd, func(line string, lno int) error {
		return sc.ScanLine(line, name, lno)
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return &LineError{File: name, err: ErrEmptyFile}
	}
	if le.Mixed() {
		sc.Log.Warn("mixed line endings", "file", name, "lf", le.LF, "crlf", le.CRLF)
	}
	sc.Log.Info("scanned file", "file", name, "lines", n)
	return nil
}

// ScanFile opens file with OpenSource and scans it.
func (sc *Scanner) ScanFile(file string) error {
	rd, err := OpenSource(file)
	if err != nil {
		return err
	}
	defer rd.Close()
	return sc.ScanReader(file, rd)
}

// Finish ends the scanning phase. Regions still open are reported as warning
// and stay open with End == 0.
func (sc *Scanner) Finish() *Store {
	sc.init()
	for _, nm := range sc.OpenNames() {
		r := sc.store.Last(nm)
		sc.Log.Warn("region still open at end of input",
			"region", nm, "file", r.File, "line", r.Start)
	}
	return sc.store
}

func cutDirective(line, directive string) (tail string, ok bool) {
	if directive == "" || len(line) < len(directive) {
		return "", false
	}
	if !strings.EqualFold(line[:len(directive)], directive) {
		return "", false
	}
	return line[len(directive):], true
}

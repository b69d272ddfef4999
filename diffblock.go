package anxiety

import (
	"fmt"
	"strings"
	"time"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Granularity selects the tokens the edit script is computed on.
type Granularity string

const (
	GranularityChars Granularity = "chars"
	GranularityWords Granularity = "words"
	GranularityLines Granularity = "lines"
)

func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(strings.ToLower(s)); g {
	case "":
		return GranularityChars, nil
	case GranularityChars, GranularityWords, GranularityLines:
		return g, nil
	}
	return "", fmt.Errorf("unknown diff granularity '%s'", s)
}

// Styles of a diff block. A nil color renders plain text.
type Styles struct {
	Label  *color.Color
	Insert *color.Color
	Delete *color.Color
}

func DefaultStyles() Styles {
	return Styles{
		Label:  color.New(color.FgCyan),
		Insert: color.New(color.FgGreen, color.Underline),
		Delete: color.New(color.FgRed, color.CrossedOut),
	}
}

func paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

// DiffBlock renders the differences of two texts as a delimited report block.
// The zero value renders plain character diffs DefaultWidth columns wide.
type DiffBlock struct {
	Width       int
	Granularity Granularity
	Styles      Styles
	// Passed on to the diff algorithm. Zero keeps the algorithm's default.
	Timeout time.Duration
}

const (
	beginRule = "=== [begin of "
	endRule   = "=== [end of "
)

// Render computes the edit script that turns a into b and renders it. Text
// only in b is marked as insertion, text only in a as deletion. lineA and
// lineB are the lines where a and b start in fileA and fileB.
func (d *DiffBlock) Render(a, b, label, fileA, fileB string, lineA, lineB int) (different bool, block string) {
	var sb strings.Builder
	d.rule(&sb, beginRule, label)
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "Locations: %s:%d (vs %s:%d)\n\n", fileA, lineA, fileB, lineB)
	for _, df := range d.Diffs(a, b) {
		switch df.Type {
		case diffmatchpatch.DiffEqual:
			sb.WriteString(df.Text)
		case diffmatchpatch.DiffInsert:
			sb.WriteString(paint(d.Styles.Insert, df.Text))
			different = true
		case diffmatchpatch.DiffDelete:
			sb.WriteString(paint(d.Styles.Delete, df.Text))
			different = true
		}
	}
	sb.WriteString("\n\n")
	d.rule(&sb, endRule, label)
	return different, sb.String()
}

func (d *DiffBlock) rule(sb *strings.Builder, head, label string) {
	width := d.Width
	if width == 0 {
		width = DefaultWidth
	}
	sb.WriteString(head)
	sb.WriteString(paint(d.Styles.Label, label))
	sb.WriteString("] ")
	fill := width - runewidth.StringWidth(head) - runewidth.StringWidth(label) - 2
	if fill > 0 {
		sb.WriteString(strings.Repeat("=", fill))
	}
}

// Diffs returns the raw edit script from a to b without any cleanup.
func (d *DiffBlock) Diffs(a, b string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	if d.Timeout > 0 {
		dmp.DiffTimeout = d.Timeout
	}
	switch d.Granularity {
	case GranularityWords:
		var tt tokenTable
		ra, rb := tt.runes(a), tt.runes(b)
		return tt.expand(dmp.DiffMainRunes(ra, rb, false))
	case GranularityLines:
		ra, rb, lines := dmp.DiffLinesToRunes(a, b)
		return decodeLines(dmp.DiffMainRunes(ra, rb, false), lines)
	}
	return dmp.DiffMain(a, b, false)
}

// decodeLines replaces the line indices in diffs by the lines.
func decodeLines(diffs []diffmatchpatch.Diff, lines []string) []diffmatchpatch.Diff {
	for i := range diffs {
		var sb strings.Builder
		for _, r := range diffs[i].Text {
			if idx := int(r); idx >= 0 && idx < len(lines) {
				sb.WriteString(lines[idx])
			}
		}
		diffs[i].Text = sb.String()
	}
	return diffs
}

// tokenTable maps word tokens to runes so that the rune diff runs on words.
type tokenTable struct {
	tokens []string
	index  map[string]rune
}

func tokenRune(i int) rune {
	r := rune(i)
	if r >= 0xD800 {
		r += 0x800 // skip surrogates
	}
	return r
}

func (tt *tokenTable) runes(text string) (res []rune) {
	if tt.index == nil {
		tt.index = make(map[string]rune)
	}
	seg := words.FromString(text)
	for seg.Next() {
		tok := seg.Value()
		r, ok := tt.index[tok]
		if !ok {
			r = tokenRune(len(tt.tokens))
			tt.tokens = append(tt.tokens, tok)
			tt.index[tok] = r
		}
		res = append(res, r)
	}
	return res
}

func (tt *tokenTable) expand(diffs []diffmatchpatch.Diff) []diffmatchpatch.Diff {
	for i := range diffs {
		var sb strings.Builder
		for _, r := range diffs[i].Text {
			if r >= 0xE000 {
				r -= 0x800
			}
			sb.WriteString(tt.tokens[r])
		}
		diffs[i].Text = sb.String()
	}
	return diffs
}

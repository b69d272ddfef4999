package anxiety

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalizer canonicalizes a piece of text. Normalizers are used on each raw
// input line before it is scanned and on the accumulated text of a region
// when the region is closed.
type Normalizer interface {
	Normalize(text string) string
}

type NormalizerFunc func(string) string

func (f NormalizerFunc) Normalize(text string) string { return f(text) }

// Pipeline applies its normalizers in order.
type Pipeline []Normalizer

func (p Pipeline) Normalize(text string) string {
	for _, n := range p {
		text = n.Normalize(text)
	}
	return text
}

// Names of the built-in normalizers
const (
	NormSquashWhitespace      = "squash-whitespace"
	NormSquashSpacesTabs      = "squash-spaces-tabs"
	NormReplaceSingleNewlines = "replace-single-newlines"
	NormNFC                   = "nfc"
)

var normalizers = map[string]Normalizer{
	NormSquashWhitespace:      NormalizerFunc(SquashWhitespace),
	NormSquashSpacesTabs:      NormalizerFunc(SquashSpacesTabs),
	NormReplaceSingleNewlines: NormalizerFunc(ReplaceSingleNewlines),
	NormNFC:                   NormalizerFunc(norm.NFC.String),
}

func NormalizerByName(name string) (Normalizer, error) {
	if n, ok := normalizers[name]; ok {
		return n, nil
	}
	return nil, fmt.Errorf("unknown normalizer '%s'", name)
}

func PipelineByNames(names []string) (Pipeline, error) {
	p := make(Pipeline, 0, len(names))
	for _, nm := range names {
		n, err := NormalizerByName(nm)
		if err != nil {
			return nil, err
		}
		p = append(p, n)
	}
	return p, nil
}

// SquashWhitespace replaces every run of whitespace, including newlines, with
// a single space and drops leading and trailing whitespace.
func SquashWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// SquashSpacesTabs collapses runs of horizontal whitespace into one space.
// Newlines are kept. All other bytes are copied unchanged, valid UTF-8 or not.
func SquashSpacesTabs(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	inRun := false
	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case ' ', '\t', '\f', '\v':
			if !inRun {
				sb.WriteByte(' ')
				inRun = true
			}
		default:
			sb.WriteByte(c)
			inRun = false
		}
	}
	return sb.String()
}

// ReplaceSingleNewlines joins soft-wrapped lines: a newline between two
// non-empty lines becomes a space. So does a leading newline. Empty lines
// (paragraph breaks) and the final newline stay untouched.
func ReplaceSingleNewlines(text string) string {
	b := []byte(text)
	for i, c := range b {
		if c != '\n' {
			continue
		}
		if i > 0 && text[i-1] == '\n' {
			continue
		}
		if i+1 >= len(b) || text[i+1] == '\n' {
			continue
		}
		b[i] = ' '
	}
	return string(b)
}

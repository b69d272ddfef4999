package anxiety

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

// XZSuffix marks input files that are decompressed while read.
const XZSuffix = ".xz"

// ExpandPatterns expands shell glob patterns in order. A pattern that matches
// nothing, or is not a valid pattern, is used literally as a file name.
func ExpandPatterns(patterns []string) (files []string) {
	for _, p := range patterns {
		matches, err := filepath.Glob(p)
		if err != nil || len(matches) == 0 {
			files = append(files, p)
			continue
		}
		files = append(files, matches...)
	}
	return files
}

type sourceFile struct {
	io.Reader
	f *os.File
}

func (s sourceFile) Close() error { return s.f.Close() }

// OpenSource opens an input file. Files with XZSuffix are decompressed.
func OpenSource(file string) (io.ReadCloser, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(file, XZSuffix) {
		return f, nil
	}
	xr, err := xz.NewReader(bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return sourceFile{Reader: xr, f: f}, nil
}

// LineEndings counts the line terminators ReadLines has seen.
type LineEndings struct {
	LF, CRLF int
}

// Mixed reports whether both '\n' and "\r\n" terminate lines.
func (le LineEndings) Mixed() bool { return le.LF > 0 && le.CRLF > 0 }

// ScanLines is a bufio.SplitFunc like bufio.ScanLines that also counts the
// terminators of the lines it splits off.
func (le *LineEndings) ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		if line, ok := bytes.CutSuffix(data[:i], []byte{'\r'}); ok {
			le.CRLF++
			return i + 1, line, nil
		}
		le.LF++
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), bytes.TrimSuffix(data, []byte{'\r'}), nil
	}
	return 0, nil, nil
}

// ReadLines calls do for each line in rd with its 1-based line number. Line
// terminators, '\n' or "\r\n", are not passed to do. ReadLines returns the
// number of lines read and the terminators seen.
func ReadLines(rd io.Reader, do func(line string, lno int) error) (n int, le LineEndings, err error) {
	scn := bufio.NewScanner(rd)
	scn.Buffer(nil, 1024*1024)
	scn.Split(le.ScanLines)
	for scn.Scan() {
		n++
		if err = do(scn.Text(), n); err != nil {
			return n, le, err
		}
	}
	return n, le, scn.Err()
}

func location(file string, line int) string {
	return fmt.Sprintf("%s:%d", file, line)
}

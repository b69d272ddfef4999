package anxiety

import (
	"encoding/hex"

	"git.fractalqb.de/fractalqb/icontainer/islist"
	"github.com/zeebo/blake3"
)

// Region is one instance of a quote extracted from an input file.
type Region struct {
	// Lower-case region name
	Name string
	// Normalized text
	Text string
	File string
	// Line of the open directive, 1-based.
	Start int
	// Line of the close directive. 0 while the region is open.
	End int

	islsNext *Region
}

func (r *Region) Closed() bool { return r.End > 0 }

// SameLocation reports whether r and s were opened and closed at the same
// lines of the same file.
func (r *Region) SameLocation(s *Region) bool {
	return r.File == s.File && r.Start == s.Start && r.End == s.End
}

// Digest returns the BLAKE3-256 hash of the region's text.
func (r *Region) Digest() [32]byte { return blake3.Sum256([]byte(r.Text)) }

// ShortDigest returns the first 6 bytes of Digest in hex.
func (r *Region) ShortDigest() string {
	d := r.Digest()
	return hex.EncodeToString(d[:6])
}

// ListNext to implement intrusive singly linked list
func (r *Region) ListNext() islist.Node {
	if r.islsNext == nil {
		return nil
	}
	return r.islsNext
}

// SetListNext to implement intrusive singly linked list
func (r *Region) SetListNext(n islist.Node) {
	if n == nil {
		r.islsNext = nil
	} else {
		r.islsNext = n.(*Region)
	}
}

type RegionStatus int

const (
	StatusClosed RegionStatus = iota
	StatusOpen
)

func (s RegionStatus) String() string {
	if s == StatusOpen {
		return "open"
	}
	return "closed"
}

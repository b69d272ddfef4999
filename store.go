package anxiety

import (
	"fmt"
	"io"

	"git.fractalqb.de/fractalqb/icontainer/islist"
)

// Store holds all regions of a run grouped by name. Names and the regions of
// each name keep the order of discovery.
type Store struct {
	names     []string
	regions   map[string]*islist.List
	last      map[string]*Region
	canonical map[string]*Region
}

func NewStore() *Store {
	return &Store{
		regions:   make(map[string]*islist.List),
		last:      make(map[string]*Region),
		canonical: make(map[string]*Region),
	}
}

// Len returns the number of distinct region names.
func (s *Store) Len() int { return len(s.names) }

// Names returns the region names in order of discovery.
func (s *Store) Names() []string { return s.names }

func (s *Store) Has(name string) bool {
	_, ok := s.regions[name]
	return ok
}

// Regions returns all instances of name in order of discovery.
func (s *Store) Regions(name string) []*Region {
	ls := s.regions[name]
	if ls == nil || ls.Len() == 0 {
		return nil
	}
	res := make([]*Region, 0, ls.Len())
	for n := ls.Front(); n != nil; n = n.ListNext() {
		res = append(res, n.(*Region))
	}
	return res
}

// Last returns the most recently added instance of name.
func (s *Store) Last(name string) *Region { return s.last[name] }

// Canonical returns the region explicitly marked canonical for name, or nil.
func (s *Store) Canonical(name string) *Region { return s.canonical[name] }

// SetCanonical marks r as canonical for its name and returns the region
// marked before, if any.
func (s *Store) SetCanonical(r *Region) (prev *Region) {
	prev = s.canonical[r.Name]
	s.canonical[r.Name] = r
	return prev
}

func (s *Store) add(r *Region) {
	if ls := s.regions[r.Name]; ls == nil {
		s.regions[r.Name] = islist.New(r)
		s.names = append(s.names, r.Name)
	} else {
		ls.PushBack(r)
	}
	s.last[r.Name] = r
}

// WriteListing writes all regions with their locations and texts to w.
func (s *Store) WriteListing(w io.Writer) (err error) {
	for _, nm := range s.names {
		if _, err = fmt.Fprintf(w, "Quote id=%s:\n", nm); err != nil {
			return err
		}
		canon := s.canonical[nm]
		for _, r := range s.Regions(nm) {
			end := "?"
			if r.Closed() {
				end = fmt.Sprint(r.End)
			}
			mark := ""
			if r == canon {
				mark = " (canonical)"
			}
			_, err = fmt.Fprintf(w, "In %s, lines %d--%s [%s]%s:\n%s\n\n",
				r.File, r.Start, end,
				r.ShortDigest(),
				mark,
				r.Text,
			)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

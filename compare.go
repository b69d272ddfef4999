package anxiety

import (
	"fmt"
	"log/slog"
)

// Comparison is the result of comparing one region instance against the
// canonical instance of its name.
type Comparison struct {
	Name      string
	Instance  *Region
	Canonical *Region
	Different bool
	// Rendered diff block. Empty if the texts are identical.
	Block string
}

// OnDiffFunc is called for each compared instance.
type OnDiffFunc func(c *Comparison) (abort bool)

// Compare compares all regions of a Store against their canonical instances.
// A zero value is valid for use.
type Compare struct {
	DiffBlock DiffBlock
	OnDiff    OnDiffFunc
	Log       *slog.Logger
}

// DiffCount is the number of instances that differ from their canonical.
type DiffCount int

func (dc DiffCount) Error() string {
	return fmt.Sprintf("%d differing quotes", dc)
}

// Store runs the comparison phase over all names in s in order of discovery.
// If no instance of a name is marked canonical, the first one becomes
// canonical. Names with only one instance are skipped.
func (cmpr *Compare) Store(s *Store) (differing int) {
	log := cmpr.Log
	if log == nil {
		log = slog.Default()
	}
	for _, nm := range s.Names() {
		regions := s.Regions(nm)
		if len(regions) == 1 {
			log.Warn("only one instance of quote, nothing to compare",
				"region", nm, "file", regions[0].File)
			continue
		}
		canon := s.Canonical(nm)
		if canon == nil {
			canon = regions[0]
			s.SetCanonical(canon)
			log.Info("default canonical", "region", nm, "file", canon.File, "line", canon.Start)
		}
		for _, r := range regions {
			if r.SameLocation(canon) {
				continue
			}
			c := cmpr.compare(nm, r, canon)
			if c.Different {
				differing++
			}
			if cmpr.OnDiff != nil && cmpr.OnDiff(c) {
				return differing
			}
		}
	}
	return differing
}

func (cmpr *Compare) compare(name string, r, canon *Region) *Comparison {
	c := &Comparison{Name: name, Instance: r, Canonical: canon}
	if r.Digest() == canon.Digest() {
		return c
	}
	c.Different, c.Block = cmpr.DiffBlock.Render(
		r.Text, canon.Text,
		name,
		r.File, canon.File,
		r.Start, canon.Start,
	)
	return c
}

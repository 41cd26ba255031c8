package dynamize

import (
	"fmt"

	"gopkg.in/gholt/brimtext.v1"
)

// Stats reports merge activity of an engine.
type Stats struct {
	// Strategy is the engine's placement strategy.
	Strategy Kind
	// Insertions is the number of units added.
	Insertions int
	// Merges is the total number of merges performed.
	Merges int
	// LastMerges is the number of merges performed by the latest insertion.
	LastMerges int
	// MaxMerges is the largest number of merges of any single insertion.
	MaxMerges int
	// Slots is the current number of slots, occupied or not.
	Slots int
	// Units is the current number of occupied slots.
	Units int
	// Items is the current total item count.
	Items int
}

func (s *Stats) record(merges int) {
	s.Insertions++
	s.Merges += merges
	s.LastMerges = merges
	s.MaxMerges = max(s.MaxMerges, merges)
}

// Stats returns a snapshot of the engine's statistics.
func (d *Dynamic[C]) Stats() Stats {
	if d == nil {
		return Stats{}
	}
	s := d.stats
	s.Strategy = d.cfg.Strategy
	s.Slots = d.units.Slots()
	s.Units = d.UnitCount()
	s.Items = d.Len()
	return s
}

func (s Stats) String() string {
	avg := 0.0
	if s.Insertions > 0 {
		avg = float64(s.Merges) / float64(s.Insertions)
	}
	report := [][]string{
		{"Strategy", s.Strategy.String()},
		{"Insertions", fmt.Sprintf("%d", s.Insertions)},
		{"Merges", fmt.Sprintf("%d (%.2f per insertion)", s.Merges, avg)},
		{"LastMerges", fmt.Sprintf("%d", s.LastMerges)},
		{"MaxMerges", fmt.Sprintf("%d", s.MaxMerges)},
		{"Slots", fmt.Sprintf("%d", s.Slots)},
		{"Units", fmt.Sprintf("%d", s.Units)},
		{"Items", fmt.Sprintf("%d", s.Items)},
	}
	return brimtext.Align(report, nil)
}

package policy

import "time"

// LRU selects the entry with the oldest access timestamp among non-pinned
// entries.
type LRU struct{}

func (p *LRU) OnAdd(c Candidate, now time.Time) {
	c.Reset(now)
}

func (p *LRU) OnAccess(c Candidate, now time.Time) {
	c.Touch(now)
}

func (p *LRU) SelectVictim(candidates []Candidate) (string, bool) {
	var (
		victim string
		oldest time.Time
		found  bool
	)
	for _, c := range candidates {
		if c.Pinned() {
			continue
		}
		if !found || c.AccessedAt().Before(oldest) {
			victim, oldest, found = c.Key(), c.AccessedAt(), true
		}
	}
	return victim, found
}

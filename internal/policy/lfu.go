package policy

import "time"

// LFU selects the entry with the lowest hit count among non-pinned entries.
// Hit counts reset to one on (re)insertion.
type LFU struct{}

func (p *LFU) OnAdd(c Candidate, now time.Time) {
	c.Reset(now)
}

func (p *LFU) OnAccess(c Candidate, now time.Time) {
	c.Touch(now)
}

func (p *LFU) SelectVictim(candidates []Candidate) (string, bool) {
	var (
		victim string
		lowest int64
		found  bool
	)
	for _, c := range candidates {
		if c.Pinned() {
			continue
		}
		if !found || c.Hits() < lowest {
			victim, lowest, found = c.Key(), c.Hits(), true
		}
	}
	return victim, found
}

// Package predictive tracks key-prefix access patterns. The scores are
// advisory: they are exposed through statistics and decayed by maintenance,
// but do not drive prefetching.
package predictive

import (
	"strings"
	"sync"

	"github.com/tiercache/go-tier-cache/config"
)

const (
	decayFactor   = 0.9
	dropAtOrBelow = 1.0
)

type Scorer interface {
	// Record increments the score of the key's pattern prefix.
	Record(key string)

	// Decay multiplies every score by the decay factor and drops scores that
	// fall to or below the drop threshold. It returns how many were dropped.
	Decay() (dropped int)

	// Scores returns a snapshot of the tracked pattern scores.
	Scores() map[string]float64
}

func New(cfg *config.PredictiveCfg) Scorer {
	if !cfg.Enabled() {
		return &NoOpScorer{}
	}
	return &Tracker{
		delimiter: cfg.Delimiter,
		scores:    make(map[string]float64),
	}
}

type Tracker struct {
	mu        sync.Mutex
	delimiter string
	scores    map[string]float64
}

func (t *Tracker) Record(key string) {
	pattern := key
	if i := strings.Index(key, t.delimiter); i >= 0 {
		pattern = key[:i]
	}

	t.mu.Lock()
	t.scores[pattern]++
	t.mu.Unlock()
}

func (t *Tracker) Decay() (dropped int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for pattern, score := range t.scores {
		score *= decayFactor
		if score <= dropAtOrBelow {
			delete(t.scores, pattern)
			dropped++
			continue
		}
		t.scores[pattern] = score
	}
	return dropped
}

func (t *Tracker) Scores() map[string]float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[string]float64, len(t.scores))
	for pattern, score := range t.scores {
		out[pattern] = score
	}
	return out
}

package policy

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tiercache/go-tier-cache/config"
	"github.com/tiercache/go-tier-cache/internal/entry"
)

func candidates(entries ...*entry.Entry[string]) []Candidate {
	out := make([]Candidate, 0, len(entries))
	for _, e := range entries {
		out = append(out, e)
	}
	return out
}

// TestNew_FallbackToLRU falls back to LRU for unknown identifiers.
func TestNew_FallbackToLRU(t *testing.T) {
	p := New(config.PolicyID("arc"), slog.Default())
	require.IsType(t, &LRU{}, p)

	require.IsType(t, &LRU{}, New(config.PolicyLRU, slog.Default()))
	require.IsType(t, &LFU{}, New(config.PolicyLFU, slog.Default()))
}

// TestLRU_SelectVictim_Oldest picks the entry with the oldest access time.
func TestLRU_SelectVictim_Oldest(t *testing.T) {
	now := time.Now()
	a := entry.New("a", "v", 1, entry.PriorityNormal, 0, now)
	b := entry.New("b", "v", 1, entry.PriorityNormal, 0, now)
	c := entry.New("c", "v", 1, entry.PriorityNormal, 0, now)

	p := &LRU{}
	p.OnAccess(b, now.Add(2*time.Second))
	p.OnAccess(c, now.Add(time.Second))

	victim, ok := p.SelectVictim(candidates(a, b, c))
	require.True(t, ok)
	require.Equal(t, "a", victim)
}

// TestLRU_SelectVictim_TieBreak picks the first entry in iteration order.
func TestLRU_SelectVictim_TieBreak(t *testing.T) {
	now := time.Now()
	a := entry.New("a", "v", 1, entry.PriorityNormal, 0, now)
	b := entry.New("b", "v", 1, entry.PriorityNormal, 0, now)

	victim, ok := (&LRU{}).SelectVictim(candidates(a, b))
	require.True(t, ok)
	require.Equal(t, "a", victim)
}

// TestLRU_SelectVictim_SkipsPinned never selects high/critical entries.
func TestLRU_SelectVictim_SkipsPinned(t *testing.T) {
	now := time.Now()
	pinned := entry.New("pinned", "v", 1, entry.PriorityCritical, 0, now)
	normal := entry.New("normal", "v", 1, entry.PriorityNormal, 0, now.Add(time.Hour))

	victim, ok := (&LRU{}).SelectVictim(candidates(pinned, normal))
	require.True(t, ok)
	require.Equal(t, "normal", victim)
}

// TestLRU_SelectVictim_AllPinned returns no victim when every entry is pinned.
func TestLRU_SelectVictim_AllPinned(t *testing.T) {
	now := time.Now()
	a := entry.New("a", "v", 1, entry.PriorityHigh, 0, now)
	b := entry.New("b", "v", 1, entry.PriorityCritical, 0, now)

	_, ok := (&LRU{}).SelectVictim(candidates(a, b))
	require.False(t, ok)
}

// TestLFU_SelectVictim_LowestHits picks the entry with the fewest hits.
func TestLFU_SelectVictim_LowestHits(t *testing.T) {
	now := time.Now()
	a := entry.New("a", "v", 1, entry.PriorityNormal, 0, now)
	b := entry.New("b", "v", 1, entry.PriorityNormal, 0, now)

	p := &LFU{}
	p.OnAdd(a, now)
	p.OnAdd(b, now)
	p.OnAccess(a, now)
	p.OnAccess(a, now)

	victim, ok := p.SelectVictim(candidates(a, b))
	require.True(t, ok)
	require.Equal(t, "b", victim)
}

// TestLFU_OnAdd_ResetsHits resets the hit count to one on reinsertion.
func TestLFU_OnAdd_ResetsHits(t *testing.T) {
	now := time.Now()
	a := entry.New("a", "v", 1, entry.PriorityNormal, 0, now)

	p := &LFU{}
	p.OnAccess(a, now)
	p.OnAccess(a, now)
	require.Equal(t, int64(3), a.Hits())

	p.OnAdd(a, now)
	require.Equal(t, int64(1), a.Hits())
}

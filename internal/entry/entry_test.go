package entry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestEntry_Expired_NoTTL never expires without a TTL.
func TestEntry_Expired_NoTTL(t *testing.T) {
	now := time.Now()
	e := New("k", []byte("v"), 1, PriorityNormal, 0, now)

	require.False(t, e.Expired(now))
	require.False(t, e.Expired(now.Add(24*time.Hour)))
}

// TestEntry_Expired_WithTTL expires strictly after created+ttl.
func TestEntry_Expired_WithTTL(t *testing.T) {
	now := time.Now()
	e := New("k", []byte("v"), 1, PriorityNormal, 100*time.Millisecond, now)

	require.False(t, e.Expired(now.Add(50*time.Millisecond)))
	require.False(t, e.Expired(now.Add(100*time.Millisecond)), "boundary is not yet expired")
	require.True(t, e.Expired(now.Add(150*time.Millisecond)))
}

// TestEntry_Restore_KeepsCreated preserves the original creation time.
func TestEntry_Restore_KeepsCreated(t *testing.T) {
	created := time.Now().Add(-time.Minute)
	now := time.Now()
	e := Restore("k", "v", 3, PriorityHigh, time.Hour, created, now)

	require.Equal(t, created, e.Created())
	require.Equal(t, now, e.AccessedAt())
	require.Equal(t, int64(1), e.Hits())
	require.True(t, e.Pinned())
}

// TestEntry_Touch_BumpsBookkeeping updates access time and hit count.
func TestEntry_Touch_BumpsBookkeeping(t *testing.T) {
	now := time.Now()
	e := New("k", 42, 8, PriorityNormal, 0, now)

	later := now.Add(time.Second)
	e.Touch(later)

	require.Equal(t, later, e.AccessedAt())
	require.Equal(t, int64(2), e.Hits())

	e.Reset(later)
	require.Equal(t, int64(1), e.Hits())
}

// TestEntry_Payload_MutuallyExclusive holds either raw or compressed, never both.
func TestEntry_Payload_MutuallyExclusive(t *testing.T) {
	now := time.Now()
	e := New("k", "value", 5, PriorityNormal, 0, now)

	v, ok := e.Value()
	require.True(t, ok)
	require.Equal(t, "value", v)
	_, ok = e.Compressed()
	require.False(t, ok)

	e.SetCompressed([]byte{0x1f, 0x8b})
	require.True(t, e.IsCompressed())
	_, ok = e.Value()
	require.False(t, ok, "raw value must be discarded on compression")

	e.SetValue("value")
	_, ok = e.Compressed()
	require.False(t, ok, "compressed payload must be discarded on decompression")
}

// TestPriority_Pinned exempts high and critical from eviction.
func TestPriority_Pinned(t *testing.T) {
	require.False(t, PriorityLow.Pinned())
	require.False(t, PriorityNormal.Pinned())
	require.True(t, PriorityHigh.Pinned())
	require.True(t, PriorityCritical.Pinned())
}

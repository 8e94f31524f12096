package tiercache

import "github.com/tiercache/go-tier-cache/internal/events"

// Event is a fire-and-forget cache notification delivered to subscribers.
type Event = events.Event

type EventName = events.Name

const (
	EventCacheHit     = events.CacheHit
	EventCacheMiss    = events.CacheMiss
	EventCacheCleared = events.CacheCleared
	EventEntryDeleted = events.EntryDeleted
)

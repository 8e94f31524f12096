package disk

import (
	"time"

	"github.com/tiercache/go-tier-cache/internal/entry"
)

// Record is the serialized form of one persisted entry. Payload carries the
// value exactly as it left the compressed tier: still compressed when the
// Compressed flag is set, plain serialized bytes otherwise.
type Record struct {
	Key        string         `json:"key"`
	Payload    []byte         `json:"payload"`
	Priority   entry.Priority `json:"priority"`
	Created    time.Time      `json:"created"`
	TTL        time.Duration  `json:"ttl"`
	Compressed bool           `json:"compressed"`
	Checksum   uint32         `json:"crc32"`
}

func (r Record) Expired(now time.Time) bool {
	return r.TTL > 0 && now.Sub(r.Created) > r.TTL
}

package entry

// payloadKind tags the payload union.
type payloadKind uint8

const (
	payloadRaw payloadKind = iota
	payloadCompressed
)

// Payload holds either the live value or its compressed serialized form,
// never both. An entry resident in the compressed tier may carry either
// variant (small values are demoted without being compressed); entries in the
// fast tier always carry the raw variant.
type Payload[V any] struct {
	kind       payloadKind
	raw        V
	compressed []byte
}

func RawPayload[V any](v V) Payload[V] {
	return Payload[V]{kind: payloadRaw, raw: v}
}

func CompressedPayload[V any](b []byte) Payload[V] {
	return Payload[V]{kind: payloadCompressed, compressed: b}
}

func (p Payload[V]) Raw() (V, bool) {
	if p.kind != payloadRaw {
		var zero V
		return zero, false
	}
	return p.raw, true
}

func (p Payload[V]) Compressed() ([]byte, bool) {
	if p.kind != payloadCompressed {
		return nil, false
	}
	return p.compressed, true
}

func (p Payload[V]) IsCompressed() bool {
	return p.kind == payloadCompressed
}

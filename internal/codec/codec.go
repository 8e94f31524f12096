// Package codec converts values between their live form and the serialized,
// optionally compressed form held by the colder tiers.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/tiercache/go-tier-cache/config"
)

// Codec serializes values with JSON and compresses the serialized form with
// gzip at the configured level.
type Codec[V any] struct {
	level int
}

func New[V any](cfg *config.CompressionCfg) *Codec[V] {
	level := gzip.DefaultCompression
	if cfg.Enabled() {
		level = cfg.Level
	}
	return &Codec[V]{level: level}
}

// Encode returns the serialized form of a value. The byte length of the
// result is the entry's size.
func (c *Codec[V]) Encode(v V) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode value: %w", err)
	}
	return data, nil
}

func (c *Codec[V]) Decode(data []byte) (V, error) {
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("decode value: %w", err)
	}
	return v, nil
}

func (c *Codec[V]) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	gw, err := gzip.NewWriterLevel(&buf, c.level)
	if err != nil {
		return nil, fmt.Errorf("gzip writer: %w", err)
	}
	if _, err = gw.Write(data); err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}
	if err = gw.Close(); err != nil {
		return nil, fmt.Errorf("compress flush: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *Codec[V]) Decompress(data []byte) ([]byte, error) {
	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gzip reader: %w", err)
	}
	defer func() { _ = gr.Close() }()

	out, err := io.ReadAll(gr)
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}
	return out, nil
}

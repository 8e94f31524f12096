package config

// CompressionCfg
//   - Supported levels:
//     CompressNoCompression      = 0
//     CompressBestSpeed          = 1
//     CompressBestCompression    = 9
//     CompressDefaultCompression = 6
type CompressionCfg struct {
	// ThresholdBytes gates compression by serialized size. Values at or below
	// the threshold are demoted raw; larger values are compressed.
	ThresholdBytes int64 `yaml:"threshold_bytes"`

	// Level is the gzip compression level.
	Level int `yaml:"level"`
}

func (cfg *CompressionCfg) Enabled() bool {
	return cfg != nil
}

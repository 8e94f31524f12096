package config

type PredictiveCfg struct {
	// Delimiter splits a cache key into its pattern prefix. The score of the
	// prefix before the first delimiter is incremented on every successful
	// set. Keys without the delimiter are scored whole.
	// Defaults to ":" when empty.
	Delimiter string `yaml:"delimiter"`
}

func (cfg *PredictiveCfg) Enabled() bool {
	return cfg != nil
}

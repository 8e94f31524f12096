package config

import "time"

type StatsCfg struct {
	// WindowSize bounds the rolling samples used to derive the average access
	// latency and the average compression ratio. Once the window is full the
	// oldest sample is dropped. Defaults to 100 when zero.
	WindowSize int `yaml:"window_size"`

	// IsTelemetryLogsEnabled turns on the periodic stats log line.
	IsTelemetryLogsEnabled bool `yaml:"stat_logs_enabled"`

	// TelemetryLogsInterval is the period between stats log lines.
	TelemetryLogsInterval time.Duration `yaml:"stat_logs_interval"`
}

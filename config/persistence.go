package config

type PersistenceCfg struct {
	// Dir specifies the directory where per-entry record files are stored.
	// It is created (including parents) on first use if absent. If creation
	// fails, disk persistence is disabled for the session and victims of the
	// compressed tier are dropped instead of persisted.
	Dir string `yaml:"dir"`
}

func (cfg *PersistenceCfg) Enabled() bool {
	return cfg != nil
}

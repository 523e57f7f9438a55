package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/avoronin/authkeep/internal/flagx"
	"github.com/avoronin/authkeep/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the timeout can be given either as a string like "30s"
// or as integer nanoseconds.
type JSONConfig struct {
	DatabaseDSN      string         `json:"database_dsn"`
	OperationTimeout timex.Duration `json:"operation_timeout"`
	LogLevel         string         `json:"log_level"`
}

// parseJSON overlays cfg with values loaded from a JSON file. The file path
// comes from the -c/-config flags; when absent, nothing is loaded. Read or
// unmarshal errors panic (caller may recover if desired). Fields left empty
// in the file keep their earlier values.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JSONConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.OperationTimeout.Duration != 0 {
		cfg.OperationTimeout = time.Duration(jc.OperationTimeout.Duration)
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}

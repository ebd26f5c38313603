package cmd

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mlsp-go/mlsp"
)

// fileConfig is the TOML schema accepted by --config. Fields present in
// the file override the values taken from command-line flags; fields absent
// from the file keep the flag values.
type fileConfig struct {
	IP        string `toml:"ip"`
	Port      int    `toml:"port"`
	TimeoutMS int    `toml:"timeout_ms"`
	Subframes int    `toml:"subframes"`
}

// loadConfig merges a TOML file (if path is non-empty) into base, returning
// the merged mlsp.Config. Fields absent from the file are left untouched.
func loadConfig(path string, base mlsp.Config) (mlsp.Config, error) {
	if strings.TrimSpace(path) == "" {
		return base, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return mlsp.Config{}, fmt.Errorf("load mlspctl config %q: %w", path, err)
	}

	if meta.IsDefined("ip") {
		base.IP = raw.IP
	}
	if meta.IsDefined("port") {
		base.Port = uint16(raw.Port)
	}
	if meta.IsDefined("timeout_ms") {
		base.TimeoutMS = raw.TimeoutMS
	}
	if meta.IsDefined("subframes") {
		base.Subframes = raw.Subframes
	}

	return base, nil
}

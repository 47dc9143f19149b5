package emu

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/kirsle/configdir"

	"sigmadsp/emu/log"
)

type Config struct {
	General GeneralConfig `toml:"general"`
	RPC     RPCConfig     `toml:"rpc"`
}

type GeneralConfig struct {
	// LogModules is applied at startup as if passed to --log.
	LogModules string `toml:"log_modules"`

	// DumpDir is where memory and register dumps land when no explicit
	// destination is given.
	DumpDir string `toml:"dump_dir"`
}

type RPCConfig struct {
	Port int `toml:"port"`
}

func defaultConfig() Config {
	return Config{
		RPC: RPCConfig{Port: 9621},
	}
}

var ConfigDir string = sync.OnceValue(func() string {
	dir := configdir.LocalConfig("sigmadsp")
	if err := configdir.MakePath(dir); err != nil {
		log.ModEmu.Fatalf("failed to create directory %s: %v", dir, err)
	}
	return dir
})()

const cfgFilename = "config.toml"

// LoadConfigOrDefault loads the configuration from the sigmadsp config
// directory, or provides a default one.
func LoadConfigOrDefault() Config {
	cfg := defaultConfig()
	_, err := toml.DecodeFile(filepath.Join(ConfigDir, cfgFilename), &cfg)
	if err != nil {
		return defaultConfig()
	}
	return cfg
}

// SaveConfig into the sigmadsp config directory.
func SaveConfig(cfg Config) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(ConfigDir, cfgFilename), buf, 0644)
}

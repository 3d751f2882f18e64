package conf

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/inkwash/inkwash/internal/errors"
	"github.com/inkwash/inkwash/pkg/config"
)

const (
	AppName      = "inkwash"
	EnvPrefix    = "INKWASH"
	EnvConfigDir = "INKWASH_DIR"
)

// Load loads the server configuration from file and environment, applying
// defaults for anything not set. configPath may name the config directory
// or a config file directly; flags override afterwards in cmd.
func Load(configPath string) (*ServerConfig, *config.Manager, error) {
	if configPath == "" {
		configPath = os.Getenv(EnvConfigDir)
	}

	var configFile string
	if stat, err := os.Stat(configPath); err == nil && !stat.IsDir() {
		configFile = configPath
		configPath = filepath.Dir(configPath)
	}

	cm, err := config.New(AppName, configPath, "", EnvPrefix)
	if err != nil {
		log.Error().Err(err).Msg("load server config failed")
		return nil, nil, errors.Config("failed to initialize config", err)
	}

	conf := &ServerConfig{}
	config.SetDefaults(cm.Viper, ServerDefaults)

	if configFile != "" {
		err = cm.LoadFile(configFile, conf)
	} else {
		err = cm.Load(conf)
	}
	if err != nil {
		log.Error().Err(err).Msg("load server config failed")
		return nil, nil, errors.Config("failed to load config", err)
	}
	conf.ConfigDir = cm.Path

	b, _ := json.Marshal(conf)
	log.Debug().Msgf("server config: %s", string(b))

	return conf, cm, nil
}

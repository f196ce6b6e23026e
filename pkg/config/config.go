package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"

	"github.com/umbra-sharding/umbra/pkg/umbralog"
)

type UmbraConfig struct {
	LogLevel string `json:"log_level" toml:"log_level" yaml:"log_level"`
	SQLShow  bool   `json:"sql_show" toml:"sql_show" yaml:"sql_show"`

	ShadowRule  ShadowRuleCfg  `json:"shadow_rule" toml:"shadow_rule" yaml:"shadow_rule"`
	DataSources DataSourcesCfg `json:"datasources" toml:"datasources" yaml:"datasources"`
}

var cfg UmbraConfig

func Load(cfgPath string) error {
	file, err := os.Open(cfgPath)
	if err != nil {
		return err
	}
	defer file.Close()

	switch filepath.Ext(cfgPath) {
	case ".toml":
		if _, err := toml.NewDecoder(file).Decode(&cfg); err != nil {
			return xerrors.Errorf("decode toml config: %w", err)
		}
	default:
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return xerrors.Errorf("decode yaml config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	umbralog.ReloadSLogger(cfg.SQLShow)

	configBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	umbralog.Zero.Info().Msgf("Running config: %s", string(configBytes))
	return nil
}

func Get() *UmbraConfig {
	return &cfg
}

func (c *UmbraConfig) Validate() error {
	if err := c.DataSources.Validate(); err != nil {
		return err
	}
	return c.ShadowRule.Validate()
}

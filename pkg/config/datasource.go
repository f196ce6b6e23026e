package config

import (
	"golang.org/x/xerrors"

	"github.com/umbra-sharding/umbra/pkg/dsmeta"
)

type DataSourceCfg struct {
	Dialect string `json:"dialect" toml:"dialect" yaml:"dialect"`
	URL     string `json:"url" toml:"url" yaml:"url"`
	Schema  string `json:"schema" toml:"schema" yaml:"schema"`

	ConnUsr string `json:"conn_usr" toml:"conn_usr" yaml:"conn_usr"`
	Passwd  string `json:"passwd" toml:"passwd" yaml:"passwd"`
}

// Metadata parses the datasource URL into structured form. URL
// classification errors surface here, at construction time.
func (ds *DataSourceCfg) Metadata() (*dsmeta.DataSourceMetaData, error) {
	return dsmeta.Parse(dsmeta.Dialect(ds.Dialect), ds.URL, ds.Schema)
}

// DataSourcesCfg holds the shadow/actual pair of physical targets.
type DataSourcesCfg struct {
	Shadow *DataSourceCfg `json:"shadow" toml:"shadow" yaml:"shadow"`
	Actual *DataSourceCfg `json:"actual" toml:"actual" yaml:"actual"`
}

func (d *DataSourcesCfg) Validate() error {
	if d.Shadow == nil || d.Actual == nil {
		return xerrors.New("datasources: both shadow and actual targets are required")
	}
	for _, ds := range []*DataSourceCfg{d.Shadow, d.Actual} {
		if !dsmeta.Known(dsmeta.Dialect(ds.Dialect)) {
			return xerrors.Errorf("datasources: unknown dialect %q", ds.Dialect)
		}
		if _, err := ds.Metadata(); err != nil {
			return err
		}
	}
	return nil
}

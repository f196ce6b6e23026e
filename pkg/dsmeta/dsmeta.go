package dsmeta

import (
	"regexp"
	"strconv"

	"github.com/umbra-sharding/umbra/pkg/models/uerror"
)

// DataSourceMetaData is the structured form of a datasource connection URL.
// Schema is supplied by the caller and never derived from the URL itself.
type DataSourceMetaData struct {
	hostName string
	port     int
	catalog  string
	schema   string
}

func (m *DataSourceMetaData) HostName() string { return m.hostName }
func (m *DataSourceMetaData) Port() int        { return m.port }
func (m *DataSourceMetaData) Catalog() string  { return m.catalog }
func (m *DataSourceMetaData) Schema() string   { return m.schema }

type urlPattern struct {
	re *regexp.Regexp
	// hasPort marks forms that carry an explicit port segment. Forms
	// without one get the dialect default; a present but malformed port
	// never matches and is a parse failure, not a default.
	hasPort bool
}

type dialectMeta struct {
	defaultPort int
	patterns    []urlPattern
}

// Parse decomposes url into host, port and catalog per the dialect's
// recognized URL forms. Patterns are tried in order, first match wins.
// No match fails with an UnrecognizedConnectionURL classification error
// and no partial result.
func Parse(dialect Dialect, url string, schema string) (*DataSourceMetaData, error) {
	dm, ok := dialects[dialect]
	if !ok {
		return nil, uerror.Newf(uerror.UMBRA_CONFIG_ERROR, "unknown database dialect '%s'", dialect)
	}

	for _, pt := range dm.patterns {
		groups := pt.re.FindStringSubmatch(url)
		if groups == nil {
			continue
		}

		res := &DataSourceMetaData{
			hostName: groups[pt.re.SubexpIndex("host")],
			port:     dm.defaultPort,
			catalog:  groups[pt.re.SubexpIndex("catalog")],
			schema:   schema,
		}
		if pt.hasPort {
			port, err := strconv.Atoi(groups[pt.re.SubexpIndex("port")])
			if err != nil {
				return nil, uerror.Newf(uerror.UMBRA_UNRECOGNIZED_URL, "unrecognized database URL '%s'", url)
			}
			res.port = port
		}
		return res, nil
	}

	return nil, uerror.Newf(uerror.UMBRA_UNRECOGNIZED_URL, "unrecognized database URL '%s'", url)
}

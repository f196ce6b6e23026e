package dsmeta

import "regexp"

type Dialect string

const (
	DialectOracle     = Dialect("oracle")
	DialectMySQL      = Dialect("mysql")
	DialectPostgreSQL = Dialect("postgresql")
)

const (
	defaultOraclePort     = 1521
	defaultMySQLPort      = 3306
	defaultPostgreSQLPort = 5432
)

var dialects = map[Dialect]dialectMeta{
	DialectOracle: {
		defaultPort: defaultOraclePort,
		patterns: []urlPattern{
			// jdbc:oracle:thin:@//host:port/catalog
			{re: regexp.MustCompile(`^jdbc:oracle:(?:thin|oci|oci8):@//(?P<host>[\w\-.]+):(?P<port>\d+)/(?P<catalog>[\w\-]+)$`), hasPort: true},
			// jdbc:oracle:oci:@host/catalog
			{re: regexp.MustCompile(`^jdbc:oracle:(?:thin|oci|oci8):@(?P<host>[\w\-.]+)/(?P<catalog>[\w\-]+)$`)},
		},
	},
	DialectMySQL: {
		defaultPort: defaultMySQLPort,
		patterns: []urlPattern{
			{re: regexp.MustCompile(`^jdbc:mysql://(?P<host>[\w\-.]+):(?P<port>\d+)/(?P<catalog>[\w\-]+)(?:\?.*)?$`), hasPort: true},
			{re: regexp.MustCompile(`^jdbc:mysql://(?P<host>[\w\-.]+)/(?P<catalog>[\w\-]+)(?:\?.*)?$`)},
		},
	},
	DialectPostgreSQL: {
		defaultPort: defaultPostgreSQLPort,
		patterns: []urlPattern{
			{re: regexp.MustCompile(`^jdbc:postgresql://(?P<host>[\w\-.]+):(?P<port>\d+)/(?P<catalog>[\w\-]+)(?:\?.*)?$`), hasPort: true},
			{re: regexp.MustCompile(`^jdbc:postgresql://(?P<host>[\w\-.]+)/(?P<catalog>[\w\-]+)(?:\?.*)?$`)},
		},
	},
}

// Known reports whether dialect has a registered URL pattern set.
func Known(dialect Dialect) bool {
	_, ok := dialects[dialect]
	return ok
}

package dsmeta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/umbra-sharding/umbra/pkg/dsmeta"
	"github.com/umbra-sharding/umbra/pkg/models/uerror"
)

func TestParseWithPort(t *testing.T) {
	assert := assert.New(t)

	actual, err := dsmeta.Parse(dsmeta.DialectOracle, "jdbc:oracle:thin:@//127.0.0.1:9999/ds_0", "test")
	assert.NoError(err)
	assert.Equal("127.0.0.1", actual.HostName())
	assert.Equal(9999, actual.Port())
	assert.Equal("ds_0", actual.Catalog())
	assert.Equal("test", actual.Schema())
}

func TestParseWithDefaultPort(t *testing.T) {
	assert := assert.New(t)

	actual, err := dsmeta.Parse(dsmeta.DialectOracle, "jdbc:oracle:oci:@127.0.0.1/ds_0", "test")
	assert.NoError(err)
	assert.Equal("127.0.0.1", actual.HostName())
	assert.Equal(1521, actual.Port())
	assert.Equal("test", actual.Schema())
}

func TestParseFailure(t *testing.T) {
	assert := assert.New(t)

	actual, err := dsmeta.Parse(dsmeta.DialectOracle, "jdbc:oracle:xxxxxxxx", "test")
	assert.Nil(actual)
	assert.Error(err)
	assert.Equal(uerror.UMBRA_UNRECOGNIZED_URL, uerror.CodeOf(err))
}

func TestParseEmptyPortDoesNotDefault(t *testing.T) {
	assert := assert.New(t)

	// present but empty port segment is a failure, never the default
	actual, err := dsmeta.Parse(dsmeta.DialectOracle, "jdbc:oracle:thin:@//127.0.0.1:/ds_0", "test")
	assert.Nil(actual)
	assert.Equal(uerror.UMBRA_UNRECOGNIZED_URL, uerror.CodeOf(err))
}

func TestParseDialects(t *testing.T) {
	assert := assert.New(t)

	type tcase struct {
		dialect dsmeta.Dialect
		url     string
		host    string
		port    int
		catalog string
	}

	for _, tt := range []tcase{
		{dsmeta.DialectMySQL, "jdbc:mysql://db.example.com:3307/orders", "db.example.com", 3307, "orders"},
		{dsmeta.DialectMySQL, "jdbc:mysql://db.example.com/orders", "db.example.com", 3306, "orders"},
		{dsmeta.DialectMySQL, "jdbc:mysql://db.example.com/orders?useSSL=false", "db.example.com", 3306, "orders"},
		{dsmeta.DialectPostgreSQL, "jdbc:postgresql://10.0.0.7:6432/billing", "10.0.0.7", 6432, "billing"},
		{dsmeta.DialectPostgreSQL, "jdbc:postgresql://10.0.0.7/billing", "10.0.0.7", 5432, "billing"},
	} {
		actual, err := dsmeta.Parse(tt.dialect, tt.url, "public")
		assert.NoError(err, tt.url)
		assert.Equal(tt.host, actual.HostName(), tt.url)
		assert.Equal(tt.port, actual.Port(), tt.url)
		assert.Equal(tt.catalog, actual.Catalog(), tt.url)
		assert.Equal("public", actual.Schema(), tt.url)
	}
}

func TestParseUnknownDialect(t *testing.T) {
	assert := assert.New(t)

	_, err := dsmeta.Parse(dsmeta.Dialect("sybase"), "jdbc:sybase:Tds:h:5000/db", "test")
	assert.Error(err)
	assert.Equal(uerror.UMBRA_CONFIG_ERROR, uerror.CodeOf(err))
}

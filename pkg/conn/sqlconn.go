package conn

import (
	"context"
	"database/sql"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// SQLConn adapts a database/sql pool (via sqlx) to the DBConn contract.
// Scroll and updatable result-set requests are recorded on the created
// statement but degrade to whatever the underlying driver supports.
type SQLConn struct {
	db       *sqlx.DB
	hostname string
}

var _ DBConn = &SQLConn{}

func NewSQLConn(driverName string, dsn string, hostname string) (*SQLConn, error) {
	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s datasource", driverName)
	}
	return &SQLConn{db: db, hostname: hostname}, nil
}

func (c *SQLConn) CreateStatement() (NativeStatement, error) {
	return &sqlStatement{db: c.db, cfg: DefaultRSConfig()}, nil
}

func (c *SQLConn) CreateStatementCC(t RSType, cc RSConcurrency) (NativeStatement, error) {
	cfg := DefaultRSConfig()
	cfg.Type = t
	cfg.Concurrency = cc
	return &sqlStatement{db: c.db, cfg: cfg}, nil
}

func (c *SQLConn) CreateStatementCCH(t RSType, cc RSConcurrency, h RSHoldability) (NativeStatement, error) {
	return &sqlStatement{db: c.db, cfg: RSConfig{Type: t, Concurrency: cc, Holdability: h}}, nil
}

func (c *SQLConn) Hostname() string { return c.hostname }

func (c *SQLConn) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *SQLConn) Close() error {
	return c.db.Close()
}

type sqlStatement struct {
	db  *sqlx.DB
	cfg RSConfig

	rows ResultSet
	res  sql.Result
}

var _ NativeStatement = &sqlStatement{}

func (s *sqlStatement) ExecuteQuery(sql string) (ResultSet, error) {
	rows, err := s.db.Query(sql)
	if err != nil {
		return nil, err
	}
	s.rows = rows
	s.res = nil
	return rows, nil
}

func (s *sqlStatement) ExecuteUpdate(query string, v Variant) (int64, error) {
	res, err := s.db.Exec(query)
	if err != nil {
		return 0, err
	}
	s.res = res
	s.rows = nil
	return res.RowsAffected()
}

func (s *sqlStatement) Execute(query string, v Variant) (bool, error) {
	if returnsRows(query) {
		if _, err := s.ExecuteQuery(query); err != nil {
			return false, err
		}
		return true, nil
	}
	if _, err := s.ExecuteUpdate(query, v); err != nil {
		return false, err
	}
	return false, nil
}

func (s *sqlStatement) ResultSet() ResultSet { return s.rows }

// GeneratedKeys exposes the last-insert id of the most recent update as a
// one-row result set. Drivers without last-insert support surface their
// own error.
func (s *sqlStatement) GeneratedKeys() (ResultSet, error) {
	if s.res == nil {
		return &keysResultSet{}, nil
	}
	id, err := s.res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &keysResultSet{keys: []int64{id}}, nil
}

func (s *sqlStatement) Close() error {
	if s.rows != nil {
		return s.rows.Close()
	}
	return nil
}

func returnsRows(query string) bool {
	q := strings.ToUpper(strings.TrimSpace(query))
	for _, kw := range []string{"SELECT", "SHOW", "VALUES", "WITH", "TABLE"} {
		if strings.HasPrefix(q, kw) {
			return true
		}
	}
	return false
}

// keysResultSet is an in-memory cursor over generated key values.
type keysResultSet struct {
	keys []int64
	pos  int
}

var _ ResultSet = &keysResultSet{}

func (k *keysResultSet) Next() bool {
	if k.pos >= len(k.keys) {
		return false
	}
	k.pos++
	return true
}

func (k *keysResultSet) Scan(dest ...any) error {
	if k.pos == 0 || k.pos > len(k.keys) {
		return errors.New("scan called without next")
	}
	for _, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = k.keys[k.pos-1]
		case *any:
			*v = k.keys[k.pos-1]
		default:
			return errors.Errorf("unsupported scan destination %T", d)
		}
	}
	return nil
}

func (k *keysResultSet) Err() error   { return nil }
func (k *keysResultSet) Close() error { return nil }

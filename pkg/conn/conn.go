package conn

import "context"

// Result set configuration enums. The zero value is an explicit "unset"
// sentinel: a statement handle constructed without a full triple falls
// back to the connection defaults when creating native statements.

type RSType int

const (
	RSTypeUnset RSType = iota
	RSTypeForwardOnly
	RSTypeScrollInsensitive
	RSTypeScrollSensitive
)

type RSConcurrency int

const (
	RSConcurUnset RSConcurrency = iota
	RSConcurReadOnly
	RSConcurUpdatable
)

type RSHoldability int

const (
	RSHoldUnset RSHoldability = iota
	RSHoldOverCommit
	RSHoldCloseAtCommit
)

type RSConfig struct {
	Type        RSType
	Concurrency RSConcurrency
	Holdability RSHoldability
}

func DefaultRSConfig() RSConfig {
	return RSConfig{
		Type:        RSTypeForwardOnly,
		Concurrency: RSConcurReadOnly,
		Holdability: RSHoldOverCommit,
	}
}

// ResultSet is the minimal row cursor surface the statement layer needs.
type ResultSet interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// NativeStatement is one ad-hoc statement bound to a single physical
// connection. It is short-lived: the statement layer creates a fresh one
// per execution call and never reuses it. Closing superseded statements
// is the caller's responsibility.
type NativeStatement interface {
	ExecuteQuery(sql string) (ResultSet, error)
	ExecuteUpdate(sql string, v Variant) (int64, error)
	Execute(sql string, v Variant) (bool, error)

	ResultSet() ResultSet
	GeneratedKeys() (ResultSet, error)

	Close() error
}

// DBConn is a physical connection capable of creating native statements
// with zero, two or three result-set configuration arguments.
type DBConn interface {
	CreateStatement() (NativeStatement, error)
	CreateStatementCC(t RSType, c RSConcurrency) (NativeStatement, error)
	CreateStatementCCH(t RSType, c RSConcurrency, h RSHoldability) (NativeStatement, error)

	Hostname() string
	Ping(ctx context.Context) error
	Close() error
}

// ShadowPair exposes the two interchangeable physical targets of a
// session. The pair is caller-owned: the statement layer never opens or
// closes either side.
type ShadowPair interface {
	ShadowConn() DBConn
	ActualConn() DBConn
}

type Pair struct {
	shadow DBConn
	actual DBConn
}

var _ ShadowPair = &Pair{}

func NewPair(shadow DBConn, actual DBConn) *Pair {
	return &Pair{shadow: shadow, actual: actual}
}

func (p *Pair) ShadowConn() DBConn { return p.shadow }
func (p *Pair) ActualConn() DBConn { return p.actual }

package statement

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/umbra-sharding/umbra/pkg/config"
	"github.com/umbra-sharding/umbra/pkg/conn"
	"github.com/umbra-sharding/umbra/pkg/models/uerror"
	"github.com/umbra-sharding/umbra/pkg/umbralog"
	"github.com/umbra-sharding/umbra/router/parser"
	"github.com/umbra-sharding/umbra/router/rcontext"
	"github.com/umbra-sharding/umbra/router/rewrite"
	"github.com/umbra-sharding/umbra/router/shadow"
)

// Executable is the verb surface of a statement handle.
type Executable interface {
	ExecuteQuery(sql string) (conn.ResultSet, error)
	ExecuteUpdate(sql string, v conn.Variant) (int64, error)
	Execute(sql string, v conn.Variant) (bool, error)
}

// ResultSetConfigurable exposes the construction-time result-set
// configuration. The values never change over the handle's lifetime.
type ResultSetConfigurable interface {
	ResultSetType() conn.RSType
	ResultSetConcurrency() conn.RSConcurrency
	ResultSetHoldability() conn.RSHoldability
}

// RoutedStatementSource lists the native statements currently bound to
// a logical handle. Shadow routing always resolves to a single physical
// target, so the list holds at most one element.
type RoutedStatementSource interface {
	RoutedStatements() []conn.NativeStatement
}

// StmtObserver is the diagnostic hook invoked after rewrite, before
// execution. umbralog.StmtLogger satisfies it; tests plug a no-op.
type StmtObserver interface {
	Enabled() bool
	ReportStatement(stmt string, isShadow bool)
}

// outcome is the state of the most recent execution call. It is built
// aside and swapped in whole, so accessors never observe a mix of two
// calls.
type outcome struct {
	stmt      conn.NativeStatement
	sqlCtx    rcontext.SQLContext
	isShadow  bool
	resultSet conn.ResultSet
}

// ShadowStatement presents one statement handle backed by the shadow
// and actual physical connections, selecting a target per call from the
// SQL content. Not safe for concurrent use: it models a serial database
// client handle.
//
// Native statements superseded by a newer call are not closed here;
// their cleanup belongs to the session owning the connection pair.
type ShadowStatement struct {
	id   uuid.UUID
	pair conn.ShadowPair
	rule *config.ShadowRuleCfg

	rsCfg conn.RSConfig

	qp       parser.Parser
	judge    shadow.JudgementEngine
	entry    *rewrite.Entry
	engine   rewrite.Engine
	schema   string
	observer StmtObserver

	last *outcome
}

var _ Executable = &ShadowStatement{}
var _ ResultSetConfigurable = &ShadowStatement{}
var _ RoutedStatementSource = &ShadowStatement{}

type Option func(*ShadowStatement)

// WithResultSetConfig fixes the full type/concurrency/holdability
// triple for native statement creation.
func WithResultSetConfig(t conn.RSType, c conn.RSConcurrency, h conn.RSHoldability) Option {
	return func(s *ShadowStatement) {
		s.rsCfg = conn.RSConfig{Type: t, Concurrency: c, Holdability: h}
	}
}

// WithResultSetTypeConcurrency fixes type and concurrency only;
// holdability falls back to the connection default at creation.
func WithResultSetTypeConcurrency(t conn.RSType, c conn.RSConcurrency) Option {
	return func(s *ShadowStatement) {
		s.rsCfg = conn.RSConfig{Type: t, Concurrency: c}
	}
}

// WithConnectionDefaults leaves the whole triple to the connection.
func WithConnectionDefaults() Option {
	return func(s *ShadowStatement) {
		s.rsCfg = conn.RSConfig{}
	}
}

func WithParser(p parser.Parser) Option {
	return func(s *ShadowStatement) { s.qp = p }
}

func WithJudgementEngine(j shadow.JudgementEngine) Option {
	return func(s *ShadowStatement) { s.judge = j }
}

func WithObserver(o StmtObserver) Option {
	return func(s *ShadowStatement) { s.observer = o }
}

func WithSchema(schema string) Option {
	return func(s *ShadowStatement) { s.schema = schema }
}

func NewShadowStatement(pair conn.ShadowPair, rule *config.ShadowRuleCfg, opts ...Option) *ShadowStatement {
	s := &ShadowStatement{
		id:       uuid.New(),
		pair:     pair,
		rule:     rule,
		rsCfg:    conn.DefaultRSConfig(),
		qp:       &parser.QParser{},
		judge:    &shadow.SimpleJudgementEngine{},
		observer: umbralog.SLogger,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.entry = rewrite.NewEntry(s.schema)
	s.entry.RegisterDecorator(rule, rewrite.NewShadowDecorator(rule))
	return s
}

func (s *ShadowStatement) ID() uuid.UUID { return s.id }

// ExecuteQuery runs a query-returning statement and tracks its result
// set as the handle's current one.
func (s *ShadowStatement) ExecuteQuery(sql string) (conn.ResultSet, error) {
	native, rewritten, next, err := s.route(sql)
	if err != nil {
		return nil, err
	}

	rs, err := native.ExecuteQuery(rewritten)
	next.resultSet = rs
	s.last = next
	if err != nil {
		return nil, uerror.Wrap(uerror.UMBRA_EXECUTION_ERROR, err)
	}
	return rs, nil
}

// ExecuteUpdate runs a row-count statement, forwarding the caller's
// generated-keys variant unchanged to the native execution call.
func (s *ShadowStatement) ExecuteUpdate(sql string, v conn.Variant) (int64, error) {
	native, rewritten, next, err := s.route(sql)
	if err != nil {
		return 0, err
	}

	count, err := native.ExecuteUpdate(rewritten, v)
	s.last = next
	if err != nil {
		return 0, uerror.Wrap(uerror.UMBRA_EXECUTION_ERROR, err)
	}
	return count, nil
}

// Execute runs an arbitrary statement. The produced result set, if any,
// is retrievable via ResultSet afterwards.
func (s *ShadowStatement) Execute(sql string, v conn.Variant) (bool, error) {
	native, rewritten, next, err := s.route(sql)
	if err != nil {
		return false, err
	}

	res, err := native.Execute(rewritten, v)
	if err != nil {
		s.last = next
		return false, uerror.Wrap(uerror.UMBRA_EXECUTION_ERROR, err)
	}
	next.resultSet = native.ResultSet()
	s.last = next
	return res, nil
}

// route is the shared per-call pipeline: parse, bind, judge, create a
// fresh native statement on the selected target, rewrite, report. The
// returned outcome is pending: callers swap it in once the execution
// step has bound the statement. A failure before that leaves the
// previous call's state untouched.
func (s *ShadowStatement) route(sql string) (conn.NativeStatement, string, *outcome, error) {
	stmt, comment, err := s.qp.Parse(sql)
	if err != nil {
		return nil, "", nil, uerror.Wrap(uerror.UMBRA_PARSE_ERROR, err)
	}

	sqlCtx := rcontext.Bind(s.schema, sql, nil, stmt, comment)

	isShadow, err := s.judge.IsShadowSQL(s.rule, sqlCtx)
	if err != nil {
		return nil, "", nil, uerror.Wrap(uerror.UMBRA_JUDGEMENT_ERROR, err)
	}

	native, err := s.createStatement(isShadow)
	if err != nil {
		return nil, "", nil, uerror.Wrap(uerror.UMBRA_EXECUTION_ERROR, err)
	}

	rctx := s.entry.CreateRewriteContext(sql, nil, sqlCtx, "")
	rewritten, err := s.engine.Rewrite(rctx)
	if err != nil {
		return nil, "", nil, uerror.Wrap(uerror.UMBRA_REWRITE_ERROR, err)
	}

	if s.observer != nil && s.observer.Enabled() {
		s.observer.ReportStatement(rewritten, isShadow)
	}

	return native, rewritten, &outcome{
		stmt:     native,
		sqlCtx:   sqlCtx,
		isShadow: isShadow,
	}, nil
}

// createStatement makes a fresh native statement on the judged target,
// with the three-tier configuration fallback: full triple when all were
// set at construction, type+concurrency when holdability was not, plain
// connection defaults otherwise.
func (s *ShadowStatement) createStatement(isShadow bool) (conn.NativeStatement, error) {
	target := s.pair.ActualConn()
	if isShadow {
		target = s.pair.ShadowConn()
	}
	if target == nil {
		return nil, errors.New("statement handle has no bound connection pair")
	}

	switch {
	case s.rsCfg.Type != conn.RSTypeUnset && s.rsCfg.Concurrency != conn.RSConcurUnset && s.rsCfg.Holdability != conn.RSHoldUnset:
		return target.CreateStatementCCH(s.rsCfg.Type, s.rsCfg.Concurrency, s.rsCfg.Holdability)
	case s.rsCfg.Type != conn.RSTypeUnset && s.rsCfg.Concurrency != conn.RSConcurUnset:
		return target.CreateStatementCC(s.rsCfg.Type, s.rsCfg.Concurrency)
	default:
		return target.CreateStatement()
	}
}

// GeneratedKeys returns the generated keys of the most recent call.
func (s *ShadowStatement) GeneratedKeys() (conn.ResultSet, error) {
	if s.last == nil || s.last.stmt == nil {
		return nil, errors.New("no statement has been executed")
	}
	return s.last.stmt.GeneratedKeys()
}

// ResultSet returns the result set of the most recent call, or nil.
func (s *ShadowStatement) ResultSet() conn.ResultSet {
	if s.last == nil {
		return nil
	}
	return s.last.resultSet
}

// IsShadow reports the classification of the most recent call.
func (s *ShadowStatement) IsShadow() bool {
	return s.last != nil && s.last.isShadow
}

// SQLContext returns the bound context of the most recent call.
func (s *ShadowStatement) SQLContext() rcontext.SQLContext {
	if s.last == nil {
		return rcontext.SQLContext{}
	}
	return s.last.sqlCtx
}

func (s *ShadowStatement) ResultSetType() conn.RSType               { return s.rsCfg.Type }
func (s *ShadowStatement) ResultSetConcurrency() conn.RSConcurrency { return s.rsCfg.Concurrency }
func (s *ShadowStatement) ResultSetHoldability() conn.RSHoldability { return s.rsCfg.Holdability }

func (s *ShadowStatement) RoutedStatements() []conn.NativeStatement {
	result := []conn.NativeStatement{}
	if s.last == nil || s.last.stmt == nil {
		return result
	}
	result = append(result, s.last.stmt)
	return result
}

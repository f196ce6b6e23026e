package umbralog

import (
	"github.com/spaolacci/murmur3"
	"go.uber.org/atomic"
)

var SLogger = NewStmtLogger(false)

// StmtLogger reports rewritten statements and their shadow classification
// when sql_show is enabled. The flag may be flipped at runtime.
type StmtLogger struct {
	sqlShow *atomic.Bool
}

func NewStmtLogger(sqlShow bool) *StmtLogger {
	return &StmtLogger{
		sqlShow: atomic.NewBool(sqlShow),
	}
}

func ReloadSLogger(sqlShow bool) {
	SLogger = NewStmtLogger(sqlShow)
}

func (s *StmtLogger) Enabled() bool {
	return s.sqlShow.Load()
}

func (s *StmtLogger) SetEnabled(v bool) {
	s.sqlShow.Store(v)
}

func (s *StmtLogger) ReportStatement(stmt string, isShadow bool) {
	if !s.Enabled() {
		return
	}
	hash := murmur3.Sum64([]byte(stmt))
	Zero.Info().
		Str("rule_type", "shadow").
		Str("stmt", stmt).
		Uint64("stmt_hash", hash).
		Bool("is_shadow", isShadow).
		Msg("log statement")
}

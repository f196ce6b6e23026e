package shadow

import (
	"strings"

	"github.com/pg-sharding/lyx/lyx"

	"github.com/umbra-sharding/umbra/pkg/config"
	"github.com/umbra-sharding/umbra/router/rcontext"
)

// JudgementEngine classifies a bound SQL context as shadow or actual.
// Implementations must be deterministic for a given context.
type JudgementEngine interface {
	IsShadowSQL(rule *config.ShadowRuleCfg, ctx rcontext.SQLContext) (bool, error)
}

// SimpleJudgementEngine routes to shadow when the statement carries the
// rule's hint annotation in a comment, or when it references the rule's
// shadow column with a true value.
type SimpleJudgementEngine struct {
}

var _ JudgementEngine = &SimpleJudgementEngine{}

func (e *SimpleJudgementEngine) IsShadowSQL(rule *config.ShadowRuleCfg, ctx rcontext.SQLContext) (bool, error) {
	if rule == nil {
		return false, nil
	}

	if hintMatches(rule.Hint(), ctx.Comment) {
		return true, nil
	}

	if rule.Column == "" {
		return false, nil
	}

	if !tableInScope(rule, ctx) {
		return false, nil
	}

	switch q := ctx.Stmt.(type) {
	case *lyx.Insert:
		return judgeInsert(rule.Column, q), nil
	case *lyx.Select:
		return judgeWhere(rule.Column, q.Where), nil
	case *lyx.Update:
		return judgeWhere(rule.Column, q.Where), nil
	case *lyx.Delete:
		return judgeWhere(rule.Column, q.Where), nil
	default:
		return false, nil
	}
}

func tableInScope(rule *config.ShadowRuleCfg, ctx rcontext.SQLContext) bool {
	rels := ctx.RelationNames()
	if len(rels) == 0 {
		return len(rule.Tables) == 0
	}
	for _, rel := range rels {
		if rule.MatchesTable(rel) {
			return true
		}
	}
	return false
}

// hintMatches scans comma-separated comment segments for "key: true"
// style annotations.
func hintMatches(key string, comment string) bool {
	if comment == "" {
		return false
	}
	for _, seg := range strings.Split(comment, ",") {
		k, v, found := strings.Cut(seg, ":")
		if !found {
			k, v, found = strings.Cut(seg, "=")
		}
		if !found {
			continue
		}
		if strings.TrimSpace(k) != key {
			continue
		}
		if truthyLiteral(strings.TrimSpace(v)) {
			return true
		}
	}
	return false
}

// judgeInsert reports whether the insert explicitly lists the shadow
// column and every inserted row carries a true value for it.
func judgeInsert(column string, q *lyx.Insert) bool {
	colIdx := -1
	for i, c := range q.Columns {
		if c == column {
			colIdx = i
			break
		}
	}
	if colIdx == -1 {
		return false
	}

	values, ok := q.SubSelect.(*lyx.ValueClause)
	if !ok {
		return false
	}
	if len(values.Values) == 0 {
		return false
	}
	for _, row := range values.Values {
		if colIdx >= len(row) || !truthyConst(row[colIdx]) {
			return false
		}
	}
	return true
}

// judgeWhere walks the boolean expression tree looking for an equality
// of the shadow column against a true constant.
func judgeWhere(column string, where lyx.Node) bool {
	expr, ok := where.(*lyx.AExprOp)
	if !ok {
		return false
	}

	switch strings.ToLower(expr.Op) {
	case "and", "or":
		return judgeWhere(column, expr.Left) || judgeWhere(column, expr.Right)
	case "=":
		col, ok := expr.Left.(*lyx.ColumnRef)
		if !ok {
			return false
		}
		return col.ColName == column && truthyConst(expr.Right)
	default:
		return false
	}
}

func truthyConst(node lyx.Node) bool {
	switch v := node.(type) {
	case *lyx.AExprBConst:
		return v.Value
	case *lyx.AExprIConst:
		return v.Value == 1
	case *lyx.AExprSConst:
		return truthyLiteral(v.Value)
	default:
		return false
	}
}

func truthyLiteral(v string) bool {
	switch strings.ToLower(v) {
	case "true", "t", "on", "1":
		return true
	default:
		return false
	}
}

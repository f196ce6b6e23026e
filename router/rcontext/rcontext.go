package rcontext

import (
	"github.com/pg-sharding/lyx/lyx"
)

// SQLContext is the parsed-and-bound form of one execution call: raw
// text, syntax tree, extracted comment and schema binding. It is built
// fresh per call and fully replaced on the next one.
type SQLContext struct {
	RawSQL  string
	Stmt    lyx.Node
	Comment string
	Schema  string
	Params  []any
}

// Bind binds a parsed statement against schema metadata and the bound
// parameter list. Ad-hoc execution always binds an empty parameter list.
func Bind(schema string, sql string, params []any, stmt lyx.Node, comment string) SQLContext {
	return SQLContext{
		RawSQL:  sql,
		Stmt:    stmt,
		Comment: comment,
		Schema:  schema,
		Params:  params,
	}
}

// RelationNames lists the relations the statement touches, in syntax
// order. Only plain range vars are reported; join trees recurse.
func (ctx SQLContext) RelationNames() []string {
	switch q := ctx.Stmt.(type) {
	case *lyx.Select:
		var res []string
		for _, fc := range q.FromClause {
			res = append(res, relationsFromClause(fc)...)
		}
		return res
	case *lyx.Insert:
		return relationsFromClause(q.TableRef)
	case *lyx.Update:
		return relationsFromClause(q.TableRef)
	case *lyx.Delete:
		return relationsFromClause(q.TableRef)
	default:
		return nil
	}
}

func relationsFromClause(fc lyx.FromClauseNode) []string {
	switch v := fc.(type) {
	case *lyx.RangeVar:
		return []string{v.RelationName}
	case *lyx.JoinExpr:
		return append(relationsFromClause(v.Larg), relationsFromClause(v.Rarg)...)
	default:
		return nil
	}
}

package rewrite

import (
	"github.com/umbra-sharding/umbra/pkg/config"
	"github.com/umbra-sharding/umbra/router/rcontext"
)

// RewriteContext carries one call's SQL text through the decorator
// chain. SQL is the working text; RawSQL stays untouched.
type RewriteContext struct {
	RawSQL string
	SQL    string
	Params []any
	SQLCtx rcontext.SQLContext

	GeneratedKeyColumn string

	decorators []Decorator
}

// Decorator transforms the working SQL text of a rewrite context.
type Decorator interface {
	Decorate(rctx *RewriteContext) error
}

type ruleDecorator struct {
	rule *config.ShadowRuleCfg
	dec  Decorator
}

// Entry owns decorator registration per routing rule and produces
// rewrite contexts with the registered chain attached, in registration
// order.
type Entry struct {
	schema     string
	decorators []ruleDecorator
}

func NewEntry(schema string) *Entry {
	return &Entry{schema: schema}
}

func (e *Entry) RegisterDecorator(rule *config.ShadowRuleCfg, d Decorator) {
	e.decorators = append(e.decorators, ruleDecorator{rule: rule, dec: d})
}

func (e *Entry) CreateRewriteContext(sql string, params []any, sqlCtx rcontext.SQLContext, generatedKeyColumn string) *RewriteContext {
	rctx := &RewriteContext{
		RawSQL:             sql,
		SQL:                sql,
		Params:             params,
		SQLCtx:             sqlCtx,
		GeneratedKeyColumn: generatedKeyColumn,
	}
	for _, rd := range e.decorators {
		rctx.decorators = append(rctx.decorators, rd.dec)
	}
	return rctx
}

// Engine applies the decorator chain in registration order and yields
// the final executable SQL text.
type Engine struct {
}

func (Engine) Rewrite(rctx *RewriteContext) (string, error) {
	for _, d := range rctx.decorators {
		if err := d.Decorate(rctx); err != nil {
			return "", err
		}
	}
	return rctx.SQL, nil
}

package rewrite

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/umbra-sharding/umbra/pkg/config"
)

// ShadowDecorator strips shadow bookkeeping out of the SQL text before
// it reaches a physical target: hint comments carrying the rule's hint
// key and WHERE equalities on the shadow column.
type ShadowDecorator struct {
	rule *config.ShadowRuleCfg

	hintComment *regexp.Regexp
	whereOnly   *regexp.Regexp
	whereLead   *regexp.Regexp
	trailing    *regexp.Regexp
}

var _ Decorator = &ShadowDecorator{}

func NewShadowDecorator(rule *config.ShadowRuleCfg) *ShadowDecorator {
	col := regexp.QuoteMeta(rule.Column)
	const val = `(?:true|false|[01]|'[^']*')`
	const clauseKw = `(?:GROUP|ORDER|LIMIT|OFFSET|HAVING|WINDOW|FETCH|FOR|UNION|EXCEPT|INTERSECT|RETURNING)`

	d := &ShadowDecorator{
		rule: rule,
		hintComment: regexp.MustCompile(
			`\s*/\*[^*]*\b` + regexp.QuoteMeta(rule.Hint()) + `\s*[:=][^*]*\*/`),
	}
	if rule.Column != "" {
		d.whereOnly = regexp.MustCompile(fmt.Sprintf(`(?i)\s+WHERE\s+%s\s*=\s*%s\s*(%s\b|$)`, col, val, clauseKw))
		d.whereLead = regexp.MustCompile(fmt.Sprintf(`(?i)(WHERE)\s+%s\s*=\s*%s\s+(?:AND|OR)\s+`, col, val))
		d.trailing = regexp.MustCompile(fmt.Sprintf(`(?i)\s+(?:AND|OR)\s+%s\s*=\s*%s`, col, val))
	}
	return d
}

func (d *ShadowDecorator) Decorate(rctx *RewriteContext) error {
	sql := rctx.SQL

	sql = d.hintComment.ReplaceAllString(sql, "")

	if d.rule.Column != "" {
		sql = d.whereOnly.ReplaceAllString(sql, " $1")
		sql = d.whereLead.ReplaceAllString(sql, "$1 ")
		sql = d.trailing.ReplaceAllString(sql, "")
	}

	rctx.SQL = strings.TrimSpace(sql)
	return nil
}

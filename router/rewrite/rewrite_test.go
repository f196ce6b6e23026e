package rewrite_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/umbra-sharding/umbra/pkg/config"
	"github.com/umbra-sharding/umbra/router/rcontext"
	"github.com/umbra-sharding/umbra/router/rewrite"
)

func TestShadowDecorator(t *testing.T) {
	assert := assert.New(t)

	rule := &config.ShadowRuleCfg{Column: "shadow", HintKey: "shadow"}

	entry := rewrite.NewEntry("public")
	entry.RegisterDecorator(rule, rewrite.NewShadowDecorator(rule))
	engine := rewrite.Engine{}

	type tcase struct {
		sql string
		exp string
	}

	for _, tt := range []tcase{
		{
			sql: "SELECT * FROM t_order WHERE shadow = true",
			exp: "SELECT * FROM t_order",
		},
		{
			sql: "SELECT * FROM t_order WHERE shadow = true AND user_id = 1",
			exp: "SELECT * FROM t_order WHERE user_id = 1",
		},
		{
			sql: "SELECT * FROM t_order WHERE user_id = 1 AND shadow = true",
			exp: "SELECT * FROM t_order WHERE user_id = 1",
		},
		{
			sql: "SELECT * FROM t_order /* shadow: true */",
			exp: "SELECT * FROM t_order",
		},
		{
			sql: "SELECT * FROM t_order WHERE user_id = 1",
			exp: "SELECT * FROM t_order WHERE user_id = 1",
		},
		{
			sql: "DELETE FROM t_order WHERE shadow = false",
			exp: "DELETE FROM t_order",
		},
		{
			sql: "SELECT * FROM t_order WHERE shadow = true ORDER BY order_id",
			exp: "SELECT * FROM t_order ORDER BY order_id",
		},
		{
			sql: "SELECT * FROM t_order WHERE shadow = true LIMIT 10",
			exp: "SELECT * FROM t_order LIMIT 10",
		},
		{
			sql: "SELECT user_id FROM t_order WHERE shadow = 1 GROUP BY user_id",
			exp: "SELECT user_id FROM t_order GROUP BY user_id",
		},
		{
			sql: "SELECT * FROM t_order WHERE user_id = 1 AND shadow = true ORDER BY order_id",
			exp: "SELECT * FROM t_order WHERE user_id = 1 ORDER BY order_id",
		},
	} {
		rctx := entry.CreateRewriteContext(tt.sql, nil, rcontext.SQLContext{RawSQL: tt.sql}, "")
		got, err := engine.Rewrite(rctx)
		assert.NoError(err, tt.sql)
		assert.Equal(tt.exp, got, tt.sql)
		assert.Equal(tt.sql, rctx.RawSQL, tt.sql)
	}
}

type failingDecorator struct{}

func (failingDecorator) Decorate(*rewrite.RewriteContext) error {
	return errors.New("decorator blew up")
}

func TestRewriteErrorPropagates(t *testing.T) {
	assert := assert.New(t)

	rule := &config.ShadowRuleCfg{Column: "shadow"}
	entry := rewrite.NewEntry("public")
	entry.RegisterDecorator(rule, failingDecorator{})

	rctx := entry.CreateRewriteContext("SELECT 1", nil, rcontext.SQLContext{}, "")
	_, err := rewrite.Engine{}.Rewrite(rctx)
	assert.Error(err)
}

func TestRewriteNoDecorators(t *testing.T) {
	assert := assert.New(t)

	entry := rewrite.NewEntry("public")
	rctx := entry.CreateRewriteContext("SELECT 1", nil, rcontext.SQLContext{}, "")
	got, err := rewrite.Engine{}.Rewrite(rctx)
	assert.NoError(err)
	assert.Equal("SELECT 1", got)
}

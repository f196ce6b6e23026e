package statement_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/umbra-sharding/umbra/pkg/config"
	"github.com/umbra-sharding/umbra/pkg/conn"
	"github.com/umbra-sharding/umbra/pkg/models/uerror"
	mockconn "github.com/umbra-sharding/umbra/router/mock/conn"
	mockshadow "github.com/umbra-sharding/umbra/router/mock/shadow"
	"github.com/umbra-sharding/umbra/router/statement"
)

var testRule = &config.ShadowRuleCfg{Column: "shadow", HintKey: "shadow"}

type recordingObserver struct {
	stmts   []string
	shadows []bool
}

func (o *recordingObserver) Enabled() bool { return true }
func (o *recordingObserver) ReportStatement(stmt string, isShadow bool) {
	o.stmts = append(o.stmts, stmt)
	o.shadows = append(o.shadows, isShadow)
}

func newPair(t *testing.T, ctrl *gomock.Controller) (*mockconn.MockShadowPair, *mockconn.MockDBConn, *mockconn.MockDBConn) {
	t.Helper()
	pair := mockconn.NewMockShadowPair(ctrl)
	shadowConn := mockconn.NewMockDBConn(ctrl)
	actualConn := mockconn.NewMockDBConn(ctrl)
	pair.EXPECT().ShadowConn().Return(shadowConn).AnyTimes()
	pair.EXPECT().ActualConn().Return(actualConn).AnyTimes()
	return pair, shadowConn, actualConn
}

func TestExecuteQueryRoutesShadow(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)

	pair, shadowConn, _ := newPair(t, ctrl)

	native := mockconn.NewMockNativeStatement(ctrl)
	rs := mockconn.NewMockResultSet(ctrl)

	shadowConn.EXPECT().
		CreateStatementCCH(conn.RSTypeForwardOnly, conn.RSConcurReadOnly, conn.RSHoldOverCommit).
		Return(native, nil)
	native.EXPECT().ExecuteQuery("SELECT * FROM t_order").Return(rs, nil)

	st := statement.NewShadowStatement(pair, testRule)

	got, err := st.ExecuteQuery("SELECT * FROM t_order WHERE shadow = true")
	assert.NoError(err)
	assert.Equal(rs, got)
	assert.Equal(rs, st.ResultSet())
	assert.True(st.IsShadow())
	assert.Equal([]conn.NativeStatement{native}, st.RoutedStatements())
}

func TestJudgementFreshPerCall(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)

	pair, shadowConn, actualConn := newPair(t, ctrl)

	shadowNative := mockconn.NewMockNativeStatement(ctrl)
	actualNative := mockconn.NewMockNativeStatement(ctrl)

	shadowConn.EXPECT().CreateStatementCCH(gomock.Any(), gomock.Any(), gomock.Any()).Return(shadowNative, nil)
	actualConn.EXPECT().CreateStatementCCH(gomock.Any(), gomock.Any(), gomock.Any()).Return(actualNative, nil)

	shadowNative.EXPECT().ExecuteUpdate("DELETE FROM t_order", conn.NoVariant{}).Return(int64(1), nil)
	actualNative.EXPECT().ExecuteUpdate("DELETE FROM t_order WHERE user_id = 7", conn.NoVariant{}).Return(int64(2), nil)

	st := statement.NewShadowStatement(pair, testRule)

	count, err := st.ExecuteUpdate("DELETE FROM t_order WHERE shadow = true", conn.NoVariant{})
	assert.NoError(err)
	assert.Equal(int64(1), count)
	assert.True(st.IsShadow())
	assert.Equal([]conn.NativeStatement{shadowNative}, st.RoutedStatements())

	count, err = st.ExecuteUpdate("DELETE FROM t_order WHERE user_id = 7", conn.NoVariant{})
	assert.NoError(err)
	assert.Equal(int64(2), count)
	assert.False(st.IsShadow())
	assert.Equal([]conn.NativeStatement{actualNative}, st.RoutedStatements())
}

func TestRoutedStatementsEmptyBeforeFirstCall(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)

	pair, _, _ := newPair(t, ctrl)
	st := statement.NewShadowStatement(pair, testRule)

	assert.Empty(st.RoutedStatements())
	assert.Nil(st.ResultSet())
	assert.False(st.IsShadow())
}

func TestResultSetConfigStableAcrossCalls(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)

	pair, _, actualConn := newPair(t, ctrl)

	native := mockconn.NewMockNativeStatement(ctrl)
	actualConn.EXPECT().
		CreateStatementCCH(conn.RSTypeScrollInsensitive, conn.RSConcurUpdatable, conn.RSHoldCloseAtCommit).
		Return(native, nil).
		Times(2)
	native.EXPECT().ExecuteUpdate(gomock.Any(), gomock.Any()).Return(int64(0), nil).Times(2)

	st := statement.NewShadowStatement(pair, testRule,
		statement.WithResultSetConfig(conn.RSTypeScrollInsensitive, conn.RSConcurUpdatable, conn.RSHoldCloseAtCommit))

	for range 2 {
		_, err := st.ExecuteUpdate("UPDATE t_order SET v = 1", conn.NoVariant{})
		assert.NoError(err)

		assert.Equal(conn.RSTypeScrollInsensitive, st.ResultSetType())
		assert.Equal(conn.RSConcurUpdatable, st.ResultSetConcurrency())
		assert.Equal(conn.RSHoldCloseAtCommit, st.ResultSetHoldability())
	}
}

func TestCreateStatementFallbackTiers(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)

	// type+concurrency only: two-arg creation
	pair, _, actualConn := newPair(t, ctrl)
	native := mockconn.NewMockNativeStatement(ctrl)
	actualConn.EXPECT().
		CreateStatementCC(conn.RSTypeForwardOnly, conn.RSConcurReadOnly).
		Return(native, nil)
	native.EXPECT().ExecuteUpdate(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	st := statement.NewShadowStatement(pair, testRule,
		statement.WithResultSetTypeConcurrency(conn.RSTypeForwardOnly, conn.RSConcurReadOnly))
	_, err := st.ExecuteUpdate("UPDATE t_order SET v = 1", conn.NoVariant{})
	assert.NoError(err)

	// nothing set: zero-arg creation
	pair2, _, actualConn2 := newPair(t, ctrl)
	native2 := mockconn.NewMockNativeStatement(ctrl)
	actualConn2.EXPECT().CreateStatement().Return(native2, nil)
	native2.EXPECT().ExecuteUpdate(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	st2 := statement.NewShadowStatement(pair2, testRule, statement.WithConnectionDefaults())
	_, err = st2.ExecuteUpdate("UPDATE t_order SET v = 1", conn.NoVariant{})
	assert.NoError(err)
}

func TestExecuteStoresResultSet(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)

	pair, _, actualConn := newPair(t, ctrl)

	native := mockconn.NewMockNativeStatement(ctrl)
	rs := mockconn.NewMockResultSet(ctrl)

	actualConn.EXPECT().CreateStatementCCH(gomock.Any(), gomock.Any(), gomock.Any()).Return(native, nil)
	native.EXPECT().Execute("SELECT * FROM t_order", conn.NoVariant{}).Return(true, nil)
	native.EXPECT().ResultSet().Return(rs)

	st := statement.NewShadowStatement(pair, testRule)

	ok, err := st.Execute("SELECT * FROM t_order", conn.NoVariant{})
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(rs, st.ResultSet())
}

func TestVariantForwardedUnchanged(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)

	type tcase struct {
		variant conn.Variant
	}

	for _, tt := range []tcase{
		{conn.NoVariant{}},
		{conn.ReturnGeneratedKeys{Return: true}},
		{conn.ColumnIndexes{Indexes: []int{1}}},
		{conn.ColumnNames{Names: []string{"order_id"}}},
	} {
		pair, _, actualConn := newPair(t, ctrl)
		native := mockconn.NewMockNativeStatement(ctrl)

		actualConn.EXPECT().CreateStatementCCH(gomock.Any(), gomock.Any(), gomock.Any()).Return(native, nil)
		native.EXPECT().ExecuteUpdate("INSERT INTO t_order (user_id) VALUES (1)", tt.variant).Return(int64(1), nil)

		st := statement.NewShadowStatement(pair, testRule)
		_, err := st.ExecuteUpdate("INSERT INTO t_order (user_id) VALUES (1)", tt.variant)
		assert.NoError(err, "%T", tt.variant)
	}
}

func TestGeneratedKeysFromLastStatement(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)

	pair, _, actualConn := newPair(t, ctrl)
	native := mockconn.NewMockNativeStatement(ctrl)
	keys := mockconn.NewMockResultSet(ctrl)

	actualConn.EXPECT().CreateStatementCCH(gomock.Any(), gomock.Any(), gomock.Any()).Return(native, nil)
	native.EXPECT().ExecuteUpdate(gomock.Any(), conn.ReturnGeneratedKeys{Return: true}).Return(int64(1), nil)
	native.EXPECT().GeneratedKeys().Return(keys, nil)

	st := statement.NewShadowStatement(pair, testRule)

	_, err := st.GeneratedKeys()
	assert.Error(err)

	_, err = st.ExecuteUpdate("INSERT INTO t_order (user_id) VALUES (1)", conn.ReturnGeneratedKeys{Return: true})
	assert.NoError(err)

	got, err := st.GeneratedKeys()
	assert.NoError(err)
	assert.Equal(keys, got)
}

func TestParseErrorPropagates(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)

	pair, _, _ := newPair(t, ctrl)
	st := statement.NewShadowStatement(pair, testRule)

	_, err := st.ExecuteQuery("SELEC * FORM t_order")
	assert.Error(err)
	assert.Equal(uerror.UMBRA_PARSE_ERROR, uerror.CodeOf(err))
	assert.Empty(st.RoutedStatements())
}

func TestJudgementErrorPropagates(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)

	pair, _, _ := newPair(t, ctrl)

	judge := mockshadow.NewMockJudgementEngine(ctrl)
	judge.EXPECT().IsShadowSQL(testRule, gomock.Any()).Return(false, fmt.Errorf("metadata unavailable"))

	st := statement.NewShadowStatement(pair, testRule, statement.WithJudgementEngine(judge))

	_, err := st.ExecuteQuery("SELECT * FROM t_order")
	assert.Error(err)
	assert.Equal(uerror.UMBRA_JUDGEMENT_ERROR, uerror.CodeOf(err))
	assert.Empty(st.RoutedStatements())
}

func TestExecutionErrorKeepsHandleUsable(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)

	pair, _, actualConn := newPair(t, ctrl)

	failing := mockconn.NewMockNativeStatement(ctrl)
	working := mockconn.NewMockNativeStatement(ctrl)
	rs := mockconn.NewMockResultSet(ctrl)

	gomock.InOrder(
		actualConn.EXPECT().CreateStatementCCH(gomock.Any(), gomock.Any(), gomock.Any()).Return(failing, nil),
		failing.EXPECT().ExecuteQuery(gomock.Any()).Return(nil, fmt.Errorf("relation does not exist")),
		actualConn.EXPECT().CreateStatementCCH(gomock.Any(), gomock.Any(), gomock.Any()).Return(working, nil),
		working.EXPECT().ExecuteQuery(gomock.Any()).Return(rs, nil),
	)

	st := statement.NewShadowStatement(pair, testRule)

	_, err := st.ExecuteQuery("SELECT * FROM t_missing")
	assert.Error(err)
	assert.Equal(uerror.UMBRA_EXECUTION_ERROR, uerror.CodeOf(err))
	// the failed call still bound its statement
	assert.Equal([]conn.NativeStatement{failing}, st.RoutedStatements())
	assert.Nil(st.ResultSet())

	got, err := st.ExecuteQuery("SELECT * FROM t_order")
	assert.NoError(err)
	assert.Equal(rs, got)
	assert.Equal([]conn.NativeStatement{working}, st.RoutedStatements())
}

func TestRepeatedCallsBindFreshStatements(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)

	pair, _, actualConn := newPair(t, ctrl)

	first := mockconn.NewMockNativeStatement(ctrl)
	second := mockconn.NewMockNativeStatement(ctrl)
	rs1 := mockconn.NewMockResultSet(ctrl)
	rs2 := mockconn.NewMockResultSet(ctrl)

	gomock.InOrder(
		actualConn.EXPECT().CreateStatementCCH(gomock.Any(), gomock.Any(), gomock.Any()).Return(first, nil),
		first.EXPECT().ExecuteQuery("SELECT * FROM t_order").Return(rs1, nil),
		actualConn.EXPECT().CreateStatementCCH(gomock.Any(), gomock.Any(), gomock.Any()).Return(second, nil),
		second.EXPECT().ExecuteQuery("SELECT * FROM t_order").Return(rs2, nil),
	)

	st := statement.NewShadowStatement(pair, testRule)

	got1, err := st.ExecuteQuery("SELECT * FROM t_order")
	assert.NoError(err)
	got2, err := st.ExecuteQuery("SELECT * FROM t_order")
	assert.NoError(err)

	assert.NotSame(got1, got2)
	assert.Equal(rs2, st.ResultSet())
	assert.Equal([]conn.NativeStatement{second}, st.RoutedStatements())
}

func TestObserverSeesRewrittenSQL(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)

	pair, shadowConn, _ := newPair(t, ctrl)

	native := mockconn.NewMockNativeStatement(ctrl)
	rs := mockconn.NewMockResultSet(ctrl)

	shadowConn.EXPECT().CreateStatementCCH(gomock.Any(), gomock.Any(), gomock.Any()).Return(native, nil)
	native.EXPECT().ExecuteQuery("SELECT * FROM t_order").Return(rs, nil)

	obs := &recordingObserver{}
	st := statement.NewShadowStatement(pair, testRule, statement.WithObserver(obs))

	_, err := st.ExecuteQuery("SELECT * FROM t_order WHERE shadow = true")
	assert.NoError(err)

	assert.Equal([]string{"SELECT * FROM t_order"}, obs.stmts)
	assert.Equal([]bool{true}, obs.shadows)
}

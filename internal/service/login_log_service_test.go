package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-sysadmin/internal/domain/model"
	"go-sysadmin/internal/repository/dao"
)

func newLoginLogService(t *testing.T) (*LoginLogService, *testDeps) {
	d := newTestDeps(t)
	return NewLoginLogService(dao.NewSysLoginLogDAO(d.db)), d
}

// 消费 Kafka 消息落库
func TestHandleMessage_Persists(t *testing.T) {
	svc, _ := newLoginLogService(t)
	ctx := context.Background()

	payload, err := json.Marshal(model.SysLoginLog{
		Mobile: "13800000007", IPAddr: "10.0.0.1", StatusID: 1, Msg: "登录成功", LoginTime: 1756684800,
	})
	require.NoError(t, err)
	require.NoError(t, svc.HandleMessage(ctx, payload))

	logs, total, err := svc.List(ctx, "13800000007", nil, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, logs, 1)
	assert.Equal(t, "登录成功", logs[0].Msg)
	assert.Equal(t, "10.0.0.1", logs[0].IPAddr)
}

// 脏消息丢弃且不报错, 避免卡住消费位点
func TestHandleMessage_DirtyPayloadDropped(t *testing.T) {
	svc, _ := newLoginLogService(t)
	ctx := context.Background()

	require.NoError(t, svc.HandleMessage(ctx, []byte("{not json")))

	_, total, err := svc.List(ctx, "", nil, 1, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestLoginLogDelete(t *testing.T) {
	svc, d := newLoginLogService(t)
	ctx := context.Background()

	require.NoError(t, d.db.Create(&model.SysLoginLog{ID: 1, Mobile: "13800000007", StatusID: 1}).Error)
	require.NoError(t, svc.Delete(ctx, []int64{1}))

	_, total, err := svc.List(ctx, "", nil, 1, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
}

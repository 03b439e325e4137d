package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go-sysadmin/internal/domain/model"
	"go-sysadmin/internal/repository/dao"
)

// LoginLogService 登录日志查询与落库.
// 写入走 Kafka 异步链路, HandleMessage 作为消费端入口.
type LoginLogService struct {
	logDAO *dao.SysLoginLogDAO
}

func NewLoginLogService(logDAO *dao.SysLoginLogDAO) *LoginLogService {
	return &LoginLogService{logDAO: logDAO}
}

func (s *LoginLogService) List(ctx context.Context, mobile string, status *int8, pageNo, pageSize int) ([]model.SysLoginLog, int64, error) {
	if pageNo < 1 {
		pageNo = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return s.logDAO.List(ctx, mobile, status, (pageNo-1)*pageSize, pageSize)
}

func (s *LoginLogService) Delete(ctx context.Context, ids []int64) error {
	return s.logDAO.Delete(ctx, ids)
}

// HandleMessage 消费 Kafka 登录日志消息并落库.
func (s *LoginLogService) HandleMessage(ctx context.Context, payload []byte) error {
	var entry model.SysLoginLog
	if err := json.Unmarshal(payload, &entry); err != nil {
		// 脏消息直接丢弃, 返回错误会卡住消费位点
		return nil
	}
	if err := s.logDAO.Create(ctx, &entry); err != nil {
		return fmt.Errorf("write login log: %w", err)
	}
	return nil
}

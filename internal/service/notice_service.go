package service

import (
	"context"

	"go-sysadmin/internal/domain/model"
	"go-sysadmin/internal/repository/dao"
)

// NoticeService 系统公告维护.
type NoticeService struct {
	noticeDAO *dao.SysNoticeDAO
}

func NewNoticeService(noticeDAO *dao.SysNoticeDAO) *NoticeService {
	return &NoticeService{noticeDAO: noticeDAO}
}

func (s *NoticeService) List(ctx context.Context, title string, noticeType, status *int8, pageNo, pageSize int) ([]model.SysNotice, int64, error) {
	if pageNo < 1 {
		pageNo = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return s.noticeDAO.List(ctx, title, noticeType, status, (pageNo-1)*pageSize, pageSize)
}

func (s *NoticeService) Detail(ctx context.Context, id int64) (*model.SysNotice, error) {
	return s.noticeDAO.FindByID(ctx, id)
}

func (s *NoticeService) Save(ctx context.Context, n *model.SysNotice) error {
	return s.noticeDAO.Create(ctx, n)
}

func (s *NoticeService) Update(ctx context.Context, n *model.SysNotice) error {
	return s.noticeDAO.Update(ctx, n)
}

func (s *NoticeService) ChangeStatus(ctx context.Context, id int64, status int8) error {
	return s.noticeDAO.UpdateStatus(ctx, id, status)
}

func (s *NoticeService) Delete(ctx context.Context, ids []int64) error {
	return s.noticeDAO.Delete(ctx, ids)
}

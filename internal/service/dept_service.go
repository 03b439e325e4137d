package service

import (
	"context"

	"go-sysadmin/internal/domain/model"
	"go-sysadmin/internal/repository/dao"
)

// DeptService 部门维护. 部门为树形结构, 列表返回平铺行由前端组树.
type DeptService struct {
	deptDAO *dao.SysDeptDAO
}

func NewDeptService(deptDAO *dao.SysDeptDAO) *DeptService {
	return &DeptService{deptDAO: deptDAO}
}

func (s *DeptService) List(ctx context.Context) ([]model.SysDept, error) {
	return s.deptDAO.ListAll(ctx)
}

func (s *DeptService) Save(ctx context.Context, d *model.SysDept) error {
	return s.deptDAO.Create(ctx, d)
}

func (s *DeptService) Update(ctx context.Context, d *model.SysDept) error {
	return s.deptDAO.Update(ctx, d)
}

func (s *DeptService) ChangeStatus(ctx context.Context, id int64, status int8) error {
	return s.deptDAO.UpdateStatus(ctx, id, status)
}

// Delete 仅允许删除叶子部门.
func (s *DeptService) Delete(ctx context.Context, id int64) error {
	n, err := s.deptDAO.CountChildren(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrDeptHasChildren
	}
	return s.deptDAO.Delete(ctx, id)
}

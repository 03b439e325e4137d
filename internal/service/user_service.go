package service

import (
	"context"
	"fmt"

	"go-sysadmin/internal/domain/model"
	"go-sysadmin/internal/repository/dao"
	"go-sysadmin/pkg/crypto"
)

// 新建用户的初始口令
const defaultPassword = "123456"

// UserRoleResult 用户角色勾选页所需数据.
type UserRoleResult struct {
	AllRoles    []model.SysRole `json:"sys_role_list"`
	UserRoleIDs []int64         `json:"user_role_ids"`
}

// UserService 后台用户维护与用户角色绑定.
type UserService struct {
	userDAO     *dao.SysUserDAO
	roleDAO     *dao.SysRoleDAO
	userRoleDAO *dao.SysUserRoleDAO
}

func NewUserService(userDAO *dao.SysUserDAO, roleDAO *dao.SysRoleDAO, userRoleDAO *dao.SysUserRoleDAO) *UserService {
	return &UserService{userDAO: userDAO, roleDAO: roleDAO, userRoleDAO: userRoleDAO}
}

func (s *UserService) List(ctx context.Context, mobile string, status *int8, pageNo, pageSize int) ([]model.SysUser, int64, error) {
	if pageNo < 1 {
		pageNo = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return s.userDAO.List(ctx, mobile, status, (pageNo-1)*pageSize, pageSize)
}

// Save 创建用户, 初始口令统一为 123456.
func (s *UserService) Save(ctx context.Context, u *model.SysUser) error {
	hashed, err := crypto.HashPassword(defaultPassword)
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	u.Password = hashed
	if u.StatusID == 0 {
		u.StatusID = 1
	}
	return s.userDAO.Create(ctx, u)
}

func (s *UserService) Update(ctx context.Context, u *model.SysUser) error {
	return s.userDAO.Update(ctx, u)
}

func (s *UserService) UpdatePassword(ctx context.Context, id int64, plain string) error {
	hashed, err := crypto.HashPassword(plain)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return s.userDAO.UpdatePassword(ctx, id, hashed)
}

func (s *UserService) ChangeStatus(ctx context.Context, id int64, status int8) error {
	return s.userDAO.UpdateStatus(ctx, id, status)
}

func (s *UserService) Delete(ctx context.Context, ids []int64) error {
	return s.userDAO.Delete(ctx, ids)
}

// QueryUserRole 返回全量角色与该用户已绑定的角色 id.
func (s *UserService) QueryUserRole(ctx context.Context, userID int64) (*UserRoleResult, error) {
	roles, err := s.roleDAO.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	ids, err := s.userRoleDAO.ListRoleIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &UserRoleResult{AllRoles: roles, UserRoleIDs: ids}, nil
}

// UpdateUserRole 整体替换用户的角色绑定. 超级管理员(用户 1)不可改.
func (s *UserService) UpdateUserRole(ctx context.Context, userID int64, roleIDs []int64) error {
	if userID == 1 {
		return ErrSuperAdminImmutable
	}
	return s.userRoleDAO.Replace(ctx, userID, roleIDs)
}

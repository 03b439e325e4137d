package service

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"go-sysadmin/internal/domain/model"
	"go-sysadmin/internal/repository/dao"
)

// PermissionService 负责把用户归拢为一组可访问的接口路径.
// 超级管理员(角色 1)不走角色关联, 直接取全量菜单的 api_url.
type PermissionService struct {
	userRoleDAO *dao.SysUserRoleDAO
	menuDAO     *dao.SysMenuDAO
}

func NewPermissionService(userRoleDAO *dao.SysUserRoleDAO, menuDAO *dao.SysMenuDAO) *PermissionService {
	return &PermissionService{userRoleDAO: userRoleDAO, menuDAO: menuDAO}
}

func (s *PermissionService) tracer() trace.Tracer {
	return otel.Tracer("service.permission")
}

// IsSuperAdmin 判断用户是否绑定了超级管理员角色.
func (s *PermissionService) IsSuperAdmin(ctx context.Context, userID int64) (bool, error) {
	n, err := s.userRoleDAO.CountByUserAndRole(ctx, userID, model.SuperAdminRoleID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Resolve 计算用户的接口权限集合.
// 返回切片可能为空, 是否放行由调用方决定.
func (s *PermissionService) Resolve(ctx context.Context, userID int64) ([]string, error) {
	ctx, span := s.tracer().Start(ctx, "permission.resolve")
	defer span.End()
	span.SetAttributes(attribute.Int64("user.id", userID))

	super, err := s.IsSuperAdmin(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("resolve permissions: %w", err)
	}

	var urls []string
	if super {
		menus, err := s.menuDAO.ListAll(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, fmt.Errorf("resolve permissions: %w", err)
		}
		urls = make([]string, 0, len(menus))
		for _, m := range menus {
			if m.APIURL != "" {
				urls = append(urls, m.APIURL)
			}
		}
	} else {
		urls, err = s.menuDAO.ListAPIURLsByUser(ctx, userID)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, fmt.Errorf("resolve permissions: %w", err)
		}
	}

	span.SetAttributes(attribute.Bool("user.super_admin", super), attribute.Int("permission.count", len(urls)))
	return urls, nil
}

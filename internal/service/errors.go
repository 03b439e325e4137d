package service

import "errors"

// 业务哨兵错误, 由 handler 统一映射为响应码
var (
	ErrUserNotFound       = errors.New("用户不存在")
	ErrInvalidCredentials = errors.New("密码不正确")
	ErrUserDisabled       = errors.New("用户已被禁用")
	ErrNoPermissions      = errors.New("用户没有分配角色或者菜单,不能登录")
	ErrTokenEncoding      = errors.New("生成token异常")

	ErrSuperAdminImmutable = errors.New("不能修改超级管理员的角色")
	ErrSuperRoleImmutable  = errors.New("不能删除超级管理员角色")
	ErrRoleInUse           = errors.New("角色已被用户使用,不能删除")
	ErrMenuHasChildren     = errors.New("存在子菜单,不能删除")
	ErrDeptHasChildren     = errors.New("存在下级部门,不能删除")
	ErrDictTypeInUse       = errors.New("字典类型下存在数据,不能删除")
)

package model

// SysRole 对应 sys_role 表；id=1 为保留的超级管理员角色
type SysRole struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName   string `gorm:"column:role_name;size:50" json:"role_name"`
	StatusID   int8   `gorm:"column:status_id" json:"status_id"`
	Sort       int    `gorm:"column:sort" json:"sort"`
	Remark     string `gorm:"size:255" json:"remark"`
	CreateTime int64  `gorm:"column:create_time;autoCreateTime" json:"create_time"`
	UpdateTime int64  `gorm:"column:update_time;autoUpdateTime" json:"update_time"`
}

func (SysRole) TableName() string { return "sys_role" }

// SuperAdminRoleID 超级管理员哨兵角色，不可删除、不可从用户身上移除
const SuperAdminRoleID int64 = 1

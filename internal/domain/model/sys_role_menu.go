package model

// SysRoleMenu 角色-菜单关联表
type SysRoleMenu struct {
	ID         int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleID     int64 `gorm:"column:role_id;index" json:"role_id"`
	MenuID     int64 `gorm:"column:menu_id;index" json:"menu_id"`
	StatusID   int8  `gorm:"column:status_id" json:"status_id"`
	Sort       int   `gorm:"column:sort" json:"sort"`
	CreateTime int64 `gorm:"column:create_time;autoCreateTime" json:"create_time"`
	UpdateTime int64 `gorm:"column:update_time;autoUpdateTime" json:"update_time"`
}

func (SysRoleMenu) TableName() string { return "sys_role_menu" }

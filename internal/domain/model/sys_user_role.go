package model

// SysUserRole 用户-角色关联表
type SysUserRole struct {
	ID         int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     int64 `gorm:"column:user_id;index" json:"user_id"`
	RoleID     int64 `gorm:"column:role_id;index" json:"role_id"`
	StatusID   int8  `gorm:"column:status_id" json:"status_id"`
	Sort       int   `gorm:"column:sort" json:"sort"`
	CreateTime int64 `gorm:"column:create_time;autoCreateTime" json:"create_time"`
	UpdateTime int64 `gorm:"column:update_time;autoUpdateTime" json:"update_time"`
}

func (SysUserRole) TableName() string { return "sys_user_role" }

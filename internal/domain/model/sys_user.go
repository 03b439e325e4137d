package model

// SysUser 对应 sys_user 表；mobile 全局唯一，作为登录标识
type SysUser struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Mobile     string `gorm:"size:11;uniqueIndex:uk_mobile" json:"mobile"`
	RealName   string `gorm:"column:real_name;size:50" json:"real_name"`
	Password   string `gorm:"size:64" json:"-"` // bcrypt；存量明文迁移期兼容
	StatusID   int8   `gorm:"column:status_id" json:"status_id"`
	Sort       int    `gorm:"column:sort" json:"sort"`
	Remark     string `gorm:"size:255" json:"remark"`
	CreateTime int64  `gorm:"column:create_time;autoCreateTime" json:"create_time"`
	UpdateTime int64  `gorm:"column:update_time;autoUpdateTime" json:"update_time"`
}

func (SysUser) TableName() string { return "sys_user" }

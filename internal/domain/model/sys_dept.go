package model

// SysDept 部门表，parent_id 自引用构成树
type SysDept struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ParentID   int64  `gorm:"column:parent_id" json:"parent_id"`
	DeptName   string `gorm:"column:dept_name;size:50" json:"dept_name"`
	Leader     string `gorm:"size:50" json:"leader"`
	Phone      string `gorm:"size:20" json:"phone"`
	StatusID   int8   `gorm:"column:status_id" json:"status_id"`
	Sort       int    `gorm:"column:sort" json:"sort"`
	Remark     string `gorm:"size:255" json:"remark"`
	CreateTime int64  `gorm:"column:create_time;autoCreateTime" json:"create_time"`
	UpdateTime int64  `gorm:"column:update_time;autoUpdateTime" json:"update_time"`
}

func (SysDept) TableName() string { return "sys_dept" }

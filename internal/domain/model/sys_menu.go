package model

// 菜单类型：1 目录 2 菜单 3 按钮；按钮的 api_url 是权限点
const (
	MenuTypeDirectory int8 = 1
	MenuTypeMenu      int8 = 2
	MenuTypeButton    int8 = 3
)

// SysMenu 对应 sys_menu 表，parent_id 自引用构成树
type SysMenu struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	MenuName   string `gorm:"column:menu_name;size:50" json:"menu_name"`
	ParentID   int64  `gorm:"column:parent_id" json:"parent_id"`
	MenuType   int8   `gorm:"column:menu_type" json:"menu_type"`
	MenuURL    string `gorm:"column:menu_url;size:255" json:"menu_url"`
	APIURL     string `gorm:"column:api_url;size:255" json:"api_url"`
	MenuIcon   string `gorm:"column:menu_icon;size:50" json:"menu_icon"`
	StatusID   int8   `gorm:"column:status_id" json:"status_id"`
	Sort       int    `gorm:"column:sort" json:"sort"`
	Remark     string `gorm:"size:255" json:"remark"`
	CreateTime int64  `gorm:"column:create_time;autoCreateTime" json:"create_time"`
	UpdateTime int64  `gorm:"column:update_time;autoUpdateTime" json:"update_time"`
}

func (SysMenu) TableName() string { return "sys_menu" }

package model

// SysDictType 字典类型
type SysDictType struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	DictName   string `gorm:"column:dict_name;size:100" json:"dict_name"`
	DictType   string `gorm:"column:dict_type;size:100;uniqueIndex:uk_dict_type" json:"dict_type"`
	StatusID   int8   `gorm:"column:status_id" json:"status_id"`
	Remark     string `gorm:"size:255" json:"remark"`
	CreateTime int64  `gorm:"column:create_time;autoCreateTime" json:"create_time"`
	UpdateTime int64  `gorm:"column:update_time;autoUpdateTime" json:"update_time"`
}

func (SysDictType) TableName() string { return "sys_dict_type" }

// SysDictData 字典数据，dict_type 关联 SysDictType.DictType
type SysDictData struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	DictSort   int    `gorm:"column:dict_sort" json:"dict_sort"`
	DictLabel  string `gorm:"column:dict_label;size:100" json:"dict_label"`
	DictValue  string `gorm:"column:dict_value;size:100" json:"dict_value"`
	DictType   string `gorm:"column:dict_type;size:100;index" json:"dict_type"`
	StatusID   int8   `gorm:"column:status_id" json:"status_id"`
	Remark     string `gorm:"size:255" json:"remark"`
	CreateTime int64  `gorm:"column:create_time;autoCreateTime" json:"create_time"`
	UpdateTime int64  `gorm:"column:update_time;autoUpdateTime" json:"update_time"`
}

func (SysDictData) TableName() string { return "sys_dict_data" }

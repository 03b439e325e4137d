package model

// SysNotice 通知公告
type SysNotice struct {
	ID            int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	NoticeTitle   string `gorm:"column:notice_title;size:100" json:"notice_title"`
	NoticeType    int8   `gorm:"column:notice_type" json:"notice_type"` // 1 通知 2 公告
	NoticeContent string `gorm:"column:notice_content;type:text" json:"notice_content"`
	StatusID      int8   `gorm:"column:status_id" json:"status_id"`
	Remark        string `gorm:"size:255" json:"remark"`
	CreateTime    int64  `gorm:"column:create_time;autoCreateTime" json:"create_time"`
	UpdateTime    int64  `gorm:"column:update_time;autoUpdateTime" json:"update_time"`
}

func (SysNotice) TableName() string { return "sys_notice" }

package model

// SysLoginLog 登录日志；由 Kafka 消费端异步落库
type SysLoginLog struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Mobile    string `gorm:"size:11;index" json:"mobile"`
	IPAddr    string `gorm:"column:ipaddr;size:64" json:"ipaddr"`
	StatusID  int8   `gorm:"column:status_id" json:"status_id"` // 1 成功 0 失败
	Msg       string `gorm:"size:255" json:"msg"`
	LoginTime int64  `gorm:"column:login_time;autoCreateTime" json:"login_time"`
}

func (SysLoginLog) TableName() string { return "sys_login_log" }

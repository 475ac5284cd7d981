package models

import (
	"time"
)

// StorageEntry 键值存储条目（比赛结果等对外可见数据）
type StorageEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:191;not null" json:"key"`
	Value     string    `gorm:"type:text" json:"value"` // JSON格式的序列化值
	Global    bool      `gorm:"default:false;index" json:"global"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (StorageEntry) TableName() string {
	return "storage_entries"
}

package storage

import (
	"context"
)

// Store 键值存储协作者接口
// 比赛结果等全局可见数据通过该接口读写，键按命名空间前缀枚举。
type Store interface {
	// List 枚举指定前缀下的所有键，按写入顺序返回
	List(ctx context.Context, prefix string, global bool) ([]string, error)
	// Get 读取指定键的值
	Get(ctx context.Context, key string, global bool) (string, error)
	// Set 写入键值对，键已存在时覆盖
	Set(ctx context.Context, key, value string, global bool) error
}

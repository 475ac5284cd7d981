package storage

import (
	"context"
	"errors"

	apperrors "github.com/wfunc/fraud-game/internal/errors"
	"github.com/wfunc/fraud-game/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormStore 基于GORM的键值存储实现
type gormStore struct {
	db *gorm.DB
}

// NewGormStore 创建数据库键值存储
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// List 枚举指定前缀下的所有键
func (s *gormStore) List(ctx context.Context, prefix string, global bool) ([]string, error) {
	var keys []string
	err := s.db.WithContext(ctx).
		Model(&models.StorageEntry{}).
		Where("key LIKE ? AND global = ?", prefix+"%", global).
		Order("id asc").
		Pluck("key", &keys).Error
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrStorageList)
	}
	return keys, nil
}

// Get 读取指定键的值
func (s *gormStore) Get(ctx context.Context, key string, global bool) (string, error) {
	var entry models.StorageEntry
	err := s.db.WithContext(ctx).
		Where("key = ? AND global = ?", key, global).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.Newf(apperrors.ErrNotFound, "键不存在: %s", key)
		}
		return "", apperrors.Wrap(err, apperrors.ErrStorageGet)
	}
	return entry.Value, nil
}

// Set 写入键值对，键已存在时覆盖
func (s *gormStore) Set(ctx context.Context, key, value string, global bool) error {
	entry := models.StorageEntry{
		Key:    key,
		Value:  value,
		Global: global,
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "global", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrStorageSet)
	}
	return nil
}

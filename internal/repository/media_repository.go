package repository

import (
	"creatorhub-go/internal/model"

	"gorm.io/gorm"
)

// MediaRepository 接口定义了内容条目的数据操作方法。
type MediaRepository interface {
	Create(item *model.MediaItem) error
	FindByContentID(contentID string) (*model.MediaItem, error)
	FindByProjectID(projectID uint) ([]model.MediaItem, error)
	FindByProjectIDs(projectIDs []uint) ([]model.MediaItem, error)
	Delete(contentID string) error
	DeleteByProjectID(projectID uint) error
}

type mediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository 创建一个新的 MediaRepository 实例。
func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

// Create 在数据库中插入一条新的内容条目。
func (r *mediaRepository) Create(item *model.MediaItem) error {
	return r.db.Create(item).Error
}

// FindByContentID 根据内容 ID 查找条目。
func (r *mediaRepository) FindByContentID(contentID string) (*model.MediaItem, error) {
	var item model.MediaItem
	err := r.db.Where("content_id = ?", contentID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByProjectID 检索项目下的全部内容条目，按展示顺序排列。
func (r *mediaRepository) FindByProjectID(projectID uint) ([]model.MediaItem, error) {
	var items []model.MediaItem
	err := r.db.Where("project_id = ?", projectID).Order("display_order ASC").Find(&items).Error
	return items, err
}

// FindByProjectIDs 批量检索多个项目下的内容条目。
func (r *mediaRepository) FindByProjectIDs(projectIDs []uint) ([]model.MediaItem, error) {
	var items []model.MediaItem
	if len(projectIDs) == 0 {
		return items, nil
	}
	err := r.db.Where("project_id IN ?", projectIDs).Order("display_order ASC").Find(&items).Error
	return items, err
}

// Delete 根据内容 ID 删除条目。
func (r *mediaRepository) Delete(contentID string) error {
	return r.db.Delete(&model.MediaItem{}, "content_id = ?", contentID).Error
}

// DeleteByProjectID 删除项目下的全部内容条目。
func (r *mediaRepository) DeleteByProjectID(projectID uint) error {
	return r.db.Delete(&model.MediaItem{}, "project_id = ?", projectID).Error
}

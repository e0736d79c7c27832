// Package repository 包含了所有与数据库交互的逻辑。
package repository

import (
	"creatorhub-go/internal/model"

	"gorm.io/gorm"
)

// CreatorRepository 接口定义了创作者资料的数据操作方法。
type CreatorRepository interface {
	Create(creator *model.Creator) error
	FindByID(id uint) (*model.Creator, error)
	FindByUserID(userID uint) (*model.Creator, error)
	FindByUsername(username string) (*model.Creator, error)
	FindByStatus(status string, offset, limit int) ([]model.Creator, int64, error)
	Update(creator *model.Creator) error
	Delete(id uint) error
}

type creatorRepository struct {
	db *gorm.DB
}

// NewCreatorRepository 创建一个新的 CreatorRepository 实例。
func NewCreatorRepository(db *gorm.DB) CreatorRepository {
	return &creatorRepository{db: db}
}

// Create 在数据库中插入一条新的创作者资料。
func (r *creatorRepository) Create(creator *model.Creator) error {
	return r.db.Create(creator).Error
}

// FindByID 根据主键查找创作者资料。
func (r *creatorRepository) FindByID(id uint) (*model.Creator, error) {
	var creator model.Creator
	err := r.db.First(&creator, id).Error
	if err != nil {
		return nil, err
	}
	return &creator, nil
}

// FindByUserID 根据用户 ID 查找创作者资料（一个用户最多一份）。
func (r *creatorRepository) FindByUserID(userID uint) (*model.Creator, error) {
	var creator model.Creator
	err := r.db.Where("user_id = ?", userID).First(&creator).Error
	if err != nil {
		return nil, err
	}
	return &creator, nil
}

// FindByUsername 根据创作者用户名查找资料。
func (r *creatorRepository) FindByUsername(username string) (*model.Creator, error) {
	var creator model.Creator
	err := r.db.Where("username = ?", username).First(&creator).Error
	if err != nil {
		return nil, err
	}
	return &creator, nil
}

// FindByStatus 按审核状态分页检索创作者资料。
func (r *creatorRepository) FindByStatus(status string, offset, limit int) ([]model.Creator, int64, error) {
	var creators []model.Creator
	var total int64

	db := r.db.Model(&model.Creator{}).Where("status = ?", status)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Order("created_at ASC").Offset(offset).Limit(limit).Find(&creators).Error; err != nil {
		return nil, 0, err
	}

	return creators, total, nil
}

// Update 更新数据库中一条已存在的创作者资料。
func (r *creatorRepository) Update(creator *model.Creator) error {
	return r.db.Save(creator).Error
}

// Delete 根据主键删除创作者资料。
func (r *creatorRepository) Delete(id uint) error {
	return r.db.Delete(&model.Creator{}, id).Error
}

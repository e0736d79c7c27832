package repository

import (
	"creatorhub-go/internal/model"

	"gorm.io/gorm"
)

// ProjectRepository 接口定义了项目数据的持久化操作。
type ProjectRepository interface {
	Create(project *model.Project) error
	FindByID(id uint) (*model.Project, error)
	FindByCreatorID(creatorID uint) ([]model.Project, error)
	Update(project *model.Project) error
	Delete(id uint) error
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository 创建一个新的 ProjectRepository 实例。
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// Create 在数据库中插入一条新的项目记录。
func (r *projectRepository) Create(project *model.Project) error {
	return r.db.Create(project).Error
}

// FindByID 根据主键查找项目。
func (r *projectRepository) FindByID(id uint) (*model.Project, error) {
	var project model.Project
	err := r.db.First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByCreatorID 检索某个创作者名下的全部项目。
func (r *projectRepository) FindByCreatorID(creatorID uint) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.Where("creator_id = ?", creatorID).Order("created_at ASC").Find(&projects).Error
	return projects, err
}

// Update 更新数据库中一条已存在的项目记录。
func (r *projectRepository) Update(project *model.Project) error {
	return r.db.Save(project).Error
}

// Delete 根据主键删除项目记录。
func (r *projectRepository) Delete(id uint) error {
	return r.db.Delete(&model.Project{}, id).Error
}

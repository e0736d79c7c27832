package model

import "time"

// Project 对应于数据库中的 'projects' 表。
type Project struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatorID   uint      `gorm:"index;not null" json:"creatorId"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (Project) TableName() string {
	return "projects"
}

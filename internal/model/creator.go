// Package model 定义了与数据库表对应的 Go 结构体。
package model

import (
	"strings"
	"time"
)

// 创作者审核状态
const (
	CreatorStatusPending  = "PENDING"
	CreatorStatusApproved = "APPROVED"
	CreatorStatusRejected = "REJECTED"
)

// Creator 对应于数据库中的 'creators' 表。
// 一个用户最多拥有一个创作者资料，需通过管理员审核后才对外可见。
type Creator struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   uint   `gorm:"uniqueIndex;not null" json:"userId"`
	Username string `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Location string `gorm:"type:varchar(100)" json:"location"`
	Bio      string `gorm:"type:text" json:"bio"`
	// PrimaryRoles 以逗号分隔存储，例如 "photographer,director"。
	PrimaryRoles string `gorm:"type:varchar(255)" json:"primaryRoles"`
	// SocialLinks 以逗号分隔存储多个链接。
	SocialLinks string     `gorm:"type:text" json:"socialLinks"`
	WorkEmail   string     `gorm:"type:varchar(255)" json:"workEmail"`
	Status      string     `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	ReviewNote  string     `gorm:"type:text" json:"reviewNote"`
	ReviewedAt  *time.Time `gorm:"default:null" json:"reviewedAt"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (Creator) TableName() string {
	return "creators"
}

// PrimaryRoleList 将逗号分隔的角色字段拆分为切片。
func (c *Creator) PrimaryRoleList() []string {
	return splitCommaField(c.PrimaryRoles)
}

// SocialLinkList 将逗号分隔的社交链接字段拆分为切片。
func (c *Creator) SocialLinkList() []string {
	return splitCommaField(c.SocialLinks)
}

func splitCommaField(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

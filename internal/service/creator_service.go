// Package service 提供了创作者资料相关的业务逻辑。
package service

import (
	"creatorhub-go/internal/model"
	"creatorhub-go/internal/repository"
	"creatorhub-go/pkg/log"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ProfileInput 是创作者入驻表单的输入。
type ProfileInput struct {
	Location     string   `json:"location"`
	Bio          string   `json:"bio"`
	PrimaryRoles []string `json:"primaryRoles"`
	SocialLinks  []string `json:"socialLinks"`
	WorkEmail    string   `json:"workEmail"`
}

// ProjectWithMedia 是项目及其内容条目的组合视图。
type ProjectWithMedia struct {
	Project model.Project     `json:"project"`
	Media   []model.MediaItem `json:"media"`
}

// CreatorDetail 是对外展示的创作者完整视图。
type CreatorDetail struct {
	Creator  model.Creator      `json:"creator"`
	Projects []ProjectWithMedia `json:"projects"`
}

// CreatorService 接口定义了创作者入驻与资料相关的业务操作。
type CreatorService interface {
	UpsertProfile(userID uint, username string, in ProfileInput) (*model.Creator, error)
	GetByUserID(userID uint) (*model.Creator, error)
	GetPublicProfile(username string) (*CreatorDetail, error)
}

type creatorService struct {
	creatorRepo repository.CreatorRepository
	projectRepo repository.ProjectRepository
	mediaRepo   repository.MediaRepository
}

// NewCreatorService 创建一个新的 CreatorService 实例。
func NewCreatorService(creatorRepo repository.CreatorRepository, projectRepo repository.ProjectRepository, mediaRepo repository.MediaRepository) CreatorService {
	return &creatorService{
		creatorRepo: creatorRepo,
		projectRepo: projectRepo,
		mediaRepo:   mediaRepo,
	}
}

// UpsertProfile 创建或更新创作者资料。
// 资料的任何变更都会把状态重置为 PENDING，重新进入审核队列。
func (s *creatorService) UpsertProfile(userID uint, username string, in ProfileInput) (*model.Creator, error) {
	creator, err := s.creatorRepo.FindByUserID(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// 首次入驻
		creator = &model.Creator{
			UserID:   userID,
			Username: username,
			Status:   model.CreatorStatusPending,
		}
		applyProfileInput(creator, in)
		if err := s.creatorRepo.Create(creator); err != nil {
			log.Errorf("[CreatorService] 创建创作者资料失败, userID: %d, error: %v", userID, err)
			return nil, err
		}
		log.Infof("[CreatorService] 创作者资料已创建并进入审核队列, username: %s", username)
		return creator, nil
	}

	applyProfileInput(creator, in)
	creator.Status = model.CreatorStatusPending
	creator.ReviewedAt = nil
	creator.ReviewNote = ""
	if err := s.creatorRepo.Update(creator); err != nil {
		log.Errorf("[CreatorService] 更新创作者资料失败, userID: %d, error: %v", userID, err)
		return nil, err
	}
	log.Infof("[CreatorService] 创作者资料已更新并重新进入审核队列, username: %s", username)
	return creator, nil
}

// GetByUserID 获取当前用户自己的创作者资料。
func (s *creatorService) GetByUserID(userID uint) (*model.Creator, error) {
	return s.creatorRepo.FindByUserID(userID)
}

// GetPublicProfile 获取对外公开的创作者详情，仅审核通过的资料可见。
func (s *creatorService) GetPublicProfile(username string) (*CreatorDetail, error) {
	creator, err := s.creatorRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if creator.Status != model.CreatorStatusApproved {
		return nil, gorm.ErrRecordNotFound
	}

	projects, err := s.projectRepo.FindByCreatorID(creator.ID)
	if err != nil {
		return nil, err
	}

	detail := &CreatorDetail{
		Creator:  *creator,
		Projects: make([]ProjectWithMedia, 0, len(projects)),
	}

	// 批量取出所有项目的内容条目，再按项目分桶
	projectIDs := make([]uint, 0, len(projects))
	for _, p := range projects {
		projectIDs = append(projectIDs, p.ID)
	}
	items, err := s.mediaRepo.FindByProjectIDs(projectIDs)
	if err != nil {
		return nil, err
	}
	byProject := make(map[uint][]model.MediaItem)
	for _, item := range items {
		byProject[item.ProjectID] = append(byProject[item.ProjectID], item)
	}

	for _, p := range projects {
		media := byProject[p.ID]
		if media == nil {
			media = []model.MediaItem{}
		}
		detail.Projects = append(detail.Projects, ProjectWithMedia{Project: p, Media: media})
	}

	return detail, nil
}

func applyProfileInput(creator *model.Creator, in ProfileInput) {
	creator.Location = in.Location
	creator.Bio = in.Bio
	creator.PrimaryRoles = strings.Join(in.PrimaryRoles, ",")
	creator.SocialLinks = strings.Join(in.SocialLinks, ",")
	creator.WorkEmail = in.WorkEmail
}

package service

import (
	"creatorhub-go/internal/model"
	"creatorhub-go/internal/repository"
	"creatorhub-go/pkg/kafka"
	"creatorhub-go/pkg/log"
	"creatorhub-go/pkg/tasks"
	"errors"
	"time"
)

// CreatorListResponse 是管理端分页列表的响应。
type CreatorListResponse struct {
	Creators []model.Creator `json:"creators"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	Limit    int             `json:"limit"`
}

// UserListResponse 是管理端用户分页列表的响应。
type UserListResponse struct {
	Users []UserListItem `json:"users"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// UserListItem 是用户列表中的一项，不暴露密码等敏感字段。
type UserListItem struct {
	ID        uint            `json:"id"`
	Username  string          `json:"username"`
	Role      string          `json:"role"`
	CreatedAt model.LocalTime `json:"createdAt"`
}

// AdminService 接口定义了管理员审核与用户管理操作。
type AdminService interface {
	ListPendingCreators(page, limit int) (*CreatorListResponse, error)
	ApproveCreator(creatorID uint) error
	RejectCreator(creatorID uint, note string) error
	ListUsers(page, limit int) (*UserListResponse, error)
}

type adminService struct {
	userRepo    repository.UserRepository
	creatorRepo repository.CreatorRepository
	projectRepo repository.ProjectRepository
	mediaRepo   repository.MediaRepository
}

// NewAdminService 创建一个新的 AdminService 实例。
func NewAdminService(userRepo repository.UserRepository, creatorRepo repository.CreatorRepository, projectRepo repository.ProjectRepository, mediaRepo repository.MediaRepository) AdminService {
	return &adminService{
		userRepo:    userRepo,
		creatorRepo: creatorRepo,
		projectRepo: projectRepo,
		mediaRepo:   mediaRepo,
	}
}

// ListPendingCreators 分页列出待审核的创作者资料。
func (s *adminService) ListPendingCreators(page, limit int) (*CreatorListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	creators, total, err := s.creatorRepo.FindByStatus(model.CreatorStatusPending, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	return &CreatorListResponse{Creators: creators, Total: total, Page: page, Limit: limit}, nil
}

// ApproveCreator 将创作者资料标记为审核通过，并把其名下全部内容投递进搜索索引。
func (s *adminService) ApproveCreator(creatorID uint) error {
	creator, err := s.creatorRepo.FindByID(creatorID)
	if err != nil {
		return err
	}
	if creator.Status == model.CreatorStatusApproved {
		return errors.New("creator already approved")
	}

	now := time.Now()
	creator.Status = model.CreatorStatusApproved
	creator.ReviewedAt = &now
	creator.ReviewNote = ""
	if err := s.creatorRepo.Update(creator); err != nil {
		return err
	}

	count, err := s.enqueueAllMedia(creator.ID, tasks.ActionIndex)
	if err != nil {
		return err
	}
	log.Infof("[AdminService] 创作者审核通过, creatorID: %d, 投递索引任务 %d 条", creator.ID, count)
	return nil
}

// RejectCreator 将创作者资料标记为驳回，并移除其名下内容的索引文档。
func (s *adminService) RejectCreator(creatorID uint, note string) error {
	creator, err := s.creatorRepo.FindByID(creatorID)
	if err != nil {
		return err
	}

	now := time.Now()
	creator.Status = model.CreatorStatusRejected
	creator.ReviewedAt = &now
	creator.ReviewNote = note
	if err := s.creatorRepo.Update(creator); err != nil {
		return err
	}

	count, err := s.enqueueAllMedia(creator.ID, tasks.ActionDelete)
	if err != nil {
		return err
	}
	log.Infof("[AdminService] 创作者审核驳回, creatorID: %d, 投递删除任务 %d 条", creator.ID, count)
	return nil
}

// ListUsers 分页列出全部用户。
func (s *adminService) ListUsers(page, limit int) (*UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	users, total, err := s.userRepo.FindWithPagination((page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	items := make([]UserListItem, 0, len(users))
	for _, u := range users {
		items = append(items, UserListItem{
			ID:        u.ID,
			Username:  u.Username,
			Role:      u.Role,
			CreatedAt: model.LocalTime(u.CreatedAt),
		})
	}
	return &UserListResponse{Users: items, Total: total, Page: page, Limit: limit}, nil
}

// enqueueAllMedia 为创作者名下全部内容条目投递索引或删除任务。
func (s *adminService) enqueueAllMedia(creatorID uint, action string) (int, error) {
	projects, err := s.projectRepo.FindByCreatorID(creatorID)
	if err != nil {
		return 0, err
	}
	projectIDs := make([]uint, 0, len(projects))
	for _, p := range projects {
		projectIDs = append(projectIDs, p.ID)
	}
	items, err := s.mediaRepo.FindByProjectIDs(projectIDs)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, item := range items {
		task := tasks.MediaIndexTask{ContentID: item.ContentID, Action: action}
		if err := kafka.ProduceMediaTask(task); err != nil {
			log.Errorf("[AdminService] 投递任务失败, contentID: %s, action: %s, error: %v", item.ContentID, action, err)
			continue
		}
		count++
	}
	return count, nil
}

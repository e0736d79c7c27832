package service

import (
	"creatorhub-go/internal/model"
	"creatorhub-go/internal/repository"
	"creatorhub-go/pkg/kafka"
	"creatorhub-go/pkg/log"
	"creatorhub-go/pkg/tasks"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrNotProjectOwner 表示当前用户不是该项目的拥有者。
var ErrNotProjectOwner = errors.New("project does not belong to current creator")

// ProjectInput 是创建或更新项目的输入。
type ProjectInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// MediaInput 是向项目添加内容条目的输入。
type MediaInput struct {
	ContentType  string `json:"contentType" binding:"required"`
	ContentURL   string `json:"contentUrl"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"displayOrder"`
	YoutubeID    string `json:"youtubeId"`
	VimeoID      string `json:"vimeoId"`
}

// ProjectService 接口定义了项目与内容条目的管理操作。
type ProjectService interface {
	CreateProject(userID uint, in ProjectInput) (*model.Project, error)
	UpdateProject(userID, projectID uint, in ProjectInput) (*model.Project, error)
	DeleteProject(userID, projectID uint) error
	ListProjects(userID uint) ([]ProjectWithMedia, error)
	AddMedia(userID, projectID uint, in MediaInput) (*model.MediaItem, error)
	RemoveMedia(userID uint, contentID string) error
}

type projectService struct {
	creatorRepo repository.CreatorRepository
	projectRepo repository.ProjectRepository
	mediaRepo   repository.MediaRepository
}

// NewProjectService 创建一个新的 ProjectService 实例。
func NewProjectService(creatorRepo repository.CreatorRepository, projectRepo repository.ProjectRepository, mediaRepo repository.MediaRepository) ProjectService {
	return &projectService{
		creatorRepo: creatorRepo,
		projectRepo: projectRepo,
		mediaRepo:   mediaRepo,
	}
}

// CreateProject 为当前用户的创作者资料创建一个新项目。
func (s *projectService) CreateProject(userID uint, in ProjectInput) (*model.Project, error) {
	creator, err := s.creatorRepo.FindByUserID(userID)
	if err != nil {
		return nil, errors.New("creator profile not found")
	}

	project := &model.Project{
		CreatorID:   creator.ID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
	}
	if project.Title == "" {
		return nil, errors.New("project title is required")
	}
	if err := s.projectRepo.Create(project); err != nil {
		log.Errorf("[ProjectService] 创建项目失败, creatorID: %d, error: %v", creator.ID, err)
		return nil, err
	}
	return project, nil
}

// UpdateProject 更新项目的标题与描述。
func (s *projectService) UpdateProject(userID, projectID uint, in ProjectInput) (*model.Project, error) {
	creator, project, err := s.ownedProject(userID, projectID)
	if err != nil {
		return nil, err
	}

	project.Title = strings.TrimSpace(in.Title)
	project.Description = in.Description
	if project.Title == "" {
		return nil, errors.New("project title is required")
	}
	if err := s.projectRepo.Update(project); err != nil {
		return nil, err
	}

	// 标题与描述进入了索引文档，需要重建该项目下所有内容的索引
	s.reindexProject(creator, project.ID)
	return project, nil
}

// DeleteProject 删除项目及其全部内容条目，并移除对应的索引文档。
func (s *projectService) DeleteProject(userID, projectID uint) error {
	_, project, err := s.ownedProject(userID, projectID)
	if err != nil {
		return err
	}

	items, err := s.mediaRepo.FindByProjectID(project.ID)
	if err != nil {
		return err
	}
	if err := s.mediaRepo.DeleteByProjectID(project.ID); err != nil {
		return err
	}
	if err := s.projectRepo.Delete(project.ID); err != nil {
		return err
	}

	for _, item := range items {
		s.produceTask(tasks.MediaIndexTask{ContentID: item.ContentID, Action: tasks.ActionDelete})
	}
	log.Infof("[ProjectService] 项目已删除, projectID: %d, 移除内容条目 %d 条", project.ID, len(items))
	return nil
}

// ListProjects 返回当前用户全部项目及其内容条目。
func (s *projectService) ListProjects(userID uint) ([]ProjectWithMedia, error) {
	creator, err := s.creatorRepo.FindByUserID(userID)
	if err != nil {
		return nil, errors.New("creator profile not found")
	}
	projects, err := s.projectRepo.FindByCreatorID(creator.ID)
	if err != nil {
		return nil, err
	}

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

	result := make([]ProjectWithMedia, 0, len(projects))
	for _, p := range projects {
		media := byProject[p.ID]
		if media == nil {
			media = []model.MediaItem{}
		}
		result = append(result, ProjectWithMedia{Project: p, Media: media})
	}
	return result, nil
}

// AddMedia 向项目添加一个内容条目。
// 图片必须携带 contentUrl，视频则允许只携带 youtubeId 或 vimeoId。
func (s *projectService) AddMedia(userID, projectID uint, in MediaInput) (*model.MediaItem, error) {
	creator, project, err := s.ownedProject(userID, projectID)
	if err != nil {
		return nil, err
	}

	switch in.ContentType {
	case model.ContentTypeImage:
		if strings.TrimSpace(in.ContentURL) == "" {
			return nil, errors.New("image media requires contentUrl")
		}
	case model.ContentTypeVideo:
		if strings.TrimSpace(in.ContentURL) == "" && in.YoutubeID == "" && in.VimeoID == "" {
			return nil, errors.New("video media requires contentUrl or an external platform id")
		}
	default:
		return nil, errors.New("contentType must be image or video")
	}

	item := &model.MediaItem{
		ContentID:    uuid.NewString(),
		ProjectID:    project.ID,
		ContentType:  in.ContentType,
		Title:        in.Title,
		Description:  in.Description,
		DisplayOrder: in.DisplayOrder,
		YoutubeID:    in.YoutubeID,
		VimeoID:      in.VimeoID,
	}
	if url := strings.TrimSpace(in.ContentURL); url != "" {
		item.ContentURL = &url
	}

	if err := s.mediaRepo.Create(item); err != nil {
		log.Errorf("[ProjectService] 创建内容条目失败, projectID: %d, error: %v", project.ID, err)
		return nil, err
	}

	// 仅审核通过的创作者内容才进入搜索索引
	if creator.Status == model.CreatorStatusApproved {
		s.produceTask(tasks.MediaIndexTask{ContentID: item.ContentID, Action: tasks.ActionIndex})
	}
	return item, nil
}

// RemoveMedia 删除一个内容条目并移除对应的索引文档。
func (s *projectService) RemoveMedia(userID uint, contentID string) error {
	creator, err := s.creatorRepo.FindByUserID(userID)
	if err != nil {
		return errors.New("creator profile not found")
	}
	item, err := s.mediaRepo.FindByContentID(contentID)
	if err != nil {
		return err
	}
	project, err := s.projectRepo.FindByID(item.ProjectID)
	if err != nil {
		return err
	}
	if project.CreatorID != creator.ID {
		return ErrNotProjectOwner
	}

	if err := s.mediaRepo.Delete(contentID); err != nil {
		return err
	}
	s.produceTask(tasks.MediaIndexTask{ContentID: contentID, Action: tasks.ActionDelete})
	return nil
}

// ownedProject 加载项目并校验归属关系。
func (s *projectService) ownedProject(userID, projectID uint) (*model.Creator, *model.Project, error) {
	creator, err := s.creatorRepo.FindByUserID(userID)
	if err != nil {
		return nil, nil, errors.New("creator profile not found")
	}
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return nil, nil, err
	}
	if project.CreatorID != creator.ID {
		return nil, nil, ErrNotProjectOwner
	}
	return creator, project, nil
}

// reindexProject 为项目下全部内容条目重新投递索引任务。
func (s *projectService) reindexProject(creator *model.Creator, projectID uint) {
	if creator.Status != model.CreatorStatusApproved {
		return
	}
	items, err := s.mediaRepo.FindByProjectID(projectID)
	if err != nil {
		log.Errorf("[ProjectService] 读取项目内容条目失败, projectID: %d, error: %v", projectID, err)
		return
	}
	for _, item := range items {
		s.produceTask(tasks.MediaIndexTask{ContentID: item.ContentID, Action: tasks.ActionIndex})
	}
}

// produceTask 投递索引任务，失败只记录日志，不阻断主流程。
func (s *projectService) produceTask(task tasks.MediaIndexTask) {
	if err := kafka.ProduceMediaTask(task); err != nil {
		log.Errorf("[ProjectService] 投递索引任务失败, contentID: %s, action: %s, error: %v", task.ContentID, task.Action, err)
	}
}

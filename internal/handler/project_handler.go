package handler

import (
	"creatorhub-go/internal/service"
	"creatorhub-go/pkg/log"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ProjectHandler 负责处理项目与内容条目相关的 API 请求。
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler 创建一个新的 ProjectHandler 实例。
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// CreateProject 创建一个新项目。
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req service.ProjectInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求负载：title 不能为空"})
		return
	}

	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法获取用户信息"})
		return
	}

	project, err := h.projectService.CreateProject(user.ID, req)
	if err != nil {
		log.Warnf("[ProjectHandler] 创建项目失败, userID: %d, error: %v", user.ID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "data": project, "message": "success"})
}

// ListProjects 列出当前用户的全部项目及其内容条目。
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法获取用户信息"})
		return
	}

	projects, err := h.projectService.ListProjects(user.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "data": projects, "message": "success"})
}

// UpdateProject 更新项目的标题与描述。
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的项目 ID"})
		return
	}

	var req service.ProjectInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求负载：title 不能为空"})
		return
	}

	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法获取用户信息"})
		return
	}

	project, err := h.projectService.UpdateProject(user.ID, projectID, req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrNotProjectOwner) {
			status = http.StatusForbidden
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "data": project, "message": "success"})
}

// DeleteProject 删除项目及其全部内容条目。
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的项目 ID"})
		return
	}

	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法获取用户信息"})
		return
	}

	if err := h.projectService.DeleteProject(user.ID, projectID); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrNotProjectOwner) {
			status = http.StatusForbidden
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "项目已删除"})
}

// AddMedia 向项目添加一个内容条目。
func (h *ProjectHandler) AddMedia(c *gin.Context) {
	projectID, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的项目 ID"})
		return
	}

	var req service.MediaInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求负载：contentType 不能为空"})
		return
	}

	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法获取用户信息"})
		return
	}

	item, err := h.projectService.AddMedia(user.ID, projectID, req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrNotProjectOwner) {
			status = http.StatusForbidden
		}
		log.Warnf("[ProjectHandler] 添加内容条目失败, projectID: %d, error: %v", projectID, err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "data": item, "message": "success"})
}

// RemoveMedia 删除一个内容条目。
func (h *ProjectHandler) RemoveMedia(c *gin.Context) {
	contentID := c.Param("contentId")
	if contentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的内容 ID"})
		return
	}

	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法获取用户信息"})
		return
	}

	if err := h.projectService.RemoveMedia(user.ID, contentID); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrNotProjectOwner) {
			status = http.StatusForbidden
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "内容条目已删除"})
}

// pathID 解析路径中的数字 ID 参数。
func pathID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

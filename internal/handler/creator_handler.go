package handler

import (
	"creatorhub-go/internal/model"
	"creatorhub-go/internal/service"
	"creatorhub-go/pkg/log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreatorHandler 负责处理创作者资料相关的 API 请求。
type CreatorHandler struct {
	creatorService service.CreatorService
}

// NewCreatorHandler 创建一个新的 CreatorHandler 实例。
func NewCreatorHandler(creatorService service.CreatorService) *CreatorHandler {
	return &CreatorHandler{creatorService: creatorService}
}

// UpsertProfile 创建或更新当前用户的创作者资料。
func (h *CreatorHandler) UpsertProfile(c *gin.Context) {
	var req service.ProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("[CreatorHandler] 无效的资料请求体, error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求负载"})
		return
	}

	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法获取用户信息"})
		return
	}

	creator, err := h.creatorService.UpsertProfile(user.ID, user.Username, req)
	if err != nil {
		log.Errorf("[CreatorHandler] 保存创作者资料失败, userID: %d, error: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存创作者资料失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "data": creator, "message": "success"})
}

// GetMyProfile 获取当前用户自己的创作者资料（含审核状态）。
func (h *CreatorHandler) GetMyProfile(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法获取用户信息"})
		return
	}

	creator, err := h.creatorService.GetByUserID(user.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "创作者资料不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "data": creator, "message": "success"})
}

// GetPublicProfile 获取对外公开的创作者详情，仅审核通过的资料可见。
func (h *CreatorHandler) GetPublicProfile(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "用户名不能为空"})
		return
	}

	detail, err := h.creatorService.GetPublicProfile(username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "创作者不存在或未通过审核"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "data": detail, "message": "success"})
}

// currentUser 从上下文中取出 AuthMiddleware 注入的用户对象。
func currentUser(c *gin.Context) *model.User {
	userValue, exists := c.Get("user")
	if !exists {
		return nil
	}
	user, ok := userValue.(*model.User)
	if !ok {
		return nil
	}
	return user
}

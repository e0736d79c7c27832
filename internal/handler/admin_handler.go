package handler

import (
	"creatorhub-go/internal/service"
	"creatorhub-go/pkg/log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AdminHandler 负责处理管理员审核与用户管理相关的 API 请求。
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler 创建一个新的 AdminHandler 实例。
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ListPendingCreators 分页列出待审核的创作者资料。
func (h *AdminHandler) ListPendingCreators(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	resp, err := h.adminService.ListPendingCreators(page, limit)
	if err != nil {
		log.Errorf("[AdminHandler] 获取待审核创作者列表失败, error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取待审核列表失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "data": resp, "message": "success"})
}

// ApproveCreator 审核通过一个创作者。
func (h *AdminHandler) ApproveCreator(c *gin.Context) {
	creatorID, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的创作者 ID"})
		return
	}

	if err := h.adminService.ApproveCreator(creatorID); err != nil {
		log.Warnf("[AdminHandler] 审核通过失败, creatorID: %d, error: %v", creatorID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "审核已通过"})
}

// RejectCreatorRequest 定义了驳回审核 API 的请求体结构。
type RejectCreatorRequest struct {
	Note string `json:"note"`
}

// RejectCreator 驳回一个创作者的审核。
func (h *AdminHandler) RejectCreator(c *gin.Context) {
	creatorID, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的创作者 ID"})
		return
	}

	var req RejectCreatorRequest
	// note 可选，绑定失败时按空处理
	_ = c.ShouldBindJSON(&req)

	if err := h.adminService.RejectCreator(creatorID, req.Note); err != nil {
		log.Warnf("[AdminHandler] 审核驳回失败, creatorID: %d, error: %v", creatorID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "审核已驳回"})
}

// ListUsers 分页列出全部用户。
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	resp, err := h.adminService.ListUsers(page, limit)
	if err != nil {
		log.Errorf("[AdminHandler] 获取用户列表失败, error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取用户列表失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "data": resp, "message": "success"})
}

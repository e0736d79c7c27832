package handler

import (
	"creatorhub-go/internal/service"
	"creatorhub-go/pkg/log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UploadHandler 负责处理媒体文件上传相关的 API 请求。
type UploadHandler struct {
	uploadService service.UploadService
}

// NewUploadHandler 创建一个新的 UploadHandler 实例。
func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadImage 处理图片上传请求，表单字段名为 "file"。
func (h *UploadHandler) UploadImage(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法获取用户信息"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求中缺少文件：字段名应为 file"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Errorf("[UploadHandler] 打开上传文件失败, error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取上传文件失败"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	result, err := h.uploadService.UploadImage(c.Request.Context(), user.ID, fileHeader.Filename, fileHeader.Size, contentType, file)
	if err != nil {
		log.Warnf("[UploadHandler] 上传图片失败, userID: %d, error: %v", user.ID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "data": result, "message": "success"})
}

package handler

import (
	"creatorhub-go/internal/service"
	"creatorhub-go/pkg/log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SearchHandler 结构体定义了搜索相关的处理器。
type SearchHandler struct {
	searchService service.SearchService
}

// NewSearchHandler 创建一个新的 SearchHandler 实例。
func NewSearchHandler(searchService service.SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// Search 是处理作品集搜索请求的 Gin 处理函数。
// 所有参数都是可选的：非法值在服务层静默回退到安全默认值。
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("query")
	contentType := c.Query("contentType")
	limitRaw := c.Query("limit")
	pageRaw := c.Query("page")
	log.Infof("[SearchHandler] 收到搜索请求, query: %q, contentType: %q", query, contentType)

	// 登录用户记录搜索历史，匿名请求照常检索
	var userID uint
	if user := currentUser(c); user != nil {
		userID = user.ID
	}

	response, err := h.searchService.Search(c.Request.Context(), userID, query, contentType, limitRaw, pageRaw)
	if err != nil {
		log.Errorf("[SearchHandler] 搜索服务返回错误, error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "搜索失败"})
		return
	}

	log.Infof("[SearchHandler] 搜索成功, query: %q, 命中创作者 %d 个", query, response.Total)
	c.JSON(http.StatusOK, gin.H{"code": 200, "data": response, "message": "success"})
}

// RecentSearches 返回当前用户最近的搜索记录。
func (h *SearchHandler) RecentSearches(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法获取用户信息"})
		return
	}

	queries, err := h.searchService.RecentSearches(c.Request.Context(), user.ID)
	if err != nil {
		log.Errorf("[SearchHandler] 获取搜索历史失败, userID: %d, error: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取搜索历史失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 200, "data": queries, "message": "success"})
}

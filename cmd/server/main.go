// Package main 是应用程序的入口点。
package main

import (
	"context"
	"creatorhub-go/internal/config"
	"creatorhub-go/internal/handler"
	"creatorhub-go/internal/middleware"
	"creatorhub-go/internal/model"
	"creatorhub-go/internal/pipeline"
	"creatorhub-go/internal/repository"
	"creatorhub-go/internal/search"
	"creatorhub-go/internal/service"
	"creatorhub-go/pkg/database"
	"creatorhub-go/pkg/embedding"
	"creatorhub-go/pkg/es"
	"creatorhub-go/pkg/kafka"
	"creatorhub-go/pkg/llm"
	"creatorhub-go/pkg/log"
	"creatorhub-go/pkg/storage"
	"creatorhub-go/pkg/token"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. 初始化配置
	config.Init("./configs/config.yaml")
	cfg := config.Conf

	// 2. 初始化日志记录器
	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync() // 确保在程序退出时刷新所有缓冲的日志条目
	log.Info("日志记录器初始化成功")

	// 3. 初始化数据库、Redis、对象存储与搜索引擎
	database.InitMySQL(cfg.Database.MySQL.DSN)
	database.InitRedis(cfg.Database.Redis.Addr, cfg.Database.Redis.Password, cfg.Database.Redis.DB)
	storage.InitMinIO(cfg.MinIO)
	if err := es.InitES(cfg.Elasticsearch); err != nil {
		log.Errorf("es 初始化失败 %s", err)
		return
	}
	kafka.InitProducer(cfg.Kafka)

	// 自动迁移表结构
	if err := database.DB.AutoMigrate(&model.User{}, &model.Creator{}, &model.Project{}, &model.MediaItem{}); err != nil {
		log.Fatalf("数据库表结构迁移失败: %v", err)
	}

	// 4. 初始化 Repository
	userRepository := repository.NewUserRepository(database.DB)
	creatorRepo := repository.NewCreatorRepository(database.DB)
	projectRepo := repository.NewProjectRepository(database.DB)
	mediaRepo := repository.NewMediaRepository(database.DB)
	historyRepo := repository.NewSearchHistoryRepository(database.RDB)

	// 5. 初始化 Service (依赖注入)
	jwtManager := token.NewJWTManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpireHours, cfg.JWT.RefreshTokenExpireDays)
	embeddingClient := embedding.NewClient(cfg.Embedding)
	llmClient := llm.NewClient(cfg.LLM)
	enhancer := search.NewEnhancer(llmClient)
	generator := search.NewGenerator(enhancer, embeddingClient)

	userService := service.NewUserService(userRepository, jwtManager)
	creatorService := service.NewCreatorService(creatorRepo, projectRepo, mediaRepo)
	projectService := service.NewProjectService(creatorRepo, projectRepo, mediaRepo)
	uploadService := service.NewUploadService(cfg.MinIO)
	adminService := service.NewAdminService(userRepository, creatorRepo, projectRepo, mediaRepo)
	searchService := service.NewSearchService(generator, historyRepo, cfg.Elasticsearch)

	// 6. 初始化内容索引管道 (Processor)
	processor := pipeline.NewProcessor(
		mediaRepo,
		projectRepo,
		creatorRepo,
		embeddingClient,
		cfg.Elasticsearch,
		cfg.Embedding,
	)

	// 7. 启动后台 Kafka 消费者
	go kafka.StartConsumer(cfg.Kafka, processor)

	// 8. 设置 Gin 模式并创建路由引擎
	gin.SetMode(cfg.Server.Mode)
	r := gin.New() // 使用 New() 创建一个不带默认中间件的引擎
	// 添加我们自定义的日志中间件和 Gin 的 Recovery 中间件
	r.Use(middleware.RequestLogger(), gin.Recovery())

	// 9. 注册路由
	apiV1 := r.Group("/api/v1")
	{
		// Auth 路由组
		auth := apiV1.Group("/auth")
		{
			auth.POST("/refreshToken", handler.NewAuthHandler(userService).RefreshToken)
		}

		users := apiV1.Group("/users")
		{
			// 无需认证的路由 (公开访问)
			users.POST("/register", handler.NewUserHandler(userService).Register)
			users.POST("/login", handler.NewUserHandler(userService).Login)

			// 需要认证的路由 (仅限登录用户访问)
			authed := users.Group("/")
			authed.Use(middleware.AuthMiddleware(jwtManager, userService))
			{
				authed.GET("/me", handler.NewUserHandler(userService).GetProfile)
				authed.POST("/logout", handler.NewUserHandler(userService).Logout)
			}
		}

		// Creator 路由组：公开详情 + 需认证的资料管理
		creators := apiV1.Group("/creators")
		{
			creators.GET("/:username", handler.NewCreatorHandler(creatorService).GetPublicProfile)

			me := apiV1.Group("/me/creator")
			me.Use(middleware.AuthMiddleware(jwtManager, userService))
			{
				me.PUT("", handler.NewCreatorHandler(creatorService).UpsertProfile)
				me.GET("", handler.NewCreatorHandler(creatorService).GetMyProfile)
			}
		}

		// Project 路由组，需要认证
		projects := apiV1.Group("/projects")
		projects.Use(middleware.AuthMiddleware(jwtManager, userService))
		{
			projects.POST("", handler.NewProjectHandler(projectService).CreateProject)
			projects.GET("", handler.NewProjectHandler(projectService).ListProjects)
			projects.PUT("/:id", handler.NewProjectHandler(projectService).UpdateProject)
			projects.DELETE("/:id", handler.NewProjectHandler(projectService).DeleteProject)
			projects.POST("/:id/media", handler.NewProjectHandler(projectService).AddMedia)
			projects.DELETE("/media/:contentId", handler.NewProjectHandler(projectService).RemoveMedia)
		}

		// Upload 路由组，需要认证
		upload := apiV1.Group("/upload")
		upload.Use(middleware.AuthMiddleware(jwtManager, userService))
		{
			upload.POST("/image", handler.NewUploadHandler(uploadService).UploadImage)
		}

		// Search 路由组：搜索公开（登录用户额外记录搜索历史），历史查询需要认证
		searchGroup := apiV1.Group("/search")
		{
			searchGroup.GET("", middleware.OptionalAuthMiddleware(jwtManager, userService), handler.NewSearchHandler(searchService).Search)

			recent := searchGroup.Group("/recent")
			recent.Use(middleware.AuthMiddleware(jwtManager, userService))
			{
				recent.GET("", handler.NewSearchHandler(searchService).RecentSearches)
			}
		}

		admin := apiV1.Group("/admin")
		// 管理员路由组，需要同时通过认证和管理员授权两个中间件
		admin.Use(middleware.AuthMiddleware(jwtManager, userService), middleware.AdminAuthMiddleware())
		{
			admin.GET("/users/list", handler.NewAdminHandler(adminService).ListUsers)
			admin.GET("/creators/pending", handler.NewAdminHandler(adminService).ListPendingCreators)
			admin.PUT("/creators/:id/approve", handler.NewAdminHandler(adminService).ApproveCreator)
			admin.PUT("/creators/:id/reject", handler.NewAdminHandler(adminService).RejectCreator)
		}
	}

	// 启动 HTTP 服务器并实现优雅停机
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("服务启动于 %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP 服务监听失败: %s\n", err)
		}
	}()

	// 等待中断信号以实现优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("接收到停机信号，正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("HTTP 服务器关闭失败: %v", err)
	}

	// Kafka 消费者是一个阻塞循环，进程退出时自然结束。
	log.Info("服务已优雅关闭")
}

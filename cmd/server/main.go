package main

import (
	"log"
	"os"

	"recipe-go/internal/config"
	"recipe-go/internal/models"
	"recipe-go/internal/repository"
	"recipe-go/internal/router"
	"recipe-go/internal/service"
	"recipe-go/internal/utils"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

func main() {
	// 加载配置
	cfg, err := config.LoadConfig("./config/config.yaml")
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)

	// 初始化验证器
	utils.InitValidator()

	// 初始化数据库
	if err := models.InitDB(cfg); err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}
	db := models.GetDB()

	// 初始化Redis,未配置时登录限流关闭
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddress(),
			DB:       cfg.Redis.DB,
			Password: cfg.Redis.Password,
		})
	} else {
		logger.Warn("未配置Redis,登录限流已关闭")
	}

	// 引导超级用户
	userRepo := repository.NewUserRepository(db)
	userService := service.NewUserService(userRepo, cfg)
	if err := userService.InitSuperuser(); err != nil {
		logger.Warnf("引导超级用户失败: %v", err)
	}

	// 设置路由
	r := router.SetupRouter(cfg, logger, db, redisClient)

	// 启动服务器
	addr := cfg.Server.GetAddress()
	logger.Infof("服务器启动在 %s", addr)

	if cfg.Server.ProductionMode {
		logger.Info("生产模式")
	} else if cfg.Admin.Email != "" {
		logger.Infof("开发模式: 超级用户 %s", cfg.Admin.Email)
	}

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务器失败: %v", err)
	}
}

package router

import (
	"recipe-go/internal/config"
	"recipe-go/internal/handler"
	"recipe-go/internal/middleware"
	"recipe-go/internal/repository"
	"recipe-go/internal/service"
	"recipe-go/pkg/redis_limiter"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
func SetupRouter(
	cfg *config.Config,
	logger *logrus.Logger,
	db *gorm.DB,
	redisClient *redis.Client,
) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg))

	// 健康检查
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "菜谱管理系统 API",
			"version": "1.0.0",
		})
	})

	// 初始化Repository
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	tagRepo := repository.NewTagRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)

	// 初始化Service
	userService := service.NewUserService(userRepo, cfg)
	tokenService := service.NewTokenService(userRepo, tokenRepo, cfg)
	tagService := service.NewTagService(tagRepo)
	ingredientService := service.NewIngredientService(ingredientRepo)
	recipeService := service.NewRecipeService(recipeRepo, cfg)

	// 登录限流器,未配置Redis时关闭
	var loginLimiter *redis_limiter.LoginLimiter
	if redisClient != nil {
		loginLimiter = redis_limiter.NewLoginLimiter(
			redisClient,
			cfg.Redis.LoginAttempts,
			"login_attempts:",
			cfg.Redis.GetLoginWindow(),
		)
	}

	// 初始化Handler
	userHandler := handler.NewUserHandler(userService, tokenService, loginLimiter)
	tagHandler := handler.NewTagHandler(tagService)
	ingredientHandler := handler.NewIngredientHandler(ingredientService)
	recipeHandler := handler.NewRecipeHandler(recipeService, cfg)
	adminHandler := handler.NewAdminHandler(userRepo)

	// API路由组
	api := r.Group("/api")
	{
		// 公开路由
		api.POST("/users", userHandler.Register)
		api.POST("/users/token", userHandler.IssueToken)

		// 认证路由
		authorized := api.Group("")
		authorized.Use(middleware.AuthMiddleware(tokenService))
		{
			// 个人资料,仅支持GET/PATCH
			authorized.GET("/users/me", userHandler.GetMe)
			authorized.PATCH("/users/me", userHandler.UpdateMe)
			authorized.POST("/users/me", userHandler.MeNotAllowed)
			authorized.PUT("/users/me", userHandler.MeNotAllowed)
			authorized.POST("/users/logout", userHandler.Logout)

			// 标签
			authorized.GET("/tags", tagHandler.List)
			authorized.POST("/tags", tagHandler.Create)
			authorized.GET("/tags/:id", tagHandler.Get)
			authorized.PATCH("/tags/:id", tagHandler.Update)
			authorized.DELETE("/tags/:id", tagHandler.Delete)

			// 食材
			authorized.GET("/ingredients", ingredientHandler.List)
			authorized.POST("/ingredients", ingredientHandler.Create)
			authorized.GET("/ingredients/:id", ingredientHandler.Get)
			authorized.PATCH("/ingredients/:id", ingredientHandler.Update)
			authorized.DELETE("/ingredients/:id", ingredientHandler.Delete)

			// 菜谱
			authorized.GET("/recipes", recipeHandler.List)
			authorized.POST("/recipes", recipeHandler.Create)
			authorized.GET("/recipes/:id", recipeHandler.Get)
			authorized.PATCH("/recipes/:id", recipeHandler.Update)
			authorized.DELETE("/recipes/:id", recipeHandler.Delete)
			authorized.POST("/recipes/:id/image", recipeHandler.UploadImage)

			// 管理员接口
			adminGroup := authorized.Group("/admin")
			adminGroup.Use(middleware.StaffMiddleware())
			{
				adminGroup.GET("/users", adminHandler.ListUsers)
				adminGroup.PATCH("/users/:id", adminHandler.UpdateUser)
			}
		}
	}

	return r
}

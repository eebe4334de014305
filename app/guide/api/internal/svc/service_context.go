// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"guide-platform/app/guide/api/internal/config"
	"guide-platform/app/guide/api/internal/mq"
	"guide-platform/app/guide/cache"
	"guide-platform/app/guide/model"
	"guide-platform/app/guide/rubric"
	"guide-platform/common/messaging"
	"guide-platform/common/middleware"

	"github.com/go-redis/redis/v8"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type ServiceContext struct {
	Config config.Config

	// 数据存储
	DB    *gorm.DB      // MySQL 连接
	Redis *redis.Client // 业务 Redis（缓存、申请限流、Token 黑名单）

	// 消息发布
	Producer *mq.Producer

	// Model 层
	ApplicationModel model.IGuideApplicationModel
	ProfileModel     model.IGuideProfileModel
	ReviewLogModel   model.IApplicationReviewLogModel
	CriterionModel   model.IReviewCriterionModel

	// 评审规则存储（进程级，启动加载 + 手动 Reload）
	RubricStore *rubric.Store

	// 地陪档案缓存
	GuideCache *cache.GuideCache

	// 中间件
	CorsMiddleware      *middleware.CorsMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	Auth                rest.Middleware // JWT 认证
	AdminAuth           rest.Middleware // 管理员权限
}

func NewServiceContext(c config.Config) *ServiceContext {
	// 1. 初始化数据库连接
	db := initDB(c.MySQL)

	// 2. 初始化业务 Redis
	rds := initRedis(c.BizRedis)

	// 3. 初始化消息客户端（失败只记日志，不阻塞启动）
	producer := initProducer(c)

	applicationModel := model.NewGuideApplicationModel(db)
	profileModel := model.NewGuideProfileModel(db)
	criterionModel := model.NewReviewCriterionModel(db)

	// 4. 评审规则预热（失败不阻塞启动，首次评审时再加载）
	store := rubric.NewStore(criterionModel)
	warmCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := store.Get(warmCtx); err != nil {
		logx.Errorf("评审规则预热失败，首次评审时重试: %v", err)
	}

	authMw := middleware.NewAuthMiddleware(c.Auth.AccessSecret)
	adminMw := middleware.NewAdminRoleMiddleware(rds, c.Auth.AccessSecret)

	return &ServiceContext{
		Config: c,

		DB:    db,
		Redis: rds,

		Producer: producer,

		ApplicationModel: applicationModel,
		ProfileModel:     profileModel,
		ReviewLogModel:   model.NewApplicationReviewLogModel(db),
		CriterionModel:   criterionModel,

		RubricStore: store,
		GuideCache:  cache.NewGuideCache(rds, profileModel),

		CorsMiddleware:      middleware.NewCorsMiddleware(nil, nil, nil),
		RequestIDMiddleware: middleware.NewRequestIDMiddleware(),
		RateLimitMiddleware: middleware.NewRateLimitMiddleware(
			c.RateLimit.GlobalRate, c.RateLimit.GlobalBurst,
			c.RateLimit.IPRate, c.RateLimit.IPBurst,
		),
		Auth:      func(next http.HandlerFunc) http.HandlerFunc { return authMw.Handle(next) },
		AdminAuth: func(next http.HandlerFunc) http.HandlerFunc { return adminMw.Handle(next) },
	}
}

// 初始化函数

// initDB 初始化数据库连接
func initDB(mysqlConf config.MySQLConfig) *gorm.DB {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		mysqlConf.Username,
		mysqlConf.Password,
		mysqlConf.Host,
		mysqlConf.Port,
		mysqlConf.Database,
	)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info), // 开发环境打印 SQL
	})
	if err != nil {
		logx.Errorf("连接数据库失败: %v", err)
		panic(err)
	}

	// 设置连接池
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	maxOpenConns := mysqlConf.MaxOpenConns
	if maxOpenConns <= 0 {
		maxOpenConns = 100
	}
	maxIdleConns := mysqlConf.MaxIdleConns
	if maxIdleConns <= 0 {
		maxIdleConns = 10
	}
	connMaxLifetime := mysqlConf.ConnMaxLifetime
	if connMaxLifetime <= 0 {
		connMaxLifetime = 3600
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(connMaxLifetime) * time.Second)

	logx.Info("数据库连接成功")
	return db
}

// initRedis 初始化 Redis 连接
func initRedis(c config.RedisConfig) *redis.Client {
	rds := redis.NewClient(&redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rds.Ping(ctx).Err(); err != nil {
		logx.Errorf("连接 Redis 失败: %v", err)
		panic(err)
	}

	logx.Info("Redis 连接成功")
	return rds
}

// initProducer 初始化消息发布器
// MQ 不可用时降级为 nil Producer（事件静默丢弃），不影响申请主链路
func initProducer(c config.Config) *mq.Producer {
	mqConf := messaging.DefaultConfig()
	mqConf.Redis = messaging.RedisConfig{
		Addr:     c.MQ.Addr,
		Password: c.MQ.Password,
		DB:       c.MQ.DB,
	}
	mqConf.ServiceName = "guide-api"

	client, err := messaging.NewClient(mqConf)
	if err != nil {
		logx.Errorf("消息客户端初始化失败，事件发布降级: %v", err)
		return nil
	}
	return mq.NewProducer(client)
}

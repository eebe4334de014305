// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"context"
	"fmt"
	"net/http"
	"time"

	guidemodel "guide-platform/app/guide/model"
	"guide-platform/app/order/api/internal/config"
	"guide-platform/app/order/api/internal/mq"
	"guide-platform/app/order/model"
	"guide-platform/common/constants"
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
	Redis *redis.Client // 业务 Redis（缓存、Token 黑名单）

	// 消息发布
	Producer *mq.Producer

	// Model 层
	OrderModel        model.IOrderModel
	StatusLogModel    model.IOrderStatusLogModel
	ComplaintModel    model.IComplaintModel
	GuideProfileModel guidemodel.IGuideProfileModel // 派单候选集查询

	// 中间件
	CorsMiddleware      *middleware.CorsMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	Auth                rest.Middleware // JWT 认证
	AdminAuth           rest.Middleware // 管理员权限
	GuideAuth           rest.Middleware // 地陪权限
}

func NewServiceContext(c config.Config) *ServiceContext {
	// 1. 初始化数据库连接
	db := initDB(c.MySQL)

	// 2. 初始化业务 Redis
	rds := initRedis(c.BizRedis)

	// 3. 初始化消息客户端（失败只记日志，不阻塞启动）
	producer := initProducer(c)

	// 4. 派单策略校验，非法配置回退默认
	if !constants.IsValidAssignPolicy(c.AssignPolicy) {
		logx.Errorf("非法派单策略配置: %s，回退 %s", c.AssignPolicy, constants.AssignPolicyLowestLoad)
		c.AssignPolicy = constants.AssignPolicyLowestLoad
	}

	authMw := middleware.NewAuthMiddleware(c.Auth.AccessSecret)
	adminMw := middleware.NewAdminRoleMiddleware(rds, c.Auth.AccessSecret)
	guideMw := middleware.NewGuideRoleMiddleware(rds, c.Auth.AccessSecret)

	return &ServiceContext{
		Config: c,

		DB:    db,
		Redis: rds,

		Producer: producer,

		OrderModel:        model.NewOrderModel(db),
		StatusLogModel:    model.NewOrderStatusLogModel(db),
		ComplaintModel:    model.NewComplaintModel(db),
		GuideProfileModel: guidemodel.NewGuideProfileModel(db),

		CorsMiddleware:      middleware.NewCorsMiddleware(nil, nil, nil),
		RequestIDMiddleware: middleware.NewRequestIDMiddleware(),
		RateLimitMiddleware: middleware.NewRateLimitMiddleware(
			c.RateLimit.GlobalRate, c.RateLimit.GlobalBurst,
			c.RateLimit.IPRate, c.RateLimit.IPBurst,
		),
		Auth:      func(next http.HandlerFunc) http.HandlerFunc { return authMw.Handle(next) },
		AdminAuth: func(next http.HandlerFunc) http.HandlerFunc { return adminMw.Handle(next) },
		GuideAuth: func(next http.HandlerFunc) http.HandlerFunc { return guideMw.Handle(next) },
	}
}

// 初始化函数

// initDB 初始化数据库连接
func initDB(mysqlConf config.MySQLConfig) *gorm.DB {
	dsn := buildMySQLDSN(mysqlConf)
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
// MQ 不可用时降级为 nil Producer（事件静默丢弃），不影响核心下单链路
func initProducer(c config.Config) *mq.Producer {
	mqConf := messaging.DefaultConfig()
	mqConf.Redis = messaging.RedisConfig{
		Addr:     c.MQ.Addr,
		Password: c.MQ.Password,
		DB:       c.MQ.DB,
	}
	mqConf.ServiceName = "order-api"

	client, err := messaging.NewClient(mqConf)
	if err != nil {
		logx.Errorf("消息客户端初始化失败，事件发布降级: %v", err)
		return nil
	}
	return mq.NewProducer(client)
}

func buildMySQLDSN(c config.MySQLConfig) string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		c.Username,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

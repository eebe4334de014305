package svc

import (
	"fmt"
	"log"
	"time"

	"guide-platform/app/notify/model"
	"guide-platform/app/notify/mq/internal/config"
	"guide-platform/common/messaging"

	"github.com/zeromicro/go-zero/core/logx"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ServiceContext 通知消费者服务上下文
type ServiceContext struct {
	Config config.Config

	// 通知数据访问
	NotificationModel model.INotificationModel

	// 消息中间件客户端
	MsgClient *messaging.Client
}

// NewServiceContext 创建服务上下文
func NewServiceContext(c config.Config) *ServiceContext {
	db := initDB(c.MySQL)

	msgClient, err := initMessaging(c)
	if err != nil {
		log.Fatalf("消息中间件初始化失败: %v", err)
	}

	return &ServiceContext{
		Config:            c,
		NotificationModel: model.NewNotificationModel(db),
		MsgClient:         msgClient,
	}
}

// initMessaging 初始化消息中间件
func initMessaging(c config.Config) (*messaging.Client, error) {
	msgConfig := messaging.DefaultConfig()
	msgConfig.Redis = messaging.RedisConfig{
		Addr:     c.Redis.Host,
		Password: c.Redis.Pass,
		DB:       c.Redis.DB,
	}
	msgConfig.ServiceName = c.Messaging.ServiceName
	msgConfig.EnableMetrics = c.Messaging.EnableMetrics

	client, err := messaging.NewClient(msgConfig)
	if err != nil {
		return nil, fmt.Errorf("创建消息客户端失败: %w", err)
	}
	return client, nil
}

// initDB 初始化数据库连接
func initDB(c config.MySQLConf) *gorm.DB {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		c.Username, c.Password, c.Host, c.Port, c.Database,
	)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("连接数据库失败: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("获取数据库连接失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(c.ConnMaxLifetime) * time.Second)

	logx.Info("数据库连接成功")
	return db
}

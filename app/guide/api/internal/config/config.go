// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import (
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	// JWT 认证配置
	Auth struct {
		AccessSecret string
		AccessExpire int64
	}

	// 数据存储
	MySQL    MySQLConfig // MySQL 配置
	BizRedis RedisConfig // 业务 Redis（缓存、申请限流、Token 黑名单）

	// 消息队列（Redis Stream）
	MQ RedisConfig

	// 限流配置
	RateLimit RateLimitConfig
}

// MySQLConfig 数据库配置
type MySQLConfig struct {
	Host            string `json:",default=127.0.0.1"`
	Port            int    `json:",default=3306"`
	Username        string
	Password        string
	Database        string
	MaxOpenConns    int `json:",default=100"`  // 最大打开连接数
	MaxIdleConns    int `json:",default=10"`   // 最大空闲连接数
	ConnMaxLifetime int `json:",default=3600"` // 连接生命周期（秒）
}

// RedisConfig Redis 连接配置
type RedisConfig struct {
	Addr     string `json:",default=127.0.0.1:6379"`
	Password string `json:",optional"`
	DB       int    `json:",default=0"`
}

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	GlobalRate  float64 `json:",default=1000"` // 全局每秒请求数
	GlobalBurst int     `json:",default=2000"` // 全局突发容量
	IPRate      float64 `json:",default=50"`   // 单 IP 每秒请求数
	IPBurst     int     `json:",default=100"`  // 单 IP 突发容量
}

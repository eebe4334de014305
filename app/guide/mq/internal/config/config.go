package config

// Config 消费者服务配置
type Config struct {
	Name string
	Mode string

	// MySQL配置
	MySQL MySQLConf

	// 消息队列 Redis 配置
	Redis RedisConf

	// 消息中间件配置
	Messaging MessageConf

	// 腾讯云OCR配置
	Ocr OcrConf
}

// MySQLConf 数据库配置
type MySQLConf struct {
	Host            string `json:",default=127.0.0.1"`
	Port            int    `json:",default=3306"`
	Username        string
	Password        string
	Database        string
	MaxOpenConns    int `json:",default=20"`
	MaxIdleConns    int `json:",default=5"`
	ConnMaxLifetime int `json:",default=3600"`
}

// RedisConf Redis配置
type RedisConf struct {
	Host string
	Pass string
	DB   int
}

// MessageConf 消息中间件配置
type MessageConf struct {
	ServiceName   string `json:",default=guide-mq"` // 服务名称（用作消费者组名）
	EnableMetrics bool   `json:",default=true"`     // 启用指标
}

// OcrConf 腾讯云OCR配置
type OcrConf struct {
	SecretId  string
	SecretKey string
	Region    string `json:",default=ap-guangzhou"`
	Endpoint  string `json:",optional"`
	Timeout   int    `json:",default=30"`
	Enabled   bool   `json:",default=false"`
}

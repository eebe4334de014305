package main

import (
	"flag"
	"fmt"

	"guide-platform/app/guide/api/internal/config"
	"guide-platform/app/guide/api/internal/handler"
	"guide-platform/app/guide/api/internal/svc"
	"guide-platform/common/response"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/guide-api.yaml", "配置文件路径")

func main() {
	flag.Parse()

	// ============================================================================
	// 重要：设置全局错误处理器（必须在 server.Start() 之前）
	// ============================================================================
	response.SetupGlobalErrorHandler()
	// ============================================================================

	// 1. 加载配置文件
	var c config.Config
	conf.MustLoad(*configFile, &c)

	// 2. 创建 REST 服务器
	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	// 3. 初始化服务上下文
	ctx := svc.NewServiceContext(c)

	// 4. 注册路由处理器
	handler.RegisterHandlers(server, ctx)

	// 5. 启动服务
	fmt.Printf("Starting guide-api server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}

// 地陪服务 API 入口
// 说明：
//   guide-api 是地陪服务的 HTTP 接口层，负责：
//   - 地陪入驻申请提交、补充材料、进度查询
//   - 自动评审（规则引擎打分）与人工审核裁决
//   - 对外地陪列表/详情浏览（带缓存）
//   - 评审规则热加载
//
// 启动命令：
//   go run guide.go -f etc/guide-api.yaml

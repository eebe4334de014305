package main

import (
	"flag"
	"fmt"

	"guide-platform/app/order/api/internal/config"
	"guide-platform/app/order/api/internal/handler"
	"guide-platform/app/order/api/internal/svc"
	"guide-platform/common/response"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/order-api.yaml", "配置文件路径")

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
	fmt.Printf("Starting order-api server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}

// 订单服务 API 入口
// 说明：
//   order-api 是订单服务的 HTTP 接口层，负责：
//   - 订单创建与生命周期流转（选地陪、收款、完成）
//   - 取消与退款申请/审批
//   - 投诉提交与处理
//   - 后台订单查询与财务对账
//
// 启动命令：
//   go run order.go -f etc/order-api.yaml
